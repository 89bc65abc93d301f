package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// NewsAPI settings
	NewsAPIKey      string
	NewsAPIQuery    string
	NewsAPILanguage string
	NewsAPIPageSize int
	MaxAPIRequests  int // daily request budget (0 = unlimited)

	// RSS settings
	FeedsConfigPath string // optional secondary source

	// Classification / summarization
	SectorsConfigPath string
	MaxSentences      int
	StrictMatching    bool // whole-word keyword matching instead of substring

	// Output settings
	OutputDir string

	// Telegram digest (optional)
	TelegramToken  string
	TelegramChatID string

	// Dedup store
	CacheFilePath string
	CacheTTLHours int
	DatabaseURL   string // when set, postgres replaces the file cache

	// App settings
	Debug          bool
	RequestTimeout time.Duration
	RetryAttempts  int
	RetryDelay     time.Duration
}

const defaultQuery = "financial markets OR stock market OR investment OR economy OR corporate finance" +
	" -casino -gambling -sports -entertainment -celebrity"

func Load() (*Config, error) {
	cfg := &Config{
		// Default values
		NewsAPIQuery:      defaultQuery,
		NewsAPILanguage:   "en",
		NewsAPIPageSize:   50,
		MaxAPIRequests:    90,
		SectorsConfigPath: "configs/sectors.yaml",
		MaxSentences:      3,
		OutputDir:         ".",
		RequestTimeout:    30 * time.Second,
		RetryAttempts:     3,
		RetryDelay:        5 * time.Second,
	}

	// Load from environment
	cfg.NewsAPIKey = os.Getenv("NEWSAPI_API_KEY")
	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	cfg.TelegramChatID = os.Getenv("TELEGRAM_CHAT_ID")
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	cfg.FeedsConfigPath = os.Getenv("FEEDS_CONFIG_PATH")

	cfg.CacheFilePath = getEnvOrDefault("CACHE_FILE_PATH", "published_articles.json")
	cfg.CacheTTLHours = getEnvIntOrDefault("CACHE_TTL_HOURS", 72)

	if q := os.Getenv("NEWSAPI_QUERY"); q != "" {
		cfg.NewsAPIQuery = q
	}
	if lang := os.Getenv("NEWSAPI_LANGUAGE"); lang != "" {
		cfg.NewsAPILanguage = lang
	}
	if v := os.Getenv("NEWSAPI_PAGE_SIZE"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 && val <= 100 {
			cfg.NewsAPIPageSize = val
		}
	}
	if v := os.Getenv("MAX_API_REQUESTS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val >= 0 {
			cfg.MaxAPIRequests = val
		}
	}

	if path := os.Getenv("SECTORS_CONFIG_PATH"); path != "" {
		cfg.SectorsConfigPath = path
	}
	if v := os.Getenv("MAX_SENTENCES"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val >= 0 {
			cfg.MaxSentences = val
		}
	}
	if os.Getenv("STRICT_MATCHING") == "true" {
		cfg.StrictMatching = true
	}

	if dir := os.Getenv("OUTPUT_DIR"); dir != "" {
		cfg.OutputDir = dir
	}

	if v := os.Getenv("REQUEST_TIMEOUT_SECONDS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.RequestTimeout = time.Duration(val) * time.Second
		}
	}
	if v := os.Getenv("RETRY_ATTEMPTS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.RetryAttempts = val
		}
	}
	if v := os.Getenv("RETRY_DELAY_SECONDS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.RetryDelay = time.Duration(val) * time.Second
		}
	}

	if debug := os.Getenv("DEBUG"); debug == "true" {
		cfg.Debug = true
	}

	return cfg, cfg.Validate()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func (c *Config) Validate() error {
	if c.NewsAPIKey == "" && c.FeedsConfigPath == "" {
		return fmt.Errorf("no article source configured: set NEWSAPI_API_KEY or FEEDS_CONFIG_PATH")
	}
	if c.MaxSentences < 0 {
		return fmt.Errorf("MAX_SENTENCES must be >= 0")
	}
	if (c.TelegramToken == "") != (c.TelegramChatID == "") {
		return fmt.Errorf("TELEGRAM_TOKEN and TELEGRAM_CHAT_ID must be set together")
	}
	return nil
}
