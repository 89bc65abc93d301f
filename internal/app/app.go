// Package app wires configuration, article sources, the classification
// pipeline, and the output sinks into the one-shot newsletter run.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"finbrief/internal/config"
	"finbrief/internal/logger"
	"finbrief/internal/metrics"
	"finbrief/internal/news"
	"finbrief/internal/newsapi"
	"finbrief/internal/ratelimit"
	"finbrief/internal/render"
	"finbrief/internal/retry"
	"finbrief/internal/rss"
	"finbrief/internal/sector"
	"finbrief/internal/storage"
	"finbrief/internal/telegram"
)

// Run executes one newsletter generation pass: fetch → dedup →
// classify/summarize/aggregate → render → mark published → optional
// telegram digest.
func Run(ctx context.Context, cfg *config.Config) error {
	startTime := time.Now()
	defer func() {
		metrics.Global.RecordProcessingTime(time.Since(startTime))
	}()

	catalog, err := loadCatalog(cfg)
	if err != nil {
		metrics.Global.SetError(err.Error())
		return fmt.Errorf("load sector catalog: %w", err)
	}
	logger.Info("sector catalog loaded", "sectors", catalog.Names())

	mode := news.MatchSubstring
	if cfg.StrictMatching {
		mode = news.MatchWordBoundary
	}
	pipeline, err := news.NewPipeline(catalog,
		news.WithMaxSentences(cfg.MaxSentences),
		news.WithMatchMode(mode),
	)
	if err != nil {
		metrics.Global.SetError(err.Error())
		return err
	}

	articles, err := fetchArticles(ctx, cfg)
	if err != nil {
		metrics.Global.SetError(err.Error())
		return err
	}
	logger.Info("articles fetched", "count", len(articles))

	store, err := openStore(cfg)
	if err != nil {
		metrics.Global.SetError(err.Error())
		return fmt.Errorf("open published store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("closing published store", "error", err)
		}
	}()

	fresh := dropAlreadyPublished(store, articles)

	payload := pipeline.Process(fresh)
	if payload.Empty() {
		// Not an error: the caller decides this is a no-op day.
		logger.Info("no relevant articles for today's newsletter")
		metrics.Global.SetLastRun()
		return nil
	}

	date := time.Now().Format("2006-01-02")
	path, err := render.WriteFile(cfg.OutputDir, payload, date)
	if err != nil {
		metrics.Global.SetError(err.Error())
		return fmt.Errorf("write newsletter: %w", err)
	}
	metrics.Global.IncrementNewslettersRendered()
	logger.Info("newsletter written", "path", path, "sections", len(payload.Sections))

	markPublished(store, payload)

	if cfg.TelegramToken != "" && cfg.TelegramChatID != "" {
		if err := telegram.SendDigest(cfg.TelegramToken, cfg.TelegramChatID, payload, date); err != nil {
			// Digest delivery is best-effort; the newsletter file is
			// already on disk.
			logger.Error("telegram digest failed", "error", err)
		}
	}

	metrics.Global.SetLastRun()
	return nil
}

func loadCatalog(cfg *config.Config) (*sector.Catalog, error) {
	if _, err := os.Stat(cfg.SectorsConfigPath); os.IsNotExist(err) {
		logger.Info("sectors config not found, using built-in catalog", "path", cfg.SectorsConfigPath)
		return sector.Default(), nil
	}
	return sector.Load(cfg.SectorsConfigPath)
}

// fetchArticles pulls from NewsAPI and, when configured, the RSS feed
// list. A NewsAPI failure aborts the run; individual feed failures are
// already tolerated inside rss.FetchAll.
func fetchArticles(ctx context.Context, cfg *config.Config) ([]news.Article, error) {
	var articles []news.Article

	if cfg.NewsAPIKey != "" {
		limiter := ratelimit.NewRequestLimiter(cfg.MaxAPIRequests)
		client := newsapi.New(cfg.NewsAPIKey, cfg.RequestTimeout, limiter, retry.Config{
			MaxAttempts: cfg.RetryAttempts,
			Delay:       cfg.RetryDelay,
			Backoff:     true,
		})

		fetched, err := client.Everything(ctx, cfg.NewsAPIQuery, cfg.NewsAPILanguage, cfg.NewsAPIPageSize)
		if err != nil {
			return nil, fmt.Errorf("fetch newsapi articles: %w", err)
		}
		articles = append(articles, fetched...)
	}

	if cfg.FeedsConfigPath != "" {
		feeds, err := rss.LoadFeeds(cfg.FeedsConfigPath)
		if err != nil {
			return nil, fmt.Errorf("load feeds config: %w", err)
		}
		articles = append(articles, rss.FetchAll(feeds)...)
	}

	return articles, nil
}

func dropAlreadyPublished(store PublishedStore, articles []news.Article) []news.Article {
	fresh := make([]news.Article, 0, len(articles))
	for _, a := range articles {
		if store.IsPublished(storage.ArticleHash(a.Title, a.Link)) {
			metrics.Global.IncrementDuplicatesFiltered()
			logger.Debug("skipping already published article", "title", a.Title)
			continue
		}
		fresh = append(fresh, a)
	}
	return fresh
}

// markPublished records every article of the payload. Articles fanned
// out into several sections share one pointer, so the upsert-by-hash
// semantics of both stores make the repeat marks harmless.
func markPublished(store PublishedStore, payload news.Payload) {
	for _, section := range payload.Sections {
		for _, a := range section.Articles {
			item := storage.PublishedItem{
				Hash:        storage.ArticleHash(a.Title, a.Link),
				Title:       a.Title,
				Link:        a.Link,
				Sectors:     a.Sectors,
				Source:      a.Source,
				PublishedAt: time.Now(),
			}
			if err := store.MarkPublished(item); err != nil {
				logger.Warn("could not mark article as published", "title", a.Title, "error", err)
			}
		}
	}
}
