package app

import (
	"finbrief/internal/config"
	"finbrief/internal/logger"
	"finbrief/internal/storage"
)

// PublishedStore is the dedup history behind the pipeline: articles
// already included in a past newsletter are skipped on later runs.
type PublishedStore interface {
	IsPublished(hash string) bool
	MarkPublished(item storage.PublishedItem) error
	Close() error
}

// fileStore wraps FileCache to implement PublishedStore; Close persists
// the cache to disk.
type fileStore struct {
	cache *storage.FileCache
}

func (f *fileStore) IsPublished(hash string) bool {
	return f.cache.IsPublished(hash)
}

func (f *fileStore) MarkPublished(item storage.PublishedItem) error {
	return f.cache.MarkPublished(item)
}

func (f *fileStore) Close() error {
	f.cache.Cleanup()
	return f.cache.Save()
}

// openStore selects postgres when DATABASE_URL is configured and falls
// back to the JSON file cache otherwise.
func openStore(cfg *config.Config) (PublishedStore, error) {
	if cfg.DatabaseURL != "" {
		store, err := storage.NewPostgresStore(cfg.DatabaseURL, cfg.CacheTTLHours)
		if err != nil {
			return nil, err
		}
		return store, nil
	}

	cache := storage.NewFileCache(cfg.CacheFilePath, cfg.CacheTTLHours)
	if err := cache.Load(); err != nil {
		// A corrupt cache file should not block the run; start empty.
		logger.Warn("could not load published cache, starting empty", "error", err)
	}
	return &fileStore{cache: cache}, nil
}
