package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// FileCache keeps published items in a JSON file. The default store
// when no database is configured.
type FileCache struct {
	filePath string
	ttlHours int
	items    map[string]PublishedItem
	mu       sync.RWMutex
}

// NewFileCache creates a file cache instance. Call Load before use and
// Save before the process exits.
func NewFileCache(filePath string, ttlHours int) *FileCache {
	return &FileCache{
		filePath: filePath,
		ttlHours: ttlHours,
		items:    make(map[string]PublishedItem),
	}
}

// Load reads the existing cache file if there is one. Items outside the
// TTL window are dropped on the way in.
func (fc *FileCache) Load() error {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	if _, err := os.Stat(fc.filePath); os.IsNotExist(err) {
		return nil
	}

	data, err := os.ReadFile(fc.filePath)
	if err != nil {
		return fmt.Errorf("read cache file: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	var items []PublishedItem
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("unmarshal cache: %w", err)
	}

	cutoffTime := time.Now().Add(-time.Duration(fc.ttlHours) * time.Hour)
	for _, item := range items {
		if item.PublishedAt.After(cutoffTime) {
			fc.items[item.Hash] = item
		}
	}

	return nil
}

// Save writes the current cache to disk.
func (fc *FileCache) Save() error {
	fc.mu.RLock()
	items := make([]PublishedItem, 0, len(fc.items))
	for _, item := range fc.items {
		items = append(items, item)
	}
	fc.mu.RUnlock()

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal cache: %w", err)
	}

	if err := os.WriteFile(fc.filePath, data, 0o644); err != nil {
		return fmt.Errorf("write cache file: %w", err)
	}

	return nil
}

// IsPublished checks whether the article already went out within the
// TTL window.
func (fc *FileCache) IsPublished(hash string) bool {
	fc.mu.RLock()
	defer fc.mu.RUnlock()

	item, exists := fc.items[hash]
	if !exists {
		return false
	}

	cutoffTime := time.Now().Add(-time.Duration(fc.ttlHours) * time.Hour)
	return item.PublishedAt.After(cutoffTime)
}

// MarkPublished records the article as included in a newsletter.
func (fc *FileCache) MarkPublished(item PublishedItem) error {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	if item.PublishedAt.IsZero() {
		item.PublishedAt = time.Now()
	}
	fc.items[item.Hash] = item
	return nil
}

// Cleanup removes expired items from memory.
func (fc *FileCache) Cleanup() {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	cutoffTime := time.Now().Add(-time.Duration(fc.ttlHours) * time.Hour)
	for hash, item := range fc.items {
		if item.PublishedAt.Before(cutoffTime) {
			delete(fc.items, hash)
		}
	}
}

// Len returns the number of tracked items.
func (fc *FileCache) Len() int {
	fc.mu.RLock()
	defer fc.mu.RUnlock()
	return len(fc.items)
}
