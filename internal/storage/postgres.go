package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"finbrief/internal/logger"
)

// PostgresStore keeps published items in PostgreSQL. Used instead of
// the file cache when DATABASE_URL is set, so multiple hosts can share
// one dedup history.
type PostgresStore struct {
	db       *sql.DB
	ttlHours int
}

// NewPostgresStore connects, pings, and ensures the schema exists.
func NewPostgresStore(connectionString string, ttlHours int) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &PostgresStore{
		db:       db,
		ttlHours: ttlHours,
	}

	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	logger.Info("postgres store connected")
	return store, nil
}

func (ps *PostgresStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS published_articles (
		id SERIAL PRIMARY KEY,
		hash VARCHAR(64) UNIQUE NOT NULL,
		title TEXT NOT NULL,
		link TEXT NOT NULL,
		sectors TEXT,
		source VARCHAR(200),
		published_at TIMESTAMP NOT NULL DEFAULT NOW(),
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_published_articles_hash ON published_articles(hash);
	CREATE INDEX IF NOT EXISTS idx_published_articles_published_at ON published_articles(published_at);
	`

	if _, err := ps.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// IsPublished checks whether the article already went out within the
// TTL window. Query errors are logged and treated as "not published";
// a broken dedup check should not abort the whole run.
func (ps *PostgresStore) IsPublished(hash string) bool {
	cutoffTime := time.Now().Add(-time.Duration(ps.ttlHours) * time.Hour)

	var count int
	query := `SELECT COUNT(*) FROM published_articles WHERE hash = $1 AND published_at > $2`
	if err := ps.db.QueryRow(query, hash, cutoffTime).Scan(&count); err != nil {
		logger.Warn("duplicate check failed", "error", err)
		return false
	}

	return count > 0
}

// MarkPublished records the article as included in a newsletter.
func (ps *PostgresStore) MarkPublished(item PublishedItem) error {
	publishedAt := item.PublishedAt
	if publishedAt.IsZero() {
		publishedAt = time.Now()
	}

	query := `
	INSERT INTO published_articles (hash, title, link, sectors, source, published_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (hash) DO UPDATE SET published_at = EXCLUDED.published_at`

	_, err := ps.db.Exec(query, item.Hash, item.Title, item.Link,
		strings.Join(item.Sectors, ","), item.Source, publishedAt)
	if err != nil {
		return fmt.Errorf("mark published: %w", err)
	}
	return nil
}

// CleanupOldRecords deletes rows older than twice the TTL window.
func (ps *PostgresStore) CleanupOldRecords() error {
	cutoffTime := time.Now().Add(-2 * time.Duration(ps.ttlHours) * time.Hour)

	result, err := ps.db.Exec(`DELETE FROM published_articles WHERE published_at < $1`, cutoffTime)
	if err != nil {
		return fmt.Errorf("cleanup old records: %w", err)
	}

	if rows, err := result.RowsAffected(); err == nil && rows > 0 {
		logger.Debug("cleaned up old records", "rows", rows)
	}
	return nil
}

// Close closes the database connection.
func (ps *PostgresStore) Close() error {
	return ps.db.Close()
}
