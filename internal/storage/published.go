// Package storage tracks which articles already appeared in a past
// newsletter, so reruns within the TTL window do not repeat them.
package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// PublishedItem is one article that made it into a rendered newsletter.
type PublishedItem struct {
	Hash        string    `json:"hash"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Sectors     []string  `json:"sectors"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"published_at"`
}

// ArticleHash creates a stable identity for an article from its
// normalized title and the link's domain. Title normalization keeps the
// hash stable across whitespace and case differences between sources.
func ArticleHash(title, link string) string {
	normalizedTitle := strings.ToLower(strings.TrimSpace(title))
	normalizedTitle = strings.Join(strings.Fields(normalizedTitle), " ")

	h := sha256.New()
	h.Write([]byte(normalizedTitle + "|" + extractDomain(link)))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// extractDomain extracts the host part of a URL.
func extractDomain(url string) string {
	if url == "" {
		return "unknown"
	}

	url = strings.TrimPrefix(url, "http://")
	url = strings.TrimPrefix(url, "https://")

	parts := strings.Split(url, "/")
	if len(parts) == 0 {
		return "unknown"
	}

	domain := strings.TrimPrefix(parts[0], "www.")
	return strings.ToLower(domain)
}
