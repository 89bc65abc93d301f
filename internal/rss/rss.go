// Package rss pulls articles from configured RSS/Atom feeds as a
// secondary source next to NewsAPI.
package rss

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
	"gopkg.in/yaml.v3"

	"finbrief/internal/logger"
	"finbrief/internal/metrics"
	"finbrief/internal/news"
)

// FeedsConfig is YAML config structure
// feeds:
//   - https://...
type FeedsConfig struct {
	Feeds []string `yaml:"feeds"`
}

// LoadFeeds reads the feed URL list from a YAML file.
func LoadFeeds(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open feeds config: %w", err)
	}
	defer f.Close()

	var cfg FeedsConfig
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse feeds config: %w", err)
	}
	return cfg.Feeds, nil
}

// FetchAll downloads and parses every feed, mapping items to articles.
// A broken feed is logged and skipped so the run continues with the
// rest.
func FetchAll(urls []string) []news.Article {
	parser := gofeed.NewParser()
	var articles []news.Article
	successCount := 0

	for _, url := range urls {
		feed, err := parser.ParseURL(url)
		if err != nil {
			logger.Warn("skipping feed", "url", url, "error", err)
			continue
		}
		for _, item := range feed.Items {
			articles = append(articles, itemToArticle(item, feed.Title))
		}
		successCount++
		logger.Info("feed loaded", "url", url, "items", len(feed.Items))
	}

	metrics.Global.AddArticlesFetched(len(articles))
	logger.Info("rss fetch finished", "feeds_ok", successCount, "feeds_total", len(urls), "articles", len(articles))
	return articles
}

func itemToArticle(item *gofeed.Item, feedTitle string) news.Article {
	published := item.Published
	if item.PublishedParsed != nil {
		published = item.PublishedParsed.Format(time.RFC3339)
	}

	return news.Article{
		Title:     strings.TrimSpace(item.Title),
		Link:      item.Link,
		Published: published,
		Summary:   StripHTML(item.Description),
		Source:    strings.TrimSpace(feedTitle),
	}
}

// StripHTML flattens feed descriptions, which frequently carry markup,
// into plain text for the normalizer. Non-HTML input passes through
// with whitespace collapsed.
func StripHTML(s string) string {
	if !strings.Contains(s, "<") {
		return strings.TrimSpace(s)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
