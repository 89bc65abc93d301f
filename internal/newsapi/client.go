// Package newsapi fetches articles from the NewsAPI.org /v2/everything
// endpoint and maps them into the pipeline's article shape.
package newsapi

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"finbrief/internal/logger"
	"finbrief/internal/metrics"
	"finbrief/internal/news"
	"finbrief/internal/ratelimit"
	"finbrief/internal/retry"
)

const defaultBaseURL = "https://newsapi.org/v2"

// Client talks to NewsAPI. Safe for reuse across requests.
type Client struct {
	http    *resty.Client
	limiter *ratelimit.RequestLimiter
	retry   retry.Config
}

// New builds a NewsAPI client. limiter may be nil to disable the
// request budget.
func New(apiKey string, timeout time.Duration, limiter *ratelimit.RequestLimiter, rc retry.Config) *Client {
	httpc := resty.New().
		SetBaseURL(defaultBaseURL).
		SetTimeout(timeout).
		SetHeader("X-Api-Key", apiKey)

	return &Client{http: httpc, limiter: limiter, retry: rc}
}

// SetBaseURL overrides the API endpoint. Used by tests.
func (c *Client) SetBaseURL(url string) {
	c.http.SetBaseURL(url)
}

type response struct {
	Status       string `json:"status"`
	Code         string `json:"code"`
	Message      string `json:"message"`
	TotalResults int    `json:"totalResults"`
	Articles     []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Title       string `json:"title"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
		Description string `json:"description"`
	} `json:"articles"`
}

// Everything fetches articles matching the query, newest first. Titles
// and descriptions that come back null decode to empty strings, which
// is exactly what the downstream normalizer expects.
func (c *Client) Everything(ctx context.Context, query, language string, pageSize int) ([]news.Article, error) {
	if c.limiter != nil && !c.limiter.Allow() {
		return nil, fmt.Errorf("newsapi: daily request budget exhausted")
	}

	var out response
	err := retry.Do(ctx, c.retry, func() error {
		resp, err := c.http.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"q":        query,
				"language": language,
				"pageSize": strconv.Itoa(pageSize),
				"sortBy":   "publishedAt",
			}).
			SetResult(&out).
			SetError(&out).
			Get("/everything")
		if err != nil {
			return fmt.Errorf("newsapi request: %w", err)
		}
		if resp.IsError() {
			return fmt.Errorf("newsapi: http %d: %s %s", resp.StatusCode(), out.Code, out.Message)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	articles := make([]news.Article, 0, len(out.Articles))
	for _, a := range out.Articles {
		articles = append(articles, news.Article{
			Title:     a.Title,
			Link:      a.URL,
			Published: a.PublishedAt,
			Summary:   a.Description,
			Source:    a.Source.Name,
		})
	}

	metrics.Global.AddArticlesFetched(len(articles))
	logger.Info("newsapi fetch finished", "articles", len(articles), "total_results", out.TotalResults)
	return articles, nil
}
