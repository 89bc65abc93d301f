// Package news implements the newsletter core: normalization of fetched
// articles into sentence-segmented documents, keyword-based sector
// classification, leading-sentence extractive summarization, and the
// final sector-bucketed aggregation.
package news

import (
	"fmt"

	"finbrief/internal/logger"
	"finbrief/internal/metrics"
	"finbrief/internal/sector"
)

// Pipeline runs the classify/summarize/aggregate flow over one batch of
// fetched articles. It holds no state besides the read-only catalog and
// its options, so a single Pipeline may process any number of batches.
type Pipeline struct {
	catalog      *sector.Catalog
	maxSentences int
	mode         MatchMode
}

// Option tweaks pipeline behavior.
type Option func(*Pipeline)

// WithMaxSentences overrides the generated summary length.
func WithMaxSentences(n int) Option {
	return func(p *Pipeline) { p.maxSentences = n }
}

// WithMatchMode selects the keyword matching semantics.
func WithMatchMode(mode MatchMode) Option {
	return func(p *Pipeline) { p.mode = mode }
}

// NewPipeline builds a pipeline over the given catalog. A nil or empty
// catalog is a caller configuration error and is rejected up front
// instead of silently producing always-empty newsletters.
func NewPipeline(catalog *sector.Catalog, opts ...Option) (*Pipeline, error) {
	if catalog == nil || len(catalog.Sectors) == 0 {
		return nil, fmt.Errorf("news: sector catalog is empty")
	}

	p := &Pipeline{
		catalog:      catalog,
		maxSentences: DefaultMaxSentences,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Process runs every article through normalize → classify → summarize,
// drops articles that matched no sector, and aggregates the survivors
// into the newsletter payload. One synchronous pass, no retries, no
// partial results; identical input and catalog give identical output.
// An empty input batch yields an empty payload without error.
func (p *Pipeline) Process(articles []Article) Payload {
	processed := make([]*ProcessedArticle, 0, len(articles))

	for _, a := range articles {
		metrics.Global.IncrementArticlesProcessed()

		doc := Normalize(a.Title, a.Summary)

		sectors := Classify(doc, p.catalog, p.mode)
		if len(sectors) == 0 {
			metrics.Global.IncrementArticlesDiscarded()
			logger.Debug("article matched no sector", "title", a.Title)
			continue
		}
		metrics.Global.IncrementArticlesClassified()

		processed = append(processed, &ProcessedArticle{
			Article:          a,
			Sectors:          sectors,
			GeneratedSummary: Summarize(doc, p.maxSentences),
		})
		logger.Debug("article classified", "title", a.Title, "sectors", sectors)
	}

	return Aggregate(p.catalog, processed)
}
