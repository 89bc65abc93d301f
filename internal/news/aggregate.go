package news

import (
	"slices"

	"finbrief/internal/sector"
)

// ProcessedArticle is an article that matched at least one sector,
// carrying its classification and the generated extractive summary.
// Sectors is non-empty, duplicate-free, and ordered by catalog order.
type ProcessedArticle struct {
	Article
	Sectors          []string
	GeneratedSummary string
}

// Section is one sector's bucket of the newsletter.
type Section struct {
	Sector   string
	Articles []*ProcessedArticle
}

// Payload is the sector-bucketed newsletter content, ordered by catalog
// order. Sectors with no matching articles are absent. An article that
// matched several sectors appears in each of those sections as the same
// shared pointer; nothing may mutate articles after aggregation.
type Payload struct {
	Sections []Section
}

// Empty reports whether the payload contains no sections at all.
func (p Payload) Empty() bool { return len(p.Sections) == 0 }

// Aggregate groups processed articles by sector: for each sector in
// catalog order it collects, in input order, every article tagged with
// that sector, then drops sectors whose bucket stayed empty.
func Aggregate(catalog *sector.Catalog, articles []*ProcessedArticle) Payload {
	var payload Payload
	for _, sec := range catalog.Sectors {
		var bucket []*ProcessedArticle
		for _, a := range articles {
			if slices.Contains(a.Sectors, sec.Name) {
				bucket = append(bucket, a)
			}
		}
		if len(bucket) > 0 {
			payload.Sections = append(payload.Sections, Section{
				Sector:   sec.Name,
				Articles: bucket,
			})
		}
	}
	return payload
}
