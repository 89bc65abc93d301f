package news

// Article is a single raw news item as delivered by a fetch source.
// Fields that are missing or null upstream decode to empty strings;
// the pipeline treats them as such and never fails on them.
type Article struct {
	Title     string
	Link      string
	Published string // timestamp as reported by the source (ISO 8601 for NewsAPI)
	Summary   string // source-provided description, not the generated summary
	Source    string
}
