package news

import (
	"regexp"
	"strings"

	"finbrief/internal/sector"
)

// MatchMode selects how sector keywords are matched against text.
type MatchMode int

const (
	// MatchSubstring is raw substring containment: the keyword "car"
	// also hits "scary". This is the default, kept as-is because it is
	// the documented behavior the catalogs were tuned against.
	MatchSubstring MatchMode = iota

	// MatchWordBoundary requires single-word keywords to appear as
	// whole words. Multi-word keywords still match as substrings.
	MatchWordBoundary
)

// Classify returns the sectors whose keyword lists match the document's
// lowercased full text, in catalog order (not in match-position order).
// A sector qualifies on its first matching keyword; every sector is
// still checked. An empty result means the article belongs to no
// configured sector and should be discarded by the caller.
func Classify(doc Document, catalog *sector.Catalog, mode MatchMode) []string {
	var matched []string
	for _, sec := range catalog.Sectors {
		if anyKeywordMatches(doc.FullText, sec.Keywords, mode) {
			matched = append(matched, sec.Name)
		}
	}
	return matched
}

func anyKeywordMatches(text string, keywords []string, mode MatchMode) bool {
	for _, k := range keywords {
		if k == "" {
			continue
		}

		if mode == MatchWordBoundary && !strings.Contains(k, " ") {
			re := regexp.MustCompile(`\b` + regexp.QuoteMeta(k) + `\b`)
			if re.MatchString(text) {
				return true
			}
			continue
		}

		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
