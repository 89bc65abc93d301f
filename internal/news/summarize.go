package news

import "strings"

// DefaultMaxSentences is the generated summary length used when the
// caller does not configure one.
const DefaultMaxSentences = 3

// Summarize joins the first maxSentences sentences of the document with
// single spaces, preserving their order. Purely positional extraction:
// no scoring, no reordering, and re-running with the same input yields
// the identical string. A negative limit is treated as zero.
func Summarize(doc Document, maxSentences int) string {
	if maxSentences < 0 {
		maxSentences = 0
	}
	if maxSentences > len(doc.Sentences) {
		maxSentences = len(doc.Sentences)
	}
	return strings.Join(doc.Sentences[:maxSentences], " ")
}
