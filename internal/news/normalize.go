package news

import (
	"strings"
	"unicode"
)

// Document is the normalized representation of an article's combined
// title and summary text: a lowercased full-text string for keyword
// matching plus the original-case sentences for summarization. It only
// lives for the duration of one pipeline pass.
type Document struct {
	FullText  string
	Sentences []string
}

// Normalize builds a Document from an article's title and summary.
// The texts are joined as "{title}. {summary}" with the separator kept
// even when one side is empty, so an article with no text at all
// normalizes to the full text ". " and an empty sentence list.
func Normalize(title, summary string) Document {
	full := title + ". " + summary
	return Document{
		FullText:  strings.ToLower(full),
		Sentences: splitSentences(full),
	}
}

// splitSentences segments text on '.', '!' and '?', keeping the
// terminator with its sentence. Fragments without a single letter or
// digit are dropped, so punctuation-only input yields no sentences.
// Deterministic for identical input.
func splitSentences(text string) []string {
	var sentences []string
	var b strings.Builder

	flush := func() {
		s := strings.TrimSpace(b.String())
		b.Reset()
		if hasWordContent(s) {
			sentences = append(sentences, s)
		}
	}

	for _, r := range text {
		b.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			flush()
		}
	}
	flush()

	return sentences
}

func hasWordContent(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}
