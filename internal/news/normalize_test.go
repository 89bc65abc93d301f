package news

import (
	"reflect"
	"testing"
)

func TestNormalizeJoinsTitleAndSummary(t *testing.T) {
	t.Parallel()

	doc := Normalize("Tech Firm Raises Funding", "A startup closed a funding round.")

	if doc.FullText != "tech firm raises funding. a startup closed a funding round." {
		t.Fatalf("unexpected full text: %q", doc.FullText)
	}

	want := []string{"Tech Firm Raises Funding.", "A startup closed a funding round."}
	if !reflect.DeepEqual(doc.Sentences, want) {
		t.Fatalf("unexpected sentences: %#v", doc.Sentences)
	}
}

func TestNormalizeEmptyArticle(t *testing.T) {
	t.Parallel()

	doc := Normalize("", "")

	if doc.FullText != ". " {
		t.Fatalf("expected full text %q, got %q", ". ", doc.FullText)
	}
	if len(doc.Sentences) != 0 {
		t.Fatalf("expected no sentences, got %#v", doc.Sentences)
	}
}

func TestNormalizeOneSideEmpty(t *testing.T) {
	t.Parallel()

	doc := Normalize("Markets rally", "")

	if doc.FullText != "markets rally. " {
		t.Fatalf("unexpected full text: %q", doc.FullText)
	}
	if len(doc.Sentences) != 1 || doc.Sentences[0] != "Markets rally." {
		t.Fatalf("unexpected sentences: %#v", doc.Sentences)
	}
}

func TestSplitSentences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "multiple terminators",
			in:   "Is it over? It is! Markets closed.",
			want: []string{"Is it over?", "It is!", "Markets closed."},
		},
		{
			name: "trailing fragment without terminator",
			in:   "First sentence. and then some",
			want: []string{"First sentence.", "and then some"},
		},
		{
			name: "whitespace only",
			in:   "   \t ",
			want: nil,
		},
		{
			name: "punctuation only",
			in:   ". . !",
			want: nil,
		},
		{
			name: "empty",
			in:   "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitSentences(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("splitSentences(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIsStable(t *testing.T) {
	t.Parallel()

	first := Normalize("Oil prices climb. OPEC reacts.", "Crude hit a high.")
	second := Normalize("Oil prices climb. OPEC reacts.", "Crude hit a high.")

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("normalization not stable: %#v vs %#v", first, second)
	}
}
