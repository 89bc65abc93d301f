package news

import (
	"reflect"
	"testing"

	"finbrief/internal/sector"
)

func TestNewPipelineRejectsEmptyCatalog(t *testing.T) {
	t.Parallel()

	if _, err := NewPipeline(nil); err == nil {
		t.Fatal("expected error for nil catalog")
	}
	if _, err := NewPipeline(&sector.Catalog{}); err == nil {
		t.Fatal("expected error for empty catalog")
	}
}

func TestPipelineEndToEnd(t *testing.T) {
	t.Parallel()

	catalog := mustCatalog(t, []sector.Sector{
		{Name: "Technology", Keywords: []string{"tech", "startup"}},
	})

	pipeline, err := NewPipeline(catalog, WithMaxSentences(3))
	if err != nil {
		t.Fatalf("new pipeline: %v", err)
	}

	payload := pipeline.Process([]Article{
		{
			Title:   "Tech firm raises funding",
			Summary: "A startup closed a funding round.",
			Link:    "https://example.com/a",
			Source:  "Example Wire",
		},
	})

	if len(payload.Sections) != 1 || payload.Sections[0].Sector != "Technology" {
		t.Fatalf("unexpected payload sections: %#v", payload.Sections)
	}

	got := payload.Sections[0].Articles[0]
	if !reflect.DeepEqual(got.Sectors, []string{"Technology"}) {
		t.Fatalf("unexpected sectors: %#v", got.Sectors)
	}

	wantSummary := "Tech firm raises funding. A startup closed a funding round."
	if got.GeneratedSummary != wantSummary {
		t.Fatalf("unexpected summary: %q, want %q", got.GeneratedSummary, wantSummary)
	}
}

func TestPipelineDiscardsUnclassified(t *testing.T) {
	t.Parallel()

	catalog := mustCatalog(t, []sector.Sector{
		{Name: "Retail", Keywords: []string{"supermarket"}},
	})

	pipeline, err := NewPipeline(catalog)
	if err != nil {
		t.Fatalf("new pipeline: %v", err)
	}

	payload := pipeline.Process([]Article{
		{Title: "Central bank raises rates", Summary: "Another hike."},
		{Title: "", Summary: ""},
	})

	if !payload.Empty() {
		t.Fatalf("expected empty payload, got %#v", payload)
	}
}

func TestPipelineMultiSectorFanOut(t *testing.T) {
	t.Parallel()

	catalog := mustCatalog(t, []sector.Sector{
		{Name: "Technology", Keywords: []string{"software"}},
		{Name: "Finance", Keywords: []string{"bank"}},
	})

	pipeline, err := NewPipeline(catalog)
	if err != nil {
		t.Fatalf("new pipeline: %v", err)
	}

	payload := pipeline.Process([]Article{
		{Title: "Bank rolls out new software platform", Summary: "A large deployment."},
	})

	if len(payload.Sections) != 2 {
		t.Fatalf("expected fan-out into 2 sections, got %d", len(payload.Sections))
	}

	// Both buckets hold the same article: same pointer, same summary,
	// same sectors list. Not two independently processed copies.
	techArticle := payload.Sections[0].Articles[0]
	finArticle := payload.Sections[1].Articles[0]
	if techArticle != finArticle {
		t.Fatal("sections do not share the same article")
	}
	if !reflect.DeepEqual(techArticle.Sectors, []string{"Technology", "Finance"}) {
		t.Fatalf("unexpected sectors: %#v", techArticle.Sectors)
	}
}

func TestPipelineEmptyBatch(t *testing.T) {
	t.Parallel()

	catalog := mustCatalog(t, []sector.Sector{
		{Name: "Technology", Keywords: []string{"tech"}},
	})

	pipeline, err := NewPipeline(catalog)
	if err != nil {
		t.Fatalf("new pipeline: %v", err)
	}

	if payload := pipeline.Process(nil); !payload.Empty() {
		t.Fatalf("expected empty payload for empty batch, got %#v", payload)
	}
}
