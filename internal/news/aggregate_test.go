package news

import (
	"reflect"
	"testing"

	"finbrief/internal/sector"
)

func TestAggregateOrderingAndFanOut(t *testing.T) {
	t.Parallel()

	catalog := mustCatalog(t, []sector.Sector{
		{Name: "Tech", Keywords: []string{"tech"}},
		{Name: "Finance", Keywords: []string{"bank"}},
	})

	financeOnly := &ProcessedArticle{
		Article: Article{Title: "Bank merger"},
		Sectors: []string{"Finance"},
	}
	both := &ProcessedArticle{
		Article: Article{Title: "Fintech bank"},
		Sectors: []string{"Tech", "Finance"},
	}

	payload := Aggregate(catalog, []*ProcessedArticle{financeOnly, both})

	if len(payload.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(payload.Sections))
	}

	// Tech first per catalog order even though the Finance-only article
	// came first in the input.
	if payload.Sections[0].Sector != "Tech" || payload.Sections[1].Sector != "Finance" {
		t.Fatalf("unexpected section order: %s, %s",
			payload.Sections[0].Sector, payload.Sections[1].Sector)
	}

	finance := payload.Sections[1].Articles
	if len(finance) != 2 || finance[0] != financeOnly || finance[1] != both {
		t.Fatalf("Finance bucket wrong or out of input order: %#v", finance)
	}

	// Fan-out shares the same article value, not a copy.
	if payload.Sections[0].Articles[0] != both {
		t.Fatalf("Tech bucket does not share the multi-sector article pointer")
	}
}

func TestAggregateDropsEmptySectors(t *testing.T) {
	t.Parallel()

	catalog := mustCatalog(t, []sector.Sector{
		{Name: "Tech", Keywords: []string{"tech"}},
		{Name: "Retail", Keywords: []string{"retail"}},
	})

	articles := []*ProcessedArticle{
		{Article: Article{Title: "Chip news"}, Sectors: []string{"Tech"}},
	}

	payload := Aggregate(catalog, articles)

	want := []string{"Tech"}
	var got []string
	for _, s := range payload.Sections {
		got = append(got, s.Sector)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected sections %v, got %v (Retail must be absent, not empty)", want, got)
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	t.Parallel()

	catalog := mustCatalog(t, []sector.Sector{
		{Name: "Tech", Keywords: []string{"tech"}},
	})

	if payload := Aggregate(catalog, nil); !payload.Empty() {
		t.Fatalf("expected empty payload, got %#v", payload)
	}
}
