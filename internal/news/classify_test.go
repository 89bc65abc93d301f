package news

import (
	"reflect"
	"testing"

	"finbrief/internal/sector"
)

func mustCatalog(t *testing.T, sectors []sector.Sector) *sector.Catalog {
	t.Helper()
	catalog, err := sector.New(sectors)
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return catalog
}

func TestClassifySubstringMatching(t *testing.T) {
	t.Parallel()

	// Substring containment is the documented contract: "car" hits
	// inside "scary". Not a bug.
	catalog := mustCatalog(t, []sector.Sector{
		{Name: "Automotive", Keywords: []string{"car"}},
	})

	doc := Normalize("This is scary", "")
	got := Classify(doc, catalog, MatchSubstring)

	if !reflect.DeepEqual(got, []string{"Automotive"}) {
		t.Fatalf("expected Automotive match, got %#v", got)
	}
}

func TestClassifyWordBoundaryMatching(t *testing.T) {
	t.Parallel()

	catalog := mustCatalog(t, []sector.Sector{
		{Name: "Automotive", Keywords: []string{"car"}},
		{Name: "Energy", Keywords: []string{"power grid"}},
	})

	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "keyword inside word does not match", text: "This is scary", want: nil},
		{name: "whole word matches", text: "My car broke down", want: []string{"Automotive"}},
		{name: "phrase keyword still substring", text: "the power grids of europe", want: []string{"Energy"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Normalize(tt.text, "")
			got := Classify(doc, catalog, MatchWordBoundary)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Classify(%q) = %#v, want %#v", tt.text, got, tt.want)
			}
		})
	}
}

func TestClassifyFollowsCatalogOrder(t *testing.T) {
	t.Parallel()

	catalog := mustCatalog(t, []sector.Sector{
		{Name: "Technology", Keywords: []string{"startup"}},
		{Name: "Finance", Keywords: []string{"funding"}},
	})

	// "funding" appears before "startup" in the text, but the result
	// follows catalog order, not match position.
	doc := Normalize("Funding round closed by startup", "")
	got := Classify(doc, catalog, MatchSubstring)

	want := []string{"Technology", "Finance"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
}

func TestClassifyNoMatches(t *testing.T) {
	t.Parallel()

	catalog := mustCatalog(t, []sector.Sector{
		{Name: "Retail", Keywords: []string{"e-commerce", "supermarket"}},
	})

	doc := Normalize("Central bank raises rates", "Another hike expected.")
	if got := Classify(doc, catalog, MatchSubstring); len(got) != 0 {
		t.Fatalf("expected no matches, got %#v", got)
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	t.Parallel()

	catalog := mustCatalog(t, []sector.Sector{
		{Name: "Automotive", Keywords: []string{"TESLA"}},
	})

	doc := Normalize("Tesla Posts Record Deliveries", "")
	if got := Classify(doc, catalog, MatchSubstring); len(got) != 1 {
		t.Fatalf("expected case-insensitive match, got %#v", got)
	}
}
