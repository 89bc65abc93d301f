// Package sector defines the sector catalog: the ordered list of
// business sectors and the keywords that classify articles into them.
package sector

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sector is one named business category with its trigger keywords.
// Keywords are matched case-insensitively and are stored lowercased.
type Sector struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Catalog is the ordered sector list. The order here defines section
// order in the rendered newsletter. A catalog is built once at startup
// and is read-only afterwards, so concurrent reads are safe.
type Catalog struct {
	Sectors []Sector
}

// catalogFile is the YAML config structure:
//
// sectors:
//   - name: Technology
//     keywords: [tech, software]
type catalogFile struct {
	Sectors []Sector `yaml:"sectors"`
}

// Load reads the sector catalog from a YAML file and validates it.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sectors config: %w", err)
	}
	defer f.Close()

	var cfg catalogFile
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse sectors config: %w", err)
	}
	return New(cfg.Sectors)
}

// New builds a validated catalog. An empty catalog, a duplicate sector
// name, or a sector without keywords is a configuration error and is
// rejected here rather than silently producing empty newsletters.
func New(sectors []Sector) (*Catalog, error) {
	if len(sectors) == 0 {
		return nil, fmt.Errorf("sector catalog is empty")
	}

	seen := make(map[string]bool, len(sectors))
	out := make([]Sector, 0, len(sectors))
	for _, s := range sectors {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			return nil, fmt.Errorf("sector with empty name")
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate sector %q", name)
		}
		seen[name] = true

		keywords := make([]string, 0, len(s.Keywords))
		for _, k := range s.Keywords {
			k = strings.ToLower(strings.TrimSpace(k))
			if k != "" {
				keywords = append(keywords, k)
			}
		}
		if len(keywords) == 0 {
			return nil, fmt.Errorf("sector %q has no keywords", name)
		}

		out = append(out, Sector{Name: name, Keywords: keywords})
	}

	return &Catalog{Sectors: out}, nil
}

// Names returns the sector names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Sectors))
	for i, s := range c.Sectors {
		names[i] = s.Name
	}
	return names
}

// Default is the built-in catalog used when no sectors config file is
// provided. Keywords are already lowercase.
func Default() *Catalog {
	return &Catalog{Sectors: []Sector{
		{Name: "Technology", Keywords: []string{
			"tech", "software", "hardware", "ai", "startup", "semiconductor",
			"cloud computing", "fintech", "blockchain", "cybersecurity", "innovation",
		}},
		{Name: "Pharmaceuticals", Keywords: []string{
			"pharma", "drug", "biotech", "clinical trial", "vaccine", "healthcare",
			"medicine", "biotechnology", "fda", "r&d",
		}},
		{Name: "Energy", Keywords: []string{
			"oil", "gas", "renewable", "solar", "wind", "energy market", "crude",
			"drilling", "utilities", "power grid", "esg",
		}},
		{Name: "Automotive", Keywords: []string{
			"auto", "electric vehicle", "car", "tesla", "manufacturing", "automaker",
			"ev", "autonomous driving", "mobility",
		}},
		{Name: "Finance", Keywords: []string{
			"bank", "investment", "fund", "stock", "bond", "forex", "economy",
			"market", "currency", "financial", "securities", "trading", "merger",
			"acquisition", "ipo", "earnings", "interest rate", "inflation", "recession",
		}},
		{Name: "Real Estate", Keywords: []string{
			"real estate", "property", "housing", "mortgage", "construction",
			"reit", "commercial property", "residential market",
		}},
		{Name: "Retail", Keywords: []string{
			"retail", "e-commerce", "consumer goods", "fashion", "supermarket",
			"shopping", "online sales",
		}},
	}}
}
