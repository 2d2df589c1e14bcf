package sources

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/oceanpulse/oceanpulse/schema"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Catalog is the curated indicator-species catalog shipped with the binary.
type Catalog struct {
	species []schema.IndicatorSpecies
}

type catalogFile struct {
	Species []schema.IndicatorSpecies `yaml:"species"`
}

// LoadCatalog parses the embedded catalog. Entries with an unknown category
// are rejected rather than silently skipped, since the catalog ships with
// the binary and a bad entry is a packaging defect.
func LoadCatalog() (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(catalogYAML, &file); err != nil {
		return nil, fmt.Errorf("parse species catalog: %w", err)
	}
	for _, sp := range file.Species {
		if sp.ID == "" || sp.ScientificName == "" {
			return nil, fmt.Errorf("catalog entry %q is missing an id or scientific name", sp.ScientificName)
		}
		if _, ok := schema.ValidCategories[sp.Category]; !ok {
			return nil, fmt.Errorf("catalog entry %s has unknown category %q", sp.ID, sp.Category)
		}
	}
	return &Catalog{species: file.Species}, nil
}

// AllSpecies returns the full catalog.
func (c *Catalog) AllSpecies() []schema.IndicatorSpecies {
	out := make([]schema.IndicatorSpecies, len(c.species))
	copy(out, c.species)
	return out
}

// RelevantSpecies returns the indicator species whose geographic bounds
// contain the MPA center. Catalog entries with zero-valued bounds are
// treated as global and always relevant.
func (c *Catalog) RelevantSpecies(mpa schema.MPA) []schema.IndicatorSpecies {
	var relevant []schema.IndicatorSpecies
	for _, sp := range c.species {
		if isGlobal(sp.Bounds) || sp.Bounds.Contains(mpa.Lat, mpa.Lon) {
			relevant = append(relevant, sp)
		}
	}
	return relevant
}

// FilterByEcosystems narrows a species list to those tagged with at least one
// of the given ecosystems (case-insensitive). An empty filter keeps all.
func FilterByEcosystems(species []schema.IndicatorSpecies, ecosystems []string) []schema.IndicatorSpecies {
	if len(ecosystems) == 0 {
		return species
	}
	wanted := make(map[string]struct{}, len(ecosystems))
	for _, e := range ecosystems {
		wanted[strings.ToLower(strings.TrimSpace(e))] = struct{}{}
	}

	var filtered []schema.IndicatorSpecies
	for _, sp := range species {
		for _, eco := range sp.Ecosystems {
			if _, ok := wanted[strings.ToLower(eco)]; ok {
				filtered = append(filtered, sp)
				break
			}
		}
	}
	return filtered
}

func isGlobal(b schema.GeoBounds) bool {
	return b.MinLat == 0 && b.MaxLat == 0 && b.MinLon == 0 && b.MaxLon == 0
}
