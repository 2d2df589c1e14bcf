package schema

import "time"

// SpeciesPresence is the presence/absence evidence for one indicator species,
// with a confidence label derived purely from occurrence volume.
type SpeciesPresence struct {
	SpeciesID      string     `json:"species_id"`
	ScientificName string     `json:"scientific_name"`
	Present        bool       `json:"present"`
	Occurrences    int        `json:"occurrences"`
	LastSeen       time.Time  `json:"last_seen,omitempty"`
	Confidence     Confidence `json:"confidence"`
}

// CategoryScore is the per-category reduction of indicator-species evidence.
// MaxScore is the theoretical ceiling with every species present at maximum
// confidence and volume bonus; it normalizes Score to a 0-1 ratio.
type CategoryScore struct {
	Category       SpeciesCategory `json:"category"`
	Score          float64         `json:"score"`
	MaxScore       float64         `json:"max_score"`
	SpeciesPresent int             `json:"species_present"`
	SpeciesTotal   int             `json:"species_total"`
	Weight         float64         `json:"weight"`
}

// IndicatorSummary is the species-diversity domain result.
type IndicatorSummary struct {
	TotalScore      float64           `json:"total_score"`
	MaxScore        float64           `json:"max_score"`
	Percentage      float64           `json:"percentage"` // 0-100
	Categories      []CategoryScore   `json:"categories"`
	Presences       []SpeciesPresence `json:"presences"`
	SpeciesCount    int               `json:"species_count"` // relevant indicator species
	OccurrenceCount int               `json:"occurrence_count"`
	DataQuality     DataQuality       `json:"data_quality"`
	LastUpdated     time.Time         `json:"last_updated"`
}

// Available reports whether any indicator species were relevant to the MPA.
func (s *IndicatorSummary) Available() bool {
	return s.SpeciesCount > 0
}
