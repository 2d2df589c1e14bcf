package schema

import "time"

// IndividualSummary holds residency metrics for one tracked individual.
type IndividualSummary struct {
	IndividualID  string    `json:"individual_id"`
	Species       string    `json:"species,omitempty"`
	Points        int       `json:"points"`
	PointsInside  int       `json:"points_inside"`
	FirstSeen     time.Time `json:"first_seen"`
	LastSeen      time.Time `json:"last_seen"`
	DaySpan       int       `json:"day_span"`
	MonthsPresent int       `json:"months_present"`
	Residency     float64   `json:"residency"` // 0-1, fraction of fixes inside the MPA bounds
}

// DensityCell is one cell of the heatmap-ready density grid.
type DensityCell struct {
	Lat       float64 `json:"lat"` // cell center
	Lon       float64 `json:"lon"` // cell center
	Count     int     `json:"count"`
	Intensity float64 `json:"intensity"` // normalized 0-1
}

// TrackingSummary is the animal-tracking domain result. It carries context
// for the presentation layer and does not feed the composite score.
type TrackingSummary struct {
	Individuals []IndividualSummary `json:"individuals"`
	Grid        []DensityCell       `json:"grid"`
	PointCount  int                 `json:"point_count"`
	CellSizeDeg float64             `json:"cell_size_deg"`
	LastUpdated time.Time           `json:"last_updated"`
}
