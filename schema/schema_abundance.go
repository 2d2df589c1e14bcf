package schema

import "time"

// AbundanceDataPoint is the monthly-bucketed reduction of occurrence records
// for one species.
type AbundanceDataPoint struct {
	Month   string      `json:"month"` // formatted as YYYY-MM
	Count   int         `json:"count"`
	Records int         `json:"records"`
	Quality DataQuality `json:"quality"`
}

// AbundanceTrend owns the ordered monthly series for one species together
// with its derived trend classification. Recomputed wholesale when the
// source occurrences change; never mutated after construction.
type AbundanceTrend struct {
	ScientificName string               `json:"scientific_name"`
	CommonName     string               `json:"common_name,omitempty"`
	Points         []AbundanceDataPoint `json:"points"`
	Trend          TrendLabel           `json:"trend"`
	ChangePercent  float64              `json:"change_percent"`
	Confidence     Confidence           `json:"confidence"`
	TotalRecords   int                  `json:"total_records"`
}

// AbundanceSummary is the population-trends domain result.
type AbundanceSummary struct {
	Trends       []AbundanceTrend `json:"trends"`
	Score        float64          `json:"score"` // 0-100, 0 when no usable trend data
	SpeciesCount int              `json:"species_count"`
	RecordCount  int              `json:"record_count"`
	ShannonIndex float64          `json:"shannon_index"`
	DataQuality  DataQuality      `json:"data_quality"`
	LastUpdated  time.Time        `json:"last_updated"`
}

// Available reports whether the summary carries any usable trend data.
// The composite calculator redistributes this source's weight when false.
func (s *AbundanceSummary) Available() bool {
	for _, t := range s.Trends {
		if t.Trend != TrendInsufficientData {
			return true
		}
	}
	return false
}
