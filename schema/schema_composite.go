package schema

import "time"

// SourceBreakdown is one domain's contribution to the composite score.
// WeightPercent is the final normalized weight after redistribution; when no
// source is available at all, the base weights are shown for display only.
type SourceBreakdown struct {
	Score         float64 `json:"score"`
	WeightPercent float64 `json:"weight_percent"`
	Available     bool    `json:"available"`
}

// CompositeHealthScore is the top-level assessment result: the single 0-100
// number the presentation layer renders as the MPA's headline health score.
type CompositeHealthScore struct {
	MPAID            string          `json:"mpa_id"`
	MPAName          string          `json:"mpa_name,omitempty"`
	Score            int             `json:"score"` // 0-100
	Population       SourceBreakdown `json:"population"`
	Habitat          SourceBreakdown `json:"habitat"`
	Diversity        SourceBreakdown `json:"diversity"`
	Confidence       Confidence      `json:"confidence"`
	SourcesAvailable int             `json:"sources_available"`
	CalculatedAt     time.Time       `json:"calculated_at"`
}

// Breakdown returns the domain breakdown keyed by source, in weight order.
func (c *CompositeHealthScore) Breakdown() map[SourceKind]SourceBreakdown {
	return map[SourceKind]SourceBreakdown{
		SourcePopulation: c.Population,
		SourceHabitat:    c.Habitat,
		SourceDiversity:  c.Diversity,
	}
}

// AssessmentOutput bundles everything one assessment run produced.
type AssessmentOutput struct {
	Composite CompositeHealthScore `json:"composite"`
	Abundance AbundanceSummary     `json:"abundance"`
	Habitat   HabitatSummary       `json:"habitat"`
	Indicator IndicatorSummary     `json:"indicator"`
	Tracking  TrackingSummary      `json:"tracking"`
}
