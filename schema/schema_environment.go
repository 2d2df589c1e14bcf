package schema

import "time"

// EnvDataPoint is one monthly-averaged value for an environmental parameter.
type EnvDataPoint struct {
	Month   string  `json:"month"` // formatted as YYYY-MM
	Value   float64 `json:"value"`
	Records int     `json:"records"`
}

// Threshold carries the warning and critical bounds for a parameter and the
// status derived from the current value. Status must stay consistent with
// where the current value falls relative to the bounds.
type Threshold struct {
	WarnMin float64         `json:"warn_min"`
	WarnMax float64         `json:"warn_max"`
	CritMin float64         `json:"crit_min"`
	CritMax float64         `json:"crit_max"`
	Status  ThresholdStatus `json:"status"`
}

// StatusFor returns the threshold status for a value.
func (t Threshold) StatusFor(value float64) ThresholdStatus {
	switch {
	case value < t.CritMin || value > t.CritMax:
		return StatusCritical
	case value < t.WarnMin || value > t.WarnMax:
		return StatusWarning
	default:
		return StatusNormal
	}
}

// EnvironmentalParameter aggregates all measurements of one normalized type.
// Threshold is nil for context-only parameters such as depth.
type EnvironmentalParameter struct {
	Type      ParameterType  `json:"type"`
	Unit      string         `json:"unit,omitempty"`
	Current   float64        `json:"current"`
	Average   float64        `json:"average"`
	Min       float64        `json:"min"`
	Max       float64        `json:"max"`
	Trend     TrendLabel     `json:"trend"`
	Points    []EnvDataPoint `json:"points"`
	Threshold *Threshold     `json:"threshold,omitempty"`
}

// EnvironmentalAnomaly is a flagged deviation for one parameter. Derived,
// read-only; produced by comparing data points to the parameter's threshold.
type EnvironmentalAnomaly struct {
	Parameter  ParameterType `json:"parameter"`
	Kind       AnomalyKind   `json:"kind"`
	Severity   Severity      `json:"severity"`
	StartMonth string        `json:"start_month"`
	EndMonth   string        `json:"end_month"`
	Value      float64       `json:"value"`
	Baseline   float64       `json:"baseline"`
}

// HabitatSummary is the habitat-quality domain result.
type HabitatSummary struct {
	Parameters  []EnvironmentalParameter `json:"parameters"`
	Anomalies   []EnvironmentalAnomaly   `json:"anomalies"`
	Score       float64                  `json:"score"` // 0-100, 0 when no data
	DataQuality DataQuality              `json:"data_quality"`
	LastUpdated time.Time                `json:"last_updated"`
}

// Available reports whether any parameters were observed.
func (s *HabitatSummary) Available() bool {
	return len(s.Parameters) > 0
}
