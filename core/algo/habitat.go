package algo

import "github.com/oceanpulse/oceanpulse/schema"

// Penalty points deducted from the habitat baseline per threshold breach.
const (
	warningPenalty  = 10.0
	criticalPenalty = 25.0
)

// HabitatScore starts every parameter at a healthy 100 and deducts penalty
// points for each parameter whose current value sits in a warning or critical
// band. The score floors at 0. An empty parameter list scores 0, which pairs
// with the habitat summary being marked unavailable.
func HabitatScore(params []schema.EnvironmentalParameter) float64 {
	if len(params) == 0 {
		return 0
	}

	score := 100.0
	for _, p := range params {
		if p.Threshold == nil {
			continue
		}
		switch p.Threshold.Status {
		case schema.StatusWarning:
			score -= warningPenalty
		case schema.StatusCritical:
			score -= criticalPenalty
		}
	}
	if score < 0 {
		return 0
	}
	return score
}
