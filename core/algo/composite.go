package algo

import (
	"math"

	"github.com/oceanpulse/oceanpulse/schema"
)

// SourceInput is one upstream contribution to the composite score. Score is
// on the 0-100 scale; Available reflects whether the source produced any
// usable data at all.
type SourceInput struct {
	Score     float64
	Available bool
}

// Combine folds the three per-domain scores into the single headline health
// score. Unavailable sources have their weight zeroed and the remaining
// weights renormalized against the sum of available base weights, so the live
// weights always sum to 1. With nothing available the result is a defined
// zero-score, low-confidence record whose breakdown shows the base weights
// for display.
//
// Combine is pure and deterministic: identical inputs yield identical
// output, including identical floating-point rounding. The caller stamps
// CalculatedAt; leaving the clock out keeps repeated calls bit-identical.
//
// weights overrides the base source weights when non-nil; callers pass the
// validated weights from config, or nil for the defaults.
func Combine(mpa schema.MPA, population, habitat, diversity SourceInput, weights map[schema.SourceKind]float64) schema.CompositeHealthScore {
	base := schema.GetCompositeBaseWeights()
	if weights != nil {
		base = weights
	}
	basePop := base[schema.SourcePopulation]
	baseHab := base[schema.SourceHabitat]
	baseDiv := base[schema.SourceDiversity]

	available := 0
	var weightSum float64
	for _, s := range []struct {
		in SourceInput
		w  float64
	}{{population, basePop}, {habitat, baseHab}, {diversity, baseDiv}} {
		if s.in.Available {
			available++
			weightSum += s.w
		}
	}

	liveWeight := func(in SourceInput, base float64) float64 {
		if !in.Available || weightSum == 0 {
			return 0
		}
		return base / weightSum
	}

	wPop := liveWeight(population, basePop)
	wHab := liveWeight(habitat, baseHab)
	wDiv := liveWeight(diversity, baseDiv)

	// Skip unavailable sources entirely rather than multiplying by a zero
	// weight, so a garbage score on an unavailable source cannot leak NaN.
	var raw float64
	if population.Available {
		raw += population.Score * wPop
	}
	if habitat.Available {
		raw += habitat.Score * wHab
	}
	if diversity.Available {
		raw += diversity.Score * wDiv
	}
	score := int(math.Round(raw))
	if score < 0 {
		score = 0
	} else if score > 100 {
		score = 100
	}

	result := schema.CompositeHealthScore{
		MPAID:            mpa.ID,
		MPAName:          mpa.Name,
		Score:            score,
		Confidence:       compositeConfidence(available),
		SourcesAvailable: available,
	}

	showBase := available == 0
	result.Population = breakdownEntry(population, wPop, basePop, showBase)
	result.Habitat = breakdownEntry(habitat, wHab, baseHab, showBase)
	result.Diversity = breakdownEntry(diversity, wDiv, baseDiv, showBase)
	return result
}

// breakdownEntry reports the live weight for available sources. An
// unavailable source's final weight is exactly 0; only when nothing is
// available at all do the base weights stand in, so the display still
// explains the model.
func breakdownEntry(in SourceInput, live, base float64, showBase bool) schema.SourceBreakdown {
	weight := live
	if !in.Available {
		weight = 0
		if showBase {
			weight = base
		}
	}
	return schema.SourceBreakdown{
		Score:         in.Score,
		WeightPercent: weight * 100.0,
		Available:     in.Available,
	}
}

func compositeConfidence(available int) schema.Confidence {
	switch available {
	case 3:
		return schema.ConfidenceHigh
	case 2:
		return schema.ConfidenceMedium
	default:
		return schema.ConfidenceLow
	}
}
