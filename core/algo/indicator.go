package algo

import (
	"math"
	"sort"

	"github.com/oceanpulse/oceanpulse/schema"
)

// SpeciesScore is the contribution of one present indicator species: base
// points scaled by conservation status, habitat sensitivity, detection
// confidence and an occurrence-volume bonus. Absent species contribute 0.
func SpeciesScore(sp schema.IndicatorSpecies, presence schema.SpeciesPresence) float64 {
	if !presence.Present {
		return 0
	}
	return schema.BaseSpeciesPoints *
		schema.StatusWeight(sp.ConservationStatus) *
		schema.SensitivityWeight(sp.Sensitivity) *
		schema.ConfidenceModifier(presence.Confidence) *
		schema.VolumeBonus(presence.Occurrences)
}

// speciesMaxScore is the ceiling the same species would reach at maximum
// confidence and full volume bonus. It is the per-species denominator used to
// normalize category scores, so full presence at max multipliers hits 100%.
func speciesMaxScore(sp schema.IndicatorSpecies) float64 {
	return schema.BaseSpeciesPoints *
		schema.StatusWeight(sp.ConservationStatus) *
		schema.SensitivityWeight(sp.Sensitivity) *
		schema.MaxVolumeBonus
}

// ScoreIndicators rolls per-species presence into category scores and a
// weighted overall percentage. Categories with no relevant species are left
// out of both the numerator and the denominator rather than counted as zero,
// so a catalog that only covers four of the six categories still normalizes
// cleanly.
//
// categoryWeights overrides the fixed category weights when non-nil.
func ScoreIndicators(relevant []schema.IndicatorSpecies, presences map[string]schema.SpeciesPresence, categoryWeights map[schema.SpeciesCategory]float64) schema.IndicatorSummary {
	weights := schema.GetCategoryWeights()
	if categoryWeights != nil {
		weights = categoryWeights
	}

	byCategory := make(map[schema.SpeciesCategory]*schema.CategoryScore)
	var totalOccurrences int
	var highConfidence int
	var presentCount int

	ordered := make([]schema.SpeciesPresence, 0, len(relevant))
	for _, sp := range relevant {
		cs := byCategory[sp.Category]
		if cs == nil {
			cs = &schema.CategoryScore{Category: sp.Category, Weight: weights[sp.Category]}
			byCategory[sp.Category] = cs
		}
		cs.SpeciesTotal++
		cs.MaxScore += speciesMaxScore(sp)

		presence, ok := presences[sp.ID]
		if !ok {
			presence = schema.SpeciesPresence{
				SpeciesID:      sp.ID,
				ScientificName: sp.ScientificName,
				Confidence:     schema.ConfidenceLow,
			}
		}
		ordered = append(ordered, presence)

		if presence.Present {
			cs.SpeciesPresent++
			presentCount++
			cs.Score += SpeciesScore(sp, presence)
			totalOccurrences += presence.Occurrences
			if presence.Confidence == schema.ConfidenceHigh {
				highConfidence++
			}
		}
	}

	// Weighted percentage over categories that actually have species. The
	// denominator re-normalizes category weights so absent categories do not
	// silently drag the percentage down.
	var weightedRatio float64
	var weightSum float64
	categories := make([]schema.CategoryScore, 0, len(byCategory))
	for _, cat := range schema.AllCategories {
		cs, ok := byCategory[cat]
		if !ok || cs.MaxScore == 0 {
			continue
		}
		weightedRatio += (cs.Score / cs.MaxScore) * cs.Weight
		weightSum += cs.Weight
		categories = append(categories, *cs)
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Weight > categories[j].Weight
	})

	var percentage float64
	if weightSum > 0 {
		percentage = weightedRatio / weightSum * 100.0
	}

	var totalScore, maxScore float64
	for _, cs := range categories {
		totalScore += cs.Score
		maxScore += cs.MaxScore
	}

	highFraction := 0.0
	if presentCount > 0 {
		highFraction = float64(highConfidence) / float64(presentCount)
	}

	return schema.IndicatorSummary{
		TotalScore:      totalScore,
		MaxScore:        maxScore,
		Percentage:      math.Min(percentage, 100.0),
		Categories:      categories,
		Presences:       ordered,
		SpeciesCount:    len(relevant),
		OccurrenceCount: totalOccurrences,
		DataQuality:     indicatorDataQuality(totalOccurrences, highFraction),
	}
}

// indicatorDataQuality grades trust in the indicator assessment from the
// total occurrence volume and the fraction of detections at high confidence.
func indicatorDataQuality(occurrences int, highFraction float64) schema.DataQuality {
	switch {
	case occurrences > 500 && highFraction > 0.7:
		return schema.QualityHigh
	case occurrences > 100 && highFraction > 0.4:
		return schema.QualityMedium
	default:
		return schema.QualityLow
	}
}
