package schema

// Scoring constants for the indicator-species scorer.
const (
	// BaseSpeciesPoints is the per-species base before multipliers.
	BaseSpeciesPoints = 10.0

	// MaxVolumeBonus is the ceiling volume multiplier, also used when
	// computing the per-species max-score denominator.
	MaxVolumeBonus = 1.2
)

// GetCompositeBaseWeights returns the base weight of each composite domain.
// Weights sum to 1.0; unavailable sources have their weight redistributed
// proportionally across the remaining available ones.
func GetCompositeBaseWeights() map[SourceKind]float64 {
	return map[SourceKind]float64{
		SourcePopulation: 0.40,
		SourceHabitat:    0.35,
		SourceDiversity:  0.25,
	}
}

// GetCategoryWeights returns the fixed scoring weight of each
// indicator-species category. Weights sum to 1.0.
func GetCategoryWeights() map[SpeciesCategory]float64 {
	return map[SpeciesCategory]float64{
		CategoryApexPredator: 0.25,
		CategoryCoral:        0.20,
		CategoryFoundation:   0.20,
		CategoryKeystone:     0.15,
		CategorySeabird:      0.10,
		CategoryInvertebrate: 0.10,
	}
}

// StatusWeight returns the conservation-status multiplier for a species.
// Rarer species weigh more: their presence says more about ecosystem health.
func StatusWeight(s ConservationStatus) float64 {
	switch s {
	case StatusCR:
		return 2.0
	case StatusEN:
		return 1.75
	case StatusVU:
		return 1.5
	case StatusNT:
		return 1.25
	case StatusDD:
		return 0.75
	default: // LC and unknown codes
		return 1.0
	}
}

// SensitivityWeight returns the sensitivity multiplier for a species.
func SensitivityWeight(s Sensitivity) float64 {
	switch s {
	case SensitivityHigh:
		return 1.25
	case SensitivityLow:
		return 0.85
	default: // medium
		return 1.0
	}
}

// ConfidenceModifier discounts a present species' score by how well its
// presence is evidenced.
func ConfidenceModifier(c Confidence) float64 {
	switch c {
	case ConfidenceHigh:
		return 1.0
	case ConfidenceMedium:
		return 0.8
	default: // low
		return 0.6
	}
}

// VolumeBonus rewards heavily-observed species.
func VolumeBonus(occurrences int) float64 {
	switch {
	case occurrences > 50:
		return MaxVolumeBonus
	case occurrences > 20:
		return 1.1
	default:
		return 1.0
	}
}

// DefaultThresholds returns the static warning/critical bounds per parameter.
// Warning bands bracket the optimal ranges observed across temperate and
// tropical MPAs; parameters absent from this table (e.g. depth) carry no
// threshold and contribute context only. Status on the returned Threshold is
// unset; it is derived per parameter from the current value.
func DefaultThresholds() map[ParameterType]Threshold {
	return map[ParameterType]Threshold{
		ParamTemperature: {WarnMin: 18.0, WarnMax: 28.0, CritMin: 14.0, CritMax: 32.0},
		ParamSalinity:    {WarnMin: 33.0, WarnMax: 37.0, CritMin: 30.0, CritMax: 40.0},
		ParamPH:          {WarnMin: 8.0, WarnMax: 8.3, CritMin: 7.7, CritMax: 8.5},
		ParamOxygen:      {WarnMin: 5.0, WarnMax: 8.0, CritMin: 3.5, CritMax: 9.5},
		ParamChlorophyll: {WarnMin: 0.1, WarnMax: 3.0, CritMin: 0.02, CritMax: 6.0},
		ParamTurbidity:   {WarnMin: 0.0, WarnMax: 10.0, CritMin: -1.0, CritMax: 25.0},
	}
}
