// Package algo holds the pure scoring functions for oceanpulse. Everything in
// here is deterministic: same inputs, same outputs, no I/O.
package algo

import (
	"github.com/oceanpulse/oceanpulse/schema"
)

// Tunable thresholds for trend classification.
const (
	// TrendBandPercent is the symmetric dead band around zero change.
	// Movement within +/- this percentage is classified as stable.
	TrendBandPercent = 10.0

	// MinTrendPoints is the minimum number of monthly buckets required
	// before a trend can be classified at all.
	MinTrendPoints = 2
)

// ClassifyCounts classifies a monthly count series as increasing, stable or
// decreasing by comparing the mean of the first third of the series against
// the mean of the last third. Series shorter than MinTrendPoints, or with
// zero counts in both windows, are insufficient_data. A zero early window
// followed by detections is classified as increasing with a +100% change,
// since a relative percent has no baseline there.
//
// The returned change percent is the relative movement of the late window
// against the early window, in percent. It is zero whenever the trend is
// insufficient_data.
func ClassifyCounts(points []schema.AbundanceDataPoint) (schema.TrendLabel, float64) {
	if len(points) < MinTrendPoints {
		return schema.TrendInsufficientData, 0
	}

	window := len(points) / 3
	if window < 1 {
		window = 1
	}

	early := meanCount(points[:window])
	late := meanCount(points[len(points)-window:])
	if early == 0 {
		if late > 0 {
			// Colonization: absence followed by detections is unambiguous
			// growth even though the relative change has no baseline.
			return schema.TrendIncreasing, 100.0
		}
		return schema.TrendInsufficientData, 0
	}

	change := (late - early) / early * 100.0
	switch {
	case change > TrendBandPercent:
		return schema.TrendIncreasing, change
	case change < -TrendBandPercent:
		return schema.TrendDecreasing, change
	default:
		return schema.TrendStable, change
	}
}

// TrendConfidence grades how much to trust a classified trend. Longer series
// earn more trust; series that keep flipping direction month over month earn
// less, since the first/last window comparison smooths over that noise.
func TrendConfidence(points []schema.AbundanceDataPoint) schema.Confidence {
	n := len(points)
	if n < MinTrendPoints {
		return schema.ConfidenceLow
	}

	reversals := directionReversals(points)
	switch {
	case n >= 12 && reversals <= n/3:
		return schema.ConfidenceHigh
	case n >= 6 && reversals <= n/2:
		return schema.ConfidenceMedium
	default:
		return schema.ConfidenceLow
	}
}

func meanCount(points []schema.AbundanceDataPoint) float64 {
	if len(points) == 0 {
		return 0
	}
	var sum float64
	for _, p := range points {
		sum += float64(p.Count)
	}
	return sum / float64(len(points))
}

// directionReversals counts sign changes in the month-over-month deltas.
// Flat deltas carry the previous direction forward instead of resetting it.
func directionReversals(points []schema.AbundanceDataPoint) int {
	reversals := 0
	prevDir := 0
	for i := 1; i < len(points); i++ {
		delta := points[i].Count - points[i-1].Count
		dir := 0
		if delta > 0 {
			dir = 1
		} else if delta < 0 {
			dir = -1
		}
		if dir != 0 {
			if prevDir != 0 && dir != prevDir {
				reversals++
			}
			prevDir = dir
		}
	}
	return reversals
}

// ClassifyValues classifies a series of float measurements (environmental
// parameters) with the same first-third/last-third window comparison used for
// counts. A zero early-window mean yields insufficient_data since relative
// change is undefined there.
func ClassifyValues(values []float64) (schema.TrendLabel, float64) {
	if len(values) < MinTrendPoints {
		return schema.TrendInsufficientData, 0
	}

	window := len(values) / 3
	if window < 1 {
		window = 1
	}

	early := mean(values[:window])
	late := mean(values[len(values)-window:])
	if early == 0 {
		return schema.TrendInsufficientData, 0
	}

	change := (late - early) / early * 100.0
	switch {
	case change > TrendBandPercent:
		return schema.TrendIncreasing, change
	case change < -TrendBandPercent:
		return schema.TrendDecreasing, change
	default:
		return schema.TrendStable, change
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
