package algo

import (
	"math"

	"github.com/oceanpulse/oceanpulse/schema"
)

// ShannonIndex computes the Shannon diversity index H = -sum(p_i * ln p_i)
// over per-species abundance counts. Zero and negative counts are skipped.
// An empty or all-zero input yields 0.
func ShannonIndex(counts []int) float64 {
	var total float64
	for _, c := range counts {
		if c > 0 {
			total += float64(c)
		}
	}
	if total == 0 {
		return 0
	}

	var h float64
	for _, c := range counts {
		if c <= 0 {
			continue
		}
		p := float64(c) / total
		h -= p * math.Log(p)
	}
	return h
}

// BiodiversityScore converts per-species trends into a 0-100 population
// health score. Each determinate trend contributes a fixed value (increasing
// 100, stable 70, decreasing 30) and the score is the mean over determinate
// trends only. With no determinate trend at all the score is 0, which pairs
// with the summary being marked unavailable.
func BiodiversityScore(trends []schema.AbundanceTrend) float64 {
	var sum float64
	var n int
	for _, t := range trends {
		switch t.Trend {
		case schema.TrendIncreasing:
			sum += 100
		case schema.TrendStable:
			sum += 70
		case schema.TrendDecreasing:
			sum += 30
		default:
			continue
		}
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
