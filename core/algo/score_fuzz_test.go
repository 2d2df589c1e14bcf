package algo

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/oceanpulse/oceanpulse/schema"
)

// FuzzCombine fuzzes the composite calculator with arbitrary scores and
// availability flags. The score must always land in [0, 100] and live weights
// of available sources must sum to 1 whenever anything is available.
func FuzzCombine(f *testing.F) {
	f.Add(80.0, true, 60.0, true, 40.0, true)
	f.Add(0.0, false, 0.0, false, 0.0, false)
	f.Add(-50.0, true, 1e9, true, math.NaN(), false)

	f.Fuzz(func(t *testing.T, popScore float64, popOK bool, habScore float64, habOK bool, divScore float64, divOK bool) {
		mpa := schema.MPA{ID: "fuzz", Name: "Fuzz MPA"}
		result := Combine(mpa,
			SourceInput{Score: popScore, Available: popOK},
			SourceInput{Score: habScore, Available: habOK},
			SourceInput{Score: divScore, Available: divOK},
			nil,
		)
		if result.Score < 0 || result.Score > 100 {
			t.Fatalf("score out of range: %d", result.Score)
		}

		var liveSum float64
		for _, b := range []schema.SourceBreakdown{result.Population, result.Habitat, result.Diversity} {
			if b.Available {
				liveSum += b.WeightPercent
			} else if result.SourcesAvailable > 0 && b.WeightPercent != 0 {
				t.Fatalf("unavailable source weight = %f, want 0", b.WeightPercent)
			}
		}
		if result.SourcesAvailable > 0 && math.Abs(liveSum-100.0) > 1e-6 {
			t.Fatalf("live weights sum to %f, want 100", liveSum)
		}
	})
}

// FuzzShannonIndex fuzzes the diversity index with random count arrays.
func FuzzShannonIndex(f *testing.F) {
	seeds := []string{
		"[1,2,3]",
		"[0,0,0]",
		"[100]",
		"[]",
		"[5,5,5,5]",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, countsJSON string) {
		counts := []int{}
		if countsJSON != "" && countsJSON[0] == '[' && countsJSON[len(countsJSON)-1] == ']' {
			inner := countsJSON[1 : len(countsJSON)-1]
			if inner != "" {
				for p := range strings.SplitSeq(inner, ",") {
					if n, err := strconv.Atoi(strings.TrimSpace(p)); err == nil {
						counts = append(counts, n)
					}
				}
			}
		}
		h := ShannonIndex(counts)
		if math.IsNaN(h) || h < 0 {
			t.Fatalf("index must be a non-negative number, got %f", h)
		}
	})
}
