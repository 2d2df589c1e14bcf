package algo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oceanpulse/oceanpulse/schema"
)

func TestShannonIndex(t *testing.T) {
	tests := []struct {
		name   string
		counts []int
		want   float64
	}{
		{"empty", nil, 0},
		{"single species", []int{42}, 0},
		{"two even species", []int{10, 10}, math.Log(2)},
		{"four even species", []int{5, 5, 5, 5}, math.Log(4)},
		{"zero counts skipped", []int{10, 0, 10, -3}, math.Log(2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ShannonIndex(tt.counts), 1e-9)
		})
	}
}

func TestShannonIndexUnevenLowerThanEven(t *testing.T) {
	even := ShannonIndex([]int{20, 20, 20})
	skewed := ShannonIndex([]int{56, 2, 2})
	assert.Greater(t, even, skewed)
}

func TestBiodiversityScore(t *testing.T) {
	trend := func(label schema.TrendLabel) schema.AbundanceTrend {
		return schema.AbundanceTrend{Trend: label}
	}

	tests := []struct {
		name   string
		trends []schema.AbundanceTrend
		want   float64
	}{
		{"no trends", nil, 0},
		{"all indeterminate", []schema.AbundanceTrend{trend(schema.TrendInsufficientData)}, 0},
		{"single increasing", []schema.AbundanceTrend{trend(schema.TrendIncreasing)}, 100},
		{"single decreasing", []schema.AbundanceTrend{trend(schema.TrendDecreasing)}, 30},
		{
			"mixed, indeterminate excluded from mean",
			[]schema.AbundanceTrend{
				trend(schema.TrendIncreasing),
				trend(schema.TrendStable),
				trend(schema.TrendInsufficientData),
			},
			85,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, BiodiversityScore(tt.trends), 1e-9)
		})
	}
}
