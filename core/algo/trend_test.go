package algo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oceanpulse/oceanpulse/schema"
)

func points(counts ...int) []schema.AbundanceDataPoint {
	pts := make([]schema.AbundanceDataPoint, len(counts))
	for i, c := range counts {
		pts[i] = schema.AbundanceDataPoint{Month: monthLabel(i), Count: c}
	}
	return pts
}

func monthLabel(i int) string {
	months := []string{
		"2023-01", "2023-02", "2023-03", "2023-04", "2023-05", "2023-06",
		"2023-07", "2023-08", "2023-09", "2023-10", "2023-11", "2023-12",
		"2024-01", "2024-02", "2024-03", "2024-04", "2024-05", "2024-06",
	}
	return months[i%len(months)]
}

func TestClassifyCounts(t *testing.T) {
	tests := []struct {
		name       string
		counts     []int
		wantTrend  schema.TrendLabel
		wantChange float64
		approx     bool
	}{
		{"empty series", nil, schema.TrendInsufficientData, 0, false},
		{"single point", []int{10}, schema.TrendInsufficientData, 0, false},
		{"monotonic increase", []int{10, 20, 30, 40, 50, 60}, schema.TrendIncreasing, 0, true},
		{"monotonic decrease", []int{60, 50, 40, 30, 20, 10}, schema.TrendDecreasing, 0, true},
		{"flat series", []int{25, 25, 25, 25, 25, 25}, schema.TrendStable, 0, false},
		{"within dead band", []int{100, 102, 98, 101, 103, 105}, schema.TrendStable, 0, true},
		{"zero baseline growth", []int{0, 0, 0, 5, 10, 20}, schema.TrendIncreasing, 100, false},
		{"all zero counts", []int{0, 0, 0, 0, 0, 0}, schema.TrendInsufficientData, 0, false},
		{"zero then one late point", []int{0, 0, 0, 0, 0, 3}, schema.TrendIncreasing, 100, false},
		{"two point halving", []int{10, 5}, schema.TrendDecreasing, -50, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trend, change := ClassifyCounts(points(tt.counts...))
			assert.Equal(t, tt.wantTrend, trend)
			if !tt.approx {
				assert.InDelta(t, tt.wantChange, change, 1e-9)
			}
		})
	}
}

func TestClassifyCountsChangePercent(t *testing.T) {
	// First third mean = 10, last third mean = 5.
	trend, change := ClassifyCounts(points(10, 10, 10, 8, 6, 5, 5, 5, 5))
	assert.Equal(t, schema.TrendDecreasing, trend)
	assert.InDelta(t, -50.0, change, 1e-9)
}

func TestTrendConfidence(t *testing.T) {
	tests := []struct {
		name   string
		counts []int
		want   schema.Confidence
	}{
		{"too short", []int{5}, schema.ConfidenceLow},
		{"long and steady", []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, schema.ConfidenceHigh},
		{"medium length steady", []int{1, 2, 3, 4, 5, 6}, schema.ConfidenceMedium},
		{"short series", []int{1, 2, 3}, schema.ConfidenceLow},
		{"long but noisy", []int{1, 9, 2, 8, 3, 7, 4, 6, 5, 9, 1, 8}, schema.ConfidenceLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TrendConfidence(points(tt.counts...)))
		})
	}
}

func TestClassifyValues(t *testing.T) {
	trend, change := ClassifyValues([]float64{20, 21, 22, 26, 27, 28})
	assert.Equal(t, schema.TrendIncreasing, trend)
	assert.Greater(t, change, TrendBandPercent)

	trend, _ = ClassifyValues([]float64{8.1, 8.1, 8.1})
	assert.Equal(t, schema.TrendStable, trend)

	trend, _ = ClassifyValues([]float64{8.1})
	assert.Equal(t, schema.TrendInsufficientData, trend)
}
