package agg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oceanpulse/oceanpulse/schema"
)

var trackingBounds = schema.GeoBounds{MinLat: 33.0, MaxLat: 35.0, MinLon: -120.0, MaxLon: -118.0}

func fix(id string, day int, lat, lon float64) schema.TrackingPoint {
	return schema.TrackingPoint{
		IndividualID: id,
		Species:      "Carcharodon carcharias",
		Timestamp:    time.Date(2023, time.July, day, 6, 0, 0, 0, time.UTC),
		Lat:          lat,
		Lon:          lon,
	}
}

func TestSummarizeTrackingResidency(t *testing.T) {
	points := []schema.TrackingPoint{
		fix("shark-1", 1, 34.0, -119.0),
		fix("shark-1", 5, 34.1, -119.1),
		fix("shark-1", 10, 40.0, -119.0), // outside the bounds
		fix("shark-2", 3, 34.5, -118.5),
	}

	summary := SummarizeTracking(points, trackingBounds, 0)

	assert.Equal(t, 4, summary.PointCount)
	assert.Equal(t, DefaultCellSizeDeg, summary.CellSizeDeg)
	require.Len(t, summary.Individuals, 2)

	// Most-tracked individual sorts first.
	first := summary.Individuals[0]
	assert.Equal(t, "shark-1", first.IndividualID)
	assert.Equal(t, 3, first.Points)
	assert.Equal(t, 2, first.PointsInside)
	assert.InDelta(t, 2.0/3.0, first.Residency, 1e-9)
	assert.Equal(t, 10, first.DaySpan)
	assert.Equal(t, 1, first.MonthsPresent)
}

func TestSummarizeTrackingGrid(t *testing.T) {
	points := []schema.TrackingPoint{
		fix("shark-1", 1, 34.01, -119.01),
		fix("shark-1", 2, 34.02, -119.02), // same 0.1-degree cell
		fix("shark-2", 3, 34.55, -118.55),
		fix("shark-2", 4, 40.0, -119.0), // outside, excluded from the grid
	}

	summary := SummarizeTracking(points, trackingBounds, 0.1)

	require.Len(t, summary.Grid, 2)
	hottest := summary.Grid[0]
	assert.Equal(t, 2, hottest.Count)
	assert.InDelta(t, 1.0, hottest.Intensity, 1e-9)
	assert.InDelta(t, 0.5, summary.Grid[1].Intensity, 1e-9)
	assert.InDelta(t, 34.05, hottest.Lat, 1e-9)
}

func TestSummarizeTrackingSkipsMalformed(t *testing.T) {
	points := []schema.TrackingPoint{
		{IndividualID: "", Timestamp: time.Now()},
		{IndividualID: "shark-1"},
		fix("shark-1", 1, 34.0, -119.0),
	}

	summary := SummarizeTracking(points, trackingBounds, 0)
	assert.Equal(t, 1, summary.PointCount)
	require.Len(t, summary.Individuals, 1)
}

func TestSummarizeTrackingEmpty(t *testing.T) {
	summary := SummarizeTracking(nil, trackingBounds, 0)
	assert.Zero(t, summary.PointCount)
	assert.Empty(t, summary.Individuals)
	assert.Empty(t, summary.Grid)
}
