package agg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oceanpulse/oceanpulse/schema"
)

func meas(mtype string, value float64, year int, month time.Month, day int) schema.EnvironmentalMeasurement {
	return schema.EnvironmentalMeasurement{
		MeasurementType: mtype,
		Value:           value,
		DeterminedDate:  time.Date(year, month, day, 12, 0, 0, 0, time.UTC),
	}
}

func TestProcessMeasurementsSynonymGrouping(t *testing.T) {
	measurements := []schema.EnvironmentalMeasurement{
		meas("Sea surface temperature", 21.0, 2023, time.January, 5),
		meas("water temp", 23.0, 2023, time.February, 5),
		meas("SST", 22.0, 2023, time.March, 5),
		meas("Chlorophyll-a concentration", 1.2, 2023, time.January, 5),
	}

	params := ProcessMeasurements(measurements)
	require.Len(t, params, 2)

	// Sorted by type: chlorophyll before temperature.
	assert.Equal(t, schema.ParamChlorophyll, params[0].Type)
	temp := params[1]
	assert.Equal(t, schema.ParamTemperature, temp.Type)
	assert.Len(t, temp.Points, 3)
	assert.Equal(t, 22.0, temp.Current, "most recent measurement wins")
	assert.InDelta(t, 22.0, temp.Average, 1e-9)
	assert.Equal(t, 21.0, temp.Min)
	assert.Equal(t, 23.0, temp.Max)
}

func TestProcessMeasurementsThresholdStatus(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  schema.ThresholdStatus
	}{
		{"optimal temperature", 24.0, schema.StatusNormal},
		{"warm temperature", 30.0, schema.StatusWarning},
		{"critical temperature", 33.0, schema.StatusCritical},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := ProcessMeasurements([]schema.EnvironmentalMeasurement{
				meas("temperature", tt.value, 2023, time.June, 1),
			})
			require.Len(t, params, 1)
			require.NotNil(t, params[0].Threshold)
			assert.Equal(t, tt.want, params[0].Threshold.Status)
		})
	}
}

func TestProcessMeasurementsDepthHasNoThreshold(t *testing.T) {
	params := ProcessMeasurements([]schema.EnvironmentalMeasurement{
		meas("depth", 120.0, 2023, time.June, 1),
	})
	require.Len(t, params, 1)
	assert.Nil(t, params[0].Threshold)
}

func TestProcessMeasurementsUnknownTypeKept(t *testing.T) {
	params := ProcessMeasurements([]schema.EnvironmentalMeasurement{
		meas("nitrate concentration", 0.4, 2023, time.June, 1),
	})
	require.Len(t, params, 1)
	assert.Equal(t, schema.ParamOther, params[0].Type)
}

func TestProcessMeasurementsMonthlyAveraging(t *testing.T) {
	params := ProcessMeasurements([]schema.EnvironmentalMeasurement{
		meas("salinity", 34.0, 2023, time.January, 1),
		meas("salinity", 36.0, 2023, time.January, 20),
	})
	require.Len(t, params, 1)
	require.Len(t, params[0].Points, 1)
	assert.InDelta(t, 35.0, params[0].Points[0].Value, 1e-9)
	assert.Equal(t, 2, params[0].Points[0].Records)
}

func TestBuildHabitatSummary(t *testing.T) {
	measurements := []schema.EnvironmentalMeasurement{
		meas("temperature", 24.0, 2023, time.January, 1),
		meas("temperature", 25.0, 2023, time.February, 1),
		meas("ph", 8.1, 2023, time.January, 1),
	}

	summary := BuildHabitatSummary(measurements)

	assert.True(t, summary.Available())
	assert.InDelta(t, 100.0, summary.Score, 1e-9, "all parameters in optimal range")
	assert.Empty(t, summary.Anomalies)
	assert.Len(t, summary.Parameters, 2)
}

func TestBuildHabitatSummaryDegraded(t *testing.T) {
	measurements := []schema.EnvironmentalMeasurement{
		meas("temperature", 30.0, 2023, time.June, 1), // warning
		meas("oxygen", 2.0, 2023, time.June, 1),       // critical
	}

	summary := BuildHabitatSummary(measurements)
	assert.InDelta(t, 65.0, summary.Score, 1e-9)
}

func TestBuildHabitatSummaryEmpty(t *testing.T) {
	summary := BuildHabitatSummary(nil)
	assert.False(t, summary.Available())
	assert.Zero(t, summary.Score)
	assert.Empty(t, summary.Parameters)
}
