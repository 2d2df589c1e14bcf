package algo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oceanpulse/oceanpulse/schema"
)

func envSeries(values ...float64) []schema.EnvDataPoint {
	pts := make([]schema.EnvDataPoint, len(values))
	for i, v := range values {
		pts[i] = schema.EnvDataPoint{Month: monthLabel(i), Value: v, Records: 1}
	}
	return pts
}

func tempThreshold() *schema.Threshold {
	t := schema.DefaultThresholds()[schema.ParamTemperature]
	return &t
}

func TestDetectAnomaliesThresholdBreaches(t *testing.T) {
	// One month past CritMax, one past CritMin.
	anomalies := DetectAnomalies(schema.ParamTemperature,
		envSeries(20, 21, 33, 22, 12, 21), tempThreshold())

	var spikes, drops int
	for _, a := range anomalies {
		switch a.Kind {
		case schema.AnomalySpike:
			spikes++
			assert.Equal(t, schema.SeverityHigh, a.Severity)
			assert.Equal(t, 33.0, a.Value)
		case schema.AnomalyDrop:
			drops++
			assert.Equal(t, schema.SeverityHigh, a.Severity)
			assert.Equal(t, 12.0, a.Value)
		}
	}
	assert.Equal(t, 1, spikes)
	assert.Equal(t, 1, drops)
}

func TestDetectAnomaliesStatisticalSpike(t *testing.T) {
	// No threshold: the outlier is caught by the two-sigma rule instead.
	anomalies := DetectAnomalies(schema.ParamOther,
		envSeries(10, 10, 10, 10, 10, 10, 10, 10, 10, 25), nil)

	assert.Len(t, anomalies, 1)
	assert.Equal(t, schema.AnomalySpike, anomalies[0].Kind)
	assert.Equal(t, schema.SeverityMedium, anomalies[0].Severity)
	assert.InDelta(t, 11.5, anomalies[0].Baseline, 1e-9)
}

func TestDetectAnomaliesSustainedChange(t *testing.T) {
	// Four consecutive months above WarnMax (28) but below CritMax (32).
	anomalies := DetectAnomalies(schema.ParamTemperature,
		envSeries(22, 23, 29, 30, 29.5, 30.5, 23), tempThreshold())

	var sustained []schema.EnvironmentalAnomaly
	for _, a := range anomalies {
		if a.Kind == schema.AnomalySustained {
			sustained = append(sustained, a)
		}
	}
	assert.Len(t, sustained, 1)
	assert.Equal(t, schema.SeverityMedium, sustained[0].Severity)
	assert.Equal(t, monthLabel(2), sustained[0].StartMonth)
	assert.Equal(t, monthLabel(5), sustained[0].EndMonth)
	assert.Equal(t, 30.5, sustained[0].Value)
}

func TestDetectAnomaliesSustainedCritical(t *testing.T) {
	// A run entirely past the critical bound is high severity.
	anomalies := DetectAnomalies(schema.ParamTemperature,
		envSeries(22, 33, 34, 33.5, 22, 22), tempThreshold())

	var sustained int
	for _, a := range anomalies {
		if a.Kind == schema.AnomalySustained {
			sustained++
			assert.Equal(t, schema.SeverityHigh, a.Severity)
		}
	}
	assert.Equal(t, 1, sustained)
}

func TestDetectAnomaliesShortRunIgnored(t *testing.T) {
	// Two warm months are not a sustained change.
	anomalies := DetectAnomalies(schema.ParamTemperature,
		envSeries(22, 29, 30, 22, 22, 22), tempThreshold())
	for _, a := range anomalies {
		assert.NotEqual(t, schema.AnomalySustained, a.Kind)
	}
}

func TestDetectAnomaliesEmpty(t *testing.T) {
	assert.Empty(t, DetectAnomalies(schema.ParamTemperature, nil, tempThreshold()))
}
