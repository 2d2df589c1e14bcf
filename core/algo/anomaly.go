package algo

import (
	"math"

	"github.com/oceanpulse/oceanpulse/schema"
)

// minStatPoints is the minimum series length before statistical (mean/stddev)
// anomaly detection kicks in. Threshold breaches are flagged regardless.
const minStatPoints = 3

// sustainedRun is how many consecutive months must breach the same warning
// bound before the run is reported as a sustained_change.
const sustainedRun = 3

// DetectAnomalies scans a monthly parameter series for spikes, drops and
// sustained changes. Threshold breaches beyond the critical bounds are high
// severity; excursions beyond two standard deviations of the series mean are
// medium. A run of sustainedRun or more consecutive months past the same
// warning bound is reported once, spanning the run, and upgraded to high
// severity when every month of the run breaches the critical bound too.
func DetectAnomalies(param schema.ParameterType, points []schema.EnvDataPoint, threshold *schema.Threshold) []schema.EnvironmentalAnomaly {
	var anomalies []schema.EnvironmentalAnomaly
	if len(points) == 0 {
		return anomalies
	}

	baseline := envMean(points)
	stddev := envStddev(points, baseline)

	for _, p := range points {
		if a, ok := pointAnomaly(param, p, threshold, baseline, stddev, len(points)); ok {
			anomalies = append(anomalies, a)
		}
	}

	anomalies = append(anomalies, sustainedAnomalies(param, points, threshold, baseline)...)
	return anomalies
}

func pointAnomaly(param schema.ParameterType, p schema.EnvDataPoint, threshold *schema.Threshold, baseline, stddev float64, n int) (schema.EnvironmentalAnomaly, bool) {
	a := schema.EnvironmentalAnomaly{
		Parameter:  param,
		StartMonth: p.Month,
		EndMonth:   p.Month,
		Value:      p.Value,
		Baseline:   baseline,
	}

	if threshold != nil {
		if p.Value > threshold.CritMax {
			a.Kind = schema.AnomalySpike
			a.Severity = schema.SeverityHigh
			return a, true
		}
		if p.Value < threshold.CritMin {
			a.Kind = schema.AnomalyDrop
			a.Severity = schema.SeverityHigh
			return a, true
		}
	}

	if n >= minStatPoints && stddev > 0 {
		if p.Value > baseline+2*stddev {
			a.Kind = schema.AnomalySpike
			a.Severity = schema.SeverityMedium
			return a, true
		}
		if p.Value < baseline-2*stddev {
			a.Kind = schema.AnomalyDrop
			a.Severity = schema.SeverityMedium
			return a, true
		}
	}

	return schema.EnvironmentalAnomaly{}, false
}

// sustainedAnomalies finds runs of consecutive months stuck past the same
// warning bound. Each maximal run of sufficient length yields one anomaly.
func sustainedAnomalies(param schema.ParameterType, points []schema.EnvDataPoint, threshold *schema.Threshold, baseline float64) []schema.EnvironmentalAnomaly {
	if threshold == nil {
		return nil
	}

	var anomalies []schema.EnvironmentalAnomaly
	// side: +1 above WarnMax, -1 below WarnMin, 0 within band.
	runStart, runSide := -1, 0

	flush := func(end int) {
		runLen := end - runStart
		if runSide == 0 || runLen < sustainedRun {
			return
		}
		severity := schema.SeverityHigh
		var peak float64
		for i := runStart; i < end; i++ {
			v := points[i].Value
			if runSide > 0 {
				if v <= threshold.CritMax {
					severity = schema.SeverityMedium
				}
				if i == runStart || v > peak {
					peak = v
				}
			} else {
				if v >= threshold.CritMin {
					severity = schema.SeverityMedium
				}
				if i == runStart || v < peak {
					peak = v
				}
			}
		}
		anomalies = append(anomalies, schema.EnvironmentalAnomaly{
			Parameter:  param,
			Kind:       schema.AnomalySustained,
			Severity:   severity,
			StartMonth: points[runStart].Month,
			EndMonth:   points[end-1].Month,
			Value:      peak,
			Baseline:   baseline,
		})
	}

	for i, p := range points {
		side := 0
		if p.Value > threshold.WarnMax {
			side = 1
		} else if p.Value < threshold.WarnMin {
			side = -1
		}
		if side != runSide {
			if runSide != 0 {
				flush(i)
			}
			runStart, runSide = i, side
		}
	}
	if runSide != 0 {
		flush(len(points))
	}
	return anomalies
}

func envMean(points []schema.EnvDataPoint) float64 {
	if len(points) == 0 {
		return 0
	}
	var sum float64
	for _, p := range points {
		sum += p.Value
	}
	return sum / float64(len(points))
}

func envStddev(points []schema.EnvDataPoint, mean float64) float64 {
	if len(points) < 2 {
		return 0
	}
	var sq float64
	for _, p := range points {
		d := p.Value - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(points)))
}
