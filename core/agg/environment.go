package agg

import (
	"sort"
	"time"

	"github.com/oceanpulse/oceanpulse/core/algo"
	"github.com/oceanpulse/oceanpulse/schema"
)

// maxParameterMonths bounds the monthly series kept per parameter. Older
// buckets are dropped so a long-lived MPA does not grow unbounded series.
const maxParameterMonths = 24

// ProcessMeasurements groups raw measurements by normalized parameter type
// and reduces each group to a monthly series with current/average/min/max
// statistics, a trend and a threshold status. Measurements missing a
// determined date are skipped.
func ProcessMeasurements(measurements []schema.EnvironmentalMeasurement) []schema.EnvironmentalParameter {
	type paramAccum struct {
		unit   string
		months map[string]*monthAccum
		latest time.Time
		last   float64
		sum    float64
		min    float64
		max    float64
		count  int
	}

	byParam := make(map[schema.ParameterType]*paramAccum)
	for _, m := range measurements {
		if m.DeterminedDate.IsZero() {
			continue
		}
		param := schema.NormalizeParameterType(m.MeasurementType)

		acc := byParam[param]
		if acc == nil {
			acc = &paramAccum{months: make(map[string]*monthAccum)}
			byParam[param] = acc
		}
		if acc.unit == "" && m.Unit != "" {
			acc.unit = m.Unit
		}
		if acc.count == 0 || m.Value < acc.min {
			acc.min = m.Value
		}
		if acc.count == 0 || m.Value > acc.max {
			acc.max = m.Value
		}
		if m.DeterminedDate.After(acc.latest) {
			acc.latest = m.DeterminedDate
			acc.last = m.Value
		}
		acc.sum += m.Value
		acc.count++

		month := schema.MonthKey(m.DeterminedDate)
		ma := acc.months[month]
		if ma == nil {
			ma = &monthAccum{}
			acc.months[month] = ma
		}
		ma.sum += m.Value
		ma.count++
	}

	thresholds := schema.DefaultThresholds()
	params := make([]schema.EnvironmentalParameter, 0, len(byParam))
	for param, acc := range byParam {
		points := monthlyPoints(acc.months)

		values := make([]float64, len(points))
		for i, p := range points {
			values[i] = p.Value
		}
		label, _ := algo.ClassifyValues(values)

		ep := schema.EnvironmentalParameter{
			Type:    param,
			Unit:    acc.unit,
			Current: acc.last,
			Average: acc.sum / float64(acc.count),
			Min:     acc.min,
			Max:     acc.max,
			Trend:   label,
			Points:  points,
		}
		if th, ok := thresholds[param]; ok {
			th.Status = th.StatusFor(ep.Current)
			ep.Threshold = &th
		}
		params = append(params, ep)
	}
	sort.Slice(params, func(i, j int) bool {
		return params[i].Type < params[j].Type
	})
	return params
}

type monthAccum struct {
	sum   float64
	count int
}

// monthlyPoints flattens the month buckets into a sorted series of monthly
// averages, keeping only the most recent maxParameterMonths buckets.
func monthlyPoints(months map[string]*monthAccum) []schema.EnvDataPoint {
	points := make([]schema.EnvDataPoint, 0, len(months))
	for month, ma := range months {
		points = append(points, schema.EnvDataPoint{
			Month:   month,
			Value:   ma.sum / float64(ma.count),
			Records: ma.count,
		})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Month < points[j].Month
	})
	if len(points) > maxParameterMonths {
		points = points[len(points)-maxParameterMonths:]
	}
	return points
}

// BuildHabitatSummary runs the full habitat pipeline: parameter grouping,
// anomaly detection and the habitat-quality score. Empty input yields an
// explicit zero summary with no parameters, which downstream consumers read
// as the habitat source being unavailable.
func BuildHabitatSummary(measurements []schema.EnvironmentalMeasurement) schema.HabitatSummary {
	params := ProcessMeasurements(measurements)

	var anomalies []schema.EnvironmentalAnomaly
	var records int
	for _, p := range params {
		anomalies = append(anomalies, algo.DetectAnomalies(p.Type, p.Points, p.Threshold)...)
		for _, pt := range p.Points {
			records += pt.Records
		}
	}

	return schema.HabitatSummary{
		Parameters:  params,
		Anomalies:   anomalies,
		Score:       algo.HabitatScore(params),
		DataQuality: schema.VolumeQuality(records),
		LastUpdated: time.Now().UTC(),
	}
}
