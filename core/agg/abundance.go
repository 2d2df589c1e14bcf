// Package agg has aggregation logic that reduces raw source records into the
// per-domain summaries the scorers consume.
package agg

import (
	"sort"
	"time"

	"github.com/oceanpulse/oceanpulse/core/algo"
	"github.com/oceanpulse/oceanpulse/schema"
)

// BuildAbundanceSummary groups occurrence records by species, buckets each
// species into monthly counts and classifies its trend. Records missing a
// scientific name or event date are skipped; aggregation proceeds with the
// remaining valid records. Records flagged absent still count toward record
// volume but contribute zero individuals.
func BuildAbundanceSummary(records []schema.OccurrenceRecord) schema.AbundanceSummary {
	type speciesAccum struct {
		scientificName string
		commonName     string
		months         map[string]*schema.AbundanceDataPoint
		total          int
		individuals    int
	}

	bySpecies := make(map[string]*speciesAccum)
	var matched int

	for _, rec := range records {
		key := schema.NormalizeScientificName(rec.ScientificName)
		if key == "" || rec.EventDate.IsZero() {
			continue
		}
		matched++

		acc := bySpecies[key]
		if acc == nil {
			acc = &speciesAccum{
				scientificName: rec.ScientificName,
				commonName:     rec.CommonName,
				months:         make(map[string]*schema.AbundanceDataPoint),
			}
			bySpecies[key] = acc
		}
		if acc.commonName == "" && rec.CommonName != "" {
			acc.commonName = rec.CommonName
		}
		acc.total++

		month := schema.MonthKey(rec.EventDate)
		pt := acc.months[month]
		if pt == nil {
			pt = &schema.AbundanceDataPoint{Month: month}
			acc.months[month] = pt
		}
		pt.Records++
		if !rec.Absent {
			count := rec.IndividualCount
			if count <= 0 {
				count = 1 // presence-only record
			}
			pt.Count += count
			acc.individuals += count
		}
	}

	trends := make([]schema.AbundanceTrend, 0, len(bySpecies))
	speciesCounts := make([]int, 0, len(bySpecies))
	for _, acc := range bySpecies {
		points := make([]schema.AbundanceDataPoint, 0, len(acc.months))
		for _, pt := range acc.months {
			pt.Quality = schema.BucketQuality(pt.Records)
			points = append(points, *pt)
		}
		sort.Slice(points, func(i, j int) bool {
			return points[i].Month < points[j].Month
		})

		label, change := algo.ClassifyCounts(points)
		trends = append(trends, schema.AbundanceTrend{
			ScientificName: acc.scientificName,
			CommonName:     acc.commonName,
			Points:         points,
			Trend:          label,
			ChangePercent:  change,
			Confidence:     algo.TrendConfidence(points),
			TotalRecords:   acc.total,
		})
		speciesCounts = append(speciesCounts, acc.individuals)
	}
	sort.Slice(trends, func(i, j int) bool {
		if trends[i].TotalRecords != trends[j].TotalRecords {
			return trends[i].TotalRecords > trends[j].TotalRecords
		}
		return trends[i].ScientificName < trends[j].ScientificName
	})

	return schema.AbundanceSummary{
		Trends:       trends,
		Score:        algo.BiodiversityScore(trends),
		SpeciesCount: len(trends),
		RecordCount:  matched,
		ShannonIndex: algo.ShannonIndex(speciesCounts),
		DataQuality:  schema.VolumeQuality(matched),
		LastUpdated:  time.Now().UTC(),
	}
}
