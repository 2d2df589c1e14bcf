package agg

import (
	"math"
	"sort"
	"time"

	"github.com/oceanpulse/oceanpulse/schema"
)

// DefaultCellSizeDeg is the density-grid resolution when the caller does not
// override it: roughly 11km at the equator.
const DefaultCellSizeDeg = 0.1

// SummarizeTracking reduces raw tracking fixes into per-individual residency
// metrics and a heatmap-ready density grid over the MPA bounds. Fixes with a
// missing individual id or zero timestamp are skipped. The grid only counts
// fixes inside the bounds; residency is the fraction of an individual's fixes
// that fall inside.
func SummarizeTracking(points []schema.TrackingPoint, bounds schema.GeoBounds, cellSizeDeg float64) schema.TrackingSummary {
	if cellSizeDeg <= 0 {
		cellSizeDeg = DefaultCellSizeDeg
	}

	type indivAccum struct {
		species   string
		points    int
		inside    int
		firstSeen time.Time
		lastSeen  time.Time
		months    map[string]struct{}
	}

	byIndividual := make(map[string]*indivAccum)
	type cellKey struct{ row, col int }
	cells := make(map[cellKey]int)
	var valid int

	for _, p := range points {
		if p.IndividualID == "" || p.Timestamp.IsZero() {
			continue
		}
		valid++

		acc := byIndividual[p.IndividualID]
		if acc == nil {
			acc = &indivAccum{
				species:   p.Species,
				firstSeen: p.Timestamp,
				lastSeen:  p.Timestamp,
				months:    make(map[string]struct{}),
			}
			byIndividual[p.IndividualID] = acc
		}
		if acc.species == "" && p.Species != "" {
			acc.species = p.Species
		}
		acc.points++
		acc.months[schema.MonthKey(p.Timestamp)] = struct{}{}
		if p.Timestamp.Before(acc.firstSeen) {
			acc.firstSeen = p.Timestamp
		}
		if p.Timestamp.After(acc.lastSeen) {
			acc.lastSeen = p.Timestamp
		}

		if bounds.Contains(p.Lat, p.Lon) {
			acc.inside++
			cells[cellKey{
				row: int(math.Floor(p.Lat / cellSizeDeg)),
				col: int(math.Floor(p.Lon / cellSizeDeg)),
			}]++
		}
	}

	individuals := make([]schema.IndividualSummary, 0, len(byIndividual))
	for id, acc := range byIndividual {
		individuals = append(individuals, schema.IndividualSummary{
			IndividualID:  id,
			Species:       acc.species,
			Points:        acc.points,
			PointsInside:  acc.inside,
			FirstSeen:     acc.firstSeen,
			LastSeen:      acc.lastSeen,
			DaySpan:       int(acc.lastSeen.Sub(acc.firstSeen).Hours()/24) + 1,
			MonthsPresent: len(acc.months),
			Residency:     float64(acc.inside) / float64(acc.points),
		})
	}
	sort.Slice(individuals, func(i, j int) bool {
		if individuals[i].Points != individuals[j].Points {
			return individuals[i].Points > individuals[j].Points
		}
		return individuals[i].IndividualID < individuals[j].IndividualID
	})

	var maxCount int
	for _, c := range cells {
		if c > maxCount {
			maxCount = c
		}
	}
	grid := make([]schema.DensityCell, 0, len(cells))
	for key, count := range cells {
		grid = append(grid, schema.DensityCell{
			Lat:       (float64(key.row) + 0.5) * cellSizeDeg,
			Lon:       (float64(key.col) + 0.5) * cellSizeDeg,
			Count:     count,
			Intensity: float64(count) / float64(maxCount),
		})
	}
	sort.Slice(grid, func(i, j int) bool {
		return grid[i].Count > grid[j].Count
	})

	return schema.TrackingSummary{
		Individuals: individuals,
		Grid:        grid,
		PointCount:  valid,
		CellSizeDeg: cellSizeDeg,
		LastUpdated: time.Now().UTC(),
	}
}
