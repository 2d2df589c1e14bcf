package agg

import (
	"time"

	"github.com/oceanpulse/oceanpulse/core/algo"
	"github.com/oceanpulse/oceanpulse/schema"
)

// MatchPresences maps occurrence records onto the curated indicator-species
// list, by normalized scientific name first and OBIS taxon id as fallback.
// Records matching no indicator species are ignored; they are simply not
// indicator species for this MPA.
func MatchPresences(relevant []schema.IndicatorSpecies, records []schema.OccurrenceRecord) map[string]schema.SpeciesPresence {
	byName := make(map[string]string, len(relevant))
	byTaxon := make(map[int64]string)
	for _, sp := range relevant {
		byName[schema.NormalizeScientificName(sp.ScientificName)] = sp.ID
		if sp.OBISTaxonID != 0 {
			byTaxon[sp.OBISTaxonID] = sp.ID
		}
	}

	presences := make(map[string]schema.SpeciesPresence, len(relevant))
	for _, sp := range relevant {
		presences[sp.ID] = schema.SpeciesPresence{
			SpeciesID:      sp.ID,
			ScientificName: sp.ScientificName,
			Confidence:     schema.ConfidenceLow,
		}
	}

	for _, rec := range records {
		if rec.Absent {
			continue
		}
		id, ok := byName[schema.NormalizeScientificName(rec.ScientificName)]
		if !ok {
			id, ok = byTaxon[rec.TaxonID]
			if !ok {
				continue
			}
		}
		p := presences[id]
		p.Present = true
		p.Occurrences++
		if rec.EventDate.After(p.LastSeen) {
			p.LastSeen = rec.EventDate
		}
		presences[id] = p
	}

	for id, p := range presences {
		p.Confidence = schema.PresenceConfidence(p.Occurrences)
		presences[id] = p
	}
	return presences
}

// BuildIndicatorSummary matches occurrences against the relevant indicator
// species and scores the result. categoryWeights overrides the fixed category
// weights when non-nil.
func BuildIndicatorSummary(relevant []schema.IndicatorSpecies, records []schema.OccurrenceRecord, categoryWeights map[schema.SpeciesCategory]float64) schema.IndicatorSummary {
	summary := algo.ScoreIndicators(relevant, MatchPresences(relevant, records), categoryWeights)
	summary.LastUpdated = time.Now().UTC()
	return summary
}
