package core

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/oceanpulse/oceanpulse/core/agg"
	"github.com/oceanpulse/oceanpulse/core/algo"
	"github.com/oceanpulse/oceanpulse/internal/contract"
	"github.com/oceanpulse/oceanpulse/internal/sources"
	"github.com/oceanpulse/oceanpulse/schema"
)

// Sources bundles the external collaborators an assessment run reads from.
// OBIS serves both the occurrence and the environment roles in production;
// tests swap individual fields for fakes.
type Sources struct {
	Occurrences contract.OccurrenceSource
	Environment contract.EnvironmentSource
	Tracking    contract.TrackingSource
	Catalog     contract.SpeciesCatalog
}

// NewDefaultSources builds the production source set from the config.
func NewDefaultSources(cfg *contract.Config) (*Sources, error) {
	catalog, err := sources.LoadCatalog()
	if err != nil {
		return nil, fmt.Errorf("failed to load indicator species catalog: %w", err)
	}
	obis := sources.NewOBISClient(cfg.OBISBaseURL, cfg.SourceTimeout)
	return &Sources{
		Occurrences: obis,
		Environment: obis,
		Tracking:    sources.NewTrackingClient(cfg.TrackingBaseURL, cfg.SourceTimeout),
		Catalog:     catalog,
	}, nil
}

// fetchWithTimeout runs one source fetch under the per-source timeout. A
// timeout or transport failure is degradation, not a fatal error: the source
// is reported unavailable through an empty record set.
func fetchWithTimeout[T any](ctx context.Context, cfg *contract.Config, what string, fetch func(context.Context) ([]T, error)) []T {
	fetchCtx, cancel := context.WithTimeout(ctx, cfg.SourceTimeout)
	defer cancel()

	records, err := fetch(fetchCtx)
	if err != nil {
		contract.LogWarn(fmt.Sprintf("%s source unavailable", what), err)
		return nil
	}
	return records
}

// runSpeciesCore produces the abundance summary, cache-first.
func runSpeciesCore(ctx context.Context, cfg *contract.Config, srcs *Sources, mgr contract.CacheManager) (schema.AbundanceSummary, error) {
	return cachedSummary(cfg, mgr, "abundance", func() (schema.AbundanceSummary, error) {
		records := fetchWithTimeout(ctx, cfg, "occurrence", func(c context.Context) ([]schema.OccurrenceRecord, error) {
			return srcs.Occurrences.FetchOccurrences(c, cfg.MPA, cfg.StartTime, cfg.EndTime)
		})
		return agg.BuildAbundanceSummary(records), nil
	})
}

// runHabitatCore produces the habitat summary, cache-first.
func runHabitatCore(ctx context.Context, cfg *contract.Config, srcs *Sources, mgr contract.CacheManager) (schema.HabitatSummary, error) {
	return cachedSummary(cfg, mgr, "habitat", func() (schema.HabitatSummary, error) {
		measurements := fetchWithTimeout(ctx, cfg, "environment", func(c context.Context) ([]schema.EnvironmentalMeasurement, error) {
			return srcs.Environment.FetchMeasurements(c, cfg.MPA, cfg.StartTime, cfg.EndTime)
		})
		return agg.BuildHabitatSummary(measurements), nil
	})
}

// runIndicatorCore produces the indicator-species summary, cache-first.
func runIndicatorCore(ctx context.Context, cfg *contract.Config, srcs *Sources, mgr contract.CacheManager) (schema.IndicatorSummary, error) {
	return cachedSummary(cfg, mgr, "indicator", func() (schema.IndicatorSummary, error) {
		relevant := sources.FilterByEcosystems(srcs.Catalog.RelevantSpecies(cfg.MPA), cfg.Ecosystems)
		records := fetchWithTimeout(ctx, cfg, "occurrence", func(c context.Context) ([]schema.OccurrenceRecord, error) {
			return srcs.Occurrences.FetchOccurrences(c, cfg.MPA, cfg.StartTime, cfg.EndTime)
		})
		return agg.BuildIndicatorSummary(relevant, records, cfg.ComputedCategoryWeights), nil
	})
}

// runTrackingCore produces the movement summary, cache-first.
func runTrackingCore(ctx context.Context, cfg *contract.Config, srcs *Sources, mgr contract.CacheManager) (schema.TrackingSummary, error) {
	return cachedSummary(cfg, mgr, "tracking", func() (schema.TrackingSummary, error) {
		points := fetchWithTimeout(ctx, cfg, "tracking", func(c context.Context) ([]schema.TrackingPoint, error) {
			return srcs.Tracking.FetchTracks(c, cfg.MPA, cfg.StartTime, cfg.EndTime)
		})
		return agg.SummarizeTracking(points, sources.Bounds(cfg.MPA), cfg.CellSizeDeg), nil
	})
}

// runAssessmentCore performs the common fetch fan-out, scoring, and history
// tracking steps behind a full assessment.
func runAssessmentCore(ctx context.Context, cfg *contract.Config, srcs *Sources, mgr contract.CacheManager) (schema.AssessmentOutput, error) {
	if !shouldSuppressHeader(ctx) {
		contract.LogAssessmentHeader(cfg)
	}

	// --- 0. Begin Assessment Tracking (if configured) ---
	var assessmentID int64
	var assessmentStore contract.AssessmentStore
	if mgr != nil {
		assessmentStore = mgr.GetAssessmentStore()
	}
	if assessmentStore != nil {
		configParams := map[string]any{
			"mpa_id":       cfg.MPA.ID,
			"mpa_name":     cfg.MPA.Name,
			"lat":          cfg.MPA.Lat,
			"lon":          cfg.MPA.Lon,
			"radius_km":    cfg.MPA.RadiusKm,
			"window_start": cfg.StartTime.Format(contract.DateTimeFormat),
			"window_end":   cfg.EndTime.Format(contract.DateTimeFormat),
		}
		var err error
		assessmentID, err = assessmentStore.BeginAssessment(time.Now(), configParams)
		if err != nil {
			contract.LogWarn("Assessment tracking initialization failed", err)
			assessmentID = 0
		}
	}

	// --- 1. Fetch Fan-Out ---
	// Each domain goes through its own cache entry and its own per-source
	// timeout. Goroutines write to distinct fields, which is safe.
	var output schema.AssessmentOutput
	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		output.Abundance, _ = runSpeciesCore(ctx, cfg, srcs, mgr)
	}()
	go func() {
		defer wg.Done()
		output.Habitat, _ = runHabitatCore(ctx, cfg, srcs, mgr)
	}()
	go func() {
		defer wg.Done()
		output.Indicator, _ = runIndicatorCore(ctx, cfg, srcs, mgr)
	}()
	go func() {
		defer wg.Done()
		output.Tracking, _ = runTrackingCore(ctx, cfg, srcs, mgr)
	}()
	wg.Wait()

	// --- 2. Composite Scoring ---
	output.Composite = algo.Combine(cfg.MPA,
		algo.SourceInput{Score: output.Abundance.Score, Available: output.Abundance.Available()},
		algo.SourceInput{Score: output.Habitat.Score, Available: output.Habitat.Available()},
		algo.SourceInput{Score: output.Indicator.Percentage, Available: output.Indicator.Available()},
		cfg.ComputedSourceWeights,
	)
	output.Composite.CalculatedAt = time.Now().UTC()

	// --- 3. End Assessment Tracking ---
	if assessmentStore != nil && assessmentID > 0 {
		if err := assessmentStore.RecordMPAScore(assessmentID, output.Composite,
			output.Abundance.SpeciesCount, output.Abundance.RecordCount); err != nil {
			contract.LogWarn("Failed to record MPA score", err)
		}
		if err := assessmentStore.EndAssessment(assessmentID, time.Now(), output.Composite.SourcesAvailable); err != nil {
			contract.LogWarn("Failed to finalize assessment tracking", err)
		}
	}

	return output, nil
}
