// Package core has core logic for fetching, scoring and summarizing.
package core

import (
	"context"
	"time"

	"github.com/oceanpulse/oceanpulse/internal/contract"
	"github.com/oceanpulse/oceanpulse/internal/outwriter"
	"github.com/oceanpulse/oceanpulse/schema"
)

// GetAssessmentResults runs the full assessment and returns the raw output.
// It is the data entry point shared by the CLI and the MCP server.
func GetAssessmentResults(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) (schema.AssessmentOutput, time.Duration, error) {
	start := time.Now()
	srcs, err := NewDefaultSources(cfg)
	if err != nil {
		return schema.AssessmentOutput{}, 0, err
	}
	output, err := runAssessmentCore(ctx, cfg, srcs, mgr)
	return output, time.Since(start), err
}

// GetSpeciesResults runs the abundance-trend analysis and returns the summary.
func GetSpeciesResults(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) (schema.AbundanceSummary, time.Duration, error) {
	start := time.Now()
	srcs, err := NewDefaultSources(cfg)
	if err != nil {
		return schema.AbundanceSummary{}, 0, err
	}
	summary, err := runSpeciesCore(ctx, cfg, srcs, mgr)
	return summary, time.Since(start), err
}

// GetHabitatResults runs the habitat-quality analysis and returns the summary.
func GetHabitatResults(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) (schema.HabitatSummary, time.Duration, error) {
	start := time.Now()
	srcs, err := NewDefaultSources(cfg)
	if err != nil {
		return schema.HabitatSummary{}, 0, err
	}
	summary, err := runHabitatCore(ctx, cfg, srcs, mgr)
	return summary, time.Since(start), err
}

// GetTrackingResults runs the movement analysis and returns the summary.
func GetTrackingResults(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) (schema.TrackingSummary, time.Duration, error) {
	start := time.Now()
	srcs, err := NewDefaultSources(cfg)
	if err != nil {
		return schema.TrackingSummary{}, 0, err
	}
	summary, err := runTrackingCore(ctx, cfg, srcs, mgr)
	return summary, time.Since(start), err
}

// GetIndicatorResults runs the indicator-species analysis and returns the summary.
func GetIndicatorResults(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) (schema.IndicatorSummary, time.Duration, error) {
	start := time.Now()
	srcs, err := NewDefaultSources(cfg)
	if err != nil {
		return schema.IndicatorSummary{}, 0, err
	}
	summary, err := runIndicatorCore(ctx, cfg, srcs, mgr)
	return summary, time.Since(start), err
}

// ExecuteAssess runs the full assessment and prints results to stdout.
// It serves as the main entry point for the 'assess' command.
func ExecuteAssess(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	output, duration, err := GetAssessmentResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.WriteAssessmentResults(output, cfg, duration)
}

// ExecuteSpecies runs the abundance-trend analysis and prints results to stdout.
func ExecuteSpecies(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	summary, duration, err := GetSpeciesResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.WriteSpeciesResults(summary, cfg, duration)
}

// ExecuteHabitat runs the habitat-quality analysis and prints results to stdout.
func ExecuteHabitat(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	summary, duration, err := GetHabitatResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.WriteHabitatResults(summary, cfg, duration)
}

// ExecuteTracking runs the movement analysis and prints results to stdout.
func ExecuteTracking(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	summary, duration, err := GetTrackingResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.WriteTrackingResults(summary, cfg, duration)
}

// ExecuteIndicators runs the indicator-species analysis and prints results to stdout.
func ExecuteIndicators(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	summary, duration, err := GetIndicatorResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.WriteIndicatorResults(summary, cfg, duration)
}

// ExecuteMetrics displays the formal definitions of the scoring weights.
// This is a static display that does not require any source fetches.
func ExecuteMetrics(_ context.Context, cfg *contract.Config) error {
	return outwriter.WriteMetricsDefinitions(cfg.ComputedSourceWeights, cfg.ComputedCategoryWeights, cfg)
}
