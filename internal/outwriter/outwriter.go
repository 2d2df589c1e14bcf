// Package outwriter has output and writer logic.
package outwriter

import (
	"os"
	"time"

	"golang.org/x/term"

	"github.com/oceanpulse/oceanpulse/internal/contract"
	"github.com/oceanpulse/oceanpulse/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteAssessment prints the composite assessment using the configured output format.
func (ow *OutWriter) WriteAssessment(result schema.AssessmentOutput, cfg *contract.Config, duration time.Duration) error {
	return WriteAssessmentResults(result, cfg, duration)
}

// WriteSpecies prints species abundance trends using the configured output format.
func (ow *OutWriter) WriteSpecies(summary schema.AbundanceSummary, cfg *contract.Config, duration time.Duration) error {
	return WriteSpeciesResults(summary, cfg, duration)
}

// WriteHabitat prints the habitat summary using the configured output format.
func (ow *OutWriter) WriteHabitat(summary schema.HabitatSummary, cfg *contract.Config, duration time.Duration) error {
	return WriteHabitatResults(summary, cfg, duration)
}

// WriteTracking prints the tracking summary using the configured output format.
func (ow *OutWriter) WriteTracking(summary schema.TrackingSummary, cfg *contract.Config, duration time.Duration) error {
	return WriteTrackingResults(summary, cfg, duration)
}

// WriteIndicators prints the indicator-species summary using the configured output format.
func (ow *OutWriter) WriteIndicators(summary schema.IndicatorSummary, cfg *contract.Config, duration time.Duration) error {
	return WriteIndicatorResults(summary, cfg, duration)
}

// WriteMetrics prints scoring definitions using the configured output format.
func (ow *OutWriter) WriteMetrics(sourceWeights map[schema.SourceKind]float64, categoryWeights map[schema.SpeciesCategory]float64, cfg *contract.Config) error {
	return WriteMetricsDefinitions(sourceWeights, categoryWeights, cfg)
}

// getMaxTableNameWidth calculates the maximum width for species and parameter
// names in table output based on terminal width.
func getMaxTableNameWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the fixed columns (rank, trend, change, records,
	// confidence) plus table borders, separators, and padding.
	baseWidth := 50

	available := termWidth - baseWidth
	if available < 15 {
		// Minimum reasonable name width
		return 15
	}
	if available > 45 {
		// Maximum name width to keep tables compact
		return 45
	}
	return available
}

// scoreLabel returns the colored or plain quality label for a score.
func scoreLabel(score float64, cfg *contract.Config) string {
	if cfg.UseColors {
		return contract.GetColorLabel(score)
	}
	return contract.GetPlainLabel(score)
}
