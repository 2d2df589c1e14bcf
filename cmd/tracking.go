package cmd

import (
	"github.com/oceanpulse/oceanpulse/core"
	"github.com/oceanpulse/oceanpulse/internal/contract"
	"github.com/spf13/cobra"
)

// trackingCmd reports tagged-animal movement summaries.
var trackingCmd = &cobra.Command{
	Use:   "tracking [mpa-id]",
	Short: "Show tagged-animal residency and movement within the MPA.",
	Long: `Summarize telemetry pings from tagged individuals into per-animal
residency fractions and grid-cell usage within the MPA boundary.

Tracking is informational and never contributes to the composite score.
The command requires --tracking-url (or the OCEANPULSE_TRACKING_URL
environment variable) pointing at a telemetry service; without it the
summary is empty.

Examples:
  # Residency summary with the default 0.1 degree grid
  oceanpulse tracking channel-islands --lat 33.98 --lon -119.75 --tracking-url https://telemetry.example.org

  # Coarser spatial binning
  oceanpulse tracking channel-islands --lat 33.98 --lon -119.75 --tracking-url https://telemetry.example.org --cell-size 0.25`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTracking(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot run tracking analysis", err)
		}
	},
}
