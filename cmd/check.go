package cmd

import (
	"github.com/oceanpulse/oceanpulse/core"
	"github.com/spf13/cobra"
)

// checkCmd focused on CI/CD policy enforcement.
var checkCmd = &cobra.Command{
	Use:   "check [mpa-id]",
	Short: "Enforce a minimum composite score (fails with non-zero exit code)",
	Long: `Run a full assessment and fail when the composite score falls below
the configured minimum.

Designed for automation - monitoring pipelines, scheduled conservation
reports, or alerting jobs that should page when a reserve degrades.

Use cases:
- Scheduled health monitoring with alerting on regressions
- Gating report publication on data availability
- Tracking recovery targets after a protection change

Examples:
  # Fail when the score drops below 60
  oceanpulse check channel-islands --lat 33.98 --lon -119.75 --min-score 60

  # Stricter gate with a custom window
  oceanpulse check channel-islands --lat 33.98 --lon -119.75 --min-score 75 --start 2025-01-01T00:00:00Z`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		// Returns an error (non-zero exit) when the score is below the minimum.
		return core.ExecuteCheck(rootCtx, cfg, cacheManager)
	},
}
