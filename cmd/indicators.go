package cmd

import (
	"github.com/oceanpulse/oceanpulse/core"
	"github.com/oceanpulse/oceanpulse/internal/contract"
	"github.com/spf13/cobra"
)

// indicatorsCmd reports indicator species presence.
var indicatorsCmd = &cobra.Command{
	Use:   "indicators [mpa-id]",
	Short: "Show indicator species presence weighted by conservation status.",
	Long: `Check which indicator species from the curated catalog were observed
within the MPA during the assessment window.

Each species contributes points scaled by its conservation status
(endangered and critically endangered species count more), capped per
ecological category so no single group dominates the score.

Examples:
  # All relevant indicator species for a reserve
  oceanpulse indicators channel-islands --lat 33.98 --lon -119.75

  # Restrict to kelp forest species
  oceanpulse indicators channel-islands --lat 33.98 --lon -119.75 --ecosystems "kelp forest"`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteIndicators(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot run indicator analysis", err)
		}
	},
}
