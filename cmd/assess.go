package cmd

import (
	"github.com/oceanpulse/oceanpulse/core"
	"github.com/oceanpulse/oceanpulse/internal/contract"
	"github.com/spf13/cobra"
)

// assessCmd runs the full composite health assessment.
var assessCmd = &cobra.Command{
	Use:   "assess [mpa-id]",
	Short: "Compute the composite health score for a marine protected area.",
	Long: `Fetch occurrence, habitat and indicator data and combine them into a
single 0-100 composite health score.

Pulls from three independent data sources in parallel:
- Species abundance trends from OBIS occurrence records
- Habitat condition from environmental measurements
- Indicator species presence weighted by conservation status

Sources that time out or fail are dropped and their weight is
redistributed across the remaining sources, so a partial assessment is
still produced with an adjusted confidence level.

Examples:
  # Assess a reserve by coordinates
  oceanpulse assess channel-islands --name "Channel Islands" --lat 33.98 --lon -119.75

  # Use a wider radius and a custom window
  oceanpulse assess palmyra-atoll --lat 5.88 --lon -162.08 --radius 120 --start 2022-01-01T00:00:00Z

  # Export the breakdown as JSON
  oceanpulse assess channel-islands --lat 33.98 --lon -119.75 --output json --output-file health.json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteAssess(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot run assessment", err)
		}
	},
}
