package cmd

import (
	"github.com/oceanpulse/oceanpulse/core"
	"github.com/oceanpulse/oceanpulse/internal/contract"
	"github.com/spf13/cobra"
)

// speciesCmd reports per-species abundance trends.
var speciesCmd = &cobra.Command{
	Use:   "species [mpa-id]",
	Short: "Show per-species abundance trends ranked by score.",
	Long: `Aggregate OBIS occurrence records into monthly abundance buckets and
classify each species trend as increasing, stable or decreasing.

Also reports record counts, data quality per species and the Shannon
diversity index for the whole assemblage.

Examples:
  # Top species trends for a reserve
  oceanpulse species channel-islands --lat 33.98 --lon -119.75

  # Narrow to the last year, CSV export
  oceanpulse species channel-islands --lat 33.98 --lon -119.75 --start 2025-08-01T00:00:00Z --output csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSpecies(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot run species analysis", err)
		}
	},
}
