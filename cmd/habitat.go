package cmd

import (
	"github.com/oceanpulse/oceanpulse/core"
	"github.com/oceanpulse/oceanpulse/internal/contract"
	"github.com/spf13/cobra"
)

// habitatCmd reports environmental parameter status and anomalies.
var habitatCmd = &cobra.Command{
	Use:   "habitat [mpa-id]",
	Short: "Show environmental parameter status and detected anomalies.",
	Long: `Summarize environmental measurements (temperature, salinity, pH,
oxygen and more) against healthy-range thresholds.

Each parameter is flagged ok, warning or critical, and sustained
threshold excursions lasting three or more months are reported as
anomalies. The habitat score starts at 100 and is penalized per flag.

Examples:
  # Habitat conditions for a reserve
  oceanpulse habitat channel-islands --lat 33.98 --lon -119.75

  # JSON export for dashboards
  oceanpulse habitat channel-islands --lat 33.98 --lon -119.75 --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteHabitat(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot run habitat analysis", err)
		}
	},
}
