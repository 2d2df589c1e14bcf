package cmd

import (
	"fmt"

	"github.com/oceanpulse/oceanpulse/core"
	"github.com/oceanpulse/oceanpulse/internal/contract"
	"github.com/oceanpulse/oceanpulse/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// metricsSetup loads just enough configuration to render the scoring model.
// No MPA identifier or data source access is needed.
func metricsSetup(_ *cobra.Command, _ []string) error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	if err := contract.ProcessWeights(cfg, input); err != nil {
		return err
	}

	cfg.Output = schema.OutputMode(input.Output)
	if cfg.Output == "" {
		cfg.Output = schema.TextOut
	}
	cfg.OutputFile = input.OutputFile
	cfg.Precision = input.Precision
	if cfg.Precision == 0 {
		cfg.Precision = contract.DefaultPrecision
	}

	return nil
}

// metricsCmd displays the formal definitions of the scoring model.
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Display the weights and formulas behind the composite score",
	Long: `Show the source weights, category weights and threshold definitions
used to compute the composite health score.

Provides complete transparency into how scores are calculated, including:
- Composite source weights (population, habitat, diversity)
- Indicator category weights and conservation status multipliers
- Environmental parameter healthy ranges
- Custom weights if configured via .oceanpulse.yaml

No data is fetched - this is purely informational.

Examples:
  # Show default scoring formulas
  oceanpulse metrics

  # View with custom weights from config file
  oceanpulse metrics --config .oceanpulse.yaml`,
	PreRunE: metricsSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteMetrics(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot display metrics", err)
		}
	},
}
