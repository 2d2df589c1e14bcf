// Package cmd defines the command-line interface for oceanpulse.
package cmd

import (
	"github.com/oceanpulse/oceanpulse/internal/contract"
	"github.com/oceanpulse/oceanpulse/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(speciesCmd)
	rootCmd.AddCommand(habitatCmd)
	rootCmd.AddCommand(trackingCmd)
	rootCmd.AddCommand(indicatorsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(assessmentCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatusCmd)

	// Add the assessment subcommands to the parent assessment command
	assessmentCmd.AddCommand(assessmentClearCmd)
	assessmentCmd.AddCommand(assessmentStatusCmd)
	assessmentCmd.AddCommand(assessmentExportCmd)
	assessmentCmd.AddCommand(assessmentMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("name", "", "Human-readable MPA name (defaults to the MPA identifier)")
	rootCmd.PersistentFlags().Float64("lat", 0, "Latitude of the MPA center in decimal degrees")
	rootCmd.PersistentFlags().Float64("lon", 0, "Longitude of the MPA center in decimal degrees")
	rootCmd.PersistentFlags().Float64("radius", contract.DefaultRadiusKm, "Assessment radius around the MPA center in kilometers")
	rootCmd.PersistentFlags().String("start", "", "Start of the assessment window in RFC3339 (default: 2 years ago)")
	rootCmd.PersistentFlags().String("end", "", "End of the assessment window in RFC3339 (default: now)")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().String("timeout", "", "Per-source fetch timeout (e.g. 30s, 2m)")
	rootCmd.PersistentFlags().Bool("no-cache", false, "Bypass the summary cache and always fetch fresh data")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("obis-url", "", "Override the OBIS API base URL")
	rootCmd.PersistentFlags().String("tracking-url", "", "Base URL of the animal telemetry service (empty disables tracking)")
	rootCmd.PersistentFlags().String("cache-backend", string(schema.SQLiteBackend), "Cache backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("cache-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("assessment-backend", "", "Assessment tracking backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("assessment-db-connect", "", "Database connection string for assessment tracking (must differ from cache-db-connect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of trackingCmd to Viper
	trackingCmd.Flags().Float64("cell-size", 0, "Grid cell size in degrees for residency binning (0 = default)")
	if err := viper.BindPFlags(trackingCmd.Flags()); err != nil {
		contract.LogFatal("Error binding tracking flags", err)
	}

	// Bind all flags of indicatorsCmd to Viper
	indicatorsCmd.Flags().String("ecosystems", "", "Comma-separated list of ecosystems to restrict indicator species to")
	if err := viper.BindPFlags(indicatorsCmd.Flags()); err != nil {
		contract.LogFatal("Error binding indicators flags", err)
	}

	// Bind all flags of checkCmd to Viper
	checkCmd.Flags().Float64("min-score", 0, "Minimum acceptable composite score for CI/CD gating")
	if err := viper.BindPFlags(checkCmd.Flags()); err != nil {
		contract.LogFatal("Error binding check flags", err)
	}

	// Bind all flags of assessmentMigrateCmd to Viper
	assessmentMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(assessmentMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding assessment migrate flags", err)
	}
}
