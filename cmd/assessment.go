package cmd

import (
	"fmt"

	"github.com/oceanpulse/oceanpulse/internal/contract"
	"github.com/oceanpulse/oceanpulse/internal/iocache"
	"github.com/oceanpulse/oceanpulse/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// assessmentSetup loads minimal configuration needed for assessment history
// operations. This is used by commands that need history access without full
// shared setup.
func assessmentSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get assessment-related config values
	backendStr := viper.GetString("assessment-backend")
	connStr := viper.GetString("assessment-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Get output-related config values (used by export command)
	outputFile := viper.GetString("output-file")

	// Initialize stores with the loaded config (no summary cache for history commands)
	if err := iocache.InitCaching(schema.NoneBackend, "", backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize assessment store: %w", err)
	}

	cfg.AssessmentBackend = backend
	cfg.AssessmentDBConnect = connStr
	cfg.OutputFile = outputFile

	return nil
}

// assessmentSetupWrapper wraps assessmentSetup to provide PreRunE for assessment commands.
func assessmentSetupWrapper(_ *cobra.Command, _ []string) error {
	return assessmentSetup()
}

// assessmentMigrateSetup loads minimal configuration needed for migrate
// operations. This is a specialized setup that does NOT initialize stores or
// create tables, allowing migrations to run on a fresh database.
func assessmentMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get assessment-related config values
	backendStr := viper.GetString("assessment-backend")
	connStr := viper.GetString("assessment-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetAssessmentDBFilePath()
	}

	cfg.AssessmentBackend = backend
	cfg.AssessmentDBConnect = connStr

	return nil
}

// assessmentMigrateSetupWrapper wraps assessmentMigrateSetup to provide PreRunE for migrate command.
func assessmentMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return assessmentMigrateSetup()
}

// assessmentCmd focused on assessment history management.
//
// Note: These subcommands use minimal initialization (assessmentSetup) instead
// of the full sharedSetup, avoiding MPA validation and complex config
// processing for simple history operations.
var assessmentCmd = &cobra.Command{
	Use:   "assessment",
	Short: "Manage historical assessment tracking and exports",
	Long: `Manage historical assessment data used for trend tracking and reporting.

When enabled, Ocean PULSE tracks every assessment run, storing:
- Run metadata (timestamp, configuration, duration)
- Composite scores and per-source breakdowns per MPA
- Species and record counts behind each score

This enables longitudinal analysis, recovery tracking, and data export
for BI tools.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show assessment tracking statistics
  export  - Export data to Parquet for analytics
  clear   - Remove all tracking data
  migrate - Run database schema migrations

Examples:
  # Check tracking status
  oceanpulse assessment status

  # Export for analysis in pandas/DuckDB
  oceanpulse assessment export --output-file assessment-data.parquet`,
}

// assessmentClearCmd clears the assessment history.
var assessmentClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all historical assessment tracking data",
	Long: `Delete all stored assessment runs and MPA score history.

This removes:
- All assessment run metadata
- Historical composite scores and source breakdowns
- Species and record counts per run

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  # Export before clearing
  oceanpulse assessment export --output-file backup.parquet
  oceanpulse assessment clear`,
	PreRunE: assessmentSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ClearAssessment(cfg.AssessmentBackend, contract.GetAssessmentDBFilePath(), cfg.AssessmentDBConnect); err != nil {
			contract.LogFatal("Failed to clear assessment data", err)
		}
		fmt.Println("Assessment data cleared successfully.")
	},
}

// assessmentStatusCmd shows assessment tracking status.
var assessmentStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display assessment tracking statistics and connection details",
	Long: `Show detailed information about historical assessment tracking.

Displays:
- Backend type and connection status
- Total number of assessment runs stored
- Last and oldest run timestamps
- Total MPA scores recorded across all runs

Use this to:
- Verify assessment tracking is enabled and working
- Monitor data accumulation over time
- Check database connection health

Examples:
  # Check assessment tracking status
  oceanpulse assessment status`,
	PreRunE: assessmentSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := iocache.Manager.GetAssessmentStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get assessment status", err)
		}
		iocache.PrintAssessmentStatus(status)
	},
}

// assessmentExportCmd exports assessment history to Parquet files.
var assessmentExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export historical data to Parquet for BI tools and analytics",
	Long: `Export all stored assessment history to Parquet format for use with
analytics tools.

Exports two datasets:
- Assessment runs - metadata about each assessment execution
- MPA scores - composite scores and source breakdowns per run

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Direct import into BI tools (Tableau, Metabase, etc.)

Requires: --output-file parameter

Examples:
  # Export all data
  oceanpulse assessment export --output-file pulse-data.parquet

  # Use with DuckDB for analysis
  oceanpulse assessment export --output-file data.parquet
  duckdb -c "SELECT * FROM read_parquet('data.parquet/runs.parquet') LIMIT 10"`,
	PreRunE: assessmentSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ExecuteAssessmentExport(cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export assessment data", err)
		}
	},
}

// assessmentMigrateCmd runs database migrations for the assessment store.
var assessmentMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the assessment tracking store.

Migrations allow:
- Upgrading to new schema versions when Ocean PULSE is updated
- Safely modifying database structure without data loss
- Rolling back schema changes if needed

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  oceanpulse assessment migrate

  # Migrate to specific version
  oceanpulse assessment migrate --target-version 2

  # Rollback to previous version
  oceanpulse assessment migrate --target-version 0`,
	PreRunE: assessmentMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := iocache.MigrateAssessment(cfg.AssessmentBackend, cfg.AssessmentDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
