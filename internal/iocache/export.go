package iocache

import (
	"errors"
	"fmt"

	"github.com/oceanpulse/oceanpulse/internal/parquet"
)

// ExecuteAssessmentExport performs the actual export of assessment data to Parquet files.
func ExecuteAssessmentExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the assessment store
	store := Manager.GetAssessmentStore()

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get assessment status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no assessment data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total assessment runs: %d\n", status.TotalRuns)
	fmt.Printf("Total MPA score records: %d\n", status.TableSizes[mpaScoresTable])

	// Retrieve all assessment runs
	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve assessment runs: %w", err)
	}

	// Retrieve all per-MPA scores
	scores, err := store.GetAllScores()
	if err != nil {
		return fmt.Errorf("failed to retrieve MPA scores: %w", err)
	}

	// Convert to Parquet format
	parquetRuns := parquet.ConvertAssessmentRunRecords(runs)
	parquetScores := parquet.ConvertMPAScoreRecords(scores)

	// Write assessment runs to Parquet
	runsFile := outputFile + ".assessment_runs.parquet"
	if err := parquet.WriteAssessmentRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write assessment runs: %w", err)
	}
	fmt.Printf("Exported %d assessment runs to: %s\n", len(parquetRuns), runsFile)

	// Write MPA scores to Parquet
	scoresFile := outputFile + ".mpa_scores.parquet"
	if err := parquet.WriteMPAScoresParquet(parquetScores, scoresFile); err != nil {
		return fmt.Errorf("failed to write MPA scores: %w", err)
	}
	fmt.Printf("Exported %d MPA score records to: %s\n", len(parquetScores), scoresFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
