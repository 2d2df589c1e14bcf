// Package parquet provides data structures and functions for exporting
// assessment history to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/oceanpulse/oceanpulse/schema"
)

// AssessmentRun represents a single assessment run with metadata.
// This struct maps to the oceanpulse_assessment_runs database table.
type AssessmentRun struct {
	// AssessmentID is the unique identifier for this assessment run
	AssessmentID int64 `parquet:"assessment_id,snappy"`

	// StartTime is when the assessment began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the assessment completed (nullable, stored as TIMESTAMP with nanosecond precision)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the assessment run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// SourcesUsed is the number of data sources that contributed to the composite
	SourcesUsed int32 `parquet:"sources_used,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// MPAScore represents the composite score and its components for one MPA.
// This struct maps to the oceanpulse_mpa_scores database table.
type MPAScore struct {
	// AssessmentID references the parent assessment run
	AssessmentID int64 `parquet:"assessment_id,snappy"`

	// MPAID is the identifier of the assessed marine protected area
	MPAID string `parquet:"mpa_id,snappy"`

	// MPAName is the human-readable MPA name (nullable)
	MPAName *string `parquet:"mpa_name,optional,snappy"`

	// AssessedAt is when the composite score was calculated
	AssessedAt time.Time `parquet:"assessed_at,snappy"`

	// CompositeScore is the final 0-100 health score
	CompositeScore float64 `parquet:"composite_score,snappy"`

	// PopulationScore is the species population domain score
	PopulationScore float64 `parquet:"population_score,snappy"`

	// HabitatScore is the habitat quality domain score
	HabitatScore float64 `parquet:"habitat_score,snappy"`

	// DiversityScore is the biodiversity domain score
	DiversityScore float64 `parquet:"diversity_score,snappy"`

	// Confidence indicates how many sources backed the composite
	Confidence string `parquet:"confidence,snappy"`

	// SpeciesCount is the number of indicator species considered
	SpeciesCount int32 `parquet:"species_count,snappy"`

	// RecordCount is the number of raw occurrence records processed
	RecordCount int32 `parquet:"record_count,snappy"`
}

// WriteAssessmentRunsParquet writes a slice of AssessmentRun structs to a Parquet file.
func WriteAssessmentRunsParquet(data []AssessmentRun, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the AssessmentRun struct tags
	writer := parquet.NewGenericWriter[AssessmentRun](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteMPAScoresParquet writes a slice of MPAScore structs to a Parquet file.
func WriteMPAScoresParquet(data []MPAScore, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the MPAScore struct tags
	writer := parquet.NewGenericWriter[MPAScore](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertAssessmentRunRecords converts schema.AssessmentRunRecord to AssessmentRun for Parquet export.
func ConvertAssessmentRunRecords(records []schema.AssessmentRunRecord) []AssessmentRun {
	result := make([]AssessmentRun, len(records))
	for i, record := range records {
		result[i] = AssessmentRun{
			AssessmentID:  record.AssessmentID,
			StartTime:     record.StartTime,
			EndTime:       record.EndTime,
			RunDurationMs: record.RunDurationMs,
			SourcesUsed:   record.SourcesUsed,
			ConfigParams:  record.ConfigParams,
		}
	}
	return result
}

// ConvertMPAScoreRecords converts schema.MPAScoreRecord to MPAScore for Parquet export.
func ConvertMPAScoreRecords(records []schema.MPAScoreRecord) []MPAScore {
	result := make([]MPAScore, len(records))
	for i, record := range records {
		result[i] = MPAScore{
			AssessmentID:    record.AssessmentID,
			MPAID:           record.MPAID,
			MPAName:         record.MPAName,
			AssessedAt:      record.AssessedAt,
			CompositeScore:  record.CompositeScore,
			PopulationScore: record.PopulationScore,
			HabitatScore:    record.HabitatScore,
			DiversityScore:  record.DiversityScore,
			Confidence:      record.Confidence,
			SpeciesCount:    record.SpeciesCount,
			RecordCount:     record.RecordCount,
		}
	}
	return result
}
