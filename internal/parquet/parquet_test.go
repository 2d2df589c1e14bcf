package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oceanschema "github.com/oceanpulse/oceanpulse/schema"
)

func TestAssessmentRunStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	schema := parquet.SchemaOf(new(AssessmentRun))
	require.NotNil(t, schema)

	// Check that all expected columns exist
	expectedColumns := []string{
		"assessment_id",
		"start_time",
		"end_time",
		"run_duration_ms",
		"sources_used",
		"config_params",
	}

	for _, colName := range expectedColumns {
		col, ok := schema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestMPAScoreStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	schema := parquet.SchemaOf(new(MPAScore))
	require.NotNil(t, schema)

	// Check that all expected columns exist
	expectedColumns := []string{
		"assessment_id",
		"mpa_id",
		"mpa_name",
		"assessed_at",
		"composite_score",
		"population_score",
		"habitat_score",
		"diversity_score",
		"confidence",
		"species_count",
		"record_count",
	}

	for _, colName := range expectedColumns {
		col, ok := schema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func sampleRuns() []AssessmentRun {
	now := time.Now()
	startTime1 := now.Add(-2 * time.Hour)
	endTime1 := now.Add(-1 * time.Hour)
	durationMs1 := int32(endTime1.Sub(startTime1).Milliseconds())
	configParams1 := `{"mpa":"mpa-channel-islands","radius_km":50}`

	startTime2 := now.Add(-10 * time.Minute)
	// Run 2 is still in flight, so its nullable fields stay nil

	return []AssessmentRun{
		{
			AssessmentID:  1,
			StartTime:     startTime1,
			EndTime:       &endTime1,
			RunDurationMs: &durationMs1,
			SourcesUsed:   3,
			ConfigParams:  &configParams1,
		},
		{
			AssessmentID:  2,
			StartTime:     startTime2,
			EndTime:       nil,
			RunDurationMs: nil,
			SourcesUsed:   0,
			ConfigParams:  nil,
		},
	}
}

func TestWriteAssessmentRunsParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "assessment_runs.parquet")

	data := sampleRuns()
	err := WriteAssessmentRunsParquet(data, outputPath)
	require.NoError(t, err, "Writing Parquet file should not produce error")

	// Verify file was created
	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should not be empty")

	// Read back and verify data
	file, err := os.Open(outputPath)
	require.NoError(t, err, "Should be able to open output file")
	defer file.Close()

	reader := parquet.NewGenericReader[AssessmentRun](file)
	defer reader.Close()

	readData := make([]AssessmentRun, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err, "Should be able to read data")
	}
	assert.Equal(t, len(data), n, "Should read all records")

	for i := 0; i < len(data); i++ {
		assert.Equal(t, data[i].AssessmentID, readData[i].AssessmentID, "AssessmentID should match")
		assert.Equal(t, data[i].SourcesUsed, readData[i].SourcesUsed, "SourcesUsed should match")

		// Check nullable fields
		if data[i].EndTime == nil {
			assert.Nil(t, readData[i].EndTime, "EndTime should be nil")
		} else {
			require.NotNil(t, readData[i].EndTime, "EndTime should not be nil")
			assert.WithinDuration(t, *data[i].EndTime, *readData[i].EndTime, time.Nanosecond, "EndTime should match")
		}

		if data[i].ConfigParams == nil {
			assert.Nil(t, readData[i].ConfigParams, "ConfigParams should be nil")
		} else {
			require.NotNil(t, readData[i].ConfigParams, "ConfigParams should not be nil")
			assert.Equal(t, *data[i].ConfigParams, *readData[i].ConfigParams, "ConfigParams should match")
		}
	}
}

func TestWriteMPAScoresParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "mpa_scores.parquet")

	name := "Channel Islands"
	data := []MPAScore{
		{
			AssessmentID:    1,
			MPAID:           "mpa-channel-islands",
			MPAName:         &name,
			AssessedAt:      time.Now(),
			CompositeScore:  72,
			PopulationScore: 70,
			HabitatScore:    75,
			DiversityScore:  68,
			Confidence:      "high",
			SpeciesCount:    12,
			RecordCount:     4200,
		},
		{
			AssessmentID:   1,
			MPAID:          "mpa-unnamed",
			MPAName:        nil,
			AssessedAt:     time.Now(),
			CompositeScore: 0,
			Confidence:     "low",
		},
	}

	require.NoError(t, WriteMPAScoresParquet(data, outputPath))

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer file.Close()

	reader := parquet.NewGenericReader[MPAScore](file)
	defer reader.Close()

	readData := make([]MPAScore, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	require.Equal(t, len(data), n)

	assert.Equal(t, "mpa-channel-islands", readData[0].MPAID)
	require.NotNil(t, readData[0].MPAName)
	assert.Equal(t, name, *readData[0].MPAName)
	assert.Equal(t, 72.0, readData[0].CompositeScore)
	assert.Nil(t, readData[1].MPAName)
}

func TestConvertRecords(t *testing.T) {
	endTime := time.Now()
	duration := int32(1500)
	params := `{"mpa":"mpa-001"}`
	runs := []oceanschema.AssessmentRunRecord{
		{
			AssessmentID:  7,
			StartTime:     endTime.Add(-time.Second),
			EndTime:       &endTime,
			RunDurationMs: &duration,
			SourcesUsed:   2,
			ConfigParams:  &params,
		},
	}

	converted := ConvertAssessmentRunRecords(runs)
	require.Len(t, converted, 1)
	assert.Equal(t, int64(7), converted[0].AssessmentID)
	assert.Equal(t, int32(2), converted[0].SourcesUsed)
	require.NotNil(t, converted[0].RunDurationMs)
	assert.Equal(t, duration, *converted[0].RunDurationMs)

	name := "Port-Cros"
	scores := []oceanschema.MPAScoreRecord{
		{
			AssessmentID:   7,
			MPAID:          "mpa-port-cros",
			MPAName:        &name,
			AssessedAt:     endTime,
			CompositeScore: 64,
			Confidence:     "medium",
			SpeciesCount:   8,
			RecordCount:    950,
		},
	}

	convertedScores := ConvertMPAScoreRecords(scores)
	require.Len(t, convertedScores, 1)
	assert.Equal(t, "mpa-port-cros", convertedScores[0].MPAID)
	assert.Equal(t, 64.0, convertedScores[0].CompositeScore)
	assert.Equal(t, int32(8), convertedScores[0].SpeciesCount)
}
