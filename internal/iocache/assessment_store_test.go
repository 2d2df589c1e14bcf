package iocache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oceanpulse/oceanpulse/schema"
)

func newTestAssessmentStore(t *testing.T) *AssessmentStoreImpl {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "assessment.db")
	store, err := NewAssessmentStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store.(*AssessmentStoreImpl)
}

func sampleComposite(calculatedAt time.Time) schema.CompositeHealthScore {
	return schema.CompositeHealthScore{
		MPAID:            "mpa-channel-islands",
		MPAName:          "Channel Islands",
		Score:            72,
		Population:       schema.SourceBreakdown{Score: 70, WeightPercent: 40, Available: true},
		Habitat:          schema.SourceBreakdown{Score: 75, WeightPercent: 35, Available: true},
		Diversity:        schema.SourceBreakdown{Score: 68, WeightPercent: 25, Available: true},
		Confidence:       schema.ConfidenceHigh,
		SourcesAvailable: 3,
		CalculatedAt:     calculatedAt,
	}
}

func TestAssessmentLifecycle(t *testing.T) {
	store := newTestAssessmentStore(t)

	startTime := time.Now().UTC()
	assessmentID, err := store.BeginAssessment(startTime, map[string]any{"mpa": "mpa-channel-islands", "radius_km": 50.0})
	require.NoError(t, err)
	assert.Positive(t, assessmentID)

	composite := sampleComposite(startTime.Add(2 * time.Second))
	require.NoError(t, store.RecordMPAScore(assessmentID, composite, 12, 4200))

	endTime := startTime.Add(3 * time.Second)
	require.NoError(t, store.EndAssessment(assessmentID, endTime, 3))

	runs, err := store.GetAllRuns()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, assessmentID, runs[0].AssessmentID)
	assert.WithinDuration(t, startTime, runs[0].StartTime, time.Second)
	require.NotNil(t, runs[0].EndTime)
	assert.WithinDuration(t, endTime, *runs[0].EndTime, time.Second)
	require.NotNil(t, runs[0].RunDurationMs)
	assert.Equal(t, int32(3000), *runs[0].RunDurationMs)
	assert.Equal(t, int32(3), runs[0].SourcesUsed)
	require.NotNil(t, runs[0].ConfigParams)
	assert.Contains(t, *runs[0].ConfigParams, "mpa-channel-islands")

	scores, err := store.GetAllScores()
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, "mpa-channel-islands", scores[0].MPAID)
	require.NotNil(t, scores[0].MPAName)
	assert.Equal(t, "Channel Islands", *scores[0].MPAName)
	assert.Equal(t, 72.0, scores[0].CompositeScore)
	assert.Equal(t, 70.0, scores[0].PopulationScore)
	assert.Equal(t, 75.0, scores[0].HabitatScore)
	assert.Equal(t, 68.0, scores[0].DiversityScore)
	assert.Equal(t, string(schema.ConfidenceHigh), scores[0].Confidence)
	assert.Equal(t, int32(12), scores[0].SpeciesCount)
	assert.Equal(t, int32(4200), scores[0].RecordCount)
}

func TestAssessmentStatus(t *testing.T) {
	store := newTestAssessmentStore(t)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, 0, status.TotalRuns)
	assert.Equal(t, int64(0), status.TableSizes[assessmentRunsTable])

	startTime := time.Now().UTC()
	id1, err := store.BeginAssessment(startTime.Add(-time.Hour), nil)
	require.NoError(t, err)
	id2, err := store.BeginAssessment(startTime, nil)
	require.NoError(t, err)
	require.NoError(t, store.RecordMPAScore(id1, sampleComposite(startTime), 5, 100))
	require.NoError(t, store.RecordMPAScore(id2, sampleComposite(startTime), 5, 100))

	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 2, status.TotalRuns)
	assert.Equal(t, id2, status.LastRunID)
	assert.Equal(t, 2, status.TotalScores)
	assert.Equal(t, int64(2), status.TableSizes[assessmentRunsTable])
	assert.Equal(t, int64(2), status.TableSizes[mpaScoresTable])
	assert.True(t, status.OldestRunTime.Before(status.LastRunTime))
}

func TestAssessmentNoneBackend(t *testing.T) {
	store, err := NewAssessmentStore(schema.NoneBackend, "")
	require.NoError(t, err)

	id, err := store.BeginAssessment(time.Now(), nil)
	assert.NoError(t, err)
	assert.Zero(t, id)

	assert.NoError(t, store.RecordMPAScore(id, sampleComposite(time.Now()), 0, 0))
	assert.NoError(t, store.EndAssessment(id, time.Now(), 0))

	runs, err := store.GetAllRuns()
	assert.NoError(t, err)
	assert.Empty(t, runs)

	status, err := store.GetStatus()
	assert.NoError(t, err)
	assert.False(t, status.Connected)

	assert.NoError(t, store.Close())
}

func TestMigrateAssessmentSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "assessment.db")

	// Migrate up to the latest version, then all the way back down.
	require.NoError(t, MigrateAssessment(schema.SQLiteBackend, dbPath, -1))
	require.NoError(t, MigrateAssessment(schema.SQLiteBackend, dbPath, 0))

	// Migrating to version 1 only applies the base tables.
	require.NoError(t, MigrateAssessment(schema.SQLiteBackend, dbPath, 1))
}
