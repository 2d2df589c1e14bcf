package schema

import "time"

// CacheStatus represents the status of the summary cache store.
type CacheStatus struct {
	Backend         string    `json:"backend"`
	Connected       bool      `json:"connected"`
	TotalEntries    int       `json:"total_entries"`
	LastEntryTime   time.Time `json:"last_entry_time"`
	OldestEntryTime time.Time `json:"oldest_entry_time"`
	TableSizeBytes  int64     `json:"table_size_bytes"`
}

// AssessmentStatus represents the status of the assessment history store.
type AssessmentStatus struct {
	Backend       string           `json:"backend"`
	Connected     bool             `json:"connected"`
	TotalRuns     int              `json:"total_runs"`
	LastRunID     int64            `json:"last_run_id"`
	LastRunTime   time.Time        `json:"last_run_time"`
	OldestRunTime time.Time        `json:"oldest_run_time"`
	TotalScores   int              `json:"total_scores"`
	TableSizes    map[string]int64 `json:"table_sizes"`
}

// AssessmentRunRecord represents a row from the oceanpulse_assessment_runs table.
type AssessmentRunRecord struct {
	AssessmentID  int64
	StartTime     time.Time
	EndTime       *time.Time
	RunDurationMs *int32
	SourcesUsed   int32
	ConfigParams  *string
}

// MPAScoreRecord represents a row from the oceanpulse_mpa_scores table.
type MPAScoreRecord struct {
	AssessmentID    int64
	MPAID           string
	MPAName         *string
	AssessedAt      time.Time
	CompositeScore  float64
	PopulationScore float64
	HabitatScore    float64
	DiversityScore  float64
	Confidence      string
	SpeciesCount    int32
	RecordCount     int32
}
