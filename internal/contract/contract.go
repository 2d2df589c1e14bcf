// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/oceanpulse/oceanpulse/schema"
)

// OccurrenceSource defines the operations against the external biodiversity
// data source. This allows the assessment logic to be tested without a live
// OBIS endpoint.
type OccurrenceSource interface {
	// FetchOccurrences returns raw species observations inside the MPA's
	// query polygon for the given time window.
	FetchOccurrences(ctx context.Context, mpa schema.MPA, start, end time.Time) ([]schema.OccurrenceRecord, error)
}

// EnvironmentSource defines the operations against the external
// environmental-measurement source.
type EnvironmentSource interface {
	// FetchMeasurements returns raw measurement facts inside the MPA's
	// query polygon for the given time window.
	FetchMeasurements(ctx context.Context, mpa schema.MPA, start, end time.Time) ([]schema.EnvironmentalMeasurement, error)
}

// TrackingSource defines the operations against the external animal-tracking
// source.
type TrackingSource interface {
	// FetchTracks returns geolocated fixes for tagged individuals around
	// the MPA for the given time window.
	FetchTracks(ctx context.Context, mpa schema.MPA, start, end time.Time) ([]schema.TrackingPoint, error)
}

// SpeciesCatalog defines access to the curated indicator-species catalog.
type SpeciesCatalog interface {
	// RelevantSpecies returns the indicator species whose geographic bounds
	// overlap the MPA center point.
	RelevantSpecies(mpa schema.MPA) []schema.IndicatorSpecies

	// AllSpecies returns the full catalog.
	AllSpecies() []schema.IndicatorSpecies
}

// CacheManager defines the interface for managing cache stores.
// This allows the cache layer to be mocked for testing.
type CacheManager interface {
	GetSummaryStore() CacheStore
	GetAssessmentStore() AssessmentStore
}

// CacheStore defines the interface for summary cache storage.
// This allows mocking the store for testing.
type CacheStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	GetStatus() (schema.CacheStatus, error)
	Close() error
}

// AssessmentStore defines the interface for tracking assessment runs and
// storing per-MPA scores.
type AssessmentStore interface {
	// BeginAssessment creates a new assessment run and returns its unique ID
	BeginAssessment(startTime time.Time, configParams map[string]any) (int64, error)

	// EndAssessment updates the assessment run with completion data
	EndAssessment(assessmentID int64, endTime time.Time, sourcesUsed int) error

	// RecordMPAScore stores the composite score and its domain components for one MPA
	RecordMPAScore(assessmentID int64, composite schema.CompositeHealthScore, speciesCount, recordCount int) error

	// GetAllRuns returns every recorded assessment run
	GetAllRuns() ([]schema.AssessmentRunRecord, error)

	// GetAllScores returns every recorded per-MPA score row
	GetAllScores() ([]schema.MPAScoreRecord, error)

	// GetStatus returns status information about the assessment store
	GetStatus() (schema.AssessmentStatus, error)

	// Close closes the underlying connection
	Close() error
}
