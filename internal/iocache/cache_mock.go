package iocache

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/oceanpulse/oceanpulse/internal/contract"
	"github.com/oceanpulse/oceanpulse/schema"
)

// MockCacheManager is a mock implementation of CacheManager for testing.
type MockCacheManager struct {
	mock.Mock
}

var _ contract.CacheManager = &MockCacheManager{} // Compile-time check

// GetSummaryStore implements the CacheManager interface.
func (m *MockCacheManager) GetSummaryStore() contract.CacheStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.CacheStore)
	return store
}

// GetAssessmentStore implements the CacheManager interface.
func (m *MockCacheManager) GetAssessmentStore() contract.AssessmentStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.AssessmentStore)
	return store
}

// MockCacheStore is a mock implementation of CacheStore for testing.
type MockCacheStore struct {
	mock.Mock
}

var _ contract.CacheStore = &MockCacheStore{} // Compile-time check

// Get implements the CacheStore interface.
func (m *MockCacheStore) Get(key string) ([]byte, int, int64, error) {
	args := m.Called(key)
	return args.Get(0).([]byte), args.Int(1), args.Get(2).(int64), args.Error(3)
}

// Set implements the CacheStore interface.
func (m *MockCacheStore) Set(key string, data []byte, version int, ts int64) error {
	args := m.Called(key, data, version, ts)
	return args.Error(0)
}

// Close implements the CacheStore interface.
func (m *MockCacheStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

// GetStatus implements the CacheStore interface.
func (m *MockCacheStore) GetStatus() (schema.CacheStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.CacheStatus), args.Error(1)
}

// MockAssessmentStore is a mock implementation of AssessmentStore for testing.
type MockAssessmentStore struct {
	mock.Mock
}

var _ contract.AssessmentStore = &MockAssessmentStore{} // Compile-time check

// BeginAssessment implements the AssessmentStore interface.
func (m *MockAssessmentStore) BeginAssessment(startTime time.Time, configParams map[string]any) (int64, error) {
	args := m.Called(startTime, configParams)
	return args.Get(0).(int64), args.Error(1)
}

// EndAssessment implements the AssessmentStore interface.
func (m *MockAssessmentStore) EndAssessment(assessmentID int64, endTime time.Time, sourcesUsed int) error {
	args := m.Called(assessmentID, endTime, sourcesUsed)
	return args.Error(0)
}

// RecordMPAScore implements the AssessmentStore interface.
func (m *MockAssessmentStore) RecordMPAScore(assessmentID int64, composite schema.CompositeHealthScore, speciesCount, recordCount int) error {
	args := m.Called(assessmentID, composite, speciesCount, recordCount)
	return args.Error(0)
}

// GetAllRuns implements the AssessmentStore interface.
func (m *MockAssessmentStore) GetAllRuns() ([]schema.AssessmentRunRecord, error) {
	args := m.Called()
	runs, _ := args.Get(0).([]schema.AssessmentRunRecord)
	return runs, args.Error(1)
}

// GetAllScores implements the AssessmentStore interface.
func (m *MockAssessmentStore) GetAllScores() ([]schema.MPAScoreRecord, error) {
	args := m.Called()
	scores, _ := args.Get(0).([]schema.MPAScoreRecord)
	return scores, args.Error(1)
}

// Close implements the AssessmentStore interface.
func (m *MockAssessmentStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

// GetStatus implements the AssessmentStore interface.
func (m *MockAssessmentStore) GetStatus() (schema.AssessmentStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.AssessmentStatus), args.Error(1)
}
