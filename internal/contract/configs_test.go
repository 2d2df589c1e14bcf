package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oceanpulse/oceanpulse/schema"
)

func validRawInput() *ConfigRawInput {
	return &ConfigRawInput{
		MPAIDStr:          "mpa-channel-islands",
		Name:              "Channel Islands",
		Lat:               33.9,
		Lon:               -119.7,
		Radius:            50,
		Limit:             DefaultResultLimit,
		Precision:         DefaultPrecision,
		Output:            "text",
		Color:             "yes",
		CacheBackend:      "sqlite",
		AssessmentBackend: "none",
	}
}

func TestProcessAndValidateDefaults(t *testing.T) {
	cfg := &Config{}
	err := ProcessAndValidate(cfg, validRawInput())
	require.NoError(t, err)

	assert.Equal(t, "mpa-channel-islands", cfg.MPA.ID)
	assert.Equal(t, "Channel Islands", cfg.MPA.Name)
	assert.Equal(t, 50.0, cfg.MPA.RadiusKm)
	assert.Equal(t, DefaultSourceTimeout, cfg.SourceTimeout)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, schema.SQLiteBackend, cfg.CacheBackend)
	assert.True(t, cfg.UseColors)

	// Default lookback window lands in the past.
	assert.True(t, cfg.StartTime.Before(cfg.EndTime))

	// Weight maps are fully computed with defaults.
	assert.InDelta(t, 0.40, cfg.ComputedSourceWeights[schema.SourcePopulation], 1e-9)
	assert.InDelta(t, 0.25, cfg.ComputedCategoryWeights[schema.CategoryApexPredator], 1e-9)
}

func TestProcessAndValidateNameFallsBackToID(t *testing.T) {
	input := validRawInput()
	input.Name = ""
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, input.MPAIDStr, cfg.MPA.Name)
}

func TestProcessAndValidateRejectsBadInputs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ConfigRawInput)
	}{
		{"missing mpa id", func(i *ConfigRawInput) { i.MPAIDStr = " " }},
		{"latitude out of range", func(i *ConfigRawInput) { i.Lat = 91 }},
		{"longitude out of range", func(i *ConfigRawInput) { i.Lon = -200 }},
		{"radius too large", func(i *ConfigRawInput) { i.Radius = 1000 }},
		{"zero limit", func(i *ConfigRawInput) { i.Limit = 0 }},
		{"excessive limit", func(i *ConfigRawInput) { i.Limit = MaxResultLimit + 1 }},
		{"bad precision", func(i *ConfigRawInput) { i.Precision = 5 }},
		{"bad output", func(i *ConfigRawInput) { i.Output = "xml" }},
		{"bad color", func(i *ConfigRawInput) { i.Color = "maybe" }},
		{"bad backend", func(i *ConfigRawInput) { i.CacheBackend = "redis" }},
		{"bad timeout", func(i *ConfigRawInput) { i.Timeout = "forever" }},
		{"negative timeout", func(i *ConfigRawInput) { i.Timeout = "-5s" }},
		{"negative cell size", func(i *ConfigRawInput) { i.CellSize = -0.1 }},
		{"min score out of range", func(i *ConfigRawInput) { i.MinScore = 150 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validRawInput()
			tt.mutate(input)
			assert.Error(t, ProcessAndValidate(&Config{}, input))
		})
	}
}

func TestProcessTimeRange(t *testing.T) {
	t.Run("absolute times", func(t *testing.T) {
		input := validRawInput()
		input.Start = "2023-01-01T00:00:00Z"
		input.End = "2024-01-01T00:00:00Z"
		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.Equal(t, 2023, cfg.StartTime.Year())
		assert.Equal(t, 2024, cfg.EndTime.Year())
	})

	t.Run("relative start", func(t *testing.T) {
		input := validRawInput()
		input.Start = "6 months ago"
		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.True(t, cfg.StartTime.Before(time.Now()))
	})

	t.Run("start after end rejected", func(t *testing.T) {
		input := validRawInput()
		input.Start = "2024-01-01T00:00:00Z"
		input.End = "2023-01-01T00:00:00Z"
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("garbage start rejected", func(t *testing.T) {
		input := validRawInput()
		input.Start = "whenever"
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})
}

func TestProcessSourceWeights(t *testing.T) {
	ptr := func(v float64) *float64 { return &v }

	t.Run("valid override", func(t *testing.T) {
		input := validRawInput()
		input.Weights = SourceWeightsRaw{
			Population: ptr(0.5),
			Habitat:    ptr(0.3),
			Diversity:  ptr(0.2),
		}
		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.InDelta(t, 0.5, cfg.ComputedSourceWeights[schema.SourcePopulation], 1e-9)
	})

	t.Run("partial override breaking the sum", func(t *testing.T) {
		input := validRawInput()
		input.Weights = SourceWeightsRaw{Population: ptr(0.9)}
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("negative weight", func(t *testing.T) {
		input := validRawInput()
		input.Weights = SourceWeightsRaw{
			Population: ptr(-0.1),
			Habitat:    ptr(0.6),
			Diversity:  ptr(0.5),
		}
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})
}

func TestProcessCategoryWeights(t *testing.T) {
	ptr := func(v float64) *float64 { return &v }

	input := validRawInput()
	input.CategoryWeights = CategoryWeightsRaw{
		ApexPredator: ptr(0.30),
		Coral:        ptr(0.15),
	}
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.InDelta(t, 0.30, cfg.ComputedCategoryWeights[schema.CategoryApexPredator], 1e-9)
	assert.InDelta(t, 0.15, cfg.ComputedCategoryWeights[schema.CategoryCoral], 1e-9)
	// untouched categories keep their defaults
	assert.InDelta(t, 0.15, cfg.ComputedCategoryWeights[schema.CategoryKeystone], 1e-9)
}

func TestProcessEcosystems(t *testing.T) {
	input := validRawInput()
	input.Ecosystems = "Kelp Forest, coral reef ,"
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, []string{"kelp forest", "coral reef"}, cfg.Ecosystems)
}

func TestValidateDatabaseConnectionString(t *testing.T) {
	tests := []struct {
		name    string
		backend schema.DatabaseBackend
		connStr string
		wantErr bool
	}{
		{"sqlite needs nothing", schema.SQLiteBackend, "", false},
		{"none needs nothing", schema.NoneBackend, "", false},
		{"mysql valid", schema.MySQLBackend, "user:pass@tcp(localhost:3306)/oceanpulse", false},
		{"mysql missing tcp", schema.MySQLBackend, "user:pass@localhost/oceanpulse", true},
		{"mysql empty", schema.MySQLBackend, "", true},
		{"postgres valid", schema.PostgreSQLBackend, "host=localhost dbname=oceanpulse", false},
		{"postgres missing dbname", schema.PostgreSQLBackend, "host=localhost", true},
		{"postgres empty", schema.PostgreSQLBackend, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDatabaseConnectionString(tt.backend, tt.connStr)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSQLitePathConflictRejected(t *testing.T) {
	input := validRawInput()
	input.CacheBackend = "sqlite"
	input.AssessmentBackend = "sqlite"
	input.CacheDBConnect = "/tmp/same.db"
	input.AssessmentDBConnect = "/tmp/same.db"
	assert.Error(t, ProcessAndValidate(&Config{}, input))
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, validRawInput()))

	clone := cfg.Clone()
	clone.ComputedSourceWeights[schema.SourcePopulation] = 0.99
	clone.MPA.ID = "other"

	assert.InDelta(t, 0.40, cfg.ComputedSourceWeights[schema.SourcePopulation], 1e-9)
	assert.Equal(t, "mpa-channel-islands", cfg.MPA.ID)
}

func TestGetWindowTruncation(t *testing.T) {
	cfg := &Config{
		StartTime: time.Date(2023, 5, 1, 10, 42, 13, 0, time.UTC),
		EndTime:   time.Date(2023, 6, 1, 23, 59, 59, 0, time.UTC),
	}
	assert.Equal(t, time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC), cfg.GetWindowStart())
	assert.Equal(t, time.Date(2023, 6, 1, 23, 0, 0, 0, time.UTC), cfg.GetWindowEnd())
}
