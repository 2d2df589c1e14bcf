package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  string
	}{
		{"excellent at boundary", 80, ExcellentValue},
		{"excellent above", 95.5, ExcellentValue},
		{"good", 60, GoodValue},
		{"fair", 40, FairValue},
		{"poor", 39.9, PoorValue},
		{"zero", 0, PoorValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetPlainLabel(tt.score))
		})
	}
}

func TestGetColorLabelContainsPlainText(t *testing.T) {
	for _, score := range []float64{85, 65, 45, 10} {
		assert.Contains(t, GetColorLabel(score), GetPlainLabel(score))
	}
}

func TestTruncateName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"short name untouched", "Orcinus orca", 30, "Orcinus orca"},
		{"long name truncated", "Macrocystis pyrifera", 10, "Macrocy..."},
		{"tiny width untouched", "Macrocystis", 3, "Macrocystis"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateName(tt.input, tt.maxWidth))
		})
	}
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "TRUE", "1"} {
		v, err := ParseBoolString(s)
		assert.NoError(t, err)
		assert.True(t, v)
	}
	for _, s := range []string{"no", "False", "0"} {
		v, err := ParseBoolString(s)
		assert.NoError(t, err)
		assert.False(t, v)
	}
	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}

func TestParseRelativeTime(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"days", "30 days ago", now.Add(-30 * 24 * time.Hour), false},
		{"single week", "1 week ago", now.Add(-7 * 24 * time.Hour), false},
		{"months", "6 months ago", now.AddDate(0, -6, 0), false},
		{"years uppercase", "2 YEARS AGO", now.AddDate(-2, 0, 0), false},
		{"missing ago", "30 days", time.Time{}, true},
		{"garbage", "yesterday-ish", time.Time{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRelativeTime(tt.input, now)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDBFilePaths(t *testing.T) {
	cache := GetCacheDBFilePath()
	assessment := GetAssessmentDBFilePath()
	assert.Contains(t, cache, ".oceanpulse_cache.db")
	assert.Contains(t, assessment, ".oceanpulse_assessment.db")
	assert.NotEqual(t, cache, assessment)
}
