package schema

import (
	"strings"
	"time"
)

// MonthKeyFormat is the year-month bucket key layout.
const MonthKeyFormat = "2006-01"

// NormalizeScientificName canonicalizes a scientific name for grouping:
// trimmed, inner whitespace collapsed, lowercased.
func NormalizeScientificName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// MonthKey buckets a timestamp into its year-month key.
func MonthKey(t time.Time) string {
	return t.UTC().Format(MonthKeyFormat)
}

// parameterSynonyms maps each normalized parameter to the lowercase
// substrings recognized in free-text measurement types. A flat table keeps
// the matching auditable and easy to extend.
var parameterSynonyms = []struct {
	param    ParameterType
	patterns []string
}{
	{ParamChlorophyll, []string{"chlorophyll", "chl-a", "chla"}},
	{ParamTemperature, []string{"temperature", "sst", "temp"}},
	{ParamSalinity, []string{"salinity", "psu", "salt"}},
	{ParamOxygen, []string{"oxygen", "o2", "do"}},
	{ParamTurbidity, []string{"turbidity", "secchi", "clarity"}},
	{ParamDepth, []string{"depth", "bathymetry"}},
	{ParamPH, []string{"ph", "acidity"}},
}

// NormalizeParameterType maps a free-text measurement type onto the
// controlled vocabulary via case-insensitive synonym matching. Patterns of
// one or two characters ("ph", "o2", "do") must match a whole token to avoid
// false positives inside longer words; longer patterns match as substrings.
// Unmatched types fall into ParamOther and are still surfaced, not dropped.
func NormalizeParameterType(raw string) ParameterType {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return ParamOther
	}
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	})
	for _, entry := range parameterSynonyms {
		for _, pat := range entry.patterns {
			if len(pat) <= 2 {
				for _, tok := range tokens {
					if tok == pat {
						return entry.param
					}
				}
				continue
			}
			if strings.Contains(s, pat) {
				return entry.param
			}
		}
	}
	return ParamOther
}

// PresenceConfidence derives a confidence label purely from occurrence count.
func PresenceConfidence(occurrences int) Confidence {
	switch {
	case occurrences >= 20:
		return ConfidenceHigh
	case occurrences >= 5:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// BucketQuality grades a monthly bucket by the number of underlying records.
func BucketQuality(records int) DataQuality {
	switch {
	case records >= 5:
		return QualityHigh
	case records >= 2:
		return QualityMedium
	default:
		return QualityLow
	}
}

// VolumeQuality grades a whole data set by record volume.
func VolumeQuality(records int) DataQuality {
	switch {
	case records >= 500:
		return QualityHigh
	case records >= 100:
		return QualityMedium
	default:
		return QualityLow
	}
}
