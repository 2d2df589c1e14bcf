package contract

import (
	"fmt"
	"maps"
	"math"
	"strings"
	"time"

	"github.com/oceanpulse/oceanpulse/schema"
)

// Default values for configuration.
const (
	DefaultLookbackDays = 730 // ~24 monthly buckets
	DefaultRadiusKm     = 50.0
	MaxRadiusKm         = 500.0
	DefaultResultLimit  = 25
	MaxResultLimit      = 1000
	DefaultPrecision    = 1
)

// DefaultSourceTimeout bounds each external data-source fetch. A timed-out
// source is treated as unavailable, never as a fatal error.
const DefaultSourceTimeout = 30 * time.Second

// SummaryCacheTTL is how long a cached domain summary stays fresh.
const SummaryCacheTTL = 7 * 24 * time.Hour

// CacheGranularity defines the time granularity for caching summaries.
// This ensures consistent cache key generation and time window alignment
// across the application and tests.
const CacheGranularity = time.Hour

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// weightEpsilon is the tolerance when validating that weights sum to 1.0.
const weightEpsilon = 1e-3

// SourceWeightsRaw holds custom composite weights from the YAML config file.
// Use float64 pointers so "not provided" is distinguishable from zero.
type SourceWeightsRaw struct {
	Population *float64 `mapstructure:"population"`
	Habitat    *float64 `mapstructure:"habitat"`
	Diversity  *float64 `mapstructure:"diversity"`
}

// CategoryWeightsRaw holds custom indicator category weights from the YAML
// config file.
type CategoryWeightsRaw struct {
	ApexPredator *float64 `mapstructure:"apex_predator"`
	Coral        *float64 `mapstructure:"coral"`
	Foundation   *float64 `mapstructure:"foundation"`
	Keystone     *float64 `mapstructure:"keystone"`
	Seabird      *float64 `mapstructure:"seabird"`
	Invertebrate *float64 `mapstructure:"invertebrate"`
}

// Config holds the runtime configuration for an assessment run.
// This struct remains the "final, validated" config.
type Config struct {
	MPA       schema.MPA
	StartTime time.Time
	EndTime   time.Time

	ResultLimit   int
	Precision     int
	Output        schema.OutputMode
	OutputFile    string
	SourceTimeout time.Duration

	OBISBaseURL     string // Empty means the public OBIS v3 API
	TrackingBaseURL string // Empty disables the tracking source
	CellSizeDeg   float64
	Ecosystems    []string
	NoCache       bool
	MinScore      float64 // check command: fail below this composite score
	Width         int     // Terminal width override (0 = auto-detect)

	CacheBackend   schema.DatabaseBackend
	CacheDBConnect string // Please use env var as this is plaintext

	AssessmentBackend   schema.DatabaseBackend
	AssessmentDBConnect string // Please use env var as this is plaintext

	// ComputedSourceWeights is the final composite weight per domain,
	// defaults overlaid with any custom weights from the config file.
	ComputedSourceWeights map[schema.SourceKind]float64

	// ComputedCategoryWeights is the final indicator category weight map.
	ComputedCategoryWeights map[schema.SpeciesCategory]float64

	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	MPAIDStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Name                string  `mapstructure:"name"`
	Lat                 float64 `mapstructure:"lat"`
	Lon                 float64 `mapstructure:"lon"`
	Radius              float64 `mapstructure:"radius"`
	Start               string  `mapstructure:"start"`
	End                 string  `mapstructure:"end"`
	Limit               int     `mapstructure:"limit"`
	Precision           int     `mapstructure:"precision"`
	Output              string  `mapstructure:"output"`
	OutputFile          string  `mapstructure:"output-file"`
	Timeout             string  `mapstructure:"timeout"`
	NoCache             bool    `mapstructure:"no-cache"`
	Width               int     `mapstructure:"width"`
	OBISURL             string  `mapstructure:"obis-url"`
	TrackingURL         string  `mapstructure:"tracking-url"`
	CacheBackend        string  `mapstructure:"cache-backend"`
	CacheDBConnect      string  `mapstructure:"cache-db-connect"`
	AssessmentBackend   string  `mapstructure:"assessment-backend"`
	AssessmentDBConnect string  `mapstructure:"assessment-db-connect"`
	Color               string  `mapstructure:"color"`

	// --- Fields from trackingCmd.Flags() ---
	CellSize float64 `mapstructure:"cell-size"`

	// --- Fields from indicatorsCmd.Flags() ---
	Ecosystems string `mapstructure:"ecosystems"`

	// --- Fields from checkCmd.Flags() ---
	MinScore float64 `mapstructure:"min-score"`

	// --- Custom weights from config file ---
	Weights         SourceWeightsRaw   `mapstructure:"weights"`
	CategoryWeights CategoryWeightsRaw `mapstructure:"category_weights"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Ecosystems != nil {
		clone.Ecosystems = make([]string, len(c.Ecosystems))
		copy(clone.Ecosystems, c.Ecosystems)
	}
	if c.ComputedSourceWeights != nil {
		clone.ComputedSourceWeights = make(map[schema.SourceKind]float64)
		maps.Copy(clone.ComputedSourceWeights, c.ComputedSourceWeights)
	}
	if c.ComputedCategoryWeights != nil {
		clone.ComputedCategoryWeights = make(map[schema.SpeciesCategory]float64)
		maps.Copy(clone.ComputedCategoryWeights, c.ComputedCategoryWeights)
	}
	return &clone
}

// GetWindowStart returns the configured start time, truncated to the caching
// granularity. This ensures consistent cache key generation and time window
// alignment across the application and tests.
func (c *Config) GetWindowStart() time.Time {
	return c.StartTime.Truncate(CacheGranularity)
}

// GetWindowEnd returns the configured end time, truncated to the caching granularity.
func (c *Config) GetWindowEnd() time.Time {
	return c.EndTime.Truncate(CacheGranularity)
}

// ProcessAndValidate performs all complex parsing and validation on the raw
// inputs and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processMPA(cfg, input); err != nil {
		return err
	}
	if err := processTimeRange(cfg, input); err != nil {
		return err
	}
	if err := processSourceWeights(cfg, input); err != nil {
		return err
	}
	if err := processCategoryWeights(cfg, input); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection
// strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateBackendConfigs validates cache and assessment backend configurations.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	// --- Cache Backend Validation ---
	cfg.CacheBackend = schema.DatabaseBackend(strings.ToLower(input.CacheBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.CacheBackend]; !ok {
		return fmt.Errorf("invalid cache backend '%s'. must be sqlite, mysql, postgresql, none", input.CacheBackend)
	}
	cfg.CacheDBConnect = input.CacheDBConnect
	if err := ValidateDatabaseConnectionString(cfg.CacheBackend, cfg.CacheDBConnect); err != nil {
		return err
	}

	// --- Assessment Backend Validation ---
	cfg.AssessmentBackend = schema.DatabaseBackend(strings.ToLower(input.AssessmentBackend))
	if cfg.AssessmentBackend != "" {
		if _, ok := schema.ValidDatabaseBackends[cfg.AssessmentBackend]; !ok {
			return fmt.Errorf("invalid assessment backend '%s'. must be sqlite, mysql, postgresql, none", input.AssessmentBackend)
		}
		cfg.AssessmentDBConnect = input.AssessmentDBConnect
		if err := ValidateDatabaseConnectionString(cfg.AssessmentBackend, cfg.AssessmentDBConnect); err != nil {
			return err
		}

		// Cache and assessment history must not share a database.
		if cfg.CacheBackend == cfg.AssessmentBackend && cfg.CacheBackend == schema.SQLiteBackend {
			cacheDBPath := cfg.CacheDBConnect
			if cacheDBPath == "" {
				cacheDBPath = GetCacheDBFilePath()
			}
			assessmentDBPath := cfg.AssessmentDBConnect
			if assessmentDBPath == "" {
				assessmentDBPath = GetAssessmentDBFilePath()
			}
			if cacheDBPath == assessmentDBPath {
				return fmt.Errorf("cache and assessment storage must use different SQLite database files. Both resolve to %q", cacheDBPath)
			}
		}
	}

	return nil
}

// validateSimpleInputs processes and validates all non-MPA related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.NoCache = input.NoCache
	cfg.Width = input.Width
	cfg.MinScore = input.MinScore
	cfg.OBISBaseURL = strings.TrimRight(input.OBISURL, "/")
	cfg.TrackingBaseURL = strings.TrimRight(input.TrackingURL, "/")

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. ResultLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 2. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", cfg.Output)
	}

	// --- 3. Source Timeout ---
	cfg.SourceTimeout = DefaultSourceTimeout
	if input.Timeout != "" {
		d, err := time.ParseDuration(input.Timeout)
		if err != nil {
			return fmt.Errorf("invalid --timeout value '%s': %w", input.Timeout, err)
		}
		if d <= 0 {
			return fmt.Errorf("timeout must be positive (received %s)", d)
		}
		cfg.SourceTimeout = d
	}

	// --- 4. Density grid cell size ---
	if input.CellSize < 0 {
		return fmt.Errorf("cell-size must not be negative (received %g)", input.CellSize)
	}
	cfg.CellSizeDeg = input.CellSize

	// --- 5. Backend Validation ---
	if err := validateBackendConfigs(cfg, input); err != nil {
		return err
	}

	// --- 6. Ecosystems Processing ---
	if input.Ecosystems != "" {
		for p := range strings.SplitSeq(input.Ecosystems, ",") {
			trimmed := strings.ToLower(strings.TrimSpace(p))
			if trimmed != "" {
				cfg.Ecosystems = append(cfg.Ecosystems, trimmed)
			}
		}
	}

	if cfg.MinScore < 0 || cfg.MinScore > 100 {
		return fmt.Errorf("min-score must be between 0 and 100 (received %.1f)", cfg.MinScore)
	}

	return nil
}

// processMPA validates the MPA identity and geometry.
func processMPA(cfg *Config, input *ConfigRawInput) error {
	id := strings.TrimSpace(input.MPAIDStr)
	if id == "" {
		return fmt.Errorf("an MPA identifier is required")
	}

	if input.Lat < -90 || input.Lat > 90 {
		return fmt.Errorf("latitude must be between -90 and 90 (received %g)", input.Lat)
	}
	if input.Lon < -180 || input.Lon > 180 {
		return fmt.Errorf("longitude must be between -180 and 180 (received %g)", input.Lon)
	}

	radius := input.Radius
	if radius == 0 {
		radius = DefaultRadiusKm
	}
	if radius < 0 || radius > MaxRadiusKm {
		return fmt.Errorf("radius must be between 0 and %g km (received %g)", MaxRadiusKm, radius)
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = id
	}

	cfg.MPA = schema.MPA{
		ID:       id,
		Name:     name,
		Lat:      input.Lat,
		Lon:      input.Lon,
		RadiusKm: radius,
	}
	return nil
}

// processTimeRange handles the date parsing and time range validation.
func processTimeRange(cfg *Config, input *ConfigRawInput) error {
	now := time.Now()
	cfg.EndTime = now
	cfg.StartTime = cfg.EndTime.Add(-DefaultLookbackDays * 24 * time.Hour)

	parseAbsolute := func(s string) (time.Time, error) {
		return time.Parse(DateTimeFormat, s)
	}

	// --- Process Start Time ---
	if input.Start != "" {
		t, err := parseAbsolute(input.Start)
		if err == nil {
			cfg.StartTime = t
		} else {
			t, relErr := ParseRelativeTime(input.Start, now)
			if relErr != nil {
				return fmt.Errorf("invalid start date format for '%s'. Expected absolute ISO8601 or 'N [units] ago': %v", input.Start, err)
			}
			cfg.StartTime = t
		}
	}

	// --- Process End Time ---
	if input.End != "" {
		t, err := parseAbsolute(input.End)
		if err == nil {
			cfg.EndTime = t
		} else {
			t, relErr := ParseRelativeTime(input.End, now)
			if relErr != nil {
				return fmt.Errorf("invalid end date format for '%s'. Expected absolute ISO8601 or 'N [units] ago': %v", input.End, err)
			}
			cfg.EndTime = t
		}
	}

	// --- Final Validation ---
	if !cfg.StartTime.IsZero() && !cfg.EndTime.IsZero() && cfg.StartTime.After(cfg.EndTime) {
		return fmt.Errorf("start time (%s) cannot be after end time (%s)", cfg.StartTime.Format(DateTimeFormat), cfg.EndTime.Format(DateTimeFormat))
	}

	return nil
}

// ProcessWeights resolves only the weight overrides from raw input. Used by
// commands that present the scoring model without a full MPA configuration.
func ProcessWeights(cfg *Config, input *ConfigRawInput) error {
	if err := processSourceWeights(cfg, input); err != nil {
		return err
	}
	return processCategoryWeights(cfg, input)
}

// processSourceWeights overlays custom composite weights onto the defaults and
// validates that the result still sums to 1.0.
func processSourceWeights(cfg *Config, input *ConfigRawInput) error {
	weights := schema.GetCompositeBaseWeights()

	if input.Weights.Population != nil {
		weights[schema.SourcePopulation] = *input.Weights.Population
	}
	if input.Weights.Habitat != nil {
		weights[schema.SourceHabitat] = *input.Weights.Habitat
	}
	if input.Weights.Diversity != nil {
		weights[schema.SourceDiversity] = *input.Weights.Diversity
	}

	var sum float64
	for kind, w := range weights {
		if w < 0 {
			return fmt.Errorf("composite weight for %s must not be negative (received %.3f)", kind, w)
		}
		sum += w
	}
	if math.Abs(sum-1.0) > weightEpsilon {
		return fmt.Errorf("composite weights must sum to 1.0, got %.3f", sum)
	}

	cfg.ComputedSourceWeights = weights
	return nil
}

// processCategoryWeights overlays custom indicator category weights onto the
// defaults and validates that the result still sums to 1.0.
func processCategoryWeights(cfg *Config, input *ConfigRawInput) error {
	weights := schema.GetCategoryWeights()

	overrides := map[schema.SpeciesCategory]*float64{
		schema.CategoryApexPredator: input.CategoryWeights.ApexPredator,
		schema.CategoryCoral:        input.CategoryWeights.Coral,
		schema.CategoryFoundation:   input.CategoryWeights.Foundation,
		schema.CategoryKeystone:     input.CategoryWeights.Keystone,
		schema.CategorySeabird:      input.CategoryWeights.Seabird,
		schema.CategoryInvertebrate: input.CategoryWeights.Invertebrate,
	}
	for cat, w := range overrides {
		if w != nil {
			weights[cat] = *w
		}
	}

	var sum float64
	for cat, w := range weights {
		if w < 0 {
			return fmt.Errorf("category weight for %s must not be negative (received %.3f)", cat, w)
		}
		sum += w
	}
	if math.Abs(sum-1.0) > weightEpsilon {
		return fmt.Errorf("category weights must sum to 1.0, got %.3f", sum)
	}

	cfg.ComputedCategoryWeights = weights
	return nil
}
