// Package schema has configs, models and static tables for all parts of oceanpulse.
package schema

// Custom string types for type safety.
type (
	// TrendLabel classifies the direction of an abundance or parameter series.
	TrendLabel string

	// Confidence expresses how much evidence backs a computed value.
	Confidence string

	// DataQuality grades the volume and reliability of a data set.
	DataQuality string

	// ThresholdStatus describes where a value sits relative to its bounds.
	ThresholdStatus string

	// AnomalyKind identifies the shape of an environmental deviation.
	AnomalyKind string

	// Severity grades how serious an anomaly is.
	Severity string

	// ParameterType is a normalized environmental parameter name.
	ParameterType string

	// SpeciesCategory groups indicator species by ecological role.
	SpeciesCategory string

	// ConservationStatus is an IUCN Red List category code.
	ConservationStatus string

	// Sensitivity rates how quickly a species responds to ecosystem change.
	Sensitivity string

	// SourceKind identifies one of the composite score's domain inputs.
	SourceKind string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for caching.
	DatabaseBackend string
)

// All trend labels supported.
const (
	TrendIncreasing       TrendLabel = "increasing"
	TrendStable           TrendLabel = "stable"
	TrendDecreasing       TrendLabel = "decreasing"
	TrendInsufficientData TrendLabel = "insufficient_data"
)

// Confidence levels.
const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Data-quality grades.
const (
	QualityHigh   DataQuality = "high"
	QualityMedium DataQuality = "medium"
	QualityLow    DataQuality = "low"
)

// Threshold statuses.
const (
	StatusNormal   ThresholdStatus = "normal"
	StatusWarning  ThresholdStatus = "warning"
	StatusCritical ThresholdStatus = "critical"
)

// Anomaly kinds.
const (
	AnomalySpike     AnomalyKind = "spike"
	AnomalyDrop      AnomalyKind = "drop"
	AnomalySustained AnomalyKind = "sustained_change"
)

// Anomaly severities.
const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Controlled vocabulary of environmental parameters. Free-text measurement
// types that match no synonym are grouped under ParamOther, never dropped.
const (
	ParamTemperature ParameterType = "temperature"
	ParamSalinity    ParameterType = "salinity"
	ParamPH          ParameterType = "ph"
	ParamOxygen      ParameterType = "oxygen"
	ParamChlorophyll ParameterType = "chlorophyll"
	ParamTurbidity   ParameterType = "turbidity"
	ParamDepth       ParameterType = "depth"
	ParamOther       ParameterType = "other"
)

// Indicator-species categories.
const (
	CategoryApexPredator SpeciesCategory = "apex_predator"
	CategoryCoral        SpeciesCategory = "coral"
	CategoryFoundation   SpeciesCategory = "foundation"
	CategoryKeystone     SpeciesCategory = "keystone"
	CategorySeabird      SpeciesCategory = "seabird"
	CategoryInvertebrate SpeciesCategory = "invertebrate"
)

// IUCN Red List codes carried by the curated catalog.
const (
	StatusCR ConservationStatus = "CR"
	StatusEN ConservationStatus = "EN"
	StatusVU ConservationStatus = "VU"
	StatusNT ConservationStatus = "NT"
	StatusLC ConservationStatus = "LC"
	StatusDD ConservationStatus = "DD"
)

// Sensitivity ratings.
const (
	SensitivityHigh   Sensitivity = "high"
	SensitivityMedium Sensitivity = "medium"
	SensitivityLow    Sensitivity = "low"
)

// Composite score domain inputs.
const (
	SourcePopulation SourceKind = "population"
	SourceHabitat    SourceKind = "habitat"
	SourceDiversity  SourceKind = "diversity"
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All cache backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// AllCategories returns all indicator-species categories in scoring order.
var AllCategories = []SpeciesCategory{
	CategoryApexPredator,
	CategoryCoral,
	CategoryFoundation,
	CategoryKeystone,
	CategorySeabird,
	CategoryInvertebrate,
}

// AllSources returns the composite domains in weight order.
var AllSources = []SourceKind{SourcePopulation, SourceHabitat, SourceDiversity}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid cache backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// ValidCategories lists all valid indicator-species categories.
var ValidCategories = map[SpeciesCategory]struct{}{
	CategoryApexPredator: {},
	CategoryCoral:        {},
	CategoryFoundation:   {},
	CategoryKeystone:     {},
	CategorySeabird:      {},
	CategoryInvertebrate: {},
}
