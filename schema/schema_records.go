package schema

import "time"

// MPA identifies the Marine Protected Area an assessment runs against,
// with the geometry used to query the external data sources.
type MPA struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	RadiusKm float64 `json:"radius_km"`
}

// GeoBounds is a lat/lon bounding box (min/max corners).
type GeoBounds struct {
	MinLat float64 `json:"min_lat" yaml:"min_lat"`
	MaxLat float64 `json:"max_lat" yaml:"max_lat"`
	MinLon float64 `json:"min_lon" yaml:"min_lon"`
	MaxLon float64 `json:"max_lon" yaml:"max_lon"`
}

// Contains reports whether the point falls inside the bounds (inclusive).
func (b GeoBounds) Contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lon >= b.MinLon && lon <= b.MaxLon
}

// OccurrenceRecord is one raw species observation as returned by the
// biodiversity source. Records missing a scientific name or event date are
// skipped by the aggregators, never fatal.
type OccurrenceRecord struct {
	ScientificName   string    `json:"scientificName"`
	CommonName       string    `json:"vernacularName,omitempty"`
	EventDate        time.Time `json:"eventDate"`
	DecimalLatitude  float64   `json:"decimalLatitude"`
	DecimalLongitude float64   `json:"decimalLongitude"`
	IndividualCount  int       `json:"individualCount,omitempty"` // 0 means not reported
	Absent           bool      `json:"absent,omitempty"`
	TaxonID          int64     `json:"taxonID,omitempty"`
	BasisOfRecord    string    `json:"basisOfRecord,omitempty"`
	InstitutionCode  string    `json:"institutionCode,omitempty"`
}

// EnvironmentalMeasurement is one raw measurement fact. The free-text
// MeasurementType is normalized against the parameter synonym table.
type EnvironmentalMeasurement struct {
	MeasurementType string    `json:"measurementType"`
	Value           float64   `json:"measurementValue"`
	Unit            string    `json:"measurementUnit,omitempty"`
	DeterminedDate  time.Time `json:"measurementDeterminedDate"`
	Method          string    `json:"measurementMethod,omitempty"`
	Remarks         string    `json:"measurementRemarks,omitempty"`
}

// TrackingPoint is one geolocated fix for a tagged individual.
type TrackingPoint struct {
	IndividualID string    `json:"individualId"`
	Species      string    `json:"species,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
	Lat          float64   `json:"lat"`
	Lon          float64   `json:"lon"`
}

// IndicatorSpecies is one entry of the curated indicator-species catalog.
type IndicatorSpecies struct {
	ID                 string             `json:"id" yaml:"id"`
	ScientificName     string             `json:"scientific_name" yaml:"scientific_name"`
	CommonName         string             `json:"common_name" yaml:"common_name"`
	Category           SpeciesCategory    `json:"category" yaml:"category"`
	ConservationStatus ConservationStatus `json:"conservation_status" yaml:"conservation_status"`
	Sensitivity        Sensitivity        `json:"sensitivity" yaml:"sensitivity"`
	OBISTaxonID        int64              `json:"obis_taxon_id" yaml:"obis_taxon_id"`
	Bounds             GeoBounds          `json:"bounds" yaml:"bounds"`
	Ecosystems         []string           `json:"ecosystems" yaml:"ecosystems"`
}
