package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/oceanpulse/oceanpulse/schema"
)

// DefaultOBISBaseURL is the public OBIS v3 API endpoint.
const DefaultOBISBaseURL = "https://api.obis.org/v3"

// obisPageSize caps how many records one fetch requests. MPA-scale queries
// stay well under this; anything larger is truncated rather than paged.
const obisPageSize = 5000

// obisDateFormat is the date layout the OBIS query parameters expect.
const obisDateFormat = "2006-01-02"

// OBISClient talks to the OBIS occurrence API. It implements both the
// occurrence and the environmental-measurement source contracts.
type OBISClient struct {
	baseURL string
	client  *http.Client
}

// NewOBISClient creates an OBIS client with the given request timeout.
// An empty baseURL falls back to the public API.
func NewOBISClient(baseURL string, timeout time.Duration) *OBISClient {
	if baseURL == "" {
		baseURL = DefaultOBISBaseURL
	}
	return &OBISClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// obisOccurrence is the wire shape of one OBIS occurrence result. Dates come
// back in several layouts, so EventDate is parsed leniently afterwards.
type obisOccurrence struct {
	ScientificName   string  `json:"scientificName"`
	VernacularName   string  `json:"vernacularName"`
	EventDate        string  `json:"eventDate"`
	DecimalLatitude  float64 `json:"decimalLatitude"`
	DecimalLongitude float64 `json:"decimalLongitude"`
	IndividualCount  int     `json:"individualCount"`
	OccurrenceStatus string  `json:"occurrenceStatus"`
	TaxonID          int64   `json:"taxonID"`
	BasisOfRecord    string  `json:"basisOfRecord"`
	InstitutionCode  string  `json:"institutionCode"`
}

type obisOccurrenceResponse struct {
	Total   int              `json:"total"`
	Results []obisOccurrence `json:"results"`
}

// obisMeasurement is the wire shape of one measurement-or-fact result.
type obisMeasurement struct {
	MeasurementType           string  `json:"measurementType"`
	MeasurementValue          float64 `json:"measurementValue"`
	MeasurementUnit           string  `json:"measurementUnit"`
	MeasurementDeterminedDate string  `json:"measurementDeterminedDate"`
	MeasurementMethod         string  `json:"measurementMethod"`
	MeasurementRemarks        string  `json:"measurementRemarks"`
}

type obisMeasurementResponse struct {
	Total   int               `json:"total"`
	Results []obisMeasurement `json:"results"`
}

// FetchOccurrences returns raw species observations inside the MPA's query
// polygon for the given time window.
func (c *OBISClient) FetchOccurrences(ctx context.Context, mpa schema.MPA, start, end time.Time) ([]schema.OccurrenceRecord, error) {
	var resp obisOccurrenceResponse
	if err := c.get(ctx, "/occurrence", mpa, start, end, &resp); err != nil {
		return nil, err
	}

	records := make([]schema.OccurrenceRecord, 0, len(resp.Results))
	for _, r := range resp.Results {
		records = append(records, schema.OccurrenceRecord{
			ScientificName:   r.ScientificName,
			CommonName:       r.VernacularName,
			EventDate:        parseEventDate(r.EventDate),
			DecimalLatitude:  r.DecimalLatitude,
			DecimalLongitude: r.DecimalLongitude,
			IndividualCount:  r.IndividualCount,
			Absent:           r.OccurrenceStatus == "absent",
			TaxonID:          r.TaxonID,
			BasisOfRecord:    r.BasisOfRecord,
			InstitutionCode:  r.InstitutionCode,
		})
	}
	return records, nil
}

// FetchMeasurements returns raw environmental measurement facts inside the
// MPA's query polygon for the given time window.
func (c *OBISClient) FetchMeasurements(ctx context.Context, mpa schema.MPA, start, end time.Time) ([]schema.EnvironmentalMeasurement, error) {
	var resp obisMeasurementResponse
	if err := c.get(ctx, "/occurrence/mof", mpa, start, end, &resp); err != nil {
		return nil, err
	}

	measurements := make([]schema.EnvironmentalMeasurement, 0, len(resp.Results))
	for _, m := range resp.Results {
		measurements = append(measurements, schema.EnvironmentalMeasurement{
			MeasurementType: m.MeasurementType,
			Value:           m.MeasurementValue,
			Unit:            m.MeasurementUnit,
			DeterminedDate:  parseEventDate(m.MeasurementDeterminedDate),
			Method:          m.MeasurementMethod,
			Remarks:         m.MeasurementRemarks,
		})
	}
	return measurements, nil
}

// get runs one OBIS query with the standard geometry and window parameters
// and decodes the JSON body into out.
func (c *OBISClient) get(ctx context.Context, path string, mpa schema.MPA, start, end time.Time, out any) error {
	params := url.Values{}
	params.Set("geometry", BoundingPolygon(mpa))
	params.Set("size", fmt.Sprintf("%d", obisPageSize))
	if !start.IsZero() {
		params.Set("startdate", start.UTC().Format(obisDateFormat))
	}
	if !end.IsZero() {
		params.Set("enddate", end.UTC().Format(obisDateFormat))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("obis %s returned %d: %s", path, resp.StatusCode, string(body))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// eventDateFormats are the layouts OBIS event dates show up in, most
// specific first.
var eventDateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006-01",
	"2006",
}

// parseEventDate parses an OBIS date string leniently. Ranges like
// "2020-01-01/2020-02-01" keep their start; unparseable dates yield the zero
// time, which the aggregators treat as a malformed record.
func parseEventDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for i := 0; i < len(s); i++ {
		if s[i] == '/' {
			s = s[:i]
			break
		}
	}
	for _, layout := range eventDateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
