package sources

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oceanpulse/oceanpulse/schema"
)

var testMPA = schema.MPA{ID: "mpa-001", Name: "Channel Islands", Lat: 33.9, Lon: -119.7, RadiusKm: 50}

func newMockedOBISClient(t *testing.T) *OBISClient {
	t.Helper()
	c := NewOBISClient("", 5*time.Second)
	httpmock.ActivateNonDefault(c.client)
	t.Cleanup(httpmock.DeactivateAndReset)
	return c
}

func TestFetchOccurrences(t *testing.T) {
	c := newMockedOBISClient(t)
	httpmock.RegisterResponder("GET", DefaultOBISBaseURL+"/occurrence",
		httpmock.NewStringResponder(200, `{
			"total": 2,
			"results": [
				{
					"scientificName": "Enhydra lutris",
					"vernacularName": "Sea otter",
					"eventDate": "2023-06-15T08:00:00Z",
					"decimalLatitude": 34.0,
					"decimalLongitude": -119.5,
					"individualCount": 3,
					"taxonID": 242598,
					"basisOfRecord": "HumanObservation"
				},
				{
					"scientificName": "Macrocystis pyrifera",
					"eventDate": "2023-06",
					"occurrenceStatus": "absent"
				}
			]
		}`))

	records, err := c.FetchOccurrences(context.Background(), testMPA, time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Len(t, records, 2)

	otter := records[0]
	assert.Equal(t, "Enhydra lutris", otter.ScientificName)
	assert.Equal(t, "Sea otter", otter.CommonName)
	assert.Equal(t, 3, otter.IndividualCount)
	assert.Equal(t, int64(242598), otter.TaxonID)
	assert.False(t, otter.Absent)
	assert.Equal(t, 2023, otter.EventDate.Year())

	kelp := records[1]
	assert.True(t, kelp.Absent)
	assert.Equal(t, time.June, kelp.EventDate.Month())
}

func TestFetchOccurrencesSendsGeometry(t *testing.T) {
	c := newMockedOBISClient(t)
	var gotGeometry, gotStart string
	httpmock.RegisterResponder("GET", DefaultOBISBaseURL+"/occurrence",
		func(req *http.Request) (*http.Response, error) {
			gotGeometry = req.URL.Query().Get("geometry")
			gotStart = req.URL.Query().Get("startdate")
			return httpmock.NewStringResponse(200, `{"total":0,"results":[]}`), nil
		})

	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := c.FetchOccurrences(context.Background(), testMPA, start, time.Time{})
	require.NoError(t, err)

	assert.Contains(t, gotGeometry, "POLYGON((")
	assert.Equal(t, "2023-01-01", gotStart)
}

func TestFetchOccurrencesServerError(t *testing.T) {
	c := newMockedOBISClient(t)
	httpmock.RegisterResponder("GET", DefaultOBISBaseURL+"/occurrence",
		httpmock.NewStringResponder(503, "upstream unavailable"))

	_, err := c.FetchOccurrences(context.Background(), testMPA, time.Time{}, time.Time{})
	assert.Error(t, err)
}

func TestFetchMeasurements(t *testing.T) {
	c := newMockedOBISClient(t)
	httpmock.RegisterResponder("GET", DefaultOBISBaseURL+"/occurrence/mof",
		httpmock.NewStringResponder(200, `{
			"total": 1,
			"results": [
				{
					"measurementType": "Sea surface temperature",
					"measurementValue": 21.4,
					"measurementUnit": "degC",
					"measurementDeterminedDate": "2023-06-15"
				}
			]
		}`))

	measurements, err := c.FetchMeasurements(context.Background(), testMPA, time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Len(t, measurements, 1)
	assert.Equal(t, 21.4, measurements[0].Value)
	assert.Equal(t, "degC", measurements[0].Unit)
	assert.Equal(t, time.June, measurements[0].DeterminedDate.Month())
}

func TestParseEventDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		zero  bool
		year  int
	}{
		{"rfc3339", "2023-06-15T08:00:00Z", false, 2023},
		{"no timezone", "2023-06-15T08:00:00", false, 2023},
		{"date only", "2023-06-15", false, 2023},
		{"year month", "2023-06", false, 2023},
		{"year only", "2023", false, 2023},
		{"range keeps start", "2020-01-01/2020-02-01", false, 2020},
		{"empty", "", true, 0},
		{"garbage", "mid-summer", true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseEventDate(tt.input)
			if tt.zero {
				assert.True(t, got.IsZero())
			} else {
				assert.Equal(t, tt.year, got.Year())
			}
		})
	}
}

func TestBoundingPolygon(t *testing.T) {
	poly := BoundingPolygon(testMPA)
	assert.Contains(t, poly, "POLYGON((")

	b := Bounds(testMPA)
	assert.InDelta(t, 33.9-50.0/111.0, b.MinLat, 1e-9)
	assert.InDelta(t, 33.9+50.0/111.0, b.MaxLat, 1e-9)
	assert.Less(t, b.MinLon, testMPA.Lon)
	assert.Greater(t, b.MaxLon, testMPA.Lon)
}

func TestBoundsPolarFloor(t *testing.T) {
	polar := schema.MPA{ID: "polar", Lat: 89.5, Lon: 0, RadiusKm: 50}
	b := Bounds(polar)
	// The cosine floor keeps the box finite near the poles.
	assert.Less(t, b.MaxLon-b.MinLon, 10.0)
}
