// Package sources has the clients for the external data sources an
// assessment pulls from: the OBIS biodiversity API, the animal-tracking
// feed and the embedded indicator-species catalog.
package sources

import (
	"fmt"
	"math"

	"github.com/oceanpulse/oceanpulse/schema"
)

// kmPerDegree approximates one degree of latitude (~111 km).
const kmPerDegree = 111.0

// Bounds converts an MPA's center-plus-radius geometry into a lat/lon
// bounding box. Longitude degrees shrink with latitude; the cosine factor is
// floored so polar MPAs do not blow up to a degenerate box.
func Bounds(mpa schema.MPA) schema.GeoBounds {
	latOffset := mpa.RadiusKm / kmPerDegree
	lonScale := math.Cos(mpa.Lat * math.Pi / 180)
	if lonScale < 0.1 {
		lonScale = 0.1
	}
	lonOffset := mpa.RadiusKm / (kmPerDegree * lonScale)

	return schema.GeoBounds{
		MinLat: mpa.Lat - latOffset,
		MaxLat: mpa.Lat + latOffset,
		MinLon: mpa.Lon - lonOffset,
		MaxLon: mpa.Lon + lonOffset,
	}
}

// BoundingPolygon renders the MPA's bounding box as the counter-clockwise
// WKT polygon the OBIS geometry parameter expects.
func BoundingPolygon(mpa schema.MPA) string {
	b := Bounds(mpa)
	return fmt.Sprintf("POLYGON((%g %g,%g %g,%g %g,%g %g,%g %g))",
		b.MinLon, b.MinLat,
		b.MaxLon, b.MinLat,
		b.MaxLon, b.MaxLat,
		b.MinLon, b.MaxLat,
		b.MinLon, b.MinLat,
	)
}
