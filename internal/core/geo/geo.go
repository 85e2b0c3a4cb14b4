// Package geo provides the great-circle math and display formatting shared by
// the verification engine. Everything here is a pure function.
package geo

import (
	"fmt"
	"math"

	"github.com/nopkhun/restaurant-scheduling-sub000/internal/core/domain"
)

// EarthRadiusMeters is the mean Earth radius used by the haversine formula.
const EarthRadiusMeters = 6371000.0

// Distance returns the haversine great-circle distance between a and b in
// meters. Distance(a, a) == 0 and Distance(a, b) == Distance(b, a).
func Distance(a, b domain.Coordinate) float64 {
	lat1 := degToRad(a.Latitude)
	lat2 := degToRad(b.Latitude)
	dLat := degToRad(b.Latitude - a.Latitude)
	dLng := degToRad(b.Longitude - a.Longitude)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng

	return EarthRadiusMeters * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func degToRad(d float64) float64 {
	return d * math.Pi / 180
}

// FormatLocation renders a coordinate for UI and audit-log display:
//
//	"13.756789, 100.501834"
//
// With a positive accuracy the uncertainty is appended, rounded to the
// nearest meter: "13.756789, 100.501834 (±16m)".
func FormatLocation(c domain.Coordinate, accuracyMeters float64) string {
	s := fmt.Sprintf("%.6f, %.6f", c.Latitude, c.Longitude)
	if accuracyMeters > 0 {
		s += fmt.Sprintf(" (±%dm)", int(math.Round(accuracyMeters)))
	}
	return s
}
