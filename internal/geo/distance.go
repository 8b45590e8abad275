// Package geo holds the small amount of geography needed for the nearby
// storefront listing.
package geo

import (
	"fmt"
	"math"
)

const earthRadiusKm = 6371

// Distance returns the great-circle distance in meters between two WGS84
// coordinates, using the haversine formula.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLng := toRadians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c * 1000
}

// FormatDistance renders a distance in meters for display: whole meters
// below 1km, otherwise kilometers with one decimal.
func FormatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%dm", int(math.Round(meters)))
	}
	return fmt.Sprintf("%.1fkm", meters/1000)
}

func toRadians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}
