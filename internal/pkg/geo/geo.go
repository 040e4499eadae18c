// Package geo holds the great-circle distance helper used to decide
// whether a client address falls inside a salon's coverage zone.
package geo

import "math"

// earthRadiusKm is the mean Earth radius.
const earthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance in kilometers between two
// latitude/longitude points. Symmetric, and zero for identical points.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// WithinRadiusKm reports whether the point (lat, lon) lies within radiusKm
// of the center. Used as a filter predicate, never as an exact key.
func WithinRadiusKm(centerLat, centerLon, lat, lon, radiusKm float64) bool {
	return HaversineKm(centerLat, centerLon, lat, lon) <= radiusKm
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
