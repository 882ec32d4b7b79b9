// Package geo provides the distance, ETA and delivery progress math
// shared by pricing, rider eligibility and order tracking.
package geo

import "math"

const earthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance between two points in kilometers.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// ETAMinutes estimates delivery time at an average courier speed of 20 km/h,
// never reporting less than one minute.
func ETAMinutes(distanceKm float64) int {
	minutes := int(math.Ceil(distanceKm / 20 * 60))
	if minutes < 1 {
		return 1
	}
	return minutes
}

// Progress maps a rider's remaining distance to the customer onto a
// completion percentage. Five or more kilometers out reads as 10%, arrival
// reads as 90%; the final jump to 100% happens on completion confirmation.
func Progress(remainingKm float64) int {
	if remainingKm < 0 {
		remainingKm = 0
	}
	if remainingKm > 5 {
		remainingKm = 5
	}
	return int(math.Round(90 - remainingKm/5*80))
}
