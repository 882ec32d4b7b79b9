package usecase

import "math"

// FallbackDeliveryFee applies when the vendor's distance cannot be computed.
const FallbackDeliveryFee = 500.0

const (
	baseFare     = 400.0
	perKmRate    = 150.0
	feeIncrement = 50.0
)

// DeliveryFee prices a delivery as a flat base fare plus a per-kilometer
// rate, rounded up to the nearest 50-unit increment. The result is frozen
// into the order at creation and never recomputed.
func DeliveryFee(distanceKm *float64) float64 {
	if distanceKm == nil {
		return FallbackDeliveryFee
	}
	raw := baseFare + *distanceKm*perKmRate
	return math.Ceil(raw/feeIncrement) * feeIncrement
}
