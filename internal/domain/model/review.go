package model

import "time"

// Review is submitted once per completed order by its customer and rates
// both the vendor and the rider on a 1-5 scale.
type Review struct {
	ID           int64
	OrderID      string
	CustomerID   int64
	VendorID     int64
	RiderID      int64
	VendorRating int
	RiderRating  int
	Comment      string
	CreatedAt    time.Time
}

// ValidRating reports whether r is within the accepted 1-5 range.
func ValidRating(r int) bool {
	return r >= 1 && r <= 5
}
