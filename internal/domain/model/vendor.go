package model

import "time"

// Vendor is a print shop profile owned by a vendor-role user.
type Vendor struct {
	ID        int64
	UserID    int64
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
	CreatedAt time.Time
}
