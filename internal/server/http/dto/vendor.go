package dto

import (
	"time"

	"github.com/inkroute/inkroute/internal/domain/model"
)

// VendorRegisterRequest creates a print shop profile.
type VendorRegisterRequest struct {
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// VendorResponse is one print shop in the catalog.
type VendorResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
}

// FromVendor maps a domain vendor onto its response shape.
func FromVendor(v *model.Vendor) VendorResponse {
	return VendorResponse{
		ID:        v.ID,
		Name:      v.Name,
		Address:   v.Address,
		Latitude:  v.Latitude,
		Longitude: v.Longitude,
		CreatedAt: v.CreatedAt,
	}
}

// FromVendors maps the catalog.
func FromVendors(vendors []model.Vendor) []VendorResponse {
	out := make([]VendorResponse, 0, len(vendors))
	for i := range vendors {
		out = append(out, FromVendor(&vendors[i]))
	}
	return out
}
