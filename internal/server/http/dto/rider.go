package dto

import (
	"time"

	"github.com/inkroute/inkroute/internal/domain/model"
)

// RiderApplicationRequest files a self-service rider role request.
type RiderApplicationRequest struct {
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	NationalID     string `json:"national_id"`
	VehicleType    string `json:"vehicle_type"`
	PlateNumber    string `json:"plate_number"`
	Address        string `json:"address"`
	GuarantorName  string `json:"guarantor_name"`
	GuarantorPhone string `json:"guarantor_phone"`
}

// ToApplication maps the request onto the domain application for userID.
func (r RiderApplicationRequest) ToApplication(userID int64) *model.RiderApplication {
	return &model.RiderApplication{
		UserID:         userID,
		Name:           r.Name,
		Phone:          r.Phone,
		NationalID:     r.NationalID,
		VehicleType:    model.VehicleType(r.VehicleType),
		PlateNumber:    r.PlateNumber,
		Address:        r.Address,
		GuarantorName:  r.GuarantorName,
		GuarantorPhone: r.GuarantorPhone,
	}
}

// RiderApplicationResponse is one filed application.
type RiderApplicationResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	VehicleType string    `json:"vehicle_type"`
	PlateNumber string    `json:"plate_number,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// FromApplication maps a domain application onto its response shape.
func FromApplication(a *model.RiderApplication) RiderApplicationResponse {
	return RiderApplicationResponse{
		ID:          a.ID,
		UserID:      a.UserID,
		Name:        a.Name,
		Phone:       a.Phone,
		VehicleType: string(a.VehicleType),
		PlateNumber: a.PlateNumber,
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt,
	}
}

// FromApplications maps an application list.
func FromApplications(apps []model.RiderApplication) []RiderApplicationResponse {
	out := make([]RiderApplicationResponse, 0, len(apps))
	for i := range apps {
		out = append(out, FromApplication(&apps[i]))
	}
	return out
}
