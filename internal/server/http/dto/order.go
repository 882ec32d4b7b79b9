package dto

import (
	"time"

	"github.com/inkroute/inkroute/internal/domain/model"
	"github.com/inkroute/inkroute/internal/usecase"
)

// PrintItemPayload describes the product being ordered.
type PrintItemPayload struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	PaperSize string `json:"paper_size"`
	Finish    string `json:"finish"`
}

// PlaceOrderRequest is the checkout payload. The customer fix is optional;
// without it the delivery fee falls back to a flat rate.
type PlaceOrderRequest struct {
	VendorID   int64            `json:"vendor_id"`
	Item       PrintItemPayload `json:"item"`
	Subtotal   float64          `json:"subtotal"`
	PaymentRef string           `json:"payment_ref"`
	Latitude   *float64         `json:"latitude,omitempty"`
	Longitude  *float64         `json:"longitude,omitempty"`
}

// OrderResponse is the full order snapshot served everywhere an order
// appears, HTTP and WebSocket alike.
type OrderResponse struct {
	ID            string           `json:"id"`
	CustomerID    int64            `json:"customer_id"`
	CustomerEmail string           `json:"customer_email"`
	VendorID      int64            `json:"vendor_id"`
	VendorName    string           `json:"vendor_name"`
	DistanceKm    *float64         `json:"distance_km,omitempty"`
	RiderID       *int64           `json:"rider_id,omitempty"`
	Item          PrintItemPayload `json:"item"`
	Subtotal      float64          `json:"subtotal"`
	DeliveryFee   float64          `json:"delivery_fee"`
	GrandTotal    float64          `json:"grand_total"`
	Status        string           `json:"status"`
	CreatedAt     time.Time        `json:"created_at"`
	DeliveredAt   *time.Time       `json:"delivered_at,omitempty"`
}

// FromOrder maps a domain order onto its response shape.
func FromOrder(o *model.Order) OrderResponse {
	return OrderResponse{
		ID:            o.ID,
		CustomerID:    o.CustomerID,
		CustomerEmail: o.CustomerEmail,
		VendorID:      o.VendorID,
		VendorName:    o.VendorName,
		DistanceKm:    o.DistanceKm,
		RiderID:       o.RiderID,
		Item: PrintItemPayload{
			Name:      o.Item.Name,
			Quantity:  o.Item.Quantity,
			PaperSize: o.Item.PaperSize,
			Finish:    o.Item.Finish,
		},
		Subtotal:    o.Subtotal,
		DeliveryFee: o.DeliveryFee,
		GrandTotal:  o.GrandTotal,
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt,
		DeliveredAt: o.DeliveredAt,
	}
}

// FromOrders maps an order list.
func FromOrders(orders []model.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, FromOrder(&orders[i]))
	}
	return out
}

// ForceStatusRequest is the administrative status override payload.
type ForceStatusRequest struct {
	Status string `json:"status"`
}

// LocationUpdateRequest is one fix from a rider's location stream.
type LocationUpdateRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PositionResponse is a rider fix served to the tracking view.
type PositionResponse struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TrackResponse is the live delivery snapshot for the customer's tracking
// view. Progress holds a neutral midpoint when no rider fix is available.
type TrackResponse struct {
	Status          string            `json:"status"`
	ProgressPercent int               `json:"progress_percent"`
	RemainingKm     *float64          `json:"remaining_km,omitempty"`
	ETAMinutes      *int              `json:"eta_minutes,omitempty"`
	RiderPosition   *PositionResponse `json:"rider_position,omitempty"`
}

// FromTracking maps the tracking snapshot.
func FromTracking(t *usecase.TrackingInfo) TrackResponse {
	resp := TrackResponse{
		Status:          string(t.Status),
		ProgressPercent: t.ProgressPercent,
		RemainingKm:     t.RemainingKm,
		ETAMinutes:      t.ETAMinutes,
	}
	if t.RiderPosition != nil {
		resp.RiderPosition = &PositionResponse{
			Latitude:  t.RiderPosition.Latitude,
			Longitude: t.RiderPosition.Longitude,
			UpdatedAt: t.RiderPosition.UpdatedAt,
		}
	}
	return resp
}
