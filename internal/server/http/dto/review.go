package dto

import (
	"time"

	"github.com/inkroute/inkroute/internal/domain/model"
)

// ReviewRequest rates a completed order, vendor and rider together.
type ReviewRequest struct {
	VendorRating int    `json:"vendor_rating"`
	RiderRating  int    `json:"rider_rating"`
	Comment      string `json:"comment"`
}

// ReviewResponse is one submitted review.
type ReviewResponse struct {
	ID           int64     `json:"id"`
	OrderID      string    `json:"order_id"`
	VendorID     int64     `json:"vendor_id"`
	RiderID      int64     `json:"rider_id"`
	VendorRating int       `json:"vendor_rating"`
	RiderRating  int       `json:"rider_rating"`
	Comment      string    `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// FromReview maps a domain review onto its response shape.
func FromReview(r *model.Review) ReviewResponse {
	return ReviewResponse{
		ID:           r.ID,
		OrderID:      r.OrderID,
		VendorID:     r.VendorID,
		RiderID:      r.RiderID,
		VendorRating: r.VendorRating,
		RiderRating:  r.RiderRating,
		Comment:      r.Comment,
		CreatedAt:    r.CreatedAt,
	}
}

// FromReviews maps a review list.
func FromReviews(reviews []model.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, FromReview(&reviews[i]))
	}
	return out
}
