package usecase

import (
	"context"

	domainErrors "github.com/inkroute/inkroute/internal/domain/errors"
	"github.com/inkroute/inkroute/internal/domain/model"
	"github.com/inkroute/inkroute/internal/domain/repository"
)

// ReviewUseCase handles post-delivery ratings.
type ReviewUseCase struct {
	orders  repository.OrderRepository
	reviews repository.ReviewRepository
}

// NewReviewUseCase constructs ReviewUseCase.
func NewReviewUseCase(orders repository.OrderRepository, reviews repository.ReviewRepository) *ReviewUseCase {
	return &ReviewUseCase{orders: orders, reviews: reviews}
}

// Submit records the customer's one-shot rating of a completed order. Both
// the vendor and the rider rating are required; a second submission for the
// same order reports ErrAlreadyExists.
func (u *ReviewUseCase) Submit(ctx context.Context, orderID string, customerID int64, vendorRating, riderRating int, comment string) (*model.Review, error) {
	if !model.ValidRating(vendorRating) || !model.ValidRating(riderRating) {
		return nil, domainErrors.ErrInvalidRating
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.CustomerID != customerID {
		return nil, domainErrors.ErrForbidden
	}
	if order.Status != model.OrderStatusCompleted {
		return nil, domainErrors.ErrOrderNotCompleted
	}
	if order.RiderID == nil {
		return nil, domainErrors.ErrOrderNotCompleted
	}

	return u.reviews.Create(ctx, &model.Review{
		OrderID:      orderID,
		CustomerID:   customerID,
		VendorID:     order.VendorID,
		RiderID:      *order.RiderID,
		VendorRating: vendorRating,
		RiderRating:  riderRating,
		Comment:      comment,
	})
}

// ForOrder returns the review attached to an order, if any.
func (u *ReviewUseCase) ForOrder(ctx context.Context, orderID string) (*model.Review, error) {
	return u.reviews.GetByOrder(ctx, orderID)
}

// ForVendor lists a vendor's reviews, newest first.
func (u *ReviewUseCase) ForVendor(ctx context.Context, vendorID int64) ([]model.Review, error) {
	return u.reviews.ListByVendor(ctx, vendorID)
}
