package repository

import (
	"context"

	"github.com/inkroute/inkroute/internal/domain/model"
)

// OrderRepository describes persistence operations with orders. Transition
// methods are conditional writes: they succeed only when the order is still
// in the expected prior state, and report ErrOrderTaken/ErrInvalidTransition
// otherwise.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error)
	ListByVendor(ctx context.Context, vendorUserID int64) ([]model.Order, error)
	ListByRider(ctx context.Context, riderID int64) ([]model.Order, error)
	// ListAvailable returns READY_FOR_PICKUP orders without a rider, optionally
	// capped by vendor distance for restricted vehicle classes.
	ListAvailable(ctx context.Context, maxDistanceKm *float64) ([]model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)

	MarkReady(ctx context.Context, orderID string, vendorUserID int64) (*model.Order, error)
	Assign(ctx context.Context, orderID string, riderID int64) (*model.Order, error)
	// Complete flips OUT_FOR_DELIVERY to COMPLETED and, in the same
	// transaction, credits the rider's delivery fee and the vendor's subtotal.
	Complete(ctx context.Context, orderID string, riderID int64) (*model.Order, error)
	ForceStatus(ctx context.Context, orderID string, status model.OrderStatus) (*model.Order, error)
}
