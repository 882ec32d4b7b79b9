package repository

import (
	"context"

	"github.com/inkroute/inkroute/internal/domain/model"
)

// ReviewRepository persists order reviews. Create reports ErrAlreadyExists
// when the order has already been reviewed.
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) (*model.Review, error)
	GetByOrder(ctx context.Context, orderID string) (*model.Review, error)
	ListByVendor(ctx context.Context, vendorID int64) ([]model.Review, error)
}
