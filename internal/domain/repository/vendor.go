package repository

import (
	"context"

	"github.com/inkroute/inkroute/internal/domain/model"
)

// VendorRepository describes persistence operations for vendor profiles.
type VendorRepository interface {
	Create(ctx context.Context, vendor *model.Vendor) (*model.Vendor, error)
	GetByID(ctx context.Context, id int64) (*model.Vendor, error)
	GetByUser(ctx context.Context, userID int64) (*model.Vendor, error)
	List(ctx context.Context) ([]model.Vendor, error)
}
