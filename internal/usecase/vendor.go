package usecase

import (
	"context"

	domainErrors "github.com/inkroute/inkroute/internal/domain/errors"
	"github.com/inkroute/inkroute/internal/domain/model"
	"github.com/inkroute/inkroute/internal/domain/repository"
)

// VendorUseCase manages print shop profiles.
type VendorUseCase struct {
	vendors repository.VendorRepository
	users   repository.UserRepository
}

// NewVendorUseCase constructs VendorUseCase.
func NewVendorUseCase(vendors repository.VendorRepository, users repository.UserRepository) *VendorUseCase {
	return &VendorUseCase{vendors: vendors, users: users}
}

// Register creates a shop profile for ownerID and grants the vendor role.
func (u *VendorUseCase) Register(ctx context.Context, ownerID int64, name, address string, lat, lng float64) (*model.Vendor, error) {
	if name == "" {
		return nil, domainErrors.ErrInvalidInput
	}
	vendor, err := u.vendors.Create(ctx, &model.Vendor{
		UserID:    ownerID,
		Name:      name,
		Address:   address,
		Latitude:  lat,
		Longitude: lng,
	})
	if err != nil {
		return nil, err
	}
	if err := u.users.SetRole(ctx, ownerID, model.RoleVendor, nil); err != nil {
		return nil, err
	}
	return vendor, nil
}

// List returns every shop for the customer-facing catalog.
func (u *VendorUseCase) List(ctx context.Context) ([]model.Vendor, error) {
	return u.vendors.List(ctx)
}

// GetByID fetches one shop profile.
func (u *VendorUseCase) GetByID(ctx context.Context, id int64) (*model.Vendor, error) {
	return u.vendors.GetByID(ctx, id)
}

// GetByUser fetches the shop owned by userID.
func (u *VendorUseCase) GetByUser(ctx context.Context, userID int64) (*model.Vendor, error) {
	return u.vendors.GetByUser(ctx, userID)
}
