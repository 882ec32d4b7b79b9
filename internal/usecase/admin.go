package usecase

import (
	"context"

	domainErrors "github.com/inkroute/inkroute/internal/domain/errors"
	"github.com/inkroute/inkroute/internal/domain/model"
	"github.com/inkroute/inkroute/internal/domain/repository"
)

// AdminUseCase backs the administrative surface: user oversight, role
// grants and rider application review.
type AdminUseCase struct {
	users        repository.UserRepository
	applications repository.RiderApplicationRepository
}

// NewAdminUseCase constructs AdminUseCase.
func NewAdminUseCase(users repository.UserRepository, applications repository.RiderApplicationRepository) *AdminUseCase {
	return &AdminUseCase{users: users, applications: applications}
}

// ListUsers returns every registered user.
func (u *AdminUseCase) ListUsers(ctx context.Context) ([]model.User, error) {
	return u.users.List(ctx)
}

// SetRole assigns a role directly, bypassing the application flow.
func (u *AdminUseCase) SetRole(ctx context.Context, userID int64, role model.Role, vehicle *model.VehicleType) error {
	if !model.ValidRole(role) {
		return domainErrors.ErrInvalidInput
	}
	if vehicle != nil && !model.ValidVehicleType(*vehicle) {
		return domainErrors.ErrInvalidInput
	}
	return u.users.SetRole(ctx, userID, role, vehicle)
}

// PendingApplications lists rider applications awaiting review.
func (u *AdminUseCase) PendingApplications(ctx context.Context) ([]model.RiderApplication, error) {
	return u.applications.ListPending(ctx)
}

// DecideApplication approves or rejects a rider application. Approval grants
// the rider role inside the repository transaction.
func (u *AdminUseCase) DecideApplication(ctx context.Context, id int64, approve bool) error {
	status := model.ApplicationStatusRejected
	if approve {
		status = model.ApplicationStatusApproved
	}
	return u.applications.Decide(ctx, id, status)
}
