package repository

import (
	"context"

	"github.com/inkroute/inkroute/internal/domain/model"
)

// RiderApplicationRepository stores self-service rider role requests.
type RiderApplicationRepository interface {
	Create(ctx context.Context, app *model.RiderApplication) (*model.RiderApplication, error)
	GetByID(ctx context.Context, id int64) (*model.RiderApplication, error)
	ListPending(ctx context.Context) ([]model.RiderApplication, error)
	// Decide records the administrative decision; approval grants the rider
	// role and vehicle type on the user row within the same transaction.
	Decide(ctx context.Context, id int64, status model.ApplicationStatus) error
}
