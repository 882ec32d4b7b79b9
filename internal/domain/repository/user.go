package repository

import (
	"context"

	"github.com/inkroute/inkroute/internal/domain/model"
)

// UserRepository describes persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, email, passwordHash string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	SetRole(ctx context.Context, userID int64, role model.Role, vehicle *model.VehicleType) error
	SetPushToken(ctx context.Context, userID int64, token string) error
}
