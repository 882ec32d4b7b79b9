package dto

import (
	"time"

	"github.com/inkroute/inkroute/internal/domain/model"
)

// AuthRequest describes email/password payload.
type AuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries the issued token together with the account profile.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse is the public projection of an account.
type UserResponse struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	VehicleType *string   `json:"vehicle_type,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// FromUser maps a domain user onto its response shape.
func FromUser(u *model.User) UserResponse {
	resp := UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
	if u.VehicleType != nil {
		vt := string(*u.VehicleType)
		resp.VehicleType = &vt
	}
	return resp
}

// FromUsers maps a user list.
func FromUsers(users []model.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, FromUser(&users[i]))
	}
	return out
}

// PushTokenRequest registers a device for delivery notifications.
type PushTokenRequest struct {
	Token string `json:"token"`
}
