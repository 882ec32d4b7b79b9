package auth

import (
	"time"

	"github.com/inkroute/inkroute/internal/domain/model"
)

// Claims carries the identity encoded in an auth token.
type Claims struct {
	UserID int64
	Email  string
	Role   model.Role
}

type Strategy interface {
	IssueToken(userID int64, email string, role model.Role) (string, error)
	ParseToken(token string) (*Claims, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
