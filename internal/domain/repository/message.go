package repository

import (
	"context"

	"github.com/inkroute/inkroute/internal/domain/model"
)

// MessageRepository provides access to per-order chat threads.
type MessageRepository interface {
	Append(ctx context.Context, msg *model.Message) (*model.Message, error)
	// ListByOrder returns messages in append order: created_at ascending,
	// ties broken by the server-assigned sequence id.
	ListByOrder(ctx context.Context, orderID string) ([]model.Message, error)
}
