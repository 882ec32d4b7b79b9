package usecase

import (
	"context"
	"encoding/base64"
	"strings"

	domainErrors "github.com/inkroute/inkroute/internal/domain/errors"
	"github.com/inkroute/inkroute/internal/domain/model"
	"github.com/inkroute/inkroute/internal/domain/repository"
)

// ChatUseCase manages per-order message threads. A thread shares the order's
// lifetime and is visible only to the order's participants and admins.
type ChatUseCase struct {
	orders   repository.OrderRepository
	messages repository.MessageRepository
}

// NewChatUseCase constructs ChatUseCase.
func NewChatUseCase(orders repository.OrderRepository, messages repository.MessageRepository) *ChatUseCase {
	return &ChatUseCase{orders: orders, messages: messages}
}

// Post appends a message to the order's thread. Either text or an inline
// base64 image must be present; images are capped at MaxInlineImageBytes
// of decoded payload.
func (u *ChatUseCase) Post(ctx context.Context, orderID string, senderID int64, senderRole model.Role, senderName, text string, image *string) (*model.Message, *model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	if senderRole != model.RoleAdmin && !order.IsParticipant(senderID) {
		return nil, nil, domainErrors.ErrForbidden
	}

	text = strings.TrimSpace(text)
	if text == "" && image == nil {
		return nil, nil, domainErrors.ErrEmptyMessage
	}
	if image != nil {
		decoded := base64.StdEncoding.DecodedLen(len(*image))
		if decoded > model.MaxInlineImageBytes {
			return nil, nil, domainErrors.ErrAttachmentTooLarge
		}
	}

	msg, err := u.messages.Append(ctx, &model.Message{
		OrderID:    orderID,
		SenderID:   senderID,
		SenderName: senderName,
		Text:       text,
		Image:      image,
	})
	if err != nil {
		return nil, nil, err
	}
	return msg, order, nil
}

// History returns the order's messages in append order.
func (u *ChatUseCase) History(ctx context.Context, orderID string, requesterID int64, requesterRole model.Role) ([]model.Message, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if requesterRole != model.RoleAdmin && !order.IsParticipant(requesterID) {
		return nil, domainErrors.ErrForbidden
	}
	return u.messages.ListByOrder(ctx, orderID)
}
