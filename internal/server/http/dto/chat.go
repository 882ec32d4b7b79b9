package dto

import (
	"time"

	"github.com/inkroute/inkroute/internal/domain/model"
)

// PostMessageRequest appends to an order's chat thread. Either text or an
// inline base64 image must be present.
type PostMessageRequest struct {
	Text  string  `json:"text"`
	Image *string `json:"image,omitempty"`
}

// MessageResponse is one chat thread entry.
type MessageResponse struct {
	ID         int64     `json:"id"`
	OrderID    string    `json:"order_id"`
	SenderID   int64     `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	Text       string    `json:"text"`
	Image      *string   `json:"image,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// FromMessage maps a domain message onto its response shape.
func FromMessage(m *model.Message) MessageResponse {
	return MessageResponse{
		ID:         m.ID,
		OrderID:    m.OrderID,
		SenderID:   m.SenderID,
		SenderName: m.SenderName,
		Text:       m.Text,
		Image:      m.Image,
		CreatedAt:  m.CreatedAt,
	}
}

// FromMessages maps a thread.
func FromMessages(messages []model.Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(messages))
	for i := range messages {
		out = append(out, FromMessage(&messages[i]))
	}
	return out
}
