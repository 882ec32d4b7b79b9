package model

import "time"

// OrderEventType names a change notification pushed to live subscribers.
type OrderEventType string

const (
	EventOrderCreated   OrderEventType = "order_created"
	EventOrderReady     OrderEventType = "order_ready"
	EventOrderAccepted  OrderEventType = "order_accepted"
	EventOrderCompleted OrderEventType = "order_completed"
	EventOrderCancelled OrderEventType = "order_cancelled"
	EventMessagePosted  OrderEventType = "message_posted"
)

// OrderEvent carries the full order snapshot so receivers re-render from
// state instead of diffing; applying the same event twice is harmless.
type OrderEvent struct {
	Type    OrderEventType `json:"type"`
	Order   *Order         `json:"order"`
	Message *Message       `json:"message,omitempty"`
}

// Position is a geographic fix from a rider's continuous location stream.
type Position struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	UpdatedAt time.Time `json:"updated_at"`
}
