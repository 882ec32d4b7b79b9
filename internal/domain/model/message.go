package model

import "time"

// MaxInlineImageBytes caps chat image attachments before base64 encoding.
// Attachments travel inline with the message rather than via a blob store.
const MaxInlineImageBytes = 1 << 20

// Message belongs to exactly one order's chat thread. Either Text or Image
// must be present; Image holds the base64 encoded payload.
type Message struct {
	ID         int64
	OrderID    string
	SenderID   int64
	SenderName string
	Text       string
	Image      *string
	CreatedAt  time.Time
}
