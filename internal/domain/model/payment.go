package model

// PaymentStatus describes transaction state reported by the payment gateway.
type PaymentStatus string

const (
	PaymentStatusSuccess PaymentStatus = "SUCCESS"
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

// Payment encapsulates a gateway verification result for a payment reference.
type Payment struct {
	Reference string
	Status    PaymentStatus
	Amount    *float64
}
