package model

import "time"

// OrderStatus describes order delivery lifecycle.
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "PENDING"
	OrderStatusReadyForPickup OrderStatus = "READY_FOR_PICKUP"
	OrderStatusOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	OrderStatusCompleted      OrderStatus = "COMPLETED"
	OrderStatusCancelled      OrderStatus = "CANCELLED"
)

// ValidOrderStatus reports whether s is a known lifecycle status.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusReadyForPickup, OrderStatusOutForDelivery,
		OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// TerminalStatus reports whether no further transitions leave s.
func TerminalStatus(s OrderStatus) bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// PrintItem is the product descriptor frozen into an order at creation.
type PrintItem struct {
	Name      string
	Quantity  int
	PaperSize string
	Finish    string
}

// Order ties a customer's print request to a vendor and, once accepted,
// to a rider. Price fields are computed at creation and never recomputed.
type Order struct {
	ID            string
	CustomerID    int64
	CustomerEmail string
	VendorID      int64
	VendorUserID  int64
	VendorName    string
	DistanceKm    *float64
	RiderID       *int64
	Item          PrintItem
	Subtotal      float64
	DeliveryFee   float64
	GrandTotal    float64
	Status        OrderStatus
	PaymentRef    *string
	CreatedAt     time.Time
	DeliveredAt   *time.Time
}

// ParticipantIDs returns user ids entitled to the order's chat thread and
// live updates: the customer, the vendor owner and the assigned rider.
func (o *Order) ParticipantIDs() []int64 {
	ids := []int64{o.CustomerID, o.VendorUserID}
	if o.RiderID != nil {
		ids = append(ids, *o.RiderID)
	}
	return ids
}

// IsParticipant reports whether userID may view the order's thread.
func (o *Order) IsParticipant(userID int64) bool {
	for _, id := range o.ParticipantIDs() {
		if id == userID {
			return true
		}
	}
	return false
}
