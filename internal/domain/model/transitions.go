package model

type transitionKey struct {
	From  OrderStatus
	To    OrderStatus
	Actor Role
}

// allowedTransitions is the authoritative role-gated state machine. The
// administrative force-status override deliberately bypasses it.
var allowedTransitions = map[transitionKey]struct{}{
	{OrderStatusPending, OrderStatusReadyForPickup, RoleVendor}:       {},
	{OrderStatusReadyForPickup, OrderStatusOutForDelivery, RoleRider}: {},
	{OrderStatusOutForDelivery, OrderStatusCompleted, RoleRider}:      {},
	// Customer confirmation of receipt implies completion as well.
	{OrderStatusOutForDelivery, OrderStatusCompleted, RoleCustomer}: {},
}

// CanTransition reports whether actor may move an order from one status to
// another. Ownership checks (owning vendor, assigned rider) live with the
// conditional update that performs the write.
func CanTransition(from, to OrderStatus, actor Role) bool {
	_, ok := allowedTransitions[transitionKey{From: from, To: to, Actor: actor}]
	return ok
}

// NextStatuses returns the statuses actor may move an order in status from to.
func NextStatuses(from OrderStatus, actor Role) []OrderStatus {
	var out []OrderStatus
	for key := range allowedTransitions {
		if key.From == from && key.Actor == actor {
			out = append(out, key.To)
		}
	}
	return out
}
