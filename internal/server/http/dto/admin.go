package dto

// SetRoleRequest assigns a role directly, bypassing the application flow.
type SetRoleRequest struct {
	Role        string  `json:"role"`
	VehicleType *string `json:"vehicle_type,omitempty"`
}

// ApplicationDecisionRequest approves or rejects a rider application.
type ApplicationDecisionRequest struct {
	Approve bool `json:"approve"`
}
