package model

import "time"

// Role describes which marketplace surface a user belongs to.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleVendor   Role = "vendor"
	RoleRider    Role = "rider"
	RoleAdmin    Role = "admin"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleCustomer, RoleVendor, RoleRider, RoleAdmin:
		return true
	}
	return false
}

// VehicleType describes a rider's declared vehicle class.
type VehicleType string

const (
	VehicleMotorcycle VehicleType = "Motorcycle"
	VehicleBicycle    VehicleType = "Bicycle"
	VehicleCarVan     VehicleType = "Car-Van"
)

// ValidVehicleType reports whether v is a supported vehicle class.
func ValidVehicleType(v VehicleType) bool {
	switch v {
	case VehicleMotorcycle, VehicleBicycle, VehicleCarVan:
		return true
	}
	return false
}

// User represents an authenticated identity in the marketplace.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         Role
	VehicleType  *VehicleType
	PushToken    *string
	CreatedAt    time.Time
}

// ApplicationStatus describes rider application review state.
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "PENDING"
	ApplicationStatusApproved ApplicationStatus = "APPROVED"
	ApplicationStatusRejected ApplicationStatus = "REJECTED"
)

// RiderApplication is a self-service request for the rider role.
// The role itself is granted only through an administrative approval.
type RiderApplication struct {
	ID             int64
	UserID         int64
	Name           string
	Phone          string
	NationalID     string
	VehicleType    VehicleType
	PlateNumber    string
	Address        string
	GuarantorName  string
	GuarantorPhone string
	Status         ApplicationStatus
	CreatedAt      time.Time
}
