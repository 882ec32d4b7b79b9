package usecase

import (
	"context"
	"errors"

	domainErrors "github.com/inkroute/inkroute/internal/domain/errors"
	"github.com/inkroute/inkroute/internal/domain/model"
	"github.com/inkroute/inkroute/internal/domain/repository"
	"github.com/inkroute/inkroute/internal/pkg/geo"
)

// BicycleMaxDistanceKm caps deliveries a bicycle rider may accept.
const BicycleMaxDistanceKm = 5.0

// PaymentVerifier checks a payment reference against the gateway.
type PaymentVerifier interface {
	Verify(ctx context.Context, reference string) (*model.Payment, error)
}

// LocationCache stores and serves riders' live positions.
type LocationCache interface {
	Update(ctx context.Context, riderID int64, pos model.Position) error
	Get(ctx context.Context, riderID int64) (*model.Position, error)
}

// PlaceOrderInput carries everything needed to create an order. The customer
// fix is optional; without it distance-based pricing falls back to a flat fee.
type PlaceOrderInput struct {
	CustomerID    int64
	CustomerEmail string
	VendorID      int64
	Item          model.PrintItem
	Subtotal      float64
	PaymentRef    string
	CustomerLat   *float64
	CustomerLng   *float64
}

// TrackingInfo is the live delivery snapshot served to a waiting customer.
type TrackingInfo struct {
	Status          model.OrderStatus
	ProgressPercent int
	RemainingKm     *float64
	ETAMinutes      *int
	RiderPosition   *model.Position
}

// OrderUseCase encapsulates the order lifecycle: placement, the role-gated
// status transitions, and live tracking.
type OrderUseCase struct {
	orders      repository.OrderRepository
	vendors     repository.VendorRepository
	users       repository.UserRepository
	payments    PaymentVerifier
	locations   LocationCache
	skipPayment bool
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(
	orders repository.OrderRepository,
	vendors repository.VendorRepository,
	users repository.UserRepository,
	payments PaymentVerifier,
	locations LocationCache,
	skipPayment bool,
) *OrderUseCase {
	return &OrderUseCase{
		orders:      orders,
		vendors:     vendors,
		users:       users,
		payments:    payments,
		locations:   locations,
		skipPayment: skipPayment,
	}
}

// Place verifies the payment reference, freezes pricing and creates the
// order in PENDING state.
func (u *OrderUseCase) Place(ctx context.Context, in PlaceOrderInput) (*model.Order, error) {
	if in.Item.Name == "" || in.Item.Quantity <= 0 {
		return nil, domainErrors.ErrInvalidInput
	}
	if in.Subtotal <= 0 {
		return nil, domainErrors.ErrInvalidAmount
	}

	vendor, err := u.vendors.GetByID(ctx, in.VendorID)
	if err != nil {
		return nil, err
	}

	if !u.skipPayment {
		payment, err := u.payments.Verify(ctx, in.PaymentRef)
		if err != nil {
			return nil, err
		}
		if payment.Status != model.PaymentStatusSuccess {
			return nil, domainErrors.ErrPaymentNotVerified
		}
	}

	var distanceKm *float64
	if in.CustomerLat != nil && in.CustomerLng != nil {
		km := geo.HaversineKm(vendor.Latitude, vendor.Longitude, *in.CustomerLat, *in.CustomerLng)
		distanceKm = &km
	}

	fee := DeliveryFee(distanceKm)
	order := &model.Order{
		CustomerID:    in.CustomerID,
		CustomerEmail: in.CustomerEmail,
		VendorID:      vendor.ID,
		VendorUserID:  vendor.UserID,
		VendorName:    vendor.Name,
		DistanceKm:    distanceKm,
		Item:          in.Item,
		Subtotal:      in.Subtotal,
		DeliveryFee:   fee,
		GrandTotal:    in.Subtotal + fee,
		Status:        model.OrderStatusPending,
	}
	if in.PaymentRef != "" {
		order.PaymentRef = &in.PaymentRef
	}

	return u.orders.Create(ctx, order)
}

// MarkReady flips PENDING to READY_FOR_PICKUP on behalf of the owning vendor.
func (u *OrderUseCase) MarkReady(ctx context.Context, orderID string, vendorUserID int64) (*model.Order, error) {
	return u.orders.MarkReady(ctx, orderID, vendorUserID)
}

// Accept assigns the order to a rider. The write is conditional on the order
// still being unassigned, so two concurrent accepts resolve to exactly one
// winner; the loser observes ErrOrderTaken.
func (u *OrderUseCase) Accept(ctx context.Context, orderID string, riderID int64) (*model.Order, error) {
	rider, err := u.users.GetByID(ctx, riderID)
	if err != nil {
		return nil, err
	}
	if rider.Role != model.RoleRider {
		return nil, domainErrors.ErrForbidden
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !model.CanTransition(order.Status, model.OrderStatusOutForDelivery, model.RoleRider) {
		return nil, domainErrors.ErrOrderTaken
	}
	if rider.VehicleType != nil && *rider.VehicleType == model.VehicleBicycle {
		if order.DistanceKm != nil && *order.DistanceKm > BicycleMaxDistanceKm {
			return nil, domainErrors.ErrVehicleNotEligible
		}
	}

	return u.orders.Assign(ctx, orderID, riderID)
}

// Complete finalizes delivery. Both the assigned rider and the order's
// customer may confirm; settlement credits happen inside the repository
// transaction.
func (u *OrderUseCase) Complete(ctx context.Context, orderID string, requesterID int64, requesterRole model.Role) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !model.CanTransition(order.Status, model.OrderStatusCompleted, requesterRole) {
		return nil, domainErrors.ErrInvalidTransition
	}
	if order.RiderID == nil {
		return nil, domainErrors.ErrInvalidTransition
	}

	switch requesterRole {
	case model.RoleRider:
		if *order.RiderID != requesterID {
			return nil, domainErrors.ErrForbidden
		}
	case model.RoleCustomer:
		if order.CustomerID != requesterID {
			return nil, domainErrors.ErrForbidden
		}
	default:
		return nil, domainErrors.ErrForbidden
	}

	return u.orders.Complete(ctx, orderID, *order.RiderID)
}

// GetByID fetches one order, restricted to its participants and admins.
func (u *OrderUseCase) GetByID(ctx context.Context, orderID string, requesterID int64, requesterRole model.Role) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if requesterRole != model.RoleAdmin && !order.IsParticipant(requesterID) {
		return nil, domainErrors.ErrForbidden
	}
	return order, nil
}

// ListByCustomer returns orders placed by the customer, newest first.
func (u *OrderUseCase) ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	return u.orders.ListByCustomer(ctx, customerID)
}

// ListByVendor returns orders addressed to the vendor owned by vendorUserID.
func (u *OrderUseCase) ListByVendor(ctx context.Context, vendorUserID int64) ([]model.Order, error) {
	return u.orders.ListByVendor(ctx, vendorUserID)
}

// ListByRider returns orders assigned to the rider.
func (u *OrderUseCase) ListByRider(ctx context.Context, riderID int64) ([]model.Order, error) {
	return u.orders.ListByRider(ctx, riderID)
}

// ListAvailable returns unassigned ready orders the rider may take. Bicycle
// riders only see orders within their range.
func (u *OrderUseCase) ListAvailable(ctx context.Context, riderID int64) ([]model.Order, error) {
	rider, err := u.users.GetByID(ctx, riderID)
	if err != nil {
		return nil, err
	}
	if rider.Role != model.RoleRider {
		return nil, domainErrors.ErrForbidden
	}

	var maxDistance *float64
	if rider.VehicleType != nil && *rider.VehicleType == model.VehicleBicycle {
		limit := BicycleMaxDistanceKm
		maxDistance = &limit
	}
	return u.orders.ListAvailable(ctx, maxDistance)
}

// ListAll returns every order for the administrative overview.
func (u *OrderUseCase) ListAll(ctx context.Context) ([]model.Order, error) {
	return u.orders.ListAll(ctx)
}

// ForceStatus is the administrative override that bypasses the role-gated
// transition table.
func (u *OrderUseCase) ForceStatus(ctx context.Context, orderID string, status model.OrderStatus) (*model.Order, error) {
	if !model.ValidOrderStatus(status) {
		return nil, domainErrors.ErrInvalidTransition
	}
	return u.orders.ForceStatus(ctx, orderID, status)
}

// UpdateRiderLocation ingests one fix from a rider's location stream.
func (u *OrderUseCase) UpdateRiderLocation(ctx context.Context, riderID int64, lat, lng float64) error {
	return u.locations.Update(ctx, riderID, model.Position{Latitude: lat, Longitude: lng})
}

// Track reports delivery progress for the customer's live view. Without a
// rider fix the progress reads a neutral midpoint rather than failing.
func (u *OrderUseCase) Track(ctx context.Context, orderID string, requesterID int64, requesterRole model.Role, customerLat, customerLng *float64) (*TrackingInfo, error) {
	order, err := u.GetByID(ctx, orderID, requesterID, requesterRole)
	if err != nil {
		return nil, err
	}

	info := &TrackingInfo{Status: order.Status}
	switch order.Status {
	case model.OrderStatusCompleted:
		info.ProgressPercent = 100
		return info, nil
	case model.OrderStatusOutForDelivery:
	default:
		info.ProgressPercent = 10
		return info, nil
	}

	if order.RiderID == nil || customerLat == nil || customerLng == nil {
		info.ProgressPercent = 50
		return info, nil
	}

	pos, err := u.locations.Get(ctx, *order.RiderID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			info.ProgressPercent = 50
			return info, nil
		}
		return nil, err
	}

	remaining := geo.HaversineKm(pos.Latitude, pos.Longitude, *customerLat, *customerLng)
	eta := geo.ETAMinutes(remaining)
	info.RemainingKm = &remaining
	info.ETAMinutes = &eta
	info.ProgressPercent = geo.Progress(remaining)
	info.RiderPosition = pos
	return info, nil
}
