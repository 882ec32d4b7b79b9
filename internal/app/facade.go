package app

import (
	"context"

	"github.com/inkroute/inkroute/internal/domain/model"
	pkgAuth "github.com/inkroute/inkroute/internal/pkg/auth"
	"github.com/inkroute/inkroute/internal/usecase"
)

// EventPublisher pushes order events to live subscribers.
type EventPublisher interface {
	Publish(event model.OrderEvent)
}

// PaymentProvider checks payment references against the gateway.
type PaymentProvider interface {
	Verify(ctx context.Context, reference string) (*model.Payment, error)
}

// MarketFacade aggregates the use cases behind a single surface for the
// HTTP handlers, the WebSocket hub and the settlement worker. Lifecycle
// transitions publish their event only after the write committed.
type MarketFacade struct {
	auth     *usecase.AuthUseCase
	orders   *usecase.OrderUseCase
	chat     *usecase.ChatUseCase
	reviews  *usecase.ReviewUseCase
	wallet   *usecase.WalletUseCase
	vendors  *usecase.VendorUseCase
	admin    *usecase.AdminUseCase
	payments PaymentProvider
	events   EventPublisher
}

// NewMarketFacade constructs the facade.
func NewMarketFacade(
	auth *usecase.AuthUseCase,
	orders *usecase.OrderUseCase,
	chat *usecase.ChatUseCase,
	reviews *usecase.ReviewUseCase,
	wallet *usecase.WalletUseCase,
	vendors *usecase.VendorUseCase,
	admin *usecase.AdminUseCase,
	payments PaymentProvider,
	events EventPublisher,
) *MarketFacade {
	return &MarketFacade{
		auth:     auth,
		orders:   orders,
		chat:     chat,
		reviews:  reviews,
		wallet:   wallet,
		vendors:  vendors,
		admin:    admin,
		payments: payments,
		events:   events,
	}
}

func (f *MarketFacade) publish(eventType model.OrderEventType, order *model.Order, msg *model.Message) {
	if f.events == nil || order == nil {
		return
	}
	f.events.Publish(model.OrderEvent{Type: eventType, Order: order, Message: msg})
}

// Register creates a customer account and returns the profile with a token.
func (f *MarketFacade) Register(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Register(ctx, email, password)
}

// Authenticate validates credentials.
func (f *MarketFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

// ParseToken extracts identity claims from a token.
func (f *MarketFacade) ParseToken(token string) (*pkgAuth.Claims, error) {
	return f.auth.ParseToken(token)
}

// User fetches one account profile.
func (f *MarketFacade) User(ctx context.Context, id int64) (*model.User, error) {
	return f.auth.GetByID(ctx, id)
}

// RegisterPushToken stores a device token for delivery notifications.
func (f *MarketFacade) RegisterPushToken(ctx context.Context, userID int64, token string) error {
	return f.auth.RegisterPushToken(ctx, userID, token)
}

// ApplyForRider files a rider role request.
func (f *MarketFacade) ApplyForRider(ctx context.Context, app *model.RiderApplication) (*model.RiderApplication, error) {
	return f.auth.ApplyForRider(ctx, app)
}

// PlaceOrder creates an order and announces it to the vendor.
func (f *MarketFacade) PlaceOrder(ctx context.Context, in usecase.PlaceOrderInput) (*model.Order, error) {
	order, err := f.orders.Place(ctx, in)
	if err != nil {
		return nil, err
	}
	f.publish(model.EventOrderCreated, order, nil)
	return order, nil
}

// MarkOrderReady flips the order to READY_FOR_PICKUP and announces it to
// the rider feed.
func (f *MarketFacade) MarkOrderReady(ctx context.Context, orderID string, vendorUserID int64) (*model.Order, error) {
	order, err := f.orders.MarkReady(ctx, orderID, vendorUserID)
	if err != nil {
		return nil, err
	}
	f.publish(model.EventOrderReady, order, nil)
	return order, nil
}

// AcceptOrder assigns the order to a rider.
func (f *MarketFacade) AcceptOrder(ctx context.Context, orderID string, riderID int64) (*model.Order, error) {
	order, err := f.orders.Accept(ctx, orderID, riderID)
	if err != nil {
		return nil, err
	}
	f.publish(model.EventOrderAccepted, order, nil)
	return order, nil
}

// CompleteOrder finalizes the delivery and settles the wallets.
func (f *MarketFacade) CompleteOrder(ctx context.Context, orderID string, requesterID int64, requesterRole model.Role) (*model.Order, error) {
	order, err := f.orders.Complete(ctx, orderID, requesterID, requesterRole)
	if err != nil {
		return nil, err
	}
	f.publish(model.EventOrderCompleted, order, nil)
	return order, nil
}

// Order fetches one order for a participant or admin.
func (f *MarketFacade) Order(ctx context.Context, orderID string, requesterID int64, requesterRole model.Role) (*model.Order, error) {
	return f.orders.GetByID(ctx, orderID, requesterID, requesterRole)
}

// CustomerOrders lists the customer's orders.
func (f *MarketFacade) CustomerOrders(ctx context.Context, customerID int64) ([]model.Order, error) {
	return f.orders.ListByCustomer(ctx, customerID)
}

// VendorOrders lists orders addressed to the vendor owned by vendorUserID.
func (f *MarketFacade) VendorOrders(ctx context.Context, vendorUserID int64) ([]model.Order, error) {
	return f.orders.ListByVendor(ctx, vendorUserID)
}

// RiderOrders lists orders assigned to the rider.
func (f *MarketFacade) RiderOrders(ctx context.Context, riderID int64) ([]model.Order, error) {
	return f.orders.ListByRider(ctx, riderID)
}

// AvailableOrders lists the rider's open feed.
func (f *MarketFacade) AvailableOrders(ctx context.Context, riderID int64) ([]model.Order, error) {
	return f.orders.ListAvailable(ctx, riderID)
}

// AllOrders lists every order for the administrative overview.
func (f *MarketFacade) AllOrders(ctx context.Context) ([]model.Order, error) {
	return f.orders.ListAll(ctx)
}

// ForceOrderStatus is the administrative override.
func (f *MarketFacade) ForceOrderStatus(ctx context.Context, orderID string, status model.OrderStatus) (*model.Order, error) {
	order, err := f.orders.ForceStatus(ctx, orderID, status)
	if err != nil {
		return nil, err
	}
	f.publish(eventForStatus(status), order, nil)
	return order, nil
}

func eventForStatus(status model.OrderStatus) model.OrderEventType {
	switch status {
	case model.OrderStatusReadyForPickup:
		return model.EventOrderReady
	case model.OrderStatusOutForDelivery:
		return model.EventOrderAccepted
	case model.OrderStatusCompleted:
		return model.EventOrderCompleted
	case model.OrderStatusCancelled:
		return model.EventOrderCancelled
	default:
		return model.EventOrderCreated
	}
}

// UpdateRiderLocation ingests one fix from a rider's location stream.
func (f *MarketFacade) UpdateRiderLocation(ctx context.Context, riderID int64, lat, lng float64) error {
	return f.orders.UpdateRiderLocation(ctx, riderID, lat, lng)
}

// TrackOrder reports delivery progress for the customer's live view.
func (f *MarketFacade) TrackOrder(ctx context.Context, orderID string, requesterID int64, requesterRole model.Role, lat, lng *float64) (*usecase.TrackingInfo, error) {
	return f.orders.Track(ctx, orderID, requesterID, requesterRole, lat, lng)
}

// PostMessage appends to an order's chat thread and notifies its
// participants.
func (f *MarketFacade) PostMessage(ctx context.Context, orderID string, senderID int64, senderRole model.Role, senderName, text string, image *string) (*model.Message, error) {
	msg, order, err := f.chat.Post(ctx, orderID, senderID, senderRole, senderName, text, image)
	if err != nil {
		return nil, err
	}
	f.publish(model.EventMessagePosted, order, msg)
	return msg, nil
}

// ChatHistory returns the order's messages in append order.
func (f *MarketFacade) ChatHistory(ctx context.Context, orderID string, requesterID int64, requesterRole model.Role) ([]model.Message, error) {
	return f.chat.History(ctx, orderID, requesterID, requesterRole)
}

// SubmitReview records the customer's one-shot rating of a completed order.
func (f *MarketFacade) SubmitReview(ctx context.Context, orderID string, customerID int64, vendorRating, riderRating int, comment string) (*model.Review, error) {
	return f.reviews.Submit(ctx, orderID, customerID, vendorRating, riderRating, comment)
}

// OrderReview returns the review attached to an order, if any.
func (f *MarketFacade) OrderReview(ctx context.Context, orderID string) (*model.Review, error) {
	return f.reviews.ForOrder(ctx, orderID)
}

// VendorReviews lists a vendor's reviews, newest first.
func (f *MarketFacade) VendorReviews(ctx context.Context, vendorID int64) ([]model.Review, error) {
	return f.reviews.ForVendor(ctx, vendorID)
}

// WalletSummary returns the user's balance and lifetime withdrawals.
func (f *MarketFacade) WalletSummary(ctx context.Context, userID int64) (*model.WalletSummary, error) {
	return f.wallet.Summary(ctx, userID)
}

// WalletHistory returns the user's ledger, newest first.
func (f *MarketFacade) WalletHistory(ctx context.Context, userID int64) ([]model.WalletEntry, error) {
	return f.wallet.History(ctx, userID)
}

// Withdraw debits the balance, rejecting overdrafts.
func (f *MarketFacade) Withdraw(ctx context.Context, userID int64, amount float64) error {
	return f.wallet.Withdraw(ctx, userID, amount)
}

// InitiateTopup registers a funding request awaiting gateway settlement.
func (f *MarketFacade) InitiateTopup(ctx context.Context, userID int64, amount float64) (*model.Topup, error) {
	return f.wallet.InitiateTopup(ctx, userID, amount)
}

// TopupsForProcessing claims a batch of unsettled top-ups for the worker.
func (f *MarketFacade) TopupsForProcessing(ctx context.Context, limit int) ([]model.Topup, error) {
	return f.wallet.TopupsForProcessing(ctx, limit)
}

// SettleTopup finalizes a top-up with the gateway's verdict.
func (f *MarketFacade) SettleTopup(ctx context.Context, topupID int64, status model.TopupStatus) error {
	return f.wallet.SettleTopup(ctx, topupID, status)
}

// CheckPayment queries the gateway for a reference's settlement state.
func (f *MarketFacade) CheckPayment(ctx context.Context, reference string) (*model.Payment, error) {
	return f.payments.Verify(ctx, reference)
}

// RegisterVendor creates a shop profile and grants the vendor role.
func (f *MarketFacade) RegisterVendor(ctx context.Context, ownerID int64, name, address string, lat, lng float64) (*model.Vendor, error) {
	return f.vendors.Register(ctx, ownerID, name, address, lat, lng)
}

// Vendors returns the shop catalog.
func (f *MarketFacade) Vendors(ctx context.Context) ([]model.Vendor, error) {
	return f.vendors.List(ctx)
}

// Vendor fetches one shop profile.
func (f *MarketFacade) Vendor(ctx context.Context, id int64) (*model.Vendor, error) {
	return f.vendors.GetByID(ctx, id)
}

// VendorByUser fetches the shop owned by userID.
func (f *MarketFacade) VendorByUser(ctx context.Context, userID int64) (*model.Vendor, error) {
	return f.vendors.GetByUser(ctx, userID)
}

// Users lists every account for the administrative overview.
func (f *MarketFacade) Users(ctx context.Context) ([]model.User, error) {
	return f.admin.ListUsers(ctx)
}

// SetUserRole assigns a role directly.
func (f *MarketFacade) SetUserRole(ctx context.Context, userID int64, role model.Role, vehicle *model.VehicleType) error {
	return f.admin.SetRole(ctx, userID, role, vehicle)
}

// PendingRiderApplications lists applications awaiting review.
func (f *MarketFacade) PendingRiderApplications(ctx context.Context) ([]model.RiderApplication, error) {
	return f.admin.PendingApplications(ctx)
}

// DecideRiderApplication approves or rejects an application.
func (f *MarketFacade) DecideRiderApplication(ctx context.Context, id int64, approve bool) error {
	return f.admin.DecideApplication(ctx, id, approve)
}
