package test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/inkroute/inkroute/internal/domain/model"
	pkgAuth "github.com/inkroute/inkroute/internal/pkg/auth"
	"github.com/inkroute/inkroute/internal/usecase"
)

// AuthFacadeStub provides controllable behaviour for auth endpoints.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string) (*model.User, string, error)
	AuthenticateFn func(context.Context, string, string) (*model.User, string, error)
	ParseFn        func(string) (*pkgAuth.Claims, error)
	UserFn         func(context.Context, int64) (*model.User, error)
	PushTokenFn    func(context.Context, int64, string) error
	ApplyFn        func(context.Context, *model.RiderApplication) (*model.RiderApplication, error)
}

// Register delegates to the provided function or issues a default session.
func (s AuthFacadeStub) Register(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, email, password)
	}
	return &model.User{ID: 1, Email: email, Role: model.RoleCustomer}, "session-token", nil
}

// Authenticate delegates to the provided function or issues a default session.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.User{ID: 1, Email: email, Role: model.RoleCustomer}, "session-token", nil
}

// ParseToken delegates to the provided function or accepts any token.
func (s AuthFacadeStub) ParseToken(token string) (*pkgAuth.Claims, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return &pkgAuth.Claims{UserID: 1, Role: model.RoleCustomer}, nil
}

// User returns the configured profile or a default one.
func (s AuthFacadeStub) User(ctx context.Context, id int64) (*model.User, error) {
	if s.UserFn != nil {
		return s.UserFn(ctx, id)
	}
	return &model.User{ID: id, Email: "user@example.com", Role: model.RoleCustomer}, nil
}

// RegisterPushToken executes the configured handler.
func (s AuthFacadeStub) RegisterPushToken(ctx context.Context, userID int64, token string) error {
	if s.PushTokenFn != nil {
		return s.PushTokenFn(ctx, userID, token)
	}
	return nil
}

// ApplyForRider returns the configured application decision.
func (s AuthFacadeStub) ApplyForRider(ctx context.Context, app *model.RiderApplication) (*model.RiderApplication, error) {
	if s.ApplyFn != nil {
		return s.ApplyFn(ctx, app)
	}
	out := *app
	out.ID = 1
	out.Status = model.ApplicationStatusPending
	return &out, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceFn     func(context.Context, usecase.PlaceOrderInput) (*model.Order, error)
	ReadyFn     func(context.Context, string, int64) (*model.Order, error)
	AcceptFn    func(context.Context, string, int64) (*model.Order, error)
	CompleteFn  func(context.Context, string, int64, model.Role) (*model.Order, error)
	OrderFn     func(context.Context, string, int64, model.Role) (*model.Order, error)
	ListFn      func(context.Context, int64) ([]model.Order, error)
	AllFn       func(context.Context) ([]model.Order, error)
	ForceFn     func(context.Context, string, model.OrderStatus) (*model.Order, error)
	LocationFn  func(context.Context, int64, float64, float64) error
	TrackFn     func(context.Context, string, int64, model.Role, *float64, *float64) (*usecase.TrackingInfo, error)
	AvailableFn func(context.Context, int64) ([]model.Order, error)
}

func (s OrderFacadeStub) defaultOrder(orderID string) *model.Order {
	return &model.Order{
		ID:         orderID,
		CustomerID: 1,
		VendorID:   1,
		Status:     model.OrderStatusPending,
		CreatedAt:  time.Unix(0, 0).UTC(),
	}
}

// PlaceOrder delegates or returns a default pending order.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, in usecase.PlaceOrderInput) (*model.Order, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, in)
	}
	order := s.defaultOrder("order-1")
	order.CustomerID = in.CustomerID
	order.VendorID = in.VendorID
	order.Subtotal = in.Subtotal
	return order, nil
}

// MarkOrderReady delegates or flips the default order to ready.
func (s OrderFacadeStub) MarkOrderReady(ctx context.Context, orderID string, vendorUserID int64) (*model.Order, error) {
	if s.ReadyFn != nil {
		return s.ReadyFn(ctx, orderID, vendorUserID)
	}
	order := s.defaultOrder(orderID)
	order.Status = model.OrderStatusReadyForPickup
	return order, nil
}

// AcceptOrder delegates or assigns the calling rider.
func (s OrderFacadeStub) AcceptOrder(ctx context.Context, orderID string, riderID int64) (*model.Order, error) {
	if s.AcceptFn != nil {
		return s.AcceptFn(ctx, orderID, riderID)
	}
	order := s.defaultOrder(orderID)
	order.Status = model.OrderStatusOutForDelivery
	order.RiderID = &riderID
	return order, nil
}

// CompleteOrder delegates or returns a completed order.
func (s OrderFacadeStub) CompleteOrder(ctx context.Context, orderID string, requesterID int64, requesterRole model.Role) (*model.Order, error) {
	if s.CompleteFn != nil {
		return s.CompleteFn(ctx, orderID, requesterID, requesterRole)
	}
	order := s.defaultOrder(orderID)
	order.Status = model.OrderStatusCompleted
	return order, nil
}

// Order delegates or returns the default order.
func (s OrderFacadeStub) Order(ctx context.Context, orderID string, requesterID int64, requesterRole model.Role) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, orderID, requesterID, requesterRole)
	}
	return s.defaultOrder(orderID), nil
}

// CustomerOrders delegates or returns a single default order.
func (s OrderFacadeStub) CustomerOrders(ctx context.Context, customerID int64) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, customerID)
	}
	return []model.Order{*s.defaultOrder("order-1")}, nil
}

// VendorOrders delegates or returns a single default order.
func (s OrderFacadeStub) VendorOrders(ctx context.Context, vendorUserID int64) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, vendorUserID)
	}
	return []model.Order{*s.defaultOrder("order-1")}, nil
}

// RiderOrders delegates or returns a single default order.
func (s OrderFacadeStub) RiderOrders(ctx context.Context, riderID int64) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, riderID)
	}
	return []model.Order{*s.defaultOrder("order-1")}, nil
}

// AvailableOrders delegates or returns a single ready order.
func (s OrderFacadeStub) AvailableOrders(ctx context.Context, riderID int64) ([]model.Order, error) {
	if s.AvailableFn != nil {
		return s.AvailableFn(ctx, riderID)
	}
	order := s.defaultOrder("order-1")
	order.Status = model.OrderStatusReadyForPickup
	return []model.Order{*order}, nil
}

// AllOrders delegates or returns a single default order.
func (s OrderFacadeStub) AllOrders(ctx context.Context) ([]model.Order, error) {
	if s.AllFn != nil {
		return s.AllFn(ctx)
	}
	return []model.Order{*s.defaultOrder("order-1")}, nil
}

// ForceOrderStatus delegates or applies the status verbatim.
func (s OrderFacadeStub) ForceOrderStatus(ctx context.Context, orderID string, status model.OrderStatus) (*model.Order, error) {
	if s.ForceFn != nil {
		return s.ForceFn(ctx, orderID, status)
	}
	order := s.defaultOrder(orderID)
	order.Status = status
	return order, nil
}

// UpdateRiderLocation executes the configured handler.
func (s OrderFacadeStub) UpdateRiderLocation(ctx context.Context, riderID int64, lat, lng float64) error {
	if s.LocationFn != nil {
		return s.LocationFn(ctx, riderID, lat, lng)
	}
	return nil
}

// TrackOrder delegates or returns a mid-delivery snapshot.
func (s OrderFacadeStub) TrackOrder(ctx context.Context, orderID string, requesterID int64, requesterRole model.Role, lat, lng *float64) (*usecase.TrackingInfo, error) {
	if s.TrackFn != nil {
		return s.TrackFn(ctx, orderID, requesterID, requesterRole, lat, lng)
	}
	return &usecase.TrackingInfo{Status: model.OrderStatusOutForDelivery, ProgressPercent: 50}, nil
}

// ChatFacadeStub provides controllable behaviour for chat endpoints.
type ChatFacadeStub struct {
	PostFn    func(context.Context, string, int64, model.Role, string, string, *string) (*model.Message, error)
	HistoryFn func(context.Context, string, int64, model.Role) ([]model.Message, error)
}

// PostMessage delegates or echoes the message back.
func (s ChatFacadeStub) PostMessage(ctx context.Context, orderID string, senderID int64, senderRole model.Role, senderName, text string, image *string) (*model.Message, error) {
	if s.PostFn != nil {
		return s.PostFn(ctx, orderID, senderID, senderRole, senderName, text, image)
	}
	return &model.Message{ID: 1, OrderID: orderID, SenderID: senderID, SenderName: senderName, Text: text, Image: image}, nil
}

// ChatHistory delegates or returns one stored message.
func (s ChatFacadeStub) ChatHistory(ctx context.Context, orderID string, requesterID int64, requesterRole model.Role) ([]model.Message, error) {
	if s.HistoryFn != nil {
		return s.HistoryFn(ctx, orderID, requesterID, requesterRole)
	}
	return []model.Message{{ID: 1, OrderID: orderID, SenderID: 1, Text: "hello"}}, nil
}

// ReviewFacadeStub provides controllable behaviour for review endpoints.
type ReviewFacadeStub struct {
	SubmitFn   func(context.Context, string, int64, int, int, string) (*model.Review, error)
	OrderFn    func(context.Context, string) (*model.Review, error)
	ByVendorFn func(context.Context, int64) ([]model.Review, error)
}

// SubmitReview delegates or stores the given ratings.
func (s ReviewFacadeStub) SubmitReview(ctx context.Context, orderID string, customerID int64, vendorRating, riderRating int, comment string) (*model.Review, error) {
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, orderID, customerID, vendorRating, riderRating, comment)
	}
	return &model.Review{ID: 1, OrderID: orderID, CustomerID: customerID, VendorRating: vendorRating, RiderRating: riderRating, Comment: comment}, nil
}

// OrderReview delegates or returns a default review.
func (s ReviewFacadeStub) OrderReview(ctx context.Context, orderID string) (*model.Review, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, orderID)
	}
	return &model.Review{ID: 1, OrderID: orderID, VendorRating: 5, RiderRating: 4}, nil
}

// VendorReviews delegates or returns one default review.
func (s ReviewFacadeStub) VendorReviews(ctx context.Context, vendorID int64) ([]model.Review, error) {
	if s.ByVendorFn != nil {
		return s.ByVendorFn(ctx, vendorID)
	}
	return []model.Review{{ID: 1, VendorID: vendorID, VendorRating: 5, RiderRating: 4}}, nil
}

// WalletFacadeStub simulates wallet operations.
type WalletFacadeStub struct {
	SummaryFn  func(context.Context, int64) (*model.WalletSummary, error)
	HistoryFn  func(context.Context, int64) ([]model.WalletEntry, error)
	WithdrawFn func(context.Context, int64, float64) error
	TopupFn    func(context.Context, int64, float64) (*model.Topup, error)
}

// WalletSummary returns the stored summary or default data.
func (s WalletFacadeStub) WalletSummary(ctx context.Context, userID int64) (*model.WalletSummary, error) {
	if s.SummaryFn != nil {
		return s.SummaryFn(ctx, userID)
	}
	return &model.WalletSummary{Balance: 10, Withdrawn: 5}, nil
}

// WalletHistory returns preconfigured ledger history.
func (s WalletFacadeStub) WalletHistory(ctx context.Context, userID int64) ([]model.WalletEntry, error) {
	if s.HistoryFn != nil {
		return s.HistoryFn(ctx, userID)
	}
	return []model.WalletEntry{{ID: 1, UserID: userID, Kind: model.EntryCredit, Amount: 10, CreatedAt: time.Unix(0, 0)}}, nil
}

// Withdraw executes the configured withdrawal handler.
func (s WalletFacadeStub) Withdraw(ctx context.Context, userID int64, amount float64) error {
	if s.WithdrawFn != nil {
		return s.WithdrawFn(ctx, userID, amount)
	}
	return nil
}

// InitiateTopup delegates or returns a new top-up record.
func (s WalletFacadeStub) InitiateTopup(ctx context.Context, userID int64, amount float64) (*model.Topup, error) {
	if s.TopupFn != nil {
		return s.TopupFn(ctx, userID, amount)
	}
	return &model.Topup{ID: 1, UserID: userID, Reference: "ref-1", Amount: amount, Status: model.TopupStatusNew}, nil
}

// VendorFacadeStub provides controllable behaviour for vendor endpoints.
type VendorFacadeStub struct {
	RegisterFn func(context.Context, int64, string, string, float64, float64) (*model.Vendor, error)
	ListFn     func(context.Context) ([]model.Vendor, error)
	GetFn      func(context.Context, int64) (*model.Vendor, error)
	ByUserFn   func(context.Context, int64) (*model.Vendor, error)
}

// RegisterVendor delegates or returns the created vendor.
func (s VendorFacadeStub) RegisterVendor(ctx context.Context, ownerID int64, name, address string, lat, lng float64) (*model.Vendor, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, ownerID, name, address, lat, lng)
	}
	return &model.Vendor{ID: 1, UserID: ownerID, Name: name, Address: address, Latitude: lat, Longitude: lng}, nil
}

// Vendors delegates or returns one default vendor.
func (s VendorFacadeStub) Vendors(ctx context.Context) ([]model.Vendor, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return []model.Vendor{{ID: 1, Name: "Print Hub"}}, nil
}

// Vendor delegates or returns the default vendor.
func (s VendorFacadeStub) Vendor(ctx context.Context, id int64) (*model.Vendor, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	return &model.Vendor{ID: id, Name: "Print Hub"}, nil
}

// VendorByUser delegates or returns the default vendor.
func (s VendorFacadeStub) VendorByUser(ctx context.Context, userID int64) (*model.Vendor, error) {
	if s.ByUserFn != nil {
		return s.ByUserFn(ctx, userID)
	}
	return &model.Vendor{ID: 1, UserID: userID, Name: "Print Hub"}, nil
}

// AdminFacadeStub provides controllable behaviour for admin endpoints.
type AdminFacadeStub struct {
	UsersFn        func(context.Context) ([]model.User, error)
	SetRoleFn      func(context.Context, int64, model.Role, *model.VehicleType) error
	ApplicationsFn func(context.Context) ([]model.RiderApplication, error)
	DecideFn       func(context.Context, int64, bool) error
}

// Users delegates or returns one default account.
func (s AdminFacadeStub) Users(ctx context.Context) ([]model.User, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx)
	}
	return []model.User{{ID: 1, Email: "user@example.com", Role: model.RoleCustomer}}, nil
}

// SetUserRole executes the configured handler.
func (s AdminFacadeStub) SetUserRole(ctx context.Context, userID int64, role model.Role, vehicle *model.VehicleType) error {
	if s.SetRoleFn != nil {
		return s.SetRoleFn(ctx, userID, role, vehicle)
	}
	return nil
}

// PendingRiderApplications delegates or returns one pending application.
func (s AdminFacadeStub) PendingRiderApplications(ctx context.Context) ([]model.RiderApplication, error) {
	if s.ApplicationsFn != nil {
		return s.ApplicationsFn(ctx)
	}
	return []model.RiderApplication{{ID: 1, UserID: 2, Status: model.ApplicationStatusPending}}, nil
}

// DecideRiderApplication executes the configured handler.
func (s AdminFacadeStub) DecideRiderApplication(ctx context.Context, id int64, approve bool) error {
	if s.DecideFn != nil {
		return s.DecideFn(ctx, id, approve)
	}
	return nil
}

// MarketplaceFacadeStub aggregates the per-concern stubs behind the full
// handlers facade.
type MarketplaceFacadeStub struct {
	AuthFacadeStub
	OrderFacadeStub
	ChatFacadeStub
	ReviewFacadeStub
	WalletFacadeStub
	VendorFacadeStub
	AdminFacadeStub
}

// WorkerFacadeStub mimics worker interactions with the marketplace facade.
type WorkerFacadeStub struct {
	Batches   [][]model.Topup
	BatchesFn func(context.Context, int) ([]model.Topup, error)
	CheckFn   func(context.Context, string) (*model.Payment, error)
	SettleFn  func(context.Context, int64, model.TopupStatus) error

	Settled []TopupSettleCall
	mu      sync.Mutex
	calls   int32
}

// TopupsForProcessing serves configured batches in order, then empties.
func (s *WorkerFacadeStub) TopupsForProcessing(ctx context.Context, limit int) ([]model.Topup, error) {
	if s.BatchesFn != nil {
		return s.BatchesFn(ctx, limit)
	}
	n := int(atomic.AddInt32(&s.calls, 1)) - 1
	if n < len(s.Batches) {
		return s.Batches[n], nil
	}
	return nil, nil
}

// CheckPayment delegates or confirms every reference.
func (s *WorkerFacadeStub) CheckPayment(ctx context.Context, reference string) (*model.Payment, error) {
	if s.CheckFn != nil {
		return s.CheckFn(ctx, reference)
	}
	return &model.Payment{Reference: reference, Status: model.PaymentStatusSuccess}, nil
}

// SettleTopup records the settlement and delegates when configured.
func (s *WorkerFacadeStub) SettleTopup(ctx context.Context, topupID int64, status model.TopupStatus) error {
	s.mu.Lock()
	s.Settled = append(s.Settled, TopupSettleCall{TopupID: topupID, Status: status})
	s.mu.Unlock()
	if s.SettleFn != nil {
		return s.SettleFn(ctx, topupID, status)
	}
	return nil
}

// SettledCalls returns a copy of the recorded settlements.
func (s *WorkerFacadeStub) SettledCalls() []TopupSettleCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]TopupSettleCall, len(s.Settled))
	copy(out, s.Settled)
	return out
}
