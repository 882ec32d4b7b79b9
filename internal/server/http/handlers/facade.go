package handlers

import (
	"context"

	"github.com/inkroute/inkroute/internal/domain/model"
	pkgAuth "github.com/inkroute/inkroute/internal/pkg/auth"
	"github.com/inkroute/inkroute/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, email, password string) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (*pkgAuth.Claims, error)
	User(ctx context.Context, id int64) (*model.User, error)
	RegisterPushToken(ctx context.Context, userID int64, token string) error
	ApplyForRider(ctx context.Context, app *model.RiderApplication) (*model.RiderApplication, error)
}

// OrderFacade encapsulates the order lifecycle exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, in usecase.PlaceOrderInput) (*model.Order, error)
	MarkOrderReady(ctx context.Context, orderID string, vendorUserID int64) (*model.Order, error)
	AcceptOrder(ctx context.Context, orderID string, riderID int64) (*model.Order, error)
	CompleteOrder(ctx context.Context, orderID string, requesterID int64, requesterRole model.Role) (*model.Order, error)
	Order(ctx context.Context, orderID string, requesterID int64, requesterRole model.Role) (*model.Order, error)
	CustomerOrders(ctx context.Context, customerID int64) ([]model.Order, error)
	VendorOrders(ctx context.Context, vendorUserID int64) ([]model.Order, error)
	RiderOrders(ctx context.Context, riderID int64) ([]model.Order, error)
	AvailableOrders(ctx context.Context, riderID int64) ([]model.Order, error)
	AllOrders(ctx context.Context) ([]model.Order, error)
	ForceOrderStatus(ctx context.Context, orderID string, status model.OrderStatus) (*model.Order, error)
	UpdateRiderLocation(ctx context.Context, riderID int64, lat, lng float64) error
	TrackOrder(ctx context.Context, orderID string, requesterID int64, requesterRole model.Role, lat, lng *float64) (*usecase.TrackingInfo, error)
}

// ChatFacade provides per-order message threads.
type ChatFacade interface {
	PostMessage(ctx context.Context, orderID string, senderID int64, senderRole model.Role, senderName, text string, image *string) (*model.Message, error)
	ChatHistory(ctx context.Context, orderID string, requesterID int64, requesterRole model.Role) ([]model.Message, error)
}

// ReviewFacade provides post-delivery ratings.
type ReviewFacade interface {
	SubmitReview(ctx context.Context, orderID string, customerID int64, vendorRating, riderRating int, comment string) (*model.Review, error)
	OrderReview(ctx context.Context, orderID string) (*model.Review, error)
	VendorReviews(ctx context.Context, vendorID int64) ([]model.Review, error)
}

// WalletFacade provides the wallet ledger and top-up flow.
type WalletFacade interface {
	WalletSummary(ctx context.Context, userID int64) (*model.WalletSummary, error)
	WalletHistory(ctx context.Context, userID int64) ([]model.WalletEntry, error)
	Withdraw(ctx context.Context, userID int64, amount float64) error
	InitiateTopup(ctx context.Context, userID int64, amount float64) (*model.Topup, error)
}

// VendorFacade provides the print shop catalog.
type VendorFacade interface {
	RegisterVendor(ctx context.Context, ownerID int64, name, address string, lat, lng float64) (*model.Vendor, error)
	Vendors(ctx context.Context) ([]model.Vendor, error)
	Vendor(ctx context.Context, id int64) (*model.Vendor, error)
	VendorByUser(ctx context.Context, userID int64) (*model.Vendor, error)
}

// AdminFacade provides the administrative surface.
type AdminFacade interface {
	Users(ctx context.Context) ([]model.User, error)
	SetUserRole(ctx context.Context, userID int64, role model.Role, vehicle *model.VehicleType) error
	PendingRiderApplications(ctx context.Context) ([]model.RiderApplication, error)
	DecideRiderApplication(ctx context.Context, id int64, approve bool) error
}

// MarketplaceFacade aggregates the full set of operations used across
// handlers.
type MarketplaceFacade interface {
	AuthFacade
	OrderFacade
	ChatFacade
	ReviewFacade
	WalletFacade
	VendorFacade
	AdminFacade
}
