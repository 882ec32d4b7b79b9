package usecase

import (
	"go.uber.org/fx"

	"github.com/inkroute/inkroute/internal/config"
	"github.com/inkroute/inkroute/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewAuthUseCase,
	newOrderUseCase,
	NewChatUseCase,
	NewReviewUseCase,
	NewWalletUseCase,
	NewVendorUseCase,
	NewAdminUseCase,
)

type orderParams struct {
	fx.In

	Orders    repository.OrderRepository
	Vendors   repository.VendorRepository
	Users     repository.UserRepository
	Payments  PaymentVerifier
	Locations LocationCache
	Config    *config.Config
}

func newOrderUseCase(p orderParams) *OrderUseCase {
	return NewOrderUseCase(p.Orders, p.Vendors, p.Users, p.Payments, p.Locations, p.Config.DebugSkipPayment)
}
