package di

import (
	"go.uber.org/fx"

	"github.com/inkroute/inkroute/internal/adapter/location"
	"github.com/inkroute/inkroute/internal/adapter/payment"
	"github.com/inkroute/inkroute/internal/app"
	"github.com/inkroute/inkroute/internal/config"
	"github.com/inkroute/inkroute/internal/logger"
	"github.com/inkroute/inkroute/internal/pkg/auth"
	"github.com/inkroute/inkroute/internal/server/http/handlers"
	"github.com/inkroute/inkroute/internal/server/http/router"
	"github.com/inkroute/inkroute/internal/server/ws"
	"github.com/inkroute/inkroute/internal/storage/postgres"
	"github.com/inkroute/inkroute/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		payment.Module,
		location.Module,
		usecase.Module,
		ws.Module,
		fx.Provide(func(client payment.Client) app.PaymentProvider { return client }),
		fx.Provide(func(hub *ws.Hub) app.EventPublisher { return hub }),
		fx.Provide(func(facade *app.MarketFacade) handlers.MarketplaceFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
