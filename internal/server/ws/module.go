package ws

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/inkroute/inkroute/internal/domain/model"
	pkgAuth "github.com/inkroute/inkroute/internal/pkg/auth"
	"github.com/inkroute/inkroute/internal/usecase"
)

// Module provides the hub and runs it for the lifetime of the app.
var Module = fx.Options(
	fx.Provide(newHub),
	fx.Invoke(runHub),
)

type hubParams struct {
	fx.In

	Strategy pkgAuth.Strategy
	Orders   *usecase.OrderUseCase
	Logger   *slog.Logger
}

func newHub(p hubParams) *Hub {
	return NewHub(p.Strategy.ParseToken, snapshotFor(p.Orders), p.Logger)
}

// snapshotFor selects the subscriber's view of the order book: customers and
// vendors see their own orders, riders additionally see the open feed, admins
// see everything.
func snapshotFor(orders *usecase.OrderUseCase) SnapshotFunc {
	return func(ctx context.Context, userID int64, role model.Role) ([]model.Order, error) {
		switch role {
		case model.RoleVendor:
			return orders.ListByVendor(ctx, userID)
		case model.RoleRider:
			assigned, err := orders.ListByRider(ctx, userID)
			if err != nil {
				return nil, err
			}
			available, err := orders.ListAvailable(ctx, userID)
			if err != nil {
				return nil, err
			}
			return append(assigned, available...), nil
		case model.RoleAdmin:
			return orders.ListAll(ctx)
		default:
			return orders.ListByCustomer(ctx, userID)
		}
	}
}

func runHub(lc fx.Lifecycle, hub *Hub) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go hub.Run(ctx)
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}
