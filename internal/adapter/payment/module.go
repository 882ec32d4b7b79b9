package payment

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/inkroute/inkroute/internal/config"
	"github.com/inkroute/inkroute/internal/domain/model"
	"github.com/inkroute/inkroute/internal/usecase"
)

// Module exposes the gateway client implementation to fx graph.
var Module = fx.Options(
	fx.Provide(newClient),
	fx.Provide(func(c Client) usecase.PaymentVerifier { return c }),
)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	if p.Config.DebugSkipPayment && p.Config.PaymentGatewayAddress == "" {
		return noopClient{}, nil
	}
	return NewHTTPClient(p.Config.PaymentGatewayAddress, p.Logger)
}

// noopClient backs the debug mode where no gateway is configured. Every
// reference verifies as paid.
type noopClient struct{}

func (noopClient) Verify(_ context.Context, reference string) (*model.Payment, error) {
	return &model.Payment{Reference: reference, Status: model.PaymentStatusSuccess}, nil
}
