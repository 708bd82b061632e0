package health

import (
	"context"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/tienda/internal/config"
	"github.com/aaravmahajanofficial/tienda/pkg/articulos"
	"github.com/hellofresh/health-go/v5"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/balance"
)

type Endpoints struct {
	Articulos articulos.Client
}

// NewHealthHandler always checks the articulos API. Redis and stripe are only
// checked when the config uses them.
func NewHealthHandler(cfg *config.Config, endpoints *Endpoints) (*health.Health, error) {

	checks := []health.Config{
		{
			Name:      "articulos-api",
			Timeout:   3 * time.Second,
			SkipOnErr: false,
			Check: func(ctx context.Context) error {
				if endpoints.Articulos == nil {
					return fmt.Errorf("articulos client is not initialized")
				}
				if _, err := endpoints.Articulos.List(ctx); err != nil {
					return fmt.Errorf("articulos API unreachable: %w", err)
				}
				return nil
			},
		},
	}

	if cfg.Cart.Backend == config.CartBackendRedis {
		checks = append(checks, health.Config{
			Name:      "redis",
			Timeout:   2 * time.Second,
			SkipOnErr: false,
			Check: healthRedis.New(healthRedis.Config{
				DSN: cfg.RedisConnect.GetDSN(),
			}),
		})
	}

	if cfg.Checkout.PaymentProcessor == config.PaymentStripe {
		checks = append(checks, health.Config{
			Name:      "stripe",
			Timeout:   5 * time.Second,
			SkipOnErr: true,
			Check: func(ctx context.Context) error {
				params := &stripe.BalanceParams{
					Params: stripe.Params{
						Context: ctx,
					},
				}
				if _, err := balance.Get(params); err != nil {
					return fmt.Errorf("failed to connect to stripe: %w", err)
				}
				return nil
			},
		})
	}

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "tienda",
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(checks...),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
