package main

import (
	"context"
	"fmt"

	"github.com/aaravmahajanofficial/tienda/internal/cache"
	"github.com/aaravmahajanofficial/tienda/internal/config"
	service "github.com/aaravmahajanofficial/tienda/internal/services"
	"github.com/aaravmahajanofficial/tienda/pkg/sendgrid"
	"github.com/aaravmahajanofficial/tienda/pkg/stripe"
)

func newCartStore(ctx context.Context, cfg *config.Config) (cache.Cache, error) {

	switch cfg.Cart.Backend {
	case config.CartBackendRedis:
		client, err := cache.NewRedisClient(ctx, &cfg.RedisConnect)
		if err != nil {
			return nil, err
		}
		return cache.NewRedisCache(client, cfg.Cart.TTL), nil
	case config.CartBackendFile:
		return cache.NewFileCache(cfg.Cart.FilePath)
	default:
		return nil, fmt.Errorf("unsupported cart backend %q", cfg.Cart.Backend)
	}
}

func checkoutOptions(cfg *config.Config) service.CheckoutOptions {

	opts := service.CheckoutOptions{
		ShippingCost:    cfg.Checkout.ShippingCost,
		ProcessingDelay: cfg.Checkout.ProcessingDelay,
	}

	switch cfg.Checkout.OrderIDStrategy {
	case config.OrderIDUUID:
		opts.OrderIDs = service.UUIDOrderIDs{Prefix: cfg.Checkout.OrderIDPrefix}
	default:
		opts.OrderIDs = service.TimestampOrderIDs{Prefix: cfg.Checkout.OrderIDPrefix}
	}

	if cfg.Checkout.PaymentProcessor == config.PaymentStripe {
		opts.Payments = service.StripePayments{
			Client:   stripe.NewStripeClient(cfg.Stripe.APIKey),
			Currency: cfg.Checkout.Currency,
		}
	}

	if cfg.SendGrid.Enabled {
		opts.Notifier = service.NewEmailNotifier(sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName))
	}

	return opts
}
