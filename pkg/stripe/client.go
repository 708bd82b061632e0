package stripe

import (
	"context"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
)

// Client is the subset of stripe the checkout needs.
type Client interface {
	CreatePaymentIntent(ctx context.Context, amount int64, currency string, orderNumber string) (*stripe.PaymentIntent, error)
}

type stripeClient struct{}

func NewStripeClient(apiKey string) Client {
	stripe.Key = apiKey

	return &stripeClient{}
}

// PaymentIntent == "planned payment" for an order. The amount is in the
// currency's smallest unit. The order number doubles as idempotency key so a
// retried confirm never charges twice.
func (s *stripeClient) CreatePaymentIntent(ctx context.Context, amount int64, currency string, orderNumber string) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Params:      stripe.Params{Context: ctx},
		Amount:      stripe.Int64(amount),
		Currency:    stripe.String(currency),
		Description: stripe.String("Pedido " + orderNumber),
	}
	params.AddMetadata("numero_pedido", orderNumber)
	params.SetIdempotencyKey("tienda-" + orderNumber)

	return paymentintent.New(params)
}
