package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/tienda/internal/api/middleware"
	"github.com/aaravmahajanofficial/tienda/internal/cart"
	appErrors "github.com/aaravmahajanofficial/tienda/internal/errors"
	"github.com/aaravmahajanofficial/tienda/internal/metrics"
	"github.com/aaravmahajanofficial/tienda/internal/models"
	"github.com/aaravmahajanofficial/tienda/internal/validation"
	stripeClient "github.com/aaravmahajanofficial/tienda/pkg/stripe"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	MsgCarritoVacioCompra = "Tu carrito está vacío"
	MsgPedidoEnCurso      = "Tu pedido se está procesando. Espera un momento."
	MsgPagoFallido        = "No se pudo procesar el pago. Inténtalo de nuevo."
	MsgGracias            = "¡Gracias por tu compra! Sigue comprando."
)

// Sleeper waits out the processing delay. It returns early with the context
// error when ctx is done.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

type SleeperFunc func(ctx context.Context, d time.Duration) error

func (f SleeperFunc) Sleep(ctx context.Context, d time.Duration) error {
	return f(ctx, d)
}

// TimerSleeper sleeps for real.
var TimerSleeper = SleeperFunc(func(ctx context.Context, d time.Duration) error {

	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
})

type OrderIDGenerator interface {
	NewOrderID(now time.Time) string
}

// TimestampOrderIDs yields prefix + unix milliseconds.
type TimestampOrderIDs struct {
	Prefix string
}

func (g TimestampOrderIDs) NewOrderID(now time.Time) string {
	return g.Prefix + strconv.FormatInt(now.UnixMilli(), 10)
}

type UUIDOrderIDs struct {
	Prefix string
}

func (g UUIDOrderIDs) NewOrderID(time.Time) string {
	return g.Prefix + uuid.NewString()
}

type PaymentProcessor interface {
	Charge(ctx context.Context, order *models.Order) (models.PaymentResult, error)
}

// SimulatedPayments approves every order.
type SimulatedPayments struct{}

func (SimulatedPayments) Charge(_ context.Context, order *models.Order) (models.PaymentResult, error) {
	return models.PaymentResult{Provider: "simulated", Reference: "SIM-" + order.NumeroPedido}, nil
}

type StripePayments struct {
	Client   stripeClient.Client
	Currency string
}

func (p StripePayments) Charge(ctx context.Context, order *models.Order) (models.PaymentResult, error) {

	amount := int64(math.Round(order.Totales.Total * 100))

	intent, err := p.Client.CreatePaymentIntent(ctx, amount, p.Currency, order.NumeroPedido)
	if err != nil {
		return models.PaymentResult{}, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return models.PaymentResult{Provider: "stripe", Reference: intent.ID}, nil
}

// Clock returns the current time.
type Clock func() time.Time

type CheckoutService interface {
	Review(ctx context.Context, session string) (*models.CheckoutSummary, error)
	Confirm(ctx context.Context, session string, req models.CheckoutRequest) (*models.OrderConfirmation, *models.Notice, error)
}

type CheckoutOptions struct {
	ShippingCost    float64
	ProcessingDelay time.Duration
	Sleeper         Sleeper
	OrderIDs        OrderIDGenerator
	Payments        PaymentProcessor
	Clock           Clock
	Notifier        OrderNotifier
}

type checkoutService struct {
	carts    *cart.Engine
	validate *validator.Validate
	opts     CheckoutOptions

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewCheckoutService fills unset options with the real sleeper, timestamp
// order ids, simulated payments and time.Now.
func NewCheckoutService(carts *cart.Engine, validate *validator.Validate, opts CheckoutOptions) CheckoutService {

	if opts.Sleeper == nil {
		opts.Sleeper = TimerSleeper
	}
	if opts.OrderIDs == nil {
		opts.OrderIDs = TimestampOrderIDs{Prefix: "ORD-"}
	}
	if opts.Payments == nil {
		opts.Payments = SimulatedPayments{}
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	return &checkoutService{
		carts:    carts,
		validate: validate,
		opts:     opts,
		inFlight: make(map[string]struct{}),
	}
}

func (s *checkoutService) summarize(entries []models.CartEntry) models.CheckoutSummary {

	summary := cart.Summary(&models.Cart{Entries: entries})

	return models.CheckoutSummary{
		Cantidad: summary.CantidadTotal,
		Subtotal: summary.MontoTotal,
		Envio:    s.opts.ShippingCost,
		Total:    summary.MontoTotal + s.opts.ShippingCost,
	}
}

func (s *checkoutService) Review(ctx context.Context, session string) (*models.CheckoutSummary, error) {

	snapshot := s.carts.Snapshot(ctx, session)
	if len(snapshot.Entries) == 0 {
		return nil, appErrors.EmptyCartError(MsgCarritoVacioCompra)
	}

	summary := s.summarize(snapshot.Entries)

	return &summary, nil
}

func (s *checkoutService) acquire(session string) bool {

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.inFlight[session]; busy {
		return false
	}

	s.inFlight[session] = struct{}{}

	return true
}

func (s *checkoutService) release(session string) {

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.inFlight, session)
}

func (s *checkoutService) Confirm(ctx context.Context, session string, req models.CheckoutRequest) (*models.OrderConfirmation, *models.Notice, error) {

	logger := middleware.LoggerFromContext(ctx)

	if appErr := validation.ValidateCheckout(s.validate, req); appErr != nil {
		logger.Warn("Checkout form rejected", slog.String("detail", appErr.Detail))
		return nil, nil, appErr
	}

	if !s.acquire(session) {
		return nil, nil, appErrors.CheckoutInProgressError(MsgPedidoEnCurso)
	}
	defer s.release(session)

	snapshot := s.carts.Snapshot(ctx, session)
	if len(snapshot.Entries) == 0 {
		return nil, nil, appErrors.EmptyCartError(MsgCarritoVacioCompra)
	}

	if err := s.opts.Sleeper.Sleep(ctx, s.opts.ProcessingDelay); err != nil {
		logger.Warn("Checkout cancelled while processing", slog.String("error", err.Error()))
		return nil, nil, appErrors.InternalError(MsgPagoFallido).WithError(err)
	}

	now := s.opts.Clock()

	order := models.Order{
		NumeroPedido: s.opts.OrderIDs.NewOrderID(now),
		Cliente:      req.Cliente,
		MetodoPago:   req.MetodoPago,
		Productos:    snapshot.Entries,
		Totales:      s.summarize(snapshot.Entries),
		Fecha:        now,
	}

	pago, err := s.opts.Payments.Charge(ctx, &order)
	if err != nil {
		logger.Error("Payment failed", slog.String("order", order.NumeroPedido), slog.String("error", err.Error()))
		return nil, nil, appErrors.ThirdPartyError(MsgPagoFallido).WithError(err)
	}

	s.carts.Reset(ctx, session)
	metrics.RecordOrder(pago.Provider)

	logger.Info("Order completed",
		slog.String("order", order.NumeroPedido),
		slog.String("provider", pago.Provider),
		slog.Float64("total", order.Totales.Total),
	)

	confirmation := &models.OrderConfirmation{Order: order, Pago: pago}

	if s.opts.Notifier != nil {
		if err := s.opts.Notifier.OrderConfirmed(ctx, confirmation); err != nil {
			logger.Warn("Order confirmation email not sent", slog.String("order", order.NumeroPedido), slog.String("error", err.Error()))
		}
	}

	return confirmation, &models.Notice{Level: appErrors.LevelSuccess, Message: MsgGracias}, nil
}
