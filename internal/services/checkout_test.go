package service_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/tienda/internal/cache"
	"github.com/aaravmahajanofficial/tienda/internal/cart"
	appErrors "github.com/aaravmahajanofficial/tienda/internal/errors"
	"github.com/aaravmahajanofficial/tienda/internal/models"
	service "github.com/aaravmahajanofficial/tienda/internal/services"
	"github.com/aaravmahajanofficial/tienda/internal/services/mocks"
	"github.com/aaravmahajanofficial/tienda/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const session = "s1"

var (
	fixedNow = time.UnixMilli(1700000000123)

	validRequest = models.CheckoutRequest{
		Cliente: models.Customer{
			Nombre:    "Ana Pérez",
			Email:     "ana@example.com",
			Telefono:  "555-1234",
			Direccion: "Calle 1",
		},
		MetodoPago: "tarjeta",
	}
)

func newEngine(t *testing.T) *cart.Engine {
	t.Helper()

	store, err := cache.NewFileCache(filepath.Join(t.TempDir(), "carrito.json"))
	require.NoError(t, err)

	return cart.NewEngine(store, cache.CartKeyPrefix, time.Hour)
}

type recordingSleeper struct {
	mu    sync.Mutex
	slept []time.Duration
}

func (r *recordingSleeper) Sleep(_ context.Context, d time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.slept = append(r.slept, d)

	return nil
}

func newCheckout(t *testing.T, engine *cart.Engine, opts service.CheckoutOptions) service.CheckoutService {
	t.Helper()

	if opts.Clock == nil {
		opts.Clock = func() time.Time { return fixedNow }
	}
	if opts.ShippingCost == 0 {
		opts.ShippingCost = 15
	}

	return service.NewCheckoutService(engine, validation.New(), opts)
}

func TestReview(t *testing.T) {
	ctx := context.Background()
	engine := newEngine(t)
	svc := newCheckout(t, engine, service.CheckoutOptions{Sleeper: &recordingSleeper{}})

	_, err := svc.Review(ctx, session)
	appErr := requireAppError(t, err, appErrors.ErrCodeEmptyCart)
	assert.Equal(t, service.MsgCarritoVacioCompra, appErr.Message)
	assert.Equal(t, appErrors.LevelWarning, appErr.Level())

	engine.Add(ctx, session, models.Articulo{ID: 1, Nombre: "Laptop", Precio: 100})
	engine.Add(ctx, session, models.Articulo{ID: 1, Nombre: "Laptop", Precio: 100})
	engine.Add(ctx, session, models.Articulo{ID: 2, Nombre: "Mouse", Precio: 12.5})

	summary, err := svc.Review(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, models.CheckoutSummary{Cantidad: 3, Subtotal: 212.5, Envio: 15, Total: 227.5}, *summary)
}

func TestConfirm(t *testing.T) {
	ctx := context.Background()

	t.Run("Success clears the cart", func(t *testing.T) {
		engine := newEngine(t)
		engine.Add(ctx, session, models.Articulo{ID: 1, Nombre: "Laptop", Precio: 100})

		sleeper := &recordingSleeper{}
		notifier := new(mocks.OrderNotifier)
		notifier.On("OrderConfirmed", mock.Anything, mock.AnythingOfType("*models.OrderConfirmation")).Return(nil).Once()

		svc := newCheckout(t, engine, service.CheckoutOptions{
			ProcessingDelay: 2 * time.Second,
			Sleeper:         sleeper,
			OrderIDs:        service.TimestampOrderIDs{Prefix: "ORD-"},
			Notifier:        notifier,
		})

		confirmation, notice, err := svc.Confirm(ctx, session, validRequest)
		require.NoError(t, err)

		assert.Equal(t, "ORD-1700000000123", confirmation.NumeroPedido)
		assert.Equal(t, fixedNow, confirmation.Fecha)
		assert.Equal(t, 115.0, confirmation.Totales.Total)
		assert.Equal(t, "simulated", confirmation.Pago.Provider)
		require.Len(t, confirmation.Productos, 1)
		assert.Equal(t, service.MsgGracias, notice.Message)
		assert.Equal(t, appErrors.LevelSuccess, notice.Level)
		assert.Equal(t, []time.Duration{2 * time.Second}, sleeper.slept)
		assert.Empty(t, engine.Snapshot(ctx, session).Entries)
		notifier.AssertExpectations(t)
	})

	t.Run("Invalid form keeps the cart", func(t *testing.T) {
		engine := newEngine(t)
		engine.Add(ctx, session, models.Articulo{ID: 1, Nombre: "Laptop", Precio: 100})
		svc := newCheckout(t, engine, service.CheckoutOptions{Sleeper: &recordingSleeper{}})

		req := validRequest
		req.Cliente.Telefono = ""

		_, _, err := svc.Confirm(ctx, session, req)
		appErr := requireAppError(t, err, appErrors.ErrCodeValidation)
		assert.Equal(t, validation.MsgFormularioCompra, appErr.Message)
		assert.Len(t, engine.Snapshot(ctx, session).Entries, 1)
	})

	t.Run("Empty cart", func(t *testing.T) {
		svc := newCheckout(t, newEngine(t), service.CheckoutOptions{Sleeper: &recordingSleeper{}})

		_, _, err := svc.Confirm(ctx, session, validRequest)
		requireAppError(t, err, appErrors.ErrCodeEmptyCart)
	})

	t.Run("Payment failure keeps the cart", func(t *testing.T) {
		engine := newEngine(t)
		engine.Add(ctx, session, models.Articulo{ID: 1, Nombre: "Laptop", Precio: 100})

		payments := new(mocks.PaymentProcessor)
		payments.On("Charge", mock.Anything, mock.Anything).Return(models.PaymentResult{}, errors.New("card declined")).Once()

		svc := newCheckout(t, engine, service.CheckoutOptions{Sleeper: &recordingSleeper{}, Payments: payments})

		_, _, err := svc.Confirm(ctx, session, validRequest)
		appErr := requireAppError(t, err, appErrors.ErrCodeThirdPartyError)
		assert.Equal(t, service.MsgPagoFallido, appErr.Message)
		assert.Len(t, engine.Snapshot(ctx, session).Entries, 1)
		payments.AssertExpectations(t)
	})

	t.Run("Email failure does not fail the order", func(t *testing.T) {
		engine := newEngine(t)
		engine.Add(ctx, session, models.Articulo{ID: 1, Nombre: "Laptop", Precio: 100})

		notifier := new(mocks.OrderNotifier)
		notifier.On("OrderConfirmed", mock.Anything, mock.Anything).Return(errors.New("smtp down")).Once()

		svc := newCheckout(t, engine, service.CheckoutOptions{Sleeper: &recordingSleeper{}, Notifier: notifier})

		confirmation, _, err := svc.Confirm(ctx, session, validRequest)
		require.NoError(t, err)
		assert.NotEmpty(t, confirmation.NumeroPedido)
		assert.Empty(t, engine.Snapshot(ctx, session).Entries)
	})

	t.Run("Cancelled while processing", func(t *testing.T) {
		engine := newEngine(t)
		engine.Add(ctx, session, models.Articulo{ID: 1, Nombre: "Laptop", Precio: 100})

		svc := newCheckout(t, engine, service.CheckoutOptions{ProcessingDelay: time.Hour, Sleeper: service.TimerSleeper})

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, _, err := svc.Confirm(cancelled, session, validRequest)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Len(t, engine.Snapshot(ctx, session).Entries, 1)
	})
}

func TestConfirmRejectsConcurrentCheckout(t *testing.T) {
	ctx := context.Background()
	engine := newEngine(t)
	engine.Add(ctx, session, models.Articulo{ID: 1, Nombre: "Laptop", Precio: 100})

	entered := make(chan struct{})
	release := make(chan struct{})

	sleeper := service.SleeperFunc(func(context.Context, time.Duration) error {
		close(entered)
		<-release
		return nil
	})

	svc := newCheckout(t, engine, service.CheckoutOptions{Sleeper: sleeper})

	done := make(chan error, 1)
	go func() {
		_, _, err := svc.Confirm(ctx, session, validRequest)
		done <- err
	}()

	<-entered

	_, _, err := svc.Confirm(ctx, session, validRequest)
	requireAppError(t, err, appErrors.ErrCodeCheckoutInProgress)

	// Other sessions are not blocked
	_, _, err = svc.Confirm(ctx, "other", validRequest)
	requireAppError(t, err, appErrors.ErrCodeEmptyCart)

	close(release)
	require.NoError(t, <-done)

	// The guard is released once the order completes
	_, _, err = svc.Confirm(ctx, session, validRequest)
	requireAppError(t, err, appErrors.ErrCodeEmptyCart)
}

func TestOrderIDGenerators(t *testing.T) {
	assert.Equal(t, "ORD-1700000000123", service.TimestampOrderIDs{Prefix: "ORD-"}.NewOrderID(fixedNow))

	id := service.UUIDOrderIDs{Prefix: "ORD-"}.NewOrderID(fixedNow)
	assert.Regexp(t, `^ORD-[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`, id)
	assert.NotEqual(t, id, service.UUIDOrderIDs{Prefix: "ORD-"}.NewOrderID(fixedNow))
}

func TestTimerSleeper(t *testing.T) {
	assert.NoError(t, service.TimerSleeper.Sleep(context.Background(), 0))
	assert.NoError(t, service.TimerSleeper.Sleep(context.Background(), time.Millisecond))
}
