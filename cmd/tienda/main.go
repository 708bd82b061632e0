package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/aaravmahajanofficial/tienda/docs"
	"github.com/aaravmahajanofficial/tienda/internal/api/handlers"
	"github.com/aaravmahajanofficial/tienda/internal/api/middleware"
	"github.com/aaravmahajanofficial/tienda/internal/cart"
	"github.com/aaravmahajanofficial/tienda/internal/config"
	"github.com/aaravmahajanofficial/tienda/internal/health"
	"github.com/aaravmahajanofficial/tienda/internal/metrics"
	service "github.com/aaravmahajanofficial/tienda/internal/services"
	"github.com/aaravmahajanofficial/tienda/internal/telemetry"
	"github.com/aaravmahajanofficial/tienda/internal/validation"
	"github.com/aaravmahajanofficial/tienda/pkg/articulos"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// @title Tienda API
// @version 1.0
// @description Catalog administration and storefront for the articulos REST API.
// @BasePath /api/v1
func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	ctx := context.Background()

	// Tracing setup
	_, shutdownTracing, err := telemetry.Setup(ctx, cfg.OTel, cfg.Env)
	if err != nil {
		slog.Error("❌ Error setting up tracing", "error", err.Error())
		os.Exit(1)
	}

	// Cart storage setup
	store, err := newCartStore(ctx, cfg)
	if err != nil {
		slog.Error("❌ Error opening the cart storage", slog.String("backend", cfg.Cart.Backend), slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("⚠️ Error closing cart storage", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Cart storage closed")
		}
	}()

	validate := validation.New()
	articulosClient := articulos.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)
	carts := cart.NewEngine(store, cfg.Cart.StorageKey, cfg.Cart.TTL)

	catalogService := service.NewCatalogService(articulosClient, validate, cfg.Checkout.CheckDuplicatesOnUpdate)
	storefrontService := service.NewStorefrontService(articulosClient)
	checkoutService := service.NewCheckoutService(carts, validate, checkoutOptions(cfg))

	api := &handlers.Handlers{
		Catalog:    handlers.NewCatalogHandler(catalogService),
		Storefront: handlers.NewStorefrontHandler(storefrontService),
		Cart:       handlers.NewCartHandler(carts, validate),
		Checkout:   handlers.NewCheckoutHandler(checkoutService),
	}

	healthHandler, err := health.NewHealthHandler(cfg, &health.Endpoints{Articulos: articulosClient})
	if err != nil {
		slog.Error("❌ Error creating the health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("services initialized",
		slog.String("env", cfg.Env),
		slog.String("version", "1.0.0"),
		slog.String("upstream", cfg.Upstream.BaseURL),
		slog.String("cart_backend", cfg.Cart.Backend),
		slog.String("payment_processor", cfg.Checkout.PaymentProcessor),
	)

	// Setup router
	routerMux := http.NewServeMux()
	api.Register(routerMux)
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, cfg.OTel.ServiceName)

	// Setup http server
	server := http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {

		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown. Covers an in-flight checkout waiting out its delay.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second+cfg.Checkout.ProcessingDelay)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Error flushing traces", slog.String("error", err.Error()))
	}
}
