package service

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/aaravmahajanofficial/tienda/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/tienda/internal/errors"
	"github.com/aaravmahajanofficial/tienda/internal/models"
	"github.com/aaravmahajanofficial/tienda/internal/pricing"
	"github.com/aaravmahajanofficial/tienda/pkg/articulos"
	"golang.org/x/sync/singleflight"
)

const MsgErrorProductos = "Error al cargar los productos. Verifica tu conexión."

type StorefrontService interface {
	// LoadProducts refreshes the cached catalog from upstream. On failure the
	// previous cache is kept and a connection error is returned with the view.
	LoadProducts(ctx context.Context) (*models.StoreCatalog, error)
	// Products filters the cached catalog. It loads from upstream only when
	// nothing has been loaded yet or reload is set.
	Products(ctx context.Context, search, precio string, reload bool) (*models.StoreCatalog, error)
	Buckets() []models.PriceBucket
}

type storefrontService struct {
	client articulos.Client
	group  singleflight.Group

	mu       sync.RWMutex
	loaded   bool
	products []models.Articulo
	buckets  []models.PriceBucket
}

func NewStorefrontService(client articulos.Client) StorefrontService {
	return &storefrontService{client: client}
}

func (s *storefrontService) LoadProducts(ctx context.Context) (*models.StoreCatalog, error) {

	logger := middleware.LoggerFromContext(ctx)

	v, err, shared := s.group.Do("productos", func() (any, error) {
		// Shared by every waiting caller, so one caller leaving must not cancel it.
		return s.client.List(context.WithoutCancel(ctx))
	})

	if err != nil {
		logger.Error("Failed to load storefront products", slog.String("error", err.Error()), slog.Bool("shared", shared))

		s.mu.RLock()
		view := s.view(models.CatalogConnectionError, nil)
		s.mu.RUnlock()

		return view, appErrors.ConnectionError(MsgErrorProductos).WithError(err)
	}

	items := v.([]models.Articulo)
	prices := make([]float64, 0, len(items))
	for _, item := range items {
		prices = append(prices, item.Precio)
	}

	state := models.CatalogLoaded
	if len(items) == 0 {
		state = models.CatalogEmpty
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.loaded = true
	s.products = slices.Clone(items)
	s.buckets = pricing.Buckets(prices)

	return s.view(state, s.products), nil
}

func (s *storefrontService) Products(ctx context.Context, search, precio string, reload bool) (*models.StoreCatalog, error) {

	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()

	if reload || !loaded {
		view, err := s.LoadProducts(ctx)
		if err != nil || view.Estado == models.CatalogEmpty {
			return view, err
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.products) == 0 {
		return s.view(models.CatalogEmpty, nil), nil
	}

	filtered := ApplyFilters(s.products, search, precio)

	state := models.CatalogLoaded
	if len(filtered) == 0 {
		state = models.CatalogNoMatches
	}

	return s.view(state, filtered), nil
}

func (s *storefrontService) Buckets() []models.PriceBucket {

	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.buckets)
}

// view must be called with s.mu held.
func (s *storefrontService) view(state models.CatalogState, items []models.Articulo) *models.StoreCatalog {

	productos := slices.Clone(items)
	if productos == nil {
		productos = []models.Articulo{}
	}

	rangos := slices.Clone(s.buckets)
	if rangos == nil {
		rangos = []models.PriceBucket{}
	}

	return &models.StoreCatalog{
		Estado:    state,
		Productos: productos,
		Rangos:    rangos,
		Total:     len(productos),
	}
}

// ApplyFilters keeps items whose name contains search (case-insensitive,
// trimmed) and whose price falls in the bucket precio. An empty or
// unparseable bucket does not filter by price. items is not modified.
func ApplyFilters(items []models.Articulo, search, precio string) []models.Articulo {

	term := strings.ToLower(strings.TrimSpace(search))
	rango, byPrice := pricing.ParseRange(precio)

	filtered := make([]models.Articulo, 0, len(items))

	for _, item := range items {
		if term != "" && !strings.Contains(strings.ToLower(item.Nombre), term) {
			continue
		}
		if byPrice && !rango.Contains(item.Precio) {
			continue
		}
		filtered = append(filtered, item)
	}

	return filtered
}
