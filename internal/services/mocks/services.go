package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/tienda/internal/models"
	service "github.com/aaravmahajanofficial/tienda/internal/services"
	"github.com/stretchr/testify/mock"
)

type CatalogService struct {
	mock.Mock
}

func (_m *CatalogService) List(ctx context.Context) ([]models.Articulo, error) {
	ret := _m.Called(ctx)

	var items []models.Articulo
	if v := ret.Get(0); v != nil {
		items = v.([]models.Articulo)
	}

	return items, ret.Error(1)
}

func (_m *CatalogService) Save(ctx context.Context, in models.ArticuloInput) (*models.CatalogResult, error) {
	ret := _m.Called(ctx, in)

	var result *models.CatalogResult
	if v := ret.Get(0); v != nil {
		result = v.(*models.CatalogResult)
	}

	return result, ret.Error(1)
}

func (_m *CatalogService) Edit(ctx context.Context, id int64) (*models.Articulo, error) {
	ret := _m.Called(ctx, id)

	var item *models.Articulo
	if v := ret.Get(0); v != nil {
		item = v.(*models.Articulo)
	}

	return item, ret.Error(1)
}

// Delete records the answer the confirmer gives so tests can match on it.
func (_m *CatalogService) Delete(ctx context.Context, id int64, confirmer service.Confirmer) (*models.CatalogResult, error) {
	ret := _m.Called(ctx, id, confirmer.Confirm(ctx, service.MsgConfirmarEliminar))

	var result *models.CatalogResult
	if v := ret.Get(0); v != nil {
		result = v.(*models.CatalogResult)
	}

	return result, ret.Error(1)
}

type PaymentProcessor struct {
	mock.Mock
}

func (_m *PaymentProcessor) Charge(ctx context.Context, order *models.Order) (models.PaymentResult, error) {
	ret := _m.Called(ctx, order)
	return ret.Get(0).(models.PaymentResult), ret.Error(1)
}

type OrderNotifier struct {
	mock.Mock
}

func (_m *OrderNotifier) OrderConfirmed(ctx context.Context, confirmation *models.OrderConfirmation) error {
	ret := _m.Called(ctx, confirmation)
	return ret.Error(0)
}
