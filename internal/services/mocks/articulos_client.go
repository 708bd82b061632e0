package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/tienda/internal/models"
	"github.com/aaravmahajanofficial/tienda/pkg/articulos"
	"github.com/stretchr/testify/mock"
)

// ArticulosClient is a testify mock of articulos.Client.
type ArticulosClient struct {
	mock.Mock
}

func (_m *ArticulosClient) List(ctx context.Context) ([]models.Articulo, error) {
	ret := _m.Called(ctx)

	var items []models.Articulo
	if v := ret.Get(0); v != nil {
		items = v.([]models.Articulo)
	}

	return items, ret.Error(1)
}

func (_m *ArticulosClient) Get(ctx context.Context, id int64) (*models.Articulo, error) {
	ret := _m.Called(ctx, id)

	var item *models.Articulo
	if v := ret.Get(0); v != nil {
		item = v.(*models.Articulo)
	}

	return item, ret.Error(1)
}

func (_m *ArticulosClient) Create(ctx context.Context, p articulos.Payload) error {
	ret := _m.Called(ctx, p)
	return ret.Error(0)
}

func (_m *ArticulosClient) Update(ctx context.Context, id int64, p articulos.Payload) error {
	ret := _m.Called(ctx, id, p)
	return ret.Error(0)
}

func (_m *ArticulosClient) Delete(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}
