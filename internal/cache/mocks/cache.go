package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// Cache is a testify mock of cache.Cache.
type Cache struct {
	mock.Mock
}

func (_m *Cache) Get(ctx context.Context, key string, value any) (bool, error) {
	ret := _m.Called(ctx, key, value)

	if rf, ok := ret.Get(0).(func(context.Context, string, any) (bool, error)); ok {
		return rf(ctx, key, value)
	}

	return ret.Bool(0), ret.Error(1)
}

func (_m *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	ret := _m.Called(ctx, key, value, ttl)
	return ret.Error(0)
}

func (_m *Cache) Delete(ctx context.Context, key string) error {
	ret := _m.Called(ctx, key)
	return ret.Error(0)
}

func (_m *Cache) Close() error {
	ret := _m.Called()
	return ret.Error(0)
}

func NewCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *Cache {
	m := &Cache{}
	m.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
