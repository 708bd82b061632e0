package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMalformed marks a stored value that could be read but not decoded.
// Any other Get error means the store itself could not be reached.
var ErrMalformed = errors.New("malformed cache value")

// Cache is the durable key-value store the storefront mirrors carts into.
// Values are JSON encoded.
type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

func Key(prefix string, id string) string {
	return prefix + ":" + id
}

const (
	CartKeyPrefix = "tienda_carrito"
)
