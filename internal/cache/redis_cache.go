package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisStore keeps carts as JSON strings. Reads push the expiry forward, so a
// cart lives for ttl after its last access rather than its last write.
type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) Cache {
	return &redisStore{client: client, ttl: ttl}
}

func (r *redisStore) expiry(ttl time.Duration) time.Duration {
	if ttl > 0 {
		return ttl
	}
	return r.ttl
}

func (r *redisStore) Get(ctx context.Context, key string, value any) (bool, error) {

	var (
		data []byte
		err  error
	)

	if exp := r.expiry(0); exp > 0 {
		data, err = r.client.GetEx(ctx, key, exp).Bytes()
	} else {
		data, err = r.client.Get(ctx, key).Bytes()
	}

	switch {
	case errors.Is(err, redis.Nil):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("failed to read %s from redis: %w", key, err)
	}

	if err := json.Unmarshal(data, value); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w: %w", key, ErrMalformed, err)
	}

	return true, nil
}

func (r *redisStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	if err := r.client.Set(ctx, key, data, r.expiry(ttl)).Err(); err != nil {
		return fmt.Errorf("failed to write %s to redis: %w", key, err)
	}

	return nil
}

func (r *redisStore) Delete(ctx context.Context, key string) error {

	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete %s from redis: %w", key, err)
	}

	return nil
}

func (r *redisStore) Close() error {
	return r.client.Close()
}
