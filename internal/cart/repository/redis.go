package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/tair/storefront/internal/cart/domain"
)

// RedisStore persists cart records as plain redis strings without expiry
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a store whose keys are namespaced with prefix
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %q from redis: %w", key, err)
	}
	return data, nil
}

func (s *RedisStore) Save(ctx context.Context, key string, data []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write %q to redis: %w", key, err)
	}
	return nil
}

// Ping reports whether redis is reachable
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
