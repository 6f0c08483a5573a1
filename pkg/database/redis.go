package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tair/storefront/pkg/logger"
)

// RedisConfig holds redis connection settings
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisClient connects to redis and verifies the connection with PING
func NewRedisClient(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", cfg.Addr, err)
	}

	logger.Logger.Info().
		Str("addr", cfg.Addr).
		Int("db", cfg.DB).
		Msg("Connected to Redis")
	return client, nil
}
