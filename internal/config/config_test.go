package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "storefront", cfg.ServiceName)
	assert.Equal(t, StoreMemory, cfg.CartStore)
	assert.Equal(t, "starlfinx-cart", cfg.CartStorageKey)
	assert.Equal(t, 300*time.Millisecond, cfg.SearchDebounce)
	assert.Equal(t, "https://dummyjson.com/products", cfg.CatalogURL)
	assert.False(t, cfg.KafkaEnabled())
	assert.True(t, cfg.Logging().Console())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CART_STORE", "redis")
	t.Setenv("REDIS_ADDR", "cache:6380")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("SEARCH_DEBOUNCE", "150ms")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreRedis, cfg.CartStore)
	assert.Equal(t, "cache:6380", cfg.Redis().Addr)
	assert.Equal(t, 2, cfg.Redis().DB)
	assert.Equal(t, 150*time.Millisecond, cfg.SearchDebounce)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.True(t, cfg.KafkaEnabled())
	assert.False(t, cfg.Logging().Console())
}

func TestLoadRejectsUnknownStore(t *testing.T) {
	t.Setenv("CART_STORE", "cookie")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cookie")
}

func TestDatabaseSettings(t *testing.T) {
	t.Setenv("DB_HOST", "pg")
	t.Setenv("DB_NAME", "shop")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Contains(t, cfg.Database().DSN(), "host=pg")
	assert.Contains(t, cfg.Database().DSN(), "dbname=shop")
}

func TestLoggingSettings(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "storefront", cfg.Logging().ServiceName)
	assert.Equal(t, "warn", cfg.Logging().Level)
	assert.False(t, cfg.Logging().Console())
}

func TestRateLimitSettings(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.RateLimit)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)

	t.Setenv("RATE_LIMIT", "10")
	t.Setenv("RATE_LIMIT_WINDOW", "0s")
	_, err = Load()
	require.Error(t, err)

	t.Setenv("RATE_LIMIT", "0")
	_, err = Load()
	require.NoError(t, err, "a disabled limiter needs no window")
}
