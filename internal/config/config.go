package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/tair/storefront/pkg/database"
	"github.com/tair/storefront/pkg/logger"
	"github.com/tair/storefront/pkg/tracing"
)

// Cart store backends
const (
	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
)

// Config is the storefront process configuration, read from the environment
type Config struct {
	ServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"storefront"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`

	CartStore      string `env:"CART_STORE" envDefault:"memory"`
	CartStorageKey string `env:"CART_STORAGE_KEY" envDefault:"starlfinx-cart"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName     string `env:"DB_NAME" envDefault:"storefrontdb"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	CatalogURL      string        `env:"CATALOG_URL" envDefault:"https://dummyjson.com/products"`
	CatalogCacheTTL time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"10m"`
	CatalogRetries  uint          `env:"CATALOG_RETRIES" envDefault:"3"`
	SearchDebounce  time.Duration `env:"SEARCH_DEBOUNCE" envDefault:"300ms"`

	RateLimit       int           `env:"RATE_LIMIT" envDefault:"100"`
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`

	KafkaBrokers       []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaConsumerGroup string   `env:"KAFKA_CONSUMER_GROUP" envDefault:"storefront"`

	TracingEnabled bool   `env:"TRACING_ENABLED" envDefault:"false"`
	JaegerEndpoint string `env:"JAEGER_ENDPOINT" envDefault:"http://localhost:14268/api/traces"`
}

// Load parses the environment into a Config and validates it
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross-field constraints env tags cannot express
func (c *Config) Validate() error {
	switch c.CartStore {
	case StoreMemory, StoreRedis, StorePostgres:
	default:
		return fmt.Errorf("unknown CART_STORE %q (want memory, redis or postgres)", c.CartStore)
	}
	if c.CartStorageKey == "" {
		return fmt.Errorf("CART_STORAGE_KEY must not be empty")
	}
	if c.RateLimit > 0 && c.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive when RATE_LIMIT is set")
	}
	if c.SearchDebounce < 0 {
		return fmt.Errorf("SEARCH_DEBOUNCE must not be negative")
	}
	return nil
}

// KafkaEnabled reports whether any broker was configured
func (c *Config) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

// Database returns the postgres settings
func (c *Config) Database() database.Config {
	return database.Config{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		DBName:   c.DBName,
		SSLMode:  c.DBSSLMode,
	}
}

// Redis returns the redis settings
func (c *Config) Redis() database.RedisConfig {
	return database.RedisConfig{
		Addr:     c.RedisAddr,
		Password: c.RedisPassword,
		DB:       c.RedisDB,
	}
}

// Logging returns the logger settings
func (c *Config) Logging() logger.Config {
	return logger.Config{
		ServiceName: c.ServiceName,
		Environment: c.Environment,
		Level:       c.LogLevel,
	}
}

// Tracing returns the tracer settings
func (c *Config) Tracing() tracing.Config {
	return tracing.Config{
		ServiceName:    c.ServiceName,
		JaegerEndpoint: c.JaegerEndpoint,
		Enabled:        c.TracingEnabled,
	}
}
