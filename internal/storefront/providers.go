package storefront

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/tair/storefront/internal/cart"
	"github.com/tair/storefront/internal/cart/domain"
	"github.com/tair/storefront/internal/cart/repository"
	"github.com/tair/storefront/internal/catalog/loader"
	"github.com/tair/storefront/internal/catalog/query"
	"github.com/tair/storefront/internal/config"
	delivery "github.com/tair/storefront/internal/storefront/delivery/http"
	"github.com/tair/storefront/kafka"
	"github.com/tair/storefront/pkg/database"
	"github.com/tair/storefront/pkg/logger"
)

// App holds the wired storefront components
type App struct {
	Config  *config.Config
	Cart    *cart.Engine
	Catalog *query.Engine
	Source  loader.Source
	Handler *delivery.StorefrontHandler
	Limiter *delivery.RateLimiter
}

// LoadCatalog fetches the catalog into the query engine
func (a *App) LoadCatalog(ctx context.Context) error {
	return loader.Load(ctx, a.Source, a.Catalog)
}

// HandleCatalogRefresh re-fetches the catalog when a refresh event arrives
func (a *App) HandleCatalogRefresh(ctx context.Context, event kafka.CatalogRefreshEvent) error {
	logger.Info(ctx).
		Str("reason", event.Reason).
		Bool("invalidate_cache", event.InvalidateCache).
		Msg("Refreshing catalog")
	return loader.Refresh(ctx, a.Source, a.Catalog, event.InvalidateCache)
}

// ProvideRedis connects to redis when the cart is stored there or the catalog
// is cached. A cache-only connection that fails is logged and skipped.
func ProvideRedis(ctx context.Context, cfg *config.Config) (*redis.Client, func(), error) {
	required := cfg.CartStore == config.StoreRedis
	if !required && cfg.CatalogCacheTTL <= 0 {
		return nil, func() {}, nil
	}

	client, err := database.NewRedisClient(ctx, cfg.Redis())
	if err != nil {
		if required {
			return nil, nil, err
		}
		logger.Logger.Warn().Err(err).Msg("Redis unavailable, catalog cache disabled")
		return nil, func() {}, nil
	}

	return client, func() {
		if err := client.Close(); err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to close redis client")
		}
	}, nil
}

// ProvideGorm opens postgres when the cart is stored there
func ProvideGorm(cfg *config.Config) (*gorm.DB, func(), error) {
	if cfg.CartStore != config.StorePostgres {
		return nil, func() {}, nil
	}

	db, err := database.NewGormConnection(cfg.Database())
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	return db, func() {
		if err := sqlDB.Close(); err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to close database")
		}
	}, nil
}

// ProvideCartStore selects the cart backend and wraps it with tracing
func ProvideCartStore(cfg *config.Config, rdb *redis.Client, db *gorm.DB) (domain.Store, error) {
	var store domain.Store
	switch cfg.CartStore {
	case config.StoreRedis:
		store = repository.NewRedisStore(rdb, cfg.ServiceName+":")
	case config.StorePostgres:
		gs := repository.NewGormStore(db)
		if err := gs.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		store = gs
	default:
		store = repository.NewMemoryStore()
	}

	logger.Logger.Info().Str("backend", cfg.CartStore).Msg("Cart store initialized")
	return repository.NewTracingStore(store, cfg.CartStore), nil
}

// ProvideHealthChecks lists the connected backends for /health
func ProvideHealthChecks(rdb *redis.Client, db *gorm.DB) []delivery.HealthCheck {
	var checks []delivery.HealthCheck
	if rdb != nil {
		checks = append(checks, delivery.HealthCheck{
			Name: "redis",
			Ping: func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		})
	}
	if db != nil {
		checks = append(checks, delivery.HealthCheck{
			Name: "database",
			Ping: func(ctx context.Context) error {
				sqlDB, err := db.DB()
				if err != nil {
					return err
				}
				return sqlDB.PingContext(ctx)
			},
		})
	}
	return checks
}

func ProvideCartMetrics(reg prometheus.Registerer) *cart.Metrics {
	return cart.NewMetrics(reg)
}

func ProvideQueryMetrics(reg prometheus.Registerer) *query.Metrics {
	return query.NewMetrics(reg)
}

// ProvideCartEngine hydrates the cart from store
func ProvideCartEngine(ctx context.Context, cfg *config.Config, store domain.Store, m *cart.Metrics) *cart.Engine {
	return cart.New(ctx, store,
		cart.WithStorageKey(cfg.CartStorageKey),
		cart.WithMetrics(m),
	)
}

// ProvideQueryEngine creates the catalog query engine; the cleanup stops its timer
func ProvideQueryEngine(cfg *config.Config, m *query.Metrics) (*query.Engine, func()) {
	engine := query.NewEngine(
		query.WithDebounce(cfg.SearchDebounce),
		query.WithMetrics(m),
	)
	return engine, engine.Close
}

// ProvideCatalogSource fetches over HTTP, behind the redis cache when available
func ProvideCatalogSource(cfg *config.Config, rdb *redis.Client) loader.Source {
	var src loader.Source = loader.NewHTTPSource(cfg.CatalogURL, cfg.CatalogRetries)
	if rdb != nil && cfg.CatalogCacheTTL > 0 {
		src = loader.NewRedisCache(src, rdb, cfg.CatalogCacheTTL)
	}
	return src
}

func ProvideHandler(catalog *query.Engine, reg prometheus.Registerer, checks []delivery.HealthCheck) *delivery.StorefrontHandler {
	return delivery.NewStorefrontHandler(catalog, reg, checks...)
}

// ProvideRateLimiter limits requests per client when redis is connected
func ProvideRateLimiter(cfg *config.Config, rdb *redis.Client) *delivery.RateLimiter {
	if rdb == nil || cfg.RateLimit <= 0 {
		return nil
	}
	return delivery.NewRateLimiter(rdb, cfg.RateLimit, cfg.RateLimitWindow)
}
