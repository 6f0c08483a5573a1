//go:build wireinject
// +build wireinject

package storefront

import (
	"context"

	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/storefront/internal/config"
)

// Wire sets
var BackendSet = wire.NewSet(
	ProvideRedis,
	ProvideGorm,
	ProvideHealthChecks,
)

var CartSet = wire.NewSet(
	ProvideCartStore,
	ProvideCartMetrics,
	ProvideCartEngine,
)

var CatalogSet = wire.NewSet(
	ProvideQueryMetrics,
	ProvideQueryEngine,
	ProvideCatalogSource,
)

// InitializeApp builds every storefront component from cfg
func InitializeApp(ctx context.Context, cfg *config.Config, reg prometheus.Registerer) (*App, func(), error) {
	wire.Build(
		BackendSet,
		CartSet,
		CatalogSet,
		ProvideHandler,
		ProvideRateLimiter,
		wire.Struct(new(App), "*"),
	)
	return nil, nil, nil
}
