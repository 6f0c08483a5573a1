package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/tair/storefront/docs"
	"github.com/tair/storefront/internal/config"
	"github.com/tair/storefront/internal/storefront"
	httpDelivery "github.com/tair/storefront/internal/storefront/delivery/http"
	"github.com/tair/storefront/kafka"
	"github.com/tair/storefront/pkg/logger"
	"github.com/tair/storefront/pkg/tracing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init(logger.Config{ServiceName: "storefront"})
		logger.Logger.Fatal().Err(err).Msg("Invalid configuration")
	}

	// Initialize logger
	logger.Init(cfg.Logging())

	logger.Logger.Info().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Str("cart_store", cfg.CartStore).
		Msg("Starting storefront service")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize tracer
	tp, err := tracing.InitTracer(cfg.Tracing())
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(shutdownCtx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Initialize components with Wire DI
	app, cleanup, err := storefront.InitializeApp(ctx, cfg, prometheus.DefaultRegisterer)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize storefront")
	}
	defer cleanup()

	// The view stays empty until the first fetch lands
	go func() {
		if err := app.LoadCatalog(ctx); err != nil {
			logger.Logger.Error().Err(err).Msg("Initial catalog load failed")
		}
	}()

	if cfg.KafkaEnabled() {
		stopKafka := startKafka(ctx, cfg, app)
		defer stopKafka()
	}

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           newRouter(app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Logger.Info().
			Str("port", cfg.HTTPPort).
			Str("metrics_endpoint", "/metrics").
			Str("swagger", "/swagger/").
			Msg("HTTP server started")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	<-ctx.Done()
	logger.Logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server forced to shutdown")
	}
}

func newRouter(app *storefront.App) http.Handler {
	router := mux.NewRouter()

	httpDelivery.RegisterMiddlewares(router, httpDelivery.DefaultMiddlewareConfig(app.Cart, app.Limiter))
	app.Handler.RegisterRoutes(router)
	app.Handler.RegisterHealthCheck(router)
	httpDelivery.RegisterSwaggerDocs(router, httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	return c.Handler(router)
}

// startKafka publishes cart changes and listens for catalog refresh requests.
// The returned func closes both clients.
func startKafka(ctx context.Context, cfg *config.Config, app *storefront.App) func() {
	var closers []func() error

	publisher, err := kafka.NewPublisher(cfg.KafkaBrokers)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Kafka publisher unavailable, cart events disabled")
	} else {
		app.Cart.Subscribe(publisher.CartObserver(cfg.CartStorageKey))
		closers = append(closers, publisher.Close)
	}

	consumer, err := kafka.NewConsumer(cfg.KafkaBrokers, cfg.KafkaConsumerGroup, []string{kafka.TopicCatalogRefresh})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Kafka consumer unavailable, catalog refresh disabled")
	} else {
		consumer.RegisterHandler(kafka.EventTypeCatalogRefresh, kafka.CatalogRefreshHandler(app.HandleCatalogRefresh))
		if err := consumer.Start(ctx); err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to start Kafka consumer")
		}
		closers = append(closers, consumer.Close)
	}

	return func() {
		for _, closeFn := range closers {
			if err := closeFn(); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to close Kafka client")
			}
		}
	}
}
