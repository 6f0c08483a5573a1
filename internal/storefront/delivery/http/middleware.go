package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/storefront/internal/cart"
	"github.com/tair/storefront/pkg/logger"
)

// MiddlewareConfig holds middleware configuration
type MiddlewareConfig struct {
	EnableLogging bool
	EnableTracing bool
	Cart          *cart.Engine
	RateLimiter   *RateLimiter
}

// DefaultMiddlewareConfig returns default middleware configuration
func DefaultMiddlewareConfig(engine *cart.Engine, limiter *RateLimiter) MiddlewareConfig {
	return MiddlewareConfig{
		EnableLogging: true,
		EnableTracing: true,
		Cart:          engine,
		RateLimiter:   limiter,
	}
}

// RegisterMiddlewares registers all middlewares to the router
func RegisterMiddlewares(router *mux.Router, config MiddlewareConfig) {
	// Tracing first so the logger sees the span
	if config.EnableTracing {
		router.Use(func(next http.Handler) http.Handler {
			return TracingMiddleware("http-request", next)
		})
	}
	if config.EnableLogging {
		router.Use(LoggingMiddleware)
	}
	if config.RateLimiter != nil {
		router.Use(config.RateLimiter.Middleware())
	}
	router.Use(CartScopeMiddleware(config.Cart))
}

// CartScopeMiddleware installs engine in every request context
func CartScopeMiddleware(engine *cart.Engine) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(cart.NewContext(r.Context(), engine)))
		})
	}
}

// TracingMiddleware wraps HTTP handlers with OpenTelemetry tracing
func TracingMiddleware(operationName string, next http.Handler) http.Handler {
	return otelhttp.NewHandler(next, operationName)
}

// LoggingMiddleware logs HTTP requests with structured logging
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		ctx := r.Context()
		span := trace.SpanFromContext(ctx)
		traceID := "no-trace"
		if span.SpanContext().IsValid() {
			traceID = span.SpanContext().TraceID().String()
		}

		logger.Debug(ctx).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote_addr", r.RemoteAddr).
			Str("user_agent", r.UserAgent()).
			Str("trace_id", traceID).
			Msg("HTTP request started")

		next.ServeHTTP(ww, r)

		duration := time.Since(start)

		logEvent := logger.WithContext(ctx).Info()
		if ww.statusCode >= 500 {
			logEvent = logger.WithContext(ctx).Error()
		} else if ww.statusCode >= 400 {
			logEvent = logger.WithContext(ctx).Warn()
		}

		logEvent.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.statusCode).
			Dur("duration", duration).
			Int64("duration_ms", duration.Milliseconds()).
			Str("trace_id", traceID).
			Msg("HTTP request completed")
	})
}
