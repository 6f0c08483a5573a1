package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/storefront/internal/catalog/query"
)

// HealthCheck is a named dependency pinged by /health
type HealthCheck struct {
	Name string
	Ping func(ctx context.Context) error
}

// StorefrontHandler serves the cart and catalog query endpoints
type StorefrontHandler struct {
	catalog *query.Engine
	checks  []HealthCheck

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	requestSummary *prometheus.SummaryVec
}

// NewStorefrontHandler creates the handler and registers its request metrics on reg
func NewStorefrontHandler(catalog *query.Engine, reg prometheus.Registerer, checks ...HealthCheck) *StorefrontHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_requests_total",
			Help: "Total number of requests to the storefront service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_request_duration_seconds",
			Help:    "Duration of storefront requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Summary metric for percentile calculation (p50, p90, p95, p99)
	requestSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "storefront_request_duration_summary",
			Help: "Summary of request durations with percentiles (client-side quantiles)",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.95: 0.01,
				0.99: 0.001,
			},
			MaxAge: 10 * time.Minute,
		},
		[]string{"method", "endpoint"},
	)

	reg.MustRegister(requestCounter, requestLatency, requestSummary)

	return &StorefrontHandler{
		catalog:        catalog,
		checks:         checks,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
		requestSummary: requestSummary,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *StorefrontHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestSummary.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (h *StorefrontHandler) handle(router *mux.Router, path string, fn http.HandlerFunc, method string) {
	router.HandleFunc(path, h.metricsMiddleware(path, fn)).Methods(method)
}

// RegisterRoutes mounts the cart, catalog and checkout endpoints
func (h *StorefrontHandler) RegisterRoutes(router *mux.Router) {
	// Cart
	h.handle(router, "/api/cart", h.GetCart, http.MethodGet)
	h.handle(router, "/api/cart", h.ClearCart, http.MethodDelete)
	h.handle(router, "/api/cart/items", h.AddItem, http.MethodPost)
	h.handle(router, "/api/cart/items/{id}", h.UpdateItem, http.MethodPatch)
	h.handle(router, "/api/cart/items/{id}", h.RemoveItem, http.MethodDelete)

	// Catalog
	h.handle(router, "/api/catalog/products", h.ListProducts, http.MethodGet)
	h.handle(router, "/api/catalog/facets", h.GetFacets, http.MethodGet)
	h.handle(router, "/api/catalog/stats", h.GetStats, http.MethodGet)
	h.handle(router, "/api/catalog/query", h.GetQuery, http.MethodGet)
	h.handle(router, "/api/catalog/query", h.ClearQuery, http.MethodDelete)
	h.handle(router, "/api/catalog/query/search", h.SetSearch, http.MethodPut)
	h.handle(router, "/api/catalog/query/categories/{category}/toggle", h.ToggleCategory, http.MethodPost)
	h.handle(router, "/api/catalog/query/brands/{brand}/toggle", h.ToggleBrand, http.MethodPost)
	h.handle(router, "/api/catalog/query/price", h.SetPrice, http.MethodPut)
	h.handle(router, "/api/catalog/query/sort", h.SetSort, http.MethodPut)

	h.handle(router, "/api/checkout", h.Checkout, http.MethodPost)
}

// RegisterHealthCheck mounts /health, which pings every configured dependency
func (h *StorefrontHandler) RegisterHealthCheck(router *mux.Router) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		for _, check := range h.checks {
			if err := check.Ping(ctx); err != nil {
				respondJSON(w, http.StatusServiceUnavailable, Response{
					Success: false,
					Error:   check.Name + " unavailable",
				})
				return
			}
		}

		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Storefront service is healthy",
			Data: map[string]interface{}{
				"catalog_size": len(h.catalog.Catalog()),
			},
		})
	}).Methods(http.MethodGet)
}

// Checkout handles POST /api/checkout. Orders are not taken by this service.
func (h *StorefrontHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusNotImplemented, Response{
		Success: false,
		Error:   "Checkout is not available",
	})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, Response{
		Success: false,
		Error:   message,
	})
}
