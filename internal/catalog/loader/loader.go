package loader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/pkg/logger"
)

// Source supplies the full product catalog
type Source interface {
	Fetch(ctx context.Context) ([]domain.Product, error)
}

// Sink receives a freshly loaded catalog
type Sink interface {
	SetCatalog(products []domain.Product)
}

// catalogResponse is the list envelope returned by the catalog API
type catalogResponse struct {
	Products []domain.Product `json:"products"`
	Total    int              `json:"total"`
	Skip     int              `json:"skip"`
	Limit    int              `json:"limit"`
}

// HTTPSource fetches the catalog from a JSON endpoint
type HTTPSource struct {
	url      string
	client   *http.Client
	maxTries uint
}

// NewHTTPSource creates a source for url. maxTries of zero means a single attempt.
func NewHTTPSource(url string, maxTries uint) *HTTPSource {
	if maxTries == 0 {
		maxTries = 1
	}
	return &HTTPSource{
		url: url,
		client: &http.Client{
			Timeout:   15 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		maxTries: maxTries,
	}
}

// Fetch downloads and decodes the catalog, retrying network errors and 5xx
// responses with exponential backoff. 4xx responses are not retried.
func (s *HTTPSource) Fetch(ctx context.Context) ([]domain.Product, error) {
	products, err := backoff.Retry(ctx, func() ([]domain.Product, error) {
		return s.fetchOnce(ctx)
	},
		backoff.WithBackOff(newBackOff()),
		backoff.WithMaxTries(s.maxTries),
		backoff.WithNotify(func(err error, next time.Duration) {
			logger.Warn(ctx).
				Err(err).
				Str("url", s.url).
				Dur("retry_in", next).
				Msg("Catalog fetch failed, retrying")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}

	logger.Info(ctx).
		Str("url", s.url).
		Int("products", len(products)).
		Msg("Catalog fetched")
	return products, nil
}

func (s *HTTPSource) fetchOnce(ctx context.Context) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("catalog server error: status %d", resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, backoff.Permanent(fmt.Errorf("unexpected catalog status %d", resp.StatusCode))
	}

	var body catalogResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, backoff.Permanent(fmt.Errorf("failed to decode catalog: %w", err))
	}
	if body.Products == nil {
		body.Products = []domain.Product{}
	}
	return body.Products, nil
}

func newBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	b.MaxInterval = 2 * time.Second
	return b
}

// Load fetches from src and hands the result to sink. On failure the sink is
// left untouched so a previously loaded catalog stays visible.
func Load(ctx context.Context, src Source, sink Sink) error {
	products, err := src.Fetch(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		logger.Error(ctx).Err(err).Msg("Catalog load failed")
		return err
	}
	sink.SetCatalog(products)
	return nil
}

// Invalidator is implemented by sources that cache their result
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

// Refresh reloads the catalog into sink. With invalidate set, a caching
// source is emptied first so the fetch reaches the origin.
func Refresh(ctx context.Context, src Source, sink Sink, invalidate bool) error {
	if inv, ok := src.(Invalidator); ok && invalidate {
		if err := inv.Invalidate(ctx); err != nil {
			logger.Warn(ctx).Err(err).Msg("Failed to invalidate catalog cache")
		}
	}
	return Load(ctx, src, sink)
}
