package repository

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/storefront/internal/cart/domain"
)

// TracingStore wraps a Store with spans
type TracingStore struct {
	next    domain.Store
	backend string
	tracer  trace.Tracer
}

// NewTracingStore creates a tracing decorator; backend names the wrapped store in span attributes
func NewTracingStore(next domain.Store, backend string) *TracingStore {
	return &TracingStore{
		next:    next,
		backend: backend,
		tracer:  otel.Tracer("cart-repository"),
	}
}

// Load with tracing
func (s *TracingStore) Load(ctx context.Context, key string) ([]byte, error) {
	ctx, span := s.tracer.Start(ctx, "repository.Load",
		trace.WithAttributes(
			attribute.String("store.backend", s.backend),
			attribute.String("store.key", key),
		),
	)
	defer span.End()

	data, err := s.next.Load(ctx, key)
	if errors.Is(err, domain.ErrRecordNotFound) {
		span.SetAttributes(attribute.Bool("store.found", false))
		return nil, err
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.Bool("store.found", true),
		attribute.Int("store.bytes", len(data)),
	)
	return data, nil
}

// Save with tracing
func (s *TracingStore) Save(ctx context.Context, key string, data []byte) error {
	ctx, span := s.tracer.Start(ctx, "repository.Save",
		trace.WithAttributes(
			attribute.String("store.backend", s.backend),
			attribute.String("store.key", key),
			attribute.Int("store.bytes", len(data)),
		),
	)
	defer span.End()

	if err := s.next.Save(ctx, key, data); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
