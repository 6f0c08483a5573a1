package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/storefront/internal/cart"
	"github.com/tair/storefront/pkg/logger"
)

// Publisher wraps Kafka producer
type Publisher struct {
	producer sarama.SyncProducer
}

// NewPublisher creates a new Kafka publisher
func NewPublisher(brokers []string) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = 3
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.MaxMessageBytes = 1000000

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Msg("Kafka publisher initialized")

	return NewPublisherWithProducer(producer), nil
}

// NewPublisherWithProducer wraps an existing producer
func NewPublisherWithProducer(producer sarama.SyncProducer) *Publisher {
	return &Publisher{producer: producer}
}

// PublishCartUpdated publishes a cart updated event with tracing
func (p *Publisher) PublishCartUpdated(ctx context.Context, event CartUpdatedEvent) error {
	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}
	event.EventType = EventTypeCartUpdated
	event.Timestamp = time.Now().UTC()

	return p.publish(ctx, TopicCartUpdated, EventTypeCartUpdated, event.EventID, event.CartKey, event,
		attribute.String("cart.op", event.Op),
		attribute.Int("cart.items", event.Items),
		attribute.Float64("cart.total", event.Total),
	)
}

// PublishCatalogRefresh publishes a catalog refresh request
func (p *Publisher) PublishCatalogRefresh(ctx context.Context, event CatalogRefreshEvent) error {
	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}
	event.EventType = EventTypeCatalogRefresh
	event.Timestamp = time.Now().UTC()

	return p.publish(ctx, TopicCatalogRefresh, EventTypeCatalogRefresh, event.EventID, "catalog", event,
		attribute.Bool("catalog.invalidate_cache", event.InvalidateCache),
	)
}

func (p *Publisher) publish(ctx context.Context, topic, eventType, eventID, key string, event any, attrs ...attribute.KeyValue) error {
	tracer := otel.Tracer("kafka-publisher")
	ctx, span := tracer.Start(ctx, "kafka.publish."+eventType,
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination", topic),
			attribute.String("messaging.destination_kind", "topic"),
			attribute.String("event.type", eventType),
			attribute.String("event.id", eventID),
		),
	)
	defer span.End()
	span.SetAttributes(attrs...)

	eventBytes, err := json.Marshal(event)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to marshal event")
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// Inject trace context into Kafka headers
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	headers := []sarama.RecordHeader{
		{Key: []byte("event_type"), Value: []byte(eventType)},
		{Key: []byte("event_id"), Value: []byte(eventID)},
	}
	for k, v := range carrier {
		headers = append(headers, sarama.RecordHeader{Key: []byte(k), Value: []byte(v)})
	}

	msg := &sarama.ProducerMessage{
		Topic:   topic,
		Key:     sarama.StringEncoder(key),
		Value:   sarama.ByteEncoder(eventBytes),
		Headers: headers,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to send message")
		logger.Error(ctx).
			Err(err).
			Str("topic", topic).
			Str("event_id", eventID).
			Msg("Failed to publish event")
		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	span.SetAttributes(
		attribute.Int("messaging.kafka.partition", int(partition)),
		attribute.Int64("messaging.kafka.offset", offset),
	)
	span.SetStatus(codes.Ok, "Event published successfully")

	logger.Debug(ctx).
		Str("event_id", eventID).
		Str("event_type", eventType).
		Str("topic", topic).
		Int32("partition", partition).
		Int64("offset", offset).
		Msg("Event published")

	return nil
}

// CartObserver returns a cart observer that publishes every change under
// cartKey. Publish failures are logged and never fail the cart mutation.
func (p *Publisher) CartObserver(cartKey string) cart.Observer {
	return func(ctx context.Context, change cart.Change) {
		event := CartUpdatedEvent{
			CartKey:   cartKey,
			Op:        string(change.Op),
			ProductID: change.ProductID,
			Quantity:  change.Quantity,
			Items:     change.Cart.Count(),
			Lines:     change.Cart.Len(),
			Total:     change.Cart.Total(),
		}
		if err := p.PublishCartUpdated(ctx, event); err != nil {
			logger.Warn(ctx).Err(err).Str("op", event.Op).Msg("Cart update not published")
		}
	}
}

// Close closes the Kafka producer
func (p *Publisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}
