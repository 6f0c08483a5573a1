package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/IBM/sarama"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/storefront/pkg/logger"
)

var (
	ErrMissingEventType = errors.New("message without event_type header")
	ErrNoHandler        = errors.New("no handler registered for event type")
)

// Consumer wraps Kafka consumer
type Consumer struct {
	consumer      sarama.ConsumerGroup
	groupID       string
	topics        []string
	handlers      map[string]EventHandler
	handlersMutex sync.RWMutex
}

// EventHandler handles the raw JSON payload of one event
type EventHandler func(ctx context.Context, payload []byte) error

// NewConsumer creates a new Kafka consumer
func NewConsumer(brokers []string, groupID string, topics []string) (*Consumer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_6_0_0
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	config.Consumer.Offsets.Initial = sarama.OffsetNewest
	config.Consumer.Return.Errors = true

	group, err := sarama.NewConsumerGroup(brokers, groupID, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka consumer: %w", err)
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Str("group_id", groupID).
		Strs("topics", topics).
		Msg("Kafka consumer initialized")

	c := newConsumer(groupID, topics)
	c.consumer = group
	return c, nil
}

func newConsumer(groupID string, topics []string) *Consumer {
	return &Consumer{
		groupID:  groupID,
		topics:   topics,
		handlers: make(map[string]EventHandler),
	}
}

// RegisterHandler registers an event handler for a specific event type
func (c *Consumer) RegisterHandler(eventType string, handler EventHandler) {
	c.handlersMutex.Lock()
	defer c.handlersMutex.Unlock()
	c.handlers[eventType] = handler
	logger.Logger.Info().
		Str("event_type", eventType).
		Msg("Event handler registered")
}

// Start starts consuming messages until ctx is cancelled
func (c *Consumer) Start(ctx context.Context) error {
	handler := &consumerGroupHandler{consumer: c}

	go func() {
		for {
			if err := c.consumer.Consume(ctx, c.topics, handler); err != nil {
				if errors.Is(err, sarama.ErrClosedConsumerGroup) {
					return
				}
				logger.Logger.Error().
					Err(err).
					Msg("Error from consumer")
			}
			if ctx.Err() != nil {
				logger.Logger.Info().Msg("Consumer context cancelled, stopping...")
				return
			}
		}
	}()

	go func() {
		for err := range c.consumer.Errors() {
			logger.Logger.Error().
				Err(err).
				Msg("Consumer error")
		}
	}()

	logger.Logger.Info().
		Strs("topics", c.topics).
		Str("group_id", c.groupID).
		Msg("Kafka consumer started")

	return nil
}

// Close closes the Kafka consumer
func (c *Consumer) Close() error {
	if c.consumer != nil {
		return c.consumer.Close()
	}
	return nil
}

// consumerGroupHandler implements sarama.ConsumerGroupHandler
type consumerGroupHandler struct {
	consumer *Consumer
}

func (h *consumerGroupHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *consumerGroupHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *consumerGroupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		_ = h.consumer.handleMessage(session.Context(), message)
		session.MarkMessage(message, "")
	}
	return nil
}

// handleMessage dispatches one message to its handler. Failures are logged and
// recorded on the span; the message is still marked so a poison event cannot
// stall the partition.
func (c *Consumer) handleMessage(ctx context.Context, message *sarama.ConsumerMessage) error {
	carrier := propagation.MapCarrier{}
	var eventType, eventID string
	for _, header := range message.Headers {
		switch key := string(header.Key); key {
		case "traceparent", "tracestate":
			carrier[key] = string(header.Value)
		case "event_type":
			eventType = string(header.Value)
		case "event_id":
			eventID = string(header.Value)
		}
	}
	ctx = otel.GetTextMapPropagator().Extract(ctx, carrier)

	tracer := otel.Tracer("kafka-consumer")
	ctx, span := tracer.Start(ctx, "kafka.consume."+eventType,
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.source", message.Topic),
			attribute.String("messaging.source_kind", "topic"),
			attribute.Int("messaging.kafka.partition", int(message.Partition)),
			attribute.Int64("messaging.kafka.offset", message.Offset),
			attribute.String("event.type", eventType),
			attribute.String("event.id", eventID),
		),
	)
	defer span.End()

	if eventType == "" {
		span.SetStatus(codes.Error, ErrMissingEventType.Error())
		logger.Warn(ctx).Str("topic", message.Topic).Msg("Message without event_type header")
		return ErrMissingEventType
	}

	c.handlersMutex.RLock()
	handler, exists := c.handlers[eventType]
	c.handlersMutex.RUnlock()

	if !exists {
		span.SetStatus(codes.Error, ErrNoHandler.Error())
		logger.Warn(ctx).
			Str("event_type", eventType).
			Msg("No handler registered for event type")
		return fmt.Errorf("%w: %s", ErrNoHandler, eventType)
	}

	if err := handler(ctx, message.Value); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to handle event")
		logger.Error(ctx).
			Err(err).
			Str("event_type", eventType).
			Str("event_id", eventID).
			Msg("Failed to handle event")
		return err
	}

	span.SetStatus(codes.Ok, "Event handled successfully")
	logger.Info(ctx).
		Str("event_type", eventType).
		Str("event_id", eventID).
		Msg("Event handled successfully")
	return nil
}

// CatalogRefreshHandler decodes catalog.refresh events and passes them to refresh
func CatalogRefreshHandler(refresh func(ctx context.Context, event CatalogRefreshEvent) error) EventHandler {
	return func(ctx context.Context, payload []byte) error {
		var event CatalogRefreshEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			return fmt.Errorf("failed to unmarshal event: %w", err)
		}
		return refresh(ctx, event)
	}
}
