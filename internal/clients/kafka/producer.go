package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"voice-crm/internal/observability"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer handles publishing CRM events to Kafka
type Producer struct {
	writer messageWriter
	logger *observability.Logger
	now    func() time.Time
}

// ProducerConfig contains configuration for Kafka producer
type ProducerConfig struct {
	Brokers []string
	Topic   string
}

// NewProducer creates a new Kafka producer. Writes are async: WriteMessages
// only enqueues, and delivery failures are logged from the completion callback.
func NewProducer(config ProducerConfig, logger *observability.Logger) *Producer {
	writer := newWriter(config)
	p := newProducer(writer, logger)
	writer.Completion = p.onCompletion
	return p
}

func newWriter(config ProducerConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(config.Brokers...),
		Topic:        config.Topic,
		Balancer:     &kafka.Hash{},
		Compression:  kafka.Snappy,
		BatchSize:    100,
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		MaxAttempts:  3,
		WriteTimeout: 5 * time.Second,
	}
}

func newProducer(writer messageWriter, logger *observability.Logger) *Producer {
	return &Producer{writer: writer, logger: logger, now: time.Now}
}

// EventMessage represents an event message structure
type EventMessage struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	ContactID string         `json:"contact_id,omitempty"`
	RequestID string         `json:"request_id,omitempty"`
	Data      map[string]any `json:"data"`
	Timestamp string         `json:"timestamp"`
}

// PublishEvent publishes an event to Kafka. Events for the same contact
// share a partition key so they stay ordered.
func (p *Producer) PublishEvent(ctx context.Context, event EventMessage) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "event_type", Value: event.Type},
		observability.Field{Key: "event_id", Value: event.ID},
	)

	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error(ctx, "failed to marshal event", err)
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	key := event.ContactID
	if key == "" {
		key = event.ID
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: eventBytes,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error(ctx, "failed to write message to kafka", err)
		return fmt.Errorf("failed to write message to kafka: %w", err)
	}

	p.logger.Debug(ctx, fmt.Sprintf("published event %s to kafka", event.Type))
	return nil
}

// Publish builds an EventMessage from a CRM operation and publishes it.
// Failures are logged and swallowed.
func (p *Producer) Publish(ctx context.Context, eventType string, data map[string]any) {
	if p == nil {
		return
	}

	event := EventMessage{
		ID:        uuid.NewString(),
		Type:      eventType,
		Data:      data,
		Timestamp: p.now().UTC().Format(time.RFC3339),
	}
	if id, ok := data["contact_id"].(string); ok {
		event.ContactID = id
	}
	event.RequestID, _ = observability.FieldValue(ctx, "request_id").(string)

	_ = p.PublishEvent(ctx, event)
}

func (p *Producer) onCompletion(messages []kafka.Message, err error) {
	if err == nil {
		return
	}
	for _, msg := range messages {
		ctx := observability.WithFields(context.Background(),
			observability.Field{Key: "event_type", Value: headerValue(msg.Headers, "event_type")},
			observability.Field{Key: "partition_key", Value: string(msg.Key)},
		)
		p.logger.Error(ctx, "failed to deliver event to kafka", err)
	}
}

func headerValue(headers []kafka.Header, key string) string {
	for _, h := range headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

// Close flushes pending events and closes the Kafka producer
func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
