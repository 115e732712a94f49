package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"loyalty-server/internal/observability"

	"github.com/segmentio/kafka-go"
)

const defaultWriteTimeout = 5 * time.Second

// Producer handles publishing events to Kafka
type Producer struct {
	writer       *kafka.Writer
	writeTimeout time.Duration
	logger       *observability.Logger
}

// ProducerConfig contains configuration for Kafka producer
type ProducerConfig struct {
	Brokers []string
	Topic   string
	// WriteTimeout bounds one batch write; zero means 5s
	WriteTimeout time.Duration
}

// NewProducer creates a new Kafka producer
func NewProducer(config ProducerConfig, logger *observability.Logger) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(config.Brokers...),
		Topic:        config.Topic,
		Balancer:     &kafka.Hash{},
		Async:        false,
		Compression:  kafka.Snappy,
		BatchSize:    100,
		RequiredAcks: kafka.RequireOne,
	}

	timeout := config.WriteTimeout
	if timeout <= 0 {
		timeout = defaultWriteTimeout
	}

	return &Producer{
		writer:       writer,
		writeTimeout: timeout,
		logger:       logger,
	}
}

// EventMessage is the envelope written to the loyalty events topic. Messages
// are keyed by customer so one customer's events stay ordered on a partition.
type EventMessage struct {
	ID         string                 `json:"id"`
	RequestID  string                 `json:"request_id,omitempty"`
	Type       string                 `json:"type"`
	CustomerID string                 `json:"customer_id"`
	Data       map[string]interface{} `json:"data"`
	Timestamp  string                 `json:"timestamp"`
}

func toMessage(event EventMessage) (kafka.Message, error) {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, err
	}
	headers := []kafka.Header{
		{Key: "event_type", Value: []byte(event.Type)},
		{Key: "customer_id", Value: []byte(event.CustomerID)},
	}
	if event.RequestID != "" {
		headers = append(headers, kafka.Header{Key: "request_id", Value: []byte(event.RequestID)})
	}
	return kafka.Message{
		Key:     []byte(event.CustomerID),
		Value:   eventBytes,
		Headers: headers,
	}, nil
}

// PublishEvent publishes an event to Kafka
func (p *Producer) PublishEvent(ctx context.Context, event EventMessage) error {
	return p.PublishEvents(ctx, []EventMessage{event})
}

// PublishEvents publishes multiple events in one batch. Events that cannot be
// marshalled are logged and skipped.
func (p *Producer) PublishEvents(ctx context.Context, events []EventMessage) error {
	if len(events) == 0 {
		return nil
	}

	messages := make([]kafka.Message, 0, len(events))
	for _, event := range events {
		msg, err := toMessage(event)
		if err != nil {
			p.logger.Error(observability.WithFields(ctx, observability.Field{Key: "event_id", Value: event.ID}),
				"failed to marshal event", err)
			continue
		}
		messages = append(messages, msg)
	}
	if len(messages) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, p.writeTimeout)
	defer cancel()
	if err := p.writer.WriteMessages(ctx, messages...); err != nil {
		p.logger.Error(ctx, "failed to write messages to kafka", err)
		return fmt.Errorf("failed to write messages to kafka: %w", err)
	}

	p.logger.Debug(ctx, fmt.Sprintf("published %d events to kafka", len(messages)))
	return nil
}

// Close closes the Kafka producer
func (p *Producer) Close() error {
	return p.writer.Close()
}
