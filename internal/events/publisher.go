package events

//go:generate go run go.uber.org/mock/mockgen@latest -source=publisher.go -destination=mocks_test.go -package=events

import (
	"context"
	"time"

	"loyalty-server/internal/clients/kafka"
	"loyalty-server/internal/observability"

	"github.com/google/uuid"
)

// Producer writes event envelopes to the stream
type Producer interface {
	PublishEvents(ctx context.Context, events []kafka.EventMessage) error
}

// Publisher publishes domain events after their unit of work has committed.
// Publishing never fails the caller; errors are logged.
type Publisher struct {
	producer Producer
	logger   *observability.Logger
	now      func() time.Time
}

// NewPublisher creates a publisher. A nil producer makes Publish a no-op,
// used when no brokers are configured.
func NewPublisher(producer Producer, logger *observability.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		logger:   logger,
		now:      time.Now,
	}
}

// Publish sends events in one batch. The unit of work has already
// committed, so a request cancelled by its client still publishes.
func (p *Publisher) Publish(ctx context.Context, evts ...Event) {
	if p == nil || p.producer == nil || len(evts) == 0 {
		return
	}
	ctx = context.WithoutCancel(ctx)
	requestID := observability.FieldValue(ctx, "request_id")

	timestamp := p.now().UTC().Format(time.RFC3339)
	messages := make([]kafka.EventMessage, len(evts))
	for i, e := range evts {
		messages[i] = kafka.EventMessage{
			ID:         uuid.New().String(),
			RequestID:  requestID,
			Type:       e.Type,
			CustomerID: e.CustomerID.String(),
			Data:       e.Data,
			Timestamp:  timestamp,
		}
	}

	if err := p.producer.PublishEvents(ctx, messages); err != nil {
		p.logger.WarnWithError(observability.WithFields(ctx,
			observability.Field{Key: "event_count", Value: len(evts)},
			observability.Field{Key: "first_event_type", Value: evts[0].Type},
		), "failed to publish events", err)
	}
}
