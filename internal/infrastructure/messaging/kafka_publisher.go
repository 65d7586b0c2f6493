package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/vitorsantos08-ui/API/internal/domain/event"
	"github.com/vitorsantos08-ui/API/internal/domain/port"
	pkgkafka "github.com/vitorsantos08-ui/API/pkg/kafka"
)

// Compile-time interface check.
var _ port.EventPublisher = (*KafkaPublisher)(nil)

// KafkaPublisher implements port.EventPublisher using Kafka.
type KafkaPublisher struct {
	producer *pkgkafka.Producer
	logger   *slog.Logger
}

// NewKafkaPublisher creates a new Kafka event publisher.
func NewKafkaPublisher(producer *pkgkafka.Producer, logger *slog.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		producer: producer,
		logger:   logger,
	}
}

// Publish sends domain events to Kafka, keyed by aggregate ID so all events
// for one assessment land in the same partition.
func (p *KafkaPublisher) Publish(ctx context.Context, events ...event.DomainEvent) error {
	messages := make([]pkgkafka.Message, 0, len(events))
	for _, evt := range events {
		payload, err := json.Marshal(evt)
		if err != nil {
			return fmt.Errorf("failed to marshal event %s: %w", evt.EventType(), err)
		}

		p.logger.DebugContext(ctx, "publishing event",
			slog.String("event_type", evt.EventType()),
			slog.Int("payload_size", len(payload)),
		)

		messages = append(messages, pkgkafka.Message{
			Key:   []byte(evt.AggregateID().String()),
			Value: payload,
			Headers: map[string]string{
				"event_type": evt.EventType(),
			},
		})
	}

	if err := p.producer.Publish(ctx, messages...); err != nil {
		return fmt.Errorf("failed to publish events: %w", err)
	}

	return nil
}
