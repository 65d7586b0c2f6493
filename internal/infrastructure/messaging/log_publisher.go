package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/vitorsantos08-ui/API/internal/domain/event"
	"github.com/vitorsantos08-ui/API/internal/domain/port"
)

// Compile-time interface check.
var _ port.EventPublisher = (*LogPublisher)(nil)

// LogPublisher implements port.EventPublisher by logging events. The console
// binary uses it instead of a broker.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher creates a logging event publisher.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Publish records each event at debug level.
func (p *LogPublisher) Publish(ctx context.Context, events ...event.DomainEvent) error {
	for _, evt := range events {
		payload, err := json.Marshal(evt)
		if err != nil {
			return fmt.Errorf("failed to marshal event %s: %w", evt.EventType(), err)
		}
		p.logger.DebugContext(ctx, "domain event",
			slog.String("event_type", evt.EventType()),
			slog.String("payload", string(payload)),
		)
	}
	return nil
}
