// Package event contains the event publisher backends. Exactly one backend
// is selected at startup; delivery is fire-and-forget.
package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/accountability-atlas/user-service/internal/logger"
	"github.com/accountability-atlas/user-service/internal/model"
)

// LoggingPublisher writes events to the application log. Used in
// deployments without a message queue.
type LoggingPublisher struct {
	logger *logger.Logger
}

var _ model.EventPublisher = (*LoggingPublisher)(nil)

func NewLoggingPublisher(logger *logger.Logger) *LoggingPublisher {
	return &LoggingPublisher{logger: logger}
}

func (p *LoggingPublisher) Publish(_ context.Context, event model.DomainEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	p.logger.Info("Publishing event", "type", event.EventType(), "event", string(body))
	return nil
}
