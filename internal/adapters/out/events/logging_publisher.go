package events

import (
	"context"

	"foodorder/internal/core/ports"

	"go.uber.org/zap"
)

// LoggingPublisher reports failed deliveries of the wrapped publisher at warn
// level and passes the error through unchanged.
type LoggingPublisher struct {
	next   ports.OrderEventPublisher
	logger *zap.Logger
}

func NewLoggingPublisher(next ports.OrderEventPublisher, logger *zap.Logger) *LoggingPublisher {
	return &LoggingPublisher{next: next, logger: logger}
}

func (p *LoggingPublisher) Publish(ctx context.Context, event ports.OrderEvent) error {
	err := p.next.Publish(ctx, event)
	if err != nil {
		p.logger.Warn("failed to publish order event",
			zap.String("event_type", event.Type),
			zap.String("order_id", event.OrderID),
			zap.String("order_number", event.OrderNumber),
			zap.Error(err),
		)
	}
	return err
}
