package publishers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Behyna/sms-services/smsbroadcast/internal/service"
	"github.com/Behyna/sms-services/smsbroadcast/pkg/mq"
	"go.uber.org/zap"
)

var _ service.EventDispatcher = (*EventPublisher)(nil)

// EventPublisher writes message events to a RabbitMQ queue through the
// default exchange.
type EventPublisher struct {
	publisher mq.Publisher
	queue     string
	logger    *zap.Logger
}

func NewEventPublisher(publisher mq.Publisher, queue string, logger *zap.Logger) *EventPublisher {
	return &EventPublisher{publisher: publisher, queue: queue, logger: logger}
}

func (p *EventPublisher) Dispatch(ctx context.Context, event service.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encoding event: %w", err)
	}

	if err := p.publisher.Publish(ctx, "", p.queue, body); err != nil {
		p.logger.Error("Failed to publish event",
			zap.Error(err),
			zap.String("type", string(event.Type)),
			zap.String("queue", p.queue))
		return err
	}

	p.logger.Debug("Event published",
		zap.String("type", string(event.Type)),
		zap.String("recipient", event.Recipient))

	return nil
}
