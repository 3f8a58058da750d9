package notification

import (
	"context"
	"fmt"

	"go-timeoff/internal/events"
	"go-timeoff/internal/messaging/kafka"
	"go-timeoff/internal/shared/contextutil"

	"go.uber.org/zap"
)

// OutboxPublisher implements events.Publisher by writing an outbox row; the
// producer worker relays it to Kafka.
type OutboxPublisher struct {
	repo   kafka.OutboxRepository
	logger *zap.Logger
}

func NewOutboxPublisher(repo kafka.OutboxRepository, logger ...*zap.Logger) *OutboxPublisher {
	l := zap.L().Named("notification.publisher")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.publisher")
	}
	return &OutboxPublisher{repo: repo, logger: l}
}

func (p *OutboxPublisher) Publish(ctx context.Context, n events.Notification) error {
	aggregateType := n.FormType
	if aggregateType == "" {
		aggregateType = "notification"
	}
	aggregateID := n.RequestID
	if aggregateID == "" {
		aggregateID = n.OrganizationID
	}

	ev, err := kafka.NewOutboxEvent(events.NotificationTopic, n.Type, aggregateType, aggregateID, contextutil.GetRequestID(ctx), n)
	if err != nil {
		return err
	}
	if err := p.repo.Create(ctx, ev); err != nil {
		return fmt.Errorf("enqueue notification: %w", err)
	}

	p.logger.Debug("notification enqueued",
		zap.String("outbox_id", ev.ID),
		zap.String("event_type", n.Type),
		zap.String("aggregate_id", ev.AggregateID),
	)
	return nil
}

var _ events.Publisher = (*OutboxPublisher)(nil)
