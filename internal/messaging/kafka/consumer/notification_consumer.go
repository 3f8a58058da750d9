package consumer

import (
	"context"
	"encoding/json"
	"time"

	"go-timeoff/internal/events"
	"go-timeoff/internal/messaging/kafka"
	"go-timeoff/internal/notification"
	"go-timeoff/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Notifier is satisfied by *notification.Fanout.
type Notifier interface {
	Notify(ctx context.Context, ev events.Notification) notification.FanoutResult
}

const fetchRetryDelay = 500 * time.Millisecond

// ConsumeNotifications drives the fan-out for every event on the topic.
// Offsets are committed whatever the channels report; failures are only
// logged. When dedup is set, an outbox id is fanned out at most once.
func ConsumeNotifications(
	ctx context.Context,
	reader MessageReader,
	notifier Notifier,
	dedup Deduplicator,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.notification")
	log.Info("notification consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("notification consumer stopped")
				return
			}
			log.Error("fetch notification message failed", zap.Error(err))
			select {
			case <-ctx.Done():
				log.Info("notification consumer stopped")
				return
			case <-time.After(fetchRetryDelay):
			}
			continue
		}

		var event events.Notification
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode notification event failed",
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		msgCtx := ctx
		if rid := headerValue(msg, "request_id"); rid != "" {
			msgCtx = contextutil.WithRequestID(ctx, rid)
		}

		if !claimDelivery(msgCtx, dedup, msg, log) {
			if err := reader.CommitMessages(ctx, msg); err != nil {
				log.Error("commit duplicate notification failed", zap.Error(err))
			}
			continue
		}

		result := notifier.Notify(msgCtx, event)
		if len(result.Errors) > 0 {
			log.Warn("notification delivered with channel failures",
				zap.String("event_type", event.Type),
				zap.String("request_id", event.RequestID),
				zap.Bool("sheet_ok", result.SheetOK),
				zap.Bool("email_ok", result.EmailOK),
				zap.Strings("errors", result.Errors),
			)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit notification message failed", zap.Error(err))
			continue
		}

		log.Debug("notification handled",
			zap.String("event_type", event.Type),
			zap.Int64("offset", msg.Offset),
		)
	}
}

// claimDelivery reports whether msg should be fanned out. Messages without an
// outbox id, and claim errors, are delivered.
func claimDelivery(ctx context.Context, dedup Deduplicator, msg kafkago.Message, log *zap.Logger) bool {
	id := headerValue(msg, kafka.HeaderOutboxID)
	if dedup == nil || id == "" {
		return true
	}

	claimed, err := dedup.Claim(ctx, id)
	if err != nil {
		log.Warn("delivery claim failed, notifying anyway", zap.String("outbox_id", id), zap.Error(err))
		return true
	}
	if !claimed {
		log.Info("duplicate notification skipped",
			zap.String("outbox_id", id),
			zap.Int64("offset", msg.Offset),
		)
	}
	return claimed
}
