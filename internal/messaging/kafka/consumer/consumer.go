package consumer

import (
	"context"
	"time"

	"go-timeoff/internal/config"
	"go-timeoff/internal/events"

	kafkago "github.com/segmentio/kafka-go"
)

// MessageReader is the slice of *kafkago.Reader the consumers use.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// NewNotificationReader joins the consumer group on the notification topic.
func NewNotificationReader(cfg config.KafkaConfig) *kafkago.Reader {
	return kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Broker},
		GroupID:        cfg.ConsumerGroup,
		Topic:          events.NotificationTopic,
		MinBytes:       1,
		MaxBytes:       10e6,
		MaxWait:        time.Second,
		CommitInterval: 0,
	})
}

func headerValue(msg kafkago.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
