package notification_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go-timeoff/internal/events"
	"go-timeoff/internal/messaging/kafka"
	kafkamock "go-timeoff/internal/messaging/kafka/mock"
	"go-timeoff/internal/notification"
	"go-timeoff/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOutboxPublisher_Publish(t *testing.T) {
	t.Run("writes a pending outbox row keyed by request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkamock.NewMockOutboxRepository(ctrl)
		ctx := contextutil.WithRequestID(context.Background(), "rid-1")

		ev := dayOffEvent("org-456")
		ev.RequestID = "req-9"

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, out kafka.OutboxEvent) error {
			assert.Equal(t, events.NotificationTopic, out.Topic)
			assert.Equal(t, events.TypeNewRequest, out.EventType)
			assert.Equal(t, events.FormDayOff, out.AggregateType)
			assert.Equal(t, "req-9", out.AggregateID)
			assert.Equal(t, "rid-1", out.RequestID)
			assert.Equal(t, kafka.OutboxStatusPending, out.Status)

			var decoded events.Notification
			require.NoError(t, json.Unmarshal(out.Payload, &decoded))
			assert.Equal(t, "Sam Staff", decoded.EmployeeName)
			return nil
		})

		require.NoError(t, notification.NewOutboxPublisher(repo).Publish(ctx, ev))
	})

	t.Run("falls back to organization key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkamock.NewMockOutboxRepository(ctrl)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, out kafka.OutboxEvent) error {
			assert.Equal(t, "org-456", out.AggregateID)
			return nil
		})

		require.NoError(t, notification.NewOutboxPublisher(repo).Publish(context.Background(), dayOffEvent("org-456")))
	})

	t.Run("surfaces repository errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkamock.NewMockOutboxRepository(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))

		err := notification.NewOutboxPublisher(repo).Publish(context.Background(), dayOffEvent(""))
		assert.ErrorContains(t, err, "insert failed")
	})
}
