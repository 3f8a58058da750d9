package kafka_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go-timeoff/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOutboxEvent(t *testing.T) {
	event, err := kafka.NewOutboxEvent("topic.v1", "approved", "leave_request", "", "req-1", map[string]string{"type": "approved"})
	require.NoError(t, err)

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, event.ID, event.AggregateID)
	assert.Equal(t, kafka.OutboxStatusPending, event.Status)
	assert.NoError(t, kafka.ValidateOutboxEvent(event))

	var payload map[string]string
	require.NoError(t, json.Unmarshal(event.Payload, &payload))
	assert.Equal(t, "approved", payload["type"])
}

func TestValidateOutboxEvent(t *testing.T) {
	valid := kafka.OutboxEvent{ID: "1", Topic: "t", Payload: []byte("{}"), Status: kafka.OutboxStatusPending}
	assert.NoError(t, kafka.ValidateOutboxEvent(valid))

	noTopic := valid
	noTopic.Topic = ""
	assert.Error(t, kafka.ValidateOutboxEvent(noTopic))

	badStatus := valid
	badStatus.Status = "queued"
	assert.Error(t, kafka.ValidateOutboxEvent(badStatus))
}

func TestOutboxRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := kafka.NewOutboxRepository(db)
	event, err := kafka.NewOutboxEvent("topic.v1", "new_request", "submission", "", "", map[string]string{"a": "b"})
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO outbox_events").
		WithArgs(event.ID, event.RequestID, event.AggregateType, event.AggregateID, event.EventType, event.Topic, event.Payload, event.Status).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), event))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_ListPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := kafka.NewOutboxRepository(db)
	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "request_id", "aggregate_type", "aggregate_id", "event_type", "topic", "payload", "status", "retry_count", "next_retry_at"}).
		AddRow("e1", "", "submission", "a1", "new_request", "topic.v1", []byte(`{}`), "pending", 0, now).
		AddRow("e2", "rid-2", "leave_request", "a2", "approved", "topic.v1", []byte(`{}`), "failed", 2, now)

	mock.ExpectQuery("FROM outbox_events").
		WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, 10).
		WillReturnRows(rows)

	events, err := repo.ListPending(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "rid-2", events[1].RequestID)
	assert.Equal(t, 2, events[1].RetryCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkFailed(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := kafka.NewOutboxRepository(db)
	mock.ExpectExec("UPDATE outbox_events").
		WithArgs("e1", kafka.OutboxStatusFailed, "broker down", kafka.MaxOutboxAttempts, kafka.OutboxStatusDead).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.MarkFailed(context.Background(), "e1", "broker down"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
