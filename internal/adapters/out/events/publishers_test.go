package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"foodorder/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeWriter struct {
	messages []kafka.Message
	deadline bool
	err      error
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	_, w.deadline = ctx.Deadline()
	w.messages = append(w.messages, msgs...)
	return w.err
}

func (w *fakeWriter) Close() error { return nil }

type fakeChannel struct {
	channel string
	payload any
	err     error
}

func (c *fakeChannel) Publish(_ context.Context, channel string, message any) *redis.IntCmd {
	c.channel = channel
	c.payload = message
	return redis.NewIntResult(1, c.err)
}

func (c *fakeChannel) Close() error { return nil }

type failingPublisher struct{ err error }

func (p failingPublisher) Publish(context.Context, ports.OrderEvent) error { return p.err }

func statusChanged() ports.OrderEvent {
	return ports.OrderEvent{
		Type:        ports.OrderStatusChanged,
		OrderID:     "4f1c2b9e-8d7a-4c55-9a0e-2a1f7e9b3c11",
		OrderNumber: "20240305-0017",
		CustomerID:  "0b6f3d52-7e2a-4b8c-9f41-6c2d1e8a7b90",
		OldStatus:   "READY",
		NewStatus:   "PACKED",
		Version:     6,
		OccurredAt:  time.Date(2024, time.March, 5, 11, 0, 0, 0, time.UTC),
	}
}

func TestKafkaPublisher_Publish(t *testing.T) {
	writer := &fakeWriter{}
	publisher := &KafkaPublisher{writer: writer}
	event := statusChanged()

	require.NoError(t, publisher.Publish(context.Background(), event))

	require.Len(t, writer.messages, 1)
	msg := writer.messages[0]
	assert.True(t, writer.deadline, "writes are bounded by a timeout")
	assert.Equal(t, event.OrderID, string(msg.Key))
	assert.Equal(t, []kafka.Header{{Key: "event_type", Value: []byte("order.status_changed")}}, msg.Headers)

	var decoded ports.OrderEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, event, decoded)
	assert.NotContains(t, string(msg.Value), "courier_id", "empty optional fields are omitted")
}

func TestKafkaPublisher_PublishError(t *testing.T) {
	writer := &fakeWriter{err: errors.New("leader not available")}
	publisher := &KafkaPublisher{writer: writer}

	err := publisher.Publish(context.Background(), statusChanged())

	require.EqualError(t, err, "leader not available")
}

func TestRedisPublisher_Publish(t *testing.T) {
	client := &fakeChannel{}
	publisher := &RedisPublisher{client: client, channel: "order-events"}

	require.NoError(t, publisher.Publish(context.Background(), statusChanged()))

	assert.Equal(t, "order-events", client.channel)
	payload, ok := client.payload.([]byte)
	require.True(t, ok)
	assert.JSONEq(t, `{
		"type": "order.status_changed",
		"order_id": "4f1c2b9e-8d7a-4c55-9a0e-2a1f7e9b3c11",
		"order_number": "20240305-0017",
		"customer_id": "0b6f3d52-7e2a-4b8c-9f41-6c2d1e8a7b90",
		"old_status": "READY",
		"new_status": "PACKED",
		"version": 6,
		"occurred_at": "2024-03-05T11:00:00Z"
	}`, string(payload))
}

func TestRedisPublisher_PublishError(t *testing.T) {
	publisher := &RedisPublisher{client: &fakeChannel{err: redis.ErrClosed}, channel: "order-events"}

	err := publisher.Publish(context.Background(), statusChanged())

	require.ErrorIs(t, err, redis.ErrClosed)
}

func TestNopPublisher(t *testing.T) {
	assert.NoError(t, NewNopPublisher().Publish(context.Background(), statusChanged()))
}

func TestLoggingPublisher(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	broken := errors.New("broker down")

	t.Run("failure is logged and returned", func(t *testing.T) {
		publisher := NewLoggingPublisher(failingPublisher{err: broken}, zap.New(core))

		err := publisher.Publish(context.Background(), statusChanged())

		require.ErrorIs(t, err, broken)
		entries := logs.TakeAll()
		require.Len(t, entries, 1)
		assert.Equal(t, "failed to publish order event", entries[0].Message)
		assert.Equal(t, "20240305-0017", entries[0].ContextMap()["order_number"])
	})

	t.Run("success is silent", func(t *testing.T) {
		publisher := NewLoggingPublisher(NewNopPublisher(), zap.New(core))

		require.NoError(t, publisher.Publish(context.Background(), statusChanged()))
		assert.Zero(t, logs.Len())
	})
}
