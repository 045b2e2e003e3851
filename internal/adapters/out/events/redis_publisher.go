package events

import (
	"context"
	"encoding/json"
	"fmt"

	"foodorder/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

type channelPublisher interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
	Close() error
}

// RedisPublisher broadcasts events on a Pub/Sub channel. Subscribers that are
// not connected miss the event.
type RedisPublisher struct {
	client  channelPublisher
	channel string
}

// NewRedisPublisher connects to addr and fails fast if the server is unreachable.
func NewRedisPublisher(ctx context.Context, addr, password string, db int, channel string) (*RedisPublisher, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", addr, err)
	}

	return &RedisPublisher{client: client, channel: channel}, nil
}

func (p *RedisPublisher) Publish(ctx context.Context, event ports.OrderEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event.Type, err)
	}

	return p.client.Publish(ctx, p.channel, payload).Err()
}

func (p *RedisPublisher) Close() error {
	return p.client.Close()
}
