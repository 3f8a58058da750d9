package consumer

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultDeliveryTTL covers the outbox retry window many times over.
const DefaultDeliveryTTL = 7 * 24 * time.Hour

// Deduplicator records which outbox events already reached the fan-out.
// Claim returns false when id was claimed before.
type Deduplicator interface {
	Claim(ctx context.Context, id string) (bool, error)
}

type RedisDeduplicator struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisDeduplicator(rdb *redis.Client, ttl time.Duration) *RedisDeduplicator {
	if ttl <= 0 {
		ttl = DefaultDeliveryTTL
	}
	return &RedisDeduplicator{rdb: rdb, ttl: ttl}
}

func DeliveryKey(id string) string {
	return "notification:delivered:" + id
}

func (d *RedisDeduplicator) Claim(ctx context.Context, id string) (bool, error) {
	return d.rdb.SetNX(ctx, DeliveryKey(id), time.Now().UTC().Format(time.RFC3339), d.ttl).Result()
}
