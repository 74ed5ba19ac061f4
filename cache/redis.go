package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisBackend stores entries in Redis so multiple processes can share
// one cache. Entries keep their own StoredAt/TTL for the manager's
// inclusive expiry check; the Redis expiration is set slightly past the
// entry TTL purely as garbage collection.
type RedisBackend struct {
	client *redis.Client
	prefix string
}

// NewRedisBackend wraps an existing go-redis client. The prefix
// namespaces cache keys within a shared Redis instance.
func NewRedisBackend(client *redis.Client, prefix string) *RedisBackend {
	if prefix == "" {
		prefix = "espn:cache"
	}
	return &RedisBackend{client: client, prefix: prefix}
}

func (b *RedisBackend) redisKey(key string) string {
	return b.prefix + ":" + key
}

func (b *RedisBackend) Get(ctx context.Context, key string) (Entry, bool, error) {
	data, err := b.client.Get(ctx, b.redisKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("redis get: %w", err)
	}

	var de diskEntry
	if err := json.Unmarshal(data, &de); err != nil {
		_ = b.client.Del(ctx, b.redisKey(key)).Err()
		return Entry{}, false, nil
	}
	return Entry{
		Payload:  de.Payload,
		StoredAt: de.StoredAt,
		TTL:      time.Duration(de.TTLSec * float64(time.Second)),
	}, true, nil
}

func (b *RedisBackend) Put(ctx context.Context, key string, entry Entry) error {
	data, err := json.Marshal(diskEntry{
		StoredAt: entry.StoredAt,
		TTLSec:   entry.TTL.Seconds(),
		Payload:  json.RawMessage(entry.Payload),
	})
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}
	// Keep the Redis key a little longer than the entry TTL so the
	// manager, not Redis, decides the expiry boundary.
	expiration := entry.TTL + time.Minute
	if err := b.client.Set(ctx, b.redisKey(key), data, expiration).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (b *RedisBackend) Remove(ctx context.Context, key string) error {
	return b.client.Del(ctx, b.redisKey(key)).Err()
}

func (b *RedisBackend) Clear(ctx context.Context) error {
	iter := b.client.Scan(ctx, 0, b.prefix+":*", 0).Iterator()
	for iter.Next(ctx) {
		if err := b.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
