package audiocache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const DefaultRedisPrefix = "janseva:audio:"

// RedisCache relies on key expiry, so PurgeExpired has nothing to do.
type RedisCache struct {
	rdb    redis.UniversalClient
	prefix string
	ttl    time.Duration
}

func NewRedisCache(rdb redis.UniversalClient, prefix string, ttl time.Duration) *RedisCache {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisCache{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (c *RedisCache) Put(ctx context.Context, id string, data []byte) error {
	if err := c.rdb.Set(ctx, c.prefix+id, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("audiocache: redis set: %w", err)
	}
	return nil
}

func (c *RedisCache) Get(ctx context.Context, id string) ([]byte, error) {
	b, err := c.rdb.Get(ctx, c.prefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("audiocache: redis get: %w", err)
	}
	return b, nil
}

func (c *RedisCache) PurgeExpired(context.Context) (int, error) { return 0, nil }

func (c *RedisCache) Reset(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, c.prefix+"*", 200).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("audiocache: redis reset: %w", err)
		}
	}
	return iter.Err()
}
