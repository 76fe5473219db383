package chat

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const DefaultRedisPrefix = "janseva:conv:"

// RedisStore keeps each conversation as a Redis list of JSON messages.
type RedisStore struct {
	rdb    redis.UniversalClient
	prefix string
}

func NewRedisStore(rdb redis.UniversalClient, prefix string) *RedisStore {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisStore{rdb: rdb, prefix: prefix}
}

func (s *RedisStore) key(id string) string { return s.prefix + id }

func (s *RedisStore) Append(ctx context.Context, id, role, content string) error {
	b, err := json.Marshal(Message{Role: role, Content: content})
	if err != nil {
		return fmt.Errorf("chat: marshal message: %w", err)
	}
	if err := s.rdb.RPush(ctx, s.key(id), b).Err(); err != nil {
		return fmt.Errorf("chat: redis rpush: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, id string) ([]Message, error) {
	raw, err := s.rdb.LRange(ctx, s.key(id), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("chat: redis lrange: %w", err)
	}
	if len(raw) == 0 {
		return nil, ErrNotFound
	}
	msgs := make([]Message, 0, len(raw))
	for _, r := range raw {
		var m Message
		if err := json.Unmarshal([]byte(r), &m); err != nil {
			return nil, fmt.Errorf("chat: decode message: %w", err)
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	n, err := s.rdb.Del(ctx, s.key(id)).Result()
	if err != nil {
		return fmt.Errorf("chat: redis del: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Reset removes every key under the store prefix.
func (s *RedisStore) Reset(ctx context.Context) error {
	iter := s.rdb.Scan(ctx, 0, s.prefix+"*", 200).Iterator()
	var batch []string
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == 200 {
			if err := s.rdb.Del(ctx, batch...).Err(); err != nil {
				return fmt.Errorf("chat: redis reset: %w", err)
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("chat: redis scan: %w", err)
	}
	if len(batch) > 0 {
		if err := s.rdb.Del(ctx, batch...).Err(); err != nil {
			return fmt.Errorf("chat: redis reset: %w", err)
		}
	}
	return nil
}
