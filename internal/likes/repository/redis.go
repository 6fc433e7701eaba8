// Package repository provides Redis persistence for the like counter.
package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const likesKey = "resume:likes"

// Store defines the persistence operations for the like counter.
type Store interface {
	// Get returns the current count. A missing key reads as zero.
	Get(ctx context.Context) (int64, error)
	// Increment adds one and returns the new count.
	Increment(ctx context.Context) (int64, error)
	// Decrement subtracts one, never going below zero, and returns the new count.
	Decrement(ctx context.Context) (int64, error)
}

// decrementFloorScript keeps the stored count from going negative when
// visitors unlike more often than the counter was ever incremented.
var decrementFloorScript = redis.NewScript(`
local v = redis.call('DECR', KEYS[1])
if v < 0 then
  redis.call('SET', KEYS[1], 0)
  v = 0
end
return v
`)

// RedisStore is the go-redis backed implementation of Store.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a new Redis-backed like counter store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Get returns the current count. A missing key reads as zero.
func (s *RedisStore) Get(ctx context.Context) (int64, error) {
	count, err := s.client.Get(ctx, likesKey).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get like count: %w", err)
	}
	return count, nil
}

// Increment adds one and returns the new count.
func (s *RedisStore) Increment(ctx context.Context) (int64, error) {
	count, err := s.client.Incr(ctx, likesKey).Result()
	if err != nil {
		return 0, fmt.Errorf("increment like count: %w", err)
	}
	return count, nil
}

// Decrement subtracts one, never going below zero, and returns the new count.
func (s *RedisStore) Decrement(ctx context.Context) (int64, error) {
	count, err := decrementFloorScript.Run(ctx, s.client, []string{likesKey}).Int64()
	if err != nil {
		return 0, fmt.Errorf("decrement like count: %w", err)
	}
	return count, nil
}

// Ping checks the Redis connection for readiness probes.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
