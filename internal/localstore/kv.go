package localstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rbcastillo/collegeinfo-ms-go/internal/port"
)

// RedisKV is the key-value half of the local persistent store. Entries never
// expire: there is no eviction policy, the key space is bounded by the
// department × slot product.
type RedisKV struct {
	client *redis.Client
}

// compile-time check: *RedisKV must satisfy port.KV
var _ port.KV = (*RedisKV)(nil)

func NewRedisKV(addr, password string) *RedisKV {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &RedisKV{client: rdb}
}

func (s *RedisKV) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil // key absent
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get failed: %w", err)
	}
	return val, true, nil
}

func (s *RedisKV) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}
