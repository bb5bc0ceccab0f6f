package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ledgerly/backend/config"
	"github.com/ledgerly/backend/internal/application/adapter"
	domainerror "github.com/ledgerly/backend/internal/domain/error"
)

// redisKVStore implements adapter.KVStore on a Redis connection.
type redisKVStore struct {
	client *redis.Client
}

// NewRedisKVStore connects to Redis and returns a key-value store over it.
func NewRedisKVStore(cfg *config.RedisConfig) (adapter.KVStore, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	slog.Info("Redis storage connected", "url", cfg.URL)
	return &redisKVStore{client: client}, nil
}

// NewRedisKVStoreWithClient wraps an existing client; used by tests.
func NewRedisKVStoreWithClient(client *redis.Client) adapter.KVStore {
	return &redisKVStore{client: client}
}

// Load retrieves the value stored under key.
func (s *redisKVStore) Load(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domainerror.ErrKeyNotFound
		}
		return nil, err
	}
	return value, nil
}

// Save overwrites the value stored under key. Values never expire.
func (s *redisKVStore) Save(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, key, value, 0).Err()
}

// Delete removes the value stored under key. Absent keys are a no-op.
func (s *redisKVStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}
