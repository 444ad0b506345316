package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisStore keeps each blob as a plain string value under prefix+key.
type RedisStore struct {
	client *redis.Client
	prefix string
	log    *zap.Logger
}

func NewRedisStore(client *redis.Client, prefix string, logger *zap.Logger) *RedisStore {
	return &RedisStore{client: client, prefix: prefix, log: logger}
}

// OpenRedis connects to addr and verifies the connection with PING.
func OpenRedis(ctx context.Context, addr, password string, db int, prefix string, logger *zap.Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return NewRedisStore(client, prefix, logger), nil
}

func (s *RedisStore) Load(ctx context.Context, key string) (string, bool, error) {
	s.log.Debug("Load: start", zap.String("key", s.prefix+key))
	v, err := s.client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		s.log.Debug("Load: not found", zap.String("key", s.prefix+key))
		return "", false, nil
	}
	if err != nil {
		s.log.Error("Load: get failed", zap.String("key", s.prefix+key), zap.Error(err))
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, true, nil
}

func (s *RedisStore) Save(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		s.log.Error("Save: set failed", zap.String("key", s.prefix+key), zap.Error(err))
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	s.log.Debug("Save: success", zap.String("key", s.prefix+key), zap.Int("bytes", len(value)))
	return nil
}

func (s *RedisStore) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		s.log.Error("Remove: del failed", zap.String("key", s.prefix+key), zap.Error(err))
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
