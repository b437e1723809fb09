package kvstore

import (
	"ailearn_backend/pkg/logger"
	"context"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisStore persists progress entries in redis. Counters use INCRBY so
// concurrent activity ticks stay additive without a read-modify-write cycle.
type RedisStore struct {
	Client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{Client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool) {
	v, err := s.Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		logger.Log.Warn("progress store read failed", zap.String("key", key), zap.Error(err))
		return "", false
	}
	return v, true
}

func (s *RedisStore) Set(ctx context.Context, key, value string) {
	if err := s.Client.Set(ctx, key, value, 0).Err(); err != nil {
		logger.Log.Warn("progress store write failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *RedisStore) IncrBy(ctx context.Context, key string, delta int64) {
	if err := s.Client.IncrBy(ctx, key, delta).Err(); err != nil {
		logger.Log.Warn("progress store increment failed", zap.String("key", key), zap.Error(err))
	}
}
