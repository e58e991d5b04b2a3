package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

type RedisStorage struct {
	redisClient *redis.Client
	keyPrefix   string
}

func NewRedisStorage(redisClient *redis.Client, keyPrefix string) *RedisStorage {
	return &RedisStorage{
		redisClient: redisClient,
		keyPrefix:   keyPrefix,
	}
}

func (s *RedisStorage) Get(ctx context.Context, key string) (string, error) {
	val, err := s.redisClient.Get(ctx, s.keyPrefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", newError("get", key, err)
	}
	return val, nil
}

func (s *RedisStorage) Set(ctx context.Context, key, value string) error {
	err := s.redisClient.Set(ctx, s.keyPrefix+key, value, 0).Err() // No expiration
	if err != nil {
		return newError("set", key, err)
	}
	return nil
}

func (s *RedisStorage) Close() error {
	if s.redisClient != nil {
		return s.redisClient.Close()
	}
	return nil
}
