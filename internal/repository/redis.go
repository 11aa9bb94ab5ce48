package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/road_obstacles/internal/service"
)

// RedisStore хранит коллекции в Redis под ключами с общим префиксом
type RedisStore struct {
	redisClient *redis.Client
	prefix      string
}

func NewRedisStore(redisClient *redis.Client, prefix string) service.KeyValueStore {
	return &RedisStore{
		redisClient: redisClient,
		prefix:      prefix,
	}
}

// Get пытается получить значение из Redis
func (r *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := r.redisClient.Get(ctx, r.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get %q from redis: %w", key, err)
	}
	return val, true, nil
}

// Set сохраняет значение без срока жизни
func (r *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := r.redisClient.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %q in redis: %w", key, err)
	}
	return nil
}

// Remove удаляет ключ из Redis
func (r *RedisStore) Remove(ctx context.Context, key string) error {
	if err := r.redisClient.Del(ctx, r.prefix+key).Err(); err != nil {
		return fmt.Errorf("failed to remove %q from redis: %w", key, err)
	}
	return nil
}
