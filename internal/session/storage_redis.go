package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient is the subset of go-redis used for token storage.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisStorage keeps tokens in Redis so several console instances share sessions.
type RedisStorage struct {
	client RedisClient
	prefix string
	ttl    time.Duration
}

// NewRedisStorage wraps client. A zero ttl stores tokens without expiry.
func NewRedisStorage(client RedisClient, prefix string, ttl time.Duration) *RedisStorage {
	return &RedisStorage{client: client, prefix: prefix, ttl: ttl}
}

func (r *RedisStorage) Load(ctx context.Context, key string) (string, error) {
	if err := validKey(key); err != nil {
		return "", err
	}
	tok, err := r.client.Get(ctx, r.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis get token: %w", err)
	}
	return tok, nil
}

func (r *RedisStorage) Save(ctx context.Context, key, token string) error {
	if err := validKey(key); err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.prefix+key, token, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set token: %w", err)
	}
	return nil
}

func (r *RedisStorage) Delete(ctx context.Context, key string) error {
	if err := validKey(key); err != nil {
		return err
	}
	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis del token: %w", err)
	}
	return nil
}
