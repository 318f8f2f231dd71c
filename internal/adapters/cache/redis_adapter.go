package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/zatekoja/wardcall/internal/domain/providers"
	redisclient "github.com/zatekoja/wardcall/internal/infrastructure/clients/redis"
)

// RedisAdapter implements CacheProvider on Redis strings. Every key is
// stored under prefix so several deployments can share one database.
type RedisAdapter struct {
	client *redisclient.Client
	prefix string
}

// NewRedisAdapter creates a new Redis cache adapter
func NewRedisAdapter(client *redisclient.Client, prefix string) *RedisAdapter {
	return &RedisAdapter{
		client: client,
		prefix: prefix,
	}
}

var _ providers.CacheProvider = (*RedisAdapter)(nil)

// Get returns the value stored under key
func (a *RedisAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	result, err := a.client.Client().Get(ctx, a.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, providers.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return result, nil
}

// Set stores value under key for ttl
func (a *RedisAdapter) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := a.client.Client().Set(ctx, a.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Delete removes key
func (a *RedisAdapter) Delete(ctx context.Context, key string) error {
	if err := a.client.Client().Del(ctx, a.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}
