package providers

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Get when the key does not exist
var ErrCacheMiss = errors.New("cache miss")

// CacheProvider is a small key/value store with per-key expiry
type CacheProvider interface {
	// Get returns ErrCacheMiss for absent or expired keys
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key; a zero ttl never expires
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes key; deleting an absent key is not an error
	Delete(ctx context.Context, key string) error
}
