package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/zatekoja/wardcall/internal/domain/entities"
	"github.com/zatekoja/wardcall/internal/domain/providers"
)

// CacheStore keeps the session under one key of a CacheProvider (Redis in
// production), letting several processes share a login. The key expires
// after ttl; an expired key reads as an empty session.
type CacheStore struct {
	cache providers.CacheProvider
	key   string
	ttl   time.Duration
}

// NewCacheStore creates a store writing key on cache
func NewCacheStore(cache providers.CacheProvider, key string, ttl time.Duration) *CacheStore {
	return &CacheStore{cache: cache, key: key, ttl: ttl}
}

var _ providers.SessionStore = (*CacheStore)(nil)

// AccessToken returns the cached access token
func (s *CacheStore) AccessToken(ctx context.Context) (string, error) {
	current, err := s.load(ctx)
	return current.AccessToken, err
}

// RefreshToken returns the cached refresh token
func (s *CacheStore) RefreshToken(ctx context.Context) (string, error) {
	current, err := s.load(ctx)
	return current.RefreshToken, err
}

// DisplayName returns the cached display name
func (s *CacheStore) DisplayName(ctx context.Context) (string, error) {
	current, err := s.load(ctx)
	return current.DisplayName, err
}

// Save stores the session with the configured TTL
func (s *CacheStore) Save(ctx context.Context, session entities.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	return s.cache.Set(ctx, s.key, data, s.ttl)
}

// Clear deletes the session key
func (s *CacheStore) Clear(ctx context.Context) error {
	return s.cache.Delete(ctx, s.key)
}

func (s *CacheStore) load(ctx context.Context) (entities.Session, error) {
	data, err := s.cache.Get(ctx, s.key)
	if errors.Is(err, providers.ErrCacheMiss) {
		return entities.Session{}, nil
	}
	if err != nil {
		return entities.Session{}, err
	}

	var current entities.Session
	if err := json.Unmarshal(data, &current); err != nil {
		return entities.Session{}, fmt.Errorf("failed to decode session: %w", err)
	}
	return current, nil
}
