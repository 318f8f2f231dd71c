package session

import (
	"context"
	"sync"

	"github.com/zatekoja/wardcall/internal/domain/entities"
	"github.com/zatekoja/wardcall/internal/domain/providers"
)

// MemoryStore keeps the session in process memory
type MemoryStore struct {
	mu      sync.RWMutex
	current entities.Session
}

// NewMemoryStore creates a store holding initial
func NewMemoryStore(initial entities.Session) *MemoryStore {
	return &MemoryStore{current: initial}
}

var _ providers.SessionStore = (*MemoryStore)(nil)

// AccessToken returns the held access token
func (s *MemoryStore) AccessToken(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.AccessToken, nil
}

// RefreshToken returns the held refresh token
func (s *MemoryStore) RefreshToken(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.RefreshToken, nil
}

// DisplayName returns the held display name
func (s *MemoryStore) DisplayName(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.DisplayName, nil
}

// Save replaces the held session
func (s *MemoryStore) Save(ctx context.Context, session entities.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = session
	return nil
}

// Clear drops all held values
func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = entities.Session{}
	return nil
}
