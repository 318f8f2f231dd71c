package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/zatekoja/wardcall/internal/domain/entities"
	"github.com/zatekoja/wardcall/internal/domain/providers"
)

// FileStore persists the session as a JSON file readable only by its owner,
// so that separate CLI invocations share one login.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store backed by path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

var _ providers.SessionStore = (*FileStore)(nil)

// AccessToken returns the stored access token
func (s *FileStore) AccessToken(ctx context.Context) (string, error) {
	current, err := s.load()
	return current.AccessToken, err
}

// RefreshToken returns the stored refresh token
func (s *FileStore) RefreshToken(ctx context.Context) (string, error) {
	current, err := s.load()
	return current.RefreshToken, err
}

// DisplayName returns the stored display name
func (s *FileStore) DisplayName(ctx context.Context) (string, error) {
	current, err := s.load()
	return current.DisplayName, err
}

// Save writes the session file, replacing it atomically
func (s *FileStore) Save(ctx context.Context, session entities.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace session: %w", err)
	}
	return nil
}

// Clear removes the session file
func (s *FileStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove session: %w", err)
	}
	return nil
}

func (s *FileStore) load() (entities.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return entities.Session{}, nil
	}
	if err != nil {
		return entities.Session{}, fmt.Errorf("failed to read session: %w", err)
	}

	var current entities.Session
	if err := json.Unmarshal(data, &current); err != nil {
		return entities.Session{}, fmt.Errorf("failed to decode session: %w", err)
	}
	return current, nil
}
