package providers

import (
	"context"

	"github.com/zatekoja/wardcall/internal/domain/entities"
)

// SessionStore holds the credentials of the current admin session.
// Getters return "" when no value is held; tokens are not validated locally.
type SessionStore interface {
	// AccessToken returns the bearer token sent with every request
	AccessToken(ctx context.Context) (string, error)

	// RefreshToken returns the refresh token issued at login
	RefreshToken(ctx context.Context) (string, error)

	// DisplayName returns the name shown for the signed-in user
	DisplayName(ctx context.Context) (string, error)

	// Save replaces the held session
	Save(ctx context.Context, session entities.Session) error

	// Clear removes all held values. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}
