package services

import (
	"context"
	"net/http"
	"strings"

	"github.com/zatekoja/wardcall/internal/domain/entities"
	"github.com/zatekoja/wardcall/internal/domain/providers"
	"github.com/zatekoja/wardcall/internal/domain/repositories"
	"github.com/zatekoja/wardcall/internal/infrastructure/clients/wardapi"
	"github.com/zatekoja/wardcall/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/wardcall/pkg/errors"
)

// LoginPath is the token endpoint, relative to the API base URL
const LoginPath = "auth/login/"

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Access   string `json:"access"`
	Refresh  string `json:"refresh"`
	Username string `json:"username"`
}

// AuthService signs the console user in and out
type AuthService struct {
	client  wardapi.Requester
	session providers.SessionStore
	users   repositories.UserRepository
}

// NewAuthService creates a new auth service
func NewAuthService(client wardapi.Requester, session providers.SessionStore, users repositories.UserRepository) *AuthService {
	return &AuthService{
		client:  client,
		session: session,
		users:   users,
	}
}

// Login exchanges credentials for tokens and stores them in the session.
// Wrong credentials come back as an API error; the previous session is kept.
func (s *AuthService) Login(ctx context.Context, username, password string) (*entities.Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, apperrors.NewValidationError("username and password are required")
	}

	var resp loginResponse
	err := s.client.Request(ctx, LoginPath, wardapi.RequestOptions{
		Method:   http.MethodPost,
		Body:     loginRequest{Username: username, Password: password},
		SkipAuth: true,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Access == "" {
		return nil, apperrors.NewInternalError("login response carried no access token", nil)
	}

	displayName := resp.Username
	if displayName == "" {
		displayName = username
	}
	session := entities.Session{
		AccessToken:  resp.Access,
		RefreshToken: resp.Refresh,
		DisplayName:  displayName,
	}
	if err := s.session.Save(ctx, session); err != nil {
		return nil, apperrors.NewInternalError("failed to save session", err)
	}

	observability.LoggerFromContext(ctx).Info().Str("user", displayName).Msg("signed in")
	return &session, nil
}

// Logout forgets the stored credentials. Logging out twice is not an error.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.session.Clear(ctx); err != nil {
		return apperrors.NewInternalError("failed to clear session", err)
	}
	return nil
}

// WhoAmI returns the user the current token belongs to
func (s *AuthService) WhoAmI(ctx context.Context) (*entities.User, error) {
	return s.users.FetchCurrentUser(ctx)
}
