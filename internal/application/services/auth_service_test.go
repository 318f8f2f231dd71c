package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/wardcall/internal/adapters/session"
	"github.com/zatekoja/wardcall/internal/domain/entities"
	"github.com/zatekoja/wardcall/internal/domain/providers"
	"github.com/zatekoja/wardcall/internal/domain/repositories"
	"github.com/zatekoja/wardcall/internal/infrastructure/clients/wardapi"
	"github.com/zatekoja/wardcall/pkg/config"
	apperrors "github.com/zatekoja/wardcall/pkg/errors"
)

type mockUserRepository struct {
	mock.Mock
	repositories.UserRepository
}

func (m *mockUserRepository) FetchCurrentUser(ctx context.Context) (*entities.User, error) {
	args := m.Called(ctx)
	if user, ok := args.Get(0).(*entities.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockNavigator struct {
	mock.Mock
}

func (m *mockNavigator) Navigate(ctx context.Context, route string) {
	m.Called(ctx, route)
}

// loginServer accepts nurse1/secret and rejects everything else with 401
func loginServer(t *testing.T, hits *int32) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login/", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var body loginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")
		if body.Username != "nurse1" || body.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"No active account found with the given credentials"}`))
			return
		}
		w.Write([]byte(`{"access":"acc-1","refresh":"ref-1","username":"Nurse One"}`))
	}))
	t.Cleanup(server.Close)
	return server
}

func newAuthService(t *testing.T, baseURL string, store *session.MemoryStore, navigator *mockNavigator, users repositories.UserRepository) *AuthService {
	t.Helper()
	var nav providers.Navigator
	if navigator != nil {
		nav = navigator
	}
	client, err := wardapi.NewClient(&config.APIConfig{BaseURL: baseURL}, store, nil, nav)
	require.NoError(t, err)
	return NewAuthService(client, store, users)
}

func TestAuthService_LoginStoresSession(t *testing.T) {
	var hits int32
	server := loginServer(t, &hits)
	store := session.NewMemoryStore(entities.Session{})
	service := newAuthService(t, server.URL+"/api", store, nil, nil)
	ctx := context.Background()

	got, err := service.Login(ctx, " nurse1 ", "secret")

	require.NoError(t, err)
	assert.Equal(t, entities.Session{AccessToken: "acc-1", RefreshToken: "ref-1", DisplayName: "Nurse One"}, *got)

	token, err := store.AccessToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", token)
	refresh, err := store.RefreshToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ref-1", refresh)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestAuthService_BadCredentialsAreNotASessionExpiry(t *testing.T) {
	var hits int32
	server := loginServer(t, &hits)
	store := session.NewMemoryStore(entities.Session{AccessToken: "previous", DisplayName: "Someone"})
	navigator := new(mockNavigator)
	service := newAuthService(t, server.URL+"/api", store, navigator, nil)
	ctx := context.Background()

	_, err := service.Login(ctx, "nurse1", "wrong")

	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeAPI))
	assert.Equal(t, http.StatusUnauthorized, apperrors.StatusCode(err))
	assert.Contains(t, err.Error(), "No active account")
	navigator.AssertNotCalled(t, "Navigate", mock.Anything, mock.Anything)

	token, err := store.AccessToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "previous", token)
}

func TestAuthService_LoginRequiresCredentials(t *testing.T) {
	var hits int32
	server := loginServer(t, &hits)
	service := newAuthService(t, server.URL+"/api", session.NewMemoryStore(entities.Session{}), nil, nil)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "missing username", username: "  ", password: "secret"},
		{name: "missing password", username: "nurse1", password: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Login(context.Background(), tt.username, tt.password)
			assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
		})
	}
	assert.Zero(t, atomic.LoadInt32(&hits))
}

func TestAuthService_LoginWithoutAccessToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"refresh":"ref-1"}`))
	}))
	defer server.Close()
	store := session.NewMemoryStore(entities.Session{})
	service := newAuthService(t, server.URL, store, nil, nil)

	_, err := service.Login(context.Background(), "nurse1", "secret")

	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeInternal))
	token, _ := store.AccessToken(context.Background())
	assert.Empty(t, token)
}

func TestAuthService_LogoutClearsSession(t *testing.T) {
	store := session.NewMemoryStore(entities.Session{AccessToken: "acc-1", DisplayName: "Nurse One"})
	service := NewAuthService(nil, store, nil)
	ctx := context.Background()

	require.NoError(t, service.Logout(ctx))
	require.NoError(t, service.Logout(ctx))

	token, err := store.AccessToken(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestAuthService_WhoAmI(t *testing.T) {
	users := new(mockUserRepository)
	users.On("FetchCurrentUser", mock.Anything).Return(&entities.User{ID: "u1", Username: "nurse1", Role: entities.RoleNurse}, nil).Once()
	service := NewAuthService(nil, session.NewMemoryStore(entities.Session{}), users)

	user, err := service.WhoAmI(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "nurse1", user.Username)
	users.AssertExpectations(t)
}

func TestAuthService_WhoAmIPropagatesErrors(t *testing.T) {
	expired := apperrors.NewSessionExpiredError("session expired")
	users := new(mockUserRepository)
	users.On("FetchCurrentUser", mock.Anything).Return(nil, expired)
	service := NewAuthService(nil, session.NewMemoryStore(entities.Session{}), users)

	_, err := service.WhoAmI(context.Background())

	assert.True(t, errors.Is(err, expired))
}
