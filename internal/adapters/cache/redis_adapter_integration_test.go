//go:build integration

package cache

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/wardcall/internal/adapters/session"
	"github.com/zatekoja/wardcall/internal/domain/entities"
	"github.com/zatekoja/wardcall/internal/domain/providers"
	redisclient "github.com/zatekoja/wardcall/internal/infrastructure/clients/redis"
	"github.com/zatekoja/wardcall/pkg/config"
	"github.com/zatekoja/wardcall/pkg/retry"
)

func TestRedisAdapter_BacksSessionStore(t *testing.T) {
	if os.Getenv("TEST_REDIS_HOST") == "" {
		t.Skip("Skipping integration test: TEST_REDIS_HOST not set")
	}

	ctx := context.Background()
	client, err := redisclient.NewClient(ctx, &config.RedisConfig{Host: os.Getenv("TEST_REDIS_HOST"), Port: 6379}, retry.ConnectConfig())
	require.NoError(t, err)
	defer client.Close()

	prefix := "test:" + strconv.FormatInt(time.Now().UnixNano(), 10) + ":"
	adapter := NewRedisAdapter(client, prefix)

	_, err = adapter.Get(ctx, "missing")
	assert.ErrorIs(t, err, providers.ErrCacheMiss)

	store := session.NewCacheStore(adapter, "session", time.Minute)
	require.NoError(t, store.Save(ctx, entities.Session{AccessToken: "acc", RefreshToken: "ref", DisplayName: "Matron"}))

	token, err := store.AccessToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "acc", token)

	ttl, err := client.Client().TTL(ctx, prefix+"session").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, store.Clear(ctx))
	token, err = store.AccessToken(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}
