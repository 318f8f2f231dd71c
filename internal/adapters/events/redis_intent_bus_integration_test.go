//go:build integration

package events

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/wardcall/internal/domain/entities"
	redisclient "github.com/zatekoja/wardcall/internal/infrastructure/clients/redis"
	"github.com/zatekoja/wardcall/pkg/config"
	"github.com/zatekoja/wardcall/pkg/retry"
)

func newTestRedisClient(t *testing.T) *redisclient.Client {
	t.Helper()
	port, _ := strconv.Atoi(os.Getenv("TEST_REDIS_PORT"))
	if port == 0 {
		port = 6379
	}
	client, err := redisclient.NewClient(context.Background(), &config.RedisConfig{
		Host: os.Getenv("TEST_REDIS_HOST"),
		Port: port,
	}, retry.Config{MaxAttempts: 1, InitialDelay: time.Millisecond, MaxDelay: time.Millisecond, BackoffFactor: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisIntentBus_NoticeFanout(t *testing.T) {
	if os.Getenv("TEST_REDIS_HOST") == "" {
		t.Skip("Skipping integration test: TEST_REDIS_HOST not set")
	}

	suffix := strconv.FormatInt(time.Now().UnixNano(), 10)
	bus := NewRedisIntentBus(newTestRedisClient(t), "test:notices:"+suffix, "test:navigation:"+suffix)
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub1, err := bus.SubscribeNotices(ctx)
	require.NoError(t, err)
	sub2, err := bus.SubscribeNotices(ctx)
	require.NoError(t, err)

	notice := entities.NewNotice(entities.NoticeLevelError, "Session expired", "Please sign in again.")
	bus.Notify(context.Background(), notice)

	for _, sub := range []<-chan entities.Notice{sub1, sub2} {
		select {
		case got := <-sub:
			assert.Equal(t, notice.ID, got.ID)
			assert.Equal(t, notice.Title, got.Title)
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for notice")
		}
	}
}

func TestRedisIntentBus_NavigationAndClose(t *testing.T) {
	if os.Getenv("TEST_REDIS_HOST") == "" {
		t.Skip("Skipping integration test: TEST_REDIS_HOST not set")
	}

	suffix := strconv.FormatInt(time.Now().UnixNano(), 10)
	bus := NewRedisIntentBus(newTestRedisClient(t), "test:notices:"+suffix, "test:navigation:"+suffix)

	intents, err := bus.SubscribeNavigation(context.Background())
	require.NoError(t, err)

	bus.Navigate(context.Background(), "/login")

	select {
	case got := <-intents:
		assert.Equal(t, "/login", got.Route)
		assert.Equal(t, "session expired", got.Reason)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for navigation intent")
	}

	require.NoError(t, bus.Close())

	select {
	case _, ok := <-intents:
		assert.False(t, ok, "channel closes with the bus")
	case <-time.After(2 * time.Second):
		t.Fatal("subscription stayed open after Close")
	}

	_, err = bus.SubscribeNotices(context.Background())
	assert.Error(t, err)
}
