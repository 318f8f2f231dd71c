package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/zatekoja/wardcall/internal/domain/entities"
	"github.com/zatekoja/wardcall/internal/domain/providers"
	redisclient "github.com/zatekoja/wardcall/internal/infrastructure/clients/redis"
	"github.com/zatekoja/wardcall/internal/infrastructure/observability"
)

const subscriberBuffer = 32

// RedisIntentBus implements IntentBus using Redis Pub/Sub
type RedisIntentBus struct {
	client            *redisclient.Client
	noticeChannel     string
	navigationChannel string

	mu            sync.Mutex
	subscriptions map[*redis.PubSub]struct{}
	closed        bool
}

// NewRedisIntentBus creates a bus publishing on the given channels
func NewRedisIntentBus(client *redisclient.Client, noticeChannel, navigationChannel string) *RedisIntentBus {
	return &RedisIntentBus{
		client:            client,
		noticeChannel:     noticeChannel,
		navigationChannel: navigationChannel,
		subscriptions:     make(map[*redis.PubSub]struct{}),
	}
}

var _ providers.IntentBus = (*RedisIntentBus)(nil)

// Notify publishes a notice. Delivery failures are logged; a lost toast
// must not fail the request that raised it.
func (b *RedisIntentBus) Notify(ctx context.Context, notice entities.Notice) {
	if err := b.publish(ctx, b.noticeChannel, notice); err != nil {
		observability.LoggerFromContext(ctx).Error().Err(err).Str("notice", notice.Title).Msg("failed to publish notice")
	}
}

// Navigate publishes a navigation intent for route
func (b *RedisIntentBus) Navigate(ctx context.Context, route string) {
	intent := entities.NewNavigationIntent(route, "session expired")
	if err := b.publish(ctx, b.navigationChannel, intent); err != nil {
		observability.LoggerFromContext(ctx).Error().Err(err).Str("route", route).Msg("failed to publish navigation intent")
	}
}

// SubscribeNotices streams published notices until ctx is done
func (b *RedisIntentBus) SubscribeNotices(ctx context.Context) (<-chan entities.Notice, error) {
	return subscribe[entities.Notice](ctx, b, b.noticeChannel)
}

// SubscribeNavigation streams published navigation intents until ctx is done
func (b *RedisIntentBus) SubscribeNavigation(ctx context.Context) (<-chan entities.NavigationIntent, error) {
	return subscribe[entities.NavigationIntent](ctx, b, b.navigationChannel)
}

// Close closes all subscriptions
func (b *RedisIntentBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true
	var errs []error
	for pubsub := range b.subscriptions {
		if err := pubsub.Close(); err != nil {
			errs = append(errs, err)
		}
		delete(b.subscriptions, pubsub)
	}
	if len(errs) > 0 {
		return fmt.Errorf("errors closing intent bus: %v", errs)
	}
	return nil
}

func (b *RedisIntentBus) publish(ctx context.Context, channel string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}
	if err := b.client.Client().Publish(ctx, channel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", channel, err)
	}
	return nil
}

func (b *RedisIntentBus) track(pubsub *redis.PubSub) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return fmt.Errorf("intent bus closed")
	}
	b.subscriptions[pubsub] = struct{}{}
	return nil
}

func (b *RedisIntentBus) release(pubsub *redis.PubSub) {
	b.mu.Lock()
	_, tracked := b.subscriptions[pubsub]
	delete(b.subscriptions, pubsub)
	b.mu.Unlock()

	if tracked {
		_ = pubsub.Close()
	}
}

// subscribe decodes every message on channel as T and forwards it until ctx
// is done or the bus is closed. Undecodable messages are skipped.
func subscribe[T any](ctx context.Context, b *RedisIntentBus, channel string) (<-chan T, error) {
	pubsub := b.client.Client().Subscribe(ctx, channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", channel, err)
	}
	if err := b.track(pubsub); err != nil {
		_ = pubsub.Close()
		return nil, err
	}

	logger := observability.LoggerFromContext(ctx)
	out := make(chan T, subscriberBuffer)

	go func() {
		defer close(out)
		defer b.release(pubsub)

		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				var value T
				if err := json.Unmarshal([]byte(msg.Payload), &value); err != nil {
					logger.Warn().Err(err).Str("channel", channel).Msg("skipping undecodable message")
					continue
				}
				select {
				case out <- value:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
