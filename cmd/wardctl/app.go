package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/zatekoja/wardcall/internal/adapters/cache"
	"github.com/zatekoja/wardcall/internal/adapters/events"
	"github.com/zatekoja/wardcall/internal/adapters/notify"
	"github.com/zatekoja/wardcall/internal/adapters/restapi"
	"github.com/zatekoja/wardcall/internal/adapters/session"
	"github.com/zatekoja/wardcall/internal/application/services"
	"github.com/zatekoja/wardcall/internal/domain/entities"
	"github.com/zatekoja/wardcall/internal/domain/providers"
	"github.com/zatekoja/wardcall/internal/infrastructure/clients/redis"
	"github.com/zatekoja/wardcall/internal/infrastructure/clients/wardapi"
	"github.com/zatekoja/wardcall/internal/infrastructure/observability"
	"github.com/zatekoja/wardcall/pkg/config"
	"github.com/zatekoja/wardcall/pkg/retry"
)

// app holds everything a command needs, built once per invocation
type app struct {
	cfg       *config.Config
	accessors *restapi.Accessors
	auth      *services.AuthService
	bus       *events.RedisIntentBus

	closers []func(context.Context) error
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	a := &app{cfg: cfg}

	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			log.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			a.closers = append(a.closers, shutdown)
		}
	}

	metrics, err := observability.InitClientMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize metrics: %w", err)
	}

	var redisClient *redis.Client
	if cfg.Session.Backend == config.SessionBackendRedis || cfg.Notify.Redis {
		redisClient, err = redis.NewClient(ctx, &cfg.Redis, retry.ConnectConfig())
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func(context.Context) error { return redisClient.Close() })
	}

	store, err := newSessionStore(cfg, redisClient)
	if err != nil {
		return nil, err
	}

	notifiers := notify.Fanout{notify.LogNotifier{}}
	navigators := notify.NavigatorFanout{notify.LogNavigator{Hint: "run `wardctl login`"}}
	if cfg.Notify.Redis {
		a.bus = events.NewRedisIntentBus(redisClient, cfg.Notify.NoticeChannel, cfg.Notify.NavigationChannel)
		a.closers = append(a.closers, func(context.Context) error { return a.bus.Close() })
		notifiers = append(notifiers, a.bus)
		navigators = append(navigators, a.bus)
	}

	client, err := wardapi.NewClient(&cfg.API, store, notifiers, navigators,
		wardapi.WithMetrics(metrics),
		// A CLI exits right after the failed call, so the redirect cannot wait.
		wardapi.WithScheduler(func(_ time.Duration, f func()) { f() }),
	)
	if err != nil {
		return nil, err
	}

	a.accessors = restapi.NewAccessors(client)
	a.auth = services.NewAuthService(client, store, a.accessors)
	return a, nil
}

func newSessionStore(cfg *config.Config, redisClient *redis.Client) (providers.SessionStore, error) {
	switch cfg.Session.Backend {
	case config.SessionBackendMemory:
		return session.NewMemoryStore(entities.Session{}), nil
	case config.SessionBackendFile:
		return session.NewFileStore(cfg.Session.FilePath), nil
	case config.SessionBackendRedis:
		if redisClient == nil {
			return nil, fmt.Errorf("redis session backend needs a redis connection")
		}
		return session.NewCacheStore(cache.NewRedisAdapter(redisClient, ""), cfg.Session.RedisKey, cfg.Session.TTL), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
	}
}

// close releases resources in reverse order of acquisition
func (a *app) close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			log.Warn().Err(err).Msg("shutdown")
		}
	}
}
