package notify

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/zatekoja/wardcall/internal/domain/entities"
	"github.com/zatekoja/wardcall/internal/domain/providers"
	"github.com/zatekoja/wardcall/internal/infrastructure/observability"
)

// LogNotifier renders notices as log lines, for terminals and headless runs
type LogNotifier struct{}

var _ providers.Notifier = LogNotifier{}

// Notify logs the notice at a level matching its severity
func (LogNotifier) Notify(ctx context.Context, notice entities.Notice) {
	logger := observability.LoggerFromContext(ctx)

	var event *zerolog.Event
	switch notice.Level {
	case entities.NoticeLevelError:
		event = logger.Error()
	case entities.NoticeLevelWarning:
		event = logger.Warn()
	default:
		event = logger.Info()
	}
	event.Str("notice_id", notice.ID).Str("title", notice.Title).Msg(notice.Message)
}

// LogNavigator stands in for a router where no UI exists: it logs where the
// user should go next
type LogNavigator struct {
	// Hint is appended to the log line, e.g. the CLI command to run
	Hint string
}

var _ providers.Navigator = LogNavigator{}

// Navigate logs the requested route
func (n LogNavigator) Navigate(ctx context.Context, route string) {
	event := observability.LoggerFromContext(ctx).Warn().Str("route", route)
	if n.Hint != "" {
		event = event.Str("hint", n.Hint)
	}
	event.Msg("sign-in required")
}
