package providers

import (
	"context"

	"github.com/zatekoja/wardcall/internal/domain/entities"
)

// IntentBus carries notices and navigation intents from the API layer to
// whichever process renders the UI. Publishing is done through the embedded
// Notifier and Navigator; the UI side subscribes.
type IntentBus interface {
	Notifier
	Navigator

	// SubscribeNotices streams notices until ctx is done
	SubscribeNotices(ctx context.Context) (<-chan entities.Notice, error)

	// SubscribeNavigation streams navigation intents until ctx is done
	SubscribeNavigation(ctx context.Context) (<-chan entities.NavigationIntent, error)

	// Close closes the bus and all subscriptions
	Close() error
}
