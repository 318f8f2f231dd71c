package providers

import (
	"context"

	"github.com/zatekoja/wardcall/internal/domain/entities"
)

// Notifier delivers user-visible notices. The API layer decides when to
// notify; implementations decide how the notice is rendered.
type Notifier interface {
	Notify(ctx context.Context, notice entities.Notice)
}

// Navigator performs (or requests) navigation to a UI route
type Navigator interface {
	Navigate(ctx context.Context, route string)
}
