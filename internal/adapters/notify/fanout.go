package notify

import (
	"context"

	"github.com/zatekoja/wardcall/internal/domain/entities"
	"github.com/zatekoja/wardcall/internal/domain/providers"
)

// Fanout delivers each notice to every wrapped notifier, in order
type Fanout []providers.Notifier

// Notify forwards notice to all notifiers
func (f Fanout) Notify(ctx context.Context, notice entities.Notice) {
	for _, n := range f {
		if n != nil {
			n.Notify(ctx, notice)
		}
	}
}

// NavigatorFanout forwards navigation to every wrapped navigator
type NavigatorFanout []providers.Navigator

// Navigate forwards route to all navigators
func (f NavigatorFanout) Navigate(ctx context.Context, route string) {
	for _, n := range f {
		if n != nil {
			n.Navigate(ctx, route)
		}
	}
}
