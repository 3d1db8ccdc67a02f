package reqctx

import (
	"context"

	"github.com/getsentry/sentry-go"
)

// WithHub stores the request's reporting hub in the context.
// Uses the SDK's own context key so sentry.GetHubFromContext sees it too.
func WithHub(ctx context.Context, hub *sentry.Hub) context.Context {
	return sentry.SetHubOnContext(ctx, hub)
}

// HubFromContext retrieves the request's reporting hub from the context.
// Returns nil, false if no request-scoped hub is set.
func HubFromContext(ctx context.Context) (*sentry.Hub, bool) {
	hub := sentry.GetHubFromContext(ctx)
	return hub, hub != nil
}

// MustHub retrieves the reporting hub from the context.
// Panics if not set.
func MustHub(ctx context.Context) *sentry.Hub {
	hub, ok := HubFromContext(ctx)
	if !ok {
		panic("reqctx: hub not found in context")
	}
	return hub
}

// HubOrCurrent returns the request-scoped hub if present, otherwise the
// process-wide hub. Captures through the fallback carry no request scope.
func HubOrCurrent(ctx context.Context) *sentry.Hub {
	if hub, ok := HubFromContext(ctx); ok {
		return hub
	}
	return sentry.CurrentHub()
}
