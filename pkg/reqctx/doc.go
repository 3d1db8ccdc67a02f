// Package reqctx provides centralized request context management.
//
// This package is the single source of truth for request-scoped data:
// request metadata captured by HTTP middleware and the per-request Sentry
// hub that owns the request's reporting scope.
//
// # Context Keys
//
// All context keys are private unexported types to prevent collisions.
// Access is provided through type-safe getter and setter functions. The
// Sentry hub rides on the context key the SDK itself defines, so code that
// only depends on sentry-go interoperates with code using this package.
//
// # Usage
//
// Setting values (typically in middleware):
//
//	ctx = reqctx.WithRequestMeta(ctx, &reqctx.RequestMeta{
//	    RequestID:   "abc-123",
//	    ClientIP:    "192.168.1.1",
//	    UserAgent:   "Mozilla/5.0",
//	    RequestedAt: time.Now(),
//	})
//
//	ctx = reqctx.WithHub(ctx, hub)
//
// Getting values (in handlers, services, etc.):
//
//	meta, ok := reqctx.RequestMetaFromContext(ctx)
//	if hub, ok := reqctx.HubFromContext(ctx); ok {
//	    hub.CaptureMessage("something happened")
//	}
//
// # Contracts
//
// The following contracts are guaranteed:
//
//   - RequestMeta is always set by HTTP middleware for all requests
//   - The hub is set for every request passing through the Sentry middleware
//   - A hub obtained from one request's context is never shared with another
//     request; mutations of its scope stay confined to that request
package reqctx
