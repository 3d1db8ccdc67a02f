package middleware

import (
	"errors"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"

	"github.com/Alijeyrad/fibersentry/pkg/reqctx"
)

// LocalsHubKey is the Fiber locals key under which the request-scoped
// Sentry hub is published. Nested middleware and handlers read it to
// mutate the active scope (user identity, tags) for the current request.
const LocalsHubKey = "sentry_hub"

// SentryConfig tunes event delivery at the end of a request.
// Scope lifecycle behavior is not configurable.
type SentryConfig struct {
	// WaitForDelivery blocks the request goroutine until captured events
	// have been flushed to the transport, or Timeout elapsed.
	WaitForDelivery bool

	// Timeout bounds the flush when WaitForDelivery is set.
	Timeout time.Duration
}

const defaultFlushTimeout = 2 * time.Second

// Sentry returns middleware that binds an isolated reporting scope to each
// request. The process-wide hub is cloned per request, populated with the
// request's data, published under LocalsHubKey and on the request context,
// and discarded when the request finishes. The process-wide hub is never
// mutated, so captures outside a request carry no request attributes.
//
// Errors returned by downstream handlers are reported when they map to a
// server fault and returned unchanged. Panics are reported through the
// request's scope and re-panicked, leaving status translation to the
// recover middleware above this one.
func Sentry(configs ...SentryConfig) fiber.Handler {
	cfg := SentryConfig{Timeout: defaultFlushTimeout}
	if len(configs) > 0 {
		cfg = configs[0]
		if cfg.Timeout <= 0 {
			cfg.Timeout = defaultFlushTimeout
		}
	}

	return func(c fiber.Ctx) error {
		ctx := c.Context()

		// A hub already on the context means an outer adapter opened the
		// scope for this request; reuse it instead of stacking a second one.
		hub := sentry.GetHubFromContext(ctx)
		if hub == nil {
			hub = sentry.CurrentHub().Clone()
			c.SetContext(reqctx.WithHub(ctx, hub))
			ctx = c.Context()
		}

		scope := hub.Scope()
		if r, err := adaptor.ConvertRequest(c, true); err == nil {
			scope.SetRequest(r)
		}
		if rid, ok := RequestIDFromFiber(c); ok {
			scope.SetTag("request_id", rid)
		}

		// Routing resolves inside c.Next, so the matched route is unknown
		// here. Stamp the transaction lazily, at capture time.
		scope.AddEventProcessor(func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			if event.Transaction == "" {
				event.Transaction = transactionName(c)
			}
			return event
		})

		c.Locals(LocalsHubKey, hub)

		defer func() {
			if rec := recover(); rec != nil {
				if eventID := hub.RecoverWithContext(ctx, rec); eventID != nil && cfg.WaitForDelivery {
					hub.Flush(cfg.Timeout)
				}
				panic(rec)
			}
		}()

		err := c.Next()
		if err != nil && isServerFault(err) {
			if eventID := hub.CaptureException(err); eventID != nil && cfg.WaitForDelivery {
				hub.Flush(cfg.Timeout)
			}
		}
		return err
	}
}

// HubFromFiber retrieves the request-scoped hub published by Sentry.
func HubFromFiber(c fiber.Ctx) (*sentry.Hub, bool) {
	v := c.Locals(LocalsHubKey)
	hub, ok := v.(*sentry.Hub)
	return hub, ok && hub != nil
}

func transactionName(c fiber.Ctx) string {
	return c.Method() + " " + c.Route().Path
}

// isServerFault reports whether a handler error is worth a Sentry event.
// Fiber errors below 500 are request flow control, not faults.
func isServerFault(err error) bool {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code >= fiber.StatusInternalServerError
	}
	return true
}
