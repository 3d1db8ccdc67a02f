package reqctx

import (
	"context"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
)

func TestRequestMetaRoundTrip(t *testing.T) {
	meta := &RequestMeta{
		RequestID:   "abc-123",
		ClientIP:    "192.168.1.1",
		UserAgent:   "test-agent",
		RequestedAt: time.Now(),
	}

	ctx := WithRequestMeta(context.Background(), meta)

	got, ok := RequestMetaFromContext(ctx)
	if !ok || got == nil {
		t.Fatal("RequestMeta not found in context")
	}
	if got.RequestID != meta.RequestID {
		t.Errorf("RequestID = %q, want %q", got.RequestID, meta.RequestID)
	}
	if rid := RequestIDFromContext(ctx); rid != "abc-123" {
		t.Errorf("RequestIDFromContext() = %q, want %q", rid, "abc-123")
	}
}

func TestRequestMetaMissing(t *testing.T) {
	if _, ok := RequestMetaFromContext(context.Background()); ok {
		t.Error("expected no RequestMeta in empty context")
	}
	if rid := RequestIDFromContext(context.Background()); rid != "" {
		t.Errorf("RequestIDFromContext() = %q, want empty", rid)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustRequestMeta should panic on empty context")
		}
	}()
	MustRequestMeta(context.Background())
}

func TestHubRoundTrip(t *testing.T) {
	hub := sentry.CurrentHub().Clone()
	ctx := WithHub(context.Background(), hub)

	got, ok := HubFromContext(ctx)
	if !ok || got != hub {
		t.Fatal("hub from context does not match the one stored")
	}

	// sentry-go's own accessor must see the same hub.
	if sentry.GetHubFromContext(ctx) != hub {
		t.Error("sentry.GetHubFromContext does not see the stored hub")
	}
}

func TestHubOrCurrentFallback(t *testing.T) {
	if got := HubOrCurrent(context.Background()); got != sentry.CurrentHub() {
		t.Error("HubOrCurrent should fall back to the process-wide hub")
	}

	hub := sentry.CurrentHub().Clone()
	ctx := WithHub(context.Background(), hub)
	if got := HubOrCurrent(ctx); got != hub {
		t.Error("HubOrCurrent should prefer the request-scoped hub")
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustHub should panic on empty context")
		}
	}()
	MustHub(context.Background())
}
