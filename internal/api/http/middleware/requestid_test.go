package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/Alijeyrad/fibersentry/pkg/reqctx"
)

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		wantSame bool
	}{
		{
			name:     "generates an id when none is sent",
			incoming: "",
			wantSame: false,
		},
		{
			name:     "preserves an incoming id",
			incoming: "rid-from-client",
			wantSame: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotLocal string
			var gotMeta *reqctx.RequestMeta

			app := fiber.New()
			app.Use(RequestID())
			app.Get("/", func(c fiber.Ctx) error {
				gotLocal, _ = RequestIDFromFiber(c)
				gotMeta, _ = RequestMetaFromFiber(c)
				return c.SendString("ok")
			})

			req := httptest.NewRequest(fiber.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(HeaderRequestID, tt.incoming)
			}

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			defer resp.Body.Close()

			echoed := resp.Header.Get(HeaderRequestID)
			if echoed == "" {
				t.Error("response is missing the request id header")
			}
			if echoed != gotLocal {
				t.Errorf("echoed id %q does not match locals id %q", echoed, gotLocal)
			}

			if tt.wantSame {
				if gotLocal != tt.incoming {
					t.Errorf("RequestIDFromFiber() = %q, want %q", gotLocal, tt.incoming)
				}
			} else {
				if _, err := uuid.Parse(gotLocal); err != nil {
					t.Errorf("generated id %q is not a UUID: %v", gotLocal, err)
				}
			}

			if gotMeta == nil {
				t.Fatal("request metadata not set in locals")
			}
			if gotMeta.RequestID != gotLocal {
				t.Errorf("meta request id %q does not match %q", gotMeta.RequestID, gotLocal)
			}
			if gotMeta.RequestedAt.IsZero() {
				t.Error("meta RequestedAt is zero")
			}
		})
	}
}
