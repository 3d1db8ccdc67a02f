package http

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/helmet"
	"github.com/gofiber/fiber/v3/middleware/logger"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
	"go.uber.org/fx"

	"github.com/Alijeyrad/fibersentry/config"
	"github.com/Alijeyrad/fibersentry/internal/api/http/middleware"
	"github.com/Alijeyrad/fibersentry/internal/api/http/router"
)

// Module provides the HTTP Server to the fx graph.
var Module = fx.Module("http", fx.Provide(NewServer))

type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Cfg       *config.Config
	Router    *router.Router

	// Sentry forces client initialization before the server accepts traffic.
	Sentry *sentry.Client
}

func NewServer(p Params) *fiber.App {
	app := fiber.New()

	configureGlobalMiddleware(app, p.Cfg)

	p.Router.Register(app)

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			addr := fmt.Sprintf(":%d", p.Cfg.Server.Port)
			go func() {
				if err := app.Listen(addr); err != nil {
					slog.Error("HTTP server error", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})

	return app
}

func configureGlobalMiddleware(app *fiber.App, cfg *config.Config) {
	app.Use(middleware.RequestID())

	// Recovery sits above the reporting middleware: panics are captured with
	// the request's scope first, re-panicked, and translated to 500 here.
	app.Use(recoverer.New())

	app.Use(middleware.Sentry(middleware.SentryConfig{
		WaitForDelivery: cfg.Server.Environment != "production",
		Timeout:         time.Duration(cfg.Sentry.FlushTimeoutSeconds) * time.Second,
	}))

	if cfg.Server.Environment == "production" {
		app.Use(helmet.New())
		if cfg.Server.CORS.Enabled {
			app.Use(cors.New(cors.Config{AllowOrigins: cfg.Server.CORS.AllowOrigins}))
		}
	}

	app.Use(logger.New(logger.Config{
		Format: "${ip} - [${time}] [req_id=${locals:request_id}] ${method} ${url} ${status}\n",
	}))
}
