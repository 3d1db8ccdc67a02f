package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"go.uber.org/fx"

	"github.com/Alijeyrad/fibersentry/config"
	"github.com/Alijeyrad/fibersentry/internal/api/http/handler"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg *config.Config
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

// Register attaches all routes to the app. Must run after the global
// middleware chain is configured.
func (r *Router) Register(app *fiber.App) {
	app.Get("/healthz", healthcheck.New())

	debug := app.Group("/debug")
	debug.Get("/message", handler.CaptureMessage)
	debug.Get("/user", handler.IdentifyUser)
	debug.Get("/error", handler.Boom)
	debug.Get("/panic", handler.Panic)
}
