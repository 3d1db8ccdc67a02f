package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/fx"

	"github.com/Alijeyrad/fibersentry/config"
)

// InfraModule provides all infrastructure dependencies.
var InfraModule = fx.Module("infra",
	fx.Provide(ProvideSentry),
)

// ProvideSentry binds the process-wide Sentry client from config and flushes
// pending events on shutdown. The client is shared by every request; only
// per-request scopes are ever mutated.
func ProvideSentry(lc fx.Lifecycle, cfg *config.Config) (*sentry.Client, error) {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.Sentry.DSN,
		Environment:      cfg.Sentry.Environment,
		Release:          cfg.Sentry.Release,
		SampleRate:       cfg.Sentry.SampleRate,
		Debug:            cfg.Sentry.Debug,
		SendDefaultPII:   cfg.Sentry.SendDefaultPII,
		AttachStacktrace: cfg.Sentry.AttachStacktrace,
	})
	if err != nil {
		return nil, err
	}

	flushTimeout := time.Duration(cfg.Sentry.FlushTimeoutSeconds) * time.Second
	if flushTimeout <= 0 {
		flushTimeout = 2 * time.Second
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("flushing pending Sentry events")
			sentry.Flush(flushTimeout)
			return nil
		},
	})

	return sentry.CurrentHub().Client(), nil
}
