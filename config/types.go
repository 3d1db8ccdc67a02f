package config

import "fmt"

type Config struct {
	Service ServiceConfig `mapstructure:"service"`
	Server  ServerConfig  `mapstructure:"server"`
	Sentry  SentryConfig  `mapstructure:"sentry"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type ServiceConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

type ServerConfig struct {
	Port           int        `mapstructure:"port"`
	TimeoutSeconds int        `mapstructure:"timeout_seconds"`
	Environment    string     `mapstructure:"environment"`
	CORS           CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	Enabled      bool     `mapstructure:"enabled"`
	AllowOrigins []string `mapstructure:"allow_origins"`
}

type SentryConfig struct {
	// DSN is the Sentry project endpoint. Empty disables delivery but keeps
	// the full scope/capture pipeline active, which is what tests rely on.
	DSN string `mapstructure:"dsn"`

	Environment string `mapstructure:"environment"`
	Release     string `mapstructure:"release"`

	// SampleRate is the error event sample rate, 0.0 to 1.0.
	// Zero means the SDK default (sample everything).
	SampleRate float64 `mapstructure:"sample_rate"`

	Debug            bool `mapstructure:"debug"`
	SendDefaultPII   bool `mapstructure:"send_default_pii"`
	AttachStacktrace bool `mapstructure:"attach_stacktrace"`

	// FlushTimeoutSeconds bounds the final event flush on shutdown.
	FlushTimeoutSeconds int `mapstructure:"flush_timeout_seconds"`
}

type LoggingConfig struct {
	Level  string       `mapstructure:"level"`  // debug, info, warn, error
	Format string       `mapstructure:"format"` // text, json
	Output OutputConfig `mapstructure:"output"`
}

type OutputConfig struct {
	Stdout bool          `mapstructure:"stdout"`
	File   FileLogConfig `mapstructure:"file"`
}

type FileLogConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Path       string `mapstructure:"path"`        // e.g. "logs/app.log"
	MaxSizeMB  int    `mapstructure:"max_size_mb"` // rotate after N MB
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 0 and 65535, got %d", c.Server.Port)
	}
	if c.Sentry.SampleRate < 0 || c.Sentry.SampleRate > 1 {
		return fmt.Errorf("sentry.sample_rate must be between 0.0 and 1.0, got %g", c.Sentry.SampleRate)
	}
	return nil
}
