// Package config declares the environment-driven configuration surface for
// the gateway normalization core, loaded via github.com/architus-bot/logs-core/pkg/config.
package config

import (
	"log/slog"
	"time"

	"github.com/architus-bot/logs-core/pkg/logger"
)

// Config is the root configuration loaded once at process startup.
type Config struct {
	HTTPClient    HTTPClient
	DocumentStore DocumentStore
	Logging       Logging
}

// HTTPClient configures the outbound client used to reach the chat
// platform's HTTP API (audit log search).
type HTTPClient struct {
	BaseURL      string        `env:"PLATFORM_BASE_URL,required"`
	AuthUsername string        `env:"PLATFORM_AUTH_USERNAME" envDefault:""`
	AuthPassword string        `env:"PLATFORM_AUTH_PASSWORD" envDefault:""`
	Timeout      time.Duration `env:"PLATFORM_HTTP_TIMEOUT" envDefault:"5s"`
}

// BasicAuth reports whether the platform client should send HTTP basic auth,
// which only happens when a username is configured.
func (c HTTPClient) BasicAuth() bool {
	return c.AuthUsername != ""
}

// DocumentStore configures the Elasticsearch-compatible document store the
// bulk client indexes normalized events into.
type DocumentStore struct {
	URL          string `env:"DOCUMENT_STORE_URL,required"`
	AuthUsername string `env:"DOCUMENT_STORE_USERNAME" envDefault:""`
	AuthPassword string `env:"DOCUMENT_STORE_PASSWORD" envDefault:""`
}

// Unauthenticated reports whether the document store should be addressed
// without credentials.
func (c DocumentStore) Unauthenticated() bool {
	return c.AuthUsername == ""
}

// Logging configures the structured logging sink.
type Logging struct {
	Level       string `env:"LOG_LEVEL" envDefault:"info"`
	Format      string `env:"LOG_FORMAT" envDefault:"json"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Service     string `env:"SERVICE_NAME" envDefault:"gateway-normalize"`
}

// BuildLogger realizes the Logging section into a ready-to-use *slog.Logger
// following the options this repository's logger package exposes.
func (l Logging) BuildLogger() *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(l.Environment, l.Service),
		logger.WithFormat(logger.Format(l.Format)),
	}
	lvl, _ := parseLevel(l.Level)
	opts = append(opts, logger.WithLevel(lvl))
	return logger.New(opts...)
}

func parseLevel(s string) (slog.Level, bool) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, false
	}
	return lvl, true
}
