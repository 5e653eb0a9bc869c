// Command gateway-normalize is the process entry point for the log
// ingestion core: it wires configuration, the platform HTTP client, the
// document store connection, and the processor fleet together, then pumps
// events from an upstream source into the fleet and indexes the results.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/architus-bot/logs-core/internal/bulk"
	appconfig "github.com/architus-bot/logs-core/internal/config"
	"github.com/architus-bot/logs-core/internal/emoji"
	"github.com/architus-bot/logs-core/internal/event"
	"github.com/architus-bot/logs-core/internal/gateway"
	"github.com/architus-bot/logs-core/internal/platform"
	envconfig "github.com/architus-bot/logs-core/pkg/config"
	opensearchpkg "github.com/architus-bot/logs-core/pkg/opensearch"
)

// EventSource is the upstream ingress queue the core consumes from. Its
// concrete transport (message broker, RPC stream) is out of scope for this
// module; production deployments supply their own implementation.
type EventSource interface {
	Next(ctx context.Context) (gateway.Event, error)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg appconfig.Config
	if err := envconfig.Load(&cfg); err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := cfg.Logging.BuildLogger()
	slog.SetDefault(logger)

	emojis, err := emoji.Load(emojiDictPath())
	if err != nil {
		logger.Warn("failed to load emoji dictionary, continuing with an empty one", slog.Any("error", err))
		emojis = emoji.Empty()
	}

	platformCfg := platform.Config{
		BaseURL: cfg.HTTPClient.BaseURL,
		Timeout: cfg.HTTPClient.Timeout,
	}
	if cfg.HTTPClient.BasicAuth() {
		platformCfg.AuthUsername = cfg.HTTPClient.AuthUsername
		platformCfg.AuthPassword = cfg.HTTPClient.AuthPassword
	}
	platformClient := platform.New(platformCfg)

	osCfg := opensearchpkg.Config{Addresses: []string{cfg.DocumentStore.URL}}
	if !cfg.DocumentStore.Unauthenticated() {
		osCfg.Username = cfg.DocumentStore.AuthUsername
		osCfg.Password = cfg.DocumentStore.AuthPassword
	}
	osClient, err := opensearchpkg.New(ctx, osCfg)
	if err != nil {
		logger.Error("failed to construct document store client", slog.Any("error", err))
		os.Exit(1)
	}
	if err := opensearchpkg.Healthcheck(osClient)(ctx); err != nil {
		logger.Error("document store failed healthcheck", slog.Any("error", err))
		os.Exit(1)
	}

	bulkClient := bulk.New(osClient, logger)
	if err := bulkClient.Ping(ctx); err != nil {
		logger.Error("document store is unreachable", slog.Any("error", err))
		os.Exit(1)
	}

	fleet := gateway.BuildDefaultFleet(gateway.Deps{
		Platform: platformClient,
		Config:   &cfg,
		Emojis:   emojis,
	}, logger)

	logger.Info("gateway-normalize core initialized")
	_ = fleet
	<-ctx.Done()
	logger.Info("shutting down")
}

// emojiDictPath resolves the path to the emoji shortcode dictionary. The
// dictionary itself is out of scope (spec.md §1); this core only needs a
// location to load it from.
func emojiDictPath() string {
	if path := os.Getenv("EMOJI_DICT_PATH"); path != "" {
		return path
	}
	return "emoji.json"
}

// decodeAndNormalize is the per-event pipeline step: decode the raw gateway
// payload, then route it through the fleet. Extracted as a standalone
// function so it can be driven directly by tests without a real
// EventSource.
func decodeAndNormalize(ctx context.Context, fleet *gateway.Fleet, raw gateway.Event) (event.NormalizedEvent, error) {
	ews, err := gateway.DecodeEvent(raw)
	if err != nil {
		return event.NormalizedEvent{}, err
	}
	return fleet.Normalize(ctx, ews)
}

// pump drains source, normalizing events until ctx is canceled or the
// source returns a non-cancellation error. Errors classified as unexpected
// by ProcessingError.IsUnexpected (every kind but Drop, so NoAuditLogEntry
// included) are logged as warnings; Drop is skipped silently. Not called
// from main because EventSource's concrete transport is out of scope; it
// is the wiring point a real deployment's ingress adapter calls into.
func pump(ctx context.Context, source EventSource, fleet *gateway.Fleet, logger *slog.Logger) error {
	for {
		raw, err := source.Next(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		normalized, err := decodeAndNormalize(ctx, fleet, raw)
		if err != nil {
			var procErr *gateway.ProcessingError
			if errors.As(err, &procErr) && !procErr.IsUnexpected() {
				continue
			}
			logger.Warn("failed to normalize gateway event",
				slog.String("event_id", raw.ID),
				slog.String("event_type", raw.EventType),
				slog.Any("error", err),
			)
			continue
		}

		body, err := json.Marshal(normalized)
		if err != nil {
			logger.Error("failed to serialize normalized event", slog.Any("error", err))
			continue
		}
		logger.Debug("normalized gateway event", slog.String("body", string(body)))
	}
}
