package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/architus-bot/logs-core/internal/config"
	"github.com/architus-bot/logs-core/internal/emoji"
	"github.com/architus-bot/logs-core/internal/platform"
)

// Permissions is a stand-in for the platform's permission bitflags. See
// HasPerms below for why nothing currently inspects it.
type Permissions uint64

// Context is the cheap-to-copy bundle of references shared by every
// sub-source processing one event (spec.md §3, §4.3). Every field is
// borrowed from the owning Fleet or SplitProcessor; sources must not mutate
// what they point to.
type Context struct {
	// Ctx is the request-scoped cancellation context for any blocking I/O a
	// Source performs (currently only AuditLogSource).
	Ctx context.Context

	Event      *Event
	SourceJSON any

	// auditLog is nil when the owning processor declared no audit-log
	// source; AuditLogPath sources must fail fast in that case rather than
	// blocking forever on an unused latch.
	auditLog *auditLogLatch

	Platform *platform.Client
	Config   *config.Config
	Emojis   *emoji.Dict
	Logger   *slog.Logger
}

// FromGateway extracts a value from the event's own JSON payload — the
// standard entry point for GatewayPath sources (spec.md §4.3).
func FromGateway[T any](ctx Context, path *Path, convert Converter[T]) (T, error) {
	return Extract(path, ctx.SourceJSON, convert, ctx)
}

// FromAuditLog extracts a value from the sourced audit log entry's JSON
// projection — the standard entry point for AuditLogPath sources. It
// blocks until the owning SplitProcessor's audit-log writer installs a
// result (spec.md §4.3, §5).
func FromAuditLog[T any](ctx Context, path *Path, convert Converter[T]) (T, error) {
	var zero T

	if ctx.auditLog == nil {
		return zero, FatalSourceError(fmt.Errorf("no audit log reader configured for event type %s", ctx.Event.EventType))
	}

	combined := ctx.auditLog.read()
	if combined == nil {
		return zero, NoAuditLogEntry(ctx.Event.EventType)
	}

	var root any
	if err := json.Unmarshal(combined.JSON, &root); err != nil {
		return zero, FatalSourceError(fmt.Errorf("decode audit log projection: %w", err))
	}
	return Extract(path, root, convert, ctx)
}

// HasPerms always reports true. The original implementation this core was
// grown from leaves its permission check as a stub returning true
// unconditionally; this keeps that behavior rather than inventing a real
// check against data the core does not otherwise track.
func (c Context) HasPerms(_ Permissions) (bool, error) {
	return true, nil
}
