package gateway

import (
	"fmt"

	"github.com/architus-bot/logs-core/internal/platform"
)

// AuditLogSource produces an optional audit log entry by issuing an HTTP
// search and selecting the first entry satisfying a processor-supplied
// predicate (spec.md §4.4). It never itself fails when no entry matches —
// that is a legitimate outcome the SplitProcessor's write handle installs
// as "no entry" rather than as an error.
type AuditLogSource struct {
	query func(ctx Context) platform.SearchQuery
}

// NewAuditLogSource builds an AuditLogSource whose search parameters
// (guild, predicate) are derived per-event from Context.
func NewAuditLogSource(query func(ctx Context) platform.SearchQuery) *AuditLogSource {
	return &AuditLogSource{query: query}
}

// Consume issues the search. A transport failure or non-success response is
// classified fatal (spec.md §4.4, §7).
func (a *AuditLogSource) Consume(ctx Context) (*platform.AuditLogEntry, error) {
	q := a.query(ctx)
	entry, err := ctx.Platform.SearchAuditLog(ctx.Ctx, q)
	if err != nil {
		return nil, FatalSourceError(fmt.Errorf("audit log search failed for event type %s: %w", ctx.Event.EventType, err))
	}
	return entry, nil
}
