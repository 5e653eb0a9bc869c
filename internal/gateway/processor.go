package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/architus-bot/logs-core/internal/config"
	"github.com/architus-bot/logs-core/internal/emoji"
	"github.com/architus-bot/logs-core/internal/event"
	"github.com/architus-bot/logs-core/internal/platform"
)

// Deps bundles the shared, read-only collaborators every Context borrows
// (spec.md §5 Shared resources).
type Deps struct {
	Platform *platform.Client
	Config   *config.Config
	Emojis   *emoji.Dict
}

// Processor is a per-event-type normalization plan (spec.md §4.6).
type Processor interface {
	apply(ctx context.Context, ews EventWithSource, deps Deps, logger *slog.Logger) (event.NormalizedEvent, error)
}

// Direct produces the entire NormalizedEvent from a single Source and never
// touches an audit-log latch.
type Direct struct {
	Source Source[event.NormalizedEvent]
}

func (d Direct) apply(ctx context.Context, ews EventWithSource, deps Deps, logger *slog.Logger) (event.NormalizedEvent, error) {
	gctx := Context{
		Ctx:        ctx,
		Event:      &ews.Event,
		SourceJSON: ews.Source,
		Platform:   deps.Platform,
		Config:     deps.Config,
		Emojis:     deps.Emojis,
		Logger:     logger,
	}
	return d.Source.Consume(gctx)
}

// SplitProcessor runs one Source per normalized field concurrently,
// coordinating audit-log write-before-read via a single-writer latch
// (spec.md §4.5). AuditLog is nil for event types that never enrich from
// the audit log.
type SplitProcessor struct {
	EventType Source[event.Type]
	IDParams  Source[event.IDParams]
	Timestamp Source[uint64]
	Reason    Source[*string]
	Channel   Source[*event.Entity]
	Agent     Source[*event.Entity]
	Subject   Source[*event.Entity]
	Auxiliary Source[*event.Entity]
	Content   Source[event.Content]

	AuditLog *AuditLogSource
}

func (p SplitProcessor) apply(ctx context.Context, ews EventWithSource, deps Deps, logger *slog.Logger) (event.NormalizedEvent, error) {
	latch := newAuditLogLatch()

	gctx := Context{
		Ctx:        ctx,
		Event:      &ews.Event,
		SourceJSON: ews.Source,
		auditLog:   latch,
		Platform:   deps.Platform,
		Config:     deps.Config,
		Emojis:     deps.Emojis,
		Logger:     logger,
	}

	// Acquire the write handle synchronously, before any sibling task
	// starts: every AuditLogPath reader that reaches the latch blocks
	// until this install call runs (spec.md §5).
	var handle *auditLogWriteHandle
	if p.AuditLog != nil {
		handle = latch.acquireWrite()
		gctx.auditLog = latch
	}

	var (
		eventType event.Type
		idParams  event.IDParams
		timestamp uint64
		reason    *string
		channel   *event.Entity
		agent     *event.Entity
		subject   *event.Entity
		auxiliary *event.Entity
		content   event.Content
	)

	g, groupCtx := errgroup.WithContext(ctx)
	gctx.Ctx = groupCtx
	g.Go(func() error { return p.loadAuditLog(gctx, handle) })
	g.Go(func() (err error) { eventType, err = p.EventType.Consume(gctx); return })
	g.Go(func() (err error) { idParams, err = p.IDParams.Consume(gctx); return })
	g.Go(func() (err error) { timestamp, err = p.Timestamp.Consume(gctx); return })
	g.Go(func() (err error) { reason, err = p.Reason.Consume(gctx); return })
	g.Go(func() (err error) { channel, err = p.Channel.Consume(gctx); return })
	g.Go(func() (err error) { agent, err = p.Agent.Consume(gctx); return })
	g.Go(func() (err error) { subject, err = p.Subject.Consume(gctx); return })
	g.Go(func() (err error) { auxiliary, err = p.Auxiliary.Consume(gctx); return })
	g.Go(func() (err error) { content, err = p.Content.Consume(gctx); return })

	if err := g.Wait(); err != nil {
		return event.NormalizedEvent{}, err
	}

	combined := latch.read()
	var auditLogID *uint64
	var auditLogJSON json.RawMessage
	if combined != nil {
		id := combined.Entry.ID
		auditLogID = &id
		auditLogJSON = combined.JSON
	}

	gatewayJSON, err := json.Marshal(ews.Source)
	if err != nil {
		return event.NormalizedEvent{}, FatalSourceError(fmt.Errorf("serialize gateway source: %w", err))
	}

	src := event.Source{Gateway: gatewayJSON, AuditLog: auditLogJSON}

	return event.NormalizedEvent{
		IDParams:   idParams,
		Timestamp:  timestamp,
		Source:     src,
		Origin:     src.Origin(),
		EventType:  eventType,
		GuildID:    ews.Event.GuildID,
		Reason:     reason,
		AuditLogID: auditLogID,
		Channel:    channel,
		Agent:      agent,
		Subject:    subject,
		Auxiliary:  auxiliary,
		Content:    content,
	}, nil
}

// loadAuditLog owns the write handle for this pass: it sources the audit
// log entry (when declared), serializes it to JSON once, and installs the
// result exactly once, releasing the latch for every blocked reader
// (spec.md §4.5 step 4). A failed search still installs "no entry" so
// blocked readers fail with NoAuditLogEntry rather than deadlocking.
func (p SplitProcessor) loadAuditLog(ctx Context, handle *auditLogWriteHandle) error {
	if p.AuditLog == nil {
		return nil
	}

	entry, err := p.AuditLog.Consume(ctx)
	if err != nil {
		handle.install(nil)
		return err
	}
	if entry == nil {
		handle.install(nil)
		return nil
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		handle.install(nil)
		return FatalSourceError(fmt.Errorf("serialize audit log entry to JSON: %w", err))
	}
	handle.install(&CombinedAuditLogEntry{Entry: *entry, JSON: raw})
	return nil
}
