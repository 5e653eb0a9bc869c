package gateway

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/architus-bot/logs-core/internal/event"
	"github.com/architus-bot/logs-core/internal/logging"
)

// Fleet dispatches an incoming event to the Processor registered for its
// event-type tag (spec.md §4.6). Registration happens once at startup;
// after that a Fleet is immutable and safe for concurrent Normalize calls
// (spec.md §5).
type Fleet struct {
	processors map[string]Processor
	deps       Deps
	logger     *slog.Logger
}

// NewFleet creates a fleet with no processors registered.
func NewFleet(deps Deps, logger *slog.Logger) *Fleet {
	return &Fleet{processors: make(map[string]Processor), deps: deps, logger: logger}
}

// Register binds a Processor to a gateway event-type tag.
func (f *Fleet) Register(eventType string, p Processor) {
	f.processors[eventType] = p
}

// Normalize routes ews to the processor registered for its event type,
// producing a NormalizedEvent or a classified ProcessingError (spec.md §7).
func (f *Fleet) Normalize(ctx context.Context, ews EventWithSource) (event.NormalizedEvent, error) {
	processor, ok := f.processors[ews.Event.EventType]
	if !ok {
		return event.NormalizedEvent{}, SubProcessorNotFound(ews.Event.EventType)
	}

	logger := logging.ForEvent(f.logger, ews.Event.ID, ews.Event.EventType, ews.Event.GuildID, ews.Event.IngressTimestamp).
		With(slog.String("trace_id", uuid.NewString()))

	return processor.apply(ctx, ews, f.deps, logger)
}
