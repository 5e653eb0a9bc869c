package gateway

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Event is one inbound gateway payload (spec.md §3 GatewayEvent). It is
// immutable for the lifetime of one normalization pass.
type Event struct {
	ID               string
	IngressTimestamp uint64
	EventType        string
	GuildID          uint64
	Inner            []byte
}

// EventWithSource pairs a raw Event with its fully decoded JSON payload,
// ready for Path evaluation (spec.md §3).
type EventWithSource struct {
	Event  Event
	Source any
}

// ErrDecode indicates an Event's Inner payload could not be decoded.
var ErrDecode = errors.New("gateway: could not decode event payload")

// DecodeEvent decodes event's MessagePack-encoded inner payload into its
// JSON-shaped value, producing an EventWithSource ready for the fleet.
func DecodeEvent(event Event) (EventWithSource, error) {
	var decoded any
	if err := msgpack.Unmarshal(event.Inner, &decoded); err != nil {
		return EventWithSource{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return EventWithSource{Event: event, Source: normalizeDecoded(decoded)}, nil
}

// normalizeDecoded re-shapes a generic msgpack decode result into the same
// value shapes encoding/json would have produced (map[string]any, []any,
// float64, string, bool, nil) by round-tripping it through JSON. gojq's
// evaluator assumes that shape; msgpack's own generic decode does not
// always match it (e.g. it may hand back map[any]any for non-string keys or
// distinct integer types where JSON only has float64).
func normalizeDecoded(v any) any {
	raw, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var normalized any
	if err := json.Unmarshal(raw, &normalized); err != nil {
		return v
	}
	return normalized
}
