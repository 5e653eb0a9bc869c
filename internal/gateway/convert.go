package gateway

import (
	"fmt"

	"github.com/architus-bot/logs-core/internal/event"
)

// ToUint64 converts a decoded JSON number (or numeric string — snowflake
// ids are frequently transmitted as strings to dodge float64 precision
// loss) into a uint64.
func ToUint64(value any, _ Context) (uint64, error) {
	switch v := value.(type) {
	case float64:
		return uint64(v), nil
	case string:
		var n uint64
		if _, err := fmt.Sscanf(v, "%d", &n); err != nil {
			return 0, fmt.Errorf("gateway: %q is not a valid unsigned integer: %w", v, err)
		}
		return n, nil
	case nil:
		return 0, fmt.Errorf("gateway: expected a number or numeric string, got null")
	default:
		return 0, fmt.Errorf("gateway: expected a number or numeric string, got %T", value)
	}
}

// ToString converts a decoded JSON string leaf into a string.
func ToString(value any, _ Context) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("gateway: expected a string, got %T", value)
	}
	return s, nil
}

// ToOptionalString converts a possibly-null JSON leaf into *string, never
// erroring on null.
func ToOptionalString(value any, _ Context) (*string, error) {
	if value == nil {
		return nil, nil
	}
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("gateway: expected a string or null, got %T", value)
	}
	return &s, nil
}

// ToEventType builds a Converter constant from a fixed normalized Type —
// useful for event-type sources that don't depend on the payload at all.
func ToEventType(t event.Type) Converter[event.Type] {
	return func(any, Context) (event.Type, error) { return t, nil }
}

// EntityFromID builds a *event.Entity with the given kind from an id leaf,
// suitable as the tail of a Map over a ToUint64 source.
func EntityFromID(kind string) func(uint64) (*event.Entity, error) {
	return func(id uint64) (*event.Entity, error) {
		return &event.Entity{ID: id, Kind: kind}, nil
	}
}
