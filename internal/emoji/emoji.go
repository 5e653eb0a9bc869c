// Package emoji loads a read-only dictionary mapping emoji shortcodes to
// their metadata, consulted by converters that resolve shortcodes embedded
// in gateway payloads (e.g. reaction events). It is a pure lookup table with
// no write path, shared immutably across every event being normalized.
package emoji

import (
	"encoding/json"
	"fmt"
	"os"
)

// Emoji is one dictionary entry.
type Emoji struct {
	Name    string `json:"name"`
	Unicode string `json:"unicode,omitempty"`
}

// Dict is an immutable, read-only emoji dictionary keyed by shortcode
// (without surrounding colons, e.g. "thumbsup").
type Dict struct {
	entries map[string]Emoji
}

// Load reads a JSON object of {shortcode: Emoji} pairs from path.
func Load(path string) (*Dict, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("emoji: read dictionary file: %w", err)
	}
	var entries map[string]Emoji
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("emoji: decode dictionary file: %w", err)
	}
	return &Dict{entries: entries}, nil
}

// Empty returns a dictionary with no entries, useful in tests.
func Empty() *Dict {
	return &Dict{entries: map[string]Emoji{}}
}

// Lookup resolves a shortcode, reporting whether it was found.
func (d *Dict) Lookup(shortcode string) (Emoji, bool) {
	if d == nil {
		return Emoji{}, false
	}
	e, ok := d.entries[shortcode]
	return e, ok
}
