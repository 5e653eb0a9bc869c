package bulk

import (
	"encoding/json"
	"fmt"
)

// Operation is one action/source line pair of a bulk request body
// (spec.md §3 BulkOperation, §4.7). Both lines are pre-serialized at
// construction so a batch never re-serializes a document.
type Operation struct {
	actionLine json.RawMessage
	sourceLine json.RawMessage
}

type actionMeta struct {
	ID string `json:"_id,omitempty"`
}

// Create appends a document, failing server-side if a document with the
// same id already exists.
func Create(id string, doc any) (Operation, error) {
	return build("create", id, doc)
}

// Index upserts a document wholesale: creates it or replaces it entirely.
func Index(id string, doc any) (Operation, error) {
	return build("index", id, doc)
}

// Update partially merges fields into an existing document.
func Update(id string, doc any) (Operation, error) {
	action, err := json.Marshal(map[string]actionMeta{"update": {ID: id}})
	if err != nil {
		return Operation{}, fmt.Errorf("%w: %w", ErrActionSerialization, err)
	}
	source, err := json.Marshal(struct {
		Doc any `json:"doc"`
	}{Doc: doc})
	if err != nil {
		return Operation{}, fmt.Errorf("%w: %w", ErrSourceSerialization, err)
	}
	return Operation{actionLine: action, sourceLine: source}, nil
}

// Delete removes a document by id; it carries no source line.
func Delete(id string) (Operation, error) {
	action, err := json.Marshal(map[string]actionMeta{"delete": {ID: id}})
	if err != nil {
		return Operation{}, fmt.Errorf("%w: %w", ErrActionSerialization, err)
	}
	return Operation{actionLine: action}, nil
}

func build(action, id string, doc any) (Operation, error) {
	actionLine, err := json.Marshal(map[string]actionMeta{action: {ID: id}})
	if err != nil {
		return Operation{}, fmt.Errorf("%w: %w", ErrActionSerialization, err)
	}
	sourceLine, err := json.Marshal(doc)
	if err != nil {
		return Operation{}, fmt.Errorf("%w: %w", ErrSourceSerialization, err)
	}
	return Operation{actionLine: actionLine, sourceLine: sourceLine}, nil
}
