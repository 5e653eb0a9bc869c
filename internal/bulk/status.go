package bulk

import "log/slog"

// itemStatus is the per-action projection nested inside one bulk response
// item (spec.md §4.8). A well-formed response carries exactly one action
// key per item; this module handles more defensively (see projectStatus).
type itemStatus struct {
	Index  string `json:"_index,omitempty"`
	ID     string `json:"_id,omitempty"`
	Status int    `json:"status,omitempty"`
	Error  *struct {
		Type   string `json:"type,omitempty"`
		Reason string `json:"reason,omitempty"`
	} `json:"error,omitempty"`
}

type bulkResponseWire struct {
	Took   int                     `json:"took"`
	Errors bool                    `json:"errors"`
	Items  []map[string]itemStatus `json:"items"`
}

// Item is the normalized outcome of one Operation within a submitted batch.
type Item struct {
	Action string
	Index  string
	ID     string
	Status int
	Failed bool
	Reason string
}

// Status is the projected outcome of one Client.Submit call (spec.md §3
// BulkStatus).
type Status struct {
	Took   int
	Errors bool
	Items  []Item
}

// actionOrder fixes the field order in which a multi-action item's
// populated actions are emitted (spec.md §4.8, §9 Open Question).
var actionOrder = [...]string{"create", "delete", "index", "update"}

// projectStatus folds the document store's per-item response into a flat
// list. The store's contract is "at most one action per item"; if more than
// one is present anyway, one Item per populated action is emitted (in
// actionOrder) and a warning is logged, rather than discarding information
// or failing the whole batch.
func projectStatus(wire bulkResponseWire, logger *slog.Logger) Status {
	status := Status{Took: wire.Took, Errors: wire.Errors, Items: make([]Item, 0, len(wire.Items))}

	for _, raw := range wire.Items {
		if len(raw) > 1 && logger != nil {
			logger.Warn("bulk response item carried more than one action", slog.Int("action_count", len(raw)))
		}

		for _, action := range actionOrder {
			st, ok := raw[action]
			if !ok {
				continue
			}
			status.Items = append(status.Items, Item{
				Action: action,
				Index:  st.Index,
				ID:     st.ID,
				Status: st.Status,
				Failed: st.Error != nil,
				Reason: errorReason(st),
			})
		}
	}
	return status
}

func errorReason(st itemStatus) string {
	if st.Error == nil {
		return ""
	}
	return st.Error.Reason
}
