package platform

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// AuditLogEntry is an administrative-action record returned by the chat
// platform's audit log search endpoint. The core treats it opaquely beyond
// ID; the handful of additional fields exist only so a processor's search
// predicate (§4.4) can match on them.
type AuditLogEntry struct {
	ID         uint64
	ActionType int
	TargetID   uint64
	UserID     uint64
	Reason     string

	raw json.RawMessage
}

// auditLogEntryWire mirrors the platform's wire representation, where
// snowflake ids are transmitted as JSON strings to avoid precision loss.
type auditLogEntryWire struct {
	ID         string `json:"id"`
	ActionType int    `json:"action_type"`
	TargetID   string `json:"target_id"`
	UserID     string `json:"user_id"`
	Reason     string `json:"reason"`
}

// UnmarshalJSON retains the exact bytes it was given (so MarshalJSON can
// reproduce them byte-for-byte) while also decoding the fields predicates
// commonly match against.
func (e *AuditLogEntry) UnmarshalJSON(data []byte) error {
	var wire auditLogEntryWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("platform: decode audit log entry: %w", err)
	}

	id, err := parseSnowflake(wire.ID)
	if err != nil {
		return fmt.Errorf("platform: decode audit log entry id: %w", err)
	}

	e.ID = id
	e.ActionType = wire.ActionType
	e.TargetID, _ = parseSnowflake(wire.TargetID)
	e.UserID, _ = parseSnowflake(wire.UserID)
	e.Reason = wire.Reason
	e.raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON reproduces the exact bytes this entry was decoded from,
// satisfying the CombinedAuditLogEntry invariant that json is a
// serialization of entry (spec.md §3).
func (e AuditLogEntry) MarshalJSON() ([]byte, error) {
	if e.raw != nil {
		return e.raw, nil
	}
	return json.Marshal(auditLogEntryWire{
		ID:         strconv.FormatUint(e.ID, 10),
		ActionType: e.ActionType,
		TargetID:   strconv.FormatUint(e.TargetID, 10),
		UserID:     strconv.FormatUint(e.UserID, 10),
		Reason:     e.Reason,
	})
}

func parseSnowflake(s string) (uint64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseUint(s, 10, 64)
}

// Predicate matches an AuditLogEntry against processor-specific criteria
// (e.g. target id and action code).
type Predicate func(AuditLogEntry) bool

// SearchQuery parameterizes an audit log search: which guild to search, how
// many entries to request, and which entry to select from the results.
type SearchQuery struct {
	GuildID uint64
	Limit   int
	Match   Predicate
}
