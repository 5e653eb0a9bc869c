// Package event defines the normalized output schema downstream indexing
// assumes (spec.md §3 NormalizedEvent), along with the small union types it
// is built from.
package event

import "encoding/json"

// Type is the normalized event-type enum. Gateway event-type tag strings
// (e.g. "MESSAGE_CREATE") are mapped to one of these by the processor that
// handles that tag; there is no one-to-one requirement between gateway tags
// and normalized types.
type Type string

const (
	TypeUnknown         Type = ""
	TypeMessageSend     Type = "message_send"
	TypeMessageEdit     Type = "message_edit"
	TypeMessageDelete   Type = "message_delete"
	TypeMemberBanAdd    Type = "member_ban_add"
	TypeMemberBanRemove Type = "member_ban_remove"
	TypeMemberKick      Type = "member_kick"
	TypeMemberRoleAdd   Type = "member_role_add"
	TypeChannelCreate   Type = "channel_create"
	TypeChannelDelete   Type = "channel_delete"
)

// IDParams is the tuple of inputs a downstream indexer hashes or
// concatenates to derive a deterministic document id. Order is
// significant and is fixed per event type by the processor that produces
// it.
type IDParams []any

// Origin is a bitmask tag recording which fragments of Source were
// populated for a given NormalizedEvent. It is always a pure function of
// Source's own fields — see Source.Origin.
type Origin uint8

const (
	OriginGateway Origin = 1 << iota
	OriginAuditLog
)

// Has reports whether the given origin bit is set.
func (o Origin) Has(bit Origin) bool { return o&bit != 0 }

// Source bundles the raw JSON fragments a NormalizedEvent was assembled
// from: the gateway payload, and (when captured) the audit log entry that
// enriched it.
type Source struct {
	Gateway  json.RawMessage `json:"gateway,omitempty"`
	AuditLog json.RawMessage `json:"audit_log,omitempty"`
}

// Origin derives the Origin tag for this Source. It is deterministic: two
// Sources with the same populated fields always produce the same Origin,
// regardless of field contents.
func (s Source) Origin() Origin {
	var o Origin
	if s.Gateway != nil {
		o |= OriginGateway
	}
	if s.AuditLog != nil {
		o |= OriginAuditLog
	}
	return o
}

// Entity is a semi-structured reference to a gateway/platform object
// (a channel, a member, a role, ...) captured by a normalizer. Extra
// carries whatever additional fields a specific event type's processor
// chose to extract; callers that need typed access re-decode it.
type Entity struct {
	ID    uint64          `json:"id"`
	Kind  string          `json:"kind,omitempty"`
	Name  string          `json:"name,omitempty"`
	Extra json.RawMessage `json:"extra,omitempty"`
}

// Content is the structured body of a normalized event — the part of the
// payload that is specific to what happened, as opposed to who/where it
// happened to.
type Content struct {
	Fields map[string]any `json:"fields,omitempty"`
}

// NormalizedEvent is the uniform output schema of the core (spec.md §3).
type NormalizedEvent struct {
	IDParams   IDParams `json:"id_params"`
	Timestamp  uint64   `json:"timestamp"`
	Source     Source   `json:"source"`
	Origin     Origin   `json:"origin"`
	EventType  Type     `json:"event_type"`
	GuildID    uint64   `json:"guild_id"`
	Reason     *string  `json:"reason,omitempty"`
	AuditLogID *uint64  `json:"audit_log_id,omitempty"`
	Channel    *Entity  `json:"channel,omitempty"`
	Agent      *Entity  `json:"agent,omitempty"`
	Subject    *Entity  `json:"subject,omitempty"`
	Auxiliary  *Entity  `json:"auxiliary,omitempty"`
	Content    Content  `json:"content"`
}
