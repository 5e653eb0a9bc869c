package event_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/architus-bot/logs-core/internal/event"
)

func TestOrigin_Has(t *testing.T) {
	o := event.OriginGateway | event.OriginAuditLog
	assert.True(t, o.Has(event.OriginGateway))
	assert.True(t, o.Has(event.OriginAuditLog))
	assert.False(t, event.OriginGateway.Has(event.OriginAuditLog))
}

func TestSource_Origin_GatewayOnly(t *testing.T) {
	s := event.Source{Gateway: json.RawMessage(`{}`)}
	assert.Equal(t, event.OriginGateway, s.Origin())
}

func TestSource_Origin_Both(t *testing.T) {
	s := event.Source{Gateway: json.RawMessage(`{}`), AuditLog: json.RawMessage(`{}`)}
	o := s.Origin()
	assert.True(t, o.Has(event.OriginGateway))
	assert.True(t, o.Has(event.OriginAuditLog))
}

func TestSource_Origin_Neither(t *testing.T) {
	var s event.Source
	assert.Equal(t, event.Origin(0), s.Origin())
}

func TestSource_Origin_Deterministic(t *testing.T) {
	a := event.Source{Gateway: json.RawMessage(`{"a":1}`)}
	b := event.Source{Gateway: json.RawMessage(`{"b":2}`)}
	assert.Equal(t, a.Origin(), b.Origin())
}

func TestNormalizedEvent_JSONRoundTrip(t *testing.T) {
	reason := "spamming"
	auditLogID := uint64(7)

	evt := event.NormalizedEvent{
		IDParams:  event.IDParams{uint64(100), "MEMBER_BAN_ADD"},
		Timestamp: 1700000000000,
		Source: event.Source{
			Gateway:  json.RawMessage(`{"user":{"id":"100"}}`),
			AuditLog: json.RawMessage(`{"id":"7"}`),
		},
		Origin:     event.OriginGateway | event.OriginAuditLog,
		EventType:  event.TypeMemberBanAdd,
		GuildID:    42,
		Reason:     &reason,
		AuditLogID: &auditLogID,
		Subject:    &event.Entity{ID: 100, Kind: "member"},
		Agent:      &event.Entity{ID: 1, Kind: "member"},
		Content:    event.Content{Fields: map[string]any{"reason": reason}},
	}

	raw, err := json.Marshal(evt)
	require.NoError(t, err)

	var decoded event.NormalizedEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, evt.EventType, decoded.EventType)
	assert.Equal(t, evt.GuildID, decoded.GuildID)
	require.NotNil(t, decoded.Reason)
	assert.Equal(t, reason, *decoded.Reason)
	require.NotNil(t, decoded.Subject)
	assert.Equal(t, uint64(100), decoded.Subject.ID)
}

func TestNormalizedEvent_OmitsNilOptionalFields(t *testing.T) {
	evt := event.NormalizedEvent{EventType: event.TypeMessageSend}

	raw, err := json.Marshal(evt)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))

	_, hasReason := fields["reason"]
	assert.False(t, hasReason)
	_, hasAuditLogID := fields["audit_log_id"]
	assert.False(t, hasAuditLogID)
	_, hasChannel := fields["channel"]
	assert.False(t, hasChannel)
}
