package platform_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/architus-bot/logs-core/internal/platform"
)

func TestAuditLogEntry_RoundTrip(t *testing.T) {
	raw := []byte(`{"id":"7","action_type":22,"target_id":"100","user_id":"200","reason":"spamming"}`)

	var entry platform.AuditLogEntry
	require.NoError(t, json.Unmarshal(raw, &entry))

	assert.Equal(t, uint64(7), entry.ID)
	assert.Equal(t, 22, entry.ActionType)
	assert.Equal(t, uint64(100), entry.TargetID)
	assert.Equal(t, uint64(200), entry.UserID)
	assert.Equal(t, "spamming", entry.Reason)

	out, err := json.Marshal(entry)
	require.NoError(t, err)
	assert.JSONEq(t, string(raw), string(out))
}

func TestAuditLogEntry_MarshalWithoutPriorUnmarshal(t *testing.T) {
	entry := platform.AuditLogEntry{ID: 7, ActionType: 22, Reason: "spamming"}

	out, err := json.Marshal(entry)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"7","action_type":22,"target_id":"0","user_id":"0","reason":"spamming"}`, string(out))
}

func TestAuditLogEntry_InvalidSnowflake(t *testing.T) {
	raw := []byte(`{"id":"not-a-number","action_type":1}`)

	var entry platform.AuditLogEntry
	assert.Error(t, json.Unmarshal(raw, &entry))
}
