package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/architus-bot/logs-core/internal/logging"
)

func TestForEvent_AddsStandardAttributes(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	logger := logging.ForEvent(base, "evt-1", "MESSAGE_CREATE", 42, 1700000000000)
	logger.Info("normalized")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	assert.Equal(t, "evt-1", record["event_id"])
	assert.Equal(t, "MESSAGE_CREATE", record["event_type"])
	assert.Equal(t, float64(42), record["event_guild_id"])
	assert.Equal(t, float64(1700000000000), record["event_ingress_timestamp"])
}

func TestForEvent_IndependentFromBaseLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	_ = logging.ForEvent(base, "evt-1", "MESSAGE_CREATE", 1, 1)
	base.Info("unrelated")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	_, hasEventID := record["event_id"]
	assert.False(t, hasEventID)
}
