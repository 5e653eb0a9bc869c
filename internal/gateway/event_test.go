package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestDecodeEvent_ProducesJSONShapedValues(t *testing.T) {
	payload := map[string]any{
		"id":      "123",
		"nested":  map[string]any{"flag": true},
		"numbers": []any{1, 2, 3},
	}
	raw, err := msgpack.Marshal(payload)
	require.NoError(t, err)

	ews, err := DecodeEvent(Event{EventType: "MESSAGE_CREATE", Inner: raw})
	require.NoError(t, err)

	top, ok := ews.Source.(map[string]any)
	require.True(t, ok)

	_, ok = top["id"].(string)
	assert.True(t, ok)

	nested, ok := top["nested"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, nested["flag"])

	numbers, ok := top["numbers"].([]any)
	require.True(t, ok)
	require.Len(t, numbers, 3)
	_, isFloat := numbers[0].(float64)
	assert.True(t, isFloat, "msgpack integers should normalize to float64 like encoding/json")
}

func TestDecodeEvent_InvalidPayloadFails(t *testing.T) {
	_, err := DecodeEvent(Event{EventType: "MESSAGE_CREATE", Inner: []byte{0xc1}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)
}
