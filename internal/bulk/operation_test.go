package bulk

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate_BuildsActionAndSourceLines(t *testing.T) {
	op, err := Create("1", map[string]string{"body": "hi"})
	require.NoError(t, err)

	var action map[string]actionMeta
	require.NoError(t, json.Unmarshal(op.actionLine, &action))
	assert.Equal(t, "1", action["create"].ID)

	var source map[string]string
	require.NoError(t, json.Unmarshal(op.sourceLine, &source))
	assert.Equal(t, "hi", source["body"])
}

func TestIndex_BuildsActionAndSourceLines(t *testing.T) {
	op, err := Index("2", map[string]string{"body": "hi"})
	require.NoError(t, err)

	var action map[string]actionMeta
	require.NoError(t, json.Unmarshal(op.actionLine, &action))
	assert.Equal(t, "2", action["index"].ID)
	assert.NotNil(t, op.sourceLine)
}

func TestUpdate_WrapsDocField(t *testing.T) {
	op, err := Update("3", map[string]string{"body": "edited"})
	require.NoError(t, err)

	var action map[string]actionMeta
	require.NoError(t, json.Unmarshal(op.actionLine, &action))
	assert.Equal(t, "3", action["update"].ID)

	var source struct {
		Doc map[string]string `json:"doc"`
	}
	require.NoError(t, json.Unmarshal(op.sourceLine, &source))
	assert.Equal(t, "edited", source.Doc["body"])
}

func TestDelete_HasNoSourceLine(t *testing.T) {
	op, err := Delete("4")
	require.NoError(t, err)

	var action map[string]actionMeta
	require.NoError(t, json.Unmarshal(op.actionLine, &action))
	assert.Equal(t, "4", action["delete"].ID)
	assert.Nil(t, op.sourceLine)
}

func TestCreate_UnserializableDocumentFails(t *testing.T) {
	_, err := Create("1", make(chan int))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceSerialization)
}
