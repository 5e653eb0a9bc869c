package gateway

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_RequiredPathMissingErrors(t *testing.T) {
	path := MustCompilePath(".missing")
	root := map[string]any{"id": "1"}

	_, err := Extract(path, root, ToUint64, Context{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPathUnresolved)
}

func TestExtract_OptionalPathMissingReturnsZero(t *testing.T) {
	path := MustCompileOptionalPath(".missing")
	root := map[string]any{"id": "1"}

	value, err := Extract(path, root, ToOptionalString, Context{})
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestExtract_ConversionFailureWraps(t *testing.T) {
	path := MustCompilePath(".id")
	root := map[string]any{"id": true}

	_, err := Extract(path, root, ToUint64, Context{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConversionFailed)
}

func TestExtract_ResolvesNestedValue(t *testing.T) {
	path := MustCompilePath(".user.id")
	root := map[string]any{"user": map[string]any{"id": "42"}}

	value, err := Extract(path, root, ToUint64, Context{})
	require.NoError(t, err)
	assert.Equal(t, uint64(42), value)
}

func TestCompilePath_MalformedExpressionErrors(t *testing.T) {
	_, err := CompilePath("not a jq expr (")
	assert.Error(t, err)
}

func TestMustCompilePath_PanicsOnMalformedExpression(t *testing.T) {
	assert.Panics(t, func() {
		MustCompilePath("not a jq expr (")
	})
}

func TestErrConversionFailed_IsDistinctFromErrPathUnresolved(t *testing.T) {
	assert.False(t, errors.Is(ErrConversionFailed, ErrPathUnresolved))
}
