package gateway

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUnexpected_TrueForEveryKindExceptDrop(t *testing.T) {
	cases := []*ProcessingError{
		SubProcessorNotFound("MESSAGE_CREATE"),
		FatalSourceError(errors.New("boom")),
		NoAuditLogEntry("MEMBER_BAN_ADD"),
	}
	for _, err := range cases {
		assert.True(t, err.IsUnexpected(), "expected Kind %v to be unexpected", err.Kind)
	}

	assert.False(t, Drop.IsUnexpected())
}

func TestProcessingError_UnwrapExposesCause(t *testing.T) {
	cause := errors.New("transport failed")
	err := FatalSourceError(cause)
	assert.ErrorIs(t, err, cause)
}

func TestProcessingError_ErrorMessagesAreDistinct(t *testing.T) {
	seen := map[string]bool{}
	for _, err := range []*ProcessingError{
		SubProcessorNotFound("X"),
		FatalSourceError(errors.New("y")),
		Drop,
		NoAuditLogEntry("X"),
	} {
		msg := err.Error()
		assert.False(t, seen[msg], "duplicate error message: %s", msg)
		seen[msg] = true
	}
}
