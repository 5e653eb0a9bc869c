package platform_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/architus-bot/logs-core/internal/platform"
)

func TestBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	b := platform.NewBreaker(2, time.Minute)
	boom := errors.New("boom")

	_, err := b.Execute(func() ([]platform.AuditLogEntry, error) { return nil, boom })
	require.ErrorIs(t, err, boom)

	_, err = b.Execute(func() ([]platform.AuditLogEntry, error) { return nil, boom })
	require.ErrorIs(t, err, boom)

	_, err = b.Execute(func() ([]platform.AuditLogEntry, error) {
		return []platform.AuditLogEntry{{ID: 1}}, nil
	})
	require.ErrorIs(t, err, platform.ErrCircuitOpen)
}

func TestBreaker_RecoversAfterTimeout(t *testing.T) {
	b := platform.NewBreaker(1, 10*time.Millisecond)
	boom := errors.New("boom")

	_, err := b.Execute(func() ([]platform.AuditLogEntry, error) { return nil, boom })
	require.ErrorIs(t, err, boom)

	_, err = b.Execute(func() ([]platform.AuditLogEntry, error) { return nil, nil })
	require.ErrorIs(t, err, platform.ErrCircuitOpen)

	time.Sleep(20 * time.Millisecond)

	entries, err := b.Execute(func() ([]platform.AuditLogEntry, error) {
		return []platform.AuditLogEntry{{ID: 9}}, nil
	})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, uint64(9), entries[0].ID)
}

func TestBreaker_HalfOpenFailureReopens(t *testing.T) {
	b := platform.NewBreaker(1, 10*time.Millisecond)
	boom := errors.New("boom")

	_, err := b.Execute(func() ([]platform.AuditLogEntry, error) { return nil, boom })
	require.ErrorIs(t, err, boom)

	time.Sleep(20 * time.Millisecond)

	_, err = b.Execute(func() ([]platform.AuditLogEntry, error) { return nil, boom })
	require.ErrorIs(t, err, boom)

	_, err = b.Execute(func() ([]platform.AuditLogEntry, error) {
		return []platform.AuditLogEntry{{ID: 1}}, nil
	})
	require.ErrorIs(t, err, platform.ErrCircuitOpen)
}
