package platform

import (
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
)

// Breaker guards the platform HTTP client against hammering a degraded chat
// platform audit-log endpoint. It wraps github.com/sony/gobreaker, tracking
// consecutive search failures and gating requests through gobreaker's
// closed/open/half-open state machine rather than reimplementing one.
type Breaker struct {
	cb *gobreaker.CircuitBreaker
}

// NewBreaker builds a Breaker that opens after failureThreshold consecutive
// failures and, once open, waits recoveryTimeout before letting a single
// trial request probe for recovery. Non-positive arguments fall back to the
// thresholds this client shipped with before adopting gobreaker (5
// consecutive failures, 30s recovery).
func NewBreaker(failureThreshold uint32, recoveryTimeout time.Duration) *Breaker {
	if failureThreshold == 0 {
		failureThreshold = 5
	}
	if recoveryTimeout <= 0 {
		recoveryTimeout = 30 * time.Second
	}

	return &Breaker{cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "platform.audit_log_search",
		MaxRequests: 1,
		Timeout:     recoveryTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failureThreshold
		},
	})}
}

// Execute runs fn through the breaker. While the breaker is open, or while a
// half-open trial slot is already spoken for, fn is never called and
// Execute returns ErrCircuitOpen wrapping gobreaker's own sentinel.
func (b *Breaker) Execute(fn func() ([]AuditLogEntry, error)) ([]AuditLogEntry, error) {
	result, err := b.cb.Execute(func() (interface{}, error) { return fn() })
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %w", ErrCircuitOpen, err)
	}
	entries, _ := result.([]AuditLogEntry)
	return entries, err
}

// State reports the breaker's current gobreaker state (closed, half-open,
// or open).
func (b *Breaker) State() gobreaker.State {
	return b.cb.State()
}
