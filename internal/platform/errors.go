package platform

import "errors"

// ErrCircuitOpen is returned when the circuit breaker is open and a request
// was rejected without being attempted.
var ErrCircuitOpen = errors.New("platform: circuit breaker is open")

// ErrNoContent is returned internally when the platform responds 2xx with a
// body that cannot be decoded as a JSON array of audit log entries.
var ErrNoContent = errors.New("platform: response body was not a JSON array")
