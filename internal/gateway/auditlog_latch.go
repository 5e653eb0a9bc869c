package gateway

import (
	"encoding/json"
	"sync"

	"github.com/architus-bot/logs-core/internal/platform"
)

// CombinedAuditLogEntry pairs a sourced audit log entry with the exact JSON
// bytes it was captured from — json is always a serialization of entry
// (spec.md §3).
type CombinedAuditLogEntry struct {
	Entry platform.AuditLogEntry
	JSON  json.RawMessage
}

// auditLogLatch is the single-writer, multi-reader coordination cell that
// publishes one event's audit-log result to every AuditLogPath reader
// (spec.md §3 AuditLogLatch, §5). Exactly one goroutine ever acquires the
// write handle, and it does so before any sibling reader goroutine is
// started, so no reader can ever observe an uninstalled state.
type auditLogLatch struct {
	mu    sync.RWMutex
	value *CombinedAuditLogEntry
}

func newAuditLogLatch() *auditLogLatch {
	return &auditLogLatch{}
}

// auditLogWriteHandle is returned by acquireWrite and must be released
// exactly once via install.
type auditLogWriteHandle struct {
	latch *auditLogLatch
}

// acquireWrite takes the write lock synchronously. Every reader's RLock
// call blocks until the corresponding install call releases it.
func (l *auditLogLatch) acquireWrite() *auditLogWriteHandle {
	l.mu.Lock()
	return &auditLogWriteHandle{latch: l}
}

// install publishes the final value (nil meaning "no matching entry") and
// releases the write lock.
func (h *auditLogWriteHandle) install(entry *CombinedAuditLogEntry) {
	h.latch.value = entry
	h.latch.mu.Unlock()
}

// read blocks until install has run, then returns the installed value.
func (l *auditLogLatch) read() *CombinedAuditLogEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.value
}
