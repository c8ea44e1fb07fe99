// Package audit writes one immutable structured record per pipeline run.
// Records exist for drift monitoring; they are append-only and never updated.
package audit

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"github.com/jonathan/fit-analyzer/internal/types"
)

// Recorder appends audit records. Implementations must support concurrent
// appends without lost writes.
type Recorder interface {
	Append(ctx context.Context, record *types.AuditRecord) error
}

// defaultRingSize bounds how many recent records the in-memory recorder
// keeps. The ring is explicitly scoped to the recorder, never process-wide.
const defaultRingSize = 128

// MemoryRecorder keeps a bounded ring of recent audit records in memory.
// It backs local runs and tests, and doubles as the recent-output window for
// drift inspection.
type MemoryRecorder struct {
	mu   sync.Mutex
	ring []types.AuditRecord
	next int
	full bool
}

// NewMemoryRecorder creates a MemoryRecorder with the default ring size.
func NewMemoryRecorder() *MemoryRecorder {
	return NewMemoryRecorderSize(defaultRingSize)
}

// NewMemoryRecorderSize creates a MemoryRecorder holding at most size records.
func NewMemoryRecorderSize(size int) *MemoryRecorder {
	if size < 1 {
		size = 1
	}
	return &MemoryRecorder{ring: make([]types.AuditRecord, size)}
}

// Append stores a copy of the record in the ring, evicting the oldest entry
// once the ring is full.
func (m *MemoryRecorder) Append(_ context.Context, record *types.AuditRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ring[m.next] = *record
	m.next++
	if m.next == len(m.ring) {
		m.next = 0
		m.full = true
	}
	return nil
}

// Recent returns the stored records, oldest first.
func (m *MemoryRecorder) Recent() []types.AuditRecord {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.full {
		out := make([]types.AuditRecord, m.next)
		copy(out, m.ring[:m.next])
		return out
	}

	out := make([]types.AuditRecord, 0, len(m.ring))
	out = append(out, m.ring[m.next:]...)
	out = append(out, m.ring[:m.next]...)
	return out
}

// HashInput returns the hex SHA-256 of an input so records identify their
// inputs without storing them.
func HashInput(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
