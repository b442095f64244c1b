package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/rollcall/internal/core/domain"
	"github.com/custodia-labs/rollcall/internal/core/ports/driven"
)

// Ensure ChangeLog implements the interface.
var _ driven.ChangeLog = (*ChangeLog)(nil)

// ChangeLog is an in-memory implementation of driven.ChangeLog.
type ChangeLog struct {
	mu      sync.RWMutex
	entries []domain.ChangeLogEntry
}

// NewChangeLog creates a new in-memory change log.
func NewChangeLog() *ChangeLog {
	return &ChangeLog{}
}

// Append writes one entry to the end of the log.
func (l *ChangeLog) Append(_ context.Context, entry domain.ChangeLogEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
	return nil
}

// ReadAll returns every entry in append order.
func (l *ChangeLog) ReadAll(_ context.Context) ([]domain.ChangeLogEntry, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]domain.ChangeLogEntry, len(l.entries))
	copy(out, l.entries)
	return out, nil
}
