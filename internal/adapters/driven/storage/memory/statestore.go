package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/rollcall/internal/core/domain"
	"github.com/custodia-labs/rollcall/internal/core/ports/driven"
)

// Ensure StateStore implements the interface.
var _ driven.StateStore = (*StateStore)(nil)

// StateStore is an in-memory implementation of driven.StateStore.
// It backs tests and keeps the pipeline runnable without sqlite.
type StateStore struct {
	mu       sync.RWMutex
	snapshot *domain.Snapshot
	pending  []domain.PendingRelease
}

// NewStateStore creates a new in-memory state store.
func NewStateStore() *StateStore {
	return &StateStore{}
}

// LatestSnapshot returns the stored snapshot.
func (s *StateStore) LatestSnapshot(_ context.Context) (*domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return nil, domain.ErrNotFound
	}
	snap := *s.snapshot
	return &snap, nil
}

// SaveSnapshot stores a snapshot as the new latest observation.
func (s *StateStore) SaveSnapshot(_ context.Context, snap domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = &snap
	return nil
}

// ListPending returns queued pending releases in insertion order.
func (s *StateStore) ListPending(_ context.Context) ([]domain.PendingRelease, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.PendingRelease, len(s.pending))
	copy(out, s.pending)
	return out, nil
}

// AddPending appends an entry to the pending queue.
func (s *StateStore) AddPending(_ context.Context, pending domain.PendingRelease) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, pending)
	return nil
}

// RemovePending deletes a queue entry by ID.
func (s *StateStore) RemovePending(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.pending {
		if p.ID == id {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
