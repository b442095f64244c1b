package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/rollcall/internal/core/domain"
	"github.com/custodia-labs/rollcall/internal/core/ports/driven"
	"github.com/custodia-labs/rollcall/internal/core/ports/driving"
)

// Ensure ReportService implements the interface.
var _ driving.Reporter = (*ReportService)(nil)

// ReportService exposes read-only views over persisted state for the
// CLI and other downstream consumers.
type ReportService struct {
	state     driven.StateStore
	changeLog driven.ChangeLog
}

// NewReportService creates a report service.
func NewReportService(state driven.StateStore, changeLog driven.ChangeLog) *ReportService {
	return &ReportService{state: state, changeLog: changeLog}
}

// ChangeLog re-parses the full audit log.
func (s *ReportService) ChangeLog(ctx context.Context) ([]domain.ChangeLogEntry, error) {
	entries, err := s.changeLog.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("read change log: %w", err)
	}
	return entries, nil
}

// Pending returns the queued pending releases in insertion order.
func (s *ReportService) Pending(ctx context.Context) ([]domain.PendingRelease, error) {
	pending, err := s.state.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending: %w", err)
	}
	return pending, nil
}

// LatestSnapshot returns the last stored snapshot.
func (s *ReportService) LatestSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	return s.state.LatestSnapshot(ctx)
}
