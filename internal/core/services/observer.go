package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/rollcall/internal/core/domain"
	"github.com/custodia-labs/rollcall/internal/core/ports/driven"
	"github.com/custodia-labs/rollcall/internal/core/ports/driving"
	"github.com/custodia-labs/rollcall/internal/logger"
)

// Ensure ObservationService implements the interface.
var _ driving.Observer = (*ObservationService)(nil)

// DefaultDisplayCap bounds the added/removed lists handed to
// downstream display. True counts are always reported.
const DefaultDisplayCap = 30

// Config carries the observation pipeline's settings.
type Config struct {
	// RosterURL is the primary roster source.
	RosterURL string

	// ReleasesURL is the secondary release-detail feed.
	ReleasesURL string

	// DisplayCap bounds added/removed lists; 0 means DefaultDisplayCap.
	DisplayCap int

	// MaxPendingAge expires queue entries older than this; 0 disables
	// expiry.
	MaxPendingAge time.Duration

	// Strict fails the run when any record block was discarded,
	// instead of degrading silently.
	Strict bool
}

// ObservationService runs the observation pipeline:
// fetch -> extract -> diff -> reconcile -> log append -> state commit.
//
// The log is appended before state commits, so a crash between the two
// recomputes the same diff on the next run: the added/removed
// computation is idempotent, log entries are at-least-once.
type ObservationService struct {
	fetcher    driven.TextFetcher
	rosterExt  driven.RosterExtractor
	releaseExt driven.ReleaseExtractor
	matcher    driven.NameMatcher
	state      driven.StateStore
	changeLog  driven.ChangeLog
	cfg        Config

	// now is swappable for tests.
	now func() time.Time

	// running serialises runs: two concurrent observations would read
	// the same previous state and write conflicting updates.
	running sync.Mutex
}

// NewObservationService wires the observation pipeline.
func NewObservationService(
	fetcher driven.TextFetcher,
	rosterExt driven.RosterExtractor,
	releaseExt driven.ReleaseExtractor,
	matcher driven.NameMatcher,
	state driven.StateStore,
	changeLog driven.ChangeLog,
	cfg Config,
) *ObservationService {
	if cfg.DisplayCap == 0 {
		cfg.DisplayCap = DefaultDisplayCap
	}
	return &ObservationService{
		fetcher:    fetcher,
		rosterExt:  rosterExt,
		releaseExt: releaseExt,
		matcher:    matcher,
		state:      state,
		changeLog:  changeLog,
		cfg:        cfg,
		now:        time.Now,
	}
}

// Run performs one observation.
//
//nolint:gocyclo // Pipeline orchestration with necessary sequential steps
func (s *ObservationService) Run(ctx context.Context) (*domain.ObservationResult, error) {
	if !s.running.TryLock() {
		return nil, domain.ErrRunInProgress
	}
	defer s.running.Unlock()

	now := s.now()

	// 1. FETCH PRIMARY (fatal on failure)
	logger.Section("Fetch")
	rosterText, err := s.fetcher.FetchText(ctx, s.cfg.RosterURL)
	if err != nil {
		return nil, fmt.Errorf("%w: roster: %w", domain.ErrFetchFailed, err)
	}

	// 2. EXTRACT CURRENT
	logger.Section("Extract")
	current, stats := s.rosterExt.Extract(rosterText)
	logger.Info("Extracted %d records from %d blocks", len(current), stats.Blocks)
	if stats.Degraded() {
		logger.Warn("Extraction degraded: %+v", stats)
	}
	if s.cfg.Strict && stats.Discarded > 0 {
		return nil, fmt.Errorf("%w: %d record blocks discarded", domain.ErrParseFailed, stats.Discarded)
	}

	snap := domain.NewSnapshot(rosterText, now)

	// 3. LOAD PREVIOUS
	prev, err := s.state.LatestSnapshot(ctx)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("%w: load snapshot: %w", domain.ErrPersistFailed, err)
	}

	// First observation establishes a baseline: every record is newly
	// observed, but no BOOKED events are emitted for reporting.
	if prev == nil {
		logger.Info("First observation: %d records baseline", len(current))
		if err := s.state.SaveSnapshot(ctx, snap); err != nil {
			return nil, fmt.Errorf("%w: save snapshot: %w", domain.ErrPersistFailed, err)
		}
		return &domain.ObservationResult{
			IsFirstRun: true,
			HasChanged: true,
			Stats:      stats,
		}, nil
	}

	// Equal fingerprints mean byte-identical content; skip all diff
	// work and commit nothing.
	if prev.Fingerprint == snap.Fingerprint {
		logger.Info("Fingerprint unchanged, skipping diff")
		return &domain.ObservationResult{HasChanged: false, Stats: stats}, nil
	}

	// 4. DIFF
	logger.Section("Diff")
	previous, _ := s.rosterExt.Extract(prev.RawText)
	added, removed := diffRecords(current, previous)
	logger.Info("Diff: %d added, %d removed", len(added), len(removed))

	// 5. RECONCILE (secondary feed is fail-open: unavailable means "no
	// release details known yet" and everything flows to pending)
	logger.Section("Reconcile")
	details := s.fetchReleaseDetails(ctx)
	existing, err := s.state.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list pending: %w", domain.ErrPersistFailed, err)
	}
	rec := reconcile(removed, existing, details, s.matcher, now, s.cfg.MaxPendingAge)

	result := &domain.ObservationResult{
		HasChanged:     true,
		Added:          capRecords(added, s.cfg.DisplayCap),
		Removed:        capRecords(removed, s.cfg.DisplayCap),
		Resolved:       rec.resolved,
		Updated:        rec.updated,
		TotalAdded:     len(added),
		TotalRemoved:   len(removed),
		PendingCount:   rec.pendingCount,
		ExpiredPending: rec.expired,
		Stats:          stats,
	}

	// 6. LOG APPEND (before state commit)
	entry := buildLogEntry(now, added, rec)
	if len(entry.Blocks) > 0 {
		if err := s.changeLog.Append(ctx, entry); err != nil {
			return nil, fmt.Errorf("%w: append change log: %w", domain.ErrPersistFailed, err)
		}
	}

	// 7. STATE COMMIT
	if err := s.commit(ctx, snap, rec); err != nil {
		return nil, err
	}

	return result, nil
}

// fetchReleaseDetails retrieves and parses the secondary feed,
// degrading to an empty mapping when the feed is unavailable.
func (s *ObservationService) fetchReleaseDetails(ctx context.Context) map[string]domain.ReleaseDetail {
	feedText, err := s.fetcher.FetchText(ctx, s.cfg.ReleasesURL)
	if err != nil {
		logger.Warn("Release feed unavailable: %v", err)
		return map[string]domain.ReleaseDetail{}
	}
	details := s.releaseExt.Extract(feedText)
	logger.Info("Release feed: %d details", len(details))
	return details
}

// buildLogEntry serialises the run's events into category blocks in
// fixed order: BOOKED, RELEASED, UPDATED. Empty categories are
// omitted; counts are the true totals.
func buildLogEntry(now time.Time, added []domain.BookingRecord, rec reconciliation) domain.ChangeLogEntry {
	entry := domain.ChangeLogEntry{
		RunID:      uuid.New().String(),
		RecordedAt: now,
	}

	if len(added) > 0 {
		block := domain.EventBlock{Category: domain.EventBooked, Count: len(added)}
		for _, b := range added {
			block.Lines = append(block.Lines, b.FormatLine())
		}
		entry.Blocks = append(entry.Blocks, block)
	}

	if len(rec.resolved)+len(rec.stillPending) > 0 {
		block := domain.EventBlock{
			Category: domain.EventReleased,
			Count:    len(rec.resolved) + len(rec.stillPending),
		}
		for _, r := range rec.resolved {
			block.Lines = append(block.Lines, formatResolved(r))
		}
		for _, b := range rec.stillPending {
			block.Lines = append(block.Lines, formatProvisional(b))
		}
		entry.Blocks = append(entry.Blocks, block)
	}

	if len(rec.updated) > 0 {
		block := domain.EventBlock{Category: domain.EventUpdated, Count: len(rec.updated)}
		for _, r := range rec.updated {
			block.Lines = append(block.Lines, formatResolved(r))
		}
		entry.Blocks = append(entry.Blocks, block)
	}

	return entry
}

// commit persists the snapshot and applies the pending-queue
// mutations. Any failure is a distinct persistence error; the change
// log entry already appended stays (at-least-once).
func (s *ObservationService) commit(ctx context.Context, snap domain.Snapshot, rec reconciliation) error {
	if err := s.state.SaveSnapshot(ctx, snap); err != nil {
		return fmt.Errorf("%w: save snapshot: %w", domain.ErrPersistFailed, err)
	}
	for _, id := range rec.removePending {
		if err := s.state.RemovePending(ctx, id); err != nil {
			return fmt.Errorf("%w: remove pending: %w", domain.ErrPersistFailed, err)
		}
	}
	for _, p := range rec.addPending {
		if err := s.state.AddPending(ctx, p); err != nil {
			return fmt.Errorf("%w: add pending: %w", domain.ErrPersistFailed, err)
		}
	}
	return nil
}
