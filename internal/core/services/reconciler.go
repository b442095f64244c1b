package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/rollcall/internal/core/domain"
	"github.com/custodia-labs/rollcall/internal/core/ports/driven"
	"github.com/custodia-labs/rollcall/internal/logger"
)

// reconciliation is the computed outcome of matching this run's
// removals and the existing pending queue against the release feed.
// It holds the state mutations to apply at commit time; nothing is
// persisted until the change log has been appended.
type reconciliation struct {
	// resolved holds removals whose detail matched immediately.
	resolved []domain.ResolvedRelease

	// stillPending holds removals with no matching detail yet.
	stillPending []domain.BookingRecord

	// updated holds prior pending entries resolved this run.
	updated []domain.ResolvedRelease

	// addPending are new queue entries to persist at commit.
	addPending []domain.PendingRelease

	// removePending are queue entry IDs to delete at commit
	// (resolved or expired).
	removePending []string

	// expired counts entries dropped by the staleness bound.
	expired int

	// pendingCount is the queue depth after commit.
	pendingCount int
}

// reconcile matches this run's removed bookings and every existing
// pending entry against the release feed.
//
// Removals with a matching detail resolve immediately; the rest join
// the pending queue. Existing entries that now match move to the
// updated category; entries older than maxAge expire. Queue iteration
// preserves insertion order.
func reconcile(
	removed []domain.BookingRecord,
	existing []domain.PendingRelease,
	details map[string]domain.ReleaseDetail,
	matcher driven.NameMatcher,
	now time.Time,
	maxAge time.Duration,
) reconciliation {
	var rec reconciliation

	for _, booking := range removed {
		if detail, ok := matcher.Match(booking.Name, details); ok {
			rec.resolved = append(rec.resolved, domain.ResolvedRelease{Booking: booking, Detail: detail})
			continue
		}
		rec.stillPending = append(rec.stillPending, booking)
		rec.addPending = append(rec.addPending, domain.PendingRelease{
			ID:         uuid.New().String(),
			Name:       domain.CleanName(booking.Name),
			Booking:    booking,
			DetectedAt: now,
		})
	}

	for _, pending := range existing {
		if maxAge > 0 && pending.Age(now) > maxAge {
			logger.Warn("Expiring pending release for %s after %s", pending.Name, pending.Age(now).Round(time.Hour))
			rec.removePending = append(rec.removePending, pending.ID)
			rec.expired++
			continue
		}
		if detail, ok := matcher.Match(pending.Name, details); ok {
			rec.updated = append(rec.updated, domain.ResolvedRelease{Booking: pending.Booking, Detail: detail})
			rec.removePending = append(rec.removePending, pending.ID)
		}
	}

	rec.pendingCount = len(existing) - len(rec.removePending) + len(rec.addPending)
	return rec
}

// formatResolved renders a resolved release as a change-log line.
func formatResolved(r domain.ResolvedRelease) string {
	return fmt.Sprintf("%s | release: %s at %s, served %s, bail %s",
		r.Booking.FormatLine(), r.Detail.ReleaseType, r.Detail.ReleasedAt,
		r.Detail.TimeServed, r.Detail.Bail)
}

// formatProvisional renders a removal still awaiting its detail.
func formatProvisional(b domain.BookingRecord) string {
	return b.FormatLine() + " | release detail pending"
}
