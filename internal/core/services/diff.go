package services

import (
	"sort"

	"github.com/custodia-labs/rollcall/internal/core/domain"
)

// diffRecords computes presence changes between two record mappings:
// added = keys(current) - keys(previous), removed = keys(previous) -
// keys(current). Records present in both emit nothing regardless of
// field differences; only presence is tracked.
//
// Results are sorted by booking ID for deterministic output.
func diffRecords(current, previous map[string]domain.BookingRecord) (added, removed []domain.BookingRecord) {
	for id, rec := range current {
		if _, ok := previous[id]; !ok {
			added = append(added, rec)
		}
	}
	for id, rec := range previous {
		if _, ok := current[id]; !ok {
			removed = append(removed, rec)
		}
	}

	sort.Slice(added, func(i, j int) bool { return added[i].ID < added[j].ID })
	sort.Slice(removed, func(i, j int) bool { return removed[i].ID < removed[j].ID })
	return added, removed
}

// capRecords limits a list to the display cap. The true count must be
// reported separately; capping is for downstream display only.
func capRecords(records []domain.BookingRecord, cap int) []domain.BookingRecord {
	if cap <= 0 || len(records) <= cap {
		return records
	}
	return records[:cap]
}
