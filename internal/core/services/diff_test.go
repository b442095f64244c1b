package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/rollcall/internal/core/domain"
)

func recs(ids ...string) map[string]domain.BookingRecord {
	m := make(map[string]domain.BookingRecord, len(ids))
	for _, id := range ids {
		m[id] = domain.BookingRecord{ID: id}
	}
	return m
}

func TestDiffRecords_AddedOnly(t *testing.T) {
	added, removed := diffRecords(recs("A1", "B2"), recs("A1"))

	require.Len(t, added, 1)
	assert.Equal(t, "B2", added[0].ID)
	assert.Empty(t, removed)
}

func TestDiffRecords_RemovedOnly(t *testing.T) {
	added, removed := diffRecords(recs("A1"), recs("A1", "C3"))

	assert.Empty(t, added)
	require.Len(t, removed, 1)
	assert.Equal(t, "C3", removed[0].ID)
}

func TestDiffRecords_FieldChangesEmitNothing(t *testing.T) {
	current := map[string]domain.BookingRecord{
		"A1": {ID: "A1", Name: "DOE, JANE", Charges: []string{"NEW CHARGE"}},
	}
	previous := map[string]domain.BookingRecord{
		"A1": {ID: "A1", Name: "DOE, JANE"},
	}

	added, removed := diffRecords(current, previous)
	assert.Empty(t, added)
	assert.Empty(t, removed)
}

func TestDiffRecords_Empty(t *testing.T) {
	added, removed := diffRecords(recs(), recs())
	assert.Empty(t, added)
	assert.Empty(t, removed)
}

func TestDiffRecords_SortedByID(t *testing.T) {
	added, _ := diffRecords(recs("C3", "A1", "B2"), recs())

	require.Len(t, added, 3)
	assert.Equal(t, "A1", added[0].ID)
	assert.Equal(t, "B2", added[1].ID)
	assert.Equal(t, "C3", added[2].ID)
}

func TestCapRecords(t *testing.T) {
	records := make([]domain.BookingRecord, 40)

	assert.Len(t, capRecords(records, 30), 30)
	assert.Len(t, capRecords(records, 0), 40)
	assert.Len(t, capRecords(records[:5], 30), 5)
}
