package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/rollcall/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestLatestSnapshot_EmptyStore(t *testing.T) {
	store := newTestStore(t)

	_, err := store.LatestSnapshot(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSaveSnapshot_LatestWins(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := domain.NewSnapshot("roster v1", time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC))
	second := domain.NewSnapshot("roster v2", time.Date(2024, 1, 16, 8, 0, 0, 0, time.UTC))

	require.NoError(t, store.SaveSnapshot(ctx, first))
	require.NoError(t, store.SaveSnapshot(ctx, second))

	got, err := store.LatestSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "roster v2", got.RawText)
	assert.Equal(t, second.Fingerprint, got.Fingerprint)
	assert.True(t, got.CapturedAt.Equal(second.CapturedAt))
}

func TestPending_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	entry := domain.PendingRelease{
		ID:   "p-1",
		Name: "LEE, SAM",
		Booking: domain.BookingRecord{
			ID:         "C3",
			Name:       "LEE, SAM",
			BookedAt:   "11:07 01/16/2024",
			ReleasedAt: domain.NotReleased,
			Charges:    []string{"HARASSMENT"},
		},
		DetectedAt: time.Date(2024, 1, 17, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.AddPending(ctx, entry))

	pending, err := store.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "p-1", pending[0].ID)
	assert.Equal(t, "LEE, SAM", pending[0].Name)
	assert.Equal(t, entry.Booking, pending[0].Booking)
	assert.True(t, pending[0].DetectedAt.Equal(entry.DetectedAt))
}

func TestPending_InsertionOrderPreserved(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"z", "a", "m"} {
		require.NoError(t, store.AddPending(ctx, domain.PendingRelease{
			ID:         id,
			Name:       id,
			DetectedAt: time.Now(),
		}))
	}

	pending, err := store.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 3)
	assert.Equal(t, "z", pending[0].ID)
	assert.Equal(t, "a", pending[1].ID)
	assert.Equal(t, "m", pending[2].ID)
}

func TestRemovePending(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AddPending(ctx, domain.PendingRelease{ID: "p-1", Name: "A", DetectedAt: time.Now()}))
	require.NoError(t, store.RemovePending(ctx, "p-1"))

	pending, err := store.ListPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	// Removing a missing entry is not an error.
	assert.NoError(t, store.RemovePending(ctx, "nope"))
}

func TestAddPending_EmptyID(t *testing.T) {
	store := newTestStore(t)

	err := store.AddPending(context.Background(), domain.PendingRelease{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMigrationsIdempotent(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.SaveSnapshot(context.Background(), domain.NewSnapshot("x", time.Now())))
	require.NoError(t, store.Close())

	// Reopening the same directory must not re-apply migrations.
	store, err = NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	snap, err := store.LatestSnapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "x", snap.RawText)
}
