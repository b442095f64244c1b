package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/rollcall/internal/core/domain"
)

func TestStateStore_SnapshotRoundTrip(t *testing.T) {
	store := NewStateStore()
	ctx := context.Background()

	_, err := store.LatestSnapshot(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	snap := domain.NewSnapshot("roster", time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC))
	require.NoError(t, store.SaveSnapshot(ctx, snap))

	got, err := store.LatestSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, snap, *got)

	// Latest wins.
	newer := domain.NewSnapshot("roster v2", time.Date(2024, 1, 18, 0, 0, 0, 0, time.UTC))
	require.NoError(t, store.SaveSnapshot(ctx, newer))
	got, err = store.LatestSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "roster v2", got.RawText)
}

func TestStateStore_PendingQueueOrder(t *testing.T) {
	store := NewStateStore()
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, store.AddPending(ctx, domain.PendingRelease{ID: id, Name: id}))
	}

	pending, err := store.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 3)
	assert.Equal(t, "a", pending[0].ID)
	assert.Equal(t, "b", pending[1].ID)
	assert.Equal(t, "c", pending[2].ID)

	require.NoError(t, store.RemovePending(ctx, "b"))
	pending, err = store.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "a", pending[0].ID)
	assert.Equal(t, "c", pending[1].ID)
}

func TestStateStore_RemovePendingMissing(t *testing.T) {
	store := NewStateStore()

	err := store.RemovePending(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestChangeLog_AppendAndReadAll(t *testing.T) {
	log := NewChangeLog()
	ctx := context.Background()

	entries, err := log.ReadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	entry := domain.ChangeLogEntry{
		RunID:      "run-1",
		RecordedAt: time.Now(),
		Blocks: []domain.EventBlock{
			{Category: domain.EventBooked, Count: 1, Lines: []string{"[B1] DOE, JANE"}},
		},
	}
	require.NoError(t, log.Append(ctx, entry))

	entries, err = log.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "run-1", entries[0].RunID)
}
