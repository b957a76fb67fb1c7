package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/omp-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "omp", "progress.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestStoreLoadEmptyDatabase(t *testing.T) {
	t.Parallel()

	got, err := openTestStore(t).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStoreSaveLoadPreservesOrder(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	want := []domain.WorkshopID{"w2", "w9", "w1"}

	require.NoError(t, store.Save(context.Background(), want))

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStoreSaveReplacesPreviousSet(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	require.NoError(t, store.Save(context.Background(), []domain.WorkshopID{"w1", "w2"}))
	require.NoError(t, store.Save(context.Background(), []domain.WorkshopID{"w2"}))

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.WorkshopID{"w2"}, got)
}

func TestStoreKeepsFirstCompletionTime(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	first := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	store.now = func() time.Time { return first }
	require.NoError(t, store.Save(context.Background(), []domain.WorkshopID{"w1"}))

	store.now = func() time.Time { return first.Add(48 * time.Hour) }
	require.NoError(t, store.Save(context.Background(), []domain.WorkshopID{"w1", "w2"}))

	at, ok, err := store.CompletedAt(context.Background(), "w1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, first, at)

	at, ok, err = store.CompletedAt(context.Background(), "w2")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, first.Add(48*time.Hour), at)

	_, ok, err = store.CompletedAt(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStoreDataSurvivesReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "progress.db")
	store, err := Open(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), []domain.WorkshopID{"w1"}))
	require.NoError(t, store.Close())

	reopened, err := Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	got, err := reopened.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.WorkshopID{"w1"}, got)
}
