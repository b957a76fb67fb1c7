package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/omp-cli/internal/domain"
	"github.com/bnema/omp-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressLoadFallsBackToEmptySet(t *testing.T) {
	store := mocks.NewMockProgressStore(t)
	tracker := NewProgressTracker(store, nil)

	store.EXPECT().Load(mockAnyContext()).Return(nil, errors.New("decode progress file: corrupt")).Once()

	tracker.Load(context.Background())
	assert.Empty(t, tracker.Completed())
	assert.Equal(t, 0, tracker.Percentage(10))
}

func TestProgressLoadRestoresPersistedSet(t *testing.T) {
	store := mocks.NewMockProgressStore(t)
	tracker := NewProgressTracker(store, nil)

	store.EXPECT().Load(mockAnyContext()).Return([]domain.WorkshopID{"w1", "w2", "w1"}, nil).Once()

	tracker.Load(context.Background())
	assert.Equal(t, []domain.WorkshopID{"w1", "w2"}, tracker.Completed())
	assert.True(t, tracker.IsCompleted("w2"))
}

func TestProgressMarkCompletedIsIdempotent(t *testing.T) {
	store := mocks.NewMockProgressStore(t)
	tracker := NewProgressTracker(store, nil)

	store.EXPECT().Save(mockAnyContext(), []domain.WorkshopID{"w1"}).Return(nil).Once()

	require.NoError(t, tracker.MarkCompleted(context.Background(), "w1"))
	require.NoError(t, tracker.MarkCompleted(context.Background(), "w1"))

	assert.Equal(t, []domain.WorkshopID{"w1"}, tracker.Completed())
}

func TestProgressMarkCompletedLeavesSetUnchangedWhenPersistFails(t *testing.T) {
	store := mocks.NewMockProgressStore(t)
	tracker := NewProgressTracker(store, nil)
	saveErr := errors.New("disk full")

	store.EXPECT().Save(mockAnyContext(), []domain.WorkshopID{"w1"}).Return(saveErr).Once()

	err := tracker.MarkCompleted(context.Background(), "w1")
	require.ErrorIs(t, err, saveErr)
	assert.False(t, tracker.IsCompleted("w1"))
}

func TestProgressMarkCompletedRejectsBlankID(t *testing.T) {
	tracker := NewProgressTracker(mocks.NewMockProgressStore(t), nil)

	err := tracker.MarkCompleted(context.Background(), " ")
	var validation *domain.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestProgressPercentage(t *testing.T) {
	store := mocks.NewMockProgressStore(t)
	tracker := NewProgressTracker(store, nil)

	assert.Equal(t, 0, tracker.Percentage(0))
	assert.Equal(t, 0, tracker.Percentage(3))

	store.EXPECT().Load(mockAnyContext()).Return([]domain.WorkshopID{"w1"}, nil).Once()
	tracker.Load(context.Background())
	assert.Equal(t, 33, tracker.Percentage(3))
	assert.Equal(t, 50, tracker.Percentage(2))
	assert.Equal(t, 100, tracker.Percentage(1))
	assert.Equal(t, 0, tracker.Percentage(0))

	store.EXPECT().Load(mockAnyContext()).Return([]domain.WorkshopID{"w1", "w2"}, nil).Once()
	tracker.Load(context.Background())
	assert.Equal(t, 67, tracker.Percentage(3))
	assert.Equal(t, 200, tracker.Percentage(1))
}

func TestProgressIsLockedUsesDisplayedPredecessor(t *testing.T) {
	store := mocks.NewMockProgressStore(t)
	tracker := NewProgressTracker(store, nil)
	catalog := []domain.Workshop{
		{ID: "w1", Order: 1, Category: domain.CategoryFundamentals},
		{ID: "w2", Order: 2, Category: domain.CategoryPreaching},
		{ID: "w3", Order: 3, Category: domain.CategoryFundamentals},
		{ID: "w4", Order: 4, Category: domain.CategoryPreaching},
	}

	assert.False(t, tracker.IsLocked(catalog, 0))
	assert.True(t, tracker.IsLocked(catalog, 1))
	assert.False(t, tracker.IsLocked(catalog, -1))
	assert.False(t, tracker.IsLocked(catalog, len(catalog)))

	store.EXPECT().Save(mockAnyContext(), []domain.WorkshopID{"w2"}).Return(nil).Once()
	require.NoError(t, tracker.MarkCompleted(context.Background(), "w2"))

	assert.False(t, tracker.IsLocked(catalog, 2))

	// Filtering changes which workshop gates the next one.
	preaching := domain.FilterByCategory(catalog, domain.CategoryPreaching)
	assert.False(t, tracker.IsLocked(preaching, 1))

	fundamentals := domain.FilterByCategory(catalog, domain.CategoryFundamentals)
	assert.True(t, tracker.IsLocked(fundamentals, 1))
}
