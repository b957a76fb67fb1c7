package application

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"

	"github.com/bnema/omp-cli/internal/domain"
	"github.com/bnema/omp-cli/internal/ports"
)

// ProgressTracker records which workshops the user finished on this device.
type ProgressTracker struct {
	store  ports.ProgressStore
	logger *slog.Logger

	mu        sync.RWMutex
	completed domain.CompletionSet
}

func NewProgressTracker(store ports.ProgressStore, logger *slog.Logger) *ProgressTracker {
	if logger == nil {
		logger = slog.Default()
	}

	return &ProgressTracker{
		store:     store,
		logger:    logger.With("component", "progress"),
		completed: domain.NewCompletionSet(),
	}
}

// Load reads the persisted set. Missing or unreadable storage yields an empty set.
func (p *ProgressTracker) Load(ctx context.Context) {
	ids, err := p.store.Load(ctx)
	if err != nil {
		p.logger.Warn("progress storage unreadable, starting empty", "error", err)
		ids = nil
	}

	p.mu.Lock()
	p.completed = domain.NewCompletionSet(ids...)
	p.mu.Unlock()
}

// MarkCompleted adds id and persists the set before returning. Marking an
// already completed workshop is a no-op.
func (p *ProgressTracker) MarkCompleted(ctx context.Context, id domain.WorkshopID) error {
	if strings.TrimSpace(string(id)) == "" {
		return domain.NewValidationError("workshop", "id is required")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.completed.Has(id) {
		return nil
	}

	next := p.completed.Clone()
	next.Add(id)
	if err := p.store.Save(ctx, next.IDs()); err != nil {
		return fmt.Errorf("persist completed workshops: %w", err)
	}

	p.completed = next
	return nil
}

func (p *ProgressTracker) IsCompleted(id domain.WorkshopID) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.completed.Has(id)
}

func (p *ProgressTracker) Completed() []domain.WorkshopID {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.completed.IDs()
}

// Percentage is round(100*completed/total). Ids that are not part of the
// catalog still count, so the result can exceed 100.
func (p *ProgressTracker) Percentage(total int) int {
	if total <= 0 {
		return 0
	}

	p.mu.RLock()
	count := p.completed.Len()
	p.mu.RUnlock()

	return int(math.Round(100 * float64(count) / float64(total)))
}

// IsLocked gates a workshop on its predecessor in the list as displayed,
// after category filtering. The first entry is never locked.
func (p *ProgressTracker) IsLocked(displayed []domain.Workshop, index int) bool {
	if index <= 0 || index >= len(displayed) {
		return false
	}

	return !p.IsCompleted(displayed[index-1].ID)
}
