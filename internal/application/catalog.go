package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bnema/omp-cli/internal/domain"
	"github.com/bnema/omp-cli/internal/ports"
)

type CatalogEntry struct {
	Workshop  domain.Workshop
	Completed bool
	Locked    bool
}

// CatalogPage is the filtered catalog with lock and completion flags resolved.
// Percentage and counts always refer to the whole catalog.
type CatalogPage struct {
	Category       domain.Category
	Entries        []CatalogEntry
	Percentage     int
	CompletedCount int
	Total          int
}

type WorkshopPage struct {
	Workshop  domain.Workshop
	Completed bool
	Locked    bool
	Previous  *domain.Workshop
	Next      *domain.Workshop
}

type ProgressSummary struct {
	Percentage     int
	CompletedCount int
	Total          int
	StudyMinutes   int
	Next           *domain.Workshop
}

// WorkshopCatalog joins the remote workshop list with local progress.
type WorkshopCatalog struct {
	api      ports.WorkshopAPI
	progress *ProgressTracker
	logger   *slog.Logger
}

func NewWorkshopCatalog(api ports.WorkshopAPI, progress *ProgressTracker, logger *slog.Logger) *WorkshopCatalog {
	if logger == nil {
		logger = slog.Default()
	}

	return &WorkshopCatalog{
		api:      api,
		progress: progress,
		logger:   logger.With("component", "catalog"),
	}
}

// List returns every workshop sorted by order.
func (c *WorkshopCatalog) List(ctx context.Context) ([]domain.Workshop, error) {
	workshops, err := c.api.ListWorkshops(ctx)
	if err != nil {
		return nil, fmt.Errorf("list workshops: %w", err)
	}

	sorted := append([]domain.Workshop(nil), workshops...)
	domain.SortByOrder(sorted)
	return sorted, nil
}

func (c *WorkshopCatalog) Page(ctx context.Context, category domain.Category) (CatalogPage, error) {
	all, err := c.List(ctx)
	if err != nil {
		return CatalogPage{}, err
	}

	if category == "" {
		category = domain.CategoryAll
	}
	displayed := domain.FilterByCategory(all, category)

	entries := make([]CatalogEntry, 0, len(displayed))
	for i, w := range displayed {
		entries = append(entries, CatalogEntry{
			Workshop:  w,
			Completed: c.progress.IsCompleted(w.ID),
			Locked:    c.progress.IsLocked(displayed, i),
		})
	}

	return CatalogPage{
		Category:       category,
		Entries:        entries,
		Percentage:     c.progress.Percentage(len(all)),
		CompletedCount: len(c.progress.Completed()),
		Total:          len(all),
	}, nil
}

// Workshop loads one workshop with its neighbours by order. The lock flag is
// resolved against the unfiltered catalog.
func (c *WorkshopCatalog) Workshop(ctx context.Context, id domain.WorkshopID) (WorkshopPage, error) {
	workshop, err := c.api.GetWorkshop(ctx, id)
	if err != nil {
		return WorkshopPage{}, fmt.Errorf("get workshop %s: %w", id, err)
	}

	all, err := c.List(ctx)
	if err != nil {
		return WorkshopPage{}, err
	}

	page := WorkshopPage{
		Workshop:  workshop,
		Completed: c.progress.IsCompleted(workshop.ID),
	}
	for i := range all {
		if all[i].ID == workshop.ID {
			page.Locked = c.progress.IsLocked(all, i)
			break
		}
	}
	page.Previous, page.Next = domain.Neighbours(all, workshop)

	return page, nil
}

// Complete checks the workshop exists remotely and records it as completed.
func (c *WorkshopCatalog) Complete(ctx context.Context, id domain.WorkshopID) (domain.Workshop, error) {
	workshop, err := c.api.GetWorkshop(ctx, id)
	if err != nil {
		return domain.Workshop{}, fmt.Errorf("get workshop %s: %w", id, err)
	}

	if err := c.progress.MarkCompleted(ctx, workshop.ID); err != nil {
		return domain.Workshop{}, err
	}

	c.logger.Info("workshop completed", "workshop_id", workshop.ID)
	return workshop, nil
}

// Summarize computes progress figures over an ordered catalog.
func (c *WorkshopCatalog) Summarize(workshops []domain.Workshop) ProgressSummary {
	summary := ProgressSummary{
		Percentage:     c.progress.Percentage(len(workshops)),
		CompletedCount: len(c.progress.Completed()),
		Total:          len(workshops),
	}

	for i := range workshops {
		if c.progress.IsCompleted(workshops[i].ID) {
			summary.StudyMinutes += workshops[i].DurationMinutes
			continue
		}
		if summary.Next == nil {
			next := workshops[i]
			summary.Next = &next
		}
	}

	return summary
}
