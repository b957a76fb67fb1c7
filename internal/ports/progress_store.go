package ports

import (
	"context"

	"github.com/bnema/omp-cli/internal/domain"
)

type ProgressStore interface {
	Load(ctx context.Context) ([]domain.WorkshopID, error)
	Save(ctx context.Context, completed []domain.WorkshopID) error
}
