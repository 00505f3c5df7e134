package repository

import (
	"context"

	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
)

// PartRepository catálogo de partes.
type PartRepository interface {
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Part, error)
	Search(ctx context.Context, q entity.PartQuery) ([]entity.PartCandidate, error)
}
