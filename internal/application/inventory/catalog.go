package inventory

import (
	"context"
	"strings"

	"github.com/jhoicas/fieldstock-api/internal/domain"
	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
	"github.com/jhoicas/fieldstock-api/internal/domain/repository"
)

// DefaultSearchLimit límite de resultados cuando la consulta no indica uno.
const DefaultSearchLimit = 20

// CatalogUseCase directorio de ubicaciones y búsqueda de partes.
type CatalogUseCase struct {
	locRepo      repository.LocationRepository
	partRepo     repository.PartRepository
	defaultLimit int
}

// NewCatalogUseCase construye el caso de uso. defaultLimit <= 0 usa DefaultSearchLimit.
func NewCatalogUseCase(locRepo repository.LocationRepository, partRepo repository.PartRepository, defaultLimit int) *CatalogUseCase {
	if defaultLimit <= 0 {
		defaultLimit = DefaultSearchLimit
	}
	return &CatalogUseCase{locRepo: locRepo, partRepo: partRepo, defaultLimit: defaultLimit}
}

// ListLocations ubicaciones activas.
func (uc *CatalogUseCase) ListLocations(ctx context.Context) ([]entity.Location, error) {
	return uc.locRepo.List(ctx)
}

// SearchParts busca partes por nombre o código. Con Location, solo partes con stock allí.
func (uc *CatalogUseCase) SearchParts(ctx context.Context, q entity.PartQuery) ([]entity.PartCandidate, error) {
	q.Query = strings.TrimSpace(q.Query)
	if q.Location != nil && !q.Location.Type.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if q.Limit <= 0 || q.Limit > 100 {
		q.Limit = uc.defaultLimit
	}
	return uc.partRepo.Search(ctx, q)
}
