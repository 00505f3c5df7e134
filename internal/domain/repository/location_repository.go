package repository

import (
	"context"

	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
)

// LocationRepository directorio de ubicaciones (bodegas, staging, vehículos, trabajos).
type LocationRepository interface {
	List(ctx context.Context) ([]entity.Location, error)
	// Get devuelve nil, nil si la ubicación no existe o está inactiva.
	Get(ctx context.Context, ref entity.LocationRef) (*entity.Location, error)
}
