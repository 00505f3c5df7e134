package repository

import (
	"context"

	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
)

// StockRepository define el puerto para consultar/actualizar stock por ubicación+parte.
// Usado dentro de transacciones para garantizar consistencia.
type StockRepository interface {
	Get(ctx context.Context, partID string, loc entity.LocationRef) (*entity.StockLevel, error)
	Upsert(ctx context.Context, stock *entity.StockLevel) error
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	// Get y GetForUpdate devuelven nil, nil si no hay fila.
	GetForUpdate(ctx context.Context, partID string, loc entity.LocationRef) (*entity.StockLevel, error)
}
