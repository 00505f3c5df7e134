package inventory

import (
	"context"

	"github.com/jhoicas/fieldstock-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza atomicidad para la ejecución de movimientos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		movRepo repository.MovementRepository,
	) error) error
}
