package repository

import (
	"context"

	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia para movimientos ejecutados.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	ListByTransaction(ctx context.Context, transactionID string) ([]*entity.Movement, error)
}
