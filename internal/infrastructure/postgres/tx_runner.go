package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/fieldstock-api/internal/application/inventory"
	"github.com/jhoicas/fieldstock-api/internal/domain"
	"github.com/jhoicas/fieldstock-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta la aplicación de un movimiento dentro de una transacción.
// lockTimeout acota la espera por filas de stock tomadas con FOR UPDATE por otra ejecución.
type TxRunner struct {
	pool        *pgxpool.Pool
	lockTimeout time.Duration
}

// NewTxRunner construye el runner. lockTimeout <= 0 deja el valor del servidor.
func NewTxRunner(pool *pgxpool.Pool, lockTimeout time.Duration) *TxRunner {
	return &TxRunner{pool: pool, lockTimeout: lockTimeout}
}

// Run abre la transacción (READ COMMITTED), entrega a fn los repos de stock y movimientos
// atados a ella y confirma solo si fn no devuelve error.
func (r *TxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	movRepo repository.MovementRepository,
) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("iniciar transacción: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if r.lockTimeout > 0 {
		// SET no admite parámetros ($1).
		stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", r.lockTimeout.Milliseconds())
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("lock_timeout: %w", err)
		}
	}

	if err := fn(NewStockRepository(tx), NewMovementRepository(tx)); err != nil {
		switch {
		case isLockNotAvailable(err):
			return fmt.Errorf("%w: stock bloqueado por otra ejecución", domain.ErrConflict)
		case isDeadlock(err):
			return fmt.Errorf("%w: ejecución concurrente sobre el mismo stock", domain.ErrConflict)
		}
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("confirmar transacción: %w", err)
	}
	return nil
}
