package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
)

// Querier subconjunto común de *pgxpool.Pool y pgx.Tx: los repos funcionan igual
// dentro y fuera de una transacción.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// isLockNotAvailable la espera por una fila bloqueada superó lock_timeout (55P03).
func isLockNotAvailable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "55P03"
}

// isDeadlock el servidor abortó la transacción por un ciclo de bloqueos (40P01).
func isDeadlock(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "40P01"
}

// parseLocation reconstruye una LocationRef desde las columnas (tipo texto, id).
func parseLocation(typ, id string) (entity.LocationRef, error) {
	t, err := entity.ParseLocationType(typ)
	if err != nil {
		return entity.LocationRef{}, fmt.Errorf("ubicación %s:%s: %w", typ, id, err)
	}
	return entity.LocationRef{Type: t, ID: id}, nil
}

// likePattern patrón ILIKE con comodines escapados.
func likePattern(q string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(q) + "%"
}
