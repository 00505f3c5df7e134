package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
	"github.com/jhoicas/fieldstock-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

const selectStock = `
	SELECT part_id, location_type, location_id, quantity, updated_at
	FROM stock_levels WHERE part_id = $1 AND location_type = $2 AND location_id = $3`

// Get obtiene el stock actual de una parte en una ubicación.
func (r *StockRepo) Get(ctx context.Context, partID string, loc entity.LocationRef) (*entity.StockLevel, error) {
	s, err := r.scan(r.q.QueryRow(ctx, selectStock, partID, loc.Type.String(), loc.ID))
	if err != nil {
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return s, nil
}

// GetForUpdate obtiene el stock y bloquea la fila para update (SELECT FOR UPDATE).
func (r *StockRepo) GetForUpdate(ctx context.Context, partID string, loc entity.LocationRef) (*entity.StockLevel, error) {
	s, err := r.scan(r.q.QueryRow(ctx, selectStock+" FOR UPDATE", partID, loc.Type.String(), loc.ID))
	if err != nil {
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return s, nil
}

func (r *StockRepo) scan(row pgx.Row) (*entity.StockLevel, error) {
	var (
		s       entity.StockLevel
		locType string
		locID   string
	)
	if err := row.Scan(&s.PartID, &locType, &locID, &s.Quantity, &s.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	loc, err := parseLocation(locType, locID)
	if err != nil {
		return nil, err
	}
	s.Location = loc
	return &s, nil
}

// Upsert inserta o actualiza la cantidad en stock (por parte y ubicación).
func (r *StockRepo) Upsert(ctx context.Context, stock *entity.StockLevel) error {
	query := `
		INSERT INTO stock_levels (part_id, location_type, location_id, quantity, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (part_id, location_type, location_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(ctx, query, stock.PartID, stock.Location.Type.String(), stock.Location.ID, stock.Quantity)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}
