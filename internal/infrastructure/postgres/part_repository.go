package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
	"github.com/jhoicas/fieldstock-api/internal/domain/repository"
)

var _ repository.PartRepository = (*PartRepo)(nil)

// PartRepo catálogo de partes sobre PostgreSQL.
type PartRepo struct {
	q Querier
}

// NewPartRepository construye el adaptador.
func NewPartRepository(q Querier) *PartRepo {
	return &PartRepo{q: q}
}

// GetByID obtiene una parte con su proveedor; nil, nil si no existe.
func (r *PartRepo) GetByID(ctx context.Context, id string) (*entity.Part, error) {
	query := `
		SELECT p.id, p.name, COALESCE(p.code, ''), p.unit_cost, COALESCE(p.supplier_id, ''),
			COALESCE(s.name, ''), p.created_at, p.updated_at
		FROM parts p LEFT JOIN suppliers s ON s.id = p.supplier_id
		WHERE p.id = $1`
	var p entity.Part
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Code, &p.UnitCost, &p.SupplierID, &p.SupplierName, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get part: %w", err)
	}
	return &p, nil
}

// Search busca por nombre o código (ILIKE). Con q.Location solo devuelve partes con
// stock positivo allí, con su cantidad disponible y estante.
func (r *PartRepo) Search(ctx context.Context, q entity.PartQuery) ([]entity.PartCandidate, error) {
	var (
		query string
		args  []any
	)
	pattern := likePattern(q.Query)
	if q.Location != nil {
		query = `
			SELECT p.id, p.name, COALESCE(p.code, ''), sl.quantity, COALESCE(p.supplier_id, ''),
				COALESCE(s.name, ''), COALESCE(sl.shelf_location, '')
			FROM parts p
			JOIN stock_levels sl ON sl.part_id = p.id AND sl.location_type = $2 AND sl.location_id = $3
			LEFT JOIN suppliers s ON s.id = p.supplier_id
			WHERE sl.quantity > 0 AND (p.name ILIKE $1 OR p.code ILIKE $1)
			ORDER BY p.name
			LIMIT $4`
		args = []any{pattern, q.Location.Type.String(), q.Location.ID, q.Limit}
	} else {
		query = `
			SELECT p.id, p.name, COALESCE(p.code, ''), COALESCE(SUM(sl.quantity), 0), COALESCE(p.supplier_id, ''),
				COALESCE(s.name, ''), ''
			FROM parts p
			LEFT JOIN stock_levels sl ON sl.part_id = p.id
			LEFT JOIN suppliers s ON s.id = p.supplier_id
			WHERE p.name ILIKE $1 OR p.code ILIKE $1
			GROUP BY p.id, p.name, p.code, p.supplier_id, s.name
			ORDER BY p.name
			LIMIT $2`
		args = []any{pattern, q.Limit}
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search parts: %w", err)
	}
	defer rows.Close()

	list := make([]entity.PartCandidate, 0, q.Limit)
	for rows.Next() {
		var c entity.PartCandidate
		if err := rows.Scan(&c.PartID, &c.Name, &c.Code, &c.AvailableQuantity, &c.SupplierID, &c.SupplierName, &c.ShelfLocation); err != nil {
			return nil, fmt.Errorf("scan part: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
