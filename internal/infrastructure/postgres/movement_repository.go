package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/paulmach/orb"

	"github.com/jhoicas/fieldstock-api/internal/domain"
	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
	"github.com/jhoicas/fieldstock-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación sobre PostgreSQL (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Create persiste una fila de movimiento.
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	var lon, lat *float64
	if m.Coordinate != nil {
		x, y := m.Coordinate.Lon(), m.Coordinate.Lat()
		lon, lat = &x, &y
	}
	query := `
		INSERT INTO stock_movements (
			id, transaction_id, part_id, from_type, from_id, to_type, to_id, movement_type,
			quantity, unit_cost, total_cost, supplier_id, reason, reason_detail, notes,
			reference_number, photo_path, gps_lon, gps_lat, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.TransactionID, m.PartID,
		m.From.Type.String(), m.From.ID, m.To.Type.String(), m.To.ID, m.Type.String(),
		m.Quantity, m.UnitCost, m.TotalCost, nullable(m.SupplierID),
		nullable(m.Reason), nullable(m.ReasonDetail), nullable(m.Notes),
		nullable(m.ReferenceNumber), nullable(m.PhotoPath), lon, lat,
		m.CreatedAt, nullable(m.CreatedBy),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: movimiento %s duplicado", domain.ErrConflict, m.ID)
		}
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// ListByTransaction filas de una misma ejecución, en orden de inserción.
func (r *MovementRepo) ListByTransaction(ctx context.Context, transactionID string) ([]*entity.Movement, error) {
	query := `
		SELECT id, transaction_id, part_id, from_type, from_id, to_type, to_id, movement_type,
			quantity, unit_cost, total_cost, COALESCE(supplier_id, ''), COALESCE(reason, ''),
			COALESCE(reason_detail, ''), COALESCE(notes, ''), COALESCE(reference_number, ''),
			COALESCE(photo_path, ''), gps_lon, gps_lat, created_at, COALESCE(created_by, '')
		FROM stock_movements WHERE transaction_id = $1
		ORDER BY created_at, id`
	rows, err := r.q.Query(ctx, query, transactionID)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.Movement
	for rows.Next() {
		var (
			m                        entity.Movement
			fromType, toType, mvType string
			lon, lat                 *float64
		)
		if err := rows.Scan(
			&m.ID, &m.TransactionID, &m.PartID, &fromType, &m.From.ID, &toType, &m.To.ID, &mvType,
			&m.Quantity, &m.UnitCost, &m.TotalCost, &m.SupplierID, &m.Reason,
			&m.ReasonDetail, &m.Notes, &m.ReferenceNumber,
			&m.PhotoPath, &lon, &lat, &m.CreatedAt, &m.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if m.From, err = parseLocation(fromType, m.From.ID); err != nil {
			return nil, err
		}
		if m.To, err = parseLocation(toType, m.To.ID); err != nil {
			return nil, err
		}
		if err := m.Type.UnmarshalText([]byte(mvType)); err != nil {
			return nil, err
		}
		if lon != nil && lat != nil {
			m.Coordinate = &orb.Point{*lon, *lat}
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
