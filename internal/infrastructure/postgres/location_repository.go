package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
	"github.com/jhoicas/fieldstock-api/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo directorio de ubicaciones sobre PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador.
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// List ubicaciones activas ordenadas por tipo y etiqueta.
func (r *LocationRepo) List(ctx context.Context) ([]entity.Location, error) {
	query := `
		SELECT location_type, location_id, label, COALESCE(sub_label, ''), active, updated_at
		FROM locations WHERE active
		ORDER BY location_type, label`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	list := make([]entity.Location, 0)
	for rows.Next() {
		loc, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *loc)
	}
	return list, rows.Err()
}

// Get ubicación activa por referencia; nil, nil si no existe.
func (r *LocationRepo) Get(ctx context.Context, ref entity.LocationRef) (*entity.Location, error) {
	query := `
		SELECT location_type, location_id, label, COALESCE(sub_label, ''), active, updated_at
		FROM locations WHERE location_type = $1 AND location_id = $2 AND active`
	loc, err := r.scan(r.q.QueryRow(ctx, query, ref.Type.String(), ref.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return loc, nil
}

func (r *LocationRepo) scan(row pgx.Row) (*entity.Location, error) {
	var (
		loc     entity.Location
		locType string
	)
	if err := row.Scan(&locType, &loc.ID, &loc.Label, &loc.SubLabel, &loc.Active, &loc.UpdatedAt); err != nil {
		return nil, err
	}
	t, err := entity.ParseLocationType(locType)
	if err != nil {
		return nil, err
	}
	loc.Type = t
	return &loc, nil
}
