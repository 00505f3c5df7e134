package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/fieldstock-api/internal/domain/repository"
	"github.com/jhoicas/fieldstock-api/internal/domain/wizard"
)

var _ repository.WizardSessionRepository = (*WizardSessionRepo)(nil)

// WizardSessionRepo registro durable de la sesión del asistente (una fila JSONB por dueño).
type WizardSessionRepo struct {
	q Querier
}

// NewWizardSessionRepository construye el adaptador.
func NewWizardSessionRepository(q Querier) *WizardSessionRepo {
	return &WizardSessionRepo{q: q}
}

// Load lee el snapshot del dueño.
func (r *WizardSessionRepo) Load(ctx context.Context, ownerID string) (*wizard.Snapshot, error) {
	var raw []byte
	err := r.q.QueryRow(ctx, `SELECT snapshot FROM wizard_sessions WHERE owner_id = $1`, ownerID).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load wizard session: %w", err)
	}
	snap, err := wizard.UnmarshalSnapshot(raw)
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// Save reemplaza el snapshot del dueño.
func (r *WizardSessionRepo) Save(ctx context.Context, ownerID string, snap wizard.Snapshot) error {
	raw, err := wizard.MarshalSnapshot(snap)
	if err != nil {
		return fmt.Errorf("encode wizard session: %w", err)
	}
	query := `
		INSERT INTO wizard_sessions (owner_id, snapshot, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (owner_id)
		DO UPDATE SET snapshot = EXCLUDED.snapshot, updated_at = now()`
	if _, err := r.q.Exec(ctx, query, ownerID, raw); err != nil {
		return fmt.Errorf("save wizard session: %w", err)
	}
	return nil
}

// Delete borra el registro del dueño (no falla si no existe).
func (r *WizardSessionRepo) Delete(ctx context.Context, ownerID string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM wizard_sessions WHERE owner_id = $1`, ownerID); err != nil {
		return fmt.Errorf("delete wizard session: %w", err)
	}
	return nil
}
