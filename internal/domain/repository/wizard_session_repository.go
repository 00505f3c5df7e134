package repository

import (
	"context"

	"github.com/jhoicas/fieldstock-api/internal/domain/wizard"
)

// WizardSessionRepository registro durable de la sesión del asistente: uno por dueño.
type WizardSessionRepository interface {
	// Load devuelve nil, nil si no hay registro. Un registro ilegible devuelve un
	// error que envuelve wizard.ErrUndecodableSnapshot.
	Load(ctx context.Context, ownerID string) (*wizard.Snapshot, error)
	Save(ctx context.Context, ownerID string, snap wizard.Snapshot) error
	Delete(ctx context.Context, ownerID string) error
}
