package wizard

import (
	"context"

	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
)

// LocationDirectory listado de ubicaciones para los selectores del paso 1.
type LocationDirectory interface {
	ListLocations(ctx context.Context) ([]entity.Location, error)
}

// PartSearcher búsqueda de partes del paso 2.
type PartSearcher interface {
	SearchParts(ctx context.Context, q entity.PartQuery) ([]entity.PartCandidate, error)
}

// MovementGateway protocolo de ejecución contra el backend de inventario.
// Un rechazo de negocio en ComputePreview o Execute se reporta como *domain.PreflightError.
type MovementGateway interface {
	ValidatePreflight(ctx context.Context, req entity.MovementRequest) (entity.PreflightResult, error)
	ComputePreview(ctx context.Context, req entity.MovementRequest) (*entity.Preview, error)
	Execute(ctx context.Context, actorID string, req entity.MovementRequest) (*entity.ExecutionResult, error)
}

// PhotoUploader almacenamiento de fotos de verificación.
type PhotoUploader interface {
	UploadPhoto(ctx context.Context, file entity.PhotoUpload) (entity.PhotoRef, error)
}
