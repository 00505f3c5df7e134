package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")

	// ErrInvalidTransition cubre par origen/destino ilegal, cantidades fuera de rango
	// y cualquier paso cuyo gate no se cumple. Se detecta localmente, nunca llega al backend.
	ErrInvalidTransition = errors.New("transición de movimiento inválida")
	// ErrPreflight el backend rechazó la validación o el preview de la solicitud.
	ErrPreflight = errors.New("la solicitud de movimiento fue rechazada")
	// ErrExecution falló la ejecución atómica del movimiento.
	ErrExecution = errors.New("la ejecución del movimiento falló")
	// ErrExecutionInFlight ya hay una ejecución en curso o asentada para esta entrada al paso 7.
	ErrExecutionInFlight = errors.New("ejecución ya enviada")

	ErrNoPriorSession         = errors.New("no hay sesión previa pendiente")
	ErrUnresolvedPriorSession = errors.New("hay una sesión previa sin resolver")
)

// PreflightError rechazo del backend con la lista de motivos. errors.Is(err, ErrPreflight) es true.
type PreflightError struct {
	Errors []string
}

func (e *PreflightError) Error() string {
	if len(e.Errors) == 0 {
		return ErrPreflight.Error()
	}
	return ErrPreflight.Error() + ": " + e.Errors[0]
}

func (e *PreflightError) Unwrap() error { return ErrPreflight }
