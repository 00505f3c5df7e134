package wizard

import (
	"fmt"

	"github.com/jhoicas/fieldstock-api/internal/domain"
	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
)

// ExecutionStatus estado explícito de la ejecución dentro del paso 7.
// Un segundo envío desde InFlight o Succeeded no es representable.
type ExecutionStatus uint8

const (
	ExecutionIdle ExecutionStatus = iota
	ExecutionInFlight
	ExecutionSucceeded
	ExecutionFailed
)

var executionStatusNames = [...]string{"idle", "in_flight", "succeeded", "failed"}

func (e ExecutionStatus) String() string {
	if int(e) < len(executionStatusNames) {
		return executionStatusNames[e]
	}
	return fmt.Sprintf("ExecutionStatus(%d)", uint8(e))
}

// MarshalText serializa el estado por nombre.
func (e ExecutionStatus) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

// Execution ciclo de vida de la ejecución. Request es la solicitud exacta enviada;
// un reintento la reenvía sin reconstruirla desde la sesión.
type Execution struct {
	Status  ExecutionStatus         `json:"status"`
	Attempt int                     `json:"attempt"`
	Request *entity.MovementRequest `json:"request,omitempty"`
	Result  *entity.ExecutionResult `json:"result,omitempty"`
	Error   string                  `json:"error,omitempty"`
}

// Locked hay una ejecución en curso o ya asentada con éxito; la sesión no admite ediciones.
func (s *Session) Locked() bool {
	switch s.st.Execution.Status {
	case ExecutionInFlight, ExecutionSucceeded:
		return true
	}
	return false
}

// BeginExecution dispara la ejecución una sola vez por entrada al paso 7.
// Devuelve la solicitud a enviar y el número de intento que debe acompañar al resultado.
func (s *Session) BeginExecution() (entity.MovementRequest, int, error) {
	if s.st.CurrentStep != StepExecute {
		return entity.MovementRequest{}, 0, fmt.Errorf("%w: la ejecución solo ocurre en el paso %d", domain.ErrInvalidTransition, StepExecute)
	}
	switch s.st.Execution.Status {
	case ExecutionIdle:
	case ExecutionFailed:
		return entity.MovementRequest{}, 0, fmt.Errorf("%w: use reintentar", domain.ErrExecutionInFlight)
	default:
		return entity.MovementRequest{}, 0, domain.ErrExecutionInFlight
	}
	if blocked := s.firstIncomplete(StepExecute); blocked != StepExecute {
		return entity.MovementRequest{}, 0, fmt.Errorf("%w: el paso %d (%s) no está completo",
			domain.ErrInvalidTransition, blocked, blocked.Title())
	}
	req := s.BuildRequest()
	s.attempts++
	s.st.Execution = Execution{Status: ExecutionInFlight, Attempt: s.attempts, Request: &req}
	return req, s.attempts, nil
}

// RetryExecution reenvía la misma solicitud tras un fallo.
func (s *Session) RetryExecution() (entity.MovementRequest, int, error) {
	e := s.st.Execution
	if s.st.CurrentStep != StepExecute || e.Status != ExecutionFailed || e.Request == nil {
		if e.Status == ExecutionInFlight || e.Status == ExecutionSucceeded {
			return entity.MovementRequest{}, 0, domain.ErrExecutionInFlight
		}
		return entity.MovementRequest{}, 0, fmt.Errorf("%w: no hay ejecución fallida para reintentar", domain.ErrInvalidTransition)
	}
	s.attempts++
	s.st.Execution = Execution{Status: ExecutionInFlight, Attempt: s.attempts, Request: e.Request}
	return *e.Request, s.attempts, nil
}

// SetExecutionResult asienta el éxito del intento. Una respuesta de un intento
// que ya no es el vigente se ignora y devuelve false. Si la sesión se cerró
// mientras el intento estaba en curso, queda reiniciada.
func (s *Session) SetExecutionResult(attempt int, res entity.ExecutionResult) bool {
	if !s.awaiting(attempt) {
		return false
	}
	s.st.Execution.Status = ExecutionSucceeded
	s.st.Execution.Result = &res
	if s.st.HasUnresolvedPriorSession {
		// Cerrada durante la ejecución: el movimiento quedó asentado y no hay nada que reanudar.
		visible := s.st.Visible
		s.Reset(nil)
		s.st.Visible = visible
	}
	return true
}

// SetExecutionError asienta el fallo del intento; la sesión queda lista para reintentar.
func (s *Session) SetExecutionError(attempt int, msg string) bool {
	if !s.awaiting(attempt) {
		return false
	}
	s.st.Execution.Status = ExecutionFailed
	s.st.Execution.Error = msg
	return true
}

func (s *Session) awaiting(attempt int) bool {
	e := s.st.Execution
	return e.Status == ExecutionInFlight && e.Attempt == attempt
}
