package wizard

import (
	"fmt"
	"reflect"

	"github.com/jhoicas/fieldstock-api/internal/domain"
)

// CanAdvance evalúa el gate de salida del paso indicado sobre el estado actual.
func (s *Session) CanAdvance(step Step) bool {
	switch step {
	case StepLocations:
		from, to := s.st.From, s.st.To
		if from == nil || to == nil || *from == *to {
			return false
		}
		_, ok := s.rules.Lookup(from.Type, to.Type)
		return ok
	case StepSelectParts:
		return len(s.st.Parts) > 0
	case StepQuantities:
		if len(s.st.Parts) == 0 {
			return false
		}
		for _, p := range s.st.Parts {
			if !p.QuantityValid() {
				return false
			}
		}
		return true
	case StepVerification:
		if !s.VerificationRequired() {
			return true
		}
		return s.st.PhotoReference != "" && s.st.QuantityConfirmed
	case StepNotesReason:
		return true
	case StepPreview:
		return s.PreviewCurrent()
	case StepExecute:
		return s.st.Execution.Status == ExecutionSucceeded
	}
	return false
}

// PreviewCurrent hay un preview cargado y corresponde a la solicitud vigente.
func (s *Session) PreviewCurrent() bool {
	if s.st.Preview == nil || s.previewFor == nil {
		return false
	}
	return reflect.DeepEqual(*s.previewFor, s.BuildRequest())
}

// firstIncomplete primer paso (hasta limit, exclusivo) cuyo gate falla, o limit si todos pasan.
// Recorre solo pasos visibles.
func (s *Session) firstIncomplete(limit Step) Step {
	verification := s.VerificationRequired()
	step := StepLocations
	for step < limit && s.CanAdvance(step) {
		step = nextStep(step, verification)
	}
	if step > limit {
		return limit
	}
	return step
}

// Advance pasa al siguiente paso visible. Exige que todos los gates hasta el paso
// actual se cumplan (una edición hecha fuera de su paso puede invalidar uno anterior).
func (s *Session) Advance() error {
	cur := s.st.CurrentStep
	if cur >= StepExecute {
		return fmt.Errorf("%w: no hay paso posterior a %d", domain.ErrInvalidTransition, cur)
	}
	if blocked := s.firstIncomplete(cur + 1); blocked <= cur {
		return fmt.Errorf("%w: el paso %d (%s) no está completo", domain.ErrInvalidTransition, blocked, blocked.Title())
	}
	next := nextStep(cur, s.VerificationRequired())
	if next == StepExecute {
		s.st.Execution = Execution{Attempt: s.attempts}
	}
	s.st.CurrentStep = next
	return nil
}

// Retreat vuelve al paso visible anterior. Desde el paso 7 solo se puede volver
// mientras no haya una ejecución en curso o exitosa.
func (s *Session) Retreat() error {
	cur := s.st.CurrentStep
	if cur <= StepLocations {
		return fmt.Errorf("%w: no hay paso anterior a %d", domain.ErrInvalidTransition, cur)
	}
	if cur == StepExecute {
		switch s.st.Execution.Status {
		case ExecutionInFlight, ExecutionSucceeded:
			return fmt.Errorf("%w: la ejecución ya fue enviada", domain.ErrExecutionInFlight)
		}
		s.st.Execution = Execution{Attempt: s.attempts}
	}
	s.st.CurrentStep = prevStep(cur, s.VerificationRequired())
	return nil
}

// Steps pasos visibles (verificación oculta si no se exige) con su estado.
func (s *Session) Steps() []StepInfo {
	verification := s.VerificationRequired()
	out := make([]StepInfo, 0, StepExecute)
	for step := StepLocations; step <= StepExecute; step++ {
		if step == StepVerification && !verification {
			continue
		}
		out = append(out, StepInfo{
			Step:     step,
			Title:    step.Title(),
			Complete: s.CanAdvance(step),
			Current:  step == s.st.CurrentStep,
		})
	}
	return out
}
