package wizard

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/jhoicas/fieldstock-api/internal/application/dto"
	"github.com/jhoicas/fieldstock-api/internal/domain"
	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
	"github.com/jhoicas/fieldstock-api/internal/domain/wizard"
)

// RequestPreview pide validación y preview para la solicitud vigente (paso 6).
// La sesión se libera mientras el backend responde; si la solicitud cambió en el
// intervalo, la respuesta se descarta con domain.ErrConflict.
func (s *Service) RequestPreview(ctx context.Context, owner string) (dto.WizardView, error) {
	o, release, err := s.acquire(ctx, owner)
	if err != nil {
		return dto.WizardView{}, err
	}
	if err := editable(o.session); err != nil {
		v := s.view(o)
		release()
		return v, err
	}
	if step := o.session.State().CurrentStep; step != wizard.StepPreview {
		v := s.view(o)
		release()
		return v, fmt.Errorf("%w: el preview se pide en el paso %d", domain.ErrInvalidTransition, wizard.StepPreview)
	}
	req := o.session.BuildRequest()
	release()

	// Validación previa: solo informativa.
	pf, pfErr := s.gateway.ValidatePreflight(ctx, req)
	if pfErr != nil {
		s.log.Warn().Err(pfErr).Str("owner", owner).Msg("validación previa no disponible")
	}
	preview, err := s.gateway.ComputePreview(ctx, req)

	o, release, aerr := s.acquire(ctx, owner)
	if aerr != nil {
		return dto.WizardView{}, aerr
	}
	defer release()
	if o.session.State().CurrentStep != wizard.StepPreview || !reflect.DeepEqual(o.session.BuildRequest(), req) {
		return s.view(o), fmt.Errorf("%w: la solicitud cambió mientras se calculaba el preview", domain.ErrConflict)
	}
	if err != nil {
		if errors.Is(err, domain.ErrPreflight) {
			s.log.Info().Err(err).Str("owner", owner).Msg("preview rechazado")
			return s.view(o), err
		}
		s.log.Error().Err(err).Str("owner", owner).Msg("fallo al calcular el preview")
		return s.view(o), fmt.Errorf("calcular preview: %w", err)
	}
	o.session.SetPreview(preview)
	o.preflight = nil
	if pfErr == nil {
		o.preflight = &pf
	}
	return s.view(o), nil
}

// Execute dispara la ejecución atómica (una sola vez por entrada al paso 7).
func (s *Service) Execute(ctx context.Context, owner, actorID string) (dto.WizardView, error) {
	return s.submit(ctx, owner, actorID, (*wizard.Session).BeginExecution)
}

// Retry reenvía exactamente la última solicitud tras un fallo.
func (s *Service) Retry(ctx context.Context, owner, actorID string) (dto.WizardView, error) {
	return s.submit(ctx, owner, actorID, (*wizard.Session).RetryExecution)
}

func (s *Service) submit(
	ctx context.Context,
	owner, actorID string,
	begin func(*wizard.Session) (entity.MovementRequest, int, error),
) (dto.WizardView, error) {
	o, release, err := s.acquire(ctx, owner)
	if err != nil {
		return dto.WizardView{}, err
	}
	switch {
	case o.session.PendingResume():
		err = domain.ErrUnresolvedPriorSession
	case !o.session.State().Visible:
		err = fmt.Errorf("%w: el asistente no está abierto", domain.ErrInvalidTransition)
	}
	if err != nil {
		v := s.view(o)
		release()
		return v, err
	}
	req, attempt, err := begin(o.session)
	if err != nil {
		v := s.view(o)
		release()
		return v, err
	}
	release()

	// Cerrar el asistente no cancela una ejecución en curso.
	res, execErr := s.gateway.Execute(context.WithoutCancel(ctx), actorID, req)

	o, release, err = s.acquire(ctx, owner)
	if err != nil {
		return dto.WizardView{}, err
	}
	defer release()
	if execErr != nil {
		if !o.session.SetExecutionError(attempt, execErr.Error()) {
			s.log.Warn().Str("owner", owner).Int("attempt", attempt).Msg("error de ejecución tardío ignorado")
		}
		s.log.Error().Err(execErr).Str("owner", owner).Int("attempt", attempt).Msg("ejecución fallida")
		return s.view(o), fmt.Errorf("%w: %w", domain.ErrExecution, execErr)
	}
	if !o.session.SetExecutionResult(attempt, *res) {
		s.log.Warn().Str("owner", owner).Int("attempt", attempt).Msg("resultado de ejecución tardío ignorado")
		return s.view(o), nil
	}
	s.log.Info().Str("owner", owner).Str("transaction_id", res.TransactionID).
		Int("items", res.TotalItems).Msg("ejecución confirmada")
	if o.session.State().Execution.Result == nil {
		o.preflight = nil
		s.log.Info().Str("owner", owner).Msg("asistente cerrado durante la ejecución; sesión reiniciada")
	}
	s.persist(ctx, owner, o)
	return s.view(o), nil
}
