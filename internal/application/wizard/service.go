// Package wizard orquesta las sesiones del asistente de movimientos: una sesión viva
// por usuario, su registro durable para reanudar y las llamadas a los colaboradores
// (preview, ejecución, búsqueda, fotos).
package wizard

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/jhoicas/fieldstock-api/internal/application/dto"
	"github.com/jhoicas/fieldstock-api/internal/domain"
	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
	"github.com/jhoicas/fieldstock-api/internal/domain/movement"
	"github.com/jhoicas/fieldstock-api/internal/domain/repository"
	"github.com/jhoicas/fieldstock-api/internal/domain/wizard"
	"github.com/jhoicas/fieldstock-api/pkg/logger"
)

// Options parámetros de comportamiento del servicio.
type Options struct {
	SearchDebounce time.Duration
	SearchLimit    int
}

// Service dueño de las sesiones del asistente.
type Service struct {
	rules     *movement.Table
	store     repository.WizardSessionRepository
	gateway   MovementGateway
	locations LocationDirectory
	parts     PartSearcher
	photos    PhotoUploader
	debouncer *Debouncer
	limit     int
	log       *logger.Logger

	mu       sync.Mutex
	sessions map[string]*ownedSession
}

// ownedSession sesión de un usuario. mu serializa las mutaciones; se suelta durante
// las llamadas a colaboradores.
type ownedSession struct {
	mu        sync.Mutex
	session   *wizard.Session
	persisted *wizard.Snapshot
	preflight *entity.PreflightResult
}

// NewService construye el servicio.
func NewService(
	rules *movement.Table,
	store repository.WizardSessionRepository,
	gateway MovementGateway,
	locations LocationDirectory,
	parts PartSearcher,
	photos PhotoUploader,
	opts Options,
	log *logger.Logger,
) *Service {
	if log == nil {
		log = logger.Nop()
	}
	if opts.SearchLimit <= 0 {
		opts.SearchLimit = 20
	}
	return &Service{
		rules:     rules,
		store:     store,
		gateway:   gateway,
		locations: locations,
		parts:     parts,
		photos:    photos,
		debouncer: NewDebouncer(opts.SearchDebounce),
		limit:     opts.SearchLimit,
		log:       log.Component("wizard"),
		sessions:  make(map[string]*ownedSession),
	}
}

// acquire devuelve la sesión del dueño bloqueada, cargándola del registro durable
// la primera vez. El llamador debe invocar release.
func (s *Service) acquire(ctx context.Context, owner string) (*ownedSession, func(), error) {
	if owner == "" {
		return nil, nil, domain.ErrUnauthorized
	}
	s.mu.Lock()
	o, ok := s.sessions[owner]
	if !ok {
		o = &ownedSession{}
		s.sessions[owner] = o
	}
	s.mu.Unlock()

	o.mu.Lock()
	if o.session == nil {
		if err := s.load(ctx, owner, o); err != nil {
			o.mu.Unlock()
			return nil, nil, err
		}
	}
	return o, o.mu.Unlock, nil
}

func (s *Service) load(ctx context.Context, owner string, o *ownedSession) error {
	snap, err := s.store.Load(ctx, owner)
	switch {
	case errors.Is(err, wizard.ErrUndecodableSnapshot):
		s.log.Warn().Err(err).Str("owner", owner).Msg("registro de sesión descartado")
		if err := s.store.Delete(ctx, owner); err != nil {
			s.log.Warn().Err(err).Str("owner", owner).Msg("no se pudo borrar el registro ilegible")
		}
		snap = nil
	case err != nil:
		return fmt.Errorf("cargar sesión del asistente: %w", err)
	}
	if snap == nil {
		o.session = wizard.New(s.rules)
		o.persisted = &wizard.Snapshot{}
		return nil
	}
	o.session = wizard.Restore(s.rules, *snap)
	o.persisted = snap
	s.log.Debug().Str("owner", owner).Int("step", int(o.session.State().CurrentStep)).Msg("sesión restaurada")
	return nil
}

// persist refleja el subconjunto durable en el almacenamiento. Es best-effort: un fallo
// se registra y no se propaga. Una ejecución exitosa deja el registro vacío para que
// un reinicio no ofrezca reanudar algo ya asentado.
func (s *Service) persist(ctx context.Context, owner string, o *ownedSession) {
	snap := o.session.Snapshot()
	if o.session.State().Execution.Result != nil {
		snap = wizard.Snapshot{}
	}
	if o.persisted != nil && reflect.DeepEqual(*o.persisted, snap) {
		return
	}
	var err error
	if snap.IsEmpty() {
		err = s.store.Delete(ctx, owner)
	} else {
		err = s.store.Save(ctx, owner, snap)
	}
	if err != nil {
		s.log.Warn().Err(err).Str("owner", owner).Msg("no se pudo persistir la sesión del asistente")
		return
	}
	o.persisted = &snap
}

// view arma la vista del cliente: estado más consultas derivadas.
func (s *Service) view(o *ownedSession) dto.WizardView {
	sess := o.session
	st := sess.State()
	if st.Parts == nil {
		st.Parts = []wizard.Part{}
	}
	v := dto.WizardView{
		State:                st,
		VerificationRequired: sess.VerificationRequired(),
		TotalQuantity:        sess.TotalQuantity(),
		Steps:                sess.Steps(),
		CanAdvance:           sess.CanAdvance(st.CurrentStep),
		PreviewCurrent:       sess.PreviewCurrent(),
		PendingResume:        sess.PendingResume(),
	}
	if key, ok := sess.MovementKey(); ok {
		v.MovementKey = key
	}
	if mt, ok := sess.MovementType(); ok {
		v.MovementType = mt.String()
		v.MovementLabel = mt.Label()
	}
	if v.PreviewCurrent {
		v.Preflight = o.preflight
	}
	return v
}

// Get estado actual de la sesión del dueño.
func (s *Service) Get(ctx context.Context, owner string) (dto.WizardView, error) {
	o, release, err := s.acquire(ctx, owner)
	if err != nil {
		return dto.WizardView{}, err
	}
	defer release()
	return s.view(o), nil
}

// Open muestra el asistente. Con una sesión previa pendiente la vista queda con
// PendingResume=true y los presets se ignoran.
func (s *Service) Open(ctx context.Context, owner string, presets *wizard.Presets) (dto.WizardView, error) {
	o, release, err := s.acquire(ctx, owner)
	if err != nil {
		return dto.WizardView{}, err
	}
	defer release()
	pending := o.session.Open(presets)
	if !pending {
		o.preflight = nil
	}
	s.log.Info().Str("owner", owner).Bool("pending_resume", pending).Msg("asistente abierto")
	s.persist(ctx, owner, o)
	return s.view(o), nil
}

// Close oculta el asistente conservando los datos si hay partes sin ejecutar.
func (s *Service) Close(ctx context.Context, owner string) (dto.WizardView, error) {
	o, release, err := s.acquire(ctx, owner)
	if err != nil {
		return dto.WizardView{}, err
	}
	defer release()
	kept := o.session.Close()
	if !kept {
		o.preflight = nil
	}
	s.log.Info().Str("owner", owner).Bool("kept", kept).Msg("asistente cerrado")
	s.persist(ctx, owner, o)
	return s.view(o), nil
}

// Resume acepta la sesión previa pendiente.
func (s *Service) Resume(ctx context.Context, owner string) (dto.WizardView, error) {
	o, release, err := s.acquire(ctx, owner)
	if err != nil {
		return dto.WizardView{}, err
	}
	defer release()
	if err := o.session.Resume(); err != nil {
		return s.view(o), err
	}
	s.log.Info().Str("owner", owner).Int("step", int(o.session.State().CurrentStep)).Msg("sesión reanudada")
	s.persist(ctx, owner, o)
	return s.view(o), nil
}

// DiscardAndClose reinicio total, incluido el registro durable.
func (s *Service) DiscardAndClose(ctx context.Context, owner string) (dto.WizardView, error) {
	o, release, err := s.acquire(ctx, owner)
	if err != nil {
		return dto.WizardView{}, err
	}
	defer release()
	o.session.Discard()
	o.preflight = nil
	if err := s.store.Delete(ctx, owner); err != nil {
		return s.view(o), fmt.Errorf("borrar sesión del asistente: %w", err)
	}
	o.persisted = &wizard.Snapshot{}
	s.log.Info().Str("owner", owner).Msg("sesión descartada")
	return s.view(o), nil
}

// mutate aplica una acción sobre una sesión visible, resuelta y no bloqueada por una ejecución.
func (s *Service) mutate(ctx context.Context, owner string, fn func(*wizard.Session) error) (dto.WizardView, error) {
	o, release, err := s.acquire(ctx, owner)
	if err != nil {
		return dto.WizardView{}, err
	}
	defer release()
	if err := editable(o.session); err != nil {
		return s.view(o), err
	}
	if err := fn(o.session); err != nil {
		return s.view(o), err
	}
	s.persist(ctx, owner, o)
	return s.view(o), nil
}

// edit aplica una edición de datos. En el paso 7 la solicitud ya fue revisada en el
// preview; para cambiarla hay que volver al paso anterior.
func (s *Service) edit(ctx context.Context, owner string, fn func(*wizard.Session) error) (dto.WizardView, error) {
	return s.mutate(ctx, owner, func(sess *wizard.Session) error {
		if sess.State().CurrentStep == wizard.StepExecute {
			return fmt.Errorf("%w: vuelva al paso %d para editar", domain.ErrInvalidTransition, wizard.StepPreview)
		}
		return fn(sess)
	})
}

func editable(sess *wizard.Session) error {
	st := sess.State()
	switch {
	case sess.PendingResume():
		return domain.ErrUnresolvedPriorSession
	case !st.Visible:
		return fmt.Errorf("%w: el asistente no está abierto", domain.ErrInvalidTransition)
	case sess.Locked():
		return domain.ErrExecutionInFlight
	}
	return nil
}

func validRef(ref entity.LocationRef) error {
	if !ref.Type.Valid() || ref.ID == "" {
		return fmt.Errorf("%w: ubicación incompleta", domain.ErrInvalidInput)
	}
	return nil
}

// SetFrom fija el origen; limpia el destino si deja de ser alcanzable.
func (s *Service) SetFrom(ctx context.Context, owner string, ref entity.LocationRef) (dto.WizardView, error) {
	if err := validRef(ref); err != nil {
		return dto.WizardView{}, err
	}
	return s.edit(ctx, owner, func(sess *wizard.Session) error {
		sess.SetFromLocation(ref)
		return nil
	})
}

// SetTo fija el destino.
func (s *Service) SetTo(ctx context.Context, owner string, ref entity.LocationRef) (dto.WizardView, error) {
	if err := validRef(ref); err != nil {
		return dto.WizardView{}, err
	}
	return s.edit(ctx, owner, func(sess *wizard.Session) error {
		sess.SetToLocation(ref)
		return nil
	})
}

// AddPart agrega una parte; duplicados y el exceso sobre el máximo se ignoran.
func (s *Service) AddPart(ctx context.Context, owner string, c entity.PartCandidate) (dto.WizardView, error) {
	if c.PartID == "" {
		return dto.WizardView{}, fmt.Errorf("%w: part_id requerido", domain.ErrInvalidInput)
	}
	return s.edit(ctx, owner, func(sess *wizard.Session) error {
		sess.AddPart(c)
		return nil
	})
}

// RemovePart quita una parte.
func (s *Service) RemovePart(ctx context.Context, owner, partID string) (dto.WizardView, error) {
	return s.edit(ctx, owner, func(sess *wizard.Session) error {
		if !sess.RemovePart(partID) {
			return fmt.Errorf("%w: parte %s", domain.ErrNotFound, partID)
		}
		return nil
	})
}

// UpdateQuantity fija la cantidad desde un valor crudo (número o texto).
func (s *Service) UpdateQuantity(ctx context.Context, owner, partID string, raw any) (dto.WizardView, error) {
	q := wizard.CoerceQuantity(raw)
	return s.edit(ctx, owner, func(sess *wizard.Session) error {
		if !sess.UpdateQuantity(partID, q) {
			return fmt.Errorf("%w: parte %s", domain.ErrNotFound, partID)
		}
		return nil
	})
}

// SetVerification entradas del paso 4.
func (s *Service) SetVerification(ctx context.Context, owner string, in dto.VerificationRequest) (dto.WizardView, error) {
	return s.edit(ctx, owner, func(sess *wizard.Session) error {
		if in.PhotoReference != nil {
			sess.SetPhoto(*in.PhotoReference)
		}
		if in.ScanConfirmed != nil {
			sess.SetScanConfirmed(*in.ScanConfirmed)
		}
		if in.QuantityConfirmed != nil {
			sess.SetQuantityConfirmed(*in.QuantityConfirmed)
		}
		return nil
	})
}

// SetDetails motivo, notas, referencia, coordenada y destino final (paso 5).
func (s *Service) SetDetails(ctx context.Context, owner string, in dto.DetailsRequest) (dto.WizardView, error) {
	return s.edit(ctx, owner, func(sess *wizard.Session) error {
		if in.Reason != nil {
			sess.SetReason(*in.Reason)
		}
		if in.ReasonDetail != nil {
			sess.SetReasonDetail(*in.ReasonDetail)
		}
		if in.Notes != nil {
			sess.SetNotes(*in.Notes)
		}
		if in.ReferenceNumber != nil {
			sess.SetReferenceNumber(*in.ReferenceNumber)
		}
		switch {
		case in.ClearGPS:
			sess.SetCoordinate(nil)
		case in.GPS != nil:
			sess.SetCoordinate(in.GPS)
		}
		switch {
		case in.ClearDestinationHint:
			sess.SetDestinationHint(nil)
		case in.DestinationHint != nil:
			sess.SetDestinationHint(in.DestinationHint)
		}
		return nil
	})
}

// Next avanza al siguiente paso visible si los gates se cumplen.
func (s *Service) Next(ctx context.Context, owner string) (dto.WizardView, error) {
	return s.mutate(ctx, owner, func(sess *wizard.Session) error {
		return sess.Advance()
	})
}

// Back vuelve al paso visible anterior.
func (s *Service) Back(ctx context.Context, owner string) (dto.WizardView, error) {
	return s.mutate(ctx, owner, func(sess *wizard.Session) error {
		return sess.Retreat()
	})
}

// UploadPhoto sube la foto y la deja como referencia de verificación de la sesión.
// La subida no depende de la sesión: si la sesión ya no admite cambios se devuelve
// la referencia junto con el error.
func (s *Service) UploadPhoto(ctx context.Context, owner string, file entity.PhotoUpload) (entity.PhotoRef, dto.WizardView, error) {
	ref, err := s.photos.UploadPhoto(ctx, file)
	if err != nil {
		return entity.PhotoRef{}, dto.WizardView{}, fmt.Errorf("subir foto: %w", err)
	}
	s.log.Info().Str("owner", owner).Str("path", ref.Path).Msg("foto de verificación subida")
	v, err := s.edit(ctx, owner, func(sess *wizard.Session) error {
		sess.SetPhoto(ref.Path)
		return nil
	})
	return ref, v, err
}
