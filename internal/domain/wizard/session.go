// Package wizard modela la sesión del asistente de movimientos de stock: el agregado
// mutable, sus acciones, las consultas derivadas, la navegación por pasos y el
// subconjunto de campos que se persiste para poder reanudar.
package wizard

import (
	"slices"

	"github.com/paulmach/orb"

	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
	"github.com/jhoicas/fieldstock-api/internal/domain/movement"
)

// State vista de solo lectura del agregado.
type State struct {
	Visible                   bool                    `json:"visible"`
	CurrentStep               Step                    `json:"current_step"`
	From                      *entity.LocationRef     `json:"from,omitempty"`
	To                        *entity.LocationRef     `json:"to,omitempty"`
	Parts                     []Part                  `json:"parts"`
	PhotoReference            string                  `json:"photo_reference,omitempty"`
	ScanConfirmed             bool                    `json:"scan_confirmed"`
	QuantityConfirmed         bool                    `json:"quantity_confirmed"`
	Reason                    string                  `json:"reason,omitempty"`
	ReasonDetail              string                  `json:"reason_detail,omitempty"`
	Notes                     string                  `json:"notes,omitempty"`
	ReferenceNumber           string                  `json:"reference_number,omitempty"`
	DestinationHint           *entity.DestinationHint `json:"destination_hint,omitempty"`
	GPS                       *orb.Point              `json:"gps,omitempty"`
	Preview                   *entity.Preview         `json:"preview,omitempty"`
	Execution                 Execution               `json:"execution"`
	HasUnresolvedPriorSession bool                    `json:"has_unresolved_prior_session"`
}

// Presets valores con los que el llamador puede abrir una sesión nueva.
type Presets struct {
	From            *entity.LocationRef
	To              *entity.LocationRef
	Parts           []entity.PartCandidate
	DestinationHint *entity.DestinationHint
}

// Session agregado raíz del asistente. Una instancia por invocación activa; no es
// segura para uso concurrente, el dueño serializa el acceso.
type Session struct {
	rules *movement.Table
	st    State

	// previewFor solicitud para la que se calculó el preview vigente.
	previewFor *entity.MovementRequest
	// attempts contador monotónico de envíos; nunca se reinicia para descartar respuestas tardías.
	attempts int
}

func initialState() State {
	return State{CurrentStep: StepLocations}
}

// New crea una sesión vacía en el paso 1.
func New(rules *movement.Table) *Session {
	return &Session{rules: rules, st: initialState()}
}

// Rules tabla de reglas usada por la sesión.
func (s *Session) Rules() *movement.Table { return s.rules }

// State copia del estado actual.
func (s *Session) State() State {
	out := s.st
	out.Parts = slices.Clone(s.st.Parts)
	return out
}

// Reset vuelve al estado inicial vacío y aplica los presets (si los hay)
// a través de las mismas acciones que usa el asistente.
func (s *Session) Reset(p *Presets) {
	s.st = initialState()
	s.previewFor = nil
	if p == nil {
		return
	}
	if p.From != nil {
		s.SetFromLocation(*p.From)
	}
	if p.To != nil {
		s.SetToLocation(*p.To)
	}
	for _, c := range p.Parts {
		s.AddPart(c)
	}
	if p.DestinationHint != nil {
		s.SetDestinationHint(p.DestinationHint)
	}
}

// SetFromLocation fija el origen. Si el destino actual deja de ser alcanzable
// desde el nuevo origen según la tabla, el destino se limpia.
func (s *Session) SetFromLocation(ref entity.LocationRef) {
	s.st.From = &ref
	if s.st.To != nil {
		if _, ok := s.rules.Lookup(ref.Type, s.st.To.Type); !ok {
			s.st.To = nil
		}
	}
}

// SetToLocation fija el destino sin validar; el llamador solo ofrece destinos alcanzables.
func (s *Session) SetToLocation(ref entity.LocationRef) {
	s.st.To = &ref
}

// AddPart agrega la parte con cantidad 1. No hace nada si ya está o si se alcanzó MaxParts.
func (s *Session) AddPart(c entity.PartCandidate) bool {
	if len(s.st.Parts) >= MaxParts || s.indexOf(c.PartID) >= 0 {
		return false
	}
	parts := slices.Clone(s.st.Parts)
	s.st.Parts = append(parts, partFromCandidate(c))
	return true
}

// RemovePart quita la parte si existe.
func (s *Session) RemovePart(partID string) bool {
	i := s.indexOf(partID)
	if i < 0 {
		return false
	}
	parts := slices.Delete(slices.Clone(s.st.Parts), i, i+1)
	if len(parts) == 0 {
		parts = nil
	}
	s.st.Parts = parts
	return true
}

// UpdateQuantity fija la cantidad con piso 1. El tope (disponible) no se corrige:
// el exceso lo reporta el gate del paso 3.
func (s *Session) UpdateQuantity(partID string, value int) bool {
	i := s.indexOf(partID)
	if i < 0 {
		return false
	}
	if value < 1 {
		value = 1
	}
	parts := slices.Clone(s.st.Parts)
	parts[i].Quantity = value
	s.st.Parts = parts
	return true
}

func (s *Session) indexOf(partID string) int {
	return slices.IndexFunc(s.st.Parts, func(p Part) bool { return p.PartID == partID })
}

// SetPhoto, SetScanConfirmed, SetQuantityConfirmed, SetReasonDetail, SetNotes,
// SetReferenceNumber y SetCoordinate son setters directos sin efectos secundarios.
func (s *Session) SetPhoto(ref string) { s.st.PhotoReference = ref }
func (s *Session) SetScanConfirmed(v bool) { s.st.ScanConfirmed = v }
func (s *Session) SetQuantityConfirmed(v bool) { s.st.QuantityConfirmed = v }
func (s *Session) SetReasonDetail(v string) { s.st.ReasonDetail = v }
func (s *Session) SetNotes(v string) { s.st.Notes = v }
func (s *Session) SetReferenceNumber(v string) { s.st.ReferenceNumber = v }
func (s *Session) SetCoordinate(p *orb.Point) {
	if p == nil {
		s.st.GPS = nil
		return
	}
	pt := *p
	s.st.GPS = &pt
}

// SetReason fija el motivo; limpiar el motivo limpia también su detalle.
func (s *Session) SetReason(v string) {
	s.st.Reason = v
	if v == "" {
		s.st.ReasonDetail = ""
	}
}

// SetDestinationHint fija el contexto de destino final (nil lo limpia).
func (s *Session) SetDestinationHint(h *entity.DestinationHint) {
	if h == nil {
		s.st.DestinationHint = nil
		return
	}
	hint := *h
	s.st.DestinationHint = &hint
}

// SetPreview guarda el preview asociándolo a la solicitud actual. La sesión no
// invalida nada por sí misma: el gate del paso 6 compara contra la solicitud vigente.
func (s *Session) SetPreview(p *entity.Preview) {
	s.st.Preview = p
	if p == nil {
		s.previewFor = nil
		return
	}
	req := s.BuildRequest()
	s.previewFor = &req
}
