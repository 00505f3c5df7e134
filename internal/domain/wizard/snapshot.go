package wizard

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/paulmach/orb"

	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
	"github.com/jhoicas/fieldstock-api/internal/domain/movement"
)

// Snapshot contrato durable de la sesión: solo el subconjunto de campos que tiene
// sentido tras recargar. Visibilidad, preview y ejecución quedan fuera.
// Campos ausentes en un registro viejo se leen como su valor cero.
type Snapshot struct {
	CurrentStep               int                     `json:"current_step,omitempty"`
	From                      *entity.LocationRef     `json:"from,omitempty"`
	To                        *entity.LocationRef     `json:"to,omitempty"`
	Parts                     []SnapshotPart          `json:"parts,omitempty"`
	PhotoReference            string                  `json:"photo_reference,omitempty"`
	ScanConfirmed             bool                    `json:"scan_confirmed,omitempty"`
	QuantityConfirmed         bool                    `json:"quantity_confirmed,omitempty"`
	Reason                    string                  `json:"reason,omitempty"`
	ReasonDetail              string                  `json:"reason_detail,omitempty"`
	Notes                     string                  `json:"notes,omitempty"`
	ReferenceNumber           string                  `json:"reference_number,omitempty"`
	DestinationHint           *entity.DestinationHint `json:"destination_hint,omitempty"`
	GPS                       *orb.Point              `json:"gps,omitempty"`
	HasUnresolvedPriorSession bool                    `json:"has_unresolved_prior_session,omitempty"`
}

// SnapshotPart parte persistida.
type SnapshotPart struct {
	PartID            string `json:"part_id"`
	Quantity          int    `json:"quantity"`
	AvailableQuantity int    `json:"available_quantity"`
	Name              string `json:"name,omitempty"`
	Code              string `json:"code,omitempty"`
	SupplierID        string `json:"supplier_id,omitempty"`
	SupplierName      string `json:"supplier_name,omitempty"`
	ShelfLocation     string `json:"shelf_location,omitempty"`
}

// IsEmpty el snapshot equivale a la sesión inicial.
func (s Snapshot) IsEmpty() bool {
	return s.From == nil && s.To == nil && len(s.Parts) == 0 && s.PhotoReference == "" &&
		!s.ScanConfirmed && !s.QuantityConfirmed && s.Reason == "" && s.ReasonDetail == "" &&
		s.Notes == "" && s.ReferenceNumber == "" && s.DestinationHint == nil && s.GPS == nil &&
		!s.HasUnresolvedPriorSession && s.CurrentStep <= int(StepLocations)
}

// Snapshot serializa el subconjunto persistible del estado actual.
func (s *Session) Snapshot() Snapshot {
	st := s.st
	snap := Snapshot{
		CurrentStep:               int(st.CurrentStep),
		From:                      st.From,
		To:                        st.To,
		PhotoReference:            st.PhotoReference,
		ScanConfirmed:             st.ScanConfirmed,
		QuantityConfirmed:         st.QuantityConfirmed,
		Reason:                    st.Reason,
		ReasonDetail:              st.ReasonDetail,
		Notes:                     st.Notes,
		ReferenceNumber:           st.ReferenceNumber,
		DestinationHint:           st.DestinationHint,
		GPS:                       st.GPS,
		HasUnresolvedPriorSession: st.HasUnresolvedPriorSession,
	}
	for _, p := range st.Parts {
		snap.Parts = append(snap.Parts, SnapshotPart(p))
	}
	return snap
}

// Restore reconstruye una sesión desde un snapshot pasando por las acciones, de modo
// que duplicados, exceso de partes y cantidades < 1 se normalizan. El paso se recorta
// al primer gate que falle (un paso 6 o 7 guardado vuelve al preview, que no se persiste).
// Si el registro tiene partes, la sesión queda marcada como no resuelta para que
// la próxima apertura ofrezca reanudar o descartar.
func Restore(rules *movement.Table, snap Snapshot) *Session {
	s := New(rules)
	if snap.From != nil {
		s.SetFromLocation(*snap.From)
	}
	if snap.To != nil {
		s.SetToLocation(*snap.To)
	}
	for _, p := range snap.Parts {
		c := entity.PartCandidate{
			PartID:            p.PartID,
			Name:              p.Name,
			Code:              p.Code,
			AvailableQuantity: p.AvailableQuantity,
			SupplierID:        p.SupplierID,
			SupplierName:      p.SupplierName,
			ShelfLocation:     p.ShelfLocation,
		}
		if s.AddPart(c) {
			s.UpdateQuantity(p.PartID, p.Quantity)
		}
	}
	s.SetPhoto(snap.PhotoReference)
	s.SetScanConfirmed(snap.ScanConfirmed)
	s.SetQuantityConfirmed(snap.QuantityConfirmed)
	s.SetReason(snap.Reason)
	if snap.Reason != "" {
		s.SetReasonDetail(snap.ReasonDetail)
	}
	s.SetNotes(snap.Notes)
	s.SetReferenceNumber(snap.ReferenceNumber)
	s.SetDestinationHint(snap.DestinationHint)
	s.SetCoordinate(snap.GPS)
	s.st.HasUnresolvedPriorSession = snap.HasUnresolvedPriorSession || len(s.st.Parts) > 0

	target := Step(snap.CurrentStep)
	if target < StepLocations {
		target = StepLocations
	}
	if target > StepExecute {
		target = StepExecute
	}
	step := s.firstIncomplete(target)
	if step == StepVerification && !s.VerificationRequired() {
		step = StepNotesReason
	}
	s.st.CurrentStep = step
	return s
}

// ErrUndecodableSnapshot el registro persistido no se puede leer; se descarta.
var ErrUndecodableSnapshot = errors.New("snapshot de sesión ilegible")

// MarshalSnapshot codifica el snapshot para el almacenamiento durable.
func MarshalSnapshot(snap Snapshot) ([]byte, error) {
	return json.Marshal(snap)
}

// UnmarshalSnapshot decodifica un registro. Un registro ilegible se reporta como error
// y el llamador lo descarta.
func UnmarshalSnapshot(b []byte) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrUndecodableSnapshot, err)
	}
	return snap, nil
}
