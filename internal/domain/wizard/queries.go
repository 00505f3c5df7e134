package wizard

import "github.com/jhoicas/fieldstock-api/internal/domain/entity"

// Consultas derivadas: se recalculan en cada lectura, nunca se almacenan.

// MovementKey "origen->destino" por tipo, o false si falta alguno.
func (s *Session) MovementKey() (string, bool) {
	if s.st.From == nil || s.st.To == nil {
		return "", false
	}
	return s.st.From.Type.String() + "->" + s.st.To.Type.String(), true
}

// MovementType tipo de movimiento del par actual según la tabla.
func (s *Session) MovementType() (entity.MovementType, bool) {
	if s.st.From == nil || s.st.To == nil {
		return 0, false
	}
	return s.rules.MovementType(s.st.From.Type, s.st.To.Type)
}

// VerificationRequired la regla del par actual exige foto + reconfirmación.
func (s *Session) VerificationRequired() bool {
	if s.st.From == nil || s.st.To == nil {
		return false
	}
	return s.rules.PhotoRequired(s.st.From.Type, s.st.To.Type)
}

// TotalQuantity suma de cantidades de todas las partes.
func (s *Session) TotalQuantity() int {
	total := 0
	for _, p := range s.st.Parts {
		total += p.Quantity
	}
	return total
}

// BuildRequest arma la solicitud canónica para validate/preview/execute.
// Solo incluye líneas {part_id, quantity, supplier_id}; nada de la UI.
func (s *Session) BuildRequest() entity.MovementRequest {
	req := entity.MovementRequest{
		Reason:            s.st.Reason,
		ReasonDetail:      s.st.ReasonDetail,
		Notes:             s.st.Notes,
		ReferenceNumber:   s.st.ReferenceNumber,
		PhotoReference:    s.st.PhotoReference,
		ScanConfirmed:     s.st.ScanConfirmed,
		QuantityConfirmed: s.st.QuantityConfirmed,
	}
	if s.st.From != nil {
		req.From = *s.st.From
	}
	if s.st.To != nil {
		req.To = *s.st.To
	}
	if s.st.GPS != nil {
		gps := *s.st.GPS
		req.GPS = &gps
	}
	if s.st.DestinationHint != nil {
		hint := *s.st.DestinationHint
		req.DestinationHint = &hint
	}
	req.Items = make([]entity.LineItem, 0, len(s.st.Parts))
	for _, p := range s.st.Parts {
		req.Items = append(req.Items, entity.LineItem{
			PartID:     p.PartID,
			Quantity:   p.Quantity,
			SupplierID: p.SupplierID,
		})
	}
	return req
}
