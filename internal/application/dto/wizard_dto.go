package dto

import (
	"github.com/paulmach/orb"

	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
	"github.com/jhoicas/fieldstock-api/internal/domain/wizard"
)

// WizardView estado de la sesión más sus consultas derivadas, tal como lo ve el cliente.
type WizardView struct {
	wizard.State
	MovementKey          string                  `json:"movement_key,omitempty"`
	MovementType         string                  `json:"movement_type,omitempty"`
	MovementLabel        string                  `json:"movement_label,omitempty"`
	VerificationRequired bool                    `json:"verification_required"`
	TotalQuantity        int                     `json:"total_quantity"`
	Steps                []wizard.StepInfo       `json:"steps"`
	CanAdvance           bool                    `json:"can_advance"`
	PreviewCurrent       bool                    `json:"preview_current"`
	PendingResume        bool                    `json:"pending_resume"`
	Preflight            *entity.PreflightResult `json:"preflight,omitempty"`
}

// OpenWizardRequest body de POST /api/wizard/open.
type OpenWizardRequest struct {
	From            *entity.LocationRef     `json:"from,omitempty"`
	To              *entity.LocationRef     `json:"to,omitempty"`
	Parts           []entity.PartCandidate  `json:"parts,omitempty"`
	DestinationHint *entity.DestinationHint `json:"destination_hint,omitempty"`
}

// Presets convierte el body en presets de la sesión.
func (r OpenWizardRequest) Presets() *wizard.Presets {
	return &wizard.Presets{From: r.From, To: r.To, Parts: r.Parts, DestinationHint: r.DestinationHint}
}

// SetLocationRequest body de PUT /api/wizard/locations/{from,to}.
type SetLocationRequest struct {
	Type entity.LocationType `json:"type"`
	ID   string              `json:"id"`
}

// UpdateQuantityRequest body de PUT /api/wizard/parts/:partId/quantity.
// Quantity admite número o texto; valores inválidos quedan en 1.
type UpdateQuantityRequest struct {
	Quantity any `json:"quantity"`
}

// VerificationRequest body de PUT /api/wizard/verification. Campos nil no cambian.
type VerificationRequest struct {
	PhotoReference    *string `json:"photo_reference,omitempty"`
	ScanConfirmed     *bool   `json:"scan_confirmed,omitempty"`
	QuantityConfirmed *bool   `json:"quantity_confirmed,omitempty"`
}

// DetailsRequest body de PUT /api/wizard/details. Campos nil no cambian;
// ClearGPS/ClearDestinationHint limpian explícitamente.
type DetailsRequest struct {
	Reason               *string                 `json:"reason,omitempty"`
	ReasonDetail         *string                 `json:"reason_detail,omitempty"`
	Notes                *string                 `json:"notes,omitempty"`
	ReferenceNumber      *string                 `json:"reference_number,omitempty"`
	GPS                  *orb.Point              `json:"gps,omitempty"`
	ClearGPS             bool                    `json:"clear_gps,omitempty"`
	DestinationHint      *entity.DestinationHint `json:"destination_hint,omitempty"`
	ClearDestinationHint bool                    `json:"clear_destination_hint,omitempty"`
}

// PartSearchResponse resultado de GET /api/wizard/parts/search.
// Superseded indica que llegó una búsqueda más nueva y esta se descartó.
type PartSearchResponse struct {
	Items      []entity.PartCandidate `json:"items"`
	Superseded bool                   `json:"superseded,omitempty"`
}

// WizardErrorResponse error de una acción del asistente junto con el estado de la
// sesión (por ejemplo, una ejecución fallida lista para reintentar).
type WizardErrorResponse struct {
	ErrorResponse
	Wizard *WizardView `json:"wizard,omitempty"`
}

// PhotoUploadResponse resultado de POST /api/wizard/photo.
type PhotoUploadResponse struct {
	Photo  entity.PhotoRef `json:"photo"`
	Wizard *WizardView     `json:"wizard,omitempty"`
}
