package entity

import (
	"io"

	"github.com/paulmach/orb"
	"github.com/shopspring/decimal"
)

// LineItem línea de la solicitud: parte + cantidad (+ proveedor opcional).
type LineItem struct {
	PartID     string `json:"part_id"`
	Quantity   int    `json:"quantity"`
	SupplierID string `json:"supplier_id,omitempty"`
}

// MovementRequest payload canónico que recorre validate/preview/execute.
// No contiene campos exclusivos de la UI (nombres, disponibilidad).
type MovementRequest struct {
	From              LocationRef      `json:"from"`
	To                LocationRef      `json:"to"`
	Items             []LineItem       `json:"items"`
	Reason            string           `json:"reason,omitempty"`
	ReasonDetail      string           `json:"reason_detail,omitempty"`
	Notes             string           `json:"notes,omitempty"`
	ReferenceNumber   string           `json:"reference_number,omitempty"`
	PhotoReference    string           `json:"photo_reference,omitempty"`
	ScanConfirmed     bool             `json:"scan_confirmed,omitempty"`
	QuantityConfirmed bool             `json:"quantity_confirmed,omitempty"`
	GPS               *orb.Point       `json:"gps,omitempty"` // lon, lat
	DestinationHint   *DestinationHint `json:"destination_hint,omitempty"`
}

// TotalQuantity suma de cantidades de las líneas.
func (r MovementRequest) TotalQuantity() int {
	total := 0
	for _, it := range r.Items {
		total += it.Quantity
	}
	return total
}

// PreflightResult opinión no mutante del backend sobre la solicitud.
type PreflightResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// SupplierInfo proveedor asociado a una línea del preview.
type SupplierInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PreviewLine proyección antes/después de una línea.
type PreviewLine struct {
	PartID       string           `json:"part_id"`
	PartName     string           `json:"part_name,omitempty"`
	Quantity     int              `json:"quantity"`
	SourceBefore int              `json:"source_before"`
	SourceAfter  int              `json:"source_after"`
	DestBefore   int              `json:"dest_before"`
	DestAfter    int              `json:"dest_after"`
	Supplier     *SupplierInfo    `json:"supplier_info,omitempty"`
	LineValue    *decimal.Decimal `json:"line_value,omitempty"`
}

// Preview proyección completa calculada por el backend. Se recalcula ante cualquier cambio de la solicitud.
type Preview struct {
	Lines         []PreviewLine    `json:"lines"`
	TotalQuantity int              `json:"total_quantity"`
	TotalValue    *decimal.Decimal `json:"total_value,omitempty"`
	MovementType  MovementType     `json:"movement_type"`
	PhotoRequired bool             `json:"photo_required"`
	Warnings      []string         `json:"warnings"`
}

// MovementReceipt comprobante de una fila de movimiento creada.
type MovementReceipt struct {
	MovementID string `json:"movement_id"`
	PartID     string `json:"part_id"`
	Quantity   int    `json:"quantity"`
}

// ExecutionResult resultado de la ejecución atómica.
type ExecutionResult struct {
	Success       bool              `json:"success"`
	TransactionID string            `json:"transaction_id,omitempty"`
	Movements     []MovementReceipt `json:"movements"`
	TotalItems    int               `json:"total_items"`
	TotalQuantity int               `json:"total_quantity"`
}

// PhotoRef resultado de subir una foto de verificación.
type PhotoRef struct {
	Path     string `json:"path"`
	Filename string `json:"filename"`
}

// PhotoUpload archivo de foto recibido para subir.
type PhotoUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}
