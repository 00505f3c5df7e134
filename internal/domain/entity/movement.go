package entity

import (
	"fmt"
	"time"

	"github.com/paulmach/orb"
	"github.com/shopspring/decimal"
)

// MovementType clase de movimiento implicada por el par origen/destino.
type MovementType uint8

const (
	MovementTransfer MovementType = iota + 1 // traslado entre ubicaciones que conservan stock
	MovementConsume                          // consumo en sitio de trabajo
	MovementReturn                           // devolución hacia bodega/staging/vehículo
)

var movementTypeNames = map[MovementType]string{
	MovementTransfer: "transfer",
	MovementConsume:  "consume",
	MovementReturn:   "return",
}

var movementTypeLabels = map[MovementType]string{
	MovementTransfer: "Traslado",
	MovementConsume:  "Consumo",
	MovementReturn:   "Devolución",
}

func (t MovementType) String() string {
	if s, ok := movementTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("MovementType(%d)", uint8(t))
}

// Label etiqueta legible para la UI.
func (t MovementType) Label() string { return movementTypeLabels[t] }

// MarshalText serializa por nombre.
func (t MovementType) MarshalText() ([]byte, error) {
	s, ok := movementTypeNames[t]
	if !ok {
		return nil, fmt.Errorf("tipo de movimiento inválido: %d", uint8(t))
	}
	return []byte(s), nil
}

// UnmarshalText acepta "transfer", "consume" o "return".
func (t *MovementType) UnmarshalText(b []byte) error {
	for k, v := range movementTypeNames {
		if v == string(b) {
			*t = k
			return nil
		}
	}
	return fmt.Errorf("tipo de movimiento desconocido: %q", string(b))
}

// MovementRule regla para un par ordenado (origen, destino).
type MovementRule struct {
	From          LocationType `json:"from"`
	To            LocationType `json:"to"`
	Type          MovementType `json:"movement_type"`
	PhotoRequired bool         `json:"photo_required"`
}

// Movement registro persistido de un movimiento ejecutado (una fila por parte).
// Las filas de una misma ejecución comparten TransactionID.
type Movement struct {
	ID              string
	TransactionID   string
	PartID          string
	From            LocationRef
	To              LocationRef
	Type            MovementType
	Quantity        int
	UnitCost        decimal.Decimal
	TotalCost       decimal.Decimal
	SupplierID      string
	Reason          string
	ReasonDetail    string
	Notes           string
	ReferenceNumber string
	PhotoPath       string
	Coordinate      *orb.Point // lon, lat
	CreatedAt       time.Time
	CreatedBy       string // UserID
}
