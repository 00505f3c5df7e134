package wizard

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
)

// MaxParts máximo de partes distintas por sesión.
const MaxParts = 20

// Part parte seleccionada en la sesión. Única por PartID.
type Part struct {
	PartID            string `json:"part_id"`
	Quantity          int    `json:"quantity"`
	AvailableQuantity int    `json:"available_quantity"`
	Name              string `json:"name"`
	Code              string `json:"code,omitempty"`
	SupplierID        string `json:"supplier_id,omitempty"`
	SupplierName      string `json:"supplier_name,omitempty"`
	ShelfLocation     string `json:"shelf_location,omitempty"`
}

// QuantityValid 0 < Quantity <= AvailableQuantity.
func (p Part) QuantityValid() bool {
	return p.Quantity > 0 && p.Quantity <= p.AvailableQuantity
}

func partFromCandidate(c entity.PartCandidate) Part {
	return Part{
		PartID:            c.PartID,
		Quantity:          1,
		AvailableQuantity: c.AvailableQuantity,
		Name:              c.Name,
		Code:              c.Code,
		SupplierID:        c.SupplierID,
		SupplierName:      c.SupplierName,
		ShelfLocation:     c.ShelfLocation,
	}
}

// CoerceQuantity interpreta una cantidad llegada como número, texto o JSON.
// Cualquier valor no numérico, cero o negativo se convierte en 1.
func CoerceQuantity(v any) int {
	n := 0
	switch x := v.(type) {
	case int:
		n = x
	case int64:
		if x > math.MaxInt32 {
			n = math.MaxInt32
		} else {
			n = int(x)
		}
	case float64:
		if x >= 1 && !math.IsInf(x, 0) {
			n = int(math.Min(math.Trunc(x), math.MaxInt32))
		}
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return CoerceQuantity(i)
		}
		if f, err := x.Float64(); err == nil {
			return CoerceQuantity(f)
		}
	case string:
		s := strings.TrimSpace(x)
		if i, err := strconv.Atoi(s); err == nil {
			n = i
		} else if f, err := strconv.ParseFloat(s, 64); err == nil {
			return CoerceQuantity(f)
		}
	}
	if n < 1 {
		return 1
	}
	return n
}
