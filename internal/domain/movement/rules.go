package movement

import (
	"fmt"

	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
)

// cell entrada de la tabla; present=false significa par ilegal.
type cell struct {
	present bool
	typ     entity.MovementType
	photo   bool
}

type grid [entity.LocationTypeCount][entity.LocationTypeCount]cell

// Table motor de reglas de movimiento: única fuente de verdad sobre qué pares
// (origen, destino) son legales y qué tipo/verificación implican.
// Es inmutable tras construirse; puede compartirse entre sesiones.
type Table struct {
	cells grid
}

func transfer() cell { return cell{present: true, typ: entity.MovementTransfer} }
func consume() cell  { return cell{present: true, typ: entity.MovementConsume, photo: true} }
func ret(photo bool) cell {
	return cell{present: true, typ: entity.MovementReturn, photo: photo}
}

// defaultGrid tabla operativa. Cualquier movimiento hacia un trabajo es consumo con foto;
// lo que sale de un trabajo es devolución con foto. job→job no existe.
var defaultGrid = grid{
	entity.LocationWarehouse: {
		entity.LocationWarehouse: transfer(),
		entity.LocationStaging:   transfer(),
		entity.LocationVehicle:   transfer(),
		entity.LocationJob:       consume(),
	},
	entity.LocationStaging: {
		entity.LocationWarehouse: ret(false),
		entity.LocationStaging:   transfer(),
		entity.LocationVehicle:   transfer(),
		entity.LocationJob:       consume(),
	},
	entity.LocationVehicle: {
		entity.LocationWarehouse: ret(false),
		entity.LocationStaging:   ret(false),
		entity.LocationVehicle:   transfer(),
		entity.LocationJob:       consume(),
	},
	entity.LocationJob: {
		entity.LocationWarehouse: ret(true),
		entity.LocationStaging:   ret(true),
		entity.LocationVehicle:   ret(true),
	},
}

// Default devuelve la tabla estándar de reglas.
func Default() *Table {
	return &Table{cells: defaultGrid}
}

// NewTable construye una tabla a partir de una lista de reglas (por ejemplo, la publicada
// por el backend). Rechaza tipos inválidos y pares duplicados.
func NewTable(rules []entity.MovementRule) (*Table, error) {
	t := &Table{}
	for _, r := range rules {
		if !r.From.Valid() || !r.To.Valid() {
			return nil, fmt.Errorf("regla con tipo de ubicación inválido: %d->%d", r.From, r.To)
		}
		if !validMovementType(r.Type) {
			return nil, fmt.Errorf("regla %s->%s con tipo de movimiento inválido", r.From, r.To)
		}
		if t.cells[r.From][r.To].present {
			return nil, fmt.Errorf("regla duplicada %s->%s", r.From, r.To)
		}
		t.cells[r.From][r.To] = cell{present: true, typ: r.Type, photo: r.PhotoRequired}
	}
	return t, nil
}

func validMovementType(t entity.MovementType) bool {
	switch t {
	case entity.MovementTransfer, entity.MovementConsume, entity.MovementReturn:
		return true
	}
	return false
}

func (t *Table) at(from, to entity.LocationType) cell {
	if !from.Valid() || !to.Valid() {
		return cell{}
	}
	return t.cells[from][to]
}

// Lookup devuelve la regla del par o false si el par no está en la tabla.
func (t *Table) Lookup(from, to entity.LocationType) (entity.MovementRule, bool) {
	c := t.at(from, to)
	if !c.present {
		return entity.MovementRule{}, false
	}
	return entity.MovementRule{From: from, To: to, Type: c.typ, PhotoRequired: c.photo}, true
}

// MovementType tipo de movimiento del par, o false si es ilegal.
func (t *Table) MovementType(from, to entity.LocationType) (entity.MovementType, bool) {
	c := t.at(from, to)
	return c.typ, c.present
}

// PhotoRequired indica si el par exige verificación con foto; false si el par no existe.
func (t *Table) PhotoRequired(from, to entity.LocationType) bool {
	c := t.at(from, to)
	return c.present && c.photo
}

// ReachableFrom tipos de destino legales desde from, en orden canónico.
func (t *Table) ReachableFrom(from entity.LocationType) []entity.LocationType {
	out := make([]entity.LocationType, 0, entity.LocationTypeCount)
	for _, to := range entity.LocationTypes() {
		if t.at(from, to).present {
			out = append(out, to)
		}
	}
	return out
}

// Rules lista todas las reglas presentes, ordenadas por origen y destino.
func (t *Table) Rules() []entity.MovementRule {
	var out []entity.MovementRule
	for _, from := range entity.LocationTypes() {
		for _, to := range entity.LocationTypes() {
			if r, ok := t.Lookup(from, to); ok {
				out = append(out, r)
			}
		}
	}
	return out
}
