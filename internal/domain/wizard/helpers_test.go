package wizard_test

import (
	"fmt"

	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
	"github.com/jhoicas/fieldstock-api/internal/domain/movement"
	"github.com/jhoicas/fieldstock-api/internal/domain/wizard"
)

var (
	warehouseA = entity.LocationRef{Type: entity.LocationWarehouse, ID: "wh-1"}
	stagingA   = entity.LocationRef{Type: entity.LocationStaging, ID: "stg-1"}
	vehicleA   = entity.LocationRef{Type: entity.LocationVehicle, ID: "truck-7"}
	vehicleB   = entity.LocationRef{Type: entity.LocationVehicle, ID: "truck-9"}
	jobA       = entity.LocationRef{Type: entity.LocationJob, ID: "job-42"}
	jobB       = entity.LocationRef{Type: entity.LocationJob, ID: "job-43"}
)

func candidate(id string, available int) entity.PartCandidate {
	return entity.PartCandidate{
		PartID:            id,
		Name:              "Parte " + id,
		Code:              "P-" + id,
		AvailableQuantity: available,
		SupplierID:        "sup-" + id,
	}
}

func newSession() *wizard.Session {
	return wizard.New(movement.Default())
}

// sessionAt arma una sesión con origen/destino y n partes (disponible 10 cada una).
func sessionAt(from, to entity.LocationRef, n int) *wizard.Session {
	s := newSession()
	s.SetFromLocation(from)
	s.SetToLocation(to)
	for i := 0; i < n; i++ {
		s.AddPart(candidate(fmt.Sprintf("p%02d", i), 10))
	}
	return s
}
