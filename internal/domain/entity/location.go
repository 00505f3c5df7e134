package entity

import (
	"fmt"
	"time"
)

// LocationType clase de punto que almacena stock. Es un enum cerrado: los valores
// se usan como índice en la tabla de reglas de movimiento.
type LocationType uint8

const (
	LocationWarehouse LocationType = iota // bodega
	LocationStaging                       // zona de preparación (staging)
	LocationVehicle                       // vehículo de técnico
	LocationJob                           // sitio de trabajo del cliente

	// LocationTypeCount número de tipos de ubicación; dimensiona la tabla de reglas.
	LocationTypeCount
)

var locationTypeNames = [LocationTypeCount]string{
	LocationWarehouse: "warehouse",
	LocationStaging:   "staging",
	LocationVehicle:   "vehicle",
	LocationJob:       "job",
}

// LocationTypes devuelve todos los tipos de ubicación en orden canónico.
func LocationTypes() []LocationType {
	return []LocationType{LocationWarehouse, LocationStaging, LocationVehicle, LocationJob}
}

// Valid indica si t es uno de los tipos declarados.
func (t LocationType) Valid() bool { return t < LocationTypeCount }

func (t LocationType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("LocationType(%d)", uint8(t))
	}
	return locationTypeNames[t]
}

// ParseLocationType convierte el nombre textual ("warehouse", "staging", "vehicle", "job").
func ParseLocationType(s string) (LocationType, error) {
	for i, name := range locationTypeNames {
		if name == s {
			return LocationType(i), nil
		}
	}
	return 0, fmt.Errorf("tipo de ubicación desconocido: %q", s)
}

// MarshalText serializa el tipo por nombre (JSON, query params).
func (t LocationType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("tipo de ubicación inválido: %d", uint8(t))
	}
	return []byte(locationTypeNames[t]), nil
}

// UnmarshalText acepta el nombre textual del tipo.
func (t *LocationType) UnmarshalText(b []byte) error {
	v, err := ParseLocationType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// LocationRef identifica una ubicación concreta: tipo + ID dentro del tipo.
type LocationRef struct {
	Type LocationType `json:"type"`
	ID   string       `json:"id"`
}

func (r LocationRef) String() string { return r.Type.String() + ":" + r.ID }

// Location entrada del directorio de ubicaciones (bodegas, staging, vehículos, trabajos).
type Location struct {
	Type      LocationType `json:"location_type"`
	ID        string       `json:"location_id"`
	Label     string       `json:"label"`
	SubLabel  string       `json:"sub_label,omitempty"`
	Active    bool         `json:"-"`
	UpdatedAt time.Time    `json:"-"`
}

// Ref devuelve la referencia tipo+ID de la ubicación.
func (l Location) Ref() LocationRef { return LocationRef{Type: l.Type, ID: l.ID} }

// DestinationHint contexto de destino final cuando el movimiento pasa por staging
// (por ejemplo, el trabajo al que está agrupado el staging).
type DestinationHint struct {
	Type  LocationType `json:"type"`
	ID    string       `json:"id"`
	Label string       `json:"label,omitempty"`
}
