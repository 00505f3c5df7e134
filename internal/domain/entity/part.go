package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Part parte del catálogo (repuesto, material). UnitCost alimenta el valor del preview.
type Part struct {
	ID           string
	Name         string
	Code         string
	UnitCost     decimal.Decimal
	SupplierID   string
	SupplierName string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PartQuery parámetros de búsqueda de partes; Location opcional filtra por stock disponible.
type PartQuery struct {
	Query    string
	Location *LocationRef
	Limit    int
}

// PartCandidate resultado de búsqueda con disponibilidad en la ubicación consultada.
type PartCandidate struct {
	PartID            string `json:"part_id"`
	Name              string `json:"name"`
	Code              string `json:"code,omitempty"`
	AvailableQuantity int    `json:"available_quantity"`
	SupplierID        string `json:"supplier_id,omitempty"`
	SupplierName      string `json:"supplier_name,omitempty"`
	ShelfLocation     string `json:"shelf_location,omitempty"`
}
