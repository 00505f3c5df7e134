package entity

import "time"

// StockLevel cantidad disponible de una parte en una ubicación concreta.
type StockLevel struct {
	PartID    string
	Location  LocationRef
	Quantity  int
	UpdatedAt time.Time
}
