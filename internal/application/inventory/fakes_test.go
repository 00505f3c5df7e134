package inventory_test

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
	"github.com/jhoicas/fieldstock-api/internal/domain/repository"
)

var (
	warehouse = entity.LocationRef{Type: entity.LocationWarehouse, ID: "wh-1"}
	vehicle   = entity.LocationRef{Type: entity.LocationVehicle, ID: "truck-7"}
	job       = entity.LocationRef{Type: entity.LocationJob, ID: "job-42"}
)

func stockKey(partID string, loc entity.LocationRef) string {
	return partID + "@" + loc.String()
}

// memStock stock en memoria; sirve como repo directo y, clonado, como repo de la tx.
type memStock struct {
	levels  map[string]int
	failOn  string
	locked  []string
	upserts int
}

func newMemStock() *memStock { return &memStock{levels: map[string]int{}} }

func (m *memStock) set(partID string, loc entity.LocationRef, q int) {
	m.levels[stockKey(partID, loc)] = q
}

func (m *memStock) get(partID string, loc entity.LocationRef) int {
	return m.levels[stockKey(partID, loc)]
}

func (m *memStock) clone() *memStock {
	c := newMemStock()
	for k, v := range m.levels {
		c.levels[k] = v
	}
	c.failOn = m.failOn
	return c
}

func (m *memStock) Get(_ context.Context, partID string, loc entity.LocationRef) (*entity.StockLevel, error) {
	q, ok := m.levels[stockKey(partID, loc)]
	if !ok {
		return nil, nil
	}
	return &entity.StockLevel{PartID: partID, Location: loc, Quantity: q}, nil
}

func (m *memStock) GetForUpdate(ctx context.Context, partID string, loc entity.LocationRef) (*entity.StockLevel, error) {
	m.locked = append(m.locked, stockKey(partID, loc))
	return m.Get(ctx, partID, loc)
}

func (m *memStock) Upsert(_ context.Context, s *entity.StockLevel) error {
	if m.failOn != "" && s.PartID == m.failOn {
		return errors.New("fallo de escritura")
	}
	m.upserts++
	m.levels[stockKey(s.PartID, s.Location)] = s.Quantity
	return nil
}

type memMovements struct {
	rows []*entity.Movement
}

func (m *memMovements) Create(_ context.Context, mov *entity.Movement) error {
	m.rows = append(m.rows, mov)
	return nil
}

func (m *memMovements) ListByTransaction(_ context.Context, txID string) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, r := range m.rows {
		if r.TransactionID == txID {
			out = append(out, r)
		}
	}
	return out, nil
}

// fakeTx aplica la función sobre copias y solo las confirma si no hubo error.
type fakeTx struct {
	stock       *memStock
	movs        *memMovements
	lastTxStock *memStock
}

func (f *fakeTx) Run(ctx context.Context, fn func(repository.StockRepository, repository.MovementRepository) error) error {
	txStock := f.stock.clone()
	txMovs := &memMovements{}
	f.lastTxStock = txStock
	if err := fn(txStock, txMovs); err != nil {
		return err
	}
	f.stock.levels = txStock.levels
	f.movs.rows = append(f.movs.rows, txMovs.rows...)
	return nil
}

type memParts struct {
	parts map[string]*entity.Part
	stock *memStock
}

func (m *memParts) GetByID(_ context.Context, id string) (*entity.Part, error) {
	return m.parts[id], nil
}

func (m *memParts) Search(_ context.Context, q entity.PartQuery) ([]entity.PartCandidate, error) {
	var out []entity.PartCandidate
	for _, p := range m.parts {
		if q.Query != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(q.Query)) {
			continue
		}
		c := entity.PartCandidate{PartID: p.ID, Name: p.Name, Code: p.Code}
		if q.Location != nil {
			c.AvailableQuantity = m.stock.get(p.ID, *q.Location)
			if c.AvailableQuantity == 0 {
				continue
			}
		}
		out = append(out, c)
		if len(out) == q.Limit {
			break
		}
	}
	return out, nil
}

type memLocations struct {
	known map[entity.LocationRef]bool
}

func (m *memLocations) List(context.Context) ([]entity.Location, error) {
	var out []entity.Location
	for ref := range m.known {
		out = append(out, entity.Location{Type: ref.Type, ID: ref.ID, Label: ref.String()})
	}
	return out, nil
}

func (m *memLocations) Get(_ context.Context, ref entity.LocationRef) (*entity.Location, error) {
	if !m.known[ref] {
		return nil, nil
	}
	return &entity.Location{Type: ref.Type, ID: ref.ID}, nil
}

func part(id string, cost int64) *entity.Part {
	return &entity.Part{
		ID:           id,
		Name:         "Parte " + id,
		Code:         fmt.Sprintf("P-%s", id),
		UnitCost:     decimal.NewFromInt(cost),
		SupplierID:   "sup-1",
		SupplierName: "Proveedor Uno",
	}
}
