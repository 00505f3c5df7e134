package wizard_test

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/fieldstock-api/internal/application/wizard"
	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
	"github.com/jhoicas/fieldstock-api/internal/domain/movement"
	domwizard "github.com/jhoicas/fieldstock-api/internal/domain/wizard"
)

var (
	warehouseA = entity.LocationRef{Type: entity.LocationWarehouse, ID: "wh-1"}
	vehicleA   = entity.LocationRef{Type: entity.LocationVehicle, ID: "truck-7"}
	jobA       = entity.LocationRef{Type: entity.LocationJob, ID: "job-42"}
)

const owner = "user-1"

func candidate(id string, available int) entity.PartCandidate {
	return entity.PartCandidate{PartID: id, Name: "Parte " + id, AvailableQuantity: available, SupplierID: "sup-1"}
}

type memStore struct {
	mu      sync.Mutex
	records map[string]domwizard.Snapshot
	loadErr error
	saveErr error
	deletes int
}

func newMemStore() *memStore { return &memStore{records: map[string]domwizard.Snapshot{}} }

func (m *memStore) Load(_ context.Context, ownerID string) (*domwizard.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	snap, ok := m.records[ownerID]
	if !ok {
		return nil, nil
	}
	return &snap, nil
}

func (m *memStore) Save(_ context.Context, ownerID string, snap domwizard.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.records[ownerID] = snap
	return nil
}

func (m *memStore) Delete(_ context.Context, ownerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletes++
	m.loadErr = nil
	delete(m.records, ownerID)
	return nil
}

func (m *memStore) record(ownerID string) (domwizard.Snapshot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	snap, ok := m.records[ownerID]
	return snap, ok
}

type fakeGateway struct {
	mu        sync.Mutex
	previewFn func(entity.MovementRequest) (*entity.Preview, error)
	executeFn func(entity.MovementRequest) (*entity.ExecutionResult, error)
	executed  []entity.MovementRequest
	actors    []string
}

func (g *fakeGateway) ValidatePreflight(context.Context, entity.MovementRequest) (entity.PreflightResult, error) {
	return entity.PreflightResult{Valid: true, Errors: []string{}, Warnings: []string{"aviso"}}, nil
}

func (g *fakeGateway) ComputePreview(_ context.Context, req entity.MovementRequest) (*entity.Preview, error) {
	if g.previewFn != nil {
		return g.previewFn(req)
	}
	return &entity.Preview{TotalQuantity: req.TotalQuantity(), MovementType: entity.MovementTransfer}, nil
}

func (g *fakeGateway) Execute(_ context.Context, actorID string, req entity.MovementRequest) (*entity.ExecutionResult, error) {
	g.mu.Lock()
	g.executed = append(g.executed, req)
	g.actors = append(g.actors, actorID)
	fn := g.executeFn
	g.mu.Unlock()
	if fn != nil {
		return fn(req)
	}
	return &entity.ExecutionResult{Success: true, TransactionID: "tx-1", TotalItems: len(req.Items), TotalQuantity: req.TotalQuantity()}, nil
}

type fakeParts struct {
	mu    sync.Mutex
	last  entity.PartQuery
	items []entity.PartCandidate
	err   error
}

func (f *fakeParts) SearchParts(_ context.Context, q entity.PartQuery) ([]entity.PartCandidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.last = q
	return f.items, f.err
}

type fakeLocations struct{}

func (fakeLocations) ListLocations(context.Context) ([]entity.Location, error) {
	return []entity.Location{{Type: entity.LocationWarehouse, ID: "wh-1", Label: "Bodega central"}}, nil
}

type fakePhotos struct{}

func (fakePhotos) UploadPhoto(_ context.Context, f entity.PhotoUpload) (entity.PhotoRef, error) {
	return entity.PhotoRef{Path: "uploads/20260101-000000-x-" + f.Filename, Filename: f.Filename}, nil
}

type harness struct {
	svc   *wizard.Service
	store *memStore
	gw    *fakeGateway
	parts *fakeParts
}

func newHarness() *harness {
	return newHarnessWith(newMemStore())
}

func newHarnessWith(store *memStore) *harness {
	gw := &fakeGateway{}
	parts := &fakeParts{}
	svc := wizard.NewService(movement.Default(), store, gw, fakeLocations{}, parts, fakePhotos{},
		wizard.Options{SearchDebounce: time.Millisecond, SearchLimit: 5}, nil)
	return &harness{svc: svc, store: store, gw: gw, parts: parts}
}
