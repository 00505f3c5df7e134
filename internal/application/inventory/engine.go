// Package inventory implementa los colaboradores del asistente del lado del backend:
// validación previa, preview y ejecución atómica de movimientos, más el catálogo
// de ubicaciones y partes.
package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
	"github.com/jhoicas/fieldstock-api/internal/domain/movement"
	"github.com/jhoicas/fieldstock-api/internal/domain/repository"
	"github.com/jhoicas/fieldstock-api/pkg/logger"
)

// Engine motor de movimientos. Las lecturas fuera de transacción (preflight, preview)
// usan los repositorios directos; Execute pasa por el TxRunner.
type Engine struct {
	rules     *movement.Table
	txRunner  TxRunner
	stockRepo repository.StockRepository
	partRepo  repository.PartRepository
	locRepo   repository.LocationRepository
	log       *logger.Logger
	now       func() time.Time
	newID     func() string
}

// NewEngine construye el motor.
func NewEngine(
	rules *movement.Table,
	txRunner TxRunner,
	stockRepo repository.StockRepository,
	partRepo repository.PartRepository,
	locRepo repository.LocationRepository,
	log *logger.Logger,
) *Engine {
	if log == nil {
		log = logger.Nop()
	}
	return &Engine{
		rules:     rules,
		txRunner:  txRunner,
		stockRepo: stockRepo,
		partRepo:  partRepo,
		locRepo:   locRepo,
		log:       log.Component("inventory"),
		now:       time.Now,
		newID:     newUUID,
	}
}

// Rules tabla de reglas que aplica el motor (la misma que se publica a los clientes).
func (e *Engine) Rules() *movement.Table { return e.rules }

// line línea analizada: parte resuelta y stock vigente en origen/destino.
type line struct {
	item   entity.LineItem
	part   *entity.Part
	source int
	dest   int
}

// analysis resultado de evaluar una solicitud sin mutar nada.
type analysis struct {
	rule     entity.MovementRule
	errors   []string
	warnings []string
	lines    []line
}

func (a *analysis) fail(format string, args ...any) {
	a.errors = append(a.errors, fmt.Sprintf(format, args...))
}

func (a *analysis) warn(format string, args ...any) {
	a.warnings = append(a.warnings, fmt.Sprintf(format, args...))
}

// analyze evalúa la solicitud. Los errores de negocio quedan en analysis.errors;
// el error devuelto es solo de infraestructura.
func (e *Engine) analyze(ctx context.Context, req entity.MovementRequest) (*analysis, error) {
	a := &analysis{}

	rule, ok := e.rules.Lookup(req.From.Type, req.To.Type)
	switch {
	case !req.From.Type.Valid() || !req.To.Type.Valid():
		a.fail("tipo de ubicación inválido")
	case req.From == req.To:
		a.fail("origen y destino son la misma ubicación")
	case !ok:
		a.fail("movimiento %s->%s no permitido", req.From.Type, req.To.Type)
	default:
		a.rule = rule
	}
	for _, ref := range []struct {
		name string
		ref  entity.LocationRef
	}{{"origen", req.From}, {"destino", req.To}} {
		if !ref.ref.Type.Valid() || ref.ref.ID == "" {
			a.fail("ubicación de %s no indicada", ref.name)
			continue
		}
		loc, err := e.locRepo.Get(ctx, ref.ref)
		if err != nil {
			return nil, fmt.Errorf("consultar ubicación %s: %w", ref.ref, err)
		}
		if loc == nil {
			a.fail("ubicación de %s %s desconocida", ref.name, ref.ref)
		}
	}

	if len(req.Items) == 0 {
		a.fail("la solicitud no tiene líneas")
	}
	seen := make(map[string]bool, len(req.Items))
	for _, it := range req.Items {
		if seen[it.PartID] {
			a.fail("parte %s repetida", it.PartID)
			continue
		}
		seen[it.PartID] = true
		if it.Quantity < 1 {
			a.fail("cantidad inválida para la parte %s", it.PartID)
		}
		part, err := e.partRepo.GetByID(ctx, it.PartID)
		if err != nil {
			return nil, fmt.Errorf("consultar parte %s: %w", it.PartID, err)
		}
		if part == nil {
			a.fail("parte %s desconocida", it.PartID)
			continue
		}
		ln := line{item: it, part: part}
		if ln.source, err = e.quantityAt(ctx, it.PartID, req.From); err != nil {
			return nil, err
		}
		if ln.dest, err = e.quantityAt(ctx, it.PartID, req.To); err != nil {
			return nil, err
		}
		if it.Quantity > ln.source {
			a.fail("stock insuficiente de %s en origen: disponible %d, solicitado %d", part.Name, ln.source, it.Quantity)
		} else if it.Quantity == ln.source {
			a.warn("el origen queda sin stock de %s", part.Name)
		}
		a.lines = append(a.lines, ln)
	}

	if a.rule.PhotoRequired {
		if req.PhotoReference == "" {
			a.fail("el movimiento exige foto de verificación")
		}
		if !req.QuantityConfirmed {
			a.fail("el movimiento exige reconfirmar las cantidades")
		}
	}
	if a.rule.Type == entity.MovementConsume && req.Reason == "" {
		a.warn("consumo sin motivo")
	}
	return a, nil
}

func (e *Engine) quantityAt(ctx context.Context, partID string, ref entity.LocationRef) (int, error) {
	if !ref.Type.Valid() || ref.ID == "" {
		return 0, nil
	}
	st, err := e.stockRepo.Get(ctx, partID, ref)
	if err != nil {
		return 0, fmt.Errorf("consultar stock %s en %s: %w", partID, ref, err)
	}
	if st == nil {
		return 0, nil
	}
	return st.Quantity, nil
}

// ValidatePreflight opinión no mutante sobre la solicitud. No bloquea al asistente.
func (e *Engine) ValidatePreflight(ctx context.Context, req entity.MovementRequest) (entity.PreflightResult, error) {
	a, err := e.analyze(ctx, req)
	if err != nil {
		return entity.PreflightResult{}, err
	}
	return entity.PreflightResult{
		Valid:    len(a.errors) == 0,
		Errors:   nonNil(a.errors),
		Warnings: nonNil(a.warnings),
	}, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
