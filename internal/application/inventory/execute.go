package inventory

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fieldstock-api/internal/domain"
	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
	"github.com/jhoicas/fieldstock-api/internal/domain/repository"
)

func newUUID() string { return uuid.New().String() }

// stockSlot fila de stock (parte, ubicación) que toca una ejecución.
type stockSlot struct {
	partID string
	loc    entity.LocationRef
}

// lockOrder filas de origen y destino de todas las líneas en orden global
// (part_id, ubicación). Dos ejecuciones A->B y B->A bloquean en la misma secuencia.
func lockOrder(lines []line, from, to entity.LocationRef) []stockSlot {
	slots := make([]stockSlot, 0, 2*len(lines))
	for _, ln := range lines {
		slots = append(slots, stockSlot{ln.item.PartID, from}, stockSlot{ln.item.PartID, to})
	}
	slices.SortFunc(slots, func(x, y stockSlot) int {
		if c := cmp.Compare(x.partID, y.partID); c != 0 {
			return c
		}
		return cmp.Compare(x.loc.String(), y.loc.String())
	})
	return slots
}

// Execute valida la solicitud y la aplica en una sola transacción: bloquea las filas
// de origen y destino (SELECT FOR UPDATE), descuenta origen, suma destino y guarda una
// fila de movimiento por línea con el mismo TransactionID. Todo o nada.
// En un consumo la fila de stock del trabajo es su libro de consumo.
func (e *Engine) Execute(ctx context.Context, actorID string, req entity.MovementRequest) (*entity.ExecutionResult, error) {
	a, err := e.analyze(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(a.errors) > 0 {
		return nil, &domain.PreflightError{Errors: a.errors}
	}

	now := e.now()
	txID := e.newID()
	res := &entity.ExecutionResult{
		Success:       true,
		TransactionID: txID,
		TotalItems:    len(a.lines),
	}

	err = e.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		movRepo repository.MovementRepository,
	) error {
		rows := make(map[stockSlot]*entity.StockLevel, 2*len(a.lines))
		for _, slot := range lockOrder(a.lines, req.From, req.To) {
			if _, ok := rows[slot]; ok {
				continue
			}
			lvl, err := stockRepo.GetForUpdate(ctx, slot.partID, slot.loc)
			if err != nil {
				return err
			}
			rows[slot] = lvl
		}
		res.Movements = make([]entity.MovementReceipt, 0, len(a.lines))
		res.TotalQuantity = 0
		for _, ln := range a.lines {
			origin := rows[stockSlot{ln.item.PartID, req.From}]
			dest := rows[stockSlot{ln.item.PartID, req.To}]
			mov, err := e.applyLine(ctx, stockRepo, movRepo, a.rule, req, ln, origin, dest, actorID, txID, now)
			if err != nil {
				return err
			}
			res.Movements = append(res.Movements, entity.MovementReceipt{MovementID: mov.ID, PartID: mov.PartID, Quantity: mov.Quantity})
			res.TotalQuantity += mov.Quantity
		}
		return nil
	})
	if err != nil {
		e.log.Error().Err(err).Str("transaction_id", txID).Str("actor", actorID).Msg("ejecución de movimiento fallida")
		return nil, err
	}

	e.log.Info().Str("transaction_id", txID).Str("actor", actorID).
		Str("movement_type", a.rule.Type.String()).Int("items", res.TotalItems).
		Int("quantity", res.TotalQuantity).Msg("movimiento ejecutado")
	return res, nil
}

// applyLine mueve una línea sobre filas ya bloqueadas. origin o dest pueden ser nil
// si la fila no existe todavía.
func (e *Engine) applyLine(
	ctx context.Context,
	stockRepo repository.StockRepository,
	movRepo repository.MovementRepository,
	rule entity.MovementRule,
	req entity.MovementRequest,
	ln line,
	origin, dest *entity.StockLevel,
	actorID, txID string,
	now time.Time,
) (*entity.Movement, error) {
	q := ln.item.Quantity
	// El stock pudo cambiar desde el preview
	if origin == nil || origin.Quantity < q {
		return nil, domain.ErrInsufficientStock
	}
	if dest == nil {
		dest = &entity.StockLevel{PartID: ln.item.PartID, Location: req.To}
	}
	origin.Quantity -= q
	dest.Quantity += q
	origin.UpdatedAt = now
	dest.UpdatedAt = now
	if err := stockRepo.Upsert(ctx, origin); err != nil {
		return nil, err
	}
	if err := stockRepo.Upsert(ctx, dest); err != nil {
		return nil, err
	}

	supplierID := ln.item.SupplierID
	if supplierID == "" {
		supplierID = ln.part.SupplierID
	}
	mov := &entity.Movement{
		ID:              e.newID(),
		TransactionID:   txID,
		PartID:          ln.item.PartID,
		From:            req.From,
		To:              req.To,
		Type:            rule.Type,
		Quantity:        q,
		UnitCost:        ln.part.UnitCost,
		TotalCost:       ln.part.UnitCost.Mul(decimal.NewFromInt(int64(q))),
		SupplierID:      supplierID,
		Reason:          req.Reason,
		ReasonDetail:    req.ReasonDetail,
		Notes:           req.Notes,
		ReferenceNumber: req.ReferenceNumber,
		PhotoPath:       req.PhotoReference,
		CreatedAt:       now,
		CreatedBy:       actorID,
	}
	if req.GPS != nil {
		pt := *req.GPS
		mov.Coordinate = &pt
	}
	if err := movRepo.Create(ctx, mov); err != nil {
		return nil, err
	}
	return mov, nil
}
