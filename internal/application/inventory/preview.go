package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fieldstock-api/internal/domain"
	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
)

// ComputePreview proyecta el stock antes/después por línea y el valor del movimiento.
// No muta nada. Si la solicitud no pasa la validación devuelve *domain.PreflightError.
func (e *Engine) ComputePreview(ctx context.Context, req entity.MovementRequest) (*entity.Preview, error) {
	a, err := e.analyze(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(a.errors) > 0 {
		return nil, &domain.PreflightError{Errors: a.errors}
	}

	p := &entity.Preview{
		Lines:         make([]entity.PreviewLine, 0, len(a.lines)),
		MovementType:  a.rule.Type,
		PhotoRequired: a.rule.PhotoRequired,
		Warnings:      nonNil(a.warnings),
	}
	total := decimal.Zero
	for _, ln := range a.lines {
		q := ln.item.Quantity
		value := ln.part.UnitCost.Mul(decimal.NewFromInt(int64(q)))
		total = total.Add(value)
		pl := entity.PreviewLine{
			PartID:       ln.item.PartID,
			PartName:     ln.part.Name,
			Quantity:     q,
			SourceBefore: ln.source,
			SourceAfter:  ln.source - q,
			DestBefore:   ln.dest,
			DestAfter:    ln.dest + q,
			LineValue:    &value,
		}
		pl.Supplier = supplierFor(ln.item, ln.part)
		p.Lines = append(p.Lines, pl)
		p.TotalQuantity += q
	}
	p.TotalValue = &total
	return p, nil
}

// supplierFor proveedor de la línea: el indicado en la solicitud o, en su defecto, el de la parte.
func supplierFor(it entity.LineItem, part *entity.Part) *entity.SupplierInfo {
	id := it.SupplierID
	if id == "" {
		id = part.SupplierID
	}
	if id == "" {
		return nil
	}
	info := &entity.SupplierInfo{ID: id}
	if id == part.SupplierID {
		info.Name = part.SupplierName
	}
	return info
}
