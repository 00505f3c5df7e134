package wizard

import (
	"context"

	"github.com/jhoicas/fieldstock-api/internal/application/dto"
	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
)

// ListLocations directorio de ubicaciones para el paso 1.
func (s *Service) ListLocations(ctx context.Context) ([]entity.Location, error) {
	return s.locations.ListLocations(ctx)
}

// SearchParts búsqueda de partes del paso 2, filtrada por el origen de la sesión.
// Espera la quietud del debouncer; si llega una búsqueda más nueva del mismo dueño
// esta se descarta (Superseded). Un fallo del buscador se degrada a lista vacía.
func (s *Service) SearchParts(ctx context.Context, owner, query string) (dto.PartSearchResponse, error) {
	empty := dto.PartSearchResponse{Items: []entity.PartCandidate{}}
	token, ok, err := s.debouncer.Wait(ctx, owner)
	if err != nil {
		return empty, err
	}
	if !ok {
		empty.Superseded = true
		return empty, nil
	}

	o, release, err := s.acquire(ctx, owner)
	if err != nil {
		s.debouncer.Settle(owner, token)
		return empty, err
	}
	from := o.session.State().From
	release()

	items, err := s.parts.SearchParts(ctx, entity.PartQuery{Query: query, Location: from, Limit: s.limit})
	if !s.debouncer.Settle(owner, token) {
		empty.Superseded = true
		return empty, nil
	}
	if err != nil {
		s.log.Warn().Err(err).Str("owner", owner).Msg("búsqueda de partes fallida")
		return empty, nil
	}
	if items == nil {
		items = []entity.PartCandidate{}
	}
	return dto.PartSearchResponse{Items: items}, nil
}
