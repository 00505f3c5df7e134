// Package cache adaptadores en memoria sobre go-cache: directorio de ubicaciones
// cacheado y almacén de sesiones del asistente sin base de datos.
package cache

import (
	"context"
	"slices"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
	"github.com/jhoicas/fieldstock-api/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationDirectory)(nil)

const allLocationsKey = "locations:all"

// LocationDirectory decorador de LocationRepository: el listado completo se cachea
// durante ttl y Get se resuelve sobre ese listado.
type LocationDirectory struct {
	next  repository.LocationRepository
	store *gocache.Cache
	ttl   time.Duration
}

// NewLocationDirectory envuelve next con una caché de ttl.
func NewLocationDirectory(next repository.LocationRepository, ttl time.Duration) *LocationDirectory {
	return &LocationDirectory{
		next:  next,
		store: gocache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

// List listado de ubicaciones activas. Devuelve una copia.
func (d *LocationDirectory) List(ctx context.Context) ([]entity.Location, error) {
	if cached, found := d.store.Get(allLocationsKey); found {
		return slices.Clone(cached.([]entity.Location)), nil
	}
	list, err := d.next.List(ctx)
	if err != nil {
		return nil, err
	}
	d.store.Set(allLocationsKey, slices.Clone(list), d.ttl)
	return list, nil
}

// Get busca en el listado cacheado; nil, nil si no está.
func (d *LocationDirectory) Get(ctx context.Context, ref entity.LocationRef) (*entity.Location, error) {
	list, err := d.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].Ref() == ref {
			loc := list[i]
			return &loc, nil
		}
	}
	return nil, nil
}

// ListLocations alias usado por el asistente.
func (d *LocationDirectory) ListLocations(ctx context.Context) ([]entity.Location, error) {
	return d.List(ctx)
}

// Invalidate descarta el listado cacheado.
func (d *LocationDirectory) Invalidate() {
	d.store.Delete(allLocationsKey)
}
