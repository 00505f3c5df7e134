package cache

import (
	"context"

	gocache "github.com/patrickmn/go-cache"

	"github.com/jhoicas/fieldstock-api/internal/domain/repository"
	"github.com/jhoicas/fieldstock-api/internal/domain/wizard"
)

var _ repository.WizardSessionRepository = (*SessionStore)(nil)

// SessionStore registro de sesiones en memoria del proceso. Guarda el snapshot
// serializado para que Load pase por la misma decodificación que la base de datos.
// Los registros no expiran.
type SessionStore struct {
	store *gocache.Cache
}

// NewSessionStore crea un almacén vacío.
func NewSessionStore() *SessionStore {
	return &SessionStore{store: gocache.New(gocache.NoExpiration, 0)}
}

func sessionKey(ownerID string) string { return "wizard:" + ownerID }

// Load devuelve nil, nil si no hay registro.
func (s *SessionStore) Load(_ context.Context, ownerID string) (*wizard.Snapshot, error) {
	raw, found := s.store.Get(sessionKey(ownerID))
	if !found {
		return nil, nil
	}
	snap, err := wizard.UnmarshalSnapshot(raw.([]byte))
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// Save reemplaza el registro del dueño.
func (s *SessionStore) Save(_ context.Context, ownerID string, snap wizard.Snapshot) error {
	raw, err := wizard.MarshalSnapshot(snap)
	if err != nil {
		return err
	}
	s.store.Set(sessionKey(ownerID), raw, gocache.NoExpiration)
	return nil
}

// Delete borra el registro del dueño.
func (s *SessionStore) Delete(_ context.Context, ownerID string) error {
	s.store.Delete(sessionKey(ownerID))
	return nil
}

// SetRaw guarda bytes arbitrarios como registro (registros heredados o corruptos).
func (s *SessionStore) SetRaw(ownerID string, raw []byte) {
	s.store.Set(sessionKey(ownerID), raw, gocache.NoExpiration)
}
