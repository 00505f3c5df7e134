package wizard

import (
	"context"
	"sync"
	"time"
)

// DefaultSearchDebounce quietud por defecto antes de lanzar una búsqueda.
const DefaultSearchDebounce = 300 * time.Millisecond

// Debouncer retrasa una operación por clave hasta que pase un intervalo sin llamadas
// nuevas. Cada llamada cancela la pendiente de la misma clave; Settle indica si el
// resultado sigue siendo el más reciente.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	seq     uint64
	pending map[string]pendingCall
}

type pendingCall struct {
	token  uint64
	cancel chan struct{}
}

// NewDebouncer crea un debouncer. delay <= 0 usa DefaultSearchDebounce.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultSearchDebounce
	}
	return &Debouncer{delay: delay, pending: make(map[string]pendingCall)}
}

// Wait registra una llamada para key y espera la quietud. ok=false si otra llamada
// la reemplazó antes de tiempo.
func (d *Debouncer) Wait(ctx context.Context, key string) (token uint64, ok bool, err error) {
	d.mu.Lock()
	d.seq++
	token = d.seq
	if prev, exists := d.pending[key]; exists {
		close(prev.cancel)
	}
	cancel := make(chan struct{})
	d.pending[key] = pendingCall{token: token, cancel: cancel}
	d.mu.Unlock()

	t := time.NewTimer(d.delay)
	defer t.Stop()
	select {
	case <-t.C:
		return token, true, nil
	case <-cancel:
		return token, false, nil
	case <-ctx.Done():
		d.Settle(key, token)
		return token, false, ctx.Err()
	}
}

// Settle cierra la llamada token y devuelve true si sigue siendo la última de key.
func (d *Debouncer) Settle(key string, token uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	p, ok := d.pending[key]
	if !ok || p.token != token {
		return false
	}
	delete(d.pending, key)
	return true
}
