package wizard

import "github.com/jhoicas/fieldstock-api/internal/domain"

// PendingResume la sesión está visible pero esperando reanudar o descartar.
func (s *Session) PendingResume() bool {
	return s.st.Visible && s.st.HasUnresolvedPriorSession
}

// Open muestra el asistente. Si hay una sesión previa sin resolver con partes, la
// muestra sin tocar ningún campo y devuelve true: el llamador debe invocar Resume o
// Discard. Si no, reinicia con los presets.
func (s *Session) Open(p *Presets) bool {
	if s.st.HasUnresolvedPriorSession && len(s.st.Parts) > 0 {
		s.st.Visible = true
		return true
	}
	s.Reset(p)
	s.st.Visible = true
	return false
}

// Close oculta el asistente. Con partes y sin resultado de ejecución conserva los
// datos y marca la sesión como no resuelta (devuelve true); en otro caso reinicia.
func (s *Session) Close() bool {
	if len(s.st.Parts) > 0 && s.st.Execution.Result == nil {
		s.st.HasUnresolvedPriorSession = true
		s.st.Visible = false
		return true
	}
	s.Reset(nil)
	return false
}

// Resume muestra el asistente y limpia la marca de sesión previa.
func (s *Session) Resume() error {
	if !s.st.HasUnresolvedPriorSession {
		return domain.ErrNoPriorSession
	}
	s.st.Visible = true
	s.st.HasUnresolvedPriorSession = false
	return nil
}

// Discard reinicio total a la sesión vacía (el llamador borra también lo persistido).
func (s *Session) Discard() {
	s.Reset(nil)
}
