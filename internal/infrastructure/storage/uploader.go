// Package storage guarda las fotos de verificación del asistente en disco local
// o en Google Cloud Storage.
package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/fieldstock-api/internal/domain"
	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
	"github.com/jhoicas/fieldstock-api/pkg/config"
)

// MaxPhotoBytes tamaño máximo de una foto (10 MB).
const MaxPhotoBytes = 10 << 20

// Uploader destino de las fotos.
type Uploader interface {
	UploadPhoto(ctx context.Context, file entity.PhotoUpload) (entity.PhotoRef, error)
}

// New construye el uploader indicado por la configuración.
func New(ctx context.Context, cfg config.StorageConfig) (Uploader, error) {
	switch cfg.Driver {
	case "gcs":
		return NewGCSUploader(ctx, cfg.GCSBucket)
	case "local", "":
		return NewLocalUploader(cfg.LocalDir), nil
	}
	return nil, fmt.Errorf("driver de almacenamiento desconocido: %q", cfg.Driver)
}

// validate tipo y tamaño declarados. El tamaño real se vuelve a controlar al copiar.
func validate(file entity.PhotoUpload) error {
	if file.Body == nil {
		return fmt.Errorf("%w: archivo vacío", domain.ErrInvalidInput)
	}
	if !strings.HasPrefix(strings.ToLower(file.ContentType), "image/") {
		return fmt.Errorf("%w: la foto debe ser una imagen (%q)", domain.ErrInvalidInput, file.ContentType)
	}
	if file.Size > MaxPhotoBytes {
		return fmt.Errorf("%w: la foto supera %d MB", domain.ErrInvalidInput, MaxPhotoBytes>>20)
	}
	return nil
}

// objectName nombre único: <yyyymmdd-hhmmss>-<uuid>-<nombre original saneado>.
func objectName(now time.Time, id uuid.UUID, original string) string {
	return fmt.Sprintf("%s-%s-%s", now.Format("20060102-150405"), id, sanitize(original))
}

func sanitize(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	if base == "." || base == "/" || base == "" {
		return "photo"
	}
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
