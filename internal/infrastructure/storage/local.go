package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/fieldstock-api/internal/domain"
	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
)

// LocalUploader guarda las fotos en un directorio local y las expone bajo /uploads.
type LocalUploader struct {
	dir       string
	urlPrefix string
	now       func() time.Time
}

// NewLocalUploader crea el uploader sobre dir ("./uploads" si está vacío).
func NewLocalUploader(dir string) *LocalUploader {
	if dir == "" {
		dir = "./uploads"
	}
	return &LocalUploader{dir: dir, urlPrefix: "/uploads", now: time.Now}
}

// Dir directorio de destino (para servirlo como estático).
func (u *LocalUploader) Dir() string { return u.dir }

// UploadPhoto escribe la foto en disco. Si el contenido real supera el máximo el
// archivo parcial se borra.
func (u *LocalUploader) UploadPhoto(_ context.Context, file entity.PhotoUpload) (entity.PhotoRef, error) {
	if err := validate(file); err != nil {
		return entity.PhotoRef{}, err
	}
	if err := os.MkdirAll(u.dir, 0o755); err != nil {
		return entity.PhotoRef{}, fmt.Errorf("crear directorio de fotos: %w", err)
	}

	name := objectName(u.now(), uuid.New(), file.Filename)
	dst := filepath.Join(u.dir, name)
	f, err := os.Create(dst)
	if err != nil {
		return entity.PhotoRef{}, fmt.Errorf("crear archivo: %w", err)
	}
	n, err := io.Copy(f, io.LimitReader(file.Body, MaxPhotoBytes+1))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil && n > MaxPhotoBytes {
		err = fmt.Errorf("%w: la foto supera %d MB", domain.ErrInvalidInput, MaxPhotoBytes>>20)
	}
	if err != nil {
		_ = os.Remove(dst)
		return entity.PhotoRef{}, err
	}
	return entity.PhotoRef{Path: path.Join(u.urlPrefix, name), Filename: name}, nil
}
