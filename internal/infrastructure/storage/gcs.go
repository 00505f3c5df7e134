package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	gcs "cloud.google.com/go/storage"
	"github.com/google/uuid"

	"github.com/jhoicas/fieldstock-api/internal/domain"
	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
)

// photoPrefix carpeta de las fotos dentro del bucket.
const photoPrefix = "wizard-photos/"

// GCSUploader guarda las fotos en un bucket de Google Cloud Storage.
// Las credenciales salen del entorno (GOOGLE_APPLICATION_CREDENTIALS o la cuenta del servicio).
type GCSUploader struct {
	client *gcs.Client
	bucket string
	now    func() time.Time
}

// NewGCSUploader abre el cliente de GCS.
func NewGCSUploader(ctx context.Context, bucket string) (*GCSUploader, error) {
	if bucket == "" {
		return nil, fmt.Errorf("bucket de GCS no configurado")
	}
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("cliente GCS: %w", err)
	}
	return &GCSUploader{client: client, bucket: bucket, now: time.Now}, nil
}

// Close libera el cliente.
func (u *GCSUploader) Close() error { return u.client.Close() }

// UploadPhoto sube la foto al bucket. Si el contenido supera el máximo la escritura
// se cancela y el objeto no se crea.
func (u *GCSUploader) UploadPhoto(ctx context.Context, file entity.PhotoUpload) (entity.PhotoRef, error) {
	if err := validate(file); err != nil {
		return entity.PhotoRef{}, err
	}
	name := objectName(u.now(), uuid.New(), file.Filename)

	wctx, cancel := context.WithCancel(ctx)
	defer cancel()
	w := u.client.Bucket(u.bucket).Object(photoPrefix + name).NewWriter(wctx)
	w.ContentType = file.ContentType

	n, err := io.Copy(w, io.LimitReader(file.Body, MaxPhotoBytes+1))
	if err == nil && n > MaxPhotoBytes {
		err = fmt.Errorf("%w: la foto supera %d MB", domain.ErrInvalidInput, MaxPhotoBytes>>20)
	}
	if err != nil {
		cancel()
		_ = w.Close()
		return entity.PhotoRef{}, err
	}
	if err := w.Close(); err != nil {
		return entity.PhotoRef{}, fmt.Errorf("subir foto a GCS: %w", err)
	}
	return entity.PhotoRef{
		Path:     fmt.Sprintf("https://storage.googleapis.com/%s/%s%s", u.bucket, photoPrefix, name),
		Filename: name,
	}, nil
}
