package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fieldstock-api/internal/domain"
	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
	"github.com/jhoicas/fieldstock-api/pkg/config"
)

func TestObjectName(t *testing.T) {
	now := time.Date(2026, 3, 4, 15, 6, 7, 0, time.UTC)
	id := uuid.MustParse("6f1c2b8e-1d2a-4c3b-9e8f-0a1b2c3d4e5f")
	assert.Equal(t, "20260304-150607-6f1c2b8e-1d2a-4c3b-9e8f-0a1b2c3d4e5f-caja_1.jpg", objectName(now, id, "../fotos/caja 1.jpg"))
	assert.Equal(t, "20260304-150607-6f1c2b8e-1d2a-4c3b-9e8f-0a1b2c3d4e5f-photo", objectName(now, id, ""))
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "evil.png", sanitize(`C:\tmp\evil.png`))
	assert.Equal(t, "a_b.jpg", sanitize("a b.jpg"))
}

func TestLocalUploader_GuardaLaFoto(t *testing.T) {
	dir := t.TempDir()
	u := NewLocalUploader(dir)
	u.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	ref, err := u.UploadPhoto(context.Background(), entity.PhotoUpload{
		Filename:    "caja.jpg",
		ContentType: "image/jpeg",
		Size:        4,
		Body:        strings.NewReader("jpeg"),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref.Filename, "20260102-030405-"))
	assert.True(t, strings.HasSuffix(ref.Filename, "-caja.jpg"))
	assert.Equal(t, "/uploads/"+ref.Filename, ref.Path)

	data, err := os.ReadFile(filepath.Join(dir, ref.Filename))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", string(data))
}

func TestLocalUploader_RechazaNoImagen(t *testing.T) {
	u := NewLocalUploader(t.TempDir())
	_, err := u.UploadPhoto(context.Background(), entity.PhotoUpload{
		Filename: "x.pdf", ContentType: "application/pdf", Body: strings.NewReader("%PDF"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLocalUploader_RechazaExcesoReal(t *testing.T) {
	dir := t.TempDir()
	u := NewLocalUploader(dir)
	big := bytes.Repeat([]byte{0xff}, MaxPhotoBytes+10)

	// Tamaño declarado engañoso: el límite se aplica al copiar.
	_, err := u.UploadPhoto(context.Background(), entity.PhotoUpload{
		Filename: "big.png", ContentType: "image/png", Size: 10, Body: bytes.NewReader(big),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "el archivo parcial se borra")
}

func TestNew_Local(t *testing.T) {
	up, err := New(context.Background(), config.StorageConfig{Driver: "local", LocalDir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &LocalUploader{}, up)

	_, err = New(context.Background(), config.StorageConfig{Driver: "s3"})
	assert.Error(t, err)
}
