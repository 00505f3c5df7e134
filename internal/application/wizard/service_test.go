package wizard_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fieldstock-api/internal/application/dto"
	"github.com/jhoicas/fieldstock-api/internal/domain"
	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
	domwizard "github.com/jhoicas/fieldstock-api/internal/domain/wizard"
)

// fillSession abre el asistente con origen, destino y n partes.
func fillSession(t *testing.T, h *harness, from, to entity.LocationRef, n int) {
	t.Helper()
	ctx := context.Background()
	_, err := h.svc.Open(ctx, owner, nil)
	require.NoError(t, err)
	_, err = h.svc.SetFrom(ctx, owner, from)
	require.NoError(t, err)
	_, err = h.svc.SetTo(ctx, owner, to)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		_, err = h.svc.AddPart(ctx, owner, candidate(fmt.Sprintf("p%d", i), 10))
		require.NoError(t, err)
	}
}

// reachPreview lleva un traslado bodega->vehículo hasta el paso 6.
func reachPreview(t *testing.T, h *harness) {
	t.Helper()
	fillSession(t, h, warehouseA, vehicleA, 2)
	for i := 0; i < 4; i++ {
		_, err := h.svc.Next(context.Background(), owner)
		require.NoError(t, err)
	}
	v, err := h.svc.Get(context.Background(), owner)
	require.NoError(t, err)
	require.Equal(t, domwizard.StepPreview, v.CurrentStep)
}

func TestService_CerrarYReanudarTrasReinicio(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	h := newHarnessWith(store)
	fillSession(t, h, warehouseA, jobA, 3)

	v, err := h.svc.Close(ctx, owner)
	require.NoError(t, err)
	assert.False(t, v.Visible)
	rec, ok := store.record(owner)
	require.True(t, ok)
	assert.True(t, rec.HasUnresolvedPriorSession)
	assert.Len(t, rec.Parts, 3)

	// Un proceso nuevo sobre el mismo almacenamiento.
	h2 := newHarnessWith(store)
	v, err = h2.svc.Open(ctx, owner, &domwizard.Presets{From: &vehicleA})
	require.NoError(t, err)
	assert.True(t, v.PendingResume)
	assert.Equal(t, warehouseA, *v.From, "los presets no pisan la sesión pendiente")
	assert.Len(t, v.Parts, 3)

	notes := "x"
	_, err = h2.svc.SetDetails(ctx, owner, dto.DetailsRequest{Notes: &notes})
	assert.ErrorIs(t, err, domain.ErrUnresolvedPriorSession)

	v, err = h2.svc.Resume(ctx, owner)
	require.NoError(t, err)
	assert.False(t, v.PendingResume)
	assert.True(t, v.Visible)
	assert.Equal(t, "consume", v.MovementType)
	assert.True(t, v.VerificationRequired)
	rec, _ = store.record(owner)
	assert.False(t, rec.HasUnresolvedPriorSession)
}

func TestService_ResumeSinSesionPrevia(t *testing.T) {
	h := newHarness()
	_, err := h.svc.Open(context.Background(), owner, nil)
	require.NoError(t, err)
	_, err = h.svc.Resume(context.Background(), owner)
	assert.ErrorIs(t, err, domain.ErrNoPriorSession)
}

func TestService_DescartarBorraRegistro(t *testing.T) {
	ctx := context.Background()
	h := newHarness()
	fillSession(t, h, warehouseA, vehicleA, 2)
	_, err := h.svc.Close(ctx, owner)
	require.NoError(t, err)
	_, err = h.svc.Open(ctx, owner, nil)
	require.NoError(t, err)

	v, err := h.svc.DiscardAndClose(ctx, owner)
	require.NoError(t, err)
	assert.False(t, v.Visible)
	assert.Empty(t, v.Parts)
	assert.Nil(t, v.From)
	_, ok := h.store.record(owner)
	assert.False(t, ok)
}

func TestService_CerrarSinPartesReinicia(t *testing.T) {
	ctx := context.Background()
	h := newHarness()
	fillSession(t, h, warehouseA, vehicleA, 0)
	_, ok := h.store.record(owner)
	require.True(t, ok, "origen y destino se persisten al editarse")

	v, err := h.svc.Close(ctx, owner)
	require.NoError(t, err)
	assert.Nil(t, v.From)
	_, ok = h.store.record(owner)
	assert.False(t, ok)
}

func TestService_RegistroIlegibleSeDescarta(t *testing.T) {
	store := newMemStore()
	store.loadErr = fmt.Errorf("%w: basura", domwizard.ErrUndecodableSnapshot)
	h := newHarnessWith(store)

	v, err := h.svc.Get(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, domwizard.StepLocations, v.CurrentStep)
	assert.Equal(t, 1, store.deletes)
}

func TestService_MutacionConAsistenteCerrado(t *testing.T) {
	h := newHarness()
	_, err := h.svc.SetFrom(context.Background(), owner, warehouseA)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestService_UbicacionIncompleta(t *testing.T) {
	h := newHarness()
	_, err := h.svc.Open(context.Background(), owner, nil)
	require.NoError(t, err)
	_, err = h.svc.SetTo(context.Background(), owner, entity.LocationRef{Type: entity.LocationVehicle})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestService_SinDueño(t *testing.T) {
	h := newHarness()
	_, err := h.svc.Get(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestService_CantidadCruda(t *testing.T) {
	ctx := context.Background()
	h := newHarness()
	fillSession(t, h, warehouseA, vehicleA, 1)

	v, err := h.svc.UpdateQuantity(ctx, owner, "p0", "7")
	require.NoError(t, err)
	assert.Equal(t, 7, v.Parts[0].Quantity)
	assert.Equal(t, 7, v.TotalQuantity)

	v, err = h.svc.UpdateQuantity(ctx, owner, "p0", "abc")
	require.NoError(t, err)
	assert.Equal(t, 1, v.Parts[0].Quantity)

	_, err = h.svc.UpdateQuantity(ctx, owner, "nope", 2)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = h.svc.RemovePart(ctx, owner, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_PersistenciaBestEffort(t *testing.T) {
	store := newMemStore()
	store.saveErr = fmt.Errorf("db caída")
	h := newHarnessWith(store)

	fillSession(t, h, warehouseA, vehicleA, 1)
	v, err := h.svc.Get(context.Background(), owner)
	require.NoError(t, err)
	assert.Len(t, v.Parts, 1)
}

func TestService_DetallesYVerificacion(t *testing.T) {
	ctx := context.Background()
	h := newHarness()
	fillSession(t, h, warehouseA, jobA, 1)

	reason, detail := "instalación", "equipo nuevo"
	v, err := h.svc.SetDetails(ctx, owner, dto.DetailsRequest{Reason: &reason, ReasonDetail: &detail})
	require.NoError(t, err)
	assert.Equal(t, "equipo nuevo", v.ReasonDetail)

	yes := true
	v, err = h.svc.SetVerification(ctx, owner, dto.VerificationRequest{QuantityConfirmed: &yes})
	require.NoError(t, err)
	assert.True(t, v.QuantityConfirmed)
	assert.Empty(t, v.PhotoReference)

	ref, v, err := h.svc.UploadPhoto(ctx, owner, entity.PhotoUpload{Filename: "caja.jpg", ContentType: "image/jpeg", Body: strings.NewReader("x")})
	require.NoError(t, err)
	assert.Equal(t, "caja.jpg", ref.Filename)
	assert.Equal(t, ref.Path, v.PhotoReference)
}

func TestService_ListLocations(t *testing.T) {
	h := newHarness()
	locs, err := h.svc.ListLocations(context.Background())
	require.NoError(t, err)
	require.Len(t, locs, 1)
}
