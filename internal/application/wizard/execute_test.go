package wizard_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fieldstock-api/internal/application/dto"
	"github.com/jhoicas/fieldstock-api/internal/domain"
	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
	domwizard "github.com/jhoicas/fieldstock-api/internal/domain/wizard"
)

func TestRequestPreview_HabilitaElPaso7(t *testing.T) {
	ctx := context.Background()
	h := newHarness()
	reachPreview(t, h)

	_, err := h.svc.Next(ctx, owner)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "sin preview no se avanza")

	v, err := h.svc.RequestPreview(ctx, owner)
	require.NoError(t, err)
	assert.True(t, v.PreviewCurrent)
	assert.True(t, v.CanAdvance)
	require.NotNil(t, v.Preflight)
	assert.Equal(t, []string{"aviso"}, v.Preflight.Warnings)

	v, err = h.svc.Next(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, domwizard.StepExecute, v.CurrentStep)
	assert.Equal(t, domwizard.ExecutionIdle, v.Execution.Status)
}

func TestRequestPreview_FueraDelPaso6(t *testing.T) {
	h := newHarness()
	fillSession(t, h, warehouseA, vehicleA, 1)
	_, err := h.svc.RequestPreview(context.Background(), owner)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestRequestPreview_RespuestaObsoletaSeDescarta(t *testing.T) {
	ctx := context.Background()
	h := newHarness()
	reachPreview(t, h)
	h.gw.previewFn = func(req entity.MovementRequest) (*entity.Preview, error) {
		// El usuario edita mientras el backend calcula.
		_, err := h.svc.UpdateQuantity(ctx, owner, "p0", 3)
		require.NoError(t, err)
		return &entity.Preview{TotalQuantity: req.TotalQuantity()}, nil
	}

	v, err := h.svc.RequestPreview(ctx, owner)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Nil(t, v.Preview)
	assert.False(t, v.CanAdvance)
}

func TestRequestPreview_RechazoDelBackend(t *testing.T) {
	ctx := context.Background()
	h := newHarness()
	reachPreview(t, h)
	h.gw.previewFn = func(entity.MovementRequest) (*entity.Preview, error) {
		return nil, &domain.PreflightError{Errors: []string{"stock insuficiente"}}
	}

	v, err := h.svc.RequestPreview(ctx, owner)
	require.ErrorIs(t, err, domain.ErrPreflight)
	assert.Equal(t, domwizard.StepPreview, v.CurrentStep)
	assert.False(t, v.CanAdvance)
}

func TestRequestPreview_EdicionInvalidaElPreview(t *testing.T) {
	ctx := context.Background()
	h := newHarness()
	reachPreview(t, h)
	_, err := h.svc.RequestPreview(ctx, owner)
	require.NoError(t, err)

	notes := "otra nota"
	v, err := h.svc.SetDetails(ctx, owner, dto.DetailsRequest{Notes: &notes})
	require.NoError(t, err)
	assert.False(t, v.PreviewCurrent)
	assert.Nil(t, v.Preflight)
	_, err = h.svc.Next(ctx, owner)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// reachExecute lleva la sesión al paso 7 con un preview vigente.
func reachExecute(t *testing.T, h *harness) {
	t.Helper()
	reachPreview(t, h)
	_, err := h.svc.RequestPreview(context.Background(), owner)
	require.NoError(t, err)
	_, err = h.svc.Next(context.Background(), owner)
	require.NoError(t, err)
}

func TestExecute_ExitoBorraElRegistro(t *testing.T) {
	ctx := context.Background()
	h := newHarness()
	reachExecute(t, h)
	_, ok := h.store.record(owner)
	require.True(t, ok)

	v, err := h.svc.Execute(ctx, owner, "tech-9")
	require.NoError(t, err)
	assert.Equal(t, domwizard.ExecutionSucceeded, v.Execution.Status)
	require.NotNil(t, v.Execution.Result)
	assert.Equal(t, 2, v.Execution.Result.TotalItems)
	assert.True(t, v.CanAdvance)
	assert.Equal(t, []string{"tech-9"}, h.gw.actors)

	_, ok = h.store.record(owner)
	assert.False(t, ok, "una ejecución asentada no se ofrece para reanudar")

	_, err = h.svc.Execute(ctx, owner, "tech-9")
	assert.ErrorIs(t, err, domain.ErrExecutionInFlight)
	assert.Len(t, h.gw.executed, 1)

	v, err = h.svc.Close(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, v.Parts)
}

func TestExecute_FalloYReintentoConLaMismaSolicitud(t *testing.T) {
	ctx := context.Background()
	h := newHarness()
	reachExecute(t, h)
	calls := 0
	h.gw.executeFn = func(req entity.MovementRequest) (*entity.ExecutionResult, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("timeout del backend")
		}
		return &entity.ExecutionResult{Success: true, TotalItems: len(req.Items)}, nil
	}

	v, err := h.svc.Execute(ctx, owner, "tech-9")
	require.ErrorIs(t, err, domain.ErrExecution)
	assert.Equal(t, domwizard.ExecutionFailed, v.Execution.Status)
	assert.Equal(t, "timeout del backend", v.Execution.Error)

	_, err = h.svc.Execute(ctx, owner, "tech-9")
	assert.ErrorIs(t, err, domain.ErrExecutionInFlight, "tras un fallo se usa reintentar")

	notes := "cambiada después del fallo"
	_, err = h.svc.SetDetails(ctx, owner, dto.DetailsRequest{Notes: &notes})
	require.ErrorIs(t, err, domain.ErrInvalidTransition, "en el paso 7 no se edita")

	v, err = h.svc.Retry(ctx, owner, "tech-9")
	require.NoError(t, err)
	assert.Equal(t, domwizard.ExecutionSucceeded, v.Execution.Status)
	require.Len(t, h.gw.executed, 2)
	assert.Equal(t, h.gw.executed[0], h.gw.executed[1])
	assert.Empty(t, h.gw.executed[1].Notes)
}

func TestExecute_RechazoDePreflightEsErrorDeEjecucion(t *testing.T) {
	h := newHarness()
	reachExecute(t, h)
	h.gw.executeFn = func(entity.MovementRequest) (*entity.ExecutionResult, error) {
		return nil, &domain.PreflightError{Errors: []string{"stock insuficiente"}}
	}
	v, err := h.svc.Execute(context.Background(), owner, "tech-9")
	assert.ErrorIs(t, err, domain.ErrExecution)
	assert.ErrorIs(t, err, domain.ErrPreflight)
	assert.Equal(t, domwizard.ExecutionFailed, v.Execution.Status)
}

func TestExecute_EnvioDuplicadoMientrasEstaEnCurso(t *testing.T) {
	ctx := context.Background()
	h := newHarness()
	reachExecute(t, h)
	started := make(chan struct{})
	unblock := make(chan struct{})
	h.gw.executeFn = func(req entity.MovementRequest) (*entity.ExecutionResult, error) {
		close(started)
		<-unblock
		return &entity.ExecutionResult{Success: true, TotalItems: len(req.Items)}, nil
	}

	var wg sync.WaitGroup
	var firstErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, firstErr = h.svc.Execute(ctx, owner, "tech-9")
	}()
	<-started

	v, err := h.svc.Execute(ctx, owner, "tech-9")
	assert.ErrorIs(t, err, domain.ErrExecutionInFlight)
	assert.Equal(t, domwizard.ExecutionInFlight, v.Execution.Status)

	notes := "x"
	_, err = h.svc.SetDetails(ctx, owner, dto.DetailsRequest{Notes: &notes})
	assert.ErrorIs(t, err, domain.ErrExecutionInFlight)
	_, err = h.svc.Back(ctx, owner)
	assert.ErrorIs(t, err, domain.ErrExecutionInFlight)

	close(unblock)
	wg.Wait()
	require.NoError(t, firstErr)
	v, err = h.svc.Get(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, domwizard.ExecutionSucceeded, v.Execution.Status)
	assert.Len(t, h.gw.executed, 1)
}

func TestExecute_FueraDelPaso7(t *testing.T) {
	h := newHarness()
	reachPreview(t, h)
	_, err := h.svc.Execute(context.Background(), owner, "tech-9")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestExecute_EdicionesEnElPaso7SeRechazan(t *testing.T) {
	ctx := context.Background()
	h := newHarness()
	reachExecute(t, h)

	_, err := h.svc.UpdateQuantity(ctx, owner, "p0", 999)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	_, err = h.svc.SetTo(ctx, owner, jobA)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	_, err = h.svc.RemovePart(ctx, owner, "p1")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	_, _, err = h.svc.UploadPhoto(ctx, owner, entity.PhotoUpload{Filename: "x.jpg", ContentType: "image/jpeg", Size: 3, Body: strings.NewReader("jpg")})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	v, err := h.svc.Execute(ctx, owner, "tech-9")
	require.NoError(t, err)
	assert.Equal(t, domwizard.ExecutionSucceeded, v.Execution.Status)
	require.Len(t, h.gw.executed, 1)
	sent := h.gw.executed[0]
	assert.Equal(t, vehicleA, sent.To)
	for _, it := range sent.Items {
		assert.Equal(t, 1, it.Quantity)
	}
}

func TestExecute_VolverEditarYRepetirElPreview(t *testing.T) {
	ctx := context.Background()
	h := newHarness()
	reachExecute(t, h)

	_, err := h.svc.Back(ctx, owner)
	require.NoError(t, err)
	v, err := h.svc.UpdateQuantity(ctx, owner, "p0", 3)
	require.NoError(t, err)
	assert.False(t, v.PreviewCurrent)
	_, err = h.svc.Next(ctx, owner)
	require.ErrorIs(t, err, domain.ErrInvalidTransition, "el preview quedó obsoleto")

	_, err = h.svc.RequestPreview(ctx, owner)
	require.NoError(t, err)
	_, err = h.svc.Next(ctx, owner)
	require.NoError(t, err)
	_, err = h.svc.Execute(ctx, owner, "tech-9")
	require.NoError(t, err)
	require.Len(t, h.gw.executed, 1)
	assert.Equal(t, 4, h.gw.executed[0].TotalQuantity())
}

func TestExecute_CerrarDuranteLaEjecucionNoDejaSesionPendiente(t *testing.T) {
	ctx := context.Background()
	h := newHarness()
	reachExecute(t, h)
	h.gw.executeFn = func(req entity.MovementRequest) (*entity.ExecutionResult, error) {
		v, err := h.svc.Close(ctx, owner)
		require.NoError(t, err)
		assert.True(t, v.HasUnresolvedPriorSession)
		return &entity.ExecutionResult{Success: true, TransactionID: "tx-9", TotalItems: len(req.Items)}, nil
	}

	v, err := h.svc.Execute(ctx, owner, "tech-9")
	require.NoError(t, err)
	assert.Equal(t, domwizard.StepLocations, v.CurrentStep)
	assert.Empty(t, v.Parts)
	assert.False(t, v.HasUnresolvedPriorSession)
	_, ok := h.store.record(owner)
	assert.False(t, ok, "el movimiento ya quedó asentado")

	v, err = h.svc.Open(ctx, owner, nil)
	require.NoError(t, err)
	assert.False(t, v.PendingResume)
	assert.Empty(t, v.Parts)
	assert.Len(t, h.gw.executed, 1)
}
