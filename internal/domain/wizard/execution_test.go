package wizard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fieldstock-api/internal/domain"
	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
	"github.com/jhoicas/fieldstock-api/internal/domain/wizard"
)

// sessionAtExecute sesión bodega->vehículo lista en el paso 7.
func sessionAtExecute(t *testing.T) *wizard.Session {
	t.Helper()
	s := sessionAt(warehouseA, vehicleA, 2)
	advanceTo(t, s, wizard.StepPreview)
	s.SetPreview(&entity.Preview{TotalQuantity: 2})
	require.NoError(t, s.Advance())
	require.Equal(t, wizard.StepExecute, s.State().CurrentStep)
	return s
}

func TestBeginExecution_FueraDelPaso7(t *testing.T) {
	s := sessionAt(warehouseA, vehicleA, 1)
	_, _, err := s.BeginExecution()
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBeginExecution_DisparaUnaSolaVez(t *testing.T) {
	s := sessionAtExecute(t)

	req, attempt, err := s.BeginExecution()
	require.NoError(t, err)
	assert.Len(t, req.Items, 2)
	assert.Equal(t, wizard.ExecutionInFlight, s.State().Execution.Status)
	assert.True(t, s.Locked())

	_, _, err = s.BeginExecution()
	assert.ErrorIs(t, err, domain.ErrExecutionInFlight, "un segundo envío no es posible")

	require.True(t, s.SetExecutionResult(attempt, entity.ExecutionResult{Success: true, TotalItems: 2, TotalQuantity: 2}))
	assert.True(t, s.CanAdvance(wizard.StepExecute))
	_, _, err = s.BeginExecution()
	assert.ErrorIs(t, err, domain.ErrExecutionInFlight)
	assert.ErrorIs(t, s.Retreat(), domain.ErrExecutionInFlight, "éxito es terminal")
}

func TestBeginExecution_ExigeLosPasosPrevios(t *testing.T) {
	t.Run("cantidad sobre el disponible", func(t *testing.T) {
		s := sessionAtExecute(t)
		s.UpdateQuantity("p00", 999)
		_, _, err := s.BeginExecution()
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		assert.Equal(t, wizard.ExecutionIdle, s.State().Execution.Status)
	})
	t.Run("destino cambiado sin verificación", func(t *testing.T) {
		s := sessionAtExecute(t)
		s.SetToLocation(jobA)
		_, _, err := s.BeginExecution()
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		assert.Zero(t, s.State().Execution.Attempt)
	})
	t.Run("preview obsoleto", func(t *testing.T) {
		s := sessionAtExecute(t)
		s.SetNotes("cambio posterior al preview")
		_, _, err := s.BeginExecution()
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		assert.False(t, s.PreviewCurrent())
	})
}

func TestRetryExecution_ReenviaLaMismaSolicitud(t *testing.T) {
	s := sessionAtExecute(t)
	sent, attempt, err := s.BeginExecution()
	require.NoError(t, err)

	require.True(t, s.SetExecutionError(attempt, "timeout"))
	st := s.State()
	assert.Equal(t, wizard.ExecutionFailed, st.Execution.Status)
	assert.Equal(t, "timeout", st.Execution.Error)
	assert.False(t, s.Locked())

	// una edición posterior no altera lo que se reintenta
	s.SetNotes("editado tras el fallo")
	retried, attempt2, err := s.RetryExecution()
	require.NoError(t, err)
	assert.Equal(t, sent, retried)
	assert.Greater(t, attempt2, attempt)
	assert.Empty(t, s.State().Execution.Error)
}

func TestSetExecutionResult_IgnoraIntentoViejo(t *testing.T) {
	s := sessionAtExecute(t)
	_, first, _ := s.BeginExecution()
	s.SetExecutionError(first, "boom")
	_, second, _ := s.RetryExecution()

	assert.False(t, s.SetExecutionResult(first, entity.ExecutionResult{Success: true}),
		"la respuesta tardía del primer intento se descarta")
	assert.Equal(t, wizard.ExecutionInFlight, s.State().Execution.Status)
	assert.True(t, s.SetExecutionResult(second, entity.ExecutionResult{Success: true}))
}

func TestRetryExecution_SinFallo(t *testing.T) {
	s := sessionAtExecute(t)
	_, _, err := s.RetryExecution()
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	s.BeginExecution()
	_, _, err = s.RetryExecution()
	assert.ErrorIs(t, err, domain.ErrExecutionInFlight)
}

func TestRetreat_DesdeEjecucionFallidaReiniciaElLatch(t *testing.T) {
	s := sessionAtExecute(t)
	_, attempt, _ := s.BeginExecution()
	s.SetExecutionError(attempt, "boom")

	require.NoError(t, s.Retreat())
	assert.Equal(t, wizard.StepPreview, s.State().CurrentStep)
	assert.Equal(t, wizard.ExecutionIdle, s.State().Execution.Status)

	require.NoError(t, s.Advance())
	_, _, err := s.BeginExecution()
	assert.NoError(t, err, "una nueva entrada al paso 7 rearma el envío")
}
