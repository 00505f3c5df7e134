package wizard_test

import (
	"fmt"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
	"github.com/jhoicas/fieldstock-api/internal/domain/wizard"
)

func TestNew_EstadoInicial(t *testing.T) {
	st := newSession().State()

	assert.Equal(t, wizard.StepLocations, st.CurrentStep)
	assert.Nil(t, st.From)
	assert.Nil(t, st.To)
	assert.Empty(t, st.Parts)
	assert.False(t, st.Visible)
	assert.Equal(t, wizard.ExecutionIdle, st.Execution.Status)
}

func TestSetFromLocation_LimpiaDestinoInalcanzable(t *testing.T) {
	s := newSession()
	s.SetFromLocation(vehicleA)
	s.SetToLocation(jobA)
	require.NotNil(t, s.State().To)

	// job -> job no existe en la tabla
	s.SetFromLocation(jobB)
	assert.Nil(t, s.State().To, "el destino debe limpiarse si deja de ser alcanzable")
	assert.Equal(t, jobB, *s.State().From)
}

func TestSetFromLocation_ConservaDestinoAlcanzable(t *testing.T) {
	s := newSession()
	s.SetFromLocation(vehicleA)
	s.SetToLocation(jobA)

	s.SetFromLocation(warehouseA)
	require.NotNil(t, s.State().To)
	assert.Equal(t, jobA, *s.State().To)
}

func TestAddPart_DuplicadoNoCrece(t *testing.T) {
	s := newSession()
	assert.True(t, s.AddPart(candidate("a", 5)))
	assert.False(t, s.AddPart(candidate("a", 5)))

	parts := s.State().Parts
	require.Len(t, parts, 1)
	assert.Equal(t, 1, parts[0].Quantity, "cantidad por defecto 1")
	assert.Equal(t, 5, parts[0].AvailableQuantity)
}

// Escenario C: con 20 partes, la 21 no entra.
func TestAddPart_RechazaLaParte21(t *testing.T) {
	s := newSession()
	for i := 0; i < wizard.MaxParts; i++ {
		require.True(t, s.AddPart(candidate(fmt.Sprintf("p%02d", i), 3)))
	}
	assert.False(t, s.AddPart(candidate("extra", 3)))
	assert.Len(t, s.State().Parts, wizard.MaxParts)
}

func TestRemovePart(t *testing.T) {
	s := newSession()
	s.AddPart(candidate("a", 5))
	s.AddPart(candidate("b", 5))

	assert.True(t, s.RemovePart("a"))
	assert.False(t, s.RemovePart("a"), "quitar una parte ausente no hace nada")
	parts := s.State().Parts
	require.Len(t, parts, 1)
	assert.Equal(t, "b", parts[0].PartID)

	s.RemovePart("b")
	assert.Empty(t, s.State().Parts)
}

func TestUpdateQuantity_PisoEnUno(t *testing.T) {
	s := newSession()
	s.AddPart(candidate("a", 5))

	for _, v := range []int{0, -1, -1000} {
		s.UpdateQuantity("a", v)
		assert.Equal(t, 1, s.State().Parts[0].Quantity, "valor %d", v)
	}
}

func TestUpdateQuantity_NoRecortaElTope(t *testing.T) {
	s := newSession()
	s.AddPart(candidate("a", 5))

	s.UpdateQuantity("a", 9)
	assert.Equal(t, 9, s.State().Parts[0].Quantity, "el exceso se reporta en el gate, no se corrige")
	assert.False(t, s.CanAdvance(wizard.StepQuantities))
}

func TestCoerceQuantity_EntradasInvalidas(t *testing.T) {
	cases := []struct {
		in   any
		want int
	}{
		{"abc", 1},
		{"", 1},
		{nil, 1},
		{"0", 1},
		{"-4", 1},
		{-3.5, 1},
		{0.4, 1},
		{"7", 7},
		{" 12 ", 12},
		{"3.9", 3},
		{4.0, 4},
		{true, 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, wizard.CoerceQuantity(tc.in), "entrada %#v", tc.in)
	}
}

func TestSetReason_LimpiarMotivoLimpiaDetalle(t *testing.T) {
	s := newSession()
	s.SetReason("damaged")
	s.SetReasonDetail("caja abierta")
	s.SetReason("lost")
	assert.Equal(t, "caja abierta", s.State().ReasonDetail, "cambiar el motivo no limpia el detalle")

	s.SetReason("")
	assert.Empty(t, s.State().ReasonDetail)
}

func TestTotalQuantity_SumaCantidades(t *testing.T) {
	s := newSession()
	assert.Equal(t, 0, s.TotalQuantity())

	s.AddPart(candidate("a", 10))
	s.AddPart(candidate("b", 10))
	s.UpdateQuantity("a", 4)
	s.UpdateQuantity("b", -2)
	assert.Equal(t, 5, s.TotalQuantity())
}

func TestDerivadas_ParActual(t *testing.T) {
	s := newSession()
	_, ok := s.MovementKey()
	assert.False(t, ok)
	_, ok = s.MovementType()
	assert.False(t, ok)
	assert.False(t, s.VerificationRequired())

	s.SetFromLocation(vehicleA)
	s.SetToLocation(jobA)
	key, ok := s.MovementKey()
	require.True(t, ok)
	assert.Equal(t, "vehicle->job", key)
	mt, ok := s.MovementType()
	require.True(t, ok)
	assert.Equal(t, entity.MovementConsume, mt)
	assert.True(t, s.VerificationRequired())
}

func TestBuildRequest_SoloCamposDeEnvio(t *testing.T) {
	s := sessionAt(vehicleA, jobA, 2)
	s.UpdateQuantity("p01", 3)
	s.SetReason("install")
	s.SetNotes("cliente presente")
	s.SetPhoto("photos/a.jpg")
	s.SetQuantityConfirmed(true)
	s.SetCoordinate(&orb.Point{-74.08, 4.6})

	req := s.BuildRequest()
	assert.Equal(t, vehicleA, req.From)
	assert.Equal(t, jobA, req.To)
	assert.Equal(t, []entity.LineItem{
		{PartID: "p00", Quantity: 1, SupplierID: "sup-p00"},
		{PartID: "p01", Quantity: 3, SupplierID: "sup-p01"},
	}, req.Items)
	assert.Equal(t, "install", req.Reason)
	assert.Equal(t, "photos/a.jpg", req.PhotoReference)
	assert.True(t, req.QuantityConfirmed)
	require.NotNil(t, req.GPS)
	assert.Equal(t, 4.6, req.GPS.Lat())
	assert.Equal(t, 4, req.TotalQuantity())
}

func TestState_DevuelveCopia(t *testing.T) {
	s := sessionAt(warehouseA, stagingA, 1)
	st := s.State()
	st.Parts[0].Quantity = 99

	assert.Equal(t, 1, s.State().Parts[0].Quantity, "modificar la copia no altera la sesión")
}

func TestReset_ConPresets(t *testing.T) {
	s := newSession()
	hint := &entity.DestinationHint{Type: entity.LocationJob, ID: "job-42", Label: "Casa Pérez"}
	s.Reset(&wizard.Presets{
		From:            &warehouseA,
		To:              &stagingA,
		Parts:           []entity.PartCandidate{candidate("a", 2), candidate("a", 2), candidate("b", 1)},
		DestinationHint: hint,
	})

	st := s.State()
	assert.Equal(t, warehouseA, *st.From)
	assert.Equal(t, stagingA, *st.To)
	assert.Len(t, st.Parts, 2, "los presets pasan por AddPart y se deduplican")
	assert.Equal(t, "Casa Pérez", st.DestinationHint.Label)
}
