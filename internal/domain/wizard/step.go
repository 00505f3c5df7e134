package wizard

import "fmt"

// Step etapa del asistente de movimientos (1..7).
type Step int

const (
	StepLocations    Step = iota + 1 // origen y destino
	StepSelectParts                  // selección de partes
	StepQuantities                   // cantidades por parte
	StepVerification                 // foto + reconfirmación (solo si la regla la exige)
	StepNotesReason                  // motivo y notas (opcional)
	StepPreview                      // proyección calculada por el backend
	StepExecute                      // ejecución atómica
)

var stepTitles = map[Step]string{
	StepLocations:    "Ubicaciones",
	StepSelectParts:  "Selección de partes",
	StepQuantities:   "Cantidades",
	StepVerification: "Verificación",
	StepNotesReason:  "Motivo y notas",
	StepPreview:      "Vista previa",
	StepExecute:      "Ejecución",
}

// Valid indica si s está dentro de [1,7].
func (s Step) Valid() bool { return s >= StepLocations && s <= StepExecute }

// Title título del paso para la barra de progreso.
func (s Step) Title() string {
	if t, ok := stepTitles[s]; ok {
		return t
	}
	return fmt.Sprintf("Paso %d", int(s))
}

// StepInfo paso visible con su estado de completitud.
type StepInfo struct {
	Step     Step   `json:"step"`
	Title    string `json:"title"`
	Complete bool   `json:"complete"`
	Current  bool   `json:"current"`
}

// nextStep paso siguiente; salta verificación cuando no se exige.
func nextStep(cur Step, verification bool) Step {
	next := cur + 1
	if next == StepVerification && !verification {
		next = StepNotesReason
	}
	return next
}

// prevStep espejo de nextStep.
func prevStep(cur Step, verification bool) Step {
	prev := cur - 1
	if prev == StepVerification && !verification {
		prev = StepQuantities
	}
	return prev
}
