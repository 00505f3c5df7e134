package dto

import (
	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
)

// MovementRequestBody body para POST /api/movements/{validate,preview,execute}.
// Es el mismo payload canónico que arma el asistente.
type MovementRequestBody = entity.MovementRequest

// RulesResponse tabla de reglas publicada para que los clientes no mantengan una copia propia.
type RulesResponse struct {
	Rules     []RuleDTO `json:"rules"`
	Reachable []string  `json:"reachable,omitempty"`
}

// RuleDTO regla con su etiqueta legible.
type RuleDTO struct {
	entity.MovementRule
	Key   string `json:"key"`
	Label string `json:"label"`
}

// NewRuleDTO arma el DTO de una regla.
func NewRuleDTO(r entity.MovementRule) RuleDTO {
	return RuleDTO{MovementRule: r, Key: r.From.String() + "->" + r.To.String(), Label: r.Type.Label()}
}
