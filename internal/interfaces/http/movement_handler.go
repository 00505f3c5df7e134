package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fieldstock-api/internal/application/dto"
	"github.com/jhoicas/fieldstock-api/internal/application/wizard"
	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
	"github.com/jhoicas/fieldstock-api/internal/domain/movement"
)

// MovementHandler endpoints del motor de movimientos: reglas, validación, preview y ejecución directa.
type MovementHandler struct {
	gateway wizard.MovementGateway
	rules   *movement.Table
}

// NewMovementHandler construye el handler.
func NewMovementHandler(gateway wizard.MovementGateway, rules *movement.Table) *MovementHandler {
	return &MovementHandler{gateway: gateway, rules: rules}
}

// Rules godoc
// @Summary      Tabla de reglas de movimiento
// @Description  Con ?from=<tipo> incluye los tipos de destino alcanzables desde ese origen.
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "warehouse | staging | vehicle | job"
// @Success      200  {object}  dto.RulesResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements/rules [get]
func (h *MovementHandler) Rules(c *fiber.Ctx) error {
	rules := h.rules.Rules()
	resp := dto.RulesResponse{Rules: make([]dto.RuleDTO, 0, len(rules))}
	for _, r := range rules {
		resp.Rules = append(resp.Rules, dto.NewRuleDTO(r))
	}
	if from := c.Query("from"); from != "" {
		typ, err := entity.ParseLocationType(from)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		resp.Reachable = []string{}
		for _, t := range h.rules.ReachableFrom(typ) {
			resp.Reachable = append(resp.Reachable, t.String())
		}
	}
	return c.JSON(resp)
}

// Validate godoc
// @Summary      Validación previa (no muta stock)
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovementRequestBody  true  "solicitud de movimiento"
// @Success      200  {object}  entity.PreflightResult
// @Router       /api/movements/validate [post]
func (h *MovementHandler) Validate(c *fiber.Ctx) error {
	var in dto.MovementRequestBody
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	res, err := h.gateway.ValidatePreflight(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// Preview godoc
// @Summary      Proyección antes/después por línea
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovementRequestBody  true  "solicitud de movimiento"
// @Success      200  {object}  entity.Preview
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/movements/preview [post]
func (h *MovementHandler) Preview(c *fiber.Ctx) error {
	var in dto.MovementRequestBody
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	res, err := h.gateway.ComputePreview(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// Execute godoc
// @Summary      Ejecución atómica de la solicitud
// @Description  Todas las líneas se aplican en una sola transacción o ninguna.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovementRequestBody  true  "solicitud de movimiento"
// @Success      201  {object}  entity.ExecutionResult
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/movements/execute [post]
func (h *MovementHandler) Execute(c *fiber.Ctx) error {
	var in dto.MovementRequestBody
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	res, err := h.gateway.Execute(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}
