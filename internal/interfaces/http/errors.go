package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fieldstock-api/internal/application/dto"
	"github.com/jhoicas/fieldstock-api/internal/domain"
)

// errorMapping orden de evaluación: un fallo de ejecución que envuelve un rechazo
// de preflight se reporta como fallo de ejecución.
var errorMapping = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrExecution, fiber.StatusBadGateway, "EXECUTION_FAILED"},
	{domain.ErrPreflight, fiber.StatusUnprocessableEntity, "PREFLIGHT_FAILED"},
	{domain.ErrInvalidTransition, fiber.StatusUnprocessableEntity, "INVALID_TRANSITION"},
	{domain.ErrExecutionInFlight, fiber.StatusConflict, "EXECUTION_IN_FLIGHT"},
	{domain.ErrUnresolvedPriorSession, fiber.StatusConflict, "UNRESOLVED_PRIOR_SESSION"},
	{domain.ErrNoPriorSession, fiber.StatusConflict, "NO_PRIOR_SESSION"},
	{domain.ErrInsufficientStock, fiber.StatusConflict, "INSUFFICIENT_STOCK"},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
}

// errorBody traduce un error de dominio a status HTTP y cuerpo.
func errorBody(err error) (int, dto.ErrorResponse) {
	status, code := fiber.StatusInternalServerError, "INTERNAL"
	for _, m := range errorMapping {
		if errors.Is(err, m.err) {
			status, code = m.status, m.code
			break
		}
	}
	body := dto.ErrorResponse{Code: code, Message: err.Error()}
	var pe *domain.PreflightError
	if errors.As(err, &pe) {
		body.Details = pe.Errors
	}
	return status, body
}

// respondError escribe el error mapeado.
func respondError(c *fiber.Ctx, err error) error {
	status, body := errorBody(err)
	return c.Status(status).JSON(body)
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
