package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fieldstock-api/internal/application/dto"
	"github.com/jhoicas/fieldstock-api/internal/application/wizard"
	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
)

// WizardHandler expone la sesión del asistente de movimientos del usuario autenticado.
type WizardHandler struct {
	svc *wizard.Service
}

// NewWizardHandler construye el handler.
func NewWizardHandler(svc *wizard.Service) *WizardHandler {
	return &WizardHandler{svc: svc}
}

// reply responde con la vista o con el error mapeado más la vista cuando existe.
func reply(c *fiber.Ctx, v dto.WizardView, err error) error {
	if err == nil {
		return c.JSON(v)
	}
	status, body := errorBody(err)
	resp := dto.WizardErrorResponse{ErrorResponse: body}
	if v.Steps != nil {
		resp.Wizard = &v
	}
	return c.Status(status).JSON(resp)
}

// Get godoc
// @Summary      Estado de la sesión del asistente
// @Tags         wizard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.WizardView
// @Router       /api/wizard [get]
func (h *WizardHandler) Get(c *fiber.Ctx) error {
	v, err := h.svc.Get(c.Context(), GetUserID(c))
	return reply(c, v, err)
}

// Open godoc
// @Summary      Abrir el asistente (opcionalmente con presets)
// @Description  Si existe una sesión previa sin terminar queda pendiente de resume/discard.
// @Tags         wizard
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OpenWizardRequest  false  "from, to, parts, destination_hint"
// @Success      200  {object}  dto.WizardView
// @Failure      409  {object}  dto.WizardErrorResponse
// @Router       /api/wizard/open [post]
func (h *WizardHandler) Open(c *fiber.Ctx) error {
	var in dto.OpenWizardRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
	}
	v, err := h.svc.Open(c.Context(), GetUserID(c), in.Presets())
	return reply(c, v, err)
}

// Close godoc
// @Summary      Cerrar el asistente conservando la sesión para reanudar
// @Tags         wizard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.WizardView
// @Router       /api/wizard/close [post]
func (h *WizardHandler) Close(c *fiber.Ctx) error {
	v, err := h.svc.Close(c.Context(), GetUserID(c))
	return reply(c, v, err)
}

// Resume godoc
// @Summary      Reanudar la sesión previa
// @Tags         wizard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.WizardView
// @Failure      409  {object}  dto.WizardErrorResponse
// @Router       /api/wizard/resume [post]
func (h *WizardHandler) Resume(c *fiber.Ctx) error {
	v, err := h.svc.Resume(c.Context(), GetUserID(c))
	return reply(c, v, err)
}

// Discard godoc
// @Summary      Descartar la sesión previa y cerrar
// @Tags         wizard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.WizardView
// @Router       /api/wizard/discard [post]
func (h *WizardHandler) Discard(c *fiber.Ctx) error {
	v, err := h.svc.DiscardAndClose(c.Context(), GetUserID(c))
	return reply(c, v, err)
}

// SetFrom godoc
// @Summary      Elegir ubicación de origen (paso 1)
// @Tags         wizard
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetLocationRequest  true  "type, id"
// @Success      200  {object}  dto.WizardView
// @Failure      422  {object}  dto.WizardErrorResponse
// @Router       /api/wizard/locations/from [put]
func (h *WizardHandler) SetFrom(c *fiber.Ctx) error {
	var in dto.SetLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	v, err := h.svc.SetFrom(c.Context(), GetUserID(c), entity.LocationRef{Type: in.Type, ID: in.ID})
	return reply(c, v, err)
}

// SetTo godoc
// @Summary      Elegir ubicación de destino (paso 1)
// @Tags         wizard
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetLocationRequest  true  "type, id"
// @Success      200  {object}  dto.WizardView
// @Failure      422  {object}  dto.WizardErrorResponse
// @Router       /api/wizard/locations/to [put]
func (h *WizardHandler) SetTo(c *fiber.Ctx) error {
	var in dto.SetLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	v, err := h.svc.SetTo(c.Context(), GetUserID(c), entity.LocationRef{Type: in.Type, ID: in.ID})
	return reply(c, v, err)
}

// AddPart godoc
// @Summary      Agregar una parte (paso 2)
// @Tags         wizard
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  entity.PartCandidate  true  "candidato elegido de la búsqueda"
// @Success      200  {object}  dto.WizardView
// @Router       /api/wizard/parts [post]
func (h *WizardHandler) AddPart(c *fiber.Ctx) error {
	var in entity.PartCandidate
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	v, err := h.svc.AddPart(c.Context(), GetUserID(c), in)
	return reply(c, v, err)
}

// RemovePart godoc
// @Summary      Quitar una parte (paso 2)
// @Tags         wizard
// @Security     Bearer
// @Produce      json
// @Param        partId  path  string  true  "ID de la parte"
// @Success      200  {object}  dto.WizardView
// @Failure      404  {object}  dto.WizardErrorResponse
// @Router       /api/wizard/parts/{partId} [delete]
func (h *WizardHandler) RemovePart(c *fiber.Ctx) error {
	v, err := h.svc.RemovePart(c.Context(), GetUserID(c), c.Params("partId"))
	return reply(c, v, err)
}

// UpdateQuantity godoc
// @Summary      Cambiar cantidad de una parte (paso 3)
// @Description  Acepta número o texto; valores no numéricos o menores a 1 quedan en 1.
// @Tags         wizard
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        partId  path  string                      true  "ID de la parte"
// @Param        body    body  dto.UpdateQuantityRequest  true  "quantity"
// @Success      200  {object}  dto.WizardView
// @Failure      422  {object}  dto.WizardErrorResponse
// @Router       /api/wizard/parts/{partId}/quantity [put]
func (h *WizardHandler) UpdateQuantity(c *fiber.Ctx) error {
	var in dto.UpdateQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	v, err := h.svc.UpdateQuantity(c.Context(), GetUserID(c), c.Params("partId"), in.Quantity)
	return reply(c, v, err)
}

// SetVerification godoc
// @Summary      Datos de verificación (paso 4)
// @Tags         wizard
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VerificationRequest  true  "photo_reference, scan_confirmed, quantity_confirmed"
// @Success      200  {object}  dto.WizardView
// @Router       /api/wizard/verification [put]
func (h *WizardHandler) SetVerification(c *fiber.Ctx) error {
	var in dto.VerificationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	v, err := h.svc.SetVerification(c.Context(), GetUserID(c), in)
	return reply(c, v, err)
}

// SetDetails godoc
// @Summary      Motivo, notas, referencia y GPS (paso 5)
// @Tags         wizard
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DetailsRequest  true  "campos opcionales"
// @Success      200  {object}  dto.WizardView
// @Router       /api/wizard/details [put]
func (h *WizardHandler) SetDetails(c *fiber.Ctx) error {
	var in dto.DetailsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	v, err := h.svc.SetDetails(c.Context(), GetUserID(c), in)
	return reply(c, v, err)
}

// Next godoc
// @Summary      Avanzar al siguiente paso visible
// @Tags         wizard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.WizardView
// @Failure      422  {object}  dto.WizardErrorResponse
// @Router       /api/wizard/next [post]
func (h *WizardHandler) Next(c *fiber.Ctx) error {
	v, err := h.svc.Next(c.Context(), GetUserID(c))
	return reply(c, v, err)
}

// Back godoc
// @Summary      Volver al paso visible anterior
// @Tags         wizard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.WizardView
// @Failure      422  {object}  dto.WizardErrorResponse
// @Router       /api/wizard/back [post]
func (h *WizardHandler) Back(c *fiber.Ctx) error {
	v, err := h.svc.Back(c.Context(), GetUserID(c))
	return reply(c, v, err)
}

// Preview godoc
// @Summary      Calcular el preview de la solicitud actual (paso 6)
// @Tags         wizard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.WizardView
// @Failure      409  {object}  dto.WizardErrorResponse
// @Failure      422  {object}  dto.WizardErrorResponse
// @Router       /api/wizard/preview [post]
func (h *WizardHandler) Preview(c *fiber.Ctx) error {
	v, err := h.svc.RequestPreview(c.Context(), GetUserID(c))
	return reply(c, v, err)
}

// Execute godoc
// @Summary      Ejecutar el movimiento (paso 7, una sola vez por entrada)
// @Tags         wizard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.WizardView
// @Failure      409  {object}  dto.WizardErrorResponse
// @Failure      502  {object}  dto.WizardErrorResponse
// @Router       /api/wizard/execute [post]
func (h *WizardHandler) Execute(c *fiber.Ctx) error {
	v, err := h.svc.Execute(c.Context(), GetUserID(c), GetUserID(c))
	return reply(c, v, err)
}

// Retry godoc
// @Summary      Reintentar la ejecución fallida con la misma solicitud
// @Tags         wizard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.WizardView
// @Failure      409  {object}  dto.WizardErrorResponse
// @Failure      502  {object}  dto.WizardErrorResponse
// @Router       /api/wizard/execute/retry [post]
func (h *WizardHandler) Retry(c *fiber.Ctx) error {
	v, err := h.svc.Retry(c.Context(), GetUserID(c), GetUserID(c))
	return reply(c, v, err)
}

// UploadPhoto godoc
// @Summary      Subir foto de verificación (paso 4)
// @Tags         wizard
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "imagen, máximo 10MB"
// @Success      201  {object}  dto.PhotoUploadResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/wizard/photo [post]
func (h *WizardHandler) UploadPhoto(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo file requerido"})
	}
	f, err := fh.Open()
	if err != nil {
		return respondError(c, err)
	}
	defer f.Close()
	ref, v, err := h.svc.UploadPhoto(c.Context(), GetUserID(c), entity.PhotoUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
	})
	if err != nil && ref.Path == "" {
		return reply(c, v, err)
	}
	resp := dto.PhotoUploadResponse{Photo: ref}
	if v.Steps != nil {
		resp.Wizard = &v
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// SearchParts godoc
// @Summary      Buscar partes disponibles en el origen de la sesión
// @Description  Las búsquedas se agrupan por quietud; una búsqueda reemplazada responde superseded=true.
// @Tags         wizard
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  false  "texto de búsqueda"
// @Success      200  {object}  dto.PartSearchResponse
// @Failure      429  {object}  dto.ErrorResponse
// @Router       /api/wizard/parts/search [get]
func (h *WizardHandler) SearchParts(c *fiber.Ctx) error {
	res, err := h.svc.SearchParts(c.Context(), GetUserID(c), c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}
