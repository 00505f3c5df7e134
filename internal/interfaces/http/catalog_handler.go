package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fieldstock-api/internal/application/dto"
	"github.com/jhoicas/fieldstock-api/internal/application/wizard"
	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
)

// CatalogHandler directorio de ubicaciones y búsqueda de partes.
type CatalogHandler struct {
	locations wizard.LocationDirectory
	parts     wizard.PartSearcher
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(locations wizard.LocationDirectory, parts wizard.PartSearcher) *CatalogHandler {
	return &CatalogHandler{locations: locations, parts: parts}
}

// ListLocations godoc
// @Summary      Listar ubicaciones
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        type  query  string  false  "filtrar por tipo"
// @Success      200  {object}  dto.ListResponse[entity.Location]
// @Router       /api/locations [get]
func (h *CatalogHandler) ListLocations(c *fiber.Ctx) error {
	list, err := h.locations.ListLocations(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	if t := c.Query("type"); t != "" {
		typ, err := entity.ParseLocationType(t)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		filtered := make([]entity.Location, 0, len(list))
		for _, l := range list {
			if l.Type == typ {
				filtered = append(filtered, l)
			}
		}
		list = filtered
	}
	return c.JSON(dto.NewList(list))
}

// SearchParts godoc
// @Summary      Buscar partes
// @Description  Con location_type y location_id solo devuelve partes con stock en esa ubicación.
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        q              query  string  false  "nombre o código"
// @Param        location_type  query  string  false  "warehouse | staging | vehicle | job"
// @Param        location_id    query  string  false  "ID de la ubicación"
// @Param        limit          query  int     false  "máximo de resultados"
// @Success      200  {object}  dto.ListResponse[entity.PartCandidate]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/parts/search [get]
func (h *CatalogHandler) SearchParts(c *fiber.Ctx) error {
	q := entity.PartQuery{Query: c.Query("q"), Limit: c.QueryInt("limit", 0)}
	locType, locID := strings.TrimSpace(c.Query("location_type")), strings.TrimSpace(c.Query("location_id"))
	if locType != "" || locID != "" {
		typ, err := entity.ParseLocationType(locType)
		if err != nil || locID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "location_type y location_id van juntos"})
		}
		q.Location = &entity.LocationRef{Type: typ, ID: locID}
	}
	items, err := h.parts.SearchParts(c.Context(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewList(items))
}
