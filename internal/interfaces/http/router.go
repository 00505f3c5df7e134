package http

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/jhoicas/fieldstock-api/internal/application/wizard"
	"github.com/jhoicas/fieldstock-api/internal/domain/movement"
	"github.com/jhoicas/fieldstock-api/pkg/jwt"
	"github.com/jhoicas/fieldstock-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Wizard    *wizard.Service
	Gateway   wizard.MovementGateway
	Rules     *movement.Table
	Locations wizard.LocationDirectory
	Parts     wizard.PartSearcher
	JWTSecret string
	Log       *logger.Logger

	// SearchRate/SearchBurst cuota de búsquedas de partes por usuario.
	SearchRate  float64
	SearchBurst int
}

// Router registra las rutas de la API. Todas requieren Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", RequestLogger(deps.Log), AuthMiddleware(deps.JWTSecret))
	searchLimit := RateLimit(NewUserRateLimiter(rate.Limit(deps.SearchRate), deps.SearchBurst))

	// Catálogo
	catalog := NewCatalogHandler(deps.Locations, deps.Parts)
	api.Get("/locations", catalog.ListLocations)
	api.Get("/parts/search", searchLimit, catalog.SearchParts)

	// Motor de movimientos; la ejecución directa queda para bodega y supervisión
	movements := api.Group("/movements")
	movementHandler := NewMovementHandler(deps.Gateway, deps.Rules)
	movements.Get("/rules", movementHandler.Rules)
	movements.Post("/validate", movementHandler.Validate)
	movements.Post("/preview", movementHandler.Preview)
	movements.Post("/execute", RequireRole(jwt.RoleWarehouse, jwt.RoleSupervisor), movementHandler.Execute)

	// Asistente (una sesión por usuario)
	wiz := api.Group("/wizard")
	wizardHandler := NewWizardHandler(deps.Wizard)
	wiz.Get("/", wizardHandler.Get)
	wiz.Post("/open", wizardHandler.Open)
	wiz.Post("/close", wizardHandler.Close)
	wiz.Post("/resume", wizardHandler.Resume)
	wiz.Post("/discard", wizardHandler.Discard)
	wiz.Put("/locations/from", wizardHandler.SetFrom)
	wiz.Put("/locations/to", wizardHandler.SetTo)
	wiz.Get("/parts/search", searchLimit, wizardHandler.SearchParts)
	wiz.Post("/parts", wizardHandler.AddPart)
	wiz.Delete("/parts/:partId", wizardHandler.RemovePart)
	wiz.Put("/parts/:partId/quantity", wizardHandler.UpdateQuantity)
	wiz.Put("/verification", wizardHandler.SetVerification)
	wiz.Put("/details", wizardHandler.SetDetails)
	wiz.Post("/next", wizardHandler.Next)
	wiz.Post("/back", wizardHandler.Back)
	wiz.Post("/preview", wizardHandler.Preview)
	wiz.Post("/execute", wizardHandler.Execute)
	wiz.Post("/execute/retry", wizardHandler.Retry)
	wiz.Post("/photo", wizardHandler.UploadPhoto)
}
