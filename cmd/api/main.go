package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/fieldstock-api/docs"
	"github.com/jhoicas/fieldstock-api/internal/application/inventory"
	"github.com/jhoicas/fieldstock-api/internal/application/wizard"
	"github.com/jhoicas/fieldstock-api/internal/domain/movement"
	"github.com/jhoicas/fieldstock-api/internal/infrastructure/cache"
	"github.com/jhoicas/fieldstock-api/internal/infrastructure/postgres"
	"github.com/jhoicas/fieldstock-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/fieldstock-api/internal/interfaces/http"
	"github.com/jhoicas/fieldstock-api/pkg/config"
	"github.com/jhoicas/fieldstock-api/pkg/logger"
)

// @title                       FieldStock API
// @version                     1.0
// @description                 Movimientos de stock entre bodega, staging, vehículos y trabajos.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.App.Env == "development" {
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	rules := movement.Default()
	stockRepo := postgres.NewStockRepository(pool)
	partRepo := postgres.NewPartRepository(pool)
	sessionRepo := postgres.NewWizardSessionRepository(pool)
	txRunner := postgres.NewTxRunner(pool, cfg.DB.LockTimeout)
	locations := cache.NewLocationDirectory(postgres.NewLocationRepository(pool), cfg.Wizard.LocationCacheTTL)

	engine := inventory.NewEngine(rules, txRunner, stockRepo, partRepo, locations, log)
	catalog := inventory.NewCatalogUseCase(locations, partRepo, cfg.Wizard.SearchLimit)

	photos, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento de fotos")
	}
	if closer, ok := photos.(io.Closer); ok {
		defer closer.Close()
	}

	wizardSvc := wizard.NewService(rules, sessionRepo, engine, catalog, catalog, photos, wizard.Options{
		SearchDebounce: cfg.Wizard.SearchDebounce,
		SearchLimit:    cfg.Wizard.SearchLimit,
	}, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    storage.MaxPhotoBytes + 1<<20,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "FieldStock API",
	}))

	if local, ok := photos.(*storage.LocalUploader); ok {
		app.Static("/uploads", local.Dir())
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Wizard:      wizardSvc,
		Gateway:     engine,
		Rules:       rules,
		Locations:   catalog,
		Parts:       catalog,
		JWTSecret:   cfg.JWT.Secret,
		Log:         log,
		SearchRate:  cfg.HTTP.SearchRatePerSecond,
		SearchBurst: cfg.HTTP.SearchBurst,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
