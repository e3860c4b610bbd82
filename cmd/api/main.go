package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/cultivapp/cultivo-api/internal/application/analytics"
	"github.com/cultivapp/cultivo-api/internal/application/export"
	"github.com/cultivapp/cultivo-api/internal/application/inventory"
	"github.com/cultivapp/cultivo-api/internal/application/lifecycle"
	"github.com/cultivapp/cultivo-api/internal/application/usecase"
	"github.com/cultivapp/cultivo-api/internal/infrastructure/memory"
	"github.com/cultivapp/cultivo-api/internal/infrastructure/storage"
	httpRouter "github.com/cultivapp/cultivo-api/internal/interfaces/http"
	"github.com/cultivapp/cultivo-api/pkg/config"
	"github.com/cultivapp/cultivo-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	store := memory.NewStore()
	productRepo := memory.NewProductRepository(store)
	locationRepo := memory.NewLocationRepository(store)
	stageRepo := memory.NewStageRepository(store)
	substageRepo := memory.NewSubstageRepository(store)
	movementRepo := memory.NewMovementRepository(store)
	postitRepo := memory.NewPostitRepository(store)
	recipeRepo := memory.NewRecipeRepository(store)
	recipeImageRepo := memory.NewRecipeImageRepository(store)
	responsibleRepo := memory.NewResponsibleRepository(store)

	files, err := storage.NewFileStore(cfg.Uploads.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("almacén de archivos")
	}

	productUC := usecase.NewProductUseCase(productRepo)
	locationUC := usecase.NewLocationUseCase(locationRepo, stageRepo)
	stageUC := lifecycle.NewStageUseCase(stageRepo, substageRepo, locationRepo, movementRepo, productRepo)
	substageUC := lifecycle.NewSubstageUseCase(substageRepo, stageRepo)
	movementUC := inventory.NewMovementUseCase(movementRepo, productRepo, stageRepo, substageRepo, locationRepo)
	postitUC := usecase.NewPostitUseCase(postitRepo)
	recipeUC := usecase.NewRecipeUseCase(recipeRepo, files)
	recipeImageUC := usecase.NewRecipeImageUseCase(recipeImageRepo, files)
	responsibleUC := usecase.NewResponsibleUseCase(responsibleRepo, locationRepo)
	dashboardUC := analytics.NewDashboardUseCase(productRepo, stageRepo, locationRepo, movementRepo)
	chartsUC := analytics.NewChartsUseCase(productRepo, stageRepo, substageRepo, locationRepo, movementRepo)
	exportUC := export.NewExportUseCase(
		productRepo, locationRepo, stageRepo, substageRepo, movementRepo,
		postitRepo, recipeRepo, recipeImageRepo, responsibleRepo,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.Uploads.MaxSizeBytes(),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Cultivo API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:     productUC,
		LocationUC:    locationUC,
		StageUC:       stageUC,
		SubstageUC:    substageUC,
		MovementUC:    movementUC,
		PostitUC:      postitUC,
		RecipeUC:      recipeUC,
		RecipeImageUC: recipeImageUC,
		ResponsibleUC: responsibleUC,
		DashboardUC:   dashboardUC,
		ChartsUC:      chartsUC,
		ExportUC:      exportUC,
		UploadsDir:    cfg.Uploads.Dir,
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
