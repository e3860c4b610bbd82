package http

import (
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"github.com/cultivapp/cultivo-api/internal/application/analytics"
	"github.com/cultivapp/cultivo-api/internal/application/export"
	"github.com/cultivapp/cultivo-api/internal/application/inventory"
	"github.com/cultivapp/cultivo-api/internal/application/lifecycle"
	"github.com/cultivapp/cultivo-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC     *usecase.ProductUseCase
	LocationUC    *usecase.LocationUseCase
	StageUC       *lifecycle.StageUseCase
	SubstageUC    *lifecycle.SubstageUseCase
	MovementUC    *inventory.MovementUseCase
	PostitUC      *usecase.PostitUseCase
	RecipeUC      *usecase.RecipeUseCase
	RecipeImageUC *usecase.RecipeImageUseCase
	ResponsibleUC *usecase.ResponsibleUseCase
	DashboardUC   *analytics.DashboardUseCase
	ChartsUC      *analytics.ChartsUseCase
	ExportUC      *export.ExportUseCase
	UploadsDir    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Productos
	products := api.Group("/productos")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.Get)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Locaciones
	locations := api.Group("/locaciones")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.Get)
	locations.Post("/", locationHandler.Create)
	locations.Put("/:id", locationHandler.Update)
	locations.Delete("/:id", locationHandler.Delete)

	// Etapas: CRUD + máquina de estados + ciclos
	stages := api.Group("/etapas")
	stageHandler := NewStageHandler(deps.StageUC)
	stages.Get("/", stageHandler.List)
	stages.Post("/", stageHandler.Create)
	stages.Put("/:id", stageHandler.Update)
	stages.Delete("/:id", stageHandler.Delete)
	stages.Post("/:id/iniciar", stageHandler.Start)
	stages.Post("/:id/finalizar", stageHandler.Finish)
	stages.Post("/:id/completar", stageHandler.Complete)
	stages.Post("/:id/reiniciar", stageHandler.Restart)
	stages.Get("/:id/resumen", stageHandler.Summary)

	// Sub-etapas
	substages := api.Group("/sub-etapas")
	substageHandler := NewSubstageHandler(deps.SubstageUC)
	substages.Get("/", substageHandler.List)
	substages.Post("/", substageHandler.Create)
	substages.Put("/:id", substageHandler.Update)
	substages.Delete("/:id", substageHandler.Delete)
	substages.Post("/:id/iniciar", substageHandler.Start)
	substages.Post("/:id/finalizar", substageHandler.Finish)

	// Movimientos de inventario
	movements := api.Group("/movimientos")
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements.Get("/", movementHandler.List)
	movements.Post("/", movementHandler.Create)
	movements.Put("/:id", movementHandler.Update)
	movements.Delete("/:id", movementHandler.Delete)

	// Post-its
	postits := api.Group("/postits")
	postitHandler := NewPostitHandler(deps.PostitUC)
	postits.Get("/", postitHandler.List)
	postits.Post("/", postitHandler.Create)
	postits.Put("/:id", postitHandler.Update)
	postits.Delete("/:id", postitHandler.Delete)

	// Recetas e imágenes. Las rutas de imágenes van antes que las de :id
	// para que "imagenes" no se capture como identificador.
	recipes := api.Group("/recetas")
	recipeHandler := NewRecipeHandler(deps.RecipeUC, deps.RecipeImageUC)
	recipes.Get("/imagenes", recipeHandler.ListImages)
	recipes.Post("/imagenes/upload", recipeHandler.UploadImage)
	recipes.Put("/imagenes/:id", recipeHandler.UpdateImage)
	recipes.Delete("/imagenes/:id", recipeHandler.DeleteImage)
	recipes.Get("/", recipeHandler.List)
	recipes.Post("/upload", recipeHandler.Upload)
	recipes.Get("/:id/download", recipeHandler.Download)
	recipes.Delete("/:id", recipeHandler.Delete)

	// Responsables
	responsibles := api.Group("/responsables")
	responsibleHandler := NewResponsibleHandler(deps.ResponsibleUC)
	responsibles.Get("/", responsibleHandler.List)
	responsibles.Post("/", responsibleHandler.Create)
	responsibles.Put("/:id", responsibleHandler.Update)
	responsibles.Delete("/:id", responsibleHandler.Delete)
	responsibles.Get("/locacion/:id", responsibleHandler.ListByLocation)

	// Dashboard y gráficos
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", dashboardHandler.Get)

	charts := api.Group("/graficos")
	chartsHandler := NewChartsHandler(deps.ChartsUC)
	charts.Get("/consumo-producto", chartsHandler.ConsumptionByProduct)
	charts.Get("/stock-productos", chartsHandler.StockLevels)
	charts.Get("/consumo-locacion", chartsHandler.ConsumptionByLocation)
	charts.Get("/gastos-etapa", chartsHandler.ExpensesByStage)
	charts.Get("/gastos-locacion", chartsHandler.ExpensesByLocation)
	charts.Get("/tiempo-etapas", chartsHandler.StageTimeComparison)
	charts.Get("/tiempo-sub-etapas", chartsHandler.SubstageTimeComparison)
	charts.Get("/tiempo-locacion", chartsHandler.TimeByLocation)
	charts.Get("/consumo-sub-etapas", chartsHandler.ConsumptionCostBySubstage)
	charts.Get("/consumo-producto-subetapa", chartsHandler.ConsumptionByProductBySubstage)
	charts.Get("/consumo-etapa", chartsHandler.ConsumptionCostByStage)
	charts.Get("/gasto-subetapa", chartsHandler.ExpenseBySubstage)
	charts.Get("/consumo-mensual-producto", chartsHandler.MonthlyConsumptionByProduct)
	charts.Get("/gasto-mensual-producto", chartsHandler.MonthlyExpenseByProduct)
	charts.Get("/consumo-anual-producto", chartsHandler.YearlyConsumptionByProduct)
	charts.Get("/gasto-anual-producto", chartsHandler.YearlyExpenseByProduct)
	charts.Get("/consumo-mensual-locacion", chartsHandler.MonthlyConsumptionByLocation)
	charts.Get("/gasto-mensual-locacion", chartsHandler.MonthlyExpenseByLocation)
	charts.Get("/consumo-anual-locacion", chartsHandler.YearlyConsumptionByLocation)
	charts.Get("/gasto-anual-locacion", chartsHandler.YearlyExpenseByLocation)

	// Exportación
	exportHandler := NewExportHandler(deps.ExportUC)
	api.Get("/exportar-excel", exportHandler.Excel)

	// Servido estático de imágenes subidas
	if deps.UploadsDir != "" {
		app.Static("/uploads/images", filepath.Join(deps.UploadsDir, "images"))
	}
}
