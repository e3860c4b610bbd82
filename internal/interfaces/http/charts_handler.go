package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cultivapp/cultivo-api/internal/application/analytics"
)

// ChartsHandler expone las agregaciones de solo lectura para los gráficos.
// Todas las rutas responden el mapa o la lista tal como la arma el caso de
// uso; los errores se limitan a fallos internos.
type ChartsHandler struct {
	uc *analytics.ChartsUseCase
}

// NewChartsHandler construye el handler.
func NewChartsHandler(uc *analytics.ChartsUseCase) *ChartsHandler {
	return &ChartsHandler{uc: uc}
}

func respond(c *fiber.Ctx, out interface{}, err error) error {
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// ConsumptionByProduct GET /api/graficos/consumo-producto
func (h *ChartsHandler) ConsumptionByProduct(c *fiber.Ctx) error {
	out, err := h.uc.ConsumptionByProduct()
	return respond(c, out, err)
}

// StockLevels GET /api/graficos/stock-productos
func (h *ChartsHandler) StockLevels(c *fiber.Ctx) error {
	out, err := h.uc.StockLevels()
	return respond(c, out, err)
}

// ConsumptionByLocation GET /api/graficos/consumo-locacion
func (h *ChartsHandler) ConsumptionByLocation(c *fiber.Ctx) error {
	out, err := h.uc.ConsumptionByLocation()
	return respond(c, out, err)
}

// ExpensesByStage GET /api/graficos/gastos-etapa
func (h *ChartsHandler) ExpensesByStage(c *fiber.Ctx) error {
	out, err := h.uc.ExpensesByStage()
	return respond(c, out, err)
}

// ExpensesByLocation GET /api/graficos/gastos-locacion
func (h *ChartsHandler) ExpensesByLocation(c *fiber.Ctx) error {
	out, err := h.uc.ExpensesByLocation()
	return respond(c, out, err)
}

// StageTimeComparison GET /api/graficos/tiempo-etapas
func (h *ChartsHandler) StageTimeComparison(c *fiber.Ctx) error {
	out, err := h.uc.StageTimeComparison()
	return respond(c, out, err)
}

// SubstageTimeComparison GET /api/graficos/tiempo-sub-etapas
func (h *ChartsHandler) SubstageTimeComparison(c *fiber.Ctx) error {
	out, err := h.uc.SubstageTimeComparison()
	return respond(c, out, err)
}

// TimeByLocation GET /api/graficos/tiempo-locacion
func (h *ChartsHandler) TimeByLocation(c *fiber.Ctx) error {
	out, err := h.uc.TimeByLocation()
	return respond(c, out, err)
}

// ConsumptionCostBySubstage GET /api/graficos/consumo-sub-etapas
func (h *ChartsHandler) ConsumptionCostBySubstage(c *fiber.Ctx) error {
	out, err := h.uc.ConsumptionCostBySubstage()
	return respond(c, out, err)
}

// ConsumptionByProductBySubstage GET /api/graficos/consumo-producto-subetapa
func (h *ChartsHandler) ConsumptionByProductBySubstage(c *fiber.Ctx) error {
	out, err := h.uc.ConsumptionByProductBySubstage()
	return respond(c, out, err)
}

// ConsumptionCostByStage GET /api/graficos/consumo-etapa
func (h *ChartsHandler) ConsumptionCostByStage(c *fiber.Ctx) error {
	out, err := h.uc.ConsumptionCostByStage()
	return respond(c, out, err)
}

// ExpenseBySubstage GET /api/graficos/gasto-subetapa
func (h *ChartsHandler) ExpenseBySubstage(c *fiber.Ctx) error {
	out, err := h.uc.ExpenseBySubstage()
	return respond(c, out, err)
}

// MonthlyConsumptionByProduct GET /api/graficos/consumo-mensual-producto
func (h *ChartsHandler) MonthlyConsumptionByProduct(c *fiber.Ctx) error {
	out, err := h.uc.MonthlyConsumptionByProduct()
	return respond(c, out, err)
}

// MonthlyExpenseByProduct GET /api/graficos/gasto-mensual-producto
func (h *ChartsHandler) MonthlyExpenseByProduct(c *fiber.Ctx) error {
	out, err := h.uc.MonthlyExpenseByProduct()
	return respond(c, out, err)
}

// YearlyConsumptionByProduct GET /api/graficos/consumo-anual-producto
func (h *ChartsHandler) YearlyConsumptionByProduct(c *fiber.Ctx) error {
	out, err := h.uc.YearlyConsumptionByProduct()
	return respond(c, out, err)
}

// YearlyExpenseByProduct GET /api/graficos/gasto-anual-producto
func (h *ChartsHandler) YearlyExpenseByProduct(c *fiber.Ctx) error {
	out, err := h.uc.YearlyExpenseByProduct()
	return respond(c, out, err)
}

// MonthlyConsumptionByLocation GET /api/graficos/consumo-mensual-locacion
func (h *ChartsHandler) MonthlyConsumptionByLocation(c *fiber.Ctx) error {
	out, err := h.uc.MonthlyConsumptionByLocation()
	return respond(c, out, err)
}

// MonthlyExpenseByLocation GET /api/graficos/gasto-mensual-locacion
func (h *ChartsHandler) MonthlyExpenseByLocation(c *fiber.Ctx) error {
	out, err := h.uc.MonthlyExpenseByLocation()
	return respond(c, out, err)
}

// YearlyConsumptionByLocation GET /api/graficos/consumo-anual-locacion
func (h *ChartsHandler) YearlyConsumptionByLocation(c *fiber.Ctx) error {
	out, err := h.uc.YearlyConsumptionByLocation()
	return respond(c, out, err)
}

// YearlyExpenseByLocation GET /api/graficos/gasto-anual-locacion
func (h *ChartsHandler) YearlyExpenseByLocation(c *fiber.Ctx) error {
	out, err := h.uc.YearlyExpenseByLocation()
	return respond(c, out, err)
}
