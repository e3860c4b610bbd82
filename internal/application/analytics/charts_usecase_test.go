package analytics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cultivapp/cultivo-api/internal/application/analytics"
	"github.com/cultivapp/cultivo-api/internal/domain/entity"
	"github.com/cultivapp/cultivo-api/internal/infrastructure/memory"
)

type analyticsEnv struct {
	charts    *analytics.ChartsUseCase
	dashboard *analytics.DashboardUseCase
	products  *memory.ProductRepository
	movements *memory.MovementRepository
	stages    *memory.StageRepository
}

func newAnalyticsEnv() *analyticsEnv {
	store := memory.NewStore()
	products := memory.NewProductRepository(store)
	stages := memory.NewStageRepository(store)
	substages := memory.NewSubstageRepository(store)
	locations := memory.NewLocationRepository(store)
	movements := memory.NewMovementRepository(store)
	return &analyticsEnv{
		charts:    analytics.NewChartsUseCase(products, stages, substages, locations, movements),
		dashboard: analytics.NewDashboardUseCase(products, stages, locations, movements),
		products:  products,
		movements: movements,
		stages:    stages,
	}
}

func (e *analyticsEnv) addProduct(t *testing.T, name string, stock, min, price float64, hasStock bool) *entity.Product {
	t.Helper()
	p := &entity.Product{
		Name:         name,
		Unit:         "kg",
		CurrentStock: decimal.NewFromFloat(stock),
		MinStock:     decimal.NewFromFloat(min),
		Price:        decimal.NewFromFloat(price),
		HasStock:     hasStock,
	}
	require.NoError(t, e.products.Create(p))
	return p
}

func (e *analyticsEnv) addMovement(t *testing.T, mType string, date time.Time, productID int64, qty, cost float64) {
	t.Helper()
	require.NoError(t, e.movements.Create(&entity.Movement{
		Type: mType,
		Date: date,
		Items: []entity.MovementItem{
			{ProductID: productID, Quantity: decimal.NewFromFloat(qty), Unit: "kg"},
		},
		Cost: decimal.NewFromFloat(cost),
	}))
}

// Dos usos del mismo mes se suman bajo una sola clave "YYYY-MM"; otro mes
// abre clave aparte y las compras no cuentan como consumo.
func TestMonthlyConsumption_AgrupaPorMes(t *testing.T) {
	env := newAnalyticsEnv()
	p := env.addProduct(t, "Fertilizante", 100, 5, 2, true)

	march1 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	march20 := time.Date(2026, 3, 20, 10, 0, 0, 0, time.UTC)
	april2 := time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)

	env.addMovement(t, entity.MovementTypeUso, march1, p.ID, 3, 6)
	env.addMovement(t, entity.MovementTypeUso, march20, p.ID, 4, 8)
	env.addMovement(t, entity.MovementTypeUso, april2, p.ID, 1, 2)
	env.addMovement(t, entity.MovementTypeCompra, march1, p.ID, 50, 100)

	out, err := env.charts.MonthlyConsumptionByProduct()
	require.NoError(t, err)

	require.Contains(t, out, "2026-03")
	require.Contains(t, out, "2026-04")
	assert.True(t, out["2026-03"]["Fertilizante"].Equal(decimal.NewFromInt(7)),
		"los dos usos de marzo deben sumar 7")
	assert.True(t, out["2026-04"]["Fertilizante"].Equal(decimal.NewFromInt(1)))
}

// El gasto mensual cuenta todos los tipos y valora cantidad × precio vigente.
func TestMonthlyExpense_IncluyeCompras(t *testing.T) {
	env := newAnalyticsEnv()
	p := env.addProduct(t, "Fertilizante", 100, 5, 2, true)

	march := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	env.addMovement(t, entity.MovementTypeUso, march, p.ID, 3, 6)
	env.addMovement(t, entity.MovementTypeCompra, march, p.ID, 5, 10)

	out, err := env.charts.MonthlyExpenseByProduct()
	require.NoError(t, err)
	assert.True(t, out["2026-03"]["Fertilizante"].Equal(decimal.NewFromInt(16)),
		"gasto = (3 + 5) × precio 2")
}

func TestYearlyConsumption_AgrupaPorAnio(t *testing.T) {
	env := newAnalyticsEnv()
	p := env.addProduct(t, "Fertilizante", 100, 5, 2, true)

	env.addMovement(t, entity.MovementTypeUso, time.Date(2025, 12, 30, 0, 0, 0, 0, time.UTC), p.ID, 2, 4)
	env.addMovement(t, entity.MovementTypeUso, time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC), p.ID, 3, 6)

	out, err := env.charts.YearlyConsumptionByProduct()
	require.NoError(t, err)
	assert.True(t, out["2025"]["Fertilizante"].Equal(decimal.NewFromInt(2)))
	assert.True(t, out["2026"]["Fertilizante"].Equal(decimal.NewFromInt(3)))
}

func TestConsumptionByProduct_SoloUso(t *testing.T) {
	env := newAnalyticsEnv()
	p := env.addProduct(t, "Fertilizante", 100, 5, 2, true)
	now := time.Now()

	env.addMovement(t, entity.MovementTypeUso, now, p.ID, 3, 6)
	env.addMovement(t, entity.MovementTypeCompra, now, p.ID, 50, 100)
	env.addMovement(t, entity.MovementTypeTransferencia, now, p.ID, 2, 4)

	out, err := env.charts.ConsumptionByProduct()
	require.NoError(t, err)
	assert.True(t, out["Fertilizante"].Equal(decimal.NewFromInt(3)),
		"solo los movimientos de uso cuentan como consumo")
}

// Los niveles de stock excluyen las variables de sensor.
func TestStockLevels_ExcluyeSensores(t *testing.T) {
	env := newAnalyticsEnv()
	env.addProduct(t, "Fertilizante", 10, 2, 1, true)
	env.addProduct(t, "pH del agua", 6.5, 0, 0, false)

	out, err := env.charts.StockLevels()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Fertilizante", out[0].Name)
}

// El dashboard marca "crítico" con stock cero y "bajo" cuando el stock está
// en o debajo del mínimo.
func TestDashboard_AlertasDeStock(t *testing.T) {
	env := newAnalyticsEnv()
	env.addProduct(t, "Agotado", 0, 2, 1, true)
	env.addProduct(t, "Justo", 2, 2, 1, true)
	env.addProduct(t, "Sano", 50, 2, 1, true)
	env.addProduct(t, "Sensor", 0, 0, 0, false)

	out, err := env.dashboard.Summary()
	require.NoError(t, err)

	require.Len(t, out.LowStockAlerts, 2, "el sensor y el producto sano no alertan")
	statuses := map[string]string{}
	for _, a := range out.LowStockAlerts {
		statuses[a.ProductName] = a.Status
	}
	assert.Equal(t, "crítico", statuses["Agotado"])
	assert.Equal(t, "bajo", statuses["Justo"])
}

func TestDashboard_TotalesYCosto(t *testing.T) {
	env := newAnalyticsEnv()
	p := env.addProduct(t, "Fertilizante", 10, 2, 1, true)
	require.NoError(t, env.stages.Create(&entity.Stage{Name: "Germinación", Status: entity.StatusPending}))

	now := time.Now()
	env.addMovement(t, entity.MovementTypeCompra, now, p.ID, 5, 10)
	env.addMovement(t, entity.MovementTypeUso, now, p.ID, 2, 4)

	out, err := env.dashboard.Summary()
	require.NoError(t, err)
	assert.Equal(t, 1, out.TotalProducts)
	assert.Equal(t, 1, out.TotalStages)
	assert.Equal(t, 2, out.TotalMovements)
	assert.True(t, out.TotalCost.Equal(decimal.NewFromInt(14)))
}
