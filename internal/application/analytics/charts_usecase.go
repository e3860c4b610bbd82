package analytics

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cultivapp/cultivo-api/internal/application/dto"
	"github.com/cultivapp/cultivo-api/internal/domain/entity"
	"github.com/cultivapp/cultivo-api/internal/domain/repository"
)

// Fallback cuando un movimiento no tiene locación registrada. Las series
// mensuales y anuales usan una etiqueta distinta que la de consumo directo.
const (
	unspecifiedLocation = "Sin especificar"
	noLocation          = "Sin locación"
)

// ChartsUseCase agregaciones de solo lectura para los gráficos del panel.
// Las claves son los nombres actuales de las entidades al momento de la
// consulta; las series mensuales usan claves "YYYY-MM" y las anuales "YYYY".
type ChartsUseCase struct {
	productRepo  repository.ProductRepository
	stageRepo    repository.StageRepository
	substageRepo repository.SubstageRepository
	locationRepo repository.LocationRepository
	movementRepo repository.MovementRepository
	now          func() time.Time
}

// NewChartsUseCase construye el caso de uso.
func NewChartsUseCase(
	productRepo repository.ProductRepository,
	stageRepo repository.StageRepository,
	substageRepo repository.SubstageRepository,
	locationRepo repository.LocationRepository,
	movementRepo repository.MovementRepository,
) *ChartsUseCase {
	return &ChartsUseCase{
		productRepo:  productRepo,
		stageRepo:    stageRepo,
		substageRepo: substageRepo,
		locationRepo: locationRepo,
		movementRepo: movementRepo,
		now:          time.Now,
	}
}

// ConsumptionByProduct suma las cantidades de movimientos de uso por producto.
func (uc *ChartsUseCase) ConsumptionByProduct() (map[string]decimal.Decimal, error) {
	movements, err := uc.movementRepo.List()
	if err != nil {
		return nil, err
	}
	out := make(map[string]decimal.Decimal)
	for _, m := range movements {
		if m.Type != entity.MovementTypeUso {
			continue
		}
		for _, item := range m.Items {
			name, ok := uc.productName(item.ProductID)
			if !ok {
				continue
			}
			out[name] = out[name].Add(item.Quantity)
		}
	}
	return out, nil
}

// StockLevels devuelve el nivel actual vs. mínimo de los productos con
// control de stock.
func (uc *ChartsUseCase) StockLevels() ([]dto.StockChartItem, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockChartItem, 0, len(products))
	for _, p := range products {
		if !p.HasStock {
			continue
		}
		out = append(out, dto.StockChartItem{
			Name:         p.Name,
			CurrentStock: p.CurrentStock,
			MinStock:     p.MinStock,
			Unit:         p.Unit,
		})
	}
	return out, nil
}

// ConsumptionByLocation agrupa cantidades de uso por locación y producto.
func (uc *ChartsUseCase) ConsumptionByLocation() (map[string]map[string]decimal.Decimal, error) {
	movements, err := uc.movementRepo.List()
	if err != nil {
		return nil, err
	}
	out := make(map[string]map[string]decimal.Decimal)
	for _, m := range movements {
		if m.Type != entity.MovementTypeUso {
			continue
		}
		location := m.Location
		if location == "" {
			location = unspecifiedLocation
		}
		if out[location] == nil {
			out[location] = make(map[string]decimal.Decimal)
		}
		for _, item := range m.Items {
			name, ok := uc.productName(item.ProductID)
			if !ok {
				continue
			}
			out[location][name] = out[location][name].Add(item.Quantity)
		}
	}
	return out, nil
}

// ExpensesByStage suma el costo de todos los movimientos (cualquier tipo)
// por etapa.
func (uc *ChartsUseCase) ExpensesByStage() (map[string]decimal.Decimal, error) {
	movements, err := uc.movementRepo.List()
	if err != nil {
		return nil, err
	}
	out := make(map[string]decimal.Decimal)
	for _, m := range movements {
		if m.StageID == nil {
			continue
		}
		stage, err := uc.stageRepo.GetByID(*m.StageID)
		if err != nil {
			return nil, err
		}
		if stage == nil {
			continue
		}
		out[stage.Name] = out[stage.Name].Add(m.Cost)
	}
	return out, nil
}

// ExpensesByLocation suma el costo de todos los movimientos por locación.
func (uc *ChartsUseCase) ExpensesByLocation() (map[string]decimal.Decimal, error) {
	movements, err := uc.movementRepo.List()
	if err != nil {
		return nil, err
	}
	out := make(map[string]decimal.Decimal)
	for _, m := range movements {
		location := m.Location
		if location == "" {
			location = unspecifiedLocation
		}
		out[location] = out[location].Add(m.Cost)
	}
	return out, nil
}

// StageTimeComparison compara duración planificada vs. real por etapa. Para
// etapas in_progress se cuentan los días transcurridos hasta hoy.
func (uc *ChartsUseCase) StageTimeComparison() ([]dto.TimeComparisonItem, error) {
	stages, err := uc.stageRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.TimeComparisonItem, 0, len(stages))
	for _, s := range stages {
		out = append(out, dto.TimeComparisonItem{
			Name:     s.Name,
			Expected: s.ExpectedDuration,
			Actual:   uc.elapsedDays(s.Status, s.StartTime, s.ActualDuration),
		})
	}
	return out, nil
}

// SubstageTimeComparison compara duración planificada vs. real por sub-etapa.
func (uc *ChartsUseCase) SubstageTimeComparison() ([]dto.TimeComparisonItem, error) {
	substages, err := uc.substageRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.TimeComparisonItem, 0, len(substages))
	for _, ss := range substages {
		out = append(out, dto.TimeComparisonItem{
			Name:     ss.Name,
			Expected: ss.ExpectedDuration,
			Actual:   uc.elapsedDays(ss.Status, ss.StartTime, ss.ActualDuration),
		})
	}
	return out, nil
}

// TimeByLocation acumula días planificados y reales de las etapas agrupadas
// por su locación asignada.
func (uc *ChartsUseCase) TimeByLocation() (map[string]dto.LocationTime, error) {
	stages, err := uc.stageRepo.List()
	if err != nil {
		return nil, err
	}
	out := make(map[string]dto.LocationTime)
	for _, s := range stages {
		if s.LocationID == nil {
			continue
		}
		name := unspecifiedLocation
		if location, err := uc.locationRepo.GetByID(*s.LocationID); err == nil && location != nil {
			name = location.Name
		}
		acc := out[name]
		acc.Expected += s.ExpectedDuration
		acc.Actual += uc.elapsedDays(s.Status, s.StartTime, s.ActualDuration)
		out[name] = acc
	}
	return out, nil
}

// ConsumptionCostBySubstage suma el costo de los movimientos de uso por
// sub-etapa.
func (uc *ChartsUseCase) ConsumptionCostBySubstage() (map[string]decimal.Decimal, error) {
	return uc.costBySubstage(true)
}

// ExpenseBySubstage suma el costo de todos los movimientos por sub-etapa.
func (uc *ChartsUseCase) ExpenseBySubstage() (map[string]decimal.Decimal, error) {
	return uc.costBySubstage(false)
}

func (uc *ChartsUseCase) costBySubstage(usoOnly bool) (map[string]decimal.Decimal, error) {
	movements, err := uc.movementRepo.List()
	if err != nil {
		return nil, err
	}
	out := make(map[string]decimal.Decimal)
	for _, m := range movements {
		if usoOnly && m.Type != entity.MovementTypeUso {
			continue
		}
		if m.SubstageID == nil {
			continue
		}
		substage, err := uc.substageRepo.GetByID(*m.SubstageID)
		if err != nil {
			return nil, err
		}
		if substage == nil {
			continue
		}
		out[substage.Name] = out[substage.Name].Add(m.Cost)
	}
	return out, nil
}

// ConsumptionCostByStage suma el costo de los movimientos de uso por etapa.
func (uc *ChartsUseCase) ConsumptionCostByStage() (map[string]decimal.Decimal, error) {
	movements, err := uc.movementRepo.List()
	if err != nil {
		return nil, err
	}
	out := make(map[string]decimal.Decimal)
	for _, m := range movements {
		if m.Type != entity.MovementTypeUso || m.StageID == nil {
			continue
		}
		stage, err := uc.stageRepo.GetByID(*m.StageID)
		if err != nil {
			return nil, err
		}
		if stage == nil {
			continue
		}
		out[stage.Name] = out[stage.Name].Add(m.Cost)
	}
	return out, nil
}

// ConsumptionByProductBySubstage agrupa cantidades de uso por sub-etapa y
// producto.
func (uc *ChartsUseCase) ConsumptionByProductBySubstage() (map[string]map[string]decimal.Decimal, error) {
	movements, err := uc.movementRepo.List()
	if err != nil {
		return nil, err
	}
	out := make(map[string]map[string]decimal.Decimal)
	for _, m := range movements {
		if m.Type != entity.MovementTypeUso || m.SubstageID == nil {
			continue
		}
		substage, err := uc.substageRepo.GetByID(*m.SubstageID)
		if err != nil {
			return nil, err
		}
		if substage == nil {
			continue
		}
		if out[substage.Name] == nil {
			out[substage.Name] = make(map[string]decimal.Decimal)
		}
		for _, item := range m.Items {
			name, ok := uc.productName(item.ProductID)
			if !ok {
				continue
			}
			out[substage.Name][name] = out[substage.Name][name].Add(item.Quantity)
		}
	}
	return out, nil
}

// MonthlyConsumptionByProduct cantidades de uso por mes y producto.
func (uc *ChartsUseCase) MonthlyConsumptionByProduct() (map[string]map[string]decimal.Decimal, error) {
	return uc.periodProductSeries(monthKey, true, false)
}

// MonthlyExpenseByProduct gasto (cantidad × precio actual) por mes y
// producto, contando todos los tipos de movimiento.
func (uc *ChartsUseCase) MonthlyExpenseByProduct() (map[string]map[string]decimal.Decimal, error) {
	return uc.periodProductSeries(monthKey, false, true)
}

// YearlyConsumptionByProduct cantidades de uso por año y producto.
func (uc *ChartsUseCase) YearlyConsumptionByProduct() (map[string]map[string]decimal.Decimal, error) {
	return uc.periodProductSeries(yearKey, true, false)
}

// YearlyExpenseByProduct gasto por año y producto, todos los tipos.
func (uc *ChartsUseCase) YearlyExpenseByProduct() (map[string]map[string]decimal.Decimal, error) {
	return uc.periodProductSeries(yearKey, false, true)
}

func (uc *ChartsUseCase) periodProductSeries(key func(time.Time) string, usoOnly, byCost bool) (map[string]map[string]decimal.Decimal, error) {
	movements, err := uc.movementRepo.List()
	if err != nil {
		return nil, err
	}
	out := make(map[string]map[string]decimal.Decimal)
	for _, m := range movements {
		if usoOnly && m.Type != entity.MovementTypeUso {
			continue
		}
		period := key(m.Date)
		if out[period] == nil {
			out[period] = make(map[string]decimal.Decimal)
		}
		for _, item := range m.Items {
			product, err := uc.productRepo.GetByID(item.ProductID)
			if err != nil {
				return nil, err
			}
			if product == nil {
				continue
			}
			value := item.Quantity
			if byCost {
				value = item.Quantity.Mul(product.Price)
			}
			out[period][product.Name] = out[period][product.Name].Add(value)
		}
	}
	return out, nil
}

// MonthlyConsumptionByLocation costo de uso por mes y locación.
func (uc *ChartsUseCase) MonthlyConsumptionByLocation() (map[string]map[string]decimal.Decimal, error) {
	return uc.periodLocationSeries(monthKey, true)
}

// MonthlyExpenseByLocation costo total por mes y locación, todos los tipos.
func (uc *ChartsUseCase) MonthlyExpenseByLocation() (map[string]map[string]decimal.Decimal, error) {
	return uc.periodLocationSeries(monthKey, false)
}

// YearlyConsumptionByLocation costo de uso por año y locación.
func (uc *ChartsUseCase) YearlyConsumptionByLocation() (map[string]map[string]decimal.Decimal, error) {
	return uc.periodLocationSeries(yearKey, true)
}

// YearlyExpenseByLocation costo total por año y locación, todos los tipos.
func (uc *ChartsUseCase) YearlyExpenseByLocation() (map[string]map[string]decimal.Decimal, error) {
	return uc.periodLocationSeries(yearKey, false)
}

func (uc *ChartsUseCase) periodLocationSeries(key func(time.Time) string, usoOnly bool) (map[string]map[string]decimal.Decimal, error) {
	movements, err := uc.movementRepo.List()
	if err != nil {
		return nil, err
	}
	out := make(map[string]map[string]decimal.Decimal)
	for _, m := range movements {
		if usoOnly && m.Type != entity.MovementTypeUso {
			continue
		}
		period := key(m.Date)
		location := m.Location
		if location == "" {
			location = noLocation
		}
		if out[period] == nil {
			out[period] = make(map[string]decimal.Decimal)
		}
		out[period][location] = out[period][location].Add(m.Cost)
	}
	return out, nil
}

// elapsedDays días reales de un registro: la duración calculada si terminó,
// los días corridos desde start_time si sigue en progreso, cero si no empezó.
func (uc *ChartsUseCase) elapsedDays(status string, startTime *time.Time, actualDuration *int) int {
	switch {
	case status == entity.StatusCompleted && actualDuration != nil:
		return *actualDuration
	case status == entity.StatusInProgress && startTime != nil:
		return int(uc.now().Sub(*startTime).Hours() / 24)
	default:
		return 0
	}
}

func (uc *ChartsUseCase) productName(id int64) (string, bool) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil || product == nil {
		return "", false
	}
	return product.Name, true
}

func monthKey(t time.Time) string {
	return t.Format("2006-01")
}

func yearKey(t time.Time) string {
	return strconv.Itoa(t.Year())
}
