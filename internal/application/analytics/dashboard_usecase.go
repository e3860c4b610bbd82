package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/cultivapp/cultivo-api/internal/application/dto"
	"github.com/cultivapp/cultivo-api/internal/domain/repository"
)

// DashboardUseCase calcula los KPIs generales y las alertas de stock bajo.
type DashboardUseCase struct {
	productRepo  repository.ProductRepository
	stageRepo    repository.StageRepository
	locationRepo repository.LocationRepository
	movementRepo repository.MovementRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	productRepo repository.ProductRepository,
	stageRepo repository.StageRepository,
	locationRepo repository.LocationRepository,
	movementRepo repository.MovementRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		productRepo:  productRepo,
		stageRepo:    stageRepo,
		locationRepo: locationRepo,
		movementRepo: movementRepo,
	}
}

// Summary devuelve totales por tabla, el costo acumulado de todos los
// movimientos y las alertas de productos con stock en o bajo el mínimo.
// El estado es "crítico" con stock cero y "bajo" en el resto.
func (uc *DashboardUseCase) Summary() (*dto.DashboardResponse, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	stages, err := uc.stageRepo.List()
	if err != nil {
		return nil, err
	}
	locations, err := uc.locationRepo.List()
	if err != nil {
		return nil, err
	}
	movements, err := uc.movementRepo.List()
	if err != nil {
		return nil, err
	}

	totalCost := decimal.Zero
	for _, m := range movements {
		totalCost = totalCost.Add(m.Cost)
	}

	alerts := make([]dto.LowStockAlert, 0)
	for _, p := range products {
		if !p.HasStock {
			continue
		}
		if p.CurrentStock.GreaterThan(p.MinStock) {
			continue
		}
		status := "bajo"
		if p.CurrentStock.IsZero() {
			status = "crítico"
		}
		alerts = append(alerts, dto.LowStockAlert{
			ProductName:  p.Name,
			CurrentStock: p.CurrentStock,
			MinStock:     p.MinStock,
			Unit:         p.Unit,
			Status:       status,
		})
	}

	return &dto.DashboardResponse{
		TotalProducts:  len(products),
		TotalStages:    len(stages),
		TotalLocations: len(locations),
		TotalMovements: len(movements),
		TotalCost:      totalCost,
		LowStockAlerts: alerts,
	}, nil
}
