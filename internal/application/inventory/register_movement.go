package inventory

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cultivapp/cultivo-api/internal/application/dto"
	"github.com/cultivapp/cultivo-api/internal/domain"
	"github.com/cultivapp/cultivo-api/internal/domain/entity"
	"github.com/cultivapp/cultivo-api/internal/domain/repository"
)

// MovementUseCase registra movimientos de inventario y aplica sus efectos de
// stock. Un movimiento multi-línea es todo-o-nada: se validan todas las
// líneas antes de tocar stock, de modo que un rechazo no deja efectos
// parciales. El costo se congela al crear; editar solo toca metadatos y
// borrar nunca revierte stock.
type MovementUseCase struct {
	repo         repository.MovementRepository
	productRepo  repository.ProductRepository
	stageRepo    repository.StageRepository
	substageRepo repository.SubstageRepository
	locationRepo repository.LocationRepository
	now          func() time.Time
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(
	repo repository.MovementRepository,
	productRepo repository.ProductRepository,
	stageRepo repository.StageRepository,
	substageRepo repository.SubstageRepository,
	locationRepo repository.LocationRepository,
) *MovementUseCase {
	return &MovementUseCase{
		repo:         repo,
		productRepo:  productRepo,
		stageRepo:    stageRepo,
		substageRepo: substageRepo,
		locationRepo: locationRepo,
		now:          time.Now,
	}
}

// Create valida todas las líneas, calcula el costo total y solo entonces
// aplica los deltas de stock: compra suma; uso/transferencia restan con
// suelo en cero. Las líneas repetidas de un mismo producto se acumulan: la
// validación compara el total pedido contra el stock y el delta se aplica
// una sola vez. Los productos sin control de stock nunca se modifican.
func (uc *MovementUseCase) Create(in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	// Fase 1: resolver productos y validar stock sin mutar nada
	products := make(map[int64]*entity.Product, len(in.Items))
	requested := make(map[int64]decimal.Decimal, len(in.Items))
	order := make([]int64, 0, len(in.Items))
	items := make([]entity.MovementItem, 0, len(in.Items))
	totalCost := decimal.Zero

	for _, line := range in.Items {
		if !line.Quantity.IsPositive() {
			return nil, fmt.Errorf("cantidad inválida para el producto %d: %w", line.ProductID, domain.ErrInvalidInput)
		}
		product, seen := products[line.ProductID]
		if !seen {
			var err error
			product, err = uc.productRepo.GetByID(line.ProductID)
			if err != nil {
				return nil, err
			}
			if product == nil {
				return nil, fmt.Errorf("producto %d: %w", line.ProductID, domain.ErrNotFound)
			}
			products[line.ProductID] = product
			order = append(order, line.ProductID)
		}
		total := requested[line.ProductID].Add(line.Quantity)
		requested[line.ProductID] = total
		if product.HasStock && entity.ConsumesStock(in.Type) && product.CurrentStock.LessThan(total) {
			return nil, fmt.Errorf("stock insuficiente para %s: %w", product.Name, domain.ErrInsufficientStock)
		}
		items = append(items, entity.MovementItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Unit:      product.Unit,
		})
		totalCost = totalCost.Add(line.Quantity.Mul(product.Price))
	}

	locationName := ""
	if in.LocationID != nil {
		location, err := uc.locationRepo.GetByID(*in.LocationID)
		if err != nil {
			return nil, err
		}
		if location != nil {
			locationName = location.Name
		}
	}

	// Fase 2: aplicar un delta acumulado por producto, ya sin causas de rechazo
	for _, id := range order {
		product := products[id]
		if !product.HasStock {
			continue
		}
		qty := requested[id]
		switch {
		case in.Type == entity.MovementTypeCompra:
			product.CurrentStock = product.CurrentStock.Add(qty)
		case entity.ConsumesStock(in.Type):
			product.CurrentStock = product.CurrentStock.Sub(qty)
			if product.CurrentStock.IsNegative() {
				product.CurrentStock = decimal.Zero
			}
		default:
			continue
		}
		if err := uc.productRepo.Update(product); err != nil {
			return nil, err
		}
	}

	movement := &entity.Movement{
		Date:         uc.now(),
		Type:         in.Type,
		Items:        items,
		StageID:      in.StageID,
		SubstageID:   in.SubstageID,
		Responsible:  in.Responsible,
		Location:     locationName,
		LocationID:   in.LocationID,
		Observations: in.Observations,
		Cost:         totalCost,
	}
	if err := uc.repo.Create(movement); err != nil {
		return nil, err
	}
	return uc.toResponse(movement), nil
}

// Update edita solo metadatos del movimiento: etapa, sub-etapa, responsable,
// locación y observaciones. Nunca recalcula costo ni stock.
func (uc *MovementUseCase) Update(id int64, in dto.UpdateMovementRequest) (*dto.MovementResponse, error) {
	movement, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if movement == nil {
		return nil, nil
	}
	if in.Responsible == nil || *in.Responsible == "" {
		return nil, fmt.Errorf("responsable es obligatorio: %w", domain.ErrInvalidInput)
	}
	movement.Responsible = *in.Responsible
	if in.StageID != nil {
		movement.StageID = in.StageID
	}
	if in.SubstageID != nil {
		movement.SubstageID = in.SubstageID
	}
	if in.Observations != nil {
		movement.Observations = *in.Observations
	}
	if in.LocationID != nil {
		movement.LocationID = in.LocationID
		location, err := uc.locationRepo.GetByID(*in.LocationID)
		if err != nil {
			return nil, err
		}
		if location != nil {
			movement.Location = location.Name
		}
	}
	if err := uc.repo.Update(movement); err != nil {
		return nil, err
	}
	return uc.toResponse(movement), nil
}

// List lista todos los movimientos con nombres de etapa, sub-etapa y
// productos resueltos al momento de la consulta.
func (uc *MovementUseCase) List() ([]dto.MovementResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *uc.toResponse(m))
	}
	return items, nil
}

// Delete elimina el registro. El stock consumido no se restaura; el libro
// no tiene reversa.
func (uc *MovementUseCase) Delete(id int64) error {
	movement, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if movement == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func (uc *MovementUseCase) toResponse(m *entity.Movement) *dto.MovementResponse {
	resp := &dto.MovementResponse{
		ID:           m.ID,
		Date:         m.Date,
		Type:         m.Type,
		StageID:      m.StageID,
		SubstageID:   m.SubstageID,
		Responsible:  m.Responsible,
		Location:     m.Location,
		LocationID:   m.LocationID,
		Observations: m.Observations,
		Cost:         m.Cost,
	}
	if m.StageID != nil {
		name := "Desconocida"
		if stage, err := uc.stageRepo.GetByID(*m.StageID); err == nil && stage != nil {
			name = stage.Name
		}
		resp.StageName = &name
	}
	if m.SubstageID != nil {
		name := "Desconocida"
		if substage, err := uc.substageRepo.GetByID(*m.SubstageID); err == nil && substage != nil {
			name = substage.Name
		}
		resp.SubstageName = &name
	}
	resp.Items = make([]dto.MovementItemResponse, 0, len(m.Items))
	for _, item := range m.Items {
		itemResp := dto.MovementItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Unit:      item.Unit,
		}
		if product, err := uc.productRepo.GetByID(item.ProductID); err == nil && product != nil {
			itemResp.ProductName = product.Name
		} else {
			itemResp.ProductName = "Desconocido"
		}
		resp.Items = append(resp.Items, itemResp)
	}
	return resp
}
