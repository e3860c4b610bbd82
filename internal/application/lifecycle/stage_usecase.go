package lifecycle

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cultivapp/cultivo-api/internal/application/dto"
	"github.com/cultivapp/cultivo-api/internal/domain"
	"github.com/cultivapp/cultivo-api/internal/domain/entity"
	"github.com/cultivapp/cultivo-api/internal/domain/repository"
)

// StageUseCase gestiona las etapas de cultivo: CRUD más la máquina de estados
// pending -> in_progress -> completed, el cierre de ciclo (completar) y el
// reinicio que clona la etapa en un nuevo registro pending.
type StageUseCase struct {
	repo         repository.StageRepository
	substageRepo repository.SubstageRepository
	locationRepo repository.LocationRepository
	movementRepo repository.MovementRepository
	productRepo  repository.ProductRepository
	now          func() time.Time
}

// NewStageUseCase construye el caso de uso.
func NewStageUseCase(
	repo repository.StageRepository,
	substageRepo repository.SubstageRepository,
	locationRepo repository.LocationRepository,
	movementRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
) *StageUseCase {
	return &StageUseCase{
		repo:         repo,
		substageRepo: substageRepo,
		locationRepo: locationRepo,
		movementRepo: movementRepo,
		productRepo:  productRepo,
		now:          time.Now,
	}
}

// Create crea una etapa en estado pending. La locación, si se indica, debe
// existir; varias etapas pueden compartir locación en la creación.
func (uc *StageUseCase) Create(in dto.CreateStageRequest) (*dto.StageResponse, error) {
	if in.LocationID != nil {
		location, err := uc.locationRepo.GetByID(*in.LocationID)
		if err != nil {
			return nil, err
		}
		if location == nil {
			return nil, fmt.Errorf("locación %d: %w", *in.LocationID, domain.ErrNotFound)
		}
	}
	stage := &entity.Stage{
		Name:             in.Name,
		Description:      in.Description,
		LocationID:       in.LocationID,
		ExpectedDuration: in.ExpectedDuration,
		Status:           entity.StatusPending,
		Responsible:      in.Responsible,
		CycleName:        in.CycleName,
		CreatedAt:        uc.now(),
	}
	if err := uc.repo.Create(stage); err != nil {
		return nil, err
	}
	return uc.toResponse(stage), nil
}

// Update actualiza una etapa. Aquí sí se exige exclusividad de locación:
// asignar una locación ya ocupada por otra etapa es un conflicto.
func (uc *StageUseCase) Update(id int64, in dto.UpdateStageRequest) (*dto.StageResponse, error) {
	stage, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if stage == nil {
		return nil, nil
	}
	if in.Name != nil && *in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.ExpectedDuration != nil && *in.ExpectedDuration <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Responsible != nil && *in.Responsible == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.LocationID != nil {
		occupants, err := uc.repo.ListByLocation(*in.LocationID)
		if err != nil {
			return nil, err
		}
		for _, other := range occupants {
			if other.ID != id {
				return nil, fmt.Errorf("la locación ya está asignada a otra etapa: %w", domain.ErrConflict)
			}
		}
	}

	if in.Name != nil {
		stage.Name = *in.Name
	}
	if in.Description != nil {
		stage.Description = *in.Description
	}
	if in.ClearLocation {
		stage.LocationID = nil
	} else if in.LocationID != nil {
		stage.LocationID = in.LocationID
	}
	if in.ExpectedDuration != nil {
		stage.ExpectedDuration = *in.ExpectedDuration
	}
	if in.Responsible != nil {
		stage.Responsible = *in.Responsible
	}
	if in.CycleName != nil {
		stage.CycleName = *in.CycleName
	}
	if err := uc.repo.Update(stage); err != nil {
		return nil, err
	}
	return uc.toResponse(stage), nil
}

// List lista todas las etapas con el nombre de locación resuelto.
func (uc *StageUseCase) List() ([]dto.StageResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.StageResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *uc.toResponse(s))
	}
	return items, nil
}

// GetByID obtiene una etapa por ID.
func (uc *StageUseCase) GetByID(id int64) (*dto.StageResponse, error) {
	stage, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if stage == nil {
		return nil, nil
	}
	return uc.toResponse(stage), nil
}

// Delete elimina una etapa. Se rechaza si tiene sub-etapas asociadas.
func (uc *StageUseCase) Delete(id int64) error {
	stage, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if stage == nil {
		return domain.ErrNotFound
	}
	substages, err := uc.substageRepo.ListByStage(id)
	if err != nil {
		return err
	}
	if len(substages) > 0 {
		return domain.ErrHasDependents
	}
	return uc.repo.Delete(id)
}

// Start transiciona pending -> in_progress y fija start_time.
func (uc *StageUseCase) Start(id int64) (*dto.StageResponse, error) {
	stage, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if stage == nil {
		return nil, domain.ErrNotFound
	}
	if stage.Status != entity.StatusPending {
		return nil, fmt.Errorf("la etapa ya ha sido iniciada: %w", domain.ErrConflict)
	}
	now := uc.now()
	stage.Status = entity.StatusInProgress
	stage.StartTime = &now
	if err := uc.repo.Update(stage); err != nil {
		return nil, err
	}
	return uc.toResponse(stage), nil
}

// Finish transiciona in_progress -> completed, fija end_time y calcula la
// duración real en días completos.
func (uc *StageUseCase) Finish(id int64) (*dto.StageResponse, error) {
	stage, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if stage == nil {
		return nil, domain.ErrNotFound
	}
	if stage.Status != entity.StatusInProgress {
		return nil, fmt.Errorf("la etapa no está en progreso: %w", domain.ErrConflict)
	}
	now := uc.now()
	stage.Status = entity.StatusCompleted
	stage.EndTime = &now
	if stage.StartTime != nil {
		days := wholeDays(*stage.StartTime, now)
		stage.ActualDuration = &days
	}
	if err := uc.repo.Update(stage); err != nil {
		return nil, err
	}
	return uc.toResponse(stage), nil
}

// Complete marca el cierre de ciclo: fuerza status=completed e
// is_completed=true fuera de la transición normal de finalización.
func (uc *StageUseCase) Complete(id int64) (*dto.StageResponse, error) {
	stage, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if stage == nil {
		return nil, domain.ErrNotFound
	}
	now := uc.now()
	stage.IsCompleted = true
	stage.Status = entity.StatusCompleted
	stage.EndTime = &now
	if err := uc.repo.Update(stage); err != nil {
		return nil, err
	}
	return uc.toResponse(stage), nil
}

// Restart clona la etapa en un nuevo registro pending para el siguiente
// ciclo, con parent_stage_id apuntando a la original. La historia no se borra.
func (uc *StageUseCase) Restart(id int64, in dto.RestartStageRequest) (*dto.StageResponse, error) {
	stage, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if stage == nil {
		return nil, domain.ErrNotFound
	}
	parentID := stage.ID
	clone := &entity.Stage{
		Name:             stage.Name,
		Description:      stage.Description,
		LocationID:       stage.LocationID,
		ExpectedDuration: stage.ExpectedDuration,
		Status:           entity.StatusPending,
		Responsible:      stage.Responsible,
		CycleName:        in.CycleName,
		ParentStageID:    &parentID,
		CreatedAt:        uc.now(),
	}
	if err := uc.repo.Create(clone); err != nil {
		return nil, err
	}
	if clone.CycleName == "" {
		clone.CycleName = fmt.Sprintf("%s - Ciclo %d", clone.Name, clone.ID)
		if err := uc.repo.Update(clone); err != nil {
			return nil, err
		}
	}
	return uc.toResponse(clone), nil
}

// Summary genera el resumen de cierre de una etapa completada: consumo por
// producto en cada sub-etapa más totales de cantidad y costo.
func (uc *StageUseCase) Summary(id int64) (*dto.StageSummaryResponse, error) {
	stage, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if stage == nil {
		return nil, domain.ErrNotFound
	}
	if !stage.IsCompleted {
		return nil, fmt.Errorf("la etapa debe estar completada para generar resumen: %w", domain.ErrConflict)
	}

	substages, err := uc.substageRepo.ListByStage(id)
	if err != nil {
		return nil, err
	}
	movements, err := uc.movementRepo.List()
	if err != nil {
		return nil, err
	}

	consumption := make(map[string]map[string]dto.SummaryProduct, len(substages))
	totalQuantity := decimal.Zero
	totalCost := decimal.Zero

	for _, ss := range substages {
		perProduct := make(map[string]dto.SummaryProduct)
		for _, m := range movements {
			if m.StageID == nil || *m.StageID != id || m.SubstageID == nil || *m.SubstageID != ss.ID {
				continue
			}
			for _, item := range m.Items {
				product, err := uc.productRepo.GetByID(item.ProductID)
				if err != nil {
					return nil, err
				}
				if product == nil {
					continue
				}
				cost := item.Quantity.Mul(product.Price)
				acc := perProduct[product.Name]
				acc.Quantity = acc.Quantity.Add(item.Quantity)
				acc.Unit = product.Unit
				acc.Cost = acc.Cost.Add(cost)
				perProduct[product.Name] = acc

				totalQuantity = totalQuantity.Add(item.Quantity)
				totalCost = totalCost.Add(cost)
			}
		}
		consumption[ss.Name] = perProduct
	}

	return &dto.StageSummaryResponse{
		StageID:               stage.ID,
		StageName:             stage.Name,
		CycleName:             stage.CycleName,
		StartTime:             stage.StartTime,
		EndTime:               stage.EndTime,
		ExpectedDuration:      stage.ExpectedDuration,
		ActualDuration:        stage.ActualDuration,
		Responsible:           stage.Responsible,
		ConsumptionBySubstage: consumption,
		Totals: dto.SummaryTotals{
			TotalQuantity: totalQuantity,
			TotalCost:     totalCost,
		},
		GeneratedAt: uc.now(),
	}, nil
}

func (uc *StageUseCase) toResponse(s *entity.Stage) *dto.StageResponse {
	resp := &dto.StageResponse{
		ID:               s.ID,
		Name:             s.Name,
		Description:      s.Description,
		LocationID:       s.LocationID,
		ExpectedDuration: s.ExpectedDuration,
		StartTime:        s.StartTime,
		EndTime:          s.EndTime,
		ActualDuration:   s.ActualDuration,
		Status:           s.Status,
		Responsible:      s.Responsible,
		CycleName:        s.CycleName,
		IsCompleted:      s.IsCompleted,
		ParentStageID:    s.ParentStageID,
		CreatedAt:        s.CreatedAt,
	}
	if s.LocationID != nil {
		if location, err := uc.locationRepo.GetByID(*s.LocationID); err == nil && location != nil {
			resp.LocationName = location.Name
		} else {
			resp.LocationName = "Desconocida"
		}
	}
	return resp
}

// wholeDays devuelve los días completos entre dos instantes (truncado).
func wholeDays(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
