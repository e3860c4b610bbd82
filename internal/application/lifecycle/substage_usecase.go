package lifecycle

import (
	"fmt"
	"time"

	"github.com/cultivapp/cultivo-api/internal/application/dto"
	"github.com/cultivapp/cultivo-api/internal/domain"
	"github.com/cultivapp/cultivo-api/internal/domain/entity"
	"github.com/cultivapp/cultivo-api/internal/domain/repository"
)

// SubstageUseCase gestiona las sub-etapas: CRUD más la misma máquina de
// estados que las etapas. La regla de exclusividad (una sola sub-etapa
// in_progress por etapa) se exige en la creación; al editar stage_id no se
// reverifica.
type SubstageUseCase struct {
	repo      repository.SubstageRepository
	stageRepo repository.StageRepository
	now       func() time.Time
}

// NewSubstageUseCase construye el caso de uso.
func NewSubstageUseCase(repo repository.SubstageRepository, stageRepo repository.StageRepository) *SubstageUseCase {
	return &SubstageUseCase{repo: repo, stageRepo: stageRepo, now: time.Now}
}

// Create crea una sub-etapa pending bajo una etapa existente. Se rechaza si
// la etapa ya tiene una sub-etapa in_progress.
func (uc *SubstageUseCase) Create(in dto.CreateSubstageRequest) (*dto.SubstageResponse, error) {
	stage, err := uc.stageRepo.GetByID(in.StageID)
	if err != nil {
		return nil, err
	}
	if stage == nil {
		return nil, fmt.Errorf("etapa %d: %w", in.StageID, domain.ErrNotFound)
	}
	siblings, err := uc.repo.ListByStage(in.StageID)
	if err != nil {
		return nil, err
	}
	for _, sibling := range siblings {
		if sibling.Status == entity.StatusInProgress {
			return nil, fmt.Errorf("la etapa ya tiene una sub-etapa activa: %w", domain.ErrConflict)
		}
	}
	substage := &entity.Substage{
		Name:             in.Name,
		Description:      in.Description,
		StageID:          in.StageID,
		ExpectedDuration: in.ExpectedDuration,
		Status:           entity.StatusPending,
		Responsible:      in.Responsible,
		CreatedAt:        uc.now(),
	}
	if err := uc.repo.Create(substage); err != nil {
		return nil, err
	}
	return uc.toResponse(substage), nil
}

// Update actualiza una sub-etapa. Un cambio de etapa exige que la nueva exista.
func (uc *SubstageUseCase) Update(id int64, in dto.UpdateSubstageRequest) (*dto.SubstageResponse, error) {
	substage, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if substage == nil {
		return nil, nil
	}
	if in.StageID != nil {
		stage, err := uc.stageRepo.GetByID(*in.StageID)
		if err != nil {
			return nil, err
		}
		if stage == nil {
			return nil, fmt.Errorf("etapa %d: %w", *in.StageID, domain.ErrNotFound)
		}
		substage.StageID = *in.StageID
	}
	if in.Name != nil {
		substage.Name = *in.Name
	}
	if in.Description != nil {
		substage.Description = *in.Description
	}
	if in.ExpectedDuration != nil {
		substage.ExpectedDuration = *in.ExpectedDuration
	}
	if in.Responsible != nil {
		substage.Responsible = *in.Responsible
	}
	if err := uc.repo.Update(substage); err != nil {
		return nil, err
	}
	return uc.toResponse(substage), nil
}

// List lista todas las sub-etapas con el nombre de etapa resuelto.
func (uc *SubstageUseCase) List() ([]dto.SubstageResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.SubstageResponse, 0, len(list))
	for _, ss := range list {
		items = append(items, *uc.toResponse(ss))
	}
	return items, nil
}

// Delete elimina una sub-etapa por ID.
func (uc *SubstageUseCase) Delete(id int64) error {
	substage, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if substage == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// Start transiciona pending -> in_progress y fija start_time.
func (uc *SubstageUseCase) Start(id int64) (*dto.SubstageResponse, error) {
	substage, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if substage == nil {
		return nil, domain.ErrNotFound
	}
	if substage.Status != entity.StatusPending {
		return nil, fmt.Errorf("la sub-etapa ya ha sido iniciada: %w", domain.ErrConflict)
	}
	now := uc.now()
	substage.Status = entity.StatusInProgress
	substage.StartTime = &now
	if err := uc.repo.Update(substage); err != nil {
		return nil, err
	}
	return uc.toResponse(substage), nil
}

// Finish transiciona in_progress -> completed y calcula la duración real.
func (uc *SubstageUseCase) Finish(id int64) (*dto.SubstageResponse, error) {
	substage, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if substage == nil {
		return nil, domain.ErrNotFound
	}
	if substage.Status != entity.StatusInProgress {
		return nil, fmt.Errorf("la sub-etapa no está en progreso: %w", domain.ErrConflict)
	}
	now := uc.now()
	substage.Status = entity.StatusCompleted
	substage.EndTime = &now
	if substage.StartTime != nil {
		days := wholeDays(*substage.StartTime, now)
		substage.ActualDuration = &days
	}
	if err := uc.repo.Update(substage); err != nil {
		return nil, err
	}
	return uc.toResponse(substage), nil
}

func (uc *SubstageUseCase) toResponse(ss *entity.Substage) *dto.SubstageResponse {
	resp := &dto.SubstageResponse{
		ID:               ss.ID,
		Name:             ss.Name,
		Description:      ss.Description,
		StageID:          ss.StageID,
		ExpectedDuration: ss.ExpectedDuration,
		StartTime:        ss.StartTime,
		EndTime:          ss.EndTime,
		ActualDuration:   ss.ActualDuration,
		Status:           ss.Status,
		Responsible:      ss.Responsible,
		CreatedAt:        ss.CreatedAt,
	}
	if stage, err := uc.stageRepo.GetByID(ss.StageID); err == nil && stage != nil {
		resp.StageName = stage.Name
	} else {
		resp.StageName = "Desconocida"
	}
	return resp
}
