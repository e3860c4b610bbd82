package usecase

import (
	"time"

	"github.com/cultivapp/cultivo-api/internal/application/dto"
	"github.com/cultivapp/cultivo-api/internal/domain"
	"github.com/cultivapp/cultivo-api/internal/domain/entity"
	"github.com/cultivapp/cultivo-api/internal/domain/repository"
)

// ResponsibleUseCase casos de uso CRUD para responsables de locación.
type ResponsibleUseCase struct {
	repo         repository.ResponsibleRepository
	locationRepo repository.LocationRepository
}

// NewResponsibleUseCase construye el caso de uso.
func NewResponsibleUseCase(repo repository.ResponsibleRepository, locationRepo repository.LocationRepository) *ResponsibleUseCase {
	return &ResponsibleUseCase{repo: repo, locationRepo: locationRepo}
}

// Create crea un responsable ligado a una locación existente. Sin color
// explícito se asigna uno de la paleta en función del ID.
func (uc *ResponsibleUseCase) Create(in dto.CreateResponsibleRequest) (*dto.ResponsibleResponse, error) {
	location, err := uc.locationRepo.GetByID(in.LocationID)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.ErrNotFound
	}
	role := in.Role
	if role == "" {
		role = "Responsable"
	}
	responsible := &entity.Responsible{
		Name:       in.Name,
		Role:       role,
		LocationID: in.LocationID,
		Color:      in.Color,
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.Create(responsible); err != nil {
		return nil, err
	}
	if responsible.Color == "" {
		responsible.Color = entity.ResponsibleColors[int(responsible.ID)%len(entity.ResponsibleColors)]
		if err := uc.repo.Update(responsible); err != nil {
			return nil, err
		}
	}
	return toResponsibleResponse(responsible), nil
}

// Update actualiza un responsable; un cambio de locación se revalida.
func (uc *ResponsibleUseCase) Update(id int64, in dto.UpdateResponsibleRequest) (*dto.ResponsibleResponse, error) {
	responsible, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if responsible == nil {
		return nil, nil
	}
	if in.LocationID != nil {
		location, err := uc.locationRepo.GetByID(*in.LocationID)
		if err != nil {
			return nil, err
		}
		if location == nil {
			return nil, domain.ErrNotFound
		}
		responsible.LocationID = *in.LocationID
	}
	if in.Name != nil {
		responsible.Name = *in.Name
	}
	if in.Role != nil {
		responsible.Role = *in.Role
	}
	if in.Color != nil {
		responsible.Color = *in.Color
	}
	if err := uc.repo.Update(responsible); err != nil {
		return nil, err
	}
	return toResponsibleResponse(responsible), nil
}

// List lista todos los responsables.
func (uc *ResponsibleUseCase) List() ([]dto.ResponsibleResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toResponsibleResponses(list), nil
}

// ListByLocation lista los responsables de una locación.
func (uc *ResponsibleUseCase) ListByLocation(locationID int64) ([]dto.ResponsibleResponse, error) {
	list, err := uc.repo.ListByLocation(locationID)
	if err != nil {
		return nil, err
	}
	return toResponsibleResponses(list), nil
}

// Delete elimina un responsable por ID.
func (uc *ResponsibleUseCase) Delete(id int64) error {
	responsible, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if responsible == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toResponsibleResponses(list []*entity.Responsible) []dto.ResponsibleResponse {
	items := make([]dto.ResponsibleResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toResponsibleResponse(r))
	}
	return items
}

func toResponsibleResponse(r *entity.Responsible) *dto.ResponsibleResponse {
	if r == nil {
		return nil
	}
	return &dto.ResponsibleResponse{
		ID:         r.ID,
		Name:       r.Name,
		Role:       r.Role,
		LocationID: r.LocationID,
		Color:      r.Color,
		CreatedAt:  r.CreatedAt,
	}
}
