package repository

import "github.com/cultivapp/cultivo-api/internal/domain/entity"

// StageRepository define el puerto de persistencia para Stage.
type StageRepository interface {
	Create(stage *entity.Stage) error
	GetByID(id int64) (*entity.Stage, error)
	Update(stage *entity.Stage) error
	List() ([]*entity.Stage, error)
	// ListByLocation devuelve las etapas asignadas a una locación.
	ListByLocation(locationID int64) ([]*entity.Stage, error)
	Delete(id int64) error
}
