package repository

import "github.com/cultivapp/cultivo-api/internal/domain/entity"

// ResponsibleRepository define el puerto de persistencia para Responsible.
type ResponsibleRepository interface {
	Create(responsible *entity.Responsible) error
	GetByID(id int64) (*entity.Responsible, error)
	Update(responsible *entity.Responsible) error
	List() ([]*entity.Responsible, error)
	// ListByLocation devuelve los responsables de una locación.
	ListByLocation(locationID int64) ([]*entity.Responsible, error)
	Delete(id int64) error
}
