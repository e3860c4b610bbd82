package repository

import "github.com/cultivapp/cultivo-api/internal/domain/entity"

// LocationRepository define el puerto de persistencia para Location.
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id int64) (*entity.Location, error)
	Update(location *entity.Location) error
	List() ([]*entity.Location, error)
	Delete(id int64) error
}
