package repository

import "github.com/cultivapp/cultivo-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia para Movement.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id int64) (*entity.Movement, error)
	Update(movement *entity.Movement) error
	List() ([]*entity.Movement, error)
	Delete(id int64) error
}
