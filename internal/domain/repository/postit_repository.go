package repository

import "github.com/cultivapp/cultivo-api/internal/domain/entity"

// PostitRepository define el puerto de persistencia para Postit.
type PostitRepository interface {
	Create(postit *entity.Postit) error
	GetByID(id int64) (*entity.Postit, error)
	Update(postit *entity.Postit) error
	List() ([]*entity.Postit, error)
	Delete(id int64) error
}
