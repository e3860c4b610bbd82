package repository

import "github.com/cultivapp/cultivo-api/internal/domain/entity"

// SubstageRepository define el puerto de persistencia para Substage.
type SubstageRepository interface {
	Create(substage *entity.Substage) error
	GetByID(id int64) (*entity.Substage, error)
	Update(substage *entity.Substage) error
	List() ([]*entity.Substage, error)
	// ListByStage devuelve las sub-etapas de una etapa.
	ListByStage(stageID int64) ([]*entity.Substage, error)
	Delete(id int64) error
}
