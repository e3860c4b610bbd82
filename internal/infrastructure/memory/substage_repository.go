package memory

import (
	"github.com/cultivapp/cultivo-api/internal/domain"
	"github.com/cultivapp/cultivo-api/internal/domain/entity"
)

// SubstageRepository implementa repository.SubstageRepository sobre el Store.
type SubstageRepository struct {
	store *Store
}

// NewSubstageRepository construye el repositorio.
func NewSubstageRepository(store *Store) *SubstageRepository {
	return &SubstageRepository{store: store}
}

func (r *SubstageRepository) Create(substage *entity.Substage) error {
	created := r.store.substages.add(func(id int64) entity.Substage {
		substage.ID = id
		return *substage
	})
	*substage = created
	return nil
}

func (r *SubstageRepository) GetByID(id int64) (*entity.Substage, error) {
	row, ok := r.store.substages.get(id)
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r *SubstageRepository) Update(substage *entity.Substage) error {
	if !r.store.substages.put(substage.ID, *substage) {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SubstageRepository) List() ([]*entity.Substage, error) {
	rows := r.store.substages.list()
	out := make([]*entity.Substage, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out, nil
}

func (r *SubstageRepository) ListByStage(stageID int64) ([]*entity.Substage, error) {
	rows := r.store.substages.list()
	var out []*entity.Substage
	for i := range rows {
		if rows[i].StageID == stageID {
			out = append(out, &rows[i])
		}
	}
	return out, nil
}

func (r *SubstageRepository) Delete(id int64) error {
	if !r.store.substages.remove(id) {
		return domain.ErrNotFound
	}
	return nil
}
