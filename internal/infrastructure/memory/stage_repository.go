package memory

import (
	"github.com/cultivapp/cultivo-api/internal/domain"
	"github.com/cultivapp/cultivo-api/internal/domain/entity"
)

// StageRepository implementa repository.StageRepository sobre el Store.
type StageRepository struct {
	store *Store
}

// NewStageRepository construye el repositorio.
func NewStageRepository(store *Store) *StageRepository {
	return &StageRepository{store: store}
}

func (r *StageRepository) Create(stage *entity.Stage) error {
	created := r.store.stages.add(func(id int64) entity.Stage {
		stage.ID = id
		return *stage
	})
	*stage = created
	return nil
}

func (r *StageRepository) GetByID(id int64) (*entity.Stage, error) {
	row, ok := r.store.stages.get(id)
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r *StageRepository) Update(stage *entity.Stage) error {
	if !r.store.stages.put(stage.ID, *stage) {
		return domain.ErrNotFound
	}
	return nil
}

func (r *StageRepository) List() ([]*entity.Stage, error) {
	rows := r.store.stages.list()
	out := make([]*entity.Stage, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out, nil
}

func (r *StageRepository) ListByLocation(locationID int64) ([]*entity.Stage, error) {
	rows := r.store.stages.list()
	var out []*entity.Stage
	for i := range rows {
		if rows[i].LocationID != nil && *rows[i].LocationID == locationID {
			out = append(out, &rows[i])
		}
	}
	return out, nil
}

func (r *StageRepository) Delete(id int64) error {
	if !r.store.stages.remove(id) {
		return domain.ErrNotFound
	}
	return nil
}
