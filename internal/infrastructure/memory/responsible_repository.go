package memory

import (
	"github.com/cultivapp/cultivo-api/internal/domain"
	"github.com/cultivapp/cultivo-api/internal/domain/entity"
)

// ResponsibleRepository implementa repository.ResponsibleRepository sobre el Store.
type ResponsibleRepository struct {
	store *Store
}

// NewResponsibleRepository construye el repositorio.
func NewResponsibleRepository(store *Store) *ResponsibleRepository {
	return &ResponsibleRepository{store: store}
}

func (r *ResponsibleRepository) Create(responsible *entity.Responsible) error {
	created := r.store.responsibles.add(func(id int64) entity.Responsible {
		responsible.ID = id
		return *responsible
	})
	*responsible = created
	return nil
}

func (r *ResponsibleRepository) GetByID(id int64) (*entity.Responsible, error) {
	row, ok := r.store.responsibles.get(id)
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r *ResponsibleRepository) Update(responsible *entity.Responsible) error {
	if !r.store.responsibles.put(responsible.ID, *responsible) {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ResponsibleRepository) List() ([]*entity.Responsible, error) {
	rows := r.store.responsibles.list()
	out := make([]*entity.Responsible, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out, nil
}

func (r *ResponsibleRepository) ListByLocation(locationID int64) ([]*entity.Responsible, error) {
	rows := r.store.responsibles.list()
	var out []*entity.Responsible
	for i := range rows {
		if rows[i].LocationID == locationID {
			out = append(out, &rows[i])
		}
	}
	return out, nil
}

func (r *ResponsibleRepository) Delete(id int64) error {
	if !r.store.responsibles.remove(id) {
		return domain.ErrNotFound
	}
	return nil
}
