package memory

import (
	"github.com/cultivapp/cultivo-api/internal/domain"
	"github.com/cultivapp/cultivo-api/internal/domain/entity"
)

// LocationRepository implementa repository.LocationRepository sobre el Store.
type LocationRepository struct {
	store *Store
}

// NewLocationRepository construye el repositorio.
func NewLocationRepository(store *Store) *LocationRepository {
	return &LocationRepository{store: store}
}

func (r *LocationRepository) Create(location *entity.Location) error {
	created := r.store.locations.add(func(id int64) entity.Location {
		location.ID = id
		return *location
	})
	*location = created
	return nil
}

func (r *LocationRepository) GetByID(id int64) (*entity.Location, error) {
	row, ok := r.store.locations.get(id)
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r *LocationRepository) Update(location *entity.Location) error {
	if !r.store.locations.put(location.ID, *location) {
		return domain.ErrNotFound
	}
	return nil
}

func (r *LocationRepository) List() ([]*entity.Location, error) {
	rows := r.store.locations.list()
	out := make([]*entity.Location, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out, nil
}

func (r *LocationRepository) Delete(id int64) error {
	if !r.store.locations.remove(id) {
		return domain.ErrNotFound
	}
	return nil
}
