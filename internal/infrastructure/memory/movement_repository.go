package memory

import (
	"github.com/cultivapp/cultivo-api/internal/domain"
	"github.com/cultivapp/cultivo-api/internal/domain/entity"
)

// MovementRepository implementa repository.MovementRepository sobre el Store.
type MovementRepository struct {
	store *Store
}

// NewMovementRepository construye el repositorio.
func NewMovementRepository(store *Store) *MovementRepository {
	return &MovementRepository{store: store}
}

func (r *MovementRepository) Create(movement *entity.Movement) error {
	created := r.store.movements.add(func(id int64) entity.Movement {
		movement.ID = id
		return *movement
	})
	*movement = created
	return nil
}

func (r *MovementRepository) GetByID(id int64) (*entity.Movement, error) {
	row, ok := r.store.movements.get(id)
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r *MovementRepository) Update(movement *entity.Movement) error {
	if !r.store.movements.put(movement.ID, *movement) {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MovementRepository) List() ([]*entity.Movement, error) {
	rows := r.store.movements.list()
	out := make([]*entity.Movement, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out, nil
}

func (r *MovementRepository) Delete(id int64) error {
	if !r.store.movements.remove(id) {
		return domain.ErrNotFound
	}
	return nil
}
