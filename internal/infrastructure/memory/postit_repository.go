package memory

import (
	"github.com/cultivapp/cultivo-api/internal/domain"
	"github.com/cultivapp/cultivo-api/internal/domain/entity"
)

// PostitRepository implementa repository.PostitRepository sobre el Store.
type PostitRepository struct {
	store *Store
}

// NewPostitRepository construye el repositorio.
func NewPostitRepository(store *Store) *PostitRepository {
	return &PostitRepository{store: store}
}

func (r *PostitRepository) Create(postit *entity.Postit) error {
	created := r.store.postits.add(func(id int64) entity.Postit {
		postit.ID = id
		return *postit
	})
	*postit = created
	return nil
}

func (r *PostitRepository) GetByID(id int64) (*entity.Postit, error) {
	row, ok := r.store.postits.get(id)
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r *PostitRepository) Update(postit *entity.Postit) error {
	if !r.store.postits.put(postit.ID, *postit) {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PostitRepository) List() ([]*entity.Postit, error) {
	rows := r.store.postits.list()
	out := make([]*entity.Postit, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out, nil
}

func (r *PostitRepository) Delete(id int64) error {
	if !r.store.postits.remove(id) {
		return domain.ErrNotFound
	}
	return nil
}
