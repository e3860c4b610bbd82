package memory

import (
	"github.com/cultivapp/cultivo-api/internal/domain"
	"github.com/cultivapp/cultivo-api/internal/domain/entity"
)

// ProductRepository implementa repository.ProductRepository sobre el Store.
type ProductRepository struct {
	store *Store
}

// NewProductRepository construye el repositorio.
func NewProductRepository(store *Store) *ProductRepository {
	return &ProductRepository{store: store}
}

func (r *ProductRepository) Create(product *entity.Product) error {
	created := r.store.products.add(func(id int64) entity.Product {
		product.ID = id
		return *product
	})
	*product = created
	return nil
}

func (r *ProductRepository) GetByID(id int64) (*entity.Product, error) {
	row, ok := r.store.products.get(id)
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r *ProductRepository) Update(product *entity.Product) error {
	if !r.store.products.put(product.ID, *product) {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductRepository) List() ([]*entity.Product, error) {
	rows := r.store.products.list()
	out := make([]*entity.Product, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out, nil
}

func (r *ProductRepository) Delete(id int64) error {
	if !r.store.products.remove(id) {
		return domain.ErrNotFound
	}
	return nil
}
