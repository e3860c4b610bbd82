package memory

import (
	"github.com/cultivapp/cultivo-api/internal/domain"
	"github.com/cultivapp/cultivo-api/internal/domain/entity"
)

// RecipeRepository implementa repository.RecipeRepository sobre el Store.
type RecipeRepository struct {
	store *Store
}

// NewRecipeRepository construye el repositorio.
func NewRecipeRepository(store *Store) *RecipeRepository {
	return &RecipeRepository{store: store}
}

func (r *RecipeRepository) Create(recipe *entity.Recipe) error {
	created := r.store.recipes.add(func(id int64) entity.Recipe {
		recipe.ID = id
		return *recipe
	})
	*recipe = created
	return nil
}

func (r *RecipeRepository) GetByID(id int64) (*entity.Recipe, error) {
	row, ok := r.store.recipes.get(id)
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r *RecipeRepository) List() ([]*entity.Recipe, error) {
	rows := r.store.recipes.list()
	out := make([]*entity.Recipe, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out, nil
}

func (r *RecipeRepository) Delete(id int64) error {
	if !r.store.recipes.remove(id) {
		return domain.ErrNotFound
	}
	return nil
}

// RecipeImageRepository implementa repository.RecipeImageRepository sobre el Store.
type RecipeImageRepository struct {
	store *Store
}

// NewRecipeImageRepository construye el repositorio.
func NewRecipeImageRepository(store *Store) *RecipeImageRepository {
	return &RecipeImageRepository{store: store}
}

func (r *RecipeImageRepository) Create(image *entity.RecipeImage) error {
	created := r.store.recipeImages.add(func(id int64) entity.RecipeImage {
		image.ID = id
		return *image
	})
	*image = created
	return nil
}

func (r *RecipeImageRepository) GetByID(id int64) (*entity.RecipeImage, error) {
	row, ok := r.store.recipeImages.get(id)
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r *RecipeImageRepository) Update(image *entity.RecipeImage) error {
	if !r.store.recipeImages.put(image.ID, *image) {
		return domain.ErrNotFound
	}
	return nil
}

func (r *RecipeImageRepository) List() ([]*entity.RecipeImage, error) {
	rows := r.store.recipeImages.list()
	out := make([]*entity.RecipeImage, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out, nil
}

func (r *RecipeImageRepository) Delete(id int64) error {
	if !r.store.recipeImages.remove(id) {
		return domain.ErrNotFound
	}
	return nil
}
