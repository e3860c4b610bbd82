package repository

import "github.com/cultivapp/cultivo-api/internal/domain/entity"

// RecipeRepository define el puerto de persistencia para Recipe.
type RecipeRepository interface {
	Create(recipe *entity.Recipe) error
	GetByID(id int64) (*entity.Recipe, error)
	List() ([]*entity.Recipe, error)
	Delete(id int64) error
}

// RecipeImageRepository define el puerto de persistencia para RecipeImage.
type RecipeImageRepository interface {
	Create(image *entity.RecipeImage) error
	GetByID(id int64) (*entity.RecipeImage, error)
	Update(image *entity.RecipeImage) error
	List() ([]*entity.RecipeImage, error)
	Delete(id int64) error
}
