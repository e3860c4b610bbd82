package usecase

import (
	"mime/multipart"
	"time"

	"github.com/cultivapp/cultivo-api/internal/application/dto"
	"github.com/cultivapp/cultivo-api/internal/domain"
	"github.com/cultivapp/cultivo-api/internal/domain/entity"
	"github.com/cultivapp/cultivo-api/internal/domain/repository"
)

// RecipeUseCase casos de uso para documentos de receta: el archivo físico y
// el registro se crean y destruyen juntos (archivo primero en la subida,
// registro primero nunca).
type RecipeUseCase struct {
	repo  repository.RecipeRepository
	files FileStore
}

// NewRecipeUseCase construye el caso de uso.
func NewRecipeUseCase(repo repository.RecipeRepository, files FileStore) *RecipeUseCase {
	return &RecipeUseCase{repo: repo, files: files}
}

// Upload valida la extensión, guarda el archivo y crea el registro.
func (uc *RecipeUseCase) Upload(name string, file *multipart.FileHeader) (*dto.RecipeResponse, error) {
	if name == "" || file == nil || file.Filename == "" {
		return nil, domain.ErrInvalidInput
	}
	ext, ok := uc.files.Allowed(file.Filename)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	path, err := uc.files.Save(FileSubdirRecipes, file)
	if err != nil {
		return nil, err
	}
	recipe := &entity.Recipe{
		Name:       name,
		Filename:   file.Filename,
		FileType:   ext,
		FilePath:   path,
		UploadedAt: time.Now(),
	}
	if err := uc.repo.Create(recipe); err != nil {
		// No dejar archivos huérfanos si el registro no se pudo crear
		_ = uc.files.Remove(path)
		return nil, err
	}
	return toRecipeResponse(recipe), nil
}

// Download devuelve la ruta almacenada y el nombre original para descarga.
func (uc *RecipeUseCase) Download(id int64) (path, filename string, err error) {
	recipe, err := uc.repo.GetByID(id)
	if err != nil {
		return "", "", err
	}
	if recipe == nil {
		return "", "", domain.ErrNotFound
	}
	return recipe.FilePath, recipe.Filename, nil
}

// List lista todas las recetas.
func (uc *RecipeUseCase) List() ([]dto.RecipeResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.RecipeResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toRecipeResponse(r))
	}
	return items, nil
}

// Delete elimina el archivo físico y después el registro.
func (uc *RecipeUseCase) Delete(id int64) error {
	recipe, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if recipe == nil {
		return domain.ErrNotFound
	}
	if err := uc.files.Remove(recipe.FilePath); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func toRecipeResponse(r *entity.Recipe) *dto.RecipeResponse {
	if r == nil {
		return nil
	}
	return &dto.RecipeResponse{
		ID:         r.ID,
		Name:       r.Name,
		Filename:   r.Filename,
		FileType:   r.FileType,
		FilePath:   r.FilePath,
		UploadedAt: r.UploadedAt,
	}
}
