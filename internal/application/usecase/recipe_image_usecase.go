package usecase

import (
	"mime/multipart"
	"time"

	"github.com/cultivapp/cultivo-api/internal/application/dto"
	"github.com/cultivapp/cultivo-api/internal/domain"
	"github.com/cultivapp/cultivo-api/internal/domain/entity"
	"github.com/cultivapp/cultivo-api/internal/domain/repository"
)

// RecipeImageUseCase casos de uso para imágenes subidas.
type RecipeImageUseCase struct {
	repo  repository.RecipeImageRepository
	files FileStore
}

// NewRecipeImageUseCase construye el caso de uso.
func NewRecipeImageUseCase(repo repository.RecipeImageRepository, files FileStore) *RecipeImageUseCase {
	return &RecipeImageUseCase{repo: repo, files: files}
}

// Upload valida la extensión, guarda la imagen y crea el registro.
func (uc *RecipeImageUseCase) Upload(title, comment string, file *multipart.FileHeader) (*dto.RecipeImageResponse, error) {
	if title == "" || file == nil || file.Filename == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, ok := uc.files.Allowed(file.Filename); !ok {
		return nil, domain.ErrInvalidInput
	}
	path, err := uc.files.Save(FileSubdirImages, file)
	if err != nil {
		return nil, err
	}
	image := &entity.RecipeImage{
		Title:      title,
		Filename:   file.Filename,
		FilePath:   path,
		Comment:    comment,
		UploadedAt: time.Now(),
	}
	if err := uc.repo.Create(image); err != nil {
		_ = uc.files.Remove(path)
		return nil, err
	}
	return toRecipeImageResponse(image), nil
}

// Update actualiza título y comentario de una imagen.
func (uc *RecipeImageUseCase) Update(id int64, in dto.UpdateRecipeImageRequest) (*dto.RecipeImageResponse, error) {
	image, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if image == nil {
		return nil, nil
	}
	if in.Title != nil {
		image.Title = *in.Title
	}
	if in.Comment != nil {
		image.Comment = *in.Comment
	}
	if err := uc.repo.Update(image); err != nil {
		return nil, err
	}
	return toRecipeImageResponse(image), nil
}

// List lista todas las imágenes.
func (uc *RecipeImageUseCase) List() ([]dto.RecipeImageResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.RecipeImageResponse, 0, len(list))
	for _, img := range list {
		items = append(items, *toRecipeImageResponse(img))
	}
	return items, nil
}

// Delete elimina el archivo físico y después el registro.
func (uc *RecipeImageUseCase) Delete(id int64) error {
	image, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if image == nil {
		return domain.ErrNotFound
	}
	if err := uc.files.Remove(image.FilePath); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func toRecipeImageResponse(img *entity.RecipeImage) *dto.RecipeImageResponse {
	if img == nil {
		return nil
	}
	return &dto.RecipeImageResponse{
		ID:         img.ID,
		Title:      img.Title,
		Filename:   img.Filename,
		FilePath:   img.FilePath,
		Comment:    img.Comment,
		UploadedAt: img.UploadedAt,
	}
}
