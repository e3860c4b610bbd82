package usecase

import (
	"time"

	"github.com/cultivapp/cultivo-api/internal/application/dto"
	"github.com/cultivapp/cultivo-api/internal/domain"
	"github.com/cultivapp/cultivo-api/internal/domain/entity"
	"github.com/cultivapp/cultivo-api/internal/domain/repository"
)

const defaultPostitColor = "#ffeb3b"

// PostitUseCase casos de uso CRUD para notas del tablero.
type PostitUseCase struct {
	repo repository.PostitRepository
}

// NewPostitUseCase construye el caso de uso.
func NewPostitUseCase(repo repository.PostitRepository) *PostitUseCase {
	return &PostitUseCase{repo: repo}
}

// Create crea una nota.
func (uc *PostitUseCase) Create(in dto.CreatePostitRequest) (*dto.PostitResponse, error) {
	color := in.Color
	if color == "" {
		color = defaultPostitColor
	}
	now := time.Now()
	postit := &entity.Postit{
		Title:     in.Title,
		Content:   in.Content,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(postit); err != nil {
		return nil, err
	}
	return toPostitResponse(postit), nil
}

// Update actualiza una nota y refresca updated_at.
func (uc *PostitUseCase) Update(id int64, in dto.UpdatePostitRequest) (*dto.PostitResponse, error) {
	postit, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if postit == nil {
		return nil, nil
	}
	if in.Title != nil {
		postit.Title = *in.Title
	}
	if in.Content != nil {
		postit.Content = *in.Content
	}
	if in.Color != nil {
		postit.Color = *in.Color
	}
	postit.UpdatedAt = time.Now()
	if err := uc.repo.Update(postit); err != nil {
		return nil, err
	}
	return toPostitResponse(postit), nil
}

// List lista todas las notas.
func (uc *PostitUseCase) List() ([]dto.PostitResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.PostitResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPostitResponse(p))
	}
	return items, nil
}

// Delete elimina una nota por ID.
func (uc *PostitUseCase) Delete(id int64) error {
	postit, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if postit == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toPostitResponse(p *entity.Postit) *dto.PostitResponse {
	if p == nil {
		return nil
	}
	return &dto.PostitResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Color:     p.Color,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
