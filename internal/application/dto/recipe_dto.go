package dto

import "time"

// RecipeResponse representación HTTP de un documento de receta.
type RecipeResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Filename   string    `json:"filename"`
	FileType   string    `json:"file_type"`
	FilePath   string    `json:"file_path"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// UpdateRecipeImageRequest campos mutables de una imagen.
type UpdateRecipeImageRequest struct {
	Title   *string `json:"title"`
	Comment *string `json:"comment"`
}

// RecipeImageResponse representación HTTP de una imagen.
type RecipeImageResponse struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Filename   string    `json:"filename"`
	FilePath   string    `json:"file_path"`
	Comment    string    `json:"comment"`
	UploadedAt time.Time `json:"uploaded_at"`
}
