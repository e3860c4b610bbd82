package entity

import "time"

// Recipe es un documento de receta/manual subido por el usuario.
// FilePath apunta al archivo almacenado con nombre único en disco;
// Filename conserva el nombre original.
type Recipe struct {
	ID         int64
	Name       string
	Filename   string
	FileType   string
	FilePath   string
	UploadedAt time.Time
}

// RecipeImage es una fotografía asociada a recetas o cultivos.
type RecipeImage struct {
	ID         int64
	Title      string
	Filename   string
	FilePath   string
	Comment    string
	UploadedAt time.Time
}
