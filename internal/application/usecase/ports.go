package usecase

import "mime/multipart"

// FileStore puerto de almacenamiento de archivos subidos (recetas e imágenes).
type FileStore interface {
	// Allowed devuelve la extensión normalizada y si está admitida.
	Allowed(filename string) (string, bool)
	// Save guarda el archivo con nombre único y devuelve la ruta almacenada.
	Save(subdir string, file *multipart.FileHeader) (string, error)
	// Remove borra el archivo físico; la ausencia no es un error.
	Remove(relPath string) error
}

// Subdirectorios de subida esperados por los casos de uso.
const (
	FileSubdirRecipes = "recipes"
	FileSubdirImages  = "images"
)
