package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Subdirectorios de subida.
const (
	SubdirRecipes = "recipes"
	SubdirImages  = "images"
)

// allowedExtensions extensiones admitidas para recetas e imágenes.
var allowedExtensions = map[string]struct{}{
	"txt": {}, "pdf": {}, "png": {}, "jpg": {}, "jpeg": {},
	"gif": {}, "doc": {}, "docx": {}, "xls": {}, "xlsx": {},
}

// FileStore guarda los archivos subidos en disco bajo un directorio base,
// con nombre único (uuid) para evitar colisiones. La ruta relativa devuelta
// se persiste en el registro de la entidad.
type FileStore struct {
	baseDir string
}

// NewFileStore crea el almacén y asegura que existan los subdirectorios.
func NewFileStore(baseDir string) (*FileStore, error) {
	for _, sub := range []string{SubdirRecipes, SubdirImages} {
		if err := os.MkdirAll(filepath.Join(baseDir, sub), 0o755); err != nil {
			return nil, fmt.Errorf("crear directorio de subidas: %w", err)
		}
	}
	return &FileStore{baseDir: baseDir}, nil
}

// BaseDir devuelve el directorio base de subidas.
func (s *FileStore) BaseDir() string {
	return s.baseDir
}

// Allowed implementa el puerto de validación de extensión.
func (s *FileStore) Allowed(filename string) (string, bool) {
	return Extension(filename)
}

// Extension devuelve la extensión en minúsculas (sin punto) y si está admitida.
func Extension(filename string) (string, bool) {
	idx := strings.LastIndexByte(filename, '.')
	if idx < 0 || idx == len(filename)-1 {
		return "", false
	}
	ext := strings.ToLower(filename[idx+1:])
	_, ok := allowedExtensions[ext]
	return ext, ok
}

// Save copia el archivo multipart al subdirectorio indicado con nombre uuid
// y devuelve la ruta relativa almacenada (ej. uploads/recipes/<uuid>.pdf).
func (s *FileStore) Save(subdir string, file *multipart.FileHeader) (string, error) {
	ext, ok := Extension(file.Filename)
	if !ok {
		return "", fmt.Errorf("extensión no admitida: %s", file.Filename)
	}
	name := fmt.Sprintf("%s.%s", uuid.New().String(), ext)
	relPath := filepath.Join(s.baseDir, subdir, name)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("abrir archivo subido: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(relPath)
	if err != nil {
		return "", fmt.Errorf("crear archivo destino: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("guardar archivo: %w", err)
	}
	return relPath, nil
}

// Remove borra el archivo físico; la ausencia no es un error.
func (s *FileStore) Remove(relPath string) error {
	err := os.Remove(relPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("eliminar archivo: %w", err)
	}
	return nil
}
