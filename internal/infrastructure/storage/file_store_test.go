package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cultivapp/cultivo-api/internal/infrastructure/storage"
)

func TestExtension_CatalogoDeAdmitidas(t *testing.T) {
	cases := []struct {
		filename string
		ext      string
		ok       bool
	}{
		{"receta.pdf", "pdf", true},
		{"FOTO.JPG", "jpg", true},
		{"notas.docx", "docx", true},
		{"script.exe", "exe", false},
		{"sin_extension", "", false},
		{"punto_final.", "", false},
	}
	for _, tc := range cases {
		ext, ok := storage.Extension(tc.filename)
		assert.Equal(t, tc.ok, ok, tc.filename)
		if tc.ok {
			assert.Equal(t, tc.ext, ext, tc.filename)
		}
	}
}

func TestNewFileStore_CreaSubdirectorios(t *testing.T) {
	dir := t.TempDir()
	fs, err := storage.NewFileStore(dir)
	assert.NoError(t, err)
	assert.Equal(t, dir, fs.BaseDir())
}

func TestRemove_AusenteNoEsError(t *testing.T) {
	fs, err := storage.NewFileStore(t.TempDir())
	assert.NoError(t, err)
	assert.NoError(t, fs.Remove("no/existe.pdf"))
}
