package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cultivapp/cultivo-api/internal/domain"
	"github.com/cultivapp/cultivo-api/internal/domain/entity"
	"github.com/cultivapp/cultivo-api/internal/infrastructure/memory"
)

func TestProductRepository_IDsSecuenciales(t *testing.T) {
	repo := memory.NewProductRepository(memory.NewStore())

	a := &entity.Product{Name: "A"}
	b := &entity.Product{Name: "B"}
	require.NoError(t, repo.Create(a))
	require.NoError(t, repo.Create(b))

	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)
}

// GetByID entrega una copia: mutarla no afecta al registro almacenado.
func TestProductRepository_GetDevuelveCopia(t *testing.T) {
	repo := memory.NewProductRepository(memory.NewStore())
	p := &entity.Product{Name: "Original"}
	require.NoError(t, repo.Create(p))

	got, err := repo.GetByID(p.ID)
	require.NoError(t, err)
	got.Name = "Mutado"

	again, err := repo.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original", again.Name)
}

func TestProductRepository_AusenteDevuelveNilNil(t *testing.T) {
	repo := memory.NewProductRepository(memory.NewStore())
	got, err := repo.GetByID(42)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProductRepository_ListOrdenadaPorID(t *testing.T) {
	repo := memory.NewProductRepository(memory.NewStore())
	for _, name := range []string{"C", "A", "B"} {
		require.NoError(t, repo.Create(&entity.Product{Name: name}))
	}

	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"C", "A", "B"}, []string{list[0].Name, list[1].Name, list[2].Name},
		"el orden es el de inserción (ID ascendente)")
}

func TestProductRepository_UpdateInexistente(t *testing.T) {
	repo := memory.NewProductRepository(memory.NewStore())
	err := repo.Update(&entity.Product{ID: 42, Name: "Nada"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStageRepository_ListByLocation(t *testing.T) {
	store := memory.NewStore()
	repo := memory.NewStageRepository(store)

	locA, locB := int64(1), int64(2)
	require.NoError(t, repo.Create(&entity.Stage{Name: "En A", LocationID: &locA}))
	require.NoError(t, repo.Create(&entity.Stage{Name: "En B", LocationID: &locB}))
	require.NoError(t, repo.Create(&entity.Stage{Name: "Sin locación"}))

	inA, err := repo.ListByLocation(locA)
	require.NoError(t, err)
	require.Len(t, inA, 1)
	assert.Equal(t, "En A", inA[0].Name)
}

func TestSubstageRepository_ListByStage(t *testing.T) {
	store := memory.NewStore()
	repo := memory.NewSubstageRepository(store)

	require.NoError(t, repo.Create(&entity.Substage{Name: "Remojo", StageID: 1}))
	require.NoError(t, repo.Create(&entity.Substage{Name: "Riego", StageID: 2}))

	got, err := repo.ListByStage(1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Remojo", got[0].Name)
}
