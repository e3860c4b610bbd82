package lifecycle

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cultivapp/cultivo-api/internal/application/dto"
	"github.com/cultivapp/cultivo-api/internal/domain"
	"github.com/cultivapp/cultivo-api/internal/domain/entity"
	"github.com/cultivapp/cultivo-api/internal/infrastructure/memory"
)

// Los tests viven dentro del paquete para poder fijar el reloj del caso de
// uso y verificar duraciones deterministas.

type stageEnv struct {
	uc        *StageUseCase
	store     *memory.Store
	locations *memory.LocationRepository
	substages *memory.SubstageRepository
	movements *memory.MovementRepository
	products  *memory.ProductRepository
}

func newStageEnv() *stageEnv {
	store := memory.NewStore()
	locations := memory.NewLocationRepository(store)
	substages := memory.NewSubstageRepository(store)
	movements := memory.NewMovementRepository(store)
	products := memory.NewProductRepository(store)
	uc := NewStageUseCase(memory.NewStageRepository(store), substages, locations, movements, products)
	return &stageEnv{uc: uc, store: store, locations: locations, substages: substages, movements: movements, products: products}
}

func (e *stageEnv) addLocation(t *testing.T, name string) *entity.Location {
	t.Helper()
	l := &entity.Location{Name: name, CreatedAt: time.Now()}
	require.NoError(t, e.locations.Create(l))
	return l
}

func (e *stageEnv) createStage(t *testing.T, name string, locationID *int64) *dto.StageResponse {
	t.Helper()
	out, err := e.uc.Create(dto.CreateStageRequest{
		Name:             name,
		ExpectedDuration: 10,
		Responsible:      "Ana",
		LocationID:       locationID,
	})
	require.NoError(t, err)
	return out
}

func TestStageCreate_NacePendingSinTiempos(t *testing.T) {
	env := newStageEnv()
	out := env.createStage(t, "Germinación", nil)

	assert.Equal(t, entity.StatusPending, out.Status)
	assert.Nil(t, out.StartTime)
	assert.Nil(t, out.EndTime)
	assert.Nil(t, out.ActualDuration)
	assert.False(t, out.IsCompleted)
}

func TestStageCreate_LocacionInexistente_Rechaza(t *testing.T) {
	env := newStageEnv()
	missing := int64(99)
	_, err := env.uc.Create(dto.CreateStageRequest{
		Name:             "Germinación",
		ExpectedDuration: 10,
		Responsible:      "Ana",
		LocationID:       &missing,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Dos etapas pueden compartir locación al crearse; la exclusividad solo se
// exige al editar.
func TestStageCreate_PermiteLocacionCompartida(t *testing.T) {
	env := newStageEnv()
	loc := env.addLocation(t, "Invernadero 1")

	env.createStage(t, "Germinación", &loc.ID)
	out := env.createStage(t, "Vegetativo", &loc.ID)
	assert.NotNil(t, out)
}

func TestStageUpdate_LocacionOcupada_Conflicto(t *testing.T) {
	env := newStageEnv()
	loc := env.addLocation(t, "Invernadero 1")

	env.createStage(t, "Germinación", &loc.ID)
	other := env.createStage(t, "Vegetativo", nil)

	_, err := env.uc.Update(other.ID, dto.UpdateStageRequest{LocationID: &loc.ID})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestStageUpdate_ClearLocation(t *testing.T) {
	env := newStageEnv()
	loc := env.addLocation(t, "Invernadero 1")
	created := env.createStage(t, "Germinación", &loc.ID)

	out, err := env.uc.Update(created.ID, dto.UpdateStageRequest{ClearLocation: true})
	require.NoError(t, err)
	assert.Nil(t, out.LocationID)
}

func TestStageStart_FijaInicioYEstado(t *testing.T) {
	env := newStageEnv()
	created := env.createStage(t, "Germinación", nil)

	out, err := env.uc.Start(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInProgress, out.Status)
	require.NotNil(t, out.StartTime)
}

func TestStageStart_DobleInicio_Conflicto(t *testing.T) {
	env := newStageEnv()
	created := env.createStage(t, "Germinación", nil)

	_, err := env.uc.Start(created.ID)
	require.NoError(t, err)
	_, err = env.uc.Start(created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestStageFinish_SinIniciar_Conflicto(t *testing.T) {
	env := newStageEnv()
	created := env.createStage(t, "Germinación", nil)

	_, err := env.uc.Finish(created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// La duración real se calcula en días completos entre inicio y fin.
func TestStageFinish_DuracionEnDiasCompletos(t *testing.T) {
	env := newStageEnv()
	created := env.createStage(t, "Germinación", nil)

	start := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	env.uc.now = func() time.Time { return start }
	_, err := env.uc.Start(created.ID)
	require.NoError(t, err)

	// 2 días y medio después: se truncan a 2
	env.uc.now = func() time.Time { return start.Add(60 * time.Hour) }
	out, err := env.uc.Finish(created.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.StatusCompleted, out.Status)
	require.NotNil(t, out.ActualDuration)
	assert.Equal(t, 2, *out.ActualDuration)
}

func TestStageComplete_MarcaCicloCerrado(t *testing.T) {
	env := newStageEnv()
	created := env.createStage(t, "Germinación", nil)

	out, err := env.uc.Complete(created.ID)
	require.NoError(t, err)
	assert.True(t, out.IsCompleted)
	assert.Equal(t, entity.StatusCompleted, out.Status)
	assert.NotNil(t, out.EndTime)
}

// Reiniciar clona los campos estáticos en un registro pending nuevo con
// referencia a la etapa original; la historia queda intacta.
func TestStageRestart_ClonaEnNuevoCiclo(t *testing.T) {
	env := newStageEnv()
	loc := env.addLocation(t, "Invernadero 1")
	created := env.createStage(t, "Germinación", &loc.ID)
	_, err := env.uc.Complete(created.ID)
	require.NoError(t, err)

	clone, err := env.uc.Restart(created.ID, dto.RestartStageRequest{})
	require.NoError(t, err)

	assert.NotEqual(t, created.ID, clone.ID)
	assert.Equal(t, created.Name, clone.Name)
	assert.Equal(t, entity.StatusPending, clone.Status)
	assert.Nil(t, clone.StartTime)
	require.NotNil(t, clone.ParentStageID)
	assert.Equal(t, created.ID, *clone.ParentStageID)
	assert.Equal(t, "Germinación - Ciclo 2", clone.CycleName,
		"sin nombre explícito, el ciclo se nombra con el ID del clon")

	original, err := env.uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.True(t, original.IsCompleted, "la etapa original no debe modificarse")
}

func TestStageDelete_ConSubEtapas_Rechaza(t *testing.T) {
	env := newStageEnv()
	created := env.createStage(t, "Germinación", nil)
	require.NoError(t, env.substages.Create(&entity.Substage{
		Name: "Remojo", StageID: created.ID, Status: entity.StatusPending,
	}))

	assert.ErrorIs(t, env.uc.Delete(created.ID), domain.ErrHasDependents)
}

func TestStageSummary_ExigeCicloCompletado(t *testing.T) {
	env := newStageEnv()
	created := env.createStage(t, "Germinación", nil)

	_, err := env.uc.Summary(created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// El resumen agrega el consumo por producto dentro de cada sub-etapa y
// calcula los totales con el precio vigente.
func TestStageSummary_AgregaConsumoPorSubEtapa(t *testing.T) {
	env := newStageEnv()
	created := env.createStage(t, "Germinación", nil)
	_, err := env.uc.Complete(created.ID)
	require.NoError(t, err)

	substage := &entity.Substage{Name: "Remojo", StageID: created.ID, Status: entity.StatusCompleted}
	require.NoError(t, env.substages.Create(substage))

	product := &entity.Product{Name: "Fertilizante", Unit: "kg", Price: decimal.NewFromInt(3), HasStock: true}
	require.NoError(t, env.products.Create(product))

	require.NoError(t, env.movements.Create(&entity.Movement{
		Type:       entity.MovementTypeUso,
		StageID:    &created.ID,
		SubstageID: &substage.ID,
		Items: []entity.MovementItem{
			{ProductID: product.ID, Quantity: decimal.NewFromInt(2), Unit: "kg"},
			{ProductID: product.ID, Quantity: decimal.NewFromInt(3), Unit: "kg"},
		},
	}))

	summary, err := env.uc.Summary(created.ID)
	require.NoError(t, err)

	perProduct, ok := summary.ConsumptionBySubstage["Remojo"]
	require.True(t, ok, "la sub-etapa debe aparecer en el resumen")
	acc := perProduct["Fertilizante"]
	assert.True(t, acc.Quantity.Equal(decimal.NewFromInt(5)))
	assert.True(t, acc.Cost.Equal(decimal.NewFromInt(15)), "costo = 5 × 3")
	assert.True(t, summary.Totals.TotalQuantity.Equal(decimal.NewFromInt(5)))
	assert.True(t, summary.Totals.TotalCost.Equal(decimal.NewFromInt(15)))
}
