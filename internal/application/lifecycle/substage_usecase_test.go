package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cultivapp/cultivo-api/internal/application/dto"
	"github.com/cultivapp/cultivo-api/internal/domain"
	"github.com/cultivapp/cultivo-api/internal/domain/entity"
	"github.com/cultivapp/cultivo-api/internal/infrastructure/memory"
)

type substageEnv struct {
	uc     *SubstageUseCase
	stages *StageUseCase
}

func newSubstageEnv() *substageEnv {
	store := memory.NewStore()
	stageRepo := memory.NewStageRepository(store)
	substageRepo := memory.NewSubstageRepository(store)
	stages := NewStageUseCase(
		stageRepo, substageRepo,
		memory.NewLocationRepository(store),
		memory.NewMovementRepository(store),
		memory.NewProductRepository(store),
	)
	return &substageEnv{uc: NewSubstageUseCase(substageRepo, stageRepo), stages: stages}
}

func (e *substageEnv) addStage(t *testing.T) *dto.StageResponse {
	t.Helper()
	out, err := e.stages.Create(dto.CreateStageRequest{
		Name:             "Germinación",
		ExpectedDuration: 10,
		Responsible:      "Ana",
	})
	require.NoError(t, err)
	return out
}

func (e *substageEnv) addSubstage(t *testing.T, stageID int64, name string) *dto.SubstageResponse {
	t.Helper()
	out, err := e.uc.Create(dto.CreateSubstageRequest{
		Name:             name,
		StageID:          stageID,
		ExpectedDuration: 3,
		Responsible:      "Ana",
	})
	require.NoError(t, err)
	return out
}

func TestSubstageCreate_EtapaInexistente_Rechaza(t *testing.T) {
	env := newSubstageEnv()
	_, err := env.uc.Create(dto.CreateSubstageRequest{
		Name:             "Remojo",
		StageID:          99,
		ExpectedDuration: 3,
		Responsible:      "Ana",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Una etapa con una sub-etapa in_progress no admite sub-etapas nuevas hasta
// que la activa termine.
func TestSubstageCreate_ExclusividadDeActiva(t *testing.T) {
	env := newSubstageEnv()
	stage := env.addStage(t)

	first := env.addSubstage(t, stage.ID, "Remojo")
	_, err := env.uc.Start(first.ID)
	require.NoError(t, err)

	_, err = env.uc.Create(dto.CreateSubstageRequest{
		Name:             "Siembra",
		StageID:          stage.ID,
		ExpectedDuration: 3,
		Responsible:      "Ana",
	})
	assert.ErrorIs(t, err, domain.ErrConflict)

	// Al finalizar la activa, la creación vuelve a permitirse
	_, err = env.uc.Finish(first.ID)
	require.NoError(t, err)
	out := env.addSubstage(t, stage.ID, "Siembra")
	assert.Equal(t, entity.StatusPending, out.Status)
}

func TestSubstageStart_DobleInicio_Conflicto(t *testing.T) {
	env := newSubstageEnv()
	stage := env.addStage(t)
	ss := env.addSubstage(t, stage.ID, "Remojo")

	_, err := env.uc.Start(ss.ID)
	require.NoError(t, err)
	_, err = env.uc.Start(ss.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestSubstageFinish_DuracionEnDiasCompletos(t *testing.T) {
	env := newSubstageEnv()
	stage := env.addStage(t)
	ss := env.addSubstage(t, stage.ID, "Remojo")

	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	env.uc.now = func() time.Time { return start }
	_, err := env.uc.Start(ss.ID)
	require.NoError(t, err)

	env.uc.now = func() time.Time { return start.Add(49 * time.Hour) }
	out, err := env.uc.Finish(ss.ID)
	require.NoError(t, err)

	require.NotNil(t, out.ActualDuration)
	assert.Equal(t, 2, *out.ActualDuration)
	assert.Equal(t, entity.StatusCompleted, out.Status)
}

func TestSubstageList_ResuelveNombreDeEtapa(t *testing.T) {
	env := newSubstageEnv()
	stage := env.addStage(t)
	env.addSubstage(t, stage.ID, "Remojo")

	list, err := env.uc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Germinación", list[0].StageName)
}

func TestSubstageUpdate_CambioDeEtapaValidaExistencia(t *testing.T) {
	env := newSubstageEnv()
	stage := env.addStage(t)
	ss := env.addSubstage(t, stage.ID, "Remojo")

	missing := int64(99)
	_, err := env.uc.Update(ss.ID, dto.UpdateSubstageRequest{StageID: &missing})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
