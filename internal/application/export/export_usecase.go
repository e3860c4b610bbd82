package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/cultivapp/cultivo-api/internal/domain/repository"
	"github.com/cultivapp/cultivo-api/internal/infrastructure/excel"
)

// ExportUseCase arma la instantánea completa del inventario y la convierte
// en un libro de Excel descargable.
type ExportUseCase struct {
	productRepo     repository.ProductRepository
	locationRepo    repository.LocationRepository
	stageRepo       repository.StageRepository
	substageRepo    repository.SubstageRepository
	movementRepo    repository.MovementRepository
	postitRepo      repository.PostitRepository
	recipeRepo      repository.RecipeRepository
	recipeImageRepo repository.RecipeImageRepository
	responsibleRepo repository.ResponsibleRepository
	now             func() time.Time
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
	stageRepo repository.StageRepository,
	substageRepo repository.SubstageRepository,
	movementRepo repository.MovementRepository,
	postitRepo repository.PostitRepository,
	recipeRepo repository.RecipeRepository,
	recipeImageRepo repository.RecipeImageRepository,
	responsibleRepo repository.ResponsibleRepository,
) *ExportUseCase {
	return &ExportUseCase{
		productRepo:     productRepo,
		locationRepo:    locationRepo,
		stageRepo:       stageRepo,
		substageRepo:    substageRepo,
		movementRepo:    movementRepo,
		postitRepo:      postitRepo,
		recipeRepo:      recipeRepo,
		recipeImageRepo: recipeImageRepo,
		responsibleRepo: responsibleRepo,
		now:             time.Now,
	}
}

// Workbook genera el libro con una hoja por tabla y el nombre de archivo
// con marca de tiempo para la descarga.
func (uc *ExportUseCase) Workbook() (*excelize.File, string, error) {
	var s excel.Snapshot
	var err error

	if s.Products, err = uc.productRepo.List(); err != nil {
		return nil, "", err
	}
	if s.Locations, err = uc.locationRepo.List(); err != nil {
		return nil, "", err
	}
	if s.Stages, err = uc.stageRepo.List(); err != nil {
		return nil, "", err
	}
	if s.Substages, err = uc.substageRepo.List(); err != nil {
		return nil, "", err
	}
	if s.Movements, err = uc.movementRepo.List(); err != nil {
		return nil, "", err
	}
	if s.Postits, err = uc.postitRepo.List(); err != nil {
		return nil, "", err
	}
	if s.Recipes, err = uc.recipeRepo.List(); err != nil {
		return nil, "", err
	}
	if s.RecipeImages, err = uc.recipeImageRepo.List(); err != nil {
		return nil, "", err
	}
	if s.Responsibles, err = uc.responsibleRepo.List(); err != nil {
		return nil, "", err
	}

	f, err := excel.BuildWorkbook(s)
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("inventario_cultivo_%s.xlsx", uc.now().Format("20060102_150405"))
	return f, filename, nil
}
