package excel_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cultivapp/cultivo-api/internal/domain/entity"
	"github.com/cultivapp/cultivo-api/internal/infrastructure/excel"
)

var expectedSheets = []string{
	"Productos", "Locaciones", "Etapas", "Sub-etapas", "Movimientos",
	"Post-it", "Recetas", "Imagenes", "Responsables",
}

func TestBuildWorkbook_UnaHojaPorTabla(t *testing.T) {
	f, err := excel.BuildWorkbook(excel.Snapshot{})
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.ElementsMatch(t, expectedSheets, sheets,
		"el libro debe tener exactamente una hoja por tipo de entidad, sin Sheet1")
}

func TestBuildWorkbook_EscribeEncabezadosYFilas(t *testing.T) {
	s := excel.Snapshot{
		Products: []*entity.Product{
			{
				ID:           1,
				Name:         "Fertilizante",
				Unit:         "kg",
				CurrentStock: decimal.NewFromInt(10),
				Price:        decimal.NewFromFloat(15.50),
				HasStock:     true,
				CreatedAt:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			},
		},
	}
	f, err := excel.BuildWorkbook(s)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Productos", "B1")
	require.NoError(t, err)
	assert.Equal(t, "name", header)

	name, err := f.GetCellValue("Productos", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Fertilizante", name)
}

func TestBuildWorkbook_MovimientoConLineas(t *testing.T) {
	stageID := int64(3)
	s := excel.Snapshot{
		Movements: []*entity.Movement{
			{
				ID:   1,
				Date: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
				Type: entity.MovementTypeUso,
				Items: []entity.MovementItem{
					{ProductID: 1, Quantity: decimal.NewFromInt(2), Unit: "kg"},
					{ProductID: 2, Quantity: decimal.NewFromInt(5), Unit: "l"},
				},
				StageID: &stageID,
				Cost:    decimal.NewFromInt(20),
			},
		},
	}
	f, err := excel.BuildWorkbook(s)
	require.NoError(t, err)
	defer f.Close()

	items, err := f.GetCellValue("Movimientos", "D2")
	require.NoError(t, err)
	assert.Equal(t, "1: 2 kg; 2: 5 l", items, "las líneas se serializan en una celda")
}
