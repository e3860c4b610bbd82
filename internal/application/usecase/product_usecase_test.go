package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cultivapp/cultivo-api/internal/application/dto"
	"github.com/cultivapp/cultivo-api/internal/application/usecase"
	"github.com/cultivapp/cultivo-api/internal/domain"
	"github.com/cultivapp/cultivo-api/internal/infrastructure/memory"
)

func newProductUC() *usecase.ProductUseCase {
	return usecase.NewProductUseCase(memory.NewProductRepository(memory.NewStore()))
}

func TestProductCreate_UnidadFueraDeCatalogo_Rechaza(t *testing.T) {
	uc := newProductUC()
	_, err := uc.Create(dto.CreateProductRequest{Name: "Fertilizante", Unit: "galones"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_ConStock(t *testing.T) {
	uc := newProductUC()
	out, err := uc.Create(dto.CreateProductRequest{
		Name:         "Fertilizante",
		Unit:         "kg",
		InitialStock: decimal.NewFromInt(10),
		CurrentStock: decimal.NewFromInt(10),
		MinStock:     decimal.NewFromInt(2),
		Price:        decimal.NewFromFloat(15.50),
	})
	require.NoError(t, err)
	assert.True(t, out.HasStock, "has_stock por defecto es true")
	assert.True(t, out.CurrentStock.Equal(decimal.NewFromInt(10)))
}

// Un producto sensor guarda current_value como lectura y no arrastra campos
// de stock.
func TestProductCreate_Sensor(t *testing.T) {
	uc := newProductUC()
	noStock := false
	out, err := uc.Create(dto.CreateProductRequest{
		Name:         "pH del agua",
		Unit:         "pH",
		HasStock:     &noStock,
		CurrentValue: decimal.NewFromFloat(6.5),
		InitialStock: decimal.NewFromInt(100), // debe ignorarse
	})
	require.NoError(t, err)
	assert.False(t, out.HasStock)
	assert.True(t, out.CurrentStock.Equal(decimal.NewFromFloat(6.5)))
	assert.True(t, out.InitialStock.IsZero())
}

// Apagar has_stock en una edición pone a cero los stocks de referencia.
func TestProductUpdate_ApagarStockCeraReferencias(t *testing.T) {
	uc := newProductUC()
	created, err := uc.Create(dto.CreateProductRequest{
		Name:         "EC del agua",
		Unit:         "EC",
		InitialStock: decimal.NewFromInt(5),
		CurrentStock: decimal.NewFromInt(5),
		MinStock:     decimal.NewFromInt(1),
	})
	require.NoError(t, err)

	noStock := false
	reading := decimal.NewFromFloat(1.8)
	out, err := uc.Update(created.ID, dto.UpdateProductRequest{
		HasStock:     &noStock,
		CurrentValue: &reading,
	})
	require.NoError(t, err)
	assert.False(t, out.HasStock)
	assert.True(t, out.CurrentStock.Equal(reading))
	assert.True(t, out.InitialStock.IsZero())
	assert.True(t, out.MinStock.IsZero())
}

func TestProductUpdate_Inexistente_DevuelveNil(t *testing.T) {
	uc := newProductUC()
	name := "x"
	out, err := uc.Update(42, dto.UpdateProductRequest{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestProductDelete_Inexistente(t *testing.T) {
	uc := newProductUC()
	assert.ErrorIs(t, uc.Delete(42), domain.ErrNotFound)
}
