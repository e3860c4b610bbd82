package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cultivapp/cultivo-api/internal/application/analytics"
	"github.com/cultivapp/cultivo-api/internal/application/export"
	"github.com/cultivapp/cultivo-api/internal/application/inventory"
	"github.com/cultivapp/cultivo-api/internal/application/lifecycle"
	"github.com/cultivapp/cultivo-api/internal/application/usecase"
	"github.com/cultivapp/cultivo-api/internal/infrastructure/memory"
	"github.com/cultivapp/cultivo-api/internal/infrastructure/storage"
	apphttp "github.com/cultivapp/cultivo-api/internal/interfaces/http"
)

// buildTestApp arma la aplicación completa sobre el almacén en memoria y un
// directorio de subidas temporal.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()

	store := memory.NewStore()
	productRepo := memory.NewProductRepository(store)
	locationRepo := memory.NewLocationRepository(store)
	stageRepo := memory.NewStageRepository(store)
	substageRepo := memory.NewSubstageRepository(store)
	movementRepo := memory.NewMovementRepository(store)
	postitRepo := memory.NewPostitRepository(store)
	recipeRepo := memory.NewRecipeRepository(store)
	recipeImageRepo := memory.NewRecipeImageRepository(store)
	responsibleRepo := memory.NewResponsibleRepository(store)

	files, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:     usecase.NewProductUseCase(productRepo),
		LocationUC:    usecase.NewLocationUseCase(locationRepo, stageRepo),
		StageUC:       lifecycle.NewStageUseCase(stageRepo, substageRepo, locationRepo, movementRepo, productRepo),
		SubstageUC:    lifecycle.NewSubstageUseCase(substageRepo, stageRepo),
		MovementUC:    inventory.NewMovementUseCase(movementRepo, productRepo, stageRepo, substageRepo, locationRepo),
		PostitUC:      usecase.NewPostitUseCase(postitRepo),
		RecipeUC:      usecase.NewRecipeUseCase(recipeRepo, files),
		RecipeImageUC: usecase.NewRecipeImageUseCase(recipeImageRepo, files),
		ResponsibleUC: usecase.NewResponsibleUseCase(responsibleRepo, locationRepo),
		DashboardUC:   analytics.NewDashboardUseCase(productRepo, stageRepo, locationRepo, movementRepo),
		ChartsUC:      analytics.NewChartsUseCase(productRepo, stageRepo, substageRepo, locationRepo, movementRepo),
		ExportUC: export.NewExportUseCase(
			productRepo, locationRepo, stageRepo, substageRepo, movementRepo,
			postitRepo, recipeRepo, recipeImageRepo, responsibleRepo,
		),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestProductos_CrearYListar(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/productos", map[string]interface{}{
		"name":          "Fertilizante",
		"unit":          "kg",
		"initial_stock": "10",
		"current_stock": "10",
		"min_stock":     "2",
		"price":         "15.50",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode(t, resp)
	assert.Equal(t, "Fertilizante", created["name"])

	resp = doJSON(t, app, http.MethodGet, "/api/productos", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var list []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 1)
}

func TestProductos_ObtenerPorID(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/productos", map[string]interface{}{
		"name": "Fertilizante",
		"unit": "kg",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode(t, resp)

	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/productos/%v", created["id"]), nil)
	got := decode(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Fertilizante", got["name"])

	resp = doJSON(t, app, http.MethodGet, "/api/productos/99", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLocaciones_ObtenerPorID(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/locaciones", map[string]interface{}{
		"name": "Invernadero 1",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode(t, resp)

	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/locaciones/%v", created["id"]), nil)
	got := decode(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Invernadero 1", got["name"])

	resp = doJSON(t, app, http.MethodGet, "/api/locaciones/99", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProductos_UnidadInvalida_Retorna400(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/productos", map[string]interface{}{
		"name": "Fertilizante",
		"unit": "galones",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMovimientos_StockInsuficiente_Retorna400(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/productos", map[string]interface{}{
		"name":          "Sustrato",
		"unit":          "kg",
		"current_stock": "3",
		"min_stock":     "1",
		"price":         "2",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode(t, resp)
	productID := created["id"]

	resp = doJSON(t, app, http.MethodPost, "/api/movimientos", map[string]interface{}{
		"type":        "uso",
		"responsible": "Ana",
		"products": []map[string]interface{}{
			{"product_id": productID, "quantity": "5"},
		},
	})
	body := decode(t, resp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_STOCK", body["code"])
}

func TestMovimientos_TipoInvalido_Retorna400(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/movimientos", map[string]interface{}{
		"type":        "venta",
		"responsible": "Ana",
		"products": []map[string]interface{}{
			{"product_id": 1, "quantity": "1"},
		},
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestEtapas_DobleInicio_Retorna400(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/etapas", map[string]interface{}{
		"name":              "Germinación",
		"expected_duration": 10,
		"responsible":       "Ana",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode(t, resp)
	path := fmt.Sprintf("/api/etapas/%v/iniciar", created["id"])

	resp = doJSON(t, app, http.MethodPost, path, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, path, nil)
	body := decode(t, resp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "CONFLICT", body["code"])
}

func TestEtapas_ActualizarInexistente_Retorna404(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPut, "/api/etapas/99", map[string]interface{}{
		"name": "Nada",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDashboard_Responde(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/dashboard", nil)
	body := decode(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "total_products")
	assert.Contains(t, body, "low_stock_alerts")
}

func TestGraficos_ConsumoProducto_Responde(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/graficos/consumo-producto", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestExportarExcel_DescargaAdjunto(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/exportar-excel", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "inventario_cultivo_")
}

func TestPostits_CicloCompleto(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/postits", map[string]interface{}{
		"title":   "Riego",
		"content": "revisar goteo del sector 2",
	})
	created := decode(t, resp)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "#ffeb3b", created["color"], "color por defecto")

	path := fmt.Sprintf("/api/postits/%v", created["id"])
	resp = doJSON(t, app, http.MethodDelete, path, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
