package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restobar-api/internal/application/reorder"
	"github.com/jhoicas/Restobar-api/internal/domain/entity"
	"github.com/jhoicas/Restobar-api/internal/domain/repository"
	apphttp "github.com/jhoicas/Restobar-api/internal/interfaces/http"
)

// fakeReordenRepo inventario mínimo para los tests del handler.
type fakeReordenRepo struct {
	items    []entity.InventarioItem
	consumos map[string][]float64
}

func (f *fakeReordenRepo) ListarItems(_ context.Context) ([]entity.InventarioItem, error) {
	return f.items, nil
}

func (f *fakeReordenRepo) ObtenerItem(_ context.Context, itemID string) (*entity.InventarioItem, error) {
	for i := range f.items {
		if f.items[i].ID == itemID {
			return &f.items[i], nil
		}
	}
	return nil, nil
}

func (f *fakeReordenRepo) ConsumoDiario(_ context.Context, itemID string, desde, _ time.Time) ([]repository.ConsumoDiarioResult, error) {
	cantidades := f.consumos[itemID]
	puntos := make([]repository.ConsumoDiarioResult, 0, len(cantidades))
	for i, q := range cantidades {
		puntos = append(puntos, repository.ConsumoDiarioResult{
			Fecha:    desde.AddDate(0, 0, i+1),
			Cantidad: decimal.NewFromFloat(q),
		})
	}
	return puntos, nil
}

func (f *fakeReordenRepo) GuardarPuntoReorden(_ context.Context, _ string, _, _ decimal.Decimal, _ time.Time) error {
	return nil
}

func buildReordenApp() *fiber.App {
	repo := &fakeReordenRepo{
		items: []entity.InventarioItem{{
			ID:           "i1",
			Nombre:       "Aceite vegetal",
			Unidad:       "l",
			LeadTimeDias: decimal.NewFromInt(3),
		}},
		consumos: map[string][]float64{"i1": {4, 5, 6, 5, 4}},
	}
	uc := reorder.NewReordenUseCase(repo, reorder.Config{VentanaConsumoDias: 5})
	handler := apphttp.NewReordenHandler(uc)

	app := fiber.New()
	app.Get("/api/inventario/punto-reorden", handler.Calcular)
	app.Post("/api/inventario/punto-reorden", handler.ActualizarTodos)
	return app
}

func TestReordenHandler_Calcular(t *testing.T) {
	app := buildReordenApp()
	req := httptest.NewRequest(http.MethodGet, "/api/inventario/punto-reorden?inventarioItemId=i1", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var punto entity.PuntoReorden
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&punto))
	assert.Equal(t, "i1", punto.InventarioItemID)
	assert.Greater(t, punto.PuntoReorden, 0.0)
	assert.Equal(t, 0.95, punto.NivelServicio, "sin nivelServicio rige el default")
}

func TestReordenHandler_Calcular_ItemInexistente(t *testing.T) {
	app := buildReordenApp()
	req := httptest.NewRequest(http.MethodGet, "/api/inventario/punto-reorden?inventarioItemId=fantasma", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NOT_FOUND")
}

func TestReordenHandler_Calcular_NivelServicioCero(t *testing.T) {
	app := buildReordenApp()
	req := httptest.NewRequest(http.MethodGet, "/api/inventario/punto-reorden?inventarioItemId=i1&nivelServicio=0", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	// El 0 explícito no cae al default: es un valor fuera de (0,1)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "VALIDATION")
}

func TestReordenHandler_Calcular_SinItemID(t *testing.T) {
	app := buildReordenApp()
	req := httptest.NewRequest(http.MethodGet, "/api/inventario/punto-reorden", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestReordenHandler_ActualizarTodos_ExigeAccion(t *testing.T) {
	app := buildReordenApp()

	req := httptest.NewRequest(http.MethodPost, "/api/inventario/punto-reorden", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	req = httptest.NewRequest(http.MethodPost, "/api/inventario/punto-reorden?accion=actualizar-todos", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
