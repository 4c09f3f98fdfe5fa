package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restobar-api/internal/application/abc"
	"github.com/jhoicas/Restobar-api/internal/domain"
	"github.com/jhoicas/Restobar-api/internal/domain/entity"
	"github.com/jhoicas/Restobar-api/internal/domain/repository"
	apphttp "github.com/jhoicas/Restobar-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeVentasRepo struct {
	ventas []repository.VentaProductoResult
	err    error
}

func (f *fakeVentasRepo) VentasPorProducto(_ context.Context, _, _ time.Time) ([]repository.VentaProductoResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.ventas, nil
}

func (f *fakeVentasRepo) SerieDiariaProducto(_ context.Context, _ string, _, _ time.Time) ([]repository.VentaDiariaResult, error) {
	return nil, nil
}

func (f *fakeVentasRepo) ProductosActivos(_ context.Context) ([]string, error) { return nil, nil }

func (f *fakeVentasRepo) ExisteProducto(_ context.Context, _ string) (bool, error) {
	return true, nil
}

type fakePDFGenerator struct{}

func (f *fakePDFGenerator) GenerarReporteABCPDF(_ context.Context, _ *entity.ReporteABC) ([]byte, error) {
	return []byte("%PDF-1.7 fake"), nil
}

func buildABCApp(ventas []repository.VentaProductoResult) *fiber.App {
	repo := &fakeVentasRepo{ventas: ventas}
	handler := apphttp.NewABCHandler(abc.NewClasificadorABC(repo, 365), &fakePDFGenerator{})

	app := fiber.New()
	app.Get("/api/analytics/abc", handler.Clasificar)
	app.Get("/api/analytics/abc/reporte", handler.Reporte)
	app.Get("/api/analytics/abc/reporte/pdf", handler.ReportePDF)
	return app
}

func ventasDePrueba() []repository.VentaProductoResult {
	return []repository.VentaProductoResult{
		{ProductoID: "p1", NombreProducto: "Bandeja paisa", CantidadVendida: decimal.NewFromInt(40), Ingresos: decimal.NewFromInt(800)},
		{ProductoID: "p2", NombreProducto: "Ajiaco", CantidadVendida: decimal.NewFromInt(15), Ingresos: decimal.NewFromInt(150)},
		{ProductoID: "p3", NombreProducto: "Limonada", CantidadVendida: decimal.NewFromInt(50), Ingresos: decimal.NewFromInt(50)},
	}
}

func getABC(t *testing.T, app *fiber.App, target string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestABCHandler_Clasificar(t *testing.T) {
	app := buildABCApp(ventasDePrueba())
	resp := getABC(t, app, "/api/analytics/abc")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var clasificacion []entity.ClasificacionABC
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&clasificacion))
	require.Len(t, clasificacion, 3)
	assert.Equal(t, "p1", clasificacion[0].ProductoID)
	assert.Equal(t, entity.CategoriaA, clasificacion[0].Categoria)
	assert.Equal(t, entity.CategoriaC, clasificacion[2].Categoria)
}

func TestABCHandler_Clasificar_FiltraPorCategoria(t *testing.T) {
	app := buildABCApp(ventasDePrueba())
	resp := getABC(t, app, "/api/analytics/abc?categoria=B")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var clasificacion []entity.ClasificacionABC
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&clasificacion))
	require.Len(t, clasificacion, 1)
	assert.Equal(t, "p2", clasificacion[0].ProductoID)
}

func TestABCHandler_Clasificar_CategoriaInvalida(t *testing.T) {
	app := buildABCApp(ventasDePrueba())
	resp := getABC(t, app, "/api/analytics/abc?categoria=X")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "VALIDATION")
}

func TestABCHandler_Clasificar_FechaInvalida(t *testing.T) {
	app := buildABCApp(ventasDePrueba())
	resp := getABC(t, app, "/api/analytics/abc?fechaInicio=31-01-2026")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestABCHandler_Clasificar_FuenteInaccesible(t *testing.T) {
	// Una falla de la fuente de datos no es un 500 genérico: el historial existe
	// pero no se pudo consultar
	repo := &fakeVentasRepo{err: fmt.Errorf("ventas.VentasPorProducto: %w: conexión rechazada", domain.ErrDataUnavailable)}
	handler := apphttp.NewABCHandler(abc.NewClasificadorABC(repo, 365), &fakePDFGenerator{})

	app := fiber.New()
	app.Get("/api/analytics/abc", handler.Clasificar)

	resp := getABC(t, app, "/api/analytics/abc")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "DATA_UNAVAILABLE")
}

func TestABCHandler_Reporte(t *testing.T) {
	app := buildABCApp(ventasDePrueba())
	resp := getABC(t, app, "/api/analytics/abc/reporte?fechaInicio=2026-01-01&fechaFin=2026-01-31")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var reporte entity.ReporteABC
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&reporte))
	assert.Equal(t, 1, reporte.CategoriaA)
	assert.Equal(t, 1, reporte.CategoriaB)
	assert.Equal(t, 1, reporte.CategoriaC)
	assert.Equal(t, "2026-01-01", reporte.FechaInicio)
}

func TestABCHandler_ReportePDF(t *testing.T) {
	app := buildABCApp(ventasDePrueba())
	resp := getABC(t, app, "/api/analytics/abc/reporte/pdf")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "reporte-abc-")

	body, _ := io.ReadAll(resp.Body)
	assert.True(t, len(body) > 0)
}
