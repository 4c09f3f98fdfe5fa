package abc_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restobar-api/internal/application/abc"
	"github.com/jhoicas/Restobar-api/internal/domain"
	"github.com/jhoicas/Restobar-api/internal/domain/entity"
	"github.com/jhoicas/Restobar-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del repositorio de historial de ventas
// ──────────────────────────────────────────────────────────────────────────────

type fakeVentasRepo struct {
	ventas []repository.VentaProductoResult
}

func (f *fakeVentasRepo) VentasPorProducto(_ context.Context, _, _ time.Time) ([]repository.VentaProductoResult, error) {
	return f.ventas, nil
}

func (f *fakeVentasRepo) SerieDiariaProducto(_ context.Context, _ string, _, _ time.Time) ([]repository.VentaDiariaResult, error) {
	return nil, nil
}

func (f *fakeVentasRepo) ProductosActivos(_ context.Context) ([]string, error) { return nil, nil }

func (f *fakeVentasRepo) ExisteProducto(_ context.Context, _ string) (bool, error) {
	return true, nil
}

func venta(id, nombre string, cantidad, ingresos int64) repository.VentaProductoResult {
	return repository.VentaProductoResult{
		ProductoID:      id,
		NombreProducto:  nombre,
		CantidadVendida: decimal.NewFromInt(cantidad),
		Ingresos:        decimal.NewFromInt(ingresos),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Clasificación
// ──────────────────────────────────────────────────────────────────────────────

// Ejemplo de referencia: ingresos 800/150/50 sobre un total de 1000 caen
// exactamente en los cortes 80/95/100, y los límites cerrados asignan A/B/C.
func TestClasificar_EjemploReferencia(t *testing.T) {
	repo := &fakeVentasRepo{ventas: []repository.VentaProductoResult{
		venta("p3", "Limonada", 50, 50),
		venta("p1", "Bandeja paisa", 40, 800),
		venta("p2", "Ajiaco", 15, 150),
	}}
	uc := abc.NewClasificadorABC(repo, 365)

	clasificacion, err := uc.ClasificarProductos(context.Background(), "", "")
	require.NoError(t, err)
	require.Len(t, clasificacion, 3)

	assert.Equal(t, "p1", clasificacion[0].ProductoID)
	assert.Equal(t, entity.CategoriaA, clasificacion[0].Categoria, "80% exacto acumulado es A")
	assert.True(t, decimal.NewFromInt(80).Equal(clasificacion[0].PorcentajeAcumulado))

	assert.Equal(t, "p2", clasificacion[1].ProductoID)
	assert.Equal(t, entity.CategoriaB, clasificacion[1].Categoria, "95% exacto acumulado es B")

	assert.Equal(t, "p3", clasificacion[2].ProductoID)
	assert.Equal(t, entity.CategoriaC, clasificacion[2].Categoria)
	assert.True(t, decimal.NewFromInt(100).Equal(clasificacion[2].PorcentajeAcumulado))
}

func TestClasificar_SinVentasDevuelveVacio(t *testing.T) {
	uc := abc.NewClasificadorABC(&fakeVentasRepo{}, 365)
	clasificacion, err := uc.ClasificarProductos(context.Background(), "", "")
	require.NoError(t, err)
	assert.Empty(t, clasificacion)
	assert.NotNil(t, clasificacion, "slice vacío, no nil")
}

func TestClasificar_RotacionCeroDevuelveVacio(t *testing.T) {
	// Ventas registradas pero ingresos cero: no hay base para el porcentaje
	repo := &fakeVentasRepo{ventas: []repository.VentaProductoResult{
		venta("p1", "Agua", 10, 0),
	}}
	uc := abc.NewClasificadorABC(repo, 365)
	clasificacion, err := uc.ClasificarProductos(context.Background(), "", "")
	require.NoError(t, err)
	assert.Empty(t, clasificacion)
}

func TestClasificar_AcumuladoLlegaACien(t *testing.T) {
	repo := &fakeVentasRepo{ventas: []repository.VentaProductoResult{
		venta("p1", "A", 1, 333),
		venta("p2", "B", 1, 333),
		venta("p3", "C", 1, 334),
	}}
	uc := abc.NewClasificadorABC(repo, 365)
	clasificacion, err := uc.ClasificarProductos(context.Background(), "", "")
	require.NoError(t, err)

	ultimo := clasificacion[len(clasificacion)-1]
	diff := ultimo.PorcentajeAcumulado.Sub(decimal.NewFromInt(100)).Abs()
	assert.True(t, diff.LessThanOrEqual(decimal.NewFromFloat(1e-6)),
		"el acumulado del último producto debe ser 100±1e-6, fue %s", ultimo.PorcentajeAcumulado)
}

// Empates en ingresos se ordenan por ProductoID: el resultado es determinista.
func TestClasificar_EmpatesDeterministas(t *testing.T) {
	repo := &fakeVentasRepo{ventas: []repository.VentaProductoResult{
		venta("p2", "Dos", 1, 100),
		venta("p1", "Uno", 1, 100),
		venta("p3", "Tres", 1, 100),
	}}
	uc := abc.NewClasificadorABC(repo, 365)

	primera, err := uc.ClasificarProductos(context.Background(), "", "")
	require.NoError(t, err)
	segunda, err := uc.ClasificarProductos(context.Background(), "", "")
	require.NoError(t, err)

	require.Equal(t, primera, segunda)
	assert.Equal(t, "p1", primera[0].ProductoID)
	assert.Equal(t, "p2", primera[1].ProductoID)
	assert.Equal(t, "p3", primera[2].ProductoID)
}

func TestObtenerProductosCategoriaA_SoloA(t *testing.T) {
	repo := &fakeVentasRepo{ventas: []repository.VentaProductoResult{
		venta("p1", "Estrella", 40, 800),
		venta("p2", "Medio", 15, 150),
		venta("p3", "Cola", 50, 50),
	}}
	uc := abc.NewClasificadorABC(repo, 365)

	soloA, err := uc.ObtenerProductosCategoriaA(context.Background(), "", "")
	require.NoError(t, err)
	require.Len(t, soloA, 1)
	assert.Equal(t, "p1", soloA[0].ProductoID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reporte y período
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerarReporteABC_ConteosYTotales(t *testing.T) {
	repo := &fakeVentasRepo{ventas: []repository.VentaProductoResult{
		venta("p1", "Estrella", 40, 800),
		venta("p2", "Medio", 15, 150),
		venta("p3", "Cola", 50, 50),
	}}
	uc := abc.NewClasificadorABC(repo, 365)

	reporte, err := uc.GenerarReporteABC(context.Background(), "2026-01-01", "2026-01-31")
	require.NoError(t, err)

	assert.Equal(t, 1, reporte.CategoriaA)
	assert.Equal(t, 1, reporte.CategoriaB)
	assert.Equal(t, 1, reporte.CategoriaC)
	assert.True(t, decimal.NewFromInt(800).Equal(reporte.ValorTotalA))
	assert.True(t, decimal.NewFromInt(150).Equal(reporte.ValorTotalB))
	assert.True(t, decimal.NewFromInt(50).Equal(reporte.ValorTotalC))
	assert.Equal(t, "2026-01-01", reporte.FechaInicio)
	assert.Equal(t, "2026-01-31", reporte.FechaFin)
	assert.Len(t, reporte.Clasificacion, 3)
}

func TestClasificar_FechaInvalida(t *testing.T) {
	uc := abc.NewClasificadorABC(&fakeVentasRepo{}, 365)
	_, err := uc.ClasificarProductos(context.Background(), "31/01/2026", "")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestClasificar_InicioPosteriorAFin(t *testing.T) {
	uc := abc.NewClasificadorABC(&fakeVentasRepo{}, 365)
	_, err := uc.ClasificarProductos(context.Background(), "2026-02-01", "2026-01-01")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestClasificar_PeriodoSuperaElMaximo(t *testing.T) {
	uc := abc.NewClasificadorABC(&fakeVentasRepo{}, 90)
	_, err := uc.ClasificarProductos(context.Background(), "2025-01-01", "2026-01-01")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
