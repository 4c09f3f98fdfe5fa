package reorder_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restobar-api/internal/application/reorder"
	"github.com/jhoicas/Restobar-api/internal/domain"
	"github.com/jhoicas/Restobar-api/internal/domain/entity"
	"github.com/jhoicas/Restobar-api/internal/domain/repository"
)

// fakeInventarioRepo inventario en memoria. Los consumos se asignan a días
// consecutivos a partir de `desde`, igual que reconstruye la serie el caso de uso.
type fakeInventarioRepo struct {
	lista          []entity.InventarioItem
	consumos       map[string][]float64
	guardados      map[string]decimal.Decimal
	fallaAlGuardar map[string]bool
}

func newFakeInventarioRepo() *fakeInventarioRepo {
	return &fakeInventarioRepo{
		consumos:       map[string][]float64{},
		guardados:      map[string]decimal.Decimal{},
		fallaAlGuardar: map[string]bool{},
	}
}

func (f *fakeInventarioRepo) ListarItems(_ context.Context) ([]entity.InventarioItem, error) {
	return f.lista, nil
}

func (f *fakeInventarioRepo) ObtenerItem(_ context.Context, itemID string) (*entity.InventarioItem, error) {
	for i := range f.lista {
		if f.lista[i].ID == itemID {
			return &f.lista[i], nil
		}
	}
	return nil, nil
}

func (f *fakeInventarioRepo) ConsumoDiario(_ context.Context, itemID string, desde, _ time.Time) ([]repository.ConsumoDiarioResult, error) {
	cantidades := f.consumos[itemID]
	puntos := make([]repository.ConsumoDiarioResult, 0, len(cantidades))
	for i, q := range cantidades {
		if q == 0 {
			continue
		}
		puntos = append(puntos, repository.ConsumoDiarioResult{
			Fecha:    desde.AddDate(0, 0, i+1),
			Cantidad: decimal.NewFromFloat(q),
		})
	}
	return puntos, nil
}

func (f *fakeInventarioRepo) GuardarPuntoReorden(_ context.Context, itemID string, punto, _ decimal.Decimal, _ time.Time) error {
	if f.fallaAlGuardar[itemID] {
		return errors.New("guardar falló")
	}
	f.guardados[itemID] = punto
	return nil
}

func itemConLeadTime(id string, leadTimeDias int64) entity.InventarioItem {
	return entity.InventarioItem{
		ID:           id,
		Nombre:       "Tomate chonto",
		Unidad:       "kg",
		LeadTimeDias: decimal.NewFromInt(leadTimeDias),
	}
}

func TestCalcularPuntoReorden_ConsumoConocido(t *testing.T) {
	repo := newFakeInventarioRepo()
	repo.lista = []entity.InventarioItem{itemConLeadTime("i1", 4)}
	// 8 días con media 5 y desviación muestral √(32/7)
	repo.consumos["i1"] = []float64{2, 4, 4, 4, 5, 5, 7, 9}

	uc := reorder.NewReordenUseCase(repo, reorder.Config{VentanaConsumoDias: 8})
	punto, err := uc.CalcularPuntoReorden(context.Background(), "i1", 0.95)
	require.NoError(t, err)

	// punto = 5×4 + z(0.95)×√(32/7)×√4 ≈ 20 + 7.034
	assert.InDelta(t, 5, punto.DemandaPromedio, 1e-9)
	assert.InDelta(t, 27.034, punto.PuntoReorden, 1e-2)
	assert.InDelta(t, 30, punto.CantidadReorden, 1e-9) // 5×4×1.5
	assert.False(t, punto.ConfianzaBaja)
	assert.Equal(t, 0.95, punto.NivelServicio)
}

func TestCalcularPuntoReorden_NivelServicioCeroFallaValidacion(t *testing.T) {
	repo := newFakeInventarioRepo()
	repo.lista = []entity.InventarioItem{itemConLeadTime("i1", 2)}
	repo.consumos["i1"] = []float64{3, 3, 3, 3, 3}

	uc := reorder.NewReordenUseCase(repo, reorder.Config{NivelServicioDefault: 0.9, VentanaConsumoDias: 5})

	// 0 explícito no activa el default: el fallback a configuración es decisión
	// del caller que omite el parámetro, no del caso de uso
	_, err := uc.CalcularPuntoReorden(context.Background(), "i1", 0)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Equal(t, 0.9, uc.NivelServicioDefault())
}

func TestCalcularPuntoReorden_NivelServicioInvalido(t *testing.T) {
	repo := newFakeInventarioRepo()
	repo.lista = []entity.InventarioItem{itemConLeadTime("i1", 2)}
	uc := reorder.NewReordenUseCase(repo, reorder.Config{})

	for _, nivel := range []float64{-0.5, 0, 1, 1.2} {
		_, err := uc.CalcularPuntoReorden(context.Background(), "i1", nivel)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput), "nivel %v fuera de (0,1)", nivel)
	}
}

func TestCalcularPuntoReorden_SinConsumoHistorico(t *testing.T) {
	repo := newFakeInventarioRepo()
	repo.lista = []entity.InventarioItem{itemConLeadTime("i1", 4)}

	uc := reorder.NewReordenUseCase(repo, reorder.Config{})
	punto, err := uc.CalcularPuntoReorden(context.Background(), "i1", 0.95)
	require.NoError(t, err, "sin historial es condición degradada, no error")

	assert.True(t, punto.ConfianzaBaja)
	assert.Zero(t, punto.PuntoReorden)
	assert.Zero(t, punto.CantidadReorden)
}

func TestCalcularPuntoReorden_ItemInexistente(t *testing.T) {
	uc := reorder.NewReordenUseCase(newFakeInventarioRepo(), reorder.Config{})
	_, err := uc.CalcularPuntoReorden(context.Background(), "fantasma", 0.95)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestActualizarPuntoReordenAutomatico_AislaFallos(t *testing.T) {
	repo := newFakeInventarioRepo()
	repo.lista = []entity.InventarioItem{
		itemConLeadTime("i1", 4),
		itemConLeadTime("i2", 4),
	}
	repo.consumos["i1"] = []float64{5, 5, 5, 5, 5}
	repo.consumos["i2"] = []float64{2, 2, 2, 2, 2}
	repo.fallaAlGuardar["i2"] = true

	uc := reorder.NewReordenUseCase(repo, reorder.Config{VentanaConsumoDias: 5})
	resp, err := uc.ActualizarPuntoReordenAutomatico(context.Background())
	require.NoError(t, err)

	require.Len(t, resp.Actualizados, 1)
	assert.Equal(t, "i1", resp.Actualizados[0].InventarioItemID)
	require.Len(t, resp.Fallidos, 1)
	assert.Equal(t, "i2", resp.Fallidos[0].InventarioItemID)

	// Lo calculado para i1 quedó persistido
	guardado, ok := repo.guardados["i1"]
	require.True(t, ok)
	assert.InDelta(t, resp.Actualizados[0].PuntoReorden, guardado.InexactFloat64(), 1e-6)
}
