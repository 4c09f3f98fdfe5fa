package alerts_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restobar-api/internal/application/alerts"
	"github.com/jhoicas/Restobar-api/internal/domain/entity"
	"github.com/jhoicas/Restobar-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeItemsRepo struct {
	items []entity.InventarioItem
}

func (f *fakeItemsRepo) ListarItems(_ context.Context) ([]entity.InventarioItem, error) {
	return f.items, nil
}

func (f *fakeItemsRepo) ObtenerItem(_ context.Context, _ string) (*entity.InventarioItem, error) {
	return nil, nil
}

func (f *fakeItemsRepo) ConsumoDiario(_ context.Context, _ string, _, _ time.Time) ([]repository.ConsumoDiarioResult, error) {
	return nil, nil
}

func (f *fakeItemsRepo) GuardarPuntoReorden(_ context.Context, _ string, _, _ decimal.Decimal, _ time.Time) error {
	return nil
}

type fakeAlertaInvRepo struct {
	alertas []entity.AlertaInventario
}

func (f *fakeAlertaInvRepo) Crear(_ context.Context, alerta *entity.AlertaInventario) error {
	f.alertas = append(f.alertas, *alerta)
	return nil
}

func (f *fakeAlertaInvRepo) NoLeidas(_ context.Context) ([]entity.AlertaInventario, error) {
	noLeidas := []entity.AlertaInventario{}
	for _, a := range f.alertas {
		if !a.Leida {
			noLeidas = append(noLeidas, a)
		}
	}
	return noLeidas, nil
}

func (f *fakeAlertaInvRepo) ExisteNoLeida(_ context.Context, itemID, tipo string) (bool, error) {
	for _, a := range f.alertas {
		if !a.Leida && a.InventarioItemID == itemID && a.Tipo == tipo {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAlertaInvRepo) MarcarLeida(_ context.Context, alertaID string) (int64, error) {
	for i := range f.alertas {
		if f.alertas[i].ID == alertaID && !f.alertas[i].Leida {
			f.alertas[i].Leida = true
			return 1, nil
		}
	}
	return 0, nil
}

func itemConStock(id string, actual, puntoReorden, minima int64) entity.InventarioItem {
	return entity.InventarioItem{
		ID:             id,
		Nombre:         "Queso campesino",
		Unidad:         "kg",
		CantidadActual: decimal.NewFromInt(actual),
		PuntoReorden:   decimal.NewFromInt(puntoReorden),
		CantidadMinima: decimal.NewFromInt(minima),
	}
}

func nuevoMotorInventario(items *fakeItemsRepo, alertasRepo *fakeAlertaInvRepo) *alerts.AlertaInventarioEngine {
	return alerts.NewAlertaInventarioEngine(items, alertasRepo, alerts.ConfigInventario{
		HorizonteVencimientoDias: 7,
		DiasVencimientoAlta:      2,
	}, nil)
}

// ──────────────────────────────────────────────────────────────────────────────
// Stock
// ──────────────────────────────────────────────────────────────────────────────

// Un ítem agotado genera una sola alerta SIN_STOCK crítica, nunca además STOCK_BAJO.
func TestVerificarStockBajo_SinStockTienePrecedencia(t *testing.T) {
	items := &fakeItemsRepo{items: []entity.InventarioItem{itemConStock("i1", 0, 10, 5)}}
	repo := &fakeAlertaInvRepo{}

	creadas, err := nuevoMotorInventario(items, repo).VerificarYNotificarStockBajo(context.Background())
	require.NoError(t, err)

	require.Len(t, creadas, 1)
	assert.Equal(t, entity.AlertaSinStock, creadas[0].Tipo)
	assert.Equal(t, entity.SeveridadCritica, creadas[0].Severidad)
	assert.Len(t, repo.alertas, 1)
}

func TestVerificarStockBajo_SeveridadPorFraccionDelUmbral(t *testing.T) {
	items := &fakeItemsRepo{items: []entity.InventarioItem{
		itemConStock("holgado", 6, 10, 0), // 60% del umbral: MEDIA
		itemConStock("critico", 5, 10, 0), // 50% del umbral: ALTA
		itemConStock("sobrado", 11, 10, 0),
	}}
	repo := &fakeAlertaInvRepo{}

	creadas, err := nuevoMotorInventario(items, repo).VerificarYNotificarStockBajo(context.Background())
	require.NoError(t, err)
	require.Len(t, creadas, 2, "el ítem por encima del umbral no alerta")

	porItem := map[string]entity.AlertaInventario{}
	for _, a := range creadas {
		porItem[a.InventarioItemID] = a
	}
	assert.Equal(t, entity.SeveridadMedia, porItem["holgado"].Severidad)
	assert.Equal(t, entity.AlertaStockBajo, porItem["holgado"].Tipo)
	assert.Equal(t, entity.SeveridadAlta, porItem["critico"].Severidad)
}

// Sin punto de reorden calculado el umbral efectivo es la cantidad mínima manual.
func TestVerificarStockBajo_RespaldoCantidadMinima(t *testing.T) {
	items := &fakeItemsRepo{items: []entity.InventarioItem{itemConStock("i1", 7, 0, 8)}}
	repo := &fakeAlertaInvRepo{}

	creadas, err := nuevoMotorInventario(items, repo).VerificarYNotificarStockBajo(context.Background())
	require.NoError(t, err)

	require.Len(t, creadas, 1)
	assert.Equal(t, entity.AlertaStockBajo, creadas[0].Tipo)
	assert.Contains(t, creadas[0].Mensaje, "umbral 8")
}

// Sin umbral configurado (ni punto de reorden ni mínima) un ítem con stock no alerta.
func TestVerificarStockBajo_SinUmbralNoAlerta(t *testing.T) {
	items := &fakeItemsRepo{items: []entity.InventarioItem{itemConStock("i1", 3, 0, 0)}}
	repo := &fakeAlertaInvRepo{}

	creadas, err := nuevoMotorInventario(items, repo).VerificarYNotificarStockBajo(context.Background())
	require.NoError(t, err)
	assert.Empty(t, creadas)
}

func TestVerificarStockBajo_NoduplicaMientrasNoSeLea(t *testing.T) {
	items := &fakeItemsRepo{items: []entity.InventarioItem{itemConStock("i1", 2, 10, 0)}}
	repo := &fakeAlertaInvRepo{}
	motor := nuevoMotorInventario(items, repo)

	primera, err := motor.VerificarYNotificarStockBajo(context.Background())
	require.NoError(t, err)
	require.Len(t, primera, 1)

	segunda, err := motor.VerificarYNotificarStockBajo(context.Background())
	require.NoError(t, err)
	assert.Empty(t, segunda, "la condición persistente no duplica la alerta no leída")
	assert.Len(t, repo.alertas, 1)

	// Una vez leída, la condición que persiste vuelve a alertar
	require.NoError(t, motor.MarcarComoLeida(context.Background(), primera[0].ID))
	tercera, err := motor.VerificarYNotificarStockBajo(context.Background())
	require.NoError(t, err)
	assert.Len(t, tercera, 1)
	assert.Len(t, repo.alertas, 2)
}

func TestMarcarComoLeida_Idempotente(t *testing.T) {
	repo := &fakeAlertaInvRepo{}
	motor := nuevoMotorInventario(&fakeItemsRepo{}, repo)

	assert.NoError(t, motor.MarcarComoLeida(context.Background(), "no-existe"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Vencimientos
// ──────────────────────────────────────────────────────────────────────────────

func TestVerificarProximosVencimiento_SeveridadPorDiasRestantes(t *testing.T) {
	ahora := time.Now()
	en1Dia := ahora.AddDate(0, 0, 1)
	en5Dias := ahora.AddDate(0, 0, 5)
	en10Dias := ahora.AddDate(0, 0, 10)
	ayer := ahora.AddDate(0, 0, -1)

	conVencimiento := func(id string, vence time.Time) entity.InventarioItem {
		it := itemConStock(id, 5, 0, 0)
		it.FechaVencimiento = &vence
		return it
	}
	items := &fakeItemsRepo{items: []entity.InventarioItem{
		conVencimiento("urgente", en1Dia),
		conVencimiento("pronto", en5Dias),
		conVencimiento("lejano", en10Dias),
		conVencimiento("vencido", ayer),
		itemConStock("sinFecha", 5, 0, 0),
	}}
	repo := &fakeAlertaInvRepo{}

	creadas, err := nuevoMotorInventario(items, repo).VerificarProximosVencimiento(context.Background())
	require.NoError(t, err)
	require.Len(t, creadas, 2, "solo vencimientos dentro del horizonte de 7 días")

	porItem := map[string]entity.AlertaInventario{}
	for _, a := range creadas {
		porItem[a.InventarioItemID] = a
	}
	assert.Equal(t, entity.SeveridadAlta, porItem["urgente"].Severidad)
	assert.Equal(t, entity.SeveridadMedia, porItem["pronto"].Severidad)
	assert.Equal(t, entity.AlertaProximoVencimiento, porItem["urgente"].Tipo)
}

func TestObtenerAlertasActivas_SoloNoLeidas(t *testing.T) {
	items := &fakeItemsRepo{items: []entity.InventarioItem{
		itemConStock("i1", 0, 0, 5),
		itemConStock("i2", 0, 0, 5),
	}}
	repo := &fakeAlertaInvRepo{}
	motor := nuevoMotorInventario(items, repo)

	creadas, err := motor.VerificarYNotificarStockBajo(context.Background())
	require.NoError(t, err)
	require.Len(t, creadas, 2)
	require.NoError(t, motor.MarcarComoLeida(context.Background(), creadas[0].ID))

	activas, err := motor.ObtenerAlertasActivas(context.Background())
	require.NoError(t, err)
	require.Len(t, activas, 1)
	assert.Equal(t, creadas[1].ID, activas[0].ID)
}
