package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restobar-api/internal/application/dto"
	"github.com/jhoicas/Restobar-api/internal/application/inventory"
	"github.com/jhoicas/Restobar-api/internal/domain"
	"github.com/jhoicas/Restobar-api/internal/domain/entity"
	"github.com/jhoicas/Restobar-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes transaccionales
// ──────────────────────────────────────────────────────────────────────────────

type fakeMovRepo struct {
	creados []entity.MovimientoInventario
}

func (f *fakeMovRepo) Crear(_ context.Context, mov *entity.MovimientoInventario) error {
	f.creados = append(f.creados, *mov)
	return nil
}

type fakeStockRepo struct {
	item        *entity.InventarioItem
	actualizada *decimal.Decimal
}

func (f *fakeStockRepo) ObtenerParaActualizar(_ context.Context, _ string) (*entity.InventarioItem, error) {
	return f.item, nil
}

func (f *fakeStockRepo) ActualizarCantidad(_ context.Context, _ string, cantidad decimal.Decimal, _ time.Time) error {
	f.actualizada = &cantidad
	return nil
}

// fakeTxRunner ejecuta fn directamente y registra si la "transacción" terminó en error
// (lo que en producción sería un rollback).
type fakeTxRunner struct {
	movRepo   *fakeMovRepo
	stockRepo *fakeStockRepo
	rollback  bool
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(repository.MovimientoInventarioRepository, repository.InventarioStockRepository) error) error {
	if err := fn(f.movRepo, f.stockRepo); err != nil {
		f.rollback = true
		return err
	}
	return nil
}

func nuevoRunner(cantidadActual int64) *fakeTxRunner {
	return &fakeTxRunner{
		movRepo: &fakeMovRepo{},
		stockRepo: &fakeStockRepo{item: &entity.InventarioItem{
			ID:             "i1",
			Nombre:         "Carne de res",
			Unidad:         "kg",
			CantidadActual: decimal.NewFromInt(cantidadActual),
			CostoUnitario:  decimal.NewFromInt(18000),
		}},
	}
}

func costo(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrarMovimiento_Entrada(t *testing.T) {
	runner := nuevoRunner(10)
	uc := inventory.NewRegistrarMovimientoUseCase(runner)

	err := uc.RegistrarMovimiento(context.Background(), "u1", dto.RegistrarMovimientoRequest{
		ItemID:        "i1",
		Tipo:          entity.MovimientoENTRADA,
		Cantidad:      decimal.NewFromInt(5),
		CostoUnitario: costo(20000),
	})
	require.NoError(t, err)

	require.NotNil(t, runner.stockRepo.actualizada)
	assert.True(t, decimal.NewFromInt(15).Equal(*runner.stockRepo.actualizada))

	require.Len(t, runner.movRepo.creados, 1)
	mov := runner.movRepo.creados[0]
	assert.Equal(t, entity.MovimientoENTRADA, mov.Tipo)
	assert.True(t, decimal.NewFromInt(5).Equal(mov.Cantidad), "la entrada se registra en positivo")
	assert.True(t, decimal.NewFromInt(20000).Equal(mov.CostoUnitario), "la entrada usa el costo del movimiento")
	assert.Equal(t, "u1", mov.CreadoPor)
	assert.NotEmpty(t, mov.TransaccionID)
}

func TestRegistrarMovimiento_SalidaDescuentaYRegistraNegativo(t *testing.T) {
	runner := nuevoRunner(10)
	uc := inventory.NewRegistrarMovimientoUseCase(runner)

	err := uc.RegistrarMovimiento(context.Background(), "u1", dto.RegistrarMovimientoRequest{
		ItemID:   "i1",
		Tipo:     entity.MovimientoSALIDA,
		Cantidad: decimal.NewFromInt(4),
	})
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(6).Equal(*runner.stockRepo.actualizada))
	mov := runner.movRepo.creados[0]
	assert.True(t, decimal.NewFromInt(-4).Equal(mov.Cantidad), "la salida se registra en negativo")
	assert.True(t, decimal.NewFromInt(18000).Equal(mov.CostoUnitario), "la salida hereda el costo del ítem")
}

func TestRegistrarMovimiento_SalidaSinStockSuficiente(t *testing.T) {
	runner := nuevoRunner(3)
	uc := inventory.NewRegistrarMovimientoUseCase(runner)

	err := uc.RegistrarMovimiento(context.Background(), "u1", dto.RegistrarMovimientoRequest{
		ItemID:   "i1",
		Tipo:     entity.MovimientoSALIDA,
		Cantidad: decimal.NewFromInt(4),
	})
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
	assert.True(t, runner.rollback, "el error dentro de la tx provoca rollback")
	assert.Nil(t, runner.stockRepo.actualizada)
	assert.Empty(t, runner.movRepo.creados)
}

func TestRegistrarMovimiento_AjusteNegativo(t *testing.T) {
	runner := nuevoRunner(10)
	uc := inventory.NewRegistrarMovimientoUseCase(runner)

	err := uc.RegistrarMovimiento(context.Background(), "u1", dto.RegistrarMovimientoRequest{
		ItemID:   "i1",
		Tipo:     entity.MovimientoAJUSTE,
		Cantidad: decimal.NewFromInt(-2),
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(8).Equal(*runner.stockRepo.actualizada))
}

func TestRegistrarMovimiento_Validacion(t *testing.T) {
	runner := nuevoRunner(10)
	uc := inventory.NewRegistrarMovimientoUseCase(runner)

	cases := []struct {
		nombre string
		req    dto.RegistrarMovimientoRequest
	}{
		{"tipo desconocido", dto.RegistrarMovimientoRequest{ItemID: "i1", Tipo: "REGALO", Cantidad: decimal.NewFromInt(1)}},
		{"entrada sin costo", dto.RegistrarMovimientoRequest{ItemID: "i1", Tipo: entity.MovimientoENTRADA, Cantidad: decimal.NewFromInt(1)}},
		{"salida con cantidad cero", dto.RegistrarMovimientoRequest{ItemID: "i1", Tipo: entity.MovimientoSALIDA, Cantidad: decimal.Zero}},
		{"ajuste con cantidad cero", dto.RegistrarMovimientoRequest{ItemID: "i1", Tipo: entity.MovimientoAJUSTE, Cantidad: decimal.Zero}},
		{"sin itemId", dto.RegistrarMovimientoRequest{Tipo: entity.MovimientoSALIDA, Cantidad: decimal.NewFromInt(1)}},
	}
	for _, tc := range cases {
		t.Run(tc.nombre, func(t *testing.T) {
			err := uc.RegistrarMovimiento(context.Background(), "u1", tc.req)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))
		})
	}
	assert.Empty(t, runner.movRepo.creados, "la validación falla antes de abrir la transacción")
}

func TestRegistrarMovimiento_ItemInexistente(t *testing.T) {
	runner := &fakeTxRunner{movRepo: &fakeMovRepo{}, stockRepo: &fakeStockRepo{}}
	uc := inventory.NewRegistrarMovimientoUseCase(runner)

	err := uc.RegistrarMovimiento(context.Background(), "u1", dto.RegistrarMovimientoRequest{
		ItemID:   "fantasma",
		Tipo:     entity.MovimientoSALIDA,
		Cantidad: decimal.NewFromInt(1),
	})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
