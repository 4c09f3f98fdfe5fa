package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restobar-api/internal/domain/entity"
)

// ConsumoDiarioResult un punto de la serie diaria de consumo (movimientos SALIDA) de un ítem.
type ConsumoDiarioResult struct {
	Fecha    time.Time
	Cantidad decimal.Decimal // consumo en valor absoluto
}

// InventarioRepository puerto sobre ítems de inventario y su historial de consumo.
type InventarioRepository interface {
	ListarItems(ctx context.Context) ([]entity.InventarioItem, error)
	ObtenerItem(ctx context.Context, itemID string) (*entity.InventarioItem, error)

	// ConsumoDiario devuelve el consumo diario (SALIDA, en valor absoluto) del ítem
	// dentro del período, ordenado por fecha ascendente. Solo días con consumo.
	ConsumoDiario(ctx context.Context, itemID string, desde, hasta time.Time) ([]ConsumoDiarioResult, error)

	// GuardarPuntoReorden persiste el punto y la cantidad de reorden recalculados del ítem.
	GuardarPuntoReorden(ctx context.Context, itemID string, punto, cantidad decimal.Decimal, actualizadoEn time.Time) error
}

// MovimientoInventarioRepository persistencia de movimientos (lado escritura).
type MovimientoInventarioRepository interface {
	Crear(ctx context.Context, mov *entity.MovimientoInventario) error
}

// InventarioStockRepository lado escritura del stock de un ítem, con bloqueo de fila
// para movimientos concurrentes (usado dentro de transacciones).
type InventarioStockRepository interface {
	// ObtenerParaActualizar lee el ítem con SELECT FOR UPDATE.
	ObtenerParaActualizar(ctx context.Context, itemID string) (*entity.InventarioItem, error)
	ActualizarCantidad(ctx context.Context, itemID string, cantidad decimal.Decimal, actualizadoEn time.Time) error
}
