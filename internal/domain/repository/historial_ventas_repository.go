package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// VentaProductoResult agregado de ventas de un producto en un período.
// Lo produce la DB; los casos de uso lo convierten en objetos de valor.
type VentaProductoResult struct {
	ProductoID      string
	NombreProducto  string
	CantidadVendida decimal.Decimal
	Ingresos        decimal.Decimal // Σ cantidad × precio unitario de las líneas del período
}

// VentaDiariaResult un punto de la serie diaria de demanda de un producto.
// Solo incluye días con ventas; los casos de uso rellenan con ceros los días faltantes.
type VentaDiariaResult struct {
	Fecha    time.Time
	Cantidad decimal.Decimal
}

// HistorialVentasRepository puerto de solo lectura sobre el historial de ventas
// (pedidos entregados). El núcleo de analítica depende únicamente de esta
// interfaz, nunca del cliente de base de datos concreto.
type HistorialVentasRepository interface {
	// VentasPorProducto devuelve cantidad e ingresos por producto vendido en el período.
	// Período sin ventas → slice vacío, no es un error.
	VentasPorProducto(ctx context.Context, desde, hasta time.Time) ([]VentaProductoResult, error)

	// SerieDiariaProducto devuelve las ventas diarias de un producto dentro del período,
	// ordenadas por fecha ascendente. Solo días con ventas.
	SerieDiariaProducto(ctx context.Context, productoID string, desde, hasta time.Time) ([]VentaDiariaResult, error)

	// ProductosActivos devuelve los IDs de productos activos del catálogo.
	ProductosActivos(ctx context.Context) ([]string, error)

	// ExisteProducto indica si el producto existe en el catálogo (para distinguir
	// "no encontrado" de "sin datos en el período").
	ExisteProducto(ctx context.Context, productoID string) (bool, error)
}
