package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// CierreCajaResult último cierre de caja registrado.
type CierreCajaResult struct {
	ID           string
	Fecha        time.Time
	TotalVentas  decimal.Decimal
	TotalEsperado decimal.Decimal
	Diferencia   decimal.Decimal // registrado − esperado (puede ser negativo)
}

// MetricasNegocioRepository consultas agregadas de KPIs operativos.
// Todas son de solo lectura; el motor de negocio las compara contra los umbrales.
type MetricasNegocioRepository interface {
	// TotalVentas suma de pedidos entregados en el período.
	TotalVentas(ctx context.Context, desde, hasta time.Time) (decimal.Decimal, error)

	// TiempoPromedioPreparacion minutos promedio entre inicio de preparación y listo,
	// sobre los pedidos del período. Período sin pedidos → 0.
	TiempoPromedioPreparacion(ctx context.Context, desde, hasta time.Time) (decimal.Decimal, error)

	// UltimoCierreCaja devuelve el cierre más reciente; nil si no hay cierres.
	UltimoCierreCaja(ctx context.Context) (*CierreCajaResult, error)

	// TasaCancelacion porcentaje de pedidos cancelados sobre el total del período.
	// Período sin pedidos → 0 (no hay división por cero).
	TasaCancelacion(ctx context.Context, desde, hasta time.Time) (decimal.Decimal, error)
}
