package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restobar-api/internal/domain/repository"
)

var _ repository.MetricasNegocioRepository = (*MetricasNegocioRepo)(nil)

// MetricasNegocioRepo consultas agregadas de KPIs operativos.
type MetricasNegocioRepo struct {
	pool *pgxpool.Pool
}

// NewMetricasNegocioRepository construye el adaptador de métricas de negocio.
func NewMetricasNegocioRepository(pool *pgxpool.Pool) *MetricasNegocioRepo {
	return &MetricasNegocioRepo{pool: pool}
}

// TotalVentas suma de pedidos entregados en el período. COALESCE devuelve cero si no hay filas.
func (r *MetricasNegocioRepo) TotalVentas(ctx context.Context, desde, hasta time.Time) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(total), 0)
	FROM pedidos
	WHERE estado = 'ENTREGADO'
	  AND fecha BETWEEN $1 AND $2`

	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, desde, hasta).Scan(&total); err != nil {
		return decimal.Zero, consultaFallida("metricas.TotalVentas", err)
	}
	return total, nil
}

// TiempoPromedioPreparacion minutos promedio entre inicio de preparación y listo.
// Solo cuenta pedidos con ambos timestamps registrados.
func (r *MetricasNegocioRepo) TiempoPromedioPreparacion(ctx context.Context, desde, hasta time.Time) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(
	    AVG(EXTRACT(EPOCH FROM (listo_en - preparacion_iniciada_en)) / 60), 0)
	FROM pedidos
	WHERE preparacion_iniciada_en IS NOT NULL
	  AND listo_en IS NOT NULL
	  AND fecha BETWEEN $1 AND $2`

	var minutos decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, desde, hasta).Scan(&minutos); err != nil {
		return decimal.Zero, consultaFallida("metricas.TiempoPromedioPreparacion", err)
	}
	return minutos, nil
}

// UltimoCierreCaja devuelve el cierre más reciente; nil si no hay cierres.
func (r *MetricasNegocioRepo) UltimoCierreCaja(ctx context.Context) (*repository.CierreCajaResult, error) {
	const query = `
	SELECT id, fecha, total_ventas, total_esperado, total_ventas - total_esperado AS diferencia
	FROM cierres_caja
	ORDER BY fecha DESC
	LIMIT 1`

	var c repository.CierreCajaResult
	err := r.pool.QueryRow(ctx, query).Scan(&c.ID, &c.Fecha, &c.TotalVentas, &c.TotalEsperado, &c.Diferencia)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, consultaFallida("metricas.UltimoCierreCaja", err)
	}
	return &c, nil
}

// TasaCancelacion porcentaje de pedidos cancelados sobre el total del período.
// NULLIF protege contra división por cero cuando el período no tiene pedidos.
func (r *MetricasNegocioRepo) TasaCancelacion(ctx context.Context, desde, hasta time.Time) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(
	    COUNT(*) FILTER (WHERE estado = 'CANCELADO') * 100.0 / NULLIF(COUNT(*), 0), 0)
	FROM pedidos
	WHERE fecha BETWEEN $1 AND $2`

	var tasa decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, desde, hasta).Scan(&tasa); err != nil {
		return decimal.Zero, consultaFallida("metricas.TasaCancelacion", err)
	}
	return tasa, nil
}
