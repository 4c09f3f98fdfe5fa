package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Restobar-api/internal/domain/repository"
)

var _ repository.HistorialVentasRepository = (*HistorialVentasRepo)(nil)

// HistorialVentasRepo consultas de solo lectura sobre el historial de ventas.
// Solo cuentan los pedidos ENTREGADO: cancelados y en curso no son demanda real.
type HistorialVentasRepo struct {
	pool *pgxpool.Pool
}

// NewHistorialVentasRepository construye el adaptador de historial de ventas.
func NewHistorialVentasRepository(pool *pgxpool.Pool) *HistorialVentasRepo {
	return &HistorialVentasRepo{pool: pool}
}

// VentasPorProducto agrega cantidad e ingresos por producto vendido en el período.
func (r *HistorialVentasRepo) VentasPorProducto(ctx context.Context, desde, hasta time.Time) ([]repository.VentaProductoResult, error) {
	const query = `
	SELECT
	    p.id                AS producto_id,
	    p.nombre            AS nombre_producto,
	    SUM(d.cantidad)     AS cantidad_vendida,
	    SUM(d.subtotal)     AS ingresos
	FROM pedidos pe
	JOIN detalle_pedidos d ON d.pedido_id   = pe.id
	JOIN productos       p ON p.id          = d.producto_id
	WHERE pe.estado = 'ENTREGADO'
	  AND pe.fecha BETWEEN $1 AND $2
	GROUP BY p.id, p.nombre
	ORDER BY ingresos DESC`

	rows, err := r.pool.Query(ctx, query, desde, hasta)
	if err != nil {
		return nil, consultaFallida("ventas.VentasPorProducto", err)
	}
	defer rows.Close()

	var results []repository.VentaProductoResult
	for rows.Next() {
		var row repository.VentaProductoResult
		if err := rows.Scan(
			&row.ProductoID,
			&row.NombreProducto,
			&row.CantidadVendida,
			&row.Ingresos,
		); err != nil {
			return nil, consultaFallida("ventas.VentasPorProducto scan", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, consultaFallida("ventas.VentasPorProducto rows", err)
	}
	if results == nil {
		results = []repository.VentaProductoResult{}
	}
	return results, nil
}

// SerieDiariaProducto devuelve las ventas diarias del producto en el período,
// ordenadas por fecha ascendente. Solo días con ventas; el caso de uso rellena ceros.
func (r *HistorialVentasRepo) SerieDiariaProducto(ctx context.Context, productoID string, desde, hasta time.Time) ([]repository.VentaDiariaResult, error) {
	const query = `
	SELECT
	    DATE(pe.fecha)   AS fecha,
	    SUM(d.cantidad)  AS cantidad
	FROM pedidos pe
	JOIN detalle_pedidos d ON d.pedido_id = pe.id
	WHERE d.producto_id = $1
	  AND pe.estado = 'ENTREGADO'
	  AND pe.fecha BETWEEN $2 AND $3
	GROUP BY DATE(pe.fecha)
	ORDER BY fecha ASC`

	rows, err := r.pool.Query(ctx, query, productoID, desde, hasta)
	if err != nil {
		return nil, consultaFallida("ventas.SerieDiariaProducto", err)
	}
	defer rows.Close()

	var results []repository.VentaDiariaResult
	for rows.Next() {
		var row repository.VentaDiariaResult
		if err := rows.Scan(&row.Fecha, &row.Cantidad); err != nil {
			return nil, consultaFallida("ventas.SerieDiariaProducto scan", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, consultaFallida("ventas.SerieDiariaProducto rows", err)
	}
	return results, nil
}

// ProductosActivos devuelve los IDs de productos activos del catálogo.
func (r *HistorialVentasRepo) ProductosActivos(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM productos WHERE activo = true ORDER BY id`)
	if err != nil {
		return nil, consultaFallida("ventas.ProductosActivos", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, consultaFallida("ventas.ProductosActivos scan", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, consultaFallida("ventas.ProductosActivos rows", err)
	}
	return ids, nil
}

// ExisteProducto indica si el producto existe en el catálogo.
func (r *HistorialVentasRepo) ExisteProducto(ctx context.Context, productoID string) (bool, error) {
	var existe bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM productos WHERE id = $1)`, productoID).Scan(&existe)
	if err != nil {
		return false, consultaFallida("ventas.ExisteProducto", err)
	}
	return existe, nil
}
