package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restobar-api/internal/domain/entity"
	"github.com/jhoicas/Restobar-api/internal/domain/repository"
)

var _ repository.InventarioRepository = (*InventarioRepo)(nil)

// InventarioRepo ítems de inventario e historial de consumo sobre PostgreSQL.
type InventarioRepo struct {
	pool *pgxpool.Pool
}

// NewInventarioRepository construye el adaptador de inventario.
func NewInventarioRepository(pool *pgxpool.Pool) *InventarioRepo {
	return &InventarioRepo{pool: pool}
}

const itemColumns = `id, nombre, unidad, cantidad_actual, cantidad_minima, punto_reorden,
	cantidad_reorden, lead_time_dias, costo_unitario, fecha_vencimiento, actualizado_en`

// ListarItems devuelve todos los ítems de inventario.
func (r *InventarioRepo) ListarItems(ctx context.Context) ([]entity.InventarioItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventario_items ORDER BY nombre`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, consultaFallida("inventario.ListarItems", err)
	}
	defer rows.Close()

	var items []entity.InventarioItem
	for rows.Next() {
		var it entity.InventarioItem
		if err := scanItem(rows, &it); err != nil {
			return nil, consultaFallida("inventario.ListarItems scan", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, consultaFallida("inventario.ListarItems rows", err)
	}
	return items, nil
}

// ObtenerItem devuelve un ítem por ID; nil si no existe.
func (r *InventarioRepo) ObtenerItem(ctx context.Context, itemID string) (*entity.InventarioItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventario_items WHERE id = $1`

	var it entity.InventarioItem
	if err := scanItem(r.pool.QueryRow(ctx, query, itemID), &it); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, consultaFallida("inventario.ObtenerItem", err)
	}
	return &it, nil
}

// ConsumoDiario agrega los movimientos SALIDA del ítem por día, en valor absoluto.
func (r *InventarioRepo) ConsumoDiario(ctx context.Context, itemID string, desde, hasta time.Time) ([]repository.ConsumoDiarioResult, error) {
	const query = `
	SELECT
	    DATE(fecha)        AS fecha,
	    SUM(ABS(cantidad)) AS cantidad
	FROM movimientos_inventario
	WHERE inventario_item_id = $1
	  AND tipo = 'SALIDA'
	  AND fecha BETWEEN $2 AND $3
	GROUP BY DATE(fecha)
	ORDER BY fecha ASC`

	rows, err := r.pool.Query(ctx, query, itemID, desde, hasta)
	if err != nil {
		return nil, consultaFallida("inventario.ConsumoDiario", err)
	}
	defer rows.Close()

	var results []repository.ConsumoDiarioResult
	for rows.Next() {
		var row repository.ConsumoDiarioResult
		if err := rows.Scan(&row.Fecha, &row.Cantidad); err != nil {
			return nil, consultaFallida("inventario.ConsumoDiario scan", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, consultaFallida("inventario.ConsumoDiario rows", err)
	}
	return results, nil
}

// GuardarPuntoReorden persiste el punto y la cantidad de reorden recalculados.
func (r *InventarioRepo) GuardarPuntoReorden(ctx context.Context, itemID string, punto, cantidad decimal.Decimal, actualizadoEn time.Time) error {
	const query = `
	UPDATE inventario_items
	SET punto_reorden = $2, cantidad_reorden = $3, actualizado_en = $4
	WHERE id = $1`

	_, err := r.pool.Exec(ctx, query, itemID, punto, cantidad, actualizadoEn)
	if err != nil {
		return fmt.Errorf("inventario.GuardarPuntoReorden: %w", err)
	}
	return nil
}

var _ repository.InventarioStockRepository = (*InventarioStockRepo)(nil)

// InventarioStockRepo lado escritura del stock (usable con pool o tx).
type InventarioStockRepo struct {
	q Querier
}

// NewInventarioStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewInventarioStockRepository(q Querier) *InventarioStockRepo {
	return &InventarioStockRepo{q: q}
}

// ObtenerParaActualizar lee el ítem y bloquea la fila (SELECT FOR UPDATE).
func (r *InventarioStockRepo) ObtenerParaActualizar(ctx context.Context, itemID string) (*entity.InventarioItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventario_items WHERE id = $1 FOR UPDATE`

	var it entity.InventarioItem
	if err := scanItem(r.q.QueryRow(ctx, query, itemID), &it); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("inventario.ObtenerParaActualizar: %w", err)
	}
	return &it, nil
}

// ActualizarCantidad reemplaza la cantidad actual del ítem.
func (r *InventarioStockRepo) ActualizarCantidad(ctx context.Context, itemID string, cantidad decimal.Decimal, actualizadoEn time.Time) error {
	const query = `
	UPDATE inventario_items
	SET cantidad_actual = $2, actualizado_en = $3
	WHERE id = $1`

	_, err := r.q.Exec(ctx, query, itemID, cantidad, actualizadoEn)
	if err != nil {
		return fmt.Errorf("inventario.ActualizarCantidad: %w", err)
	}
	return nil
}

var _ repository.MovimientoInventarioRepository = (*MovimientoInventarioRepo)(nil)

// MovimientoInventarioRepo persistencia de movimientos (usable con pool o tx).
type MovimientoInventarioRepo struct {
	q Querier
}

// NewMovimientoInventarioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovimientoInventarioRepository(q Querier) *MovimientoInventarioRepo {
	return &MovimientoInventarioRepo{q: q}
}

// Crear persiste un movimiento de inventario.
func (r *MovimientoInventarioRepo) Crear(ctx context.Context, mov *entity.MovimientoInventario) error {
	if mov.ID == "" {
		mov.ID = uuid.New().String()
	}
	const query = `
	INSERT INTO movimientos_inventario (id, transaccion_id, inventario_item_id, tipo, cantidad, costo_unitario, fecha, creado_por)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	creadoPor := (*string)(nil)
	if mov.CreadoPor != "" {
		creadoPor = &mov.CreadoPor
	}
	_, err := r.q.Exec(ctx, query,
		mov.ID, mov.TransaccionID, mov.ItemID, mov.Tipo,
		mov.Cantidad, mov.CostoUnitario, mov.Fecha, creadoPor,
	)
	if err != nil {
		return fmt.Errorf("inventario.CrearMovimiento: %w", err)
	}
	return nil
}

// scanItem lee las columnas de itemColumns en el mismo orden.
func scanItem(row pgx.Row, it *entity.InventarioItem) error {
	return row.Scan(
		&it.ID, &it.Nombre, &it.Unidad, &it.CantidadActual, &it.CantidadMinima,
		&it.PuntoReorden, &it.CantidadReorden, &it.LeadTimeDias, &it.CostoUnitario,
		&it.FechaVencimiento, &it.ActualizadoEn,
	)
}
