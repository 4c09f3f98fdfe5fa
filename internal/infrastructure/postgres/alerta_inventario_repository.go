package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Restobar-api/internal/domain/entity"
	"github.com/jhoicas/Restobar-api/internal/domain/repository"
)

var _ repository.AlertaInventarioRepository = (*AlertaInventarioRepo)(nil)

// AlertaInventarioRepo almacén de alertas de inventario sobre PostgreSQL.
type AlertaInventarioRepo struct {
	pool *pgxpool.Pool
}

// NewAlertaInventarioRepository construye el adaptador de alertas de inventario.
func NewAlertaInventarioRepository(pool *pgxpool.Pool) *AlertaInventarioRepo {
	return &AlertaInventarioRepo{pool: pool}
}

// Crear persiste una alerta de inventario.
func (r *AlertaInventarioRepo) Crear(ctx context.Context, alerta *entity.AlertaInventario) error {
	if alerta.ID == "" {
		alerta.ID = uuid.New().String()
	}
	const query = `
	INSERT INTO alertas_inventario (id, inventario_item_id, tipo, severidad, mensaje, leida, fecha)
	VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		alerta.ID, alerta.InventarioItemID, alerta.Tipo, alerta.Severidad,
		alerta.Mensaje, alerta.Leida, alerta.Fecha,
	)
	if err != nil {
		return fmt.Errorf("alertas.CrearInventario: %w", err)
	}
	return nil
}

// NoLeidas devuelve las alertas no leídas, más recientes primero.
func (r *AlertaInventarioRepo) NoLeidas(ctx context.Context) ([]entity.AlertaInventario, error) {
	const query = `
	SELECT id, inventario_item_id, tipo, severidad, mensaje, leida, fecha
	FROM alertas_inventario
	WHERE leida = false
	ORDER BY fecha DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, consultaFallida("alertas.NoLeidasInventario", err)
	}
	defer rows.Close()

	var alertas []entity.AlertaInventario
	for rows.Next() {
		var a entity.AlertaInventario
		if err := rows.Scan(&a.ID, &a.InventarioItemID, &a.Tipo, &a.Severidad, &a.Mensaje, &a.Leida, &a.Fecha); err != nil {
			return nil, consultaFallida("alertas.NoLeidasInventario scan", err)
		}
		alertas = append(alertas, a)
	}
	if err := rows.Err(); err != nil {
		return nil, consultaFallida("alertas.NoLeidasInventario rows", err)
	}
	if alertas == nil {
		alertas = []entity.AlertaInventario{}
	}
	return alertas, nil
}

// ExisteNoLeida indica si ya hay una alerta no leída del mismo (ítem, tipo).
func (r *AlertaInventarioRepo) ExisteNoLeida(ctx context.Context, itemID, tipo string) (bool, error) {
	const query = `
	SELECT EXISTS(
	    SELECT 1 FROM alertas_inventario
	    WHERE inventario_item_id = $1 AND tipo = $2 AND leida = false)`

	var existe bool
	if err := r.pool.QueryRow(ctx, query, itemID, tipo).Scan(&existe); err != nil {
		return false, consultaFallida("alertas.ExisteNoLeidaInventario", err)
	}
	return existe, nil
}

// MarcarLeida marca la alerta como leída. Devuelve 0 filas si no existe o ya estaba leída.
func (r *AlertaInventarioRepo) MarcarLeida(ctx context.Context, alertaID string) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE alertas_inventario SET leida = true WHERE id = $1 AND leida = false`, alertaID)
	if err != nil {
		return 0, fmt.Errorf("alertas.MarcarLeidaInventario: %w", err)
	}
	return tag.RowsAffected(), nil
}
