package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Restobar-api/internal/domain/entity"
	"github.com/jhoicas/Restobar-api/internal/domain/repository"
)

var _ repository.AlertaNegocioRepository = (*AlertaNegocioRepo)(nil)

// AlertaNegocioRepo almacén de alertas de negocio sobre PostgreSQL.
type AlertaNegocioRepo struct {
	pool *pgxpool.Pool
}

// NewAlertaNegocioRepository construye el adaptador de alertas de negocio.
func NewAlertaNegocioRepository(pool *pgxpool.Pool) *AlertaNegocioRepo {
	return &AlertaNegocioRepo{pool: pool}
}

// Crear persiste una alerta de negocio.
func (r *AlertaNegocioRepo) Crear(ctx context.Context, alerta *entity.AlertaNegocio) error {
	if alerta.ID == "" {
		alerta.ID = uuid.New().String()
	}
	const query = `
	INSERT INTO alertas_negocio (id, tipo, severidad, mensaje, valor_actual, valor_esperado, desviacion_pct, leida, fecha)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		alerta.ID, alerta.Tipo, alerta.Severidad, alerta.Mensaje,
		alerta.ValorActual, alerta.ValorEsperado, alerta.DesviacionPct,
		alerta.Leida, alerta.Fecha,
	)
	if err != nil {
		return fmt.Errorf("alertas.CrearNegocio: %w", err)
	}
	return nil
}

// NoLeidas devuelve las alertas no leídas, más recientes primero.
func (r *AlertaNegocioRepo) NoLeidas(ctx context.Context) ([]entity.AlertaNegocio, error) {
	const query = `
	SELECT id, tipo, severidad, mensaje, valor_actual, valor_esperado, desviacion_pct, leida, fecha
	FROM alertas_negocio
	WHERE leida = false
	ORDER BY fecha DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, consultaFallida("alertas.NoLeidasNegocio", err)
	}
	defer rows.Close()

	var alertas []entity.AlertaNegocio
	for rows.Next() {
		var a entity.AlertaNegocio
		if err := rows.Scan(&a.ID, &a.Tipo, &a.Severidad, &a.Mensaje,
			&a.ValorActual, &a.ValorEsperado, &a.DesviacionPct, &a.Leida, &a.Fecha); err != nil {
			return nil, consultaFallida("alertas.NoLeidasNegocio scan", err)
		}
		alertas = append(alertas, a)
	}
	if err := rows.Err(); err != nil {
		return nil, consultaFallida("alertas.NoLeidasNegocio rows", err)
	}
	if alertas == nil {
		alertas = []entity.AlertaNegocio{}
	}
	return alertas, nil
}

// ExisteNoLeida indica si ya hay una alerta no leída del mismo tipo.
func (r *AlertaNegocioRepo) ExisteNoLeida(ctx context.Context, tipo string) (bool, error) {
	var existe bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM alertas_negocio WHERE tipo = $1 AND leida = false)`, tipo).Scan(&existe)
	if err != nil {
		return false, consultaFallida("alertas.ExisteNoLeidaNegocio", err)
	}
	return existe, nil
}

// MarcarLeida marca la alerta como leída. Devuelve 0 filas si no existe o ya estaba leída.
func (r *AlertaNegocioRepo) MarcarLeida(ctx context.Context, alertaID string) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE alertas_negocio SET leida = true WHERE id = $1 AND leida = false`, alertaID)
	if err != nil {
		return 0, fmt.Errorf("alertas.MarcarLeidaNegocio: %w", err)
	}
	return tag.RowsAffected(), nil
}

var _ repository.UmbralesRepository = (*UmbralesRepo)(nil)

// UmbralesRepo configuración de umbrales del motor de negocio (fila única).
type UmbralesRepo struct {
	pool *pgxpool.Pool
}

// NewUmbralesRepository construye el adaptador de umbrales.
func NewUmbralesRepository(pool *pgxpool.Pool) *UmbralesRepo {
	return &UmbralesRepo{pool: pool}
}

// Obtener devuelve los umbrales vigentes; nil si nunca se configuraron.
func (r *UmbralesRepo) Obtener(ctx context.Context) (*entity.UmbralesAlerta, error) {
	const query = `
	SELECT ventas_esperadas, ventas_minimas, tiempo_maximo_atencion, diferencia_maxima_caja, tasa_error_maxima, actualizado_en
	FROM umbrales_alerta
	WHERE id = 1`

	var u entity.UmbralesAlerta
	err := r.pool.QueryRow(ctx, query).Scan(
		&u.VentasEsperadas, &u.VentasMinimas, &u.TiempoMaximoAtencion,
		&u.DiferenciaMaximaCaja, &u.TasaErrorMaxima, &u.ActualizadoEn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, consultaFallida("umbrales.Obtener", err)
	}
	return &u, nil
}

// Guardar reemplaza la configuración completa de umbrales (upsert de fila única).
func (r *UmbralesRepo) Guardar(ctx context.Context, umbrales *entity.UmbralesAlerta) error {
	const query = `
	INSERT INTO umbrales_alerta (id, ventas_esperadas, ventas_minimas, tiempo_maximo_atencion, diferencia_maxima_caja, tasa_error_maxima, actualizado_en)
	VALUES (1, $1, $2, $3, $4, $5, $6)
	ON CONFLICT (id)
	DO UPDATE SET
	    ventas_esperadas       = EXCLUDED.ventas_esperadas,
	    ventas_minimas         = EXCLUDED.ventas_minimas,
	    tiempo_maximo_atencion = EXCLUDED.tiempo_maximo_atencion,
	    diferencia_maxima_caja = EXCLUDED.diferencia_maxima_caja,
	    tasa_error_maxima      = EXCLUDED.tasa_error_maxima,
	    actualizado_en         = EXCLUDED.actualizado_en`

	_, err := r.pool.Exec(ctx, query,
		umbrales.VentasEsperadas, umbrales.VentasMinimas, umbrales.TiempoMaximoAtencion,
		umbrales.DiferenciaMaximaCaja, umbrales.TasaErrorMaxima, umbrales.ActualizadoEn,
	)
	if err != nil {
		return fmt.Errorf("umbrales.Guardar: %w", err)
	}
	return nil
}
