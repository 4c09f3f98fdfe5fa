package repository

import (
	"context"

	"github.com/jhoicas/Restobar-api/internal/domain/entity"
)

// AlertaInventarioRepository almacén append-only de alertas de inventario.
// El estado "leída" es el único campo mutable.
type AlertaInventarioRepository interface {
	Crear(ctx context.Context, alerta *entity.AlertaInventario) error

	// NoLeidas devuelve las alertas no leídas, más recientes primero.
	NoLeidas(ctx context.Context) ([]entity.AlertaInventario, error)

	// ExisteNoLeida indica si ya hay una alerta no leída del mismo (ítem, tipo).
	// Lectura de mejor esfuerzo: bajo concurrencia el check-then-create puede duplicar;
	// la unicidad estricta requiere serializar por (ítem, tipo) en el caller o la DB.
	ExisteNoLeida(ctx context.Context, itemID, tipo string) (bool, error)

	// MarcarLeida marca la alerta como leída y devuelve cuántas filas cambió
	// (0 si no existe o ya estaba leída: la operación es idempotente).
	MarcarLeida(ctx context.Context, alertaID string) (int64, error)
}

// AlertaNegocioRepository almacén append-only de alertas de negocio.
type AlertaNegocioRepository interface {
	Crear(ctx context.Context, alerta *entity.AlertaNegocio) error
	NoLeidas(ctx context.Context) ([]entity.AlertaNegocio, error)
	ExisteNoLeida(ctx context.Context, tipo string) (bool, error)
	MarcarLeida(ctx context.Context, alertaID string) (int64, error)
}

// UmbralesRepository almacén de la configuración de umbrales del motor de negocio.
// Carga y reemplazo explícitos: el núcleo nunca muta configuración global oculta.
type UmbralesRepository interface {
	Obtener(ctx context.Context) (*entity.UmbralesAlerta, error)
	Guardar(ctx context.Context, umbrales *entity.UmbralesAlerta) error
}
