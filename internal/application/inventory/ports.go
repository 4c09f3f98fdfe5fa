package inventory

import (
	"context"

	"github.com/jhoicas/Restobar-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza atomicidad entre el stock y el registro del movimiento.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovimientoInventarioRepository,
		stockRepo repository.InventarioStockRepository,
	) error) error
}
