package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Restobar-api/internal/application/dto"
	"github.com/jhoicas/Restobar-api/internal/domain"
	"github.com/jhoicas/Restobar-api/internal/domain/entity"
	"github.com/jhoicas/Restobar-api/internal/domain/repository"
)

// RegistrarMovimientoUseCase registra movimientos de inventario de forma transaccional
// (ENTRADA, SALIDA, AJUSTE, MERMA) con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
// Las SALIDAs registradas aquí alimentan la serie de consumo del cálculo de reorden.
type RegistrarMovimientoUseCase struct {
	txRunner TxRunner
}

// NewRegistrarMovimientoUseCase construye el caso de uso.
func NewRegistrarMovimientoUseCase(txRunner TxRunner) *RegistrarMovimientoUseCase {
	return &RegistrarMovimientoUseCase{txRunner: txRunner}
}

// RegistrarMovimiento valida la entrada, abre la transacción, bloquea la fila del
// ítem y aplica el movimiento según su tipo.
func (uc *RegistrarMovimientoUseCase) RegistrarMovimiento(ctx context.Context, userID string, in dto.RegistrarMovimientoRequest) error {
	switch in.Tipo {
	case entity.MovimientoENTRADA:
		if in.CostoUnitario == nil || in.CostoUnitario.IsNegative() {
			return domain.ErrInvalidInput
		}
		if !in.Cantidad.IsPositive() {
			return domain.ErrInvalidInput
		}
	case entity.MovimientoSALIDA, entity.MovimientoMERMA:
		if !in.Cantidad.IsPositive() {
			return domain.ErrInvalidInput
		}
	case entity.MovimientoAJUSTE:
		if in.Cantidad.IsZero() {
			return domain.ErrInvalidInput
		}
	default:
		return domain.ErrInvalidInput
	}
	if in.ItemID == "" {
		return domain.ErrInvalidInput
	}

	now := time.Now()
	txID := uuid.New().String()

	return uc.txRunner.Run(ctx, func(
		movRepo repository.MovimientoInventarioRepository,
		stockRepo repository.InventarioStockRepository,
	) error {
		// Bloquea la fila del ítem para evitar condiciones de carrera entre movimientos
		item, err := stockRepo.ObtenerParaActualizar(ctx, in.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		delta := in.Cantidad
		costo := item.CostoUnitario
		switch in.Tipo {
		case entity.MovimientoENTRADA:
			costo = *in.CostoUnitario
		case entity.MovimientoSALIDA, entity.MovimientoMERMA:
			if item.CantidadActual.LessThan(in.Cantidad) {
				return domain.ErrInsufficientStock
			}
			delta = in.Cantidad.Neg()
		case entity.MovimientoAJUSTE:
			if in.Cantidad.IsNegative() && item.CantidadActual.LessThan(in.Cantidad.Abs()) {
				return domain.ErrInsufficientStock
			}
		}

		nueva := item.CantidadActual.Add(delta)
		if err := stockRepo.ActualizarCantidad(ctx, item.ID, nueva, now); err != nil {
			return err
		}

		mov := &entity.MovimientoInventario{
			ID:            uuid.New().String(),
			TransaccionID: txID,
			ItemID:        item.ID,
			Tipo:          in.Tipo,
			Cantidad:      delta,
			CostoUnitario: costo,
			Fecha:         now,
			CreadoPor:     userID,
		}
		return movRepo.Crear(ctx, mov)
	})
}
