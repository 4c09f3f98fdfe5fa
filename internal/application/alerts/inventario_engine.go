package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restobar-api/internal/domain/entity"
	"github.com/jhoicas/Restobar-api/internal/domain/repository"
	"github.com/jhoicas/Restobar-api/pkg/logger"
)

// Política de severidad del motor de inventario.
var (
	// FraccionStockAlta stock ≤ 50% del umbral de reorden eleva STOCK_BAJO a ALTA.
	FraccionStockAlta = decimal.NewFromFloat(0.5)
)

// ConfigInventario parámetros del motor de alertas de inventario.
type ConfigInventario struct {
	HorizonteVencimientoDias int // ventana hacia adelante para PROXIMO_VENCIMIENTO
	DiasVencimientoAlta      int // vencimiento a ≤ N días es ALTA, más lejos MEDIA
}

// AlertaInventarioEngine evalúa el estado de stock contra los umbrales y genera
// alertas. La creación es append-only: una condición repetida no muta alertas
// existentes, y una alerta no leída del mismo (ítem, tipo) suprime duplicados.
type AlertaInventarioEngine struct {
	inventarioRepo repository.InventarioRepository
	alertaRepo     repository.AlertaInventarioRepository
	cfg            ConfigInventario
	log            *logger.Logger
}

// NewAlertaInventarioEngine construye el motor.
func NewAlertaInventarioEngine(
	inventarioRepo repository.InventarioRepository,
	alertaRepo repository.AlertaInventarioRepository,
	cfg ConfigInventario,
	log *logger.Logger,
) *AlertaInventarioEngine {
	if cfg.HorizonteVencimientoDias <= 0 {
		cfg.HorizonteVencimientoDias = 7
	}
	if cfg.DiasVencimientoAlta <= 0 {
		cfg.DiasVencimientoAlta = 2
	}
	return &AlertaInventarioEngine{
		inventarioRepo: inventarioRepo,
		alertaRepo:     alertaRepo,
		cfg:            cfg,
		log:            log,
	}
}

// VerificarYNotificarStockBajo recorre todos los ítems y genera SIN_STOCK o
// STOCK_BAJO según corresponda. SIN_STOCK tiene precedencia: un ítem en cero
// nunca genera además STOCK_BAJO en la misma pasada.
func (e *AlertaInventarioEngine) VerificarYNotificarStockBajo(ctx context.Context) ([]entity.AlertaInventario, error) {
	items, err := e.inventarioRepo.ListarItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("alertas inventario: listar ítems: %w", err)
	}

	var creadas []entity.AlertaInventario
	for _, item := range items {
		// Umbral efectivo: punto de reorden calculado, o cantidad mínima como respaldo
		umbral := item.PuntoReorden
		if !umbral.IsPositive() {
			umbral = item.CantidadMinima
		}

		var tipo, severidad, mensaje string
		switch {
		case item.CantidadActual.LessThanOrEqual(decimal.Zero):
			tipo = entity.AlertaSinStock
			severidad = entity.SeveridadCritica
			mensaje = fmt.Sprintf("%s agotado: sin existencias en bodega", item.Nombre)
		case umbral.IsPositive() && item.CantidadActual.LessThanOrEqual(umbral):
			tipo = entity.AlertaStockBajo
			severidad = entity.SeveridadMedia
			if item.CantidadActual.LessThanOrEqual(umbral.Mul(FraccionStockAlta)) {
				severidad = entity.SeveridadAlta
			}
			mensaje = fmt.Sprintf("%s bajo el punto de reorden: %s %s (umbral %s)",
				item.Nombre, item.CantidadActual.String(), item.Unidad, umbral.String())
		default:
			continue
		}

		alerta, err := e.crearSiNoExiste(ctx, item.ID, tipo, severidad, mensaje)
		if err != nil {
			return nil, err
		}
		if alerta != nil {
			creadas = append(creadas, *alerta)
		}
	}

	if e.log != nil {
		e.log.Debug().Int("creadas", len(creadas)).Msg("verificación de stock completada")
	}
	return creadas, nil
}

// VerificarProximosVencimiento genera PROXIMO_VENCIMIENTO para los ítems cuya
// fecha de vencimiento cae dentro del horizonte configurado.
func (e *AlertaInventarioEngine) VerificarProximosVencimiento(ctx context.Context) ([]entity.AlertaInventario, error) {
	items, err := e.inventarioRepo.ListarItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("alertas inventario: listar ítems: %w", err)
	}

	ahora := time.Now()
	horizonte := ahora.AddDate(0, 0, e.cfg.HorizonteVencimientoDias)

	var creadas []entity.AlertaInventario
	for _, item := range items {
		if item.FechaVencimiento == nil {
			continue
		}
		vence := *item.FechaVencimiento
		if vence.Before(ahora) || vence.After(horizonte) {
			continue
		}

		diasRestantes := int(vence.Sub(ahora).Hours() / 24)
		severidad := entity.SeveridadMedia
		if diasRestantes <= e.cfg.DiasVencimientoAlta {
			severidad = entity.SeveridadAlta
		}
		mensaje := fmt.Sprintf("%s vence el %s (%d días)", item.Nombre, vence.Format("2006-01-02"), diasRestantes)

		alerta, err := e.crearSiNoExiste(ctx, item.ID, entity.AlertaProximoVencimiento, severidad, mensaje)
		if err != nil {
			return nil, err
		}
		if alerta != nil {
			creadas = append(creadas, *alerta)
		}
	}
	return creadas, nil
}

// ObtenerAlertasActivas devuelve las alertas no leídas, más recientes primero.
func (e *AlertaInventarioEngine) ObtenerAlertasActivas(ctx context.Context) ([]entity.AlertaInventario, error) {
	return e.alertaRepo.NoLeidas(ctx)
}

// MarcarComoLeida marca la alerta como leída. Idempotente: marcar una alerta
// inexistente o ya leída es un no-op, no un error.
func (e *AlertaInventarioEngine) MarcarComoLeida(ctx context.Context, alertaID string) error {
	_, err := e.alertaRepo.MarcarLeida(ctx, alertaID)
	return err
}

// crearSiNoExiste aplica la deduplicación: si ya hay una alerta no leída del
// mismo (ítem, tipo), no crea otra. El check-then-create no es atómico; la
// unicidad estricta bajo concurrencia la garantiza el almacén, no el motor.
func (e *AlertaInventarioEngine) crearSiNoExiste(ctx context.Context, itemID, tipo, severidad, mensaje string) (*entity.AlertaInventario, error) {
	existe, err := e.alertaRepo.ExisteNoLeida(ctx, itemID, tipo)
	if err != nil {
		return nil, fmt.Errorf("alertas inventario: verificar duplicado: %w", err)
	}
	if existe {
		return nil, nil
	}

	alerta := &entity.AlertaInventario{
		ID:               uuid.New().String(),
		InventarioItemID: itemID,
		Tipo:             tipo,
		Severidad:        severidad,
		Mensaje:          mensaje,
		Fecha:            time.Now(),
	}
	if err := e.alertaRepo.Crear(ctx, alerta); err != nil {
		return nil, fmt.Errorf("alertas inventario: crear: %w", err)
	}
	return alerta, nil
}
