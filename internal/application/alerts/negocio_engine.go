package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restobar-api/internal/domain"
	"github.com/jhoicas/Restobar-api/internal/domain/entity"
	"github.com/jhoicas/Restobar-api/internal/domain/repository"
	"github.com/jhoicas/Restobar-api/pkg/logger"
)

// Escalado de severidad por exceso sobre el umbral: la razón actual/umbral entre
// 1× y 2× es ALTA, por encima de 2× es CRITICA, por debajo MEDIA.
var (
	MultiplicadorSeveridadAlta    = decimal.NewFromInt(1)
	MultiplicadorSeveridadCritica = decimal.NewFromInt(2)
)

// VentanaKPIDias ventana móvil sobre la que se evalúan los KPIs del período.
const VentanaKPIDias = 1

var cien = decimal.NewFromInt(100)

// AlertaNegocioEngine evalúa KPIs operativos (ventas, tiempos de preparación,
// diferencias de caja, tasa de error) contra umbrales configurables. Los umbrales
// se cargan del almacén antes de cada evaluación: configurarlos afecta solo
// evaluaciones posteriores, nunca alertas ya emitidas.
type AlertaNegocioEngine struct {
	metricasRepo repository.MetricasNegocioRepository
	alertaRepo   repository.AlertaNegocioRepository
	umbralesRepo repository.UmbralesRepository
	log          *logger.Logger
}

// NewAlertaNegocioEngine construye el motor.
func NewAlertaNegocioEngine(
	metricasRepo repository.MetricasNegocioRepository,
	alertaRepo repository.AlertaNegocioRepository,
	umbralesRepo repository.UmbralesRepository,
	log *logger.Logger,
) *AlertaNegocioEngine {
	return &AlertaNegocioEngine{
		metricasRepo: metricasRepo,
		alertaRepo:   alertaRepo,
		umbralesRepo: umbralesRepo,
		log:          log,
	}
}

// VerificarDesviacionesVentas compara las ventas del período contra el objetivo.
// desviacion% = (actual − esperado)/esperado × 100; alerta cuando la caída
// supera el umbral VentasMinimas.
func (e *AlertaNegocioEngine) VerificarDesviacionesVentas(ctx context.Context) (*entity.AlertaNegocio, error) {
	umbrales, err := e.cargarUmbrales(ctx)
	if err != nil {
		return nil, err
	}
	if !umbrales.VentasEsperadas.IsPositive() {
		return nil, nil // sin objetivo configurado no hay qué evaluar
	}

	hasta := time.Now()
	desde := hasta.AddDate(0, 0, -VentanaKPIDias)
	actual, err := e.metricasRepo.TotalVentas(ctx, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("alertas negocio: ventas del período: %w", err)
	}

	desviacion := actual.Sub(umbrales.VentasEsperadas).Div(umbrales.VentasEsperadas).Mul(cien)
	if desviacion.GreaterThan(umbrales.VentasMinimas.Neg()) {
		return nil, nil
	}

	caida := desviacion.Abs()
	mensaje := fmt.Sprintf("ventas %s%% por debajo del objetivo (%s vs %s)",
		caida.Round(1).String(), actual.Round(2).String(), umbrales.VentasEsperadas.Round(2).String())
	return e.crearSiNoExiste(ctx, entity.AlertaVentasBajas,
		severidadPorExceso(caida, umbrales.VentasMinimas), mensaje, actual, umbrales.VentasEsperadas, desviacion)
}

// VerificarTiemposPreparacion compara el tiempo promedio de preparación del
// período contra TiempoMaximoAtencion.
func (e *AlertaNegocioEngine) VerificarTiemposPreparacion(ctx context.Context) (*entity.AlertaNegocio, error) {
	umbrales, err := e.cargarUmbrales(ctx)
	if err != nil {
		return nil, err
	}
	if !umbrales.TiempoMaximoAtencion.IsPositive() {
		return nil, nil
	}

	hasta := time.Now()
	desde := hasta.AddDate(0, 0, -VentanaKPIDias)
	promedio, err := e.metricasRepo.TiempoPromedioPreparacion(ctx, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("alertas negocio: tiempo de preparación: %w", err)
	}
	if promedio.LessThanOrEqual(umbrales.TiempoMaximoAtencion) {
		return nil, nil
	}

	desviacion := promedio.Sub(umbrales.TiempoMaximoAtencion).Div(umbrales.TiempoMaximoAtencion).Mul(cien)
	mensaje := fmt.Sprintf("tiempo promedio de preparación %s min supera el máximo de %s min",
		promedio.Round(1).String(), umbrales.TiempoMaximoAtencion.String())
	return e.crearSiNoExiste(ctx, entity.AlertaTiempoExcesivo,
		severidadPorRazon(promedio, umbrales.TiempoMaximoAtencion), mensaje,
		promedio, umbrales.TiempoMaximoAtencion, desviacion)
}

// VerificarDiferenciasCaja compara la diferencia del último cierre de caja
// (en % sobre el total) contra DiferenciaMaximaCaja.
func (e *AlertaNegocioEngine) VerificarDiferenciasCaja(ctx context.Context) (*entity.AlertaNegocio, error) {
	umbrales, err := e.cargarUmbrales(ctx)
	if err != nil {
		return nil, err
	}
	if !umbrales.DiferenciaMaximaCaja.IsPositive() {
		return nil, nil
	}

	cierre, err := e.metricasRepo.UltimoCierreCaja(ctx)
	if err != nil {
		return nil, fmt.Errorf("alertas negocio: último cierre: %w", err)
	}
	if cierre == nil || !cierre.TotalVentas.IsPositive() {
		return nil, nil
	}

	diferenciaPct := cierre.Diferencia.Abs().Div(cierre.TotalVentas).Mul(cien)
	if diferenciaPct.LessThanOrEqual(umbrales.DiferenciaMaximaCaja) {
		return nil, nil
	}

	mensaje := fmt.Sprintf("diferencia de caja de %s (%s%% del total) en el cierre del %s",
		cierre.Diferencia.Round(2).String(), diferenciaPct.Round(2).String(), cierre.Fecha.Format("2006-01-02"))
	return e.crearSiNoExiste(ctx, entity.AlertaDiferenciaCaja,
		severidadPorRazon(diferenciaPct, umbrales.DiferenciaMaximaCaja), mensaje,
		diferenciaPct, umbrales.DiferenciaMaximaCaja, diferenciaPct.Sub(umbrales.DiferenciaMaximaCaja))
}

// VerificarTasaError compara el porcentaje de pedidos cancelados del período
// contra TasaErrorMaxima.
func (e *AlertaNegocioEngine) VerificarTasaError(ctx context.Context) (*entity.AlertaNegocio, error) {
	umbrales, err := e.cargarUmbrales(ctx)
	if err != nil {
		return nil, err
	}
	if !umbrales.TasaErrorMaxima.IsPositive() {
		return nil, nil
	}

	hasta := time.Now()
	desde := hasta.AddDate(0, 0, -VentanaKPIDias)
	tasa, err := e.metricasRepo.TasaCancelacion(ctx, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("alertas negocio: tasa de cancelación: %w", err)
	}
	if tasa.LessThanOrEqual(umbrales.TasaErrorMaxima) {
		return nil, nil
	}

	mensaje := fmt.Sprintf("tasa de pedidos cancelados %s%% supera el máximo de %s%%",
		tasa.Round(1).String(), umbrales.TasaErrorMaxima.String())
	return e.crearSiNoExiste(ctx, entity.AlertaErrorAlto,
		severidadPorRazon(tasa, umbrales.TasaErrorMaxima), mensaje,
		tasa, umbrales.TasaErrorMaxima, tasa.Sub(umbrales.TasaErrorMaxima))
}

// VerificarTodo corre las cuatro verificaciones y devuelve las alertas creadas.
// La falla de una verificación no impide las demás.
func (e *AlertaNegocioEngine) VerificarTodo(ctx context.Context) ([]entity.AlertaNegocio, error) {
	checks := []func(context.Context) (*entity.AlertaNegocio, error){
		e.VerificarDesviacionesVentas,
		e.VerificarTiemposPreparacion,
		e.VerificarDiferenciasCaja,
		e.VerificarTasaError,
	}

	var creadas []entity.AlertaNegocio
	var ultimoErr error
	for _, check := range checks {
		alerta, err := check(ctx)
		if err != nil {
			ultimoErr = err
			if e.log != nil {
				e.log.Warn().Err(err).Msg("verificación de KPI falló")
			}
			continue
		}
		if alerta != nil {
			creadas = append(creadas, *alerta)
		}
	}
	if len(creadas) == 0 && ultimoErr != nil {
		return nil, ultimoErr
	}
	return creadas, nil
}

// ObtenerAlertasActivas devuelve las alertas no leídas, más recientes primero.
func (e *AlertaNegocioEngine) ObtenerAlertasActivas(ctx context.Context) ([]entity.AlertaNegocio, error) {
	return e.alertaRepo.NoLeidas(ctx)
}

// MarcarComoLeida idempotente: alerta inexistente o ya leída es un no-op.
func (e *AlertaNegocioEngine) MarcarComoLeida(ctx context.Context, alertaID string) error {
	_, err := e.alertaRepo.MarcarLeida(ctx, alertaID)
	return err
}

// ConfigurarUmbrales reemplaza la configuración activa. Los nuevos umbrales rigen
// solo evaluaciones posteriores; las alertas ya emitidas no se reevalúan.
func (e *AlertaNegocioEngine) ConfigurarUmbrales(ctx context.Context, umbrales *entity.UmbralesAlerta) error {
	if umbrales == nil {
		return domain.ErrInvalidInput
	}
	if umbrales.VentasMinimas.IsNegative() || umbrales.TasaErrorMaxima.IsNegative() ||
		umbrales.TiempoMaximoAtencion.IsNegative() || umbrales.DiferenciaMaximaCaja.IsNegative() {
		return fmt.Errorf("umbrales negativos: %w", domain.ErrInvalidInput)
	}
	umbrales.ActualizadoEn = time.Now()
	return e.umbralesRepo.Guardar(ctx, umbrales)
}

// cargarUmbrales lee la configuración activa del almacén externo.
func (e *AlertaNegocioEngine) cargarUmbrales(ctx context.Context) (*entity.UmbralesAlerta, error) {
	umbrales, err := e.umbralesRepo.Obtener(ctx)
	if err != nil {
		return nil, fmt.Errorf("alertas negocio: cargar umbrales: %w", err)
	}
	if umbrales == nil {
		return &entity.UmbralesAlerta{}, nil
	}
	return umbrales, nil
}

func (e *AlertaNegocioEngine) crearSiNoExiste(
	ctx context.Context,
	tipo, severidad, mensaje string,
	actual, esperado, desviacionPct decimal.Decimal,
) (*entity.AlertaNegocio, error) {
	existe, err := e.alertaRepo.ExisteNoLeida(ctx, tipo)
	if err != nil {
		return nil, fmt.Errorf("alertas negocio: verificar duplicado: %w", err)
	}
	if existe {
		return nil, nil
	}

	alerta := &entity.AlertaNegocio{
		ID:            uuid.New().String(),
		Tipo:          tipo,
		Severidad:     severidad,
		Mensaje:       mensaje,
		ValorActual:   actual,
		ValorEsperado: esperado,
		DesviacionPct: desviacionPct.Round(2),
		Fecha:         time.Now(),
	}
	if err := e.alertaRepo.Crear(ctx, alerta); err != nil {
		return nil, fmt.Errorf("alertas negocio: crear: %w", err)
	}
	return alerta, nil
}

// severidadPorRazon escala la severidad según la razón actual/umbral:
// > 2× CRITICA, > 1× ALTA. Se llama solo cuando actual ya supera el umbral.
func severidadPorRazon(actual, umbral decimal.Decimal) string {
	if !umbral.IsPositive() {
		return entity.SeveridadMedia
	}
	razon := actual.Div(umbral)
	switch {
	case razon.GreaterThan(MultiplicadorSeveridadCritica):
		return entity.SeveridadCritica
	case razon.GreaterThan(MultiplicadorSeveridadAlta):
		return entity.SeveridadAlta
	default:
		return entity.SeveridadMedia
	}
}

// severidadPorExceso variante para métricas expresadas como exceso sobre un
// umbral porcentual (caída de ventas): el exceso relativo usa la misma escala.
func severidadPorExceso(caida, umbral decimal.Decimal) string {
	return severidadPorRazon(caida, umbral)
}
