package reorder

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restobar-api/internal/application/dto"
	"github.com/jhoicas/Restobar-api/internal/domain"
	"github.com/jhoicas/Restobar-api/internal/domain/entity"
	"github.com/jhoicas/Restobar-api/internal/domain/repository"
	"github.com/jhoicas/Restobar-api/pkg/stats"
)

// Config política del cálculo de reorden. Los valores vienen de configuración,
// no de literales enterrados en la lógica.
type Config struct {
	NivelServicioDefault float64 // usado cuando el caller no envía nivelServicio
	VentanaConsumoDias   int     // ventana de historial de consumo (SALIDA)
	FactorLoteReorden    float64 // Q = demanda promedio × lead time × factor
}

// ReordenUseCase deriva stock de seguridad y punto de reorden de las estadísticas
// de consumo histórico y el nivel de servicio objetivo:
//
//	stockSeguridad = z(nivelServicio) × σ_demanda × √leadTime
//	puntoReorden   = demandaPromedio × leadTime + stockSeguridad
//
// Política de Q: no hay tamaño de lote configurado por ítem en el esquema, así que
// la cantidad de reorden es un múltiplo de la demanda del lead time (FactorLoteReorden).
type ReordenUseCase struct {
	inventarioRepo repository.InventarioRepository
	cfg            Config
}

// NewReordenUseCase construye el caso de uso.
func NewReordenUseCase(inventarioRepo repository.InventarioRepository, cfg Config) *ReordenUseCase {
	if cfg.VentanaConsumoDias <= 0 {
		cfg.VentanaConsumoDias = 90
	}
	if cfg.FactorLoteReorden <= 0 {
		cfg.FactorLoteReorden = 1.5
	}
	if cfg.NivelServicioDefault <= 0 || cfg.NivelServicioDefault >= 1 {
		cfg.NivelServicioDefault = 0.95
	}
	return &ReordenUseCase{inventarioRepo: inventarioRepo, cfg: cfg}
}

// NivelServicioDefault nivel de servicio que rige cuando el caller no envía uno.
// El caller que omite el parámetro lo resuelve con este valor; CalcularPuntoReorden
// no acepta 0 como sinónimo de "default".
func (uc *ReordenUseCase) NivelServicioDefault() float64 {
	return uc.cfg.NivelServicioDefault
}

// CalcularPuntoReorden calcula el punto de reorden de un ítem para el nivel de
// servicio dado. nivelServicio debe estar en (0,1) exclusivo: 0 y 1 fallan la validación.
// Ítem sin consumo histórico → punto 0 con ConfianzaBaja, nunca un error.
func (uc *ReordenUseCase) CalcularPuntoReorden(ctx context.Context, itemID string, nivelServicio float64) (*entity.PuntoReorden, error) {
	if nivelServicio <= 0 || nivelServicio >= 1 {
		return nil, fmt.Errorf("nivelServicio debe estar en (0,1): %w", domain.ErrInvalidInput)
	}

	item, err := uc.inventarioRepo.ObtenerItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("reorden: obtener ítem: %w", err)
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	return uc.calcularParaItem(ctx, item, nivelServicio)
}

// ActualizarPuntoReordenAutomatico recalcula y persiste el punto de reorden de
// todos los ítems. La falla de un ítem no aborta el lote.
func (uc *ReordenUseCase) ActualizarPuntoReordenAutomatico(ctx context.Context) (*dto.ActualizacionReordenResponse, error) {
	items, err := uc.inventarioRepo.ListarItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("reorden: listar ítems: %w", err)
	}

	resp := &dto.ActualizacionReordenResponse{Actualizados: make([]entity.PuntoReorden, 0, len(items))}
	for i := range items {
		item := items[i]
		punto, err := uc.calcularParaItem(ctx, &item, uc.cfg.NivelServicioDefault)
		if err != nil {
			resp.Fallidos = append(resp.Fallidos, dto.FalloItem{InventarioItemID: item.ID, Error: err.Error()})
			continue
		}
		err = uc.inventarioRepo.GuardarPuntoReorden(ctx, item.ID,
			decimal.NewFromFloat(punto.PuntoReorden),
			decimal.NewFromFloat(punto.CantidadReorden),
			punto.ActualizadoEn)
		if err != nil {
			resp.Fallidos = append(resp.Fallidos, dto.FalloItem{InventarioItemID: item.ID, Error: err.Error()})
			continue
		}
		resp.Actualizados = append(resp.Actualizados, *punto)
	}
	return resp, nil
}

// calcularParaItem reconstruye la serie diaria de consumo (días sin salida = 0),
// obtiene media y desviación, y aplica la fórmula de stock de seguridad.
func (uc *ReordenUseCase) calcularParaItem(ctx context.Context, item *entity.InventarioItem, nivelServicio float64) (*entity.PuntoReorden, error) {
	hasta := time.Now()
	desde := hasta.AddDate(0, 0, -uc.cfg.VentanaConsumoDias)

	consumos, err := uc.inventarioRepo.ConsumoDiario(ctx, item.ID, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("reorden: consumo diario: %w", err)
	}

	leadTime := item.LeadTimeDias.InexactFloat64()
	if leadTime < 0 {
		leadTime = 0
	}

	resultado := &entity.PuntoReorden{
		InventarioItemID: item.ID,
		NivelServicio:    nivelServicio,
		LeadTimeDias:     leadTime,
		ActualizadoEn:    time.Now(),
	}

	// Sin consumo histórico: punto 0 con confianza baja (condición degradada, no error)
	if len(consumos) == 0 {
		resultado.ConfianzaBaja = true
		return resultado, nil
	}

	serie := serieConsumo(consumos, desde, uc.cfg.VentanaConsumoDias)
	media := stats.Media(serie)
	sigma := stats.DesviacionEstandar(serie)

	if err := aplicarFormula(resultado, media, sigma, leadTime, nivelServicio, uc.cfg.FactorLoteReorden); err != nil {
		return nil, err
	}
	return resultado, nil
}

// aplicarFormula completa el resultado con la fórmula de stock de seguridad a
// partir de las estadísticas de demanda ya calculadas.
func aplicarFormula(resultado *entity.PuntoReorden, media, sigma, leadTime, nivelServicio, factorLote float64) error {
	z, err := stats.NormalInvCDF(nivelServicio)
	if err != nil {
		return fmt.Errorf("reorden: %w: %v", domain.ErrInvalidInput, err)
	}

	stockSeguridad := z * sigma * math.Sqrt(leadTime)
	resultado.DemandaPromedio = media
	resultado.DesviacionDemanda = sigma
	resultado.StockSeguridad = stockSeguridad
	resultado.PuntoReorden = media*leadTime + stockSeguridad
	resultado.CantidadReorden = media * leadTime * factorLote
	return nil
}

// serieConsumo rellena los días sin movimiento con consumo cero para no sesgar
// la media y la desviación hacia arriba.
func serieConsumo(consumos []repository.ConsumoDiarioResult, desde time.Time, dias int) []float64 {
	porDia := make(map[string]float64, len(consumos))
	for _, c := range consumos {
		porDia[c.Fecha.Format("2006-01-02")] += c.Cantidad.InexactFloat64()
	}

	serie := make([]float64, 0, dias)
	for d := 0; d < dias; d++ {
		dia := desde.AddDate(0, 0, d+1)
		serie = append(serie, porDia[dia.Format("2006-01-02")])
	}
	return serie
}
