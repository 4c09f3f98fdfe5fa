package forecast

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/jhoicas/Restobar-api/internal/application/dto"
	"github.com/jhoicas/Restobar-api/internal/domain"
	"github.com/jhoicas/Restobar-api/internal/domain/entity"
	"github.com/jhoicas/Restobar-api/internal/domain/repository"
	"github.com/jhoicas/Restobar-api/pkg/stats"
)

// Parámetros del modelo de suavizado.
//
// Variante documentada: suavizado exponencial doble (método de Holt, nivel + tendencia).
// Alpha se ajusta minimizando el error cuadrático dentro de la muestra sobre una
// grilla pequeña; beta queda fijo: con series diarias cortas de restaurante, ajustar
// ambos parámetros sobreajusta la tendencia.
const (
	BetaTendencia    = 0.1
	PeriodoDefault   = 30 // días de historial cuando el caller no lo indica
	HorizonteDefault = 7  // días de pronóstico por defecto
	// MinDiasConVentas mínimo de días con ventas para ajustar el modelo;
	// por debajo se devuelve pronóstico cero con confianza cero, nunca un error.
	MinDiasConVentas = 2
)

// alphaGrid grilla de búsqueda para el parámetro de suavizado.
var alphaGrid = []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9}

// ResultadoSuavizado estado del modelo ajustado sobre la serie histórica.
type ResultadoSuavizado struct {
	Alpha           float64   `json:"alpha"`
	SerieSuavizada  []float64 `json:"serieSuavizada"`
	UltimoNivel     float64   `json:"ultimoNivel"`
	UltimaTendencia float64   `json:"ultimaTendencia"`
	ErrorMedioAbs   float64   `json:"errorMedioAbs"`  // MAE a un paso dentro de la muestra
	MediaObservada  float64   `json:"mediaObservada"` // media de la serie cruda, no de la suavizada
	DiasConVentas   int       `json:"diasConVentas"`
}

// PronosticoUseCase calcula pronósticos de demanda por producto a partir del
// historial de ventas diarias. Sin estado entre llamadas: el estado interno del
// modelo vive solo dentro de cada cómputo.
type PronosticoUseCase struct {
	ventasRepo repository.HistorialVentasRepository
}

// NewPronosticoUseCase construye el caso de uso.
func NewPronosticoUseCase(ventasRepo repository.HistorialVentasRepository) *PronosticoUseCase {
	return &PronosticoUseCase{ventasRepo: ventasRepo}
}

// CalcularSuavizadoExponencial ajusta el modelo de Holt sobre los últimos periodoDias
// del producto y devuelve el estado del modelo (alpha elegido, serie suavizada, nivel).
func (uc *PronosticoUseCase) CalcularSuavizadoExponencial(ctx context.Context, productoID string, periodoDias int) (*ResultadoSuavizado, error) {
	serie, diasConVentas, err := uc.serieDiaria(ctx, productoID, periodoDias)
	if err != nil {
		return nil, err
	}
	if diasConVentas < MinDiasConVentas {
		return &ResultadoSuavizado{SerieSuavizada: []float64{}, DiasConVentas: diasConVentas}, nil
	}
	return ajustarHolt(serie, diasConVentas), nil
}

// PredecirDemanda proyecta la demanda diaria del producto diasAdelante días,
// usando el nivel y la tendencia del modelo ajustado (extrapolación lineal,
// acotada en cero por abajo).
func (uc *PronosticoUseCase) PredecirDemanda(ctx context.Context, productoID string, periodoDias, diasAdelante int) (*entity.PronosticoDemanda, error) {
	if diasAdelante <= 0 {
		diasAdelante = HorizonteDefault
	}

	existe, err := uc.ventasRepo.ExisteProducto(ctx, productoID)
	if err != nil {
		return nil, fmt.Errorf("pronóstico: verificar producto: %w", err)
	}
	if !existe {
		return nil, domain.ErrNotFound
	}

	resultado, err := uc.CalcularSuavizadoExponencial(ctx, productoID, periodoDias)
	if err != nil {
		return nil, err
	}

	pronostico := &entity.PronosticoDemanda{
		ProductoID: productoID,
		Periodo:    time.Now().AddDate(0, 0, diasAdelante),
		Metodo:     entity.MetodoSuavizadoExponencial,
	}

	// Historial insuficiente: demanda cero con confianza cero (condición degradada, no error)
	if resultado.DiasConVentas < MinDiasConVentas {
		return pronostico, nil
	}

	demanda := resultado.UltimoNivel + resultado.UltimaTendencia*float64(diasAdelante)
	pronostico.DemandaPronosticada = math.Max(0, demanda)
	pronostico.NivelConfianza = confianza(resultado.ErrorMedioAbs, resultado.MediaObservada)
	return pronostico, nil
}

// ObtenerPronosticosTodos calcula el pronóstico para cada producto activo.
// La falla de un producto no aborta el lote: se acumula en Fallidos.
func (uc *PronosticoUseCase) ObtenerPronosticosTodos(ctx context.Context, periodoDias, diasAdelante int) (*dto.PronosticosResponse, error) {
	productos, err := uc.ventasRepo.ProductosActivos(ctx)
	if err != nil {
		return nil, fmt.Errorf("pronóstico: productos activos: %w", err)
	}

	resp := &dto.PronosticosResponse{Pronosticos: make([]entity.PronosticoDemanda, 0, len(productos))}
	for _, id := range productos {
		p, err := uc.PredecirDemanda(ctx, id, periodoDias, diasAdelante)
		if err != nil {
			resp.Fallidos = append(resp.Fallidos, dto.FalloProducto{ProductoID: id, Error: err.Error()})
			continue
		}
		resp.Pronosticos = append(resp.Pronosticos, *p)
	}
	return resp, nil
}

// serieDiaria reconstruye la serie diaria de demanda de los últimos periodoDias.
// Los días sin ventas cuentan como demanda cero: saltarlos deformaría el eje
// temporal del suavizado. Devuelve también cuántos días tuvieron ventas.
func (uc *PronosticoUseCase) serieDiaria(ctx context.Context, productoID string, periodoDias int) ([]float64, int, error) {
	if periodoDias <= 0 {
		periodoDias = PeriodoDefault
	}

	hasta := time.Now()
	desde := hasta.AddDate(0, 0, -periodoDias)

	puntos, err := uc.ventasRepo.SerieDiariaProducto(ctx, productoID, desde, hasta)
	if err != nil {
		return nil, 0, fmt.Errorf("pronóstico: serie diaria: %w", err)
	}

	porDia := make(map[string]float64, len(puntos))
	for _, p := range puntos {
		porDia[p.Fecha.Format("2006-01-02")] += p.Cantidad.InexactFloat64()
	}

	serie := make([]float64, 0, periodoDias)
	diasConVentas := 0
	for d := 0; d < periodoDias; d++ {
		dia := desde.AddDate(0, 0, d+1)
		cantidad := porDia[dia.Format("2006-01-02")]
		if cantidad > 0 {
			diasConVentas++
		}
		serie = append(serie, cantidad)
	}
	return serie, diasConVentas, nil
}

// ajustarHolt corre el suavizado doble para cada alpha de la grilla y se queda
// con el de menor error cuadrático a un paso dentro de la muestra.
func ajustarHolt(serie []float64, diasConVentas int) *ResultadoSuavizado {
	var mejor *ResultadoSuavizado
	mejorSSE := math.Inf(1)

	for _, alpha := range alphaGrid {
		r, sse := suavizarHolt(serie, alpha)
		if sse < mejorSSE {
			mejorSSE = sse
			mejor = r
		}
	}
	mejor.MediaObservada = stats.Media(serie)
	mejor.DiasConVentas = diasConVentas
	return mejor
}

// suavizarHolt aplica Holt (nivel + tendencia) con el alpha dado y beta fijo.
// Devuelve el estado final y el SSE de las predicciones a un paso.
func suavizarHolt(serie []float64, alpha float64) (*ResultadoSuavizado, float64) {
	nivel := serie[0]
	tendencia := 0.0
	if len(serie) > 1 {
		tendencia = serie[1] - serie[0]
	}

	suavizada := make([]float64, len(serie))
	suavizada[0] = nivel

	var sse, sae float64
	for t := 1; t < len(serie); t++ {
		prediccion := nivel + tendencia
		errT := serie[t] - prediccion
		sse += errT * errT
		sae += math.Abs(errT)

		nivelAnterior := nivel
		nivel = alpha*serie[t] + (1-alpha)*(nivel+tendencia)
		tendencia = BetaTendencia*(nivel-nivelAnterior) + (1-BetaTendencia)*tendencia
		suavizada[t] = nivel
	}

	mae := 0.0
	if len(serie) > 1 {
		mae = sae / float64(len(serie)-1)
	}
	return &ResultadoSuavizado{
		Alpha:           alpha,
		SerieSuavizada:  suavizada,
		UltimoNivel:     nivel,
		UltimaTendencia: tendencia,
		ErrorMedioAbs:   mae,
	}, sse
}

// confianza convierte el error de ajuste en un nivel de confianza [0,1]:
// 1 − MAE/media de la demanda observada, acotado. Se normaliza por la serie
// cruda: la suavizada subestima la media en series con tendencia.
// Serie plana → MAE ~ 0 → confianza ~ 1.
func confianza(mae, media float64) float64 {
	if media <= 0 {
		return 0
	}
	c := 1 - mae/media
	return math.Min(1, math.Max(0, c))
}
