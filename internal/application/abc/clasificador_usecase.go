package abc

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restobar-api/internal/domain"
	"github.com/jhoicas/Restobar-api/internal/domain/entity"
	"github.com/jhoicas/Restobar-api/internal/domain/repository"
)

const (
	// VentanaDefaultDias ventana móvil cuando el caller no indica período.
	VentanaDefaultDias = 30
)

var hundred = decimal.NewFromInt(100)

// ClasificadorABC aplica el análisis de Pareto sobre el historial de ventas:
//   - Valor de rotación por producto (política: ingresos del período).
//   - Porcentaje acumulado sobre el total, orden descendente.
//   - Categoría A/B/C según los umbrales 80/95 (intervalos cerrados arriba).
//
// Es una función pura del historial: no persiste nada, se recalcula en cada llamada.
type ClasificadorABC struct {
	ventasRepo     repository.HistorialVentasRepository
	maxPeriodoDias int
}

// NewClasificadorABC construye el caso de uso. maxPeriodoDias acota la ventana
// de agregación para evitar cómputos sin límite; ≤ 0 deshabilita el tope.
func NewClasificadorABC(ventasRepo repository.HistorialVentasRepository, maxPeriodoDias int) *ClasificadorABC {
	return &ClasificadorABC{ventasRepo: ventasRepo, maxPeriodoDias: maxPeriodoDias}
}

// ClasificarProductos calcula la clasificación ABC del período.
// Período sin ventas (valor de rotación total cero) → slice vacío, sin división por cero.
func (uc *ClasificadorABC) ClasificarProductos(ctx context.Context, fechaInicio, fechaFin string) ([]entity.ClasificacionABC, error) {
	desde, hasta, err := uc.resolverPeriodo(fechaInicio, fechaFin)
	if err != nil {
		return nil, err
	}

	ventas, err := uc.ventasRepo.VentasPorProducto(ctx, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("abc: ventas del período: %w", err)
	}

	return clasificar(ventas), nil
}

// ObtenerProductosCategoriaA filtra la clasificación a la categoría A.
func (uc *ClasificadorABC) ObtenerProductosCategoriaA(ctx context.Context, fechaInicio, fechaFin string) ([]entity.ClasificacionABC, error) {
	todos, err := uc.ClasificarProductos(ctx, fechaInicio, fechaFin)
	if err != nil {
		return nil, err
	}
	categoriaA := make([]entity.ClasificacionABC, 0, len(todos))
	for _, c := range todos {
		if c.Categoria == entity.CategoriaA {
			categoriaA = append(categoriaA, c)
		}
	}
	return categoriaA, nil
}

// GenerarReporteABC envuelve la clasificación con conteos y valor total por categoría.
func (uc *ClasificadorABC) GenerarReporteABC(ctx context.Context, fechaInicio, fechaFin string) (*entity.ReporteABC, error) {
	desde, hasta, err := uc.resolverPeriodo(fechaInicio, fechaFin)
	if err != nil {
		return nil, err
	}

	ventas, err := uc.ventasRepo.VentasPorProducto(ctx, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("abc: ventas del período: %w", err)
	}

	clasificacion := clasificar(ventas)
	reporte := &entity.ReporteABC{
		FechaInicio:   desde.Format("2006-01-02"),
		FechaFin:      hasta.Format("2006-01-02"),
		ValorTotalA:   decimal.Zero,
		ValorTotalB:   decimal.Zero,
		ValorTotalC:   decimal.Zero,
		Clasificacion: clasificacion,
	}
	for _, c := range clasificacion {
		switch c.Categoria {
		case entity.CategoriaA:
			reporte.CategoriaA++
			reporte.ValorTotalA = reporte.ValorTotalA.Add(c.ValorRotacion)
		case entity.CategoriaB:
			reporte.CategoriaB++
			reporte.ValorTotalB = reporte.ValorTotalB.Add(c.ValorRotacion)
		default:
			reporte.CategoriaC++
			reporte.ValorTotalC = reporte.ValorTotalC.Add(c.ValorRotacion)
		}
	}
	return reporte, nil
}

// clasificar ordena por valor de rotación descendente (empates por ProductoID para
// que el resultado sea determinista), acumula el porcentaje y asigna categoría.
func clasificar(ventas []repository.VentaProductoResult) []entity.ClasificacionABC {
	if len(ventas) == 0 {
		return []entity.ClasificacionABC{}
	}

	total := decimal.Zero
	for _, v := range ventas {
		total = total.Add(v.Ingresos)
	}
	// Sin rotación en el período: lista vacía, nunca división por cero
	if !total.IsPositive() {
		return []entity.ClasificacionABC{}
	}

	ordenadas := make([]repository.VentaProductoResult, len(ventas))
	copy(ordenadas, ventas)
	sort.SliceStable(ordenadas, func(i, j int) bool {
		if !ordenadas[i].Ingresos.Equal(ordenadas[j].Ingresos) {
			return ordenadas[i].Ingresos.GreaterThan(ordenadas[j].Ingresos)
		}
		return ordenadas[i].ProductoID < ordenadas[j].ProductoID
	})

	resultado := make([]entity.ClasificacionABC, 0, len(ordenadas))
	acumulado := decimal.Zero
	for _, v := range ordenadas {
		acumulado = acumulado.Add(v.Ingresos)
		pct := acumulado.Div(total).Mul(hundred)

		categoria := entity.CategoriaC
		switch {
		case pct.LessThanOrEqual(entity.UmbralCategoriaA):
			categoria = entity.CategoriaA
		case pct.LessThanOrEqual(entity.UmbralCategoriaB):
			categoria = entity.CategoriaB
		}

		resultado = append(resultado, entity.ClasificacionABC{
			ProductoID:          v.ProductoID,
			NombreProducto:      v.NombreProducto,
			Categoria:           categoria,
			ValorRotacion:       v.Ingresos,
			PorcentajeAcumulado: pct.Round(6),
			CantidadVendida:     v.CantidadVendida,
			Ingresos:            v.Ingresos,
		})
	}
	return resultado
}

// resolverPeriodo convierte los strings de fecha en time.Time; aplica la ventana
// por defecto si están vacíos y valida inicio ≤ fin y el tope de longitud.
func (uc *ClasificadorABC) resolverPeriodo(inicioStr, finStr string) (desde, hasta time.Time, err error) {
	now := time.Now()

	if finStr == "" {
		hasta = now
	} else {
		hasta, err = time.ParseInLocation("2006-01-02", finStr, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("fechaFin inválida: %w", domain.ErrInvalidInput)
		}
		hasta = hasta.Add(23*time.Hour + 59*time.Minute + 59*time.Second) // inclusive hasta el final del día
	}

	if inicioStr == "" {
		desde = hasta.AddDate(0, 0, -VentanaDefaultDias)
	} else {
		desde, err = time.ParseInLocation("2006-01-02", inicioStr, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("fechaInicio inválida: %w", domain.ErrInvalidInput)
		}
	}

	if desde.After(hasta) {
		return time.Time{}, time.Time{}, fmt.Errorf("fechaInicio posterior a fechaFin: %w", domain.ErrInvalidInput)
	}
	if uc.maxPeriodoDias > 0 && hasta.Sub(desde) > time.Duration(uc.maxPeriodoDias)*24*time.Hour {
		return time.Time{}, time.Time{}, fmt.Errorf("período supera el máximo de %d días: %w", uc.maxPeriodoDias, domain.ErrInvalidInput)
	}
	return desde, hasta, nil
}
