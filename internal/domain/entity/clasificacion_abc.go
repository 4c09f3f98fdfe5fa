package entity

import "github.com/shopspring/decimal"

// Categorías ABC (Pareto) por valor de rotación.
const (
	CategoriaA = "A" // alto valor: acumulado ≤ 80%
	CategoriaB = "B" // valor medio: 80% < acumulado ≤ 95%
	CategoriaC = "C" // bajo valor: acumulado > 95%
)

// Umbrales de corte del acumulado para asignar categoría.
// Intervalos cerrados en el límite superior: 80.00 exacto es A, 95.00 exacto es B.
var (
	UmbralCategoriaA = decimal.NewFromInt(80)
	UmbralCategoriaB = decimal.NewFromInt(95)
)

// ClasificacionABC resultado del análisis de Pareto para un producto en un período.
// Es un objeto de valor: se recalcula en cada llamada, no se persiste como estado autoritativo.
type ClasificacionABC struct {
	ProductoID           string          `json:"productoId"`
	NombreProducto       string          `json:"nombreProducto"`
	Categoria            string          `json:"categoria"` // A | B | C
	ValorRotacion        decimal.Decimal `json:"valorRotacion"`
	PorcentajeAcumulado  decimal.Decimal `json:"porcentajeAcumulado"` // 0–100
	CantidadVendida      decimal.Decimal `json:"cantidadVendida"`
	Ingresos             decimal.Decimal `json:"ingresos"`
}

// ReporteABC agrega la clasificación con conteos y valor total por categoría.
type ReporteABC struct {
	FechaInicio    string             `json:"fechaInicio"`
	FechaFin       string             `json:"fechaFin"`
	CategoriaA     int                `json:"categoriaA"`
	CategoriaB     int                `json:"categoriaB"`
	CategoriaC     int                `json:"categoriaC"`
	ValorTotalA    decimal.Decimal    `json:"valorTotalA"`
	ValorTotalB    decimal.Decimal    `json:"valorTotalB"`
	ValorTotalC    decimal.Decimal    `json:"valorTotalC"`
	Clasificacion  []ClasificacionABC `json:"clasificacion"`
}
