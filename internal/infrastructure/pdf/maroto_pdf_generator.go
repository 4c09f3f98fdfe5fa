// Package pdf implementa la generación del reporte de clasificación ABC
// (análisis de Pareto) en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte  │  Período analizado           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: conteo y valor total por categoría A / B / C      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cat | Producto | Cant | Ingresos | % Acumulado      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda de interpretación de las categorías        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/Restobar-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorA       = &props.Color{Red: 0, Green: 120, Blue: 60}
	colorB       = &props.Color{Red: 190, Green: 130, Blue: 0}
	colorC       = &props.Color{Red: 170, Green: 40, Blue: 40}
)

// moneda formatea cifras con separador de miles en locale es-CO.
var moneda = message.NewPrinter(language.MustParse("es-CO"))

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator genera el reporte ABC en PDF usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerarReporteABCPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerarReporteABCPDF(_ context.Context, reporte *entity.ReporteABC) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Clasificación ABC", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(reporte))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(resumenRow(reporte))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(reporte.Clasificacion) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(leyendaRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y período analizado (der).
func headerRow(reporte *entity.ReporteABC) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("CLASIFICACIÓN ABC DE PRODUCTOS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Análisis de Pareto por valor de rotación", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PERÍODO ANALIZADO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(reporte.FechaInicio+" a "+reporte.FechaFin, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 8,
			}),
		),
	)
}

// resumenRow: conteo y valor total por categoría.
func resumenRow(reporte *entity.ReporteABC) core.Row {
	bloque := func(categoria string, conteo int, valor string, color *props.Color) core.Col {
		return col.New(4).Add(
			text.New("CATEGORÍA "+categoria, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Center, Color: color, Top: 1,
			}),
			text.New(fmt.Sprintf("%d productos", conteo), props.Text{
				Size: 9, Align: align.Center, Top: 7,
			}),
			text.New("$"+valor, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Center, Top: 13,
			}),
		)
	}
	return row.New(20).Add(
		bloque("A", reporte.CategoriaA, formatMoney(reporte.ValorTotalA.StringFixed(0)), colorA),
		bloque("B", reporte.CategoriaB, formatMoney(reporte.ValorTotalB.StringFixed(0)), colorB),
		bloque("C", reporte.CategoriaC, formatMoney(reporte.ValorTotalC.StringFixed(0)), colorC),
	)
}

// tableHeaderRow: cabecera de la tabla de clasificación.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cat.", 1, align.Center),
		h("Producto", 5, align.Left),
		h("Cantidad", 2, align.Right),
		h("Ingresos", 2, align.Right),
		h("% Acum.", 2, align.Right),
	)
}

// tableDetailRows: una fila por producto clasificado.
func tableDetailRows(clasificacion []entity.ClasificacionABC) []core.Row {
	result := make([]core.Row, 0, len(clasificacion))
	for _, c := range clasificacion {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				c.Categoria,
				props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1, Color: colorCategoria(c.Categoria)},
			)),
			col.New(5).Add(text.New(
				c.NombreProducto,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				c.CantidadVendida.StringFixed(0),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"$"+formatMoney(c.Ingresos.StringFixed(0)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				c.PorcentajeAcumulado.StringFixed(2)+"%",
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// leyendaRow: interpretación de las categorías al pie del reporte.
func leyendaRow() core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(
			"A: productos de alto valor (hasta el 80% acumulado de rotación). "+
				"B: valor medio (80%-95%). "+
				"C: bajo valor (resto). "+
				"Priorice el control de inventario y la disponibilidad de los productos A.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func colorCategoria(categoria string) *props.Color {
	switch categoria {
	case entity.CategoriaA:
		return colorA
	case entity.CategoriaB:
		return colorB
	default:
		return colorC
	}
}

// formatMoney aplica separador de miles es-CO a un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	var n int64
	if _, err := fmt.Sscan(s, &n); err != nil {
		return s
	}
	out := moneda.Sprintf("%d", n)
	if neg {
		return "-" + out
	}
	return out
}
