package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restobar-api/internal/application/abc"
	"github.com/jhoicas/Restobar-api/internal/application/dto"
	"github.com/jhoicas/Restobar-api/internal/domain/entity"
)

// ABCHandler maneja los endpoints de clasificación ABC (análisis de Pareto).
type ABCHandler struct {
	uc  *abc.ClasificadorABC
	pdf abc.ReporteABCPDFGenerator
}

// NewABCHandler construye el handler.
func NewABCHandler(uc *abc.ClasificadorABC, pdf abc.ReporteABCPDFGenerator) *ABCHandler {
	return &ABCHandler{uc: uc, pdf: pdf}
}

// Clasificar godoc
// @Summary      Clasificación ABC de productos por valor de rotación
// @Description  Ordena los productos vendidos del período por ingresos y asigna categoría
//               A (acumulado ≤80%), B (≤95%) o C (resto). Sin fechas usa los últimos 30 días.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        fechaInicio  query  string  false  "Inicio del período (YYYY-MM-DD)"
// @Param        fechaFin     query  string  false  "Fin del período (YYYY-MM-DD)"
// @Param        categoria    query  string  false  "Filtrar por categoría: A, B o C"
// @Success      200  {array}   entity.ClasificacionABC
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/abc [get]
func (h *ABCHandler) Clasificar(c *fiber.Ctx) error {
	var req dto.PeriodoABCRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	if req.Categoria != "" && req.Categoria != entity.CategoriaA &&
		req.Categoria != entity.CategoriaB && req.Categoria != entity.CategoriaC {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "categoria debe ser A, B o C"})
	}

	clasificacion, err := h.uc.ClasificarProductos(c.Context(), req.FechaInicio, req.FechaFin)
	if err != nil {
		return respondDomainError(c, err)
	}
	if req.Categoria != "" {
		filtrada := make([]entity.ClasificacionABC, 0, len(clasificacion))
		for _, item := range clasificacion {
			if item.Categoria == req.Categoria {
				filtrada = append(filtrada, item)
			}
		}
		clasificacion = filtrada
	}
	return c.JSON(clasificacion)
}

// Reporte godoc
// @Summary      Reporte ABC agregado
// @Description  Clasificación completa más conteo y valor total por categoría.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        fechaInicio  query  string  false  "Inicio del período (YYYY-MM-DD)"
// @Param        fechaFin     query  string  false  "Fin del período (YYYY-MM-DD)"
// @Success      200  {object}  entity.ReporteABC
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/abc/reporte [get]
func (h *ABCHandler) Reporte(c *fiber.Ctx) error {
	var req dto.PeriodoABCRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	reporte, err := h.uc.GenerarReporteABC(c.Context(), req.FechaInicio, req.FechaFin)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(reporte)
}

// ReportePDF godoc
// @Summary      Reporte ABC en PDF
// @Tags         analytics
// @Security     Bearer
// @Produce      application/pdf
// @Param        fechaInicio  query  string  false  "Inicio del período (YYYY-MM-DD)"
// @Param        fechaFin     query  string  false  "Fin del período (YYYY-MM-DD)"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/abc/reporte/pdf [get]
func (h *ABCHandler) ReportePDF(c *fiber.Ctx) error {
	var req dto.PeriodoABCRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	reporte, err := h.uc.GenerarReporteABC(c.Context(), req.FechaInicio, req.FechaFin)
	if err != nil {
		return respondDomainError(c, err)
	}
	pdfBytes, err := h.pdf.GenerarReporteABCPDF(c.Context(), reporte)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_GENERATION", Message: err.Error()})
	}

	filename := "reporte-abc-" + time.Now().Format("20060102") + ".pdf"
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
