package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restobar-api/internal/application/dto"
	"github.com/jhoicas/Restobar-api/internal/application/forecast"
)

// PronosticoHandler maneja los endpoints de pronóstico de demanda.
type PronosticoHandler struct {
	uc *forecast.PronosticoUseCase
}

// NewPronosticoHandler construye el handler.
func NewPronosticoHandler(uc *forecast.PronosticoUseCase) *PronosticoHandler {
	return &PronosticoHandler{uc: uc}
}

// Pronosticar godoc
// @Summary      Pronóstico de demanda por suavizado exponencial
// @Description  Con productoId devuelve el pronóstico de ese producto; sin él, el de todos
//               los productos activos (las fallas por producto se reportan aparte).
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        productoId  query  string  false  "Producto a pronosticar; vacío = todos"
// @Param        periodo     query  int     false  "Días de historial (default 30)"
// @Param        dias        query  int     false  "Horizonte en días (default 7)"
// @Success      200  {object}  dto.PronosticosResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/pronostico [get]
func (h *PronosticoHandler) Pronosticar(c *fiber.Ctx) error {
	var req dto.PronosticoRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	if req.Periodo < 0 || req.Dias < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "periodo y dias deben ser positivos"})
	}

	if req.ProductoID != "" {
		pronostico, err := h.uc.PredecirDemanda(c.Context(), req.ProductoID, req.Periodo, req.Dias)
		if err != nil {
			return respondDomainError(c, err)
		}
		return c.JSON(pronostico)
	}

	resp, err := h.uc.ObtenerPronosticosTodos(c.Context(), req.Periodo, req.Dias)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(resp)
}
