package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restobar-api/internal/application/dto"
	"github.com/jhoicas/Restobar-api/internal/application/reorder"
)

// ReordenHandler maneja los endpoints de punto de reorden.
type ReordenHandler struct {
	uc *reorder.ReordenUseCase
}

// NewReordenHandler construye el handler.
func NewReordenHandler(uc *reorder.ReordenUseCase) *ReordenHandler {
	return &ReordenHandler{uc: uc}
}

// Calcular godoc
// @Summary      Punto de reorden de un ítem de inventario
// @Description  Calcula punto de reorden, stock de seguridad y cantidad sugerida a partir
//               del consumo histórico del ítem y el nivel de servicio pedido.
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        inventarioItemId  query  string   true   "Ítem de inventario"
// @Param        nivelServicio     query  number   false  "Nivel de servicio en (0,1); default 0.95"
// @Success      200  {object}  entity.PuntoReorden
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventario/punto-reorden [get]
func (h *ReordenHandler) Calcular(c *fiber.Ctx) error {
	var req dto.ReordenRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	if req.InventarioItemID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "inventarioItemId es requerido"})
	}

	// El default solo aplica cuando el parámetro no viene: un 0 explícito se
	// valida como cualquier otro valor fuera de (0,1)
	nivel := h.uc.NivelServicioDefault()
	if req.NivelServicio != nil {
		nivel = *req.NivelServicio
	}

	punto, err := h.uc.CalcularPuntoReorden(c.Context(), req.InventarioItemID, nivel)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(punto)
}

// ActualizarTodos godoc
// @Summary      Recalcular el punto de reorden de todos los ítems
// @Description  Recorre el inventario completo recalculando y persistiendo punto y cantidad
//               de reorden. Las fallas por ítem no abortan el lote.
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        accion  query  string  true  "Debe ser actualizar-todos"
// @Success      200  {object}  dto.ActualizacionReordenResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventario/punto-reorden [post]
func (h *ReordenHandler) ActualizarTodos(c *fiber.Ctx) error {
	if c.Query("accion") != dto.AccionActualizarTodos {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "accion debe ser actualizar-todos"})
	}
	resp, err := h.uc.ActualizarPuntoReordenAutomatico(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(resp)
}
