package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restobar-api/internal/application/dto"
	"github.com/jhoicas/Restobar-api/internal/application/inventory"
)

// InventarioHandler maneja el registro de movimientos de inventario (protegido).
type InventarioHandler struct {
	uc *inventory.RegistrarMovimientoUseCase
}

// NewInventarioHandler construye el handler.
func NewInventarioHandler(uc *inventory.RegistrarMovimientoUseCase) *InventarioHandler {
	return &InventarioHandler{uc: uc}
}

// RegistrarMovimiento godoc
// @Summary      Registrar movimiento de inventario
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarMovimientoRequest  true  "itemId, tipo (ENTRADA|SALIDA|AJUSTE|MERMA), cantidad, costoUnitario (entradas)"
// @Success      201   {object}  dto.MensajeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventario/movimientos [post]
func (h *InventarioHandler) RegistrarMovimiento(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegistrarMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.RegistrarMovimiento(c.Context(), userID, in); err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MensajeResponse{Mensaje: "movimiento registrado"})
}
