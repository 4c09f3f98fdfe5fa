package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restobar-api/internal/application/alerts"
	"github.com/jhoicas/Restobar-api/internal/application/dto"
	"github.com/jhoicas/Restobar-api/internal/domain/entity"
)

// AlertasInventarioHandler maneja las alertas de inventario.
type AlertasInventarioHandler struct {
	engine *alerts.AlertaInventarioEngine
}

// NewAlertasInventarioHandler construye el handler.
func NewAlertasInventarioHandler(engine *alerts.AlertaInventarioEngine) *AlertasInventarioHandler {
	return &AlertasInventarioHandler{engine: engine}
}

// Listar godoc
// @Summary      Alertas de inventario activas
// @Description  Devuelve las alertas no leídas. Con accion=verificar evalúa primero todo el
//               inventario (stock bajo, sin stock y próximos a vencer) y luego lista.
// @Tags         alertas
// @Security     Bearer
// @Produce      json
// @Param        accion  query  string  false  "verificar: reevalúa el inventario antes de listar"
// @Success      200  {array}   entity.AlertaInventario
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/alertas/inventario [get]
func (h *AlertasInventarioHandler) Listar(c *fiber.Ctx) error {
	accion := c.Query("accion")
	if accion != "" && accion != dto.AccionVerificar {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "accion no soportada en GET: verificar"})
	}
	if accion == dto.AccionVerificar {
		if _, err := h.engine.VerificarYNotificarStockBajo(c.Context()); err != nil {
			return respondDomainError(c, err)
		}
		if _, err := h.engine.VerificarProximosVencimiento(c.Context()); err != nil {
			return respondDomainError(c, err)
		}
	}
	alertas, err := h.engine.ObtenerAlertasActivas(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(alertas)
}

// Accionar godoc
// @Summary      Acciones sobre alertas de inventario
// @Description  accion=marcar-leida marca la alerta indicada como leída (idempotente).
// @Tags         alertas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AccionAlertaRequest  true  "accion, alertaId"
// @Success      200   {object}  dto.MensajeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/alertas/inventario [post]
func (h *AlertasInventarioHandler) Accionar(c *fiber.Ctx) error {
	var in dto.AccionAlertaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	switch in.Accion {
	case dto.AccionMarcarLeida:
		if in.AlertaID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "alertaId es requerido"})
		}
		if err := h.engine.MarcarComoLeida(c.Context(), in.AlertaID); err != nil {
			return respondDomainError(c, err)
		}
		return c.JSON(dto.MensajeResponse{Mensaje: "alerta marcada como leída"})
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "accion no soportada: marcar-leida"})
	}
}

// AlertasNegocioHandler maneja las alertas de reglas de negocio.
type AlertasNegocioHandler struct {
	engine *alerts.AlertaNegocioEngine
}

// NewAlertasNegocioHandler construye el handler.
func NewAlertasNegocioHandler(engine *alerts.AlertaNegocioEngine) *AlertasNegocioHandler {
	return &AlertasNegocioHandler{engine: engine}
}

// Listar godoc
// @Summary      Alertas de negocio activas
// @Description  Devuelve las alertas no leídas. Con accion=verificar evalúa primero los
//               KPIs (ventas, tiempos, caja, cancelaciones) contra los umbrales y luego lista.
// @Tags         alertas
// @Security     Bearer
// @Produce      json
// @Param        accion  query  string  false  "verificar: reevalúa los KPIs antes de listar"
// @Success      200  {array}   entity.AlertaNegocio
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/alertas/negocio [get]
func (h *AlertasNegocioHandler) Listar(c *fiber.Ctx) error {
	accion := c.Query("accion")
	if accion != "" && accion != dto.AccionVerificar {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "accion no soportada en GET: verificar"})
	}
	if accion == dto.AccionVerificar {
		if _, err := h.engine.VerificarTodo(c.Context()); err != nil {
			return respondDomainError(c, err)
		}
	}
	alertas, err := h.engine.ObtenerAlertasActivas(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(alertas)
}

// Accionar godoc
// @Summary      Acciones sobre alertas de negocio
// @Description  accion=marcar-leida marca una alerta como leída; accion=configurar-umbrales
//               reemplaza los umbrales de evaluación (afecta solo evaluaciones posteriores).
// @Tags         alertas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AccionAlertaRequest  true  "accion, alertaId o umbrales"
// @Success      200   {object}  dto.MensajeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/alertas/negocio [post]
func (h *AlertasNegocioHandler) Accionar(c *fiber.Ctx) error {
	var in dto.AccionAlertaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	switch in.Accion {
	case dto.AccionMarcarLeida:
		if in.AlertaID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "alertaId es requerido"})
		}
		if err := h.engine.MarcarComoLeida(c.Context(), in.AlertaID); err != nil {
			return respondDomainError(c, err)
		}
		return c.JSON(dto.MensajeResponse{Mensaje: "alerta marcada como leída"})
	case dto.AccionConfigurarUmbrales:
		if in.Umbrales == nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "umbrales es requerido"})
		}
		umbrales := &entity.UmbralesAlerta{
			VentasEsperadas:      in.Umbrales.VentasEsperadas,
			VentasMinimas:        in.Umbrales.VentasMinimas,
			TiempoMaximoAtencion: in.Umbrales.TiempoMaximoAtencion,
			DiferenciaMaximaCaja: in.Umbrales.DiferenciaMaximaCaja,
			TasaErrorMaxima:      in.Umbrales.TasaErrorMaxima,
			ActualizadoEn:        time.Now(),
		}
		if err := h.engine.ConfigurarUmbrales(c.Context(), umbrales); err != nil {
			return respondDomainError(c, err)
		}
		return c.JSON(dto.MensajeResponse{Mensaje: "umbrales actualizados"})
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "accion no soportada: marcar-leida o configurar-umbrales"})
	}
}
