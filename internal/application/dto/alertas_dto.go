package dto

import "github.com/shopspring/decimal"

// Acciones soportadas por los endpoints de alertas.
const (
	AccionVerificar          = "verificar"
	AccionMarcarLeida        = "marcar-leida"
	AccionConfigurarUmbrales = "configurar-umbrales"
	AccionActualizarTodos    = "actualizar-todos"
)

// AccionAlertaRequest cuerpo POST de los endpoints de alertas.
type AccionAlertaRequest struct {
	Accion   string       `json:"accion"`
	AlertaID string       `json:"alertaId,omitempty"`
	Umbrales *UmbralesDTO `json:"umbrales,omitempty"`
}

// UmbralesDTO forma de UmbralesAlerta en la API.
type UmbralesDTO struct {
	VentasEsperadas      decimal.Decimal `json:"ventasEsperadas"`
	VentasMinimas        decimal.Decimal `json:"ventasMinimas"`
	TiempoMaximoAtencion decimal.Decimal `json:"tiempoMaximoAtencion"`
	DiferenciaMaximaCaja decimal.Decimal `json:"diferenciaMaximaCaja"`
	TasaErrorMaxima      decimal.Decimal `json:"tasaErrorMaxima"`
}
