package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"error"`
}

// MensajeResponse respuesta simple de confirmación.
type MensajeResponse struct {
	Mensaje string `json:"mensaje"`
}
