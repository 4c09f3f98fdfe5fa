package entity

import "time"

// Métodos de pronóstico soportados.
const (
	MetodoSuavizadoExponencial = "EXPONENTIAL_SMOOTHING"
	MetodoPromedioMovil        = "MOVING_AVERAGE"
	MetodoRegresion            = "REGRESSION"
)

// PronosticoDemanda proyección de demanda para un producto.
// NivelConfianza se deriva del error de ajuste dentro de la muestra, acotado a [0,1].
type PronosticoDemanda struct {
	ProductoID          string    `json:"productoId"`
	Periodo             time.Time `json:"periodo"` // fecha de referencia del pronóstico
	DemandaPronosticada float64   `json:"demandaPronosticada"` // ≥ 0
	NivelConfianza      float64   `json:"nivelConfianza"`      // 0–1
	Metodo              string    `json:"metodo"`
}
