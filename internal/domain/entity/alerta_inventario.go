package entity

import "time"

// Tipos de alerta de inventario.
const (
	AlertaStockBajo          = "STOCK_BAJO"
	AlertaSinStock           = "SIN_STOCK"
	AlertaProximoVencimiento = "PROXIMO_VENCIMIENTO"
)

// Severidades de alerta (compartidas por inventario y negocio).
const (
	SeveridadBaja    = "BAJA"
	SeveridadMedia   = "MEDIA"
	SeveridadAlta    = "ALTA"
	SeveridadCritica = "CRITICA"
)

// AlertaInventario alerta generada por el motor de inventario.
// Ciclo de vida: creada (no leída) → leída. Una nueva ocurrencia de la misma
// condición crea una alerta nueva, nunca muta una existente.
type AlertaInventario struct {
	ID               string    `json:"id"`
	InventarioItemID string    `json:"inventarioItemId"`
	Tipo             string    `json:"tipo"`
	Severidad        string    `json:"severidad"`
	Mensaje          string    `json:"mensaje"`
	Leida            bool      `json:"leida"`
	Fecha            time.Time `json:"fecha"`
}
