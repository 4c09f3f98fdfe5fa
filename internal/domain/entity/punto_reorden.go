package entity

import "time"

// PuntoReorden parámetros de reposición calculados para un ítem de inventario.
// Invariante: PuntoReorden = DemandaPromedio × LeadTimeDias + StockSeguridad,
// con StockSeguridad = z(NivelServicio) × DesviacionDemanda × √LeadTimeDias.
type PuntoReorden struct {
	InventarioItemID  string    `json:"inventarioItemId"`
	PuntoReorden      float64   `json:"puntoReorden"`      // s
	CantidadReorden   float64   `json:"cantidadReorden"`   // Q
	StockSeguridad    float64   `json:"stockSeguridad"`
	NivelServicio     float64   `json:"nivelServicio"` // (0,1)
	LeadTimeDias      float64   `json:"leadTimeDias"`  // ≥ 0
	DemandaPromedio   float64   `json:"demandaPromedio"`  // ≥ 0, unidades/día
	DesviacionDemanda float64   `json:"desviacionDemanda"` // ≥ 0
	ConfianzaBaja     bool      `json:"confianzaBaja"` // true si no hubo consumo histórico
	ActualizadoEn     time.Time `json:"actualizadoEn"`
}
