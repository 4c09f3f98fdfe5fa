package dto

import "github.com/shopspring/decimal"

// RegistrarMovimientoRequest cuerpo POST para registrar un movimiento de inventario.
// CostoUnitario es obligatorio en ENTRADA; en SALIDA/MERMA se usa el costo del ítem.
type RegistrarMovimientoRequest struct {
	ItemID        string           `json:"itemId"`
	Tipo          string           `json:"tipo"` // ENTRADA | SALIDA | AJUSTE | MERMA
	Cantidad      decimal.Decimal  `json:"cantidad"`
	CostoUnitario *decimal.Decimal `json:"costoUnitario,omitempty"`
}
