package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovimientoENTRADA = "ENTRADA" // compra/recepción
	MovimientoSALIDA  = "SALIDA"  // consumo en cocina/barra
	MovimientoAJUSTE  = "AJUSTE"  // corrección de conteo físico
	MovimientoMERMA   = "MERMA"   // pérdida/vencimiento
)

// MovimientoInventario registro de entrada/salida/ajuste/merma de un ítem.
// El cálculo de punto de reorden consume los movimientos SALIDA como serie de demanda.
type MovimientoInventario struct {
	ID            string          `json:"id"`
	TransaccionID string          `json:"transaccionId"`
	ItemID        string          `json:"itemId"`
	Tipo          string          `json:"tipo"`
	Cantidad      decimal.Decimal `json:"cantidad"` // positivo entrada/ajuste+, negativo salida/merma
	CostoUnitario decimal.Decimal `json:"costoUnitario"`
	Fecha         time.Time       `json:"fecha"`
	CreadoPor     string          `json:"creadoPor"`
}
