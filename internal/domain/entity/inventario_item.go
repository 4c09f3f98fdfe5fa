package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventarioItem insumo de bodega del restaurante.
// PuntoReorden/CantidadReorden los mantiene el recálculo automático; CantidadMinima
// es el respaldo manual cuando aún no hay punto de reorden calculado.
type InventarioItem struct {
	ID               string           `json:"id"`
	Nombre           string           `json:"nombre"`
	Unidad           string           `json:"unidad"` // kg, l, unidad...
	CantidadActual   decimal.Decimal  `json:"cantidadActual"`
	CantidadMinima   decimal.Decimal  `json:"cantidadMinima"`
	PuntoReorden     decimal.Decimal  `json:"puntoReorden"`
	CantidadReorden  decimal.Decimal  `json:"cantidadReorden"`
	LeadTimeDias     decimal.Decimal  `json:"leadTimeDias"` // del proveedor del ítem
	CostoUnitario    decimal.Decimal  `json:"costoUnitario"`
	FechaVencimiento *time.Time       `json:"fechaVencimiento,omitempty"`
	ActualizadoEn    time.Time        `json:"actualizadoEn"`
}
