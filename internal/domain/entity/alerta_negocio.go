package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de alerta de negocio (KPIs operativos).
const (
	AlertaVentasBajas     = "VENTAS_BAJAS"
	AlertaTiempoExcesivo  = "TIEMPO_EXCESIVO"
	AlertaDiferenciaCaja  = "DIFERENCIA_CAJA"
	AlertaErrorAlto       = "ERROR_ALTO"
	AlertaSatisfaccionBaja = "SATISFACCION_BAJA"
)

// AlertaNegocio alerta generada por el motor de reglas de negocio.
type AlertaNegocio struct {
	ID             string          `json:"id"`
	Tipo           string          `json:"tipo"`
	Severidad      string          `json:"severidad"`
	Mensaje        string          `json:"mensaje"`
	ValorActual    decimal.Decimal `json:"valorActual"`
	ValorEsperado  decimal.Decimal `json:"valorEsperado"`
	DesviacionPct  decimal.Decimal `json:"desviacionPct"`
	Leida          bool            `json:"leida"`
	Fecha          time.Time       `json:"fecha"`
}

// UmbralesAlerta configuración de umbrales del motor de negocio.
// Es propiedad del almacén de configuración externo: se carga explícitamente
// antes de cada evaluación y se reemplaza completa con ConfigurarUmbrales
// (sin estado global mutable dentro del núcleo).
type UmbralesAlerta struct {
	VentasEsperadas     decimal.Decimal `json:"ventasEsperadas"`     // venta objetivo del período
	VentasMinimas       decimal.Decimal `json:"ventasMinimas"`       // % de caída tolerado antes de alertar
	TiempoMaximoAtencion decimal.Decimal `json:"tiempoMaximoAtencion"` // minutos promedio de preparación
	DiferenciaMaximaCaja decimal.Decimal `json:"diferenciaMaximaCaja"` // % sobre el total del cierre
	TasaErrorMaxima     decimal.Decimal `json:"tasaErrorMaxima"`     // % de pedidos cancelados
	ActualizadoEn       time.Time       `json:"actualizadoEn"`
}
