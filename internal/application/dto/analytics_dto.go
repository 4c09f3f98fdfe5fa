package dto

import "github.com/jhoicas/Restobar-api/internal/domain/entity"

// PeriodoABCRequest parámetros de consulta para la clasificación ABC.
// Fechas en formato ISO (2006-01-02); ausentes → ventana móvil de 30 días.
type PeriodoABCRequest struct {
	FechaInicio string `query:"fechaInicio"`
	FechaFin    string `query:"fechaFin"`
	Categoria   string `query:"categoria"` // A | B | C; vacío → reporte completo
}

// PronosticoRequest parámetros de consulta del pronóstico de demanda.
type PronosticoRequest struct {
	ProductoID string `query:"productoId"` // vacío → todos los productos activos
	Periodo    int    `query:"periodo"`    // días de historial, default 30
	Dias       int    `query:"dias"`       // horizonte de pronóstico, default 7
}

// FalloProducto producto que falló dentro de una operación por lotes.
type FalloProducto struct {
	ProductoID string `json:"productoId"`
	Error      string `json:"error"`
}

// PronosticosResponse resultado del pronóstico para todos los productos.
// Las fallas por producto no abortan el lote: se reportan aparte.
type PronosticosResponse struct {
	Pronosticos []entity.PronosticoDemanda `json:"pronosticos"`
	Fallidos    []FalloProducto            `json:"fallidos,omitempty"`
}

// ReordenRequest parámetros del cálculo de punto de reorden para un ítem.
type ReordenRequest struct {
	InventarioItemID string   `query:"inventarioItemId"`
	NivelServicio    *float64 `query:"nivelServicio"` // ausente → default del servidor; 0 explícito es inválido
}

// FalloItem ítem que falló dentro del recálculo por lotes.
type FalloItem struct {
	InventarioItemID string `json:"inventarioItemId"`
	Error            string `json:"error"`
}

// ActualizacionReordenResponse resultado del recálculo masivo de puntos de reorden.
type ActualizacionReordenResponse struct {
	Actualizados []entity.PuntoReorden `json:"actualizados"`
	Fallidos     []FalloItem           `json:"fallidos,omitempty"`
}
