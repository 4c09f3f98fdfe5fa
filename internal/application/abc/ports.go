package abc

import (
	"context"

	"github.com/jhoicas/Restobar-api/internal/domain/entity"
)

// ReporteABCPDFGenerator genera la representación del reporte ABC en PDF.
// Implementado en infraestructura (Maroto); el caso de uso solo produce el reporte.
type ReporteABCPDFGenerator interface {
	GenerarReporteABCPDF(ctx context.Context, reporte *entity.ReporteABC) ([]byte, error)
}
