package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restobar-api/internal/application/abc"
	"github.com/jhoicas/Restobar-api/internal/application/alerts"
	"github.com/jhoicas/Restobar-api/internal/application/auth"
	"github.com/jhoicas/Restobar-api/internal/application/forecast"
	"github.com/jhoicas/Restobar-api/internal/application/inventory"
	"github.com/jhoicas/Restobar-api/internal/application/reorder"
	"github.com/jhoicas/Restobar-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ABCUC               *abc.ClasificadorABC
	ABCPDF              abc.ReporteABCPDFGenerator
	PronosticoUC        *forecast.PronosticoUseCase
	ReordenUC           *reorder.ReordenUseCase
	RegistrarMovimiento *inventory.RegistrarMovimientoUseCase
	AlertasInventario   *alerts.AlertaInventarioEngine
	AlertasNegocio      *alerts.AlertaNegocioEngine
	AuthUC              *auth.AuthUseCase
	JWTSecret           string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	gerencia := RequireRole(entity.RolAdmin, entity.RolGerente)

	// Analítica (protegido; reportes solo admin/gerente)
	analytics := protected.Group("/analytics")
	abcHandler := NewABCHandler(deps.ABCUC, deps.ABCPDF)
	analytics.Get("/abc", abcHandler.Clasificar)
	analytics.Get("/abc/reporte", gerencia, abcHandler.Reporte)
	analytics.Get("/abc/reporte/pdf", gerencia, abcHandler.ReportePDF)

	pronosticoHandler := NewPronosticoHandler(deps.PronosticoUC)
	analytics.Get("/pronostico", pronosticoHandler.Pronosticar)

	// Inventario (protegido)
	invGroup := protected.Group("/inventario")
	reordenHandler := NewReordenHandler(deps.ReordenUC)
	invGroup.Get("/punto-reorden", reordenHandler.Calcular)
	invGroup.Post("/punto-reorden", gerencia, reordenHandler.ActualizarTodos)

	inventarioHandler := NewInventarioHandler(deps.RegistrarMovimiento)
	invGroup.Post("/movimientos", inventarioHandler.RegistrarMovimiento)

	// Alertas (protegido; configurar umbrales solo admin/gerente)
	alertasGroup := protected.Group("/alertas")
	alertasInvHandler := NewAlertasInventarioHandler(deps.AlertasInventario)
	alertasGroup.Get("/inventario", alertasInvHandler.Listar)
	alertasGroup.Post("/inventario", alertasInvHandler.Accionar)

	alertasNegHandler := NewAlertasNegocioHandler(deps.AlertasNegocio)
	alertasGroup.Get("/negocio", gerencia, alertasNegHandler.Listar)
	alertasGroup.Post("/negocio", gerencia, alertasNegHandler.Accionar)
}
