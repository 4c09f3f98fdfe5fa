package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/Restobar-api/docs"
	"github.com/jhoicas/Restobar-api/internal/application/abc"
	"github.com/jhoicas/Restobar-api/internal/application/alerts"
	"github.com/jhoicas/Restobar-api/internal/application/auth"
	"github.com/jhoicas/Restobar-api/internal/application/forecast"
	"github.com/jhoicas/Restobar-api/internal/application/inventory"
	"github.com/jhoicas/Restobar-api/internal/application/reorder"
	infrapdf "github.com/jhoicas/Restobar-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Restobar-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Restobar-api/internal/interfaces/http"
	"github.com/jhoicas/Restobar-api/pkg/config"
	"github.com/jhoicas/Restobar-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	ventasRepo := postgres.NewHistorialVentasRepository(pool)
	inventarioRepo := postgres.NewInventarioRepository(pool)
	alertaInvRepo := postgres.NewAlertaInventarioRepository(pool)
	alertaNegRepo := postgres.NewAlertaNegocioRepository(pool)
	umbralesRepo := postgres.NewUmbralesRepository(pool)
	metricasRepo := postgres.NewMetricasNegocioRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	abcUC := abc.NewClasificadorABC(ventasRepo, cfg.Analytics.MaxPeriodoDias)
	pronosticoUC := forecast.NewPronosticoUseCase(ventasRepo)
	reordenUC := reorder.NewReordenUseCase(inventarioRepo, reorder.Config{
		NivelServicioDefault: cfg.Analytics.NivelServicioDefault,
		VentanaConsumoDias:   cfg.Analytics.VentanaConsumoDias,
		FactorLoteReorden:    cfg.Analytics.FactorLoteReorden,
	})
	registrarMovimientoUC := inventory.NewRegistrarMovimientoUseCase(txRunner)

	alertasInventario := alerts.NewAlertaInventarioEngine(inventarioRepo, alertaInvRepo, alerts.ConfigInventario{
		HorizonteVencimientoDias: cfg.Analytics.HorizonteVencimientoDias,
		DiasVencimientoAlta:      cfg.Analytics.DiasVencimientoAlta,
	}, log)
	alertasNegocio := alerts.NewAlertaNegocioEngine(metricasRepo, alertaNegRepo, umbralesRepo, log)

	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Restobar API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ABCUC:               abcUC,
		ABCPDF:              pdfGenerator,
		PronosticoUC:        pronosticoUC,
		ReordenUC:           reordenUC,
		RegistrarMovimiento: registrarMovimientoUC,
		AlertasInventario:   alertasInventario,
		AlertasNegocio:      alertasNegocio,
		AuthUC:              authUC,
		JWTSecret:           cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
