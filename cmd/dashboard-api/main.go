package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/product-insight-dashboard-be/internal/core/export"
	"github.com/MuhamadAgungGumelar/product-insight-dashboard-be/internal/core/fixtures"
	"github.com/MuhamadAgungGumelar/product-insight-dashboard-be/internal/core/realtime"
	"github.com/MuhamadAgungGumelar/product-insight-dashboard-be/internal/modules/dashboard/handlers"
	"github.com/MuhamadAgungGumelar/product-insight-dashboard-be/internal/modules/dashboard/services"
	"github.com/MuhamadAgungGumelar/product-insight-dashboard-be/internal/shared/config"
	"github.com/MuhamadAgungGumelar/product-insight-dashboard-be/internal/shared/middleware"
	"github.com/MuhamadAgungGumelar/product-insight-dashboard-be/internal/shared/observability"
	"github.com/MuhamadAgungGumelar/product-insight-dashboard-be/internal/shared/utils"

	_ "github.com/MuhamadAgungGumelar/product-insight-dashboard-be/cmd/dashboard-api/docs"
)

const shutdownTimeout = 10 * time.Second

// @title Product Insight Dashboard API
// @version 1.0
// @description Product analytics dashboard: engagement, retention cohorts, feature adoption funnel and A/B testing results
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	// Load config
	cfg := config.LoadConfig()
	utils.InitLogger(cfg.LogLevel, cfg.IsProduction())

	log.Info().
		Str("port", cfg.Port).
		Str("env", cfg.Env).
		Int64("seed", cfg.FixtureSeed).
		Msg("Starting dashboard-api")

	// Metrics on a private registry with the runtime collectors
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(registry)

	// Fixture data source
	source := fixtures.New(cfg.FixtureSeed)

	// Live counters
	ticker := realtime.NewTicker(cfg.RealtimeSchedule, cfg.FixtureSeed, metrics)
	if cfg.RealtimeEnabled {
		if err := ticker.Start(); err != nil {
			log.Fatal().Err(err).Str("schedule", cfg.RealtimeSchedule).Msg("Failed to start realtime ticker")
		}
		defer ticker.Stop()
	}

	// Init services
	dashboardService := services.NewDashboardService(source, ticker)
	exportService := services.NewExportService(source, export.NewService(), metrics)

	// Init handlers
	healthHandler := handlers.NewHealthHandler(cfg.Env)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	exportHandler := handlers.NewExportHandler(exportService)

	// Init Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Product Insight Dashboard API",
		ErrorHandler: middleware.ErrorHandler,
	})

	// Middleware
	app.Use(cors.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.AccessLog())
	app.Use(middleware.Metrics(metrics))

	// Swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Prometheus
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	handlers.RegisterRoutes(app, healthHandler, dashboardHandler, exportHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-quit
		log.Info().Str("signal", sig.String()).Msg("Shutting down")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			log.Error().Err(err).Msg("Server shutdown failed")
		}
	}()

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
	log.Info().Msg("Server exited")
}
