package handlers

import "github.com/gofiber/fiber/v2"

// RegisterRoutes mounts the health, dashboard and export endpoints
func RegisterRoutes(router fiber.Router, health *HealthHandler, dashboard *DashboardHandler, exports *ExportHandler) {
	// Health check
	router.Get("/health", health.GetHealth)

	// Dashboard routes
	api := router.Group("/api")
	dash := api.Group("/dashboard")
	dash.Get("/pages", dashboard.GetPages)
	dash.Get("/overview", dashboard.GetOverview)
	dash.Get("/engagement", dashboard.GetEngagement)
	dash.Get("/retention", dashboard.GetRetention)
	dash.Get("/features", dashboard.GetFeatures)
	dash.Get("/testing", dashboard.GetTesting)
	dash.Get("/realtime", dashboard.GetRealtime)

	// Export routes
	api.Get("/export/:table", exports.ExportTable)
}
