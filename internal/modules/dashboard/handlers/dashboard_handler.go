package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/product-insight-dashboard-be/internal/modules/dashboard/services"
	"github.com/MuhamadAgungGumelar/product-insight-dashboard-be/internal/shared/middleware"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetPages godoc
// @Summary Dashboard navigation
// @Description List the dashboard pages and the API endpoint backing each one
// @Tags Dashboard
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/dashboard/pages [get]
func (h *DashboardHandler) GetPages(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "success",
		"data":   h.dashboardService.Pages(),
	})
}

// GetOverview godoc
// @Summary Overview page
// @Description Key metrics, live counters, daily active users and sessions by hour
// @Tags Dashboard
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/dashboard/overview [get]
func (h *DashboardHandler) GetOverview(c *fiber.Ctx) error {
	page, err := h.dashboardService.Overview()
	if err != nil {
		return h.fail(c, "overview", err)
	}
	return c.JSON(fiber.Map{"status": "success", "data": page})
}

// GetEngagement godoc
// @Summary User engagement page
// @Description Session trends, active users by hour, segments, regions and top pages
// @Tags Dashboard
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/dashboard/engagement [get]
func (h *DashboardHandler) GetEngagement(c *fiber.Ctx) error {
	page, err := h.dashboardService.Engagement()
	if err != nil {
		return h.fail(c, "engagement", err)
	}
	return c.JSON(fiber.Map{"status": "success", "data": page})
}

// GetRetention godoc
// @Summary Retention analysis page
// @Description Retention curve, cohort comparison and the weekly cohort grid with retention bands
// @Tags Dashboard
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/dashboard/retention [get]
func (h *DashboardHandler) GetRetention(c *fiber.Ctx) error {
	page, err := h.dashboardService.Retention()
	if err != nil {
		return h.fail(c, "retention", err)
	}
	return c.JSON(fiber.Map{"status": "success", "data": page})
}

// GetFeatures godoc
// @Summary Feature usage page
// @Description Daily feature usage, the adoption funnel and the top features table
// @Tags Dashboard
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/dashboard/features [get]
func (h *DashboardHandler) GetFeatures(c *fiber.Ctx) error {
	page, err := h.dashboardService.Features()
	if err != nil {
		return h.fail(c, "features", err)
	}
	return c.JSON(fiber.Map{"status": "success", "data": page})
}

// GetTesting godoc
// @Summary Hypothesis testing page
// @Description Experiment summary, active A/B tests with lift, completed tests and statistical tests
// @Tags Dashboard
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/dashboard/testing [get]
func (h *DashboardHandler) GetTesting(c *fiber.Ctx) error {
	page, err := h.dashboardService.Testing()
	if err != nil {
		return h.fail(c, "testing", err)
	}
	return c.JSON(fiber.Map{"status": "success", "data": page})
}

// GetRealtime godoc
// @Summary Live counters
// @Description Current event and active user counters
// @Tags Dashboard
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/dashboard/realtime [get]
func (h *DashboardHandler) GetRealtime(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "success",
		"data":   h.dashboardService.Realtime(),
	})
}

func (h *DashboardHandler) fail(c *fiber.Ctx, page string, err error) error {
	log.Error().
		Err(err).
		Str("page", page).
		Str("request_id", middleware.GetRequestID(c)).
		Msg("Failed to build dashboard page")

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Failed to load " + page + " data",
	})
}
