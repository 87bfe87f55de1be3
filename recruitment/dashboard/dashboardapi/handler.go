package dashboardapi

import (
	"github.com/MieMoo/recruitment-module/pkg/iam/auth"
	"github.com/MieMoo/recruitment-module/recruitment/dashboard/dashboardsrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for the dashboard
type Handlers struct {
	service *dashboardsrv.DashboardService
}

// NewHandlers creates a new dashboard handlers instance
func NewHandlers(service *dashboardsrv.DashboardService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// GetOverview retrieves the full dashboard payload
// GET /api/dashboard
func (h *Handlers) GetOverview(c *fiber.Ctx) error {
	overview, err := h.service.GetOverview(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(overview)
}

// GetStats retrieves pipeline counters
// GET /api/dashboard/stats
func (h *Handlers) GetStats(c *fiber.Ctx) error {
	stats, err := h.service.GetStats(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(stats)
}

// RegisterRoutes registers all dashboard routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	api := app.Group("/api/dashboard")

	api.Get("/",
		authMiddleware.Authenticate(),
		handlers.GetOverview,
	)

	api.Get("/stats",
		authMiddleware.Authenticate(),
		handlers.GetStats,
	)
}
