package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mansoorceksport/fitpro/internal/middleware"
	"github.com/mansoorceksport/fitpro/internal/service"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboard handles GET /v1/me/dashboard
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	dashboard, err := h.dashboardService.GetDashboard(c.UserContext(), middleware.GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dashboard)
}
