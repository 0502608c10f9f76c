package handler

import (
	"github.com/gofiber/fiber/v2"

	"go-nexus-crm/internal/middleware"
	"go-nexus-crm/internal/service"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// GetDashboardStats returns overview statistics, including the caller's
// personal assigned/won counters
// GET /api/v1/dashboard
func (h *DashboardHandler) GetDashboardStats(c *fiber.Ctx) error {
	viewer := middleware.CurrentUser(c)
	return c.JSON(h.service.GetDashboardStats(viewer))
}
