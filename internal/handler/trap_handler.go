package handler

import (
	"github.com/gofiber/fiber/v2"

	"go-nexus-crm/internal/service"
)

type TrapHandler struct {
	trap service.TrapService
}

func NewTrapHandler(trap service.TrapService) *TrapHandler {
	return &TrapHandler{trap: trap}
}

// Status reports whether the outage flag is set
// GET /api/v1/trap
func (h *TrapHandler) Status(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"active": h.trap.Active(),
		"reason": h.trap.Reason(),
	})
}

// Trigger simulates an upstream outage; all routing is pre-empted until reset
// POST /api/v1/trap/trigger
func (h *TrapHandler) Trigger(c *fiber.Ctx) error {
	h.trap.Trigger("simulated backend outage")
	return c.JSON(fiber.Map{"message": "Backend error triggered", "active": true})
}

// Reset clears the outage flag and restores normal routing
// POST /api/v1/trap/reset
func (h *TrapHandler) Reset(c *fiber.Ctx) error {
	h.trap.Reset()
	return c.JSON(fiber.Map{"message": "Backend error reset", "active": false})
}
