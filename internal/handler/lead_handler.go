package handler

import (
	"github.com/gofiber/fiber/v2"

	"go-nexus-crm/internal/middleware"
	"go-nexus-crm/internal/model"
	"go-nexus-crm/internal/service"
)

type LeadHandler struct {
	leadService service.LeadService
}

func NewLeadHandler(leadService service.LeadService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

// GetLeads returns leads visible to the caller. EMPLOYEE viewers only see
// their own assignments.
// GET /api/v1/leads?status=WON&q=acme
func (h *LeadHandler) GetLeads(c *fiber.Ctx) error {
	viewer := middleware.CurrentUser(c)
	status := c.Query("status", "ALL")
	query := c.Query("q")
	return c.JSON(h.leadService.ListLeads(viewer, status, query))
}

// CreateLead creates a new lead in status NEW
// POST /api/v1/leads
func (h *LeadHandler) CreateLead(c *fiber.Ctx) error {
	var req service.CreateLeadRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	lead, err := h.leadService.AddLead(&req)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Lead created successfully",
		"data":    lead,
	})
}

// ImportLead creates a lead through the import path
// POST /api/v1/leads/import
func (h *LeadHandler) ImportLead(c *fiber.Ctx) error {
	var req service.CreateLeadRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	lead, err := h.leadService.ImportLead(&req)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Lead imported successfully",
		"data":    lead,
	})
}

// UpdateLead handles partial lead update: status changes, reassignment
// PUT /api/v1/leads/:id
func (h *LeadHandler) UpdateLead(c *fiber.Ctx) error {
	var upd model.LeadUpdate
	if err := c.BodyParser(&upd); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	lead, err := h.leadService.UpdateLead(c.Params("id"), upd)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message": "Lead updated successfully",
		"data":    lead,
	})
}
