package handler

import (
	"github.com/gofiber/fiber/v2"

	"go-nexus-crm/internal/service"
)

type CompanyHandler struct {
	companyService service.CompanyService
}

func NewCompanyHandler(companyService service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// GetCompanies returns partner companies with resolved admin contacts
// GET /api/v1/companies
func (h *CompanyHandler) GetCompanies(c *fiber.Ctx) error {
	return c.JSON(h.companyService.ListCompanies())
}

// CreateCompany adds a partner company
// POST /api/v1/companies
func (h *CompanyHandler) CreateCompany(c *fiber.Ctx) error {
	var req service.CreateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	company, err := h.companyService.AddCompany(&req)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Company created successfully",
		"data":    company,
	})
}
