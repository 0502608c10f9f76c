package handler

import (
	"github.com/gofiber/fiber/v2"

	"go-nexus-crm/internal/repository"
	"go-nexus-crm/internal/service"
)

type RoleHandler struct {
	roleRepo      repository.RoleRepository
	authorityRepo repository.AuthorityRepository
	userService   service.UserService
}

func NewRoleHandler(roleRepo repository.RoleRepository, authorityRepo repository.AuthorityRepository, userService service.UserService) *RoleHandler {
	return &RoleHandler{
		roleRepo:      roleRepo,
		authorityRepo: authorityRepo,
		userService:   userService,
	}
}

// GetRoles returns all roles
// GET /api/v1/roles
func (h *RoleHandler) GetRoles(c *fiber.Ctx) error {
	return c.JSON(h.roleRepo.FindAll())
}

// CreateRole creates a role with a normalized name
// POST /api/v1/roles
func (h *RoleHandler) CreateRole(c *fiber.Ctx) error {
	var req service.CreateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	role, err := h.userService.CreateRole(&req)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Role created successfully",
		"data":    role,
	})
}

// GetAuthorities returns the authority registry
// GET /api/v1/authorities
func (h *RoleHandler) GetAuthorities(c *fiber.Ctx) error {
	return c.JSON(h.authorityRepo.FindAll())
}

// CreateAuthority creates an authority with a normalized name
// POST /api/v1/authorities
func (h *RoleHandler) CreateAuthority(c *fiber.Ctx) error {
	var req service.CreateAuthorityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	authority, err := h.userService.CreateAuthority(&req)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Authority created successfully",
		"data":    authority,
	})
}
