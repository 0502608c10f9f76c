package handler

import (
	"github.com/gofiber/fiber/v2"

	"go-nexus-crm/internal/service"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetUsers returns users, optionally filtered
// GET /api/v1/users?status=ACTIVE&q=emp
func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	status := c.Query("status", "ALL")
	query := c.Query("q")
	return c.JSON(h.userService.ListUsers(status, query))
}

// GetUser returns a single user by ID
// GET /api/v1/users/:id
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	user, err := h.userService.GetUserByID(c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}
	return c.JSON(user)
}

// GetAssignableUsers returns active users for assignment pickers
// GET /api/v1/users/assignable
func (h *UserHandler) GetAssignableUsers(c *fiber.Ctx) error {
	return c.JSON(h.userService.AssignableUsers())
}

// CreateUser handles user creation
// POST /api/v1/users
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req service.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	user, err := h.userService.CreateUser(&req)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "User created successfully",
		"data":    user,
	})
}

// UpdateUser handles partial user update (merge semantics)
// PUT /api/v1/users/:id
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	var req service.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	user, err := h.userService.UpdateUser(c.Params("id"), &req)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message": "User updated successfully",
		"data":    user,
	})
}

// ToggleUserStatus flips the account-active flag
// PUT /api/v1/users/:id/status
func (h *UserHandler) ToggleUserStatus(c *fiber.Ctx) error {
	user, err := h.userService.ToggleUserStatus(c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{
		"message": "User status updated",
		"data":    user,
	})
}

// UpdateUserAuthorities replaces the user's explicit authority overrides
// PUT /api/v1/users/:id/authorities
func (h *UserHandler) UpdateUserAuthorities(c *fiber.Ctx) error {
	var req struct {
		Authorities []string `json:"authorities"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	user, err := h.userService.UpdateUserAuthorities(c.Params("id"), req.Authorities)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message": "Authorities updated successfully",
		"data":    user,
	})
}
