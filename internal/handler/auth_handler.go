package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"go-nexus-crm/internal/service"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles user authentication
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if req.Username == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Username and password are required"})
	}

	response, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		// Generic message for every credential failure mode; anything
		// else is an internal failure, not a rejected login.
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.Status(401).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Login failed"})
	}

	return c.JSON(response)
}

// Logout clears the persisted session
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.authService.Logout(); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to clear session"})
	}
	return c.JSON(fiber.Map{"message": "Logged out"})
}

// Session returns the current authenticated identity
// GET /api/v1/auth/session
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	user, ok := h.authService.Session()
	if !ok {
		return c.Status(401).JSON(fiber.Map{"error": "Not authenticated", "redirect": "/login"})
	}
	return c.JSON(fiber.Map{"user": user})
}
