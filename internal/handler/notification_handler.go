package handler

import (
	"github.com/gofiber/fiber/v2"

	"go-nexus-crm/internal/middleware"
	"go-nexus-crm/internal/service"
)

type NotificationHandler struct {
	notificationService service.NotificationService
}

func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// GetNotifications returns the caller's notifications, newest first
// GET /api/v1/notifications
func (h *NotificationHandler) GetNotifications(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return c.Status(401).JSON(fiber.Map{"error": "Not authenticated", "redirect": "/login"})
	}
	return c.JSON(h.notificationService.ListForUser(user.ID))
}

// SendNotification delivers a message to a recipient user
// POST /api/v1/notifications
func (h *NotificationHandler) SendNotification(c *fiber.Ctx) error {
	var req struct {
		ToUserID string `json:"toUserId"`
		Message  string `json:"message"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if req.ToUserID == "" || req.Message == "" {
		return c.Status(400).JSON(fiber.Map{"error": "toUserId and message are required"})
	}

	if err := h.notificationService.Send(req.ToUserID, req.Message); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to send notification"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Notification sent"})
}

// MarkNotificationRead flips the read flag
// PUT /api/v1/notifications/:id/read
func (h *NotificationHandler) MarkNotificationRead(c *fiber.Ctx) error {
	n, err := h.notificationService.MarkRead(c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{
		"message": "Notification marked as read",
		"data":    n,
	})
}
