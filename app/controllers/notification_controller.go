package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/creatorconnect/backend/app/models"
	"github.com/creatorconnect/backend/internal/pkg/database"
	"github.com/creatorconnect/backend/internal/pkg/usercontext"
)

// HandleListNotifications returns the authenticated user's notifications,
// newest first. Clients poll this endpoint; there is no push channel.
func HandleListNotifications(c *fiber.Ctx) error {
	offset, limit := parsePagination(c)

	var notifications []models.Notification
	err := database.GetDB().
		Where("user_id = ?", usercontext.GetUserID(c)).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&notifications).Error
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load notifications")
	}

	return c.JSON(fiber.Map{"notifications": notifications, "offset": offset, "limit": limit})
}

// HandleMarkNotificationRead marks one of the user's notifications as read
func HandleMarkNotificationRead(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid notification id")
	}

	db := database.GetDB()
	var notification models.Notification
	if err := db.First(&notification, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "Notification not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load notification")
	}

	if notification.UserID != usercontext.GetUserID(c) {
		return jsonError(c, fiber.StatusForbidden, "forbidden", "Not your notification")
	}

	if err := notification.MarkAsRead(db); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to update notification")
	}

	return c.JSON(notification)
}
