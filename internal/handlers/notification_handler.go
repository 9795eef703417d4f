package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/tareqmahmud/connecthub/backend/internal/repositories"
)

// NotificationHandler handles HTTP requests related to notifications.
type NotificationHandler struct {
	notificationRepository repositories.NotificationRepository
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notifRepo repositories.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{notificationRepository: notifRepo}
}

// RegisterNotificationRoutes registers notification-related routes.
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.GET("/users/:id/notifications", h.GetNotifications)
	g.GET("/users/:id/notifications/unread-count", h.GetUnreadCount)
	g.PUT("/notifications/:id/read", h.MarkAsRead)
	g.PUT("/users/:id/notifications/read-all", h.MarkAllAsRead)
}

// GetNotifications lists a user's notifications, newest first, paginated.
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	recipientID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}

	notifications, total, err := h.notificationRepository.GetByRecipientID(recipientID, page, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not list notifications")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"notifications": notifications},
		"meta":    echo.Map{"currentPage": page, "totalItems": total, "itemsPerPage": limit},
	})
}

// GetUnreadCount returns the number of unread notifications.
func (h *NotificationHandler) GetUnreadCount(c echo.Context) error {
	recipientID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	count, err := h.notificationRepository.GetUnreadCount(recipientID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not count notifications")
	}

	return c.JSON(http.StatusOK, echo.Map{"unread_count": count})
}

// MarkAsRead marks a single notification as read.
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.notificationRepository.MarkAsRead(id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not mark notification as read")
	}

	return c.NoContent(http.StatusNoContent)
}

// MarkAllAsRead marks all of a user's notifications as read.
func (h *NotificationHandler) MarkAllAsRead(c echo.Context) error {
	recipientID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.notificationRepository.MarkAllAsRead(recipientID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not mark notifications as read")
	}

	return c.NoContent(http.StatusNoContent)
}
