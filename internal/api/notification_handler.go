package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/plague-community-hub/internal/notify"
)

// NotificationHandler handles toast endpoints
type NotificationHandler struct {
	queue *notify.Queue
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(queue *notify.Queue) *NotificationHandler {
	return &NotificationHandler{queue: queue}
}

// List handles GET /v1/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"notifications": h.queue.List()})
}

// Dismiss handles DELETE /v1/notifications/:id
func (h *NotificationHandler) Dismiss(c *gin.Context) {
	if !h.queue.Remove(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
