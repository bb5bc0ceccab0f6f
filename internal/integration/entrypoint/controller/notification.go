// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ledgerly/backend/internal/application/adapter"
	"github.com/ledgerly/backend/internal/integration/entrypoint/dto"
)

// NotificationController exposes the one-slot notification sink.
type NotificationController struct {
	notifier adapter.Notifier
}

// NewNotificationController creates a new notification controller instance.
func NewNotificationController(notifier adapter.Notifier) *NotificationController {
	return &NotificationController{notifier: notifier}
}

// Latest handles GET /notifications/latest requests. Reading the slot
// consumes it: the message is cleared once delivered.
func (c *NotificationController) Latest(ctx *gin.Context) {
	notification := c.notifier.Latest()
	if notification == nil {
		ctx.Status(http.StatusNoContent)
		return
	}

	c.notifier.Clear()
	ctx.JSON(http.StatusOK, dto.ToNotificationResponse(notification))
}

// Clear handles DELETE /notifications/latest requests. Discarding an empty
// slot is a no-op.
func (c *NotificationController) Clear(ctx *gin.Context) {
	c.notifier.Clear()
	ctx.Status(http.StatusNoContent)
}
