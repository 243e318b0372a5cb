package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pricingdesk.app/server/internal/http/dto"
	"pricingdesk.app/server/internal/http/middleware"
	"pricingdesk.app/server/internal/service"
)

const notificationNotFound = "Notification not found"

// NotificationHandler only ever touches the caller's own notifications.
type NotificationHandler struct {
	svc service.NotificationService
}

func NewNotificationHandler(svc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

func (h *NotificationHandler) List(c *gin.Context) {
	caller, _ := middleware.IdentityFrom(c.Request.Context())
	ns, err := h.svc.List(c.Request.Context(), caller.Email)
	if err != nil {
		respondError(c, err, notificationNotFound, "Error listing notifications")
		return
	}
	c.JSON(http.StatusOK, dto.ToNotificationResponses(ns))
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	caller, _ := middleware.IdentityFrom(c.Request.Context())
	n, err := h.svc.UnreadCount(c.Request.Context(), caller.Email)
	if err != nil {
		respondError(c, err, notificationNotFound, "Error counting notifications")
		return
	}
	c.JSON(http.StatusOK, dto.UnreadCountResponse{Count: n})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	caller, _ := middleware.IdentityFrom(c.Request.Context())
	n, err := h.svc.MarkRead(c.Request.Context(), id, caller.Email)
	if err != nil {
		respondError(c, err, notificationNotFound, "Error updating notification")
		return
	}
	c.JSON(http.StatusOK, dto.ToNotificationResponse(n))
}

func (h *NotificationHandler) MarkUnread(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	caller, _ := middleware.IdentityFrom(c.Request.Context())
	n, err := h.svc.MarkUnread(c.Request.Context(), id, caller.Email)
	if err != nil {
		respondError(c, err, notificationNotFound, "Error updating notification")
		return
	}
	c.JSON(http.StatusOK, dto.ToNotificationResponse(n))
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	caller, _ := middleware.IdentityFrom(c.Request.Context())
	n, err := h.svc.MarkAllRead(c.Request.Context(), caller.Email)
	if err != nil {
		respondError(c, err, notificationNotFound, "Error updating notifications")
		return
	}
	c.JSON(http.StatusOK, dto.MarkAllReadResponse{Message: "All notifications marked as read", Updated: n})
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	caller, _ := middleware.IdentityFrom(c.Request.Context())
	if err := h.svc.Delete(c.Request.Context(), id, caller.Email); err != nil {
		respondError(c, err, notificationNotFound, "Error deleting notification")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Notification deleted"})
}
