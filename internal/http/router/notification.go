package router

import (
	"github.com/gin-gonic/gin"

	"pricingdesk.app/server/internal/http/handler"
)

func NotificationRouter(rg *gin.RouterGroup, h *handler.NotificationHandler) {
	rg.GET("", h.List)
	rg.GET("/unread-count", h.UnreadCount)
	rg.PATCH("/read-all", h.MarkAllRead)
	rg.PATCH("/:id/read", h.MarkRead)
	rg.PATCH("/:id/unread", h.MarkUnread)
	rg.DELETE("/:id", h.Delete)
}
