package router

import (
	"github.com/gin-gonic/gin"

	"pricingdesk.app/server/internal/http/handler"
)

func CommentRouter(rg *gin.RouterGroup, h *handler.CommentHandler) {
	rg.DELETE("/:commentID", h.Delete)
	rg.PATCH("/:commentID/archive", h.Archive)
	rg.PATCH("/:commentID/unarchive", h.Unarchive)
}
