package router

import (
	"github.com/gin-gonic/gin"

	"pricingdesk.app/server/internal/http/handler"
)

func AttachmentRouter(rg *gin.RouterGroup, h *handler.AttachmentHandler) {
	rg.POST("", h.Upload)
	rg.GET("/*path", h.Download)
}
