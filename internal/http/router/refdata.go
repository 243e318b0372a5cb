package router

import (
	"github.com/gin-gonic/gin"

	"pricingdesk.app/server/internal/http/handler"
)

func RefDataRouter(rg *gin.RouterGroup, h *handler.RefDataHandler) {
	rg.GET("", h.All)
	rg.GET("/product-lines", h.ProductLines)
	rg.GET("/plants", h.Plants)
	rg.GET("/customers", h.Customers)
}
