package router

import (
	"github.com/gin-gonic/gin"

	"pricingdesk.app/server/internal/http/handler"
	"pricingdesk.app/server/internal/http/middleware"
	"pricingdesk.app/server/internal/model"
)

func PricingRequestRouter(rg *gin.RouterGroup, h *handler.PricingRequestHandler, comments *handler.CommentHandler, attachments *handler.AttachmentHandler) {
	rg.POST("", h.Submit)
	rg.GET("", h.List)
	rg.GET("/mine", h.Mine)
	rg.GET("/user/:email", h.ByRequester)
	rg.GET("/pl/archived", middleware.RequireRole(model.RolePL), h.PLArchived)
	rg.GET("/vp/archived", middleware.RequireRole(model.RoleVP), h.VPArchived)
	rg.POST("/upload-attachment", attachments.Upload)
	rg.GET("/:id", h.Get)
	rg.GET("/:id/comments", comments.List)
	rg.POST("/:id/comments", comments.Create)
}

// ApproverRouter mounts the inbox, detail and decision routes for one approver role.
func ApproverRouter(rg *gin.RouterGroup, h *handler.PricingRequestHandler, d *handler.DecisionHandler, inbox gin.HandlerFunc) {
	rg.GET("/inbox", inbox)
	rg.GET("/:id", h.Get)
	rg.POST("/:id", d.Decide)
}
