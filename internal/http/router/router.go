package router

import (
	"github.com/gin-gonic/gin"

	"pricingdesk.app/server/internal/http/handler"
	"pricingdesk.app/server/internal/http/middleware"
	"pricingdesk.app/server/internal/model"
	"pricingdesk.app/server/internal/refdata"
	"pricingdesk.app/server/internal/service"
	"pricingdesk.app/server/internal/store"
)

type RouterConfig struct {
	RefData        *refdata.Data
	Attachments    store.AttachmentStore
	UploadMaxBytes int64
	CodesPerMinute int
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authSvc := services.Auth()
	requireAuth := middleware.RequireAuth(authSvc)

	v1 := router.Group("/api/v1")
	{
		authHandler := handler.NewAuthHandler(authSvc)
		refHandler := handler.NewRefDataHandler(cfg.RefData)
		limiter := middleware.NewRateLimiter(cfg.CodesPerMinute)
		AuthRouter(v1.Group("/auth"), authHandler, refHandler, requireAuth, limiter.Middleware())

		RefDataRouter(v1.Group("/dropdowns"), refHandler)

		schemaHandler := handler.NewSchemaHandler()
		v1.GET("/schemas/:name", schemaHandler.Get)

		authed := v1.Group("")
		authed.Use(requireAuth)

		requestHandler := handler.NewPricingRequestHandler(services.PricingRequests())
		commentHandler := handler.NewCommentHandler(services.Comments())
		attachmentHandler := handler.NewAttachmentHandler(cfg.Attachments, cfg.UploadMaxBytes)
		PricingRequestRouter(authed.Group("/pricing-requests"), requestHandler, commentHandler, attachmentHandler)
		CommentRouter(authed.Group("/comments"), commentHandler)
		AttachmentRouter(authed.Group("/attachments"), attachmentHandler)

		decisions := services.Decisions()
		ApproverRouter(authed.Group("/pl", middleware.RequireRole(model.RolePL)),
			requestHandler, handler.NewDecisionHandler(decisions, model.RolePL), requestHandler.PLInbox)
		ApproverRouter(authed.Group("/vp", middleware.RequireRole(model.RoleVP)),
			requestHandler, handler.NewDecisionHandler(decisions, model.RoleVP), requestHandler.VPInbox)

		NotificationRouter(authed.Group("/notifications"), handler.NewNotificationHandler(services.Notifications()))
	}
}
