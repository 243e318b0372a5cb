package router

import (
	"github.com/gin-gonic/gin"

	"pricingdesk.app/server/internal/http/handler"
)

// AuthRouter sets up login routes
// - code sending and verification are public and rate limited per client
// - /me requires a bearer token
func AuthRouter(rg *gin.RouterGroup, h *handler.AuthHandler, ref *handler.RefDataHandler, requireAuth, limit gin.HandlerFunc) {
	rg.POST("/send-verification-code", limit, h.SendCode)
	rg.POST("/verify-code", limit, h.VerifyCode)
	rg.GET("/users/:role", ref.UsersByRole)
	rg.GET("/me", requireAuth, h.Me)
}
