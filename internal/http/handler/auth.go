package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pricingdesk.app/server/internal/http/dto"
	"pricingdesk.app/server/internal/http/middleware"
	"pricingdesk.app/server/internal/service"
)

type AuthHandler struct {
	svc service.AuthService
}

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) SendCode(c *gin.Context) {
	var req dto.SendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	addr, role, err := h.svc.SendCode(c.Request.Context(), req.Email, req.Role)
	if err != nil {
		respondError(c, err, "", "Error sending verification code")
		return
	}

	c.JSON(http.StatusOK, dto.SendCodeResponse{
		Message: "Verification code sent to email",
		Email:   addr,
		Role:    role,
	})
}

func (h *AuthHandler) VerifyCode(c *gin.Context) {
	var req dto.VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	sess, err := h.svc.VerifyCode(c.Request.Context(), req.Email, req.Code, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoCodeSent),
			errors.Is(err, service.ErrInvalidCode),
			errors.Is(err, service.ErrRoleMismatch):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		default:
			respondError(c, err, "", "Error verifying code")
		}
		return
	}

	c.JSON(http.StatusOK, dto.SessionResponse{
		Email:     sess.Identity.Email,
		Name:      sess.Identity.Name,
		Role:      sess.Identity.Role,
		Token:     sess.Token,
		ExpiresAt: sess.ExpiresAt,
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "not authenticated"})
		return
	}
	c.JSON(http.StatusOK, dto.ToIdentityResponse(id))
}
