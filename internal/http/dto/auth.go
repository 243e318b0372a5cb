package dto

import (
	"time"

	"pricingdesk.app/server/internal/model"
)

type SendCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role"`
}

type SendCodeResponse struct {
	Message string     `json:"message"`
	Email   string     `json:"email"`
	Role    model.Role `json:"role"`
}

type VerifyCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
	Role  string `json:"role" binding:"required"`
}

type SessionResponse struct {
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Role      model.Role `json:"role"`
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expires_at"`
}

type IdentityResponse struct {
	Email string     `json:"email"`
	Name  string     `json:"name"`
	Role  model.Role `json:"role"`
}

func ToIdentityResponse(id model.Identity) IdentityResponse {
	return IdentityResponse{Email: id.Email, Name: id.Name, Role: id.Role}
}
