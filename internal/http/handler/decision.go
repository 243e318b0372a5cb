package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pricingdesk.app/server/internal/http/dto"
	"pricingdesk.app/server/internal/model"
	"pricingdesk.app/server/internal/service"
)

// DecisionHandler serves one approver role; mount one per role.
type DecisionHandler struct {
	svc  service.DecisionService
	role model.Role
}

func NewDecisionHandler(svc service.DecisionService, role model.Role) *DecisionHandler {
	return &DecisionHandler{svc: svc, role: role}
}

func (h *DecisionHandler) Decide(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.svc.Decide(c.Request.Context(), id, h.role, req.ToModel())
	if err != nil {
		respondError(c, err, requestNotFound, "Error processing decision")
		return
	}
	c.JSON(http.StatusOK, dto.ToDecisionResponse(res))
}
