package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pricingdesk.app/server/internal/http/dto"
	"pricingdesk.app/server/internal/http/middleware"
	"pricingdesk.app/server/internal/model"
	"pricingdesk.app/server/internal/service"
)

const requestNotFound = "Request not found"

type PricingRequestHandler struct {
	svc service.PricingRequestService
}

func NewPricingRequestHandler(svc service.PricingRequestService) *PricingRequestHandler {
	return &PricingRequestHandler{svc: svc}
}

func (h *PricingRequestHandler) Submit(c *gin.Context) {
	var req dto.SubmitPricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	created, err := h.svc.Submit(c.Request.Context(), req.ToModel())
	if err != nil {
		respondError(c, err, requestNotFound, "Error creating pricing request")
		return
	}

	c.JSON(http.StatusCreated, dto.SubmitPricingResponse{
		Message:       "Pricing request submitted successfully",
		ID:            created.ID,
		CostingNumber: created.CostingNumber,
		Status:        created.Status,
	})
}

func (h *PricingRequestHandler) List(c *gin.Context) {
	var q dto.ListPricingRequestsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	if q.Status != "" && !model.RequestStatus(q.Status).IsValid() {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "unknown status " + q.Status, Field: "status"})
		return
	}

	reqs, err := h.svc.List(c.Request.Context(), q.Filter(), q.Limit, q.Offset)
	if err != nil {
		respondError(c, err, requestNotFound, "Error listing pricing requests")
		return
	}
	c.JSON(http.StatusOK, dto.ToPricingRequestResponses(reqs))
}

func (h *PricingRequestHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	req, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, requestNotFound, "Error loading pricing request")
		return
	}
	c.JSON(http.StatusOK, dto.ToPricingRequestResponse(req))
}

// Mine lists the caller's own submissions.
func (h *PricingRequestHandler) Mine(c *gin.Context) {
	caller, _ := middleware.IdentityFrom(c.Request.Context())
	h.listByRequester(c, caller.Email)
}

func (h *PricingRequestHandler) ByRequester(c *gin.Context) {
	h.listByRequester(c, c.Param("email"))
}

func (h *PricingRequestHandler) listByRequester(c *gin.Context, email string) {
	reqs, err := h.svc.ListByRequester(c.Request.Context(), email)
	if err != nil {
		respondError(c, err, requestNotFound, "Error listing pricing requests")
		return
	}
	c.JSON(http.StatusOK, dto.ToPricingRequestResponses(reqs))
}

func (h *PricingRequestHandler) PLInbox(c *gin.Context) {
	archived, _ := strconv.ParseBool(c.DefaultQuery("archived", "false"))
	caller, _ := middleware.IdentityFrom(c.Request.Context())

	reqs, err := h.svc.PLInbox(c.Request.Context(), caller.Email, archived)
	if err != nil {
		respondError(c, err, requestNotFound, "Error loading PL inbox")
		return
	}
	c.JSON(http.StatusOK, dto.ToPricingRequestResponses(reqs))
}

func (h *PricingRequestHandler) PLArchived(c *gin.Context) {
	caller, _ := middleware.IdentityFrom(c.Request.Context())
	reqs, err := h.svc.PLArchived(c.Request.Context(), caller.Email)
	if err != nil {
		respondError(c, err, requestNotFound, "Error loading PL archive")
		return
	}
	c.JSON(http.StatusOK, dto.ToPricingRequestResponses(reqs))
}

func (h *PricingRequestHandler) VPInbox(c *gin.Context) {
	caller, _ := middleware.IdentityFrom(c.Request.Context())
	reqs, err := h.svc.VPInbox(c.Request.Context(), caller.Email)
	if err != nil {
		respondError(c, err, requestNotFound, "Error loading VP inbox")
		return
	}
	c.JSON(http.StatusOK, dto.ToPricingRequestResponses(reqs))
}

func (h *PricingRequestHandler) VPArchived(c *gin.Context) {
	caller, _ := middleware.IdentityFrom(c.Request.Context())
	reqs, err := h.svc.VPArchived(c.Request.Context(), caller.Email)
	if err != nil {
		respondError(c, err, requestNotFound, "Error loading VP archive")
		return
	}
	c.JSON(http.StatusOK, dto.ToPricingRequestResponses(reqs))
}
