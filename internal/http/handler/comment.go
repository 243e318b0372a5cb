package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pricingdesk.app/server/internal/http/dto"
	"pricingdesk.app/server/internal/http/middleware"
	"pricingdesk.app/server/internal/model"
	"pricingdesk.app/server/internal/service"
)

const commentNotFound = "Comment not found"

type CommentHandler struct {
	svc service.CommentService
}

func NewCommentHandler(svc service.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

func (h *CommentHandler) List(c *gin.Context) {
	requestID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var q dto.ListCommentsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	comments, err := h.svc.List(c.Request.Context(), requestID, q.IncludeArchived)
	if err != nil {
		respondError(c, err, requestNotFound, "Error listing comments")
		return
	}
	c.JSON(http.StatusOK, dto.ToCommentResponses(comments))
}

func (h *CommentHandler) Create(c *gin.Context) {
	requestID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	caller, _ := middleware.IdentityFrom(c.Request.Context())
	author := model.Party{Email: caller.Email}
	if caller.Name != "" {
		author.Name = &caller.Name
	}

	comment, err := h.svc.Create(c.Request.Context(), requestID, author, req.Content)
	if err != nil {
		respondError(c, err, requestNotFound, "Error creating comment")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCommentResponse(comment))
}

func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "commentID")
	if !ok {
		return
	}
	caller, _ := middleware.IdentityFrom(c.Request.Context())

	if err := h.svc.Delete(c.Request.Context(), id, caller.Email); err != nil {
		respondError(c, err, commentNotFound, "Error deleting comment")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Comment deleted"})
}

func (h *CommentHandler) Archive(c *gin.Context) {
	h.setArchived(c, true)
}

func (h *CommentHandler) Unarchive(c *gin.Context) {
	h.setArchived(c, false)
}

func (h *CommentHandler) setArchived(c *gin.Context, archived bool) {
	id, ok := pathID(c, "commentID")
	if !ok {
		return
	}
	comment, err := h.svc.SetArchived(c.Request.Context(), id, archived)
	if err != nil {
		respondError(c, err, commentNotFound, "Error updating comment")
		return
	}
	c.JSON(http.StatusOK, dto.ToCommentResponse(comment))
}
