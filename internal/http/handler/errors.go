package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pricingdesk.app/server/internal/http/dto"
	"pricingdesk.app/server/internal/service"
	"pricingdesk.app/server/internal/store"
	"pricingdesk.app/server/internal/workflow"
)

// respondError maps domain errors onto HTTP statuses. Anything unrecognised is
// logged and reported as a 500 with the generic fallback message.
func respondError(c *gin.Context, err error, notFound, fallback string) {
	ctx := c.Request.Context()

	var (
		verr *workflow.ValidationError
		terr *workflow.InvalidTransitionError
	)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: notFound})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: verr.Message, Field: verr.Field})
	case errors.As(err, &terr):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: terr.Error()})
	case errors.Is(err, workflow.ErrMissingEscalationTarget):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrNotCommentAuthor):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "Can only delete your own comments"})
	default:
		slog.ErrorContext(ctx, fallback, "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: fallback})
	}
}

func badRequest(c *gin.Context, err error) {
	slog.WarnContext(c.Request.Context(), "invalid request", "error", err)
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name, Field: name})
		return 0, false
	}
	return id, true
}
