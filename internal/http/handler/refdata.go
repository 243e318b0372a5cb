package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pricingdesk.app/server/internal/http/dto"
	"pricingdesk.app/server/internal/refdata"
)

type RefDataHandler struct {
	data *refdata.Data
}

func NewRefDataHandler(data *refdata.Data) *RefDataHandler {
	return &RefDataHandler{data: data}
}

func (h *RefDataHandler) All(c *gin.Context) {
	c.JSON(http.StatusOK, dto.DropdownsResponse{
		ProductLines: h.data.ProductLines,
		Plants:       h.data.Plants,
		Customers:    h.data.CustomerList(),
	})
}

func (h *RefDataHandler) ProductLines(c *gin.Context) {
	c.JSON(http.StatusOK, h.data.ProductLines)
}

func (h *RefDataHandler) Plants(c *gin.Context) {
	c.JSON(http.StatusOK, h.data.Plants)
}

func (h *RefDataHandler) Customers(c *gin.Context) {
	c.JSON(http.StatusOK, h.data.CustomerList())
}

// UsersByRole returns an empty list for unknown roles.
func (h *RefDataHandler) UsersByRole(c *gin.Context) {
	users := h.data.UsersByRole(c.Param("role"))
	out := make([]dto.UserOption, len(users))
	for i, u := range users {
		out[i] = dto.UserOption{Name: u.Name, Email: u.Email}
	}
	c.JSON(http.StatusOK, out)
}
