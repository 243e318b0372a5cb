package handler

import (
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/invopop/jsonschema"
	"github.com/shopspring/decimal"

	"pricingdesk.app/server/internal/http/dto"
)

// SchemaHandler publishes JSON Schemas of the write payloads for form validation.
type SchemaHandler struct {
	schemas map[string]*jsonschema.Schema
}

func NewSchemaHandler() *SchemaHandler {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
		Mapper:                    mapDecimal,
	}
	return &SchemaHandler{
		schemas: map[string]*jsonschema.Schema{
			"pricing-request": reflector.Reflect(&dto.SubmitPricingRequest{}),
			"decision":        reflector.Reflect(&dto.DecisionRequest{}),
			"comment":         reflector.Reflect(&dto.CreateCommentRequest{}),
		},
	}
}

func (h *SchemaHandler) Get(c *gin.Context) {
	s, ok := h.schemas[c.Param("name")]
	if !ok {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Schema not found"})
		return
	}
	c.JSON(http.StatusOK, s)
}

// prices travel as decimal strings or numbers
func mapDecimal(t reflect.Type) *jsonschema.Schema {
	if t != reflect.TypeOf(decimal.Decimal{}) {
		return nil
	}
	return &jsonschema.Schema{
		OneOf: []*jsonschema.Schema{
			{Type: "string", Pattern: `^-?\d+(\.\d+)?$`},
			{Type: "number"},
		},
	}
}
