package dto

import (
	"github.com/shopspring/decimal"

	"pricingdesk.app/server/internal/model"
	"pricingdesk.app/server/internal/service"
)

type DecisionRequest struct {
	Action         model.Action     `json:"action" binding:"required,oneof=APPROVE REJECT ESCALATE" jsonschema:"enum=APPROVE,enum=REJECT,enum=ESCALATE"`
	SuggestedPrice *decimal.Decimal `json:"suggested_price,omitempty"`
	Comments       string           `json:"comments,omitempty" binding:"max=5000" jsonschema:"description=Required for VP decisions and for PL REJECT or ESCALATE"`
}

func (r DecisionRequest) ToModel() model.Decision {
	return model.Decision{
		Action:         r.Action,
		SuggestedPrice: r.SuggestedPrice,
		Comments:       r.Comments,
	}
}

type DecisionResponse struct {
	Message    string              `json:"message"`
	RequestID  int64               `json:"request_id,string"`
	Status     model.RequestStatus `json:"status"`
	FinalPrice *decimal.Decimal    `json:"final_price,omitempty"`
}

func ToDecisionResponse(r *service.DecisionResult) DecisionResponse {
	return DecisionResponse{
		Message:    r.Message,
		RequestID:  r.RequestID,
		Status:     r.Status,
		FinalPrice: r.FinalPrice,
	}
}
