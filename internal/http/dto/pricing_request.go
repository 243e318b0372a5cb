package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"pricingdesk.app/server/internal/model"
)

type SubmitPricingRequest struct {
	CostingNumber  string          `json:"costing_number" binding:"required,max=100" jsonschema:"maxLength=100"`
	ProjectName    string          `json:"project_name" binding:"required,max=255" jsonschema:"maxLength=255"`
	Customer       string          `json:"customer" binding:"required,max=255" jsonschema:"maxLength=255"`
	ProductLine    string          `json:"product_line" binding:"required,max=255" jsonschema:"maxLength=255"`
	Plant          string          `json:"plant" binding:"required,max=255" jsonschema:"maxLength=255"`
	YearlySales    decimal.Decimal `json:"yearly_sales"`
	InitialPrice   decimal.Decimal `json:"initial_price"`
	TargetPrice    decimal.Decimal `json:"target_price" jsonschema:"description=Must not exceed initial_price"`
	ProblemToSolve string          `json:"problem_to_solve" binding:"required"`
	AttachmentPath *string         `json:"attachment_path,omitempty"`
	RequesterEmail string          `json:"requester_email" binding:"required,email" jsonschema:"format=email"`
	RequesterName  string          `json:"requester_name" binding:"required,max=255" jsonschema:"maxLength=255"`
	PLEmail        string          `json:"pl_email" binding:"required,email" jsonschema:"format=email"`
	PLName         *string         `json:"pl_name,omitempty"`
	VPEmail        *string         `json:"vp_email,omitempty" binding:"omitempty,email" jsonschema:"format=email"`
	VPName         *string         `json:"vp_name,omitempty"`
}

func (r SubmitPricingRequest) ToModel() model.Submission {
	return model.Submission{
		CostingNumber:  r.CostingNumber,
		ProjectName:    r.ProjectName,
		Customer:       r.Customer,
		ProductLine:    r.ProductLine,
		Plant:          r.Plant,
		YearlySales:    r.YearlySales,
		InitialPrice:   r.InitialPrice,
		TargetPrice:    r.TargetPrice,
		ProblemToSolve: r.ProblemToSolve,
		AttachmentPath: r.AttachmentPath,
		RequesterEmail: r.RequesterEmail,
		RequesterName:  r.RequesterName,
		PLEmail:        r.PLEmail,
		PLName:         r.PLName,
		VPEmail:        r.VPEmail,
		VPName:         r.VPName,
	}
}

type SubmitPricingResponse struct {
	Message       string              `json:"message"`
	ID            int64               `json:"id,string"`
	CostingNumber string              `json:"costing_number"`
	Status        model.RequestStatus `json:"status"`
}

type ListPricingRequestsQuery struct {
	Status         string `form:"status"`
	ProductLine    string `form:"product_line"`
	RequesterEmail string `form:"requester_email"`
	Limit          int32  `form:"limit" binding:"omitempty,min=1,max=500"`
	Offset         int32  `form:"offset" binding:"omitempty,min=0"`
}

func (q ListPricingRequestsQuery) Filter() model.RequestFilter {
	var f model.RequestFilter
	if q.Status != "" {
		s := model.RequestStatus(q.Status)
		f.Status = &s
	}
	if q.ProductLine != "" {
		f.ProductLine = &q.ProductLine
	}
	if q.RequesterEmail != "" {
		f.RequesterEmail = &q.RequesterEmail
	}
	return f
}

type PricingRequestResponse struct {
	ID                 int64               `json:"id,string"`
	CostingNumber      string              `json:"costing_number"`
	ProjectName        string              `json:"project_name"`
	Customer           string              `json:"customer"`
	ProductLine        string              `json:"product_line"`
	Plant              string              `json:"plant"`
	YearlySales        decimal.Decimal     `json:"yearly_sales"`
	InitialPrice       decimal.Decimal     `json:"initial_price"`
	TargetPrice        decimal.Decimal     `json:"target_price"`
	DeviationPercent   decimal.Decimal     `json:"deviation_percent"`
	ProblemToSolve     string              `json:"problem_to_solve"`
	AttachmentPath     *string             `json:"attachment_path"`
	RequesterEmail     string              `json:"requester_email"`
	RequesterName      string              `json:"requester_name"`
	PLEmail            string              `json:"pl_email"`
	PLName             *string             `json:"pl_name"`
	VPEmail            *string             `json:"vp_email"`
	VPName             *string             `json:"vp_name"`
	PLSuggestedPrice   *decimal.Decimal    `json:"pl_suggested_price"`
	PLComments         *string             `json:"pl_comments"`
	PLDecisionDate     *time.Time          `json:"pl_decision_date"`
	VPSuggestedPrice   *decimal.Decimal    `json:"vp_suggested_price"`
	VPComments         *string             `json:"vp_comments"`
	VPDecisionDate     *time.Time          `json:"vp_decision_date"`
	FinalApprovedPrice *decimal.Decimal    `json:"final_approved_price"`
	Status             model.RequestStatus `json:"status"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

func ToPricingRequestResponse(r *model.PricingRequest) PricingRequestResponse {
	return PricingRequestResponse{
		ID:                 r.ID,
		CostingNumber:      r.CostingNumber,
		ProjectName:        r.ProjectName,
		Customer:           r.Customer,
		ProductLine:        r.ProductLine,
		Plant:              r.Plant,
		YearlySales:        r.YearlySales,
		InitialPrice:       r.InitialPrice,
		TargetPrice:        r.TargetPrice,
		DeviationPercent:   r.DeviationPercent(),
		ProblemToSolve:     r.ProblemToSolve,
		AttachmentPath:     r.AttachmentPath,
		RequesterEmail:     r.RequesterEmail,
		RequesterName:      r.RequesterName,
		PLEmail:            r.PLEmail,
		PLName:             r.PLName,
		VPEmail:            r.VPEmail,
		VPName:             r.VPName,
		PLSuggestedPrice:   r.PLSuggestedPrice,
		PLComments:         r.PLComments,
		PLDecisionDate:     r.PLDecisionDate,
		VPSuggestedPrice:   r.VPSuggestedPrice,
		VPComments:         r.VPComments,
		VPDecisionDate:     r.VPDecisionDate,
		FinalApprovedPrice: r.FinalApprovedPrice,
		Status:             r.Status,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

func ToPricingRequestResponses(reqs []model.PricingRequest) []PricingRequestResponse {
	out := make([]PricingRequestResponse, len(reqs))
	for i := range reqs {
		out[i] = ToPricingRequestResponse(&reqs[i])
	}
	return out
}
