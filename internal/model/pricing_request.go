package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type RequestStatus string

const (
	RequestStatusUnderReviewPL    RequestStatus = "UNDER_REVIEW_PL"
	RequestStatusApprovedByPL     RequestStatus = "APPROVED_BY_PL"
	RequestStatusRejectedByPL     RequestStatus = "REJECTED_BY_PL"
	RequestStatusEscalatedToVP    RequestStatus = "ESCALATED_TO_VP"
	RequestStatusApprovedByVP     RequestStatus = "APPROVED_BY_VP"
	RequestStatusRejectedByVP     RequestStatus = "REJECTED_BY_VP"
	RequestStatusBackToCommercial RequestStatus = "BACK_TO_COMMERCIAL"
	RequestStatusClosed           RequestStatus = "CLOSED"
)

// PLDecidedStatuses are the statuses a request can hold once the Product Line
// has acted on it, including everything downstream of an escalation.
var PLDecidedStatuses = []RequestStatus{
	RequestStatusApprovedByPL,
	RequestStatusRejectedByPL,
	RequestStatusEscalatedToVP,
	RequestStatusApprovedByVP,
	RequestStatusRejectedByVP,
}

var VPDecidedStatuses = []RequestStatus{
	RequestStatusApprovedByVP,
	RequestStatusRejectedByVP,
}

func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusUnderReviewPL, RequestStatusApprovedByPL, RequestStatusRejectedByPL,
		RequestStatusEscalatedToVP, RequestStatusApprovedByVP, RequestStatusRejectedByVP,
		RequestStatusBackToCommercial, RequestStatusClosed:
		return true
	}
	return false
}

// IsTerminal reports whether no further decision can be taken.
func (s RequestStatus) IsTerminal() bool {
	switch s {
	case RequestStatusApprovedByPL, RequestStatusRejectedByPL, RequestStatusApprovedByVP,
		RequestStatusRejectedByVP, RequestStatusClosed:
		return true
	}
	return false
}

// IsVPEngaged reports whether the VP has been pulled into the request.
func (s RequestStatus) IsVPEngaged() bool {
	switch s {
	case RequestStatusEscalatedToVP, RequestStatusApprovedByVP, RequestStatusRejectedByVP:
		return true
	}
	return false
}

// Party identifies a participant by email with an optional display name.
type Party struct {
	Email string
	Name  *string
}

// DisplayName falls back to the email when no name is known.
func (p Party) DisplayName() string {
	if p.Name != nil && *p.Name != "" {
		return *p.Name
	}
	return p.Email
}

type PricingRequest struct {
	ID             int64
	CostingNumber  string
	ProjectName    string
	Customer       string
	ProductLine    string
	Plant          string
	YearlySales    decimal.Decimal
	InitialPrice   decimal.Decimal
	TargetPrice    decimal.Decimal
	ProblemToSolve string
	AttachmentPath *string

	RequesterEmail string
	RequesterName  string
	PLEmail        string
	PLName         *string
	VPEmail        *string
	VPName         *string

	PLSuggestedPrice *decimal.Decimal
	PLComments       *string
	PLDecisionDate   *time.Time

	VPSuggestedPrice *decimal.Decimal
	VPComments       *string
	VPDecisionDate   *time.Time

	FinalApprovedPrice *decimal.Decimal
	Status             RequestStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (r *PricingRequest) Requester() Party {
	return Party{Email: r.RequesterEmail, Name: &r.RequesterName}
}

func (r *PricingRequest) ProductLineResponsible() Party {
	return Party{Email: r.PLEmail, Name: r.PLName}
}

// VP returns the escalation target, if one was designated at submission.
func (r *PricingRequest) VP() (Party, bool) {
	if r.VPEmail == nil || *r.VPEmail == "" {
		return Party{}, false
	}
	return Party{Email: *r.VPEmail, Name: r.VPName}, true
}

// DeviationPercent is the relative gap between initial and target price, in percent.
func (r *PricingRequest) DeviationPercent() decimal.Decimal {
	if r.InitialPrice.IsZero() {
		return decimal.Zero
	}
	return r.InitialPrice.Sub(r.TargetPrice).Div(r.InitialPrice).Mul(decimal.NewFromInt(100)).Round(1)
}

// RequestFilter narrows a request listing. Nil fields are ignored.
type RequestFilter struct {
	Status         *RequestStatus
	ProductLine    *string
	RequesterEmail *string
}

// Submission is the commercial's input for a new request.
type Submission struct {
	CostingNumber  string
	ProjectName    string
	Customer       string
	ProductLine    string
	Plant          string
	YearlySales    decimal.Decimal
	InitialPrice   decimal.Decimal
	TargetPrice    decimal.Decimal
	ProblemToSolve string
	AttachmentPath *string
	RequesterEmail string
	RequesterName  string
	PLEmail        string
	PLName         *string
	VPEmail        *string
	VPName         *string
}
