package workflow

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"pricingdesk.app/server/internal/model"
)

// Apply runs one decision against req, mutating it in place, and returns the
// resulting event. Checks run in order: action for role, current state,
// escalation target, payload. req is untouched when an error is returned.
func Apply(req *model.PricingRequest, role model.Role, d model.Decision, now time.Time) (*model.TransitionEvent, error) {
	from := req.Status
	to, err := Next(from, role, d.Action)
	if err != nil {
		return nil, err
	}

	if d.Action == model.ActionEscalate {
		if _, ok := req.VP(); !ok {
			return nil, ErrMissingEscalationTarget
		}
	}

	comments := strings.TrimSpace(d.Comments)
	if err := validateDecision(role, d, comments); err != nil {
		return nil, err
	}

	var suggested *decimal.Decimal
	if d.SuggestedPrice != nil {
		p := *d.SuggestedPrice
		suggested = &p
	}
	var commentsPtr *string
	if comments != "" {
		commentsPtr = &comments
	}

	now = now.UTC()
	switch role {
	case model.RolePL:
		req.PLSuggestedPrice = suggested
		req.PLComments = commentsPtr
		req.PLDecisionDate = &now
	case model.RoleVP:
		req.VPSuggestedPrice = suggested
		req.VPComments = commentsPtr
		req.VPDecisionDate = &now
	}

	switch d.Action {
	case model.ActionApprove:
		req.FinalApprovedPrice = finalPrice(suggested, req.TargetPrice)
	case model.ActionReject:
		req.FinalApprovedPrice = nil
	}

	req.Status = to
	req.UpdatedAt = now

	return &model.TransitionEvent{
		RequestID: req.ID,
		Role:      role,
		Action:    d.Action,
		From:      from,
		To:        to,
		Decision: model.Decision{
			Action:         d.Action,
			SuggestedPrice: suggested,
			Comments:       comments,
		},
		FinalPrice: req.FinalApprovedPrice,
		OccurredAt: now,
	}, nil
}

func validateDecision(role model.Role, d model.Decision, comments string) error {
	if d.SuggestedPrice != nil {
		if err := checkAmount("suggested_price", *d.SuggestedPrice, priceColumn); err != nil {
			return err
		}
	}
	if role == model.RoleVP && comments == "" {
		return invalid("comments", ErrCommentsRequired, "Comments are mandatory for VP decisions")
	}
	if role == model.RolePL && comments == "" && d.Action != model.ActionApprove {
		return invalid("comments", ErrCommentsRequired, "Comments are required for REJECT and ESCALATE")
	}
	return nil
}

// finalPrice is the suggested price when present, otherwise the target price.
func finalPrice(suggested *decimal.Decimal, target decimal.Decimal) *decimal.Decimal {
	if suggested != nil {
		p := *suggested
		return &p
	}
	p := target
	return &p
}
