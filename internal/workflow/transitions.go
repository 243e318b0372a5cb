package workflow

import "pricingdesk.app/server/internal/model"

type transitionKey struct {
	from   model.RequestStatus
	role   model.Role
	action model.Action
}

// transitions is the complete set of legal decision steps. Anything absent is
// rejected; terminal states have no outgoing entries.
var transitions = map[transitionKey]model.RequestStatus{
	{model.RequestStatusUnderReviewPL, model.RolePL, model.ActionApprove}:  model.RequestStatusApprovedByPL,
	{model.RequestStatusUnderReviewPL, model.RolePL, model.ActionReject}:   model.RequestStatusRejectedByPL,
	{model.RequestStatusUnderReviewPL, model.RolePL, model.ActionEscalate}: model.RequestStatusEscalatedToVP,
	{model.RequestStatusEscalatedToVP, model.RoleVP, model.ActionApprove}:  model.RequestStatusApprovedByVP,
	{model.RequestStatusEscalatedToVP, model.RoleVP, model.ActionReject}:   model.RequestStatusRejectedByVP,
}

var roleActions = map[model.Role][]model.Action{
	model.RolePL: {model.ActionApprove, model.ActionReject, model.ActionEscalate},
	model.RoleVP: {model.ActionApprove, model.ActionReject},
}

// Next returns the status a decision leads to from the given state.
func Next(from model.RequestStatus, role model.Role, action model.Action) (model.RequestStatus, error) {
	if !AllowedAction(role, action) {
		return "", invalid("action", ErrInvalidAction, "%s cannot %s", role, action)
	}
	to, ok := transitions[transitionKey{from: from, role: role, action: action}]
	if !ok {
		return "", &InvalidTransitionError{Current: from, Role: role, Action: action}
	}
	return to, nil
}

// AllowedAction reports whether the role may take the action in any state.
func AllowedAction(role model.Role, action model.Action) bool {
	for _, a := range roleActions[role] {
		if a == action {
			return true
		}
	}
	return false
}
