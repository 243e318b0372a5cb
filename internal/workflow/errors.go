package workflow

import (
	"errors"
	"fmt"

	"pricingdesk.app/server/internal/model"
)

var (
	ErrInvalidTransition       = errors.New("invalid transition")
	ErrMissingEscalationTarget = errors.New("VP email not defined for this request. Cannot escalate.")

	ErrInvalidAction          = errors.New("action not allowed for role")
	ErrCommentsRequired       = errors.New("comments are required")
	ErrInvalidPrice           = errors.New("invalid price")
	ErrInvalidPriceRange      = errors.New("Target price cannot be higher than initial price")
	ErrDuplicateCostingNumber = errors.New("costing number already exists")
	ErrEmailDomain            = errors.New("email outside the organization domain")
	ErrRequiredField          = errors.New("field is required")
	ErrFieldTooLong           = errors.New("field is too long")
)

// InvalidTransitionError reports a decision attempted from the wrong state.
type InvalidTransitionError struct {
	Current model.RequestStatus
	Role    model.Role
	Action  model.Action
}

func (e *InvalidTransitionError) Error() string {
	switch e.Role {
	case model.RolePL:
		return fmt.Sprintf("Request is not under Product Line review (current status: %s)", e.Current)
	case model.RoleVP:
		return fmt.Sprintf("Request is not escalated to VP (current status: %s)", e.Current)
	default:
		return fmt.Sprintf("%s cannot %s a request in status %s", e.Role, e.Action, e.Current)
	}
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ValidationError is a field-level rejection of caller input.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(field string, err error, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...), Err: err}
}
