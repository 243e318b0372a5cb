package workflow

import (
	"strings"

	"github.com/shopspring/decimal"

	"pricingdesk.app/server/internal/model"
)

const (
	maxCostingNumberLen = 100
	maxNameLen          = 255
)

// ValidateSubmission checks a new request before it enters the state machine.
// Costing number uniqueness needs the store and is checked by the caller.
func ValidateSubmission(s model.Submission, orgDomain string) error {
	required := []struct {
		field string
		value string
		max   int
	}{
		{"costing_number", s.CostingNumber, maxCostingNumberLen},
		{"project_name", s.ProjectName, maxNameLen},
		{"customer", s.Customer, maxNameLen},
		{"product_line", s.ProductLine, maxNameLen},
		{"plant", s.Plant, maxNameLen},
		{"requester_name", s.RequesterName, maxNameLen},
		{"problem_to_solve", s.ProblemToSolve, 0},
	}
	for _, r := range required {
		v := strings.TrimSpace(r.value)
		if v == "" {
			return invalid(r.field, ErrRequiredField, "%s is required", r.field)
		}
		if r.max > 0 && len(v) > r.max {
			return invalid(r.field, ErrFieldTooLong, "%s must be at most %d characters", r.field, r.max)
		}
	}

	if !InOrgDomain(s.RequesterEmail, orgDomain) {
		return invalid("requester_email", ErrEmailDomain, "Email must end with @%s", orgDomain)
	}
	if !InOrgDomain(s.PLEmail, orgDomain) {
		return invalid("pl_email", ErrEmailDomain, "Email must end with @%s", orgDomain)
	}

	amounts := []struct {
		field string
		value decimal.Decimal
		col   numeric
	}{
		{"yearly_sales", s.YearlySales, salesColumn},
		{"initial_price", s.InitialPrice, priceColumn},
		{"target_price", s.TargetPrice, priceColumn},
	}
	for _, a := range amounts {
		if err := checkAmount(a.field, a.value, a.col); err != nil {
			return err
		}
	}

	if s.TargetPrice.GreaterThan(s.InitialPrice) {
		return invalid("target_price", ErrInvalidPriceRange, "Target price cannot be higher than initial price")
	}

	return nil
}

// InOrgDomain reports whether email is a non-empty address at domain.
func InOrgDomain(email, domain string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	suffix := "@" + strings.ToLower(domain)
	return len(email) > len(suffix) && strings.HasSuffix(email, suffix)
}

// DuplicateCostingNumber builds the validation error for a taken costing number.
func DuplicateCostingNumber(costingNumber string) error {
	return invalid("costing_number", ErrDuplicateCostingNumber, "Costing number %s already exists", costingNumber)
}
