package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleCommercial Role = "COMMERCIAL"
	RolePL         Role = "PL"
	RoleVP         Role = "VP"
)

// ParseRole maps free-form input onto a Role, defaulting to COMMERCIAL.
func ParseRole(s string) Role {
	switch Role(s) {
	case RolePL:
		return RolePL
	case RoleVP:
		return RoleVP
	default:
		return RoleCommercial
	}
}

func (r Role) IsValid() bool {
	return r == RoleCommercial || r == RolePL || r == RoleVP
}

type Action string

const (
	ActionApprove  Action = "APPROVE"
	ActionReject   Action = "REJECT"
	ActionEscalate Action = "ESCALATE"
)

// Decision is the payload an approver submits.
type Decision struct {
	Action         Action
	SuggestedPrice *decimal.Decimal
	Comments       string
}

// TransitionEvent describes one committed state-machine step. Downstream
// notification routing consumes it after the transaction commits.
type TransitionEvent struct {
	RequestID  int64
	Role       Role
	Action     Action
	From       RequestStatus
	To         RequestStatus
	Decision   Decision
	FinalPrice *decimal.Decimal
	OccurredAt time.Time
}
