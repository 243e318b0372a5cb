package email

import "context"

type Kind string

const (
	KindRequestSubmitted Kind = "request_submitted"
	KindPLDecision       Kind = "pl_decision"
	KindEscalation       Kind = "escalation"
	KindVPDecision       Kind = "vp_decision"
	KindVerificationCode Kind = "verification_code"
	KindPLReminder       Kind = "pl_reminder"
	KindVPReminder       Kind = "vp_reminder"
)

// Message is a fully rendered outward email. It carries no template state so
// it can travel through the outbox unchanged.
type Message struct {
	Kind      Kind
	To        string
	Cc        []string
	Subject   string
	HTML      string
	RequestID *int64
}

// Outbox accepts messages for asynchronous delivery.
type Outbox interface {
	Enqueue(ctx context.Context, msg Message) error
}

// Sender delivers a message synchronously.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
