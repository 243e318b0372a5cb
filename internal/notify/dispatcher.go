package notify

import (
	"context"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"pricingdesk.app/server/common/id"
	"pricingdesk.app/server/common/logger"
	"pricingdesk.app/server/internal/email"
	"pricingdesk.app/server/internal/model"
)

// NotificationWriter persists in-app notifications.
type NotificationWriter interface {
	Create(ctx context.Context, n *model.Notification) error
}

// Dispatcher turns workflow events into in-app notifications and outbox
// emails. Everything it does is best-effort: failures are logged per
// recipient and never reported to the caller.
type Dispatcher struct {
	notifications NotificationWriter
	outbox        email.Outbox
	composer      *email.Composer
	clock         clockwork.Clock
}

func NewDispatcher(notifications NotificationWriter, outbox email.Outbox, composer *email.Composer, clock clockwork.Clock) *Dispatcher {
	return &Dispatcher{
		notifications: notifications,
		outbox:        outbox,
		composer:      composer,
		clock:         clock,
	}
}

func (d *Dispatcher) Submitted(ctx context.Context, req *model.PricingRequest) {
	sc := logger.StartSpan(ctx, "notify.submitted")
	defer sc.End()
	ctx = d.withFields(sc.Context(), req.ID)

	d.persist(ctx, req.ID, PlanSubmission(req))
	d.send(ctx, func() (email.Message, error) { return d.composer.RequestSubmitted(req) })
}

// Transitioned must only be called after the decision has committed.
func (d *Dispatcher) Transitioned(ctx context.Context, req *model.PricingRequest, ev *model.TransitionEvent) {
	sc := logger.StartSpan(ctx, "notify.transitioned")
	defer sc.End()
	ctx = logger.WithLogFields(d.withFields(sc.Context(), req.ID), logger.LogFields{
		Role:   logger.Ptr(string(ev.Role)),
		Action: logger.Ptr(string(ev.Action)),
	})

	d.persist(ctx, req.ID, PlanTransition(req, ev))

	switch {
	case ev.Role == model.RolePL && ev.Action == model.ActionEscalate:
		d.send(ctx, func() (email.Message, error) { return d.composer.Escalation(req) })
	case ev.Role == model.RolePL:
		d.send(ctx, func() (email.Message, error) { return d.composer.PLDecision(req) })
	case ev.Role == model.RoleVP:
		d.send(ctx, func() (email.Message, error) { return d.composer.VPDecision(req) })
	}
}

// Commented produces in-app notifications only.
func (d *Dispatcher) Commented(ctx context.Context, req *model.PricingRequest, c *model.Comment) {
	sc := logger.StartSpan(ctx, "notify.commented")
	defer sc.End()
	ctx = logger.WithLogFields(d.withFields(sc.Context(), req.ID), logger.LogFields{
		CommentID: logger.Ptr(c.ID),
	})

	d.persist(ctx, req.ID, PlanComment(req, c))
}

func (d *Dispatcher) persist(ctx context.Context, requestID int64, planned []Planned) {
	now := d.clock.Now().UTC()
	for _, p := range planned {
		n := p.Notification(id.New(), requestID)
		n.CreatedAt = now
		if err := d.notifications.Create(ctx, n); err != nil {
			slog.ErrorContext(ctx, "failed to store notification",
				"error", err,
				"recipient", p.RecipientEmail,
				"type", p.Type)
			continue
		}
		slog.DebugContext(ctx, "notification stored",
			"notification_id", n.ID,
			"recipient", p.RecipientEmail,
			"type", p.Type)
	}
}

func (d *Dispatcher) send(ctx context.Context, compose func() (email.Message, error)) {
	msg, err := compose()
	if err != nil {
		slog.ErrorContext(ctx, "failed to compose email", "error", err)
		return
	}
	if err := d.outbox.Enqueue(ctx, msg); err != nil {
		slog.WarnContext(ctx, "failed to enqueue email (non-critical)",
			"error", err,
			"to", msg.To,
			"kind", msg.Kind)
	}
}

func (d *Dispatcher) withFields(ctx context.Context, requestID int64) context.Context {
	return logger.WithLogFields(ctx, logger.LogFields{
		RequestID: logger.Ptr(requestID),
		Component: "pricingdesk.notify.dispatcher",
	})
}
