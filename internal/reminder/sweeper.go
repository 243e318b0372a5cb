package reminder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"pricingdesk.app/server/common/logger"
	"pricingdesk.app/server/internal/email"
	"pricingdesk.app/server/internal/model"
)

// DefaultThreshold is how long a request may wait on one approver before reminders start.
const DefaultThreshold = 48 * time.Hour

type StaleLister interface {
	ListStale(ctx context.Context, status model.RequestStatus, createdBefore time.Time) ([]model.PricingRequest, error)
}

// Result summarizes one sweep.
type Result struct {
	Selected int
	Sent     int
	Failed   int
}

// Sweeper emails approvers about requests that have been waiting on them
// for longer than the threshold. It never writes to the request store and
// does not remember earlier runs, so every run re-sends while the
// condition holds.
type Sweeper struct {
	requests  StaleLister
	composer  *email.Composer
	outbox    email.Outbox
	clock     clockwork.Clock
	threshold time.Duration
}

func NewSweeper(requests StaleLister, composer *email.Composer, outbox email.Outbox, clock clockwork.Clock, threshold time.Duration) *Sweeper {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Sweeper{
		requests:  requests,
		composer:  composer,
		outbox:    outbox,
		clock:     clock,
		threshold: threshold,
	}
}

// RunPL reminds Product Line responsibles of requests still under their review.
func (s *Sweeper) RunPL(ctx context.Context) (Result, error) {
	return s.sweep(ctx, "pl", model.RequestStatusUnderReviewPL, s.composer.PLReminder)
}

// RunVP reminds VPs of escalations still awaiting their decision.
func (s *Sweeper) RunVP(ctx context.Context) (Result, error) {
	return s.sweep(ctx, "vp", model.RequestStatusEscalatedToVP, s.composer.VPReminder)
}

func (s *Sweeper) RunAll(ctx context.Context) (pl Result, vp Result, err error) {
	pl, plErr := s.RunPL(ctx)
	vp, vpErr := s.RunVP(ctx)
	return pl, vp, errors.Join(plErr, vpErr)
}

func (s *Sweeper) sweep(
	ctx context.Context,
	name string,
	status model.RequestStatus,
	compose func(*model.PricingRequest, time.Time) (email.Message, error),
) (Result, error) {
	sc := logger.StartSpan(ctx, "reminder.sweep_"+name)
	defer sc.End()
	ctx = logger.WithLogFields(sc.Context(), logger.LogFields{
		Component: "pricingdesk.reminder." + name,
	})

	now := s.clock.Now()
	stale, err := s.requests.ListStale(ctx, status, now.Add(-s.threshold))
	if err != nil {
		sc.RecordError(err)
		return Result{}, fmt.Errorf("listing stale %s requests: %w", status, err)
	}

	res := Result{Selected: len(stale)}
	for i := range stale {
		req := &stale[i]
		itemCtx := logger.WithLogFields(ctx, logger.LogFields{RequestID: logger.Ptr(req.ID)})

		msg, err := compose(req, now)
		if err == nil {
			err = s.outbox.Enqueue(itemCtx, msg)
		}
		if err != nil {
			res.Failed++
			slog.ErrorContext(itemCtx, "failed to send reminder", "error", err)
			continue
		}
		res.Sent++
	}

	slog.InfoContext(ctx, "reminder sweep finished",
		"status", status,
		"selected", res.Selected,
		"sent", res.Sent,
		"failed", res.Failed)
	return res, nil
}
