package service

import (
	"context"

	"pricingdesk.app/server/internal/model"
)

// Notifier fans committed changes out to the people involved. Implementations
// must not fail the caller; the dispatcher in internal/notify logs instead.
type Notifier interface {
	Submitted(ctx context.Context, req *model.PricingRequest)
	Transitioned(ctx context.Context, req *model.PricingRequest, ev *model.TransitionEvent)
	Commented(ctx context.Context, req *model.PricingRequest, c *model.Comment)
}
