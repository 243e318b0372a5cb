package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"

	"pricingdesk.app/server/common/logger"
	"pricingdesk.app/server/internal/model"
	"pricingdesk.app/server/internal/workflow"
)

// DecisionResult is what an approver gets back once a decision has committed.
type DecisionResult struct {
	Message    string
	RequestID  int64
	Status     model.RequestStatus
	FinalPrice *decimal.Decimal
	Request    *model.PricingRequest
}

type DecisionService interface {
	// Decide applies one approver decision atomically. Notifications are sent
	// only after the transaction commits and never affect the returned result.
	Decide(ctx context.Context, requestID int64, role model.Role, d model.Decision) (*DecisionResult, error)
}

type decisionService struct {
	txRunner TxRunner
	notifier Notifier
	clock    clockwork.Clock
}

func NewDecisionService(txRunner TxRunner, notifier Notifier, clock clockwork.Clock) DecisionService {
	return &decisionService{
		txRunner: txRunner,
		notifier: notifier,
		clock:    clock,
	}
}

func (s *decisionService) Decide(ctx context.Context, requestID int64, role model.Role, d model.Decision) (*DecisionResult, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		RequestID: logger.Ptr(requestID),
		Role:      logger.Ptr(string(role)),
		Action:    logger.Ptr(string(d.Action)),
	})

	var (
		req *model.PricingRequest
		ev  *model.TransitionEvent
	)
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		var err error
		req, err = stores.PricingRequests().GetForUpdate(ctx, requestID)
		if err != nil {
			return fmt.Errorf("loading pricing request: %w", err)
		}

		ev, err = workflow.Apply(req, role, d, s.clock.Now())
		if err != nil {
			return err
		}

		if err := stores.PricingRequests().SaveDecision(ctx, req); err != nil {
			return fmt.Errorf("saving decision: %w", err)
		}
		return nil
	})
	if err != nil {
		slog.WarnContext(ctx, "decision rejected or failed", "error", err)
		return nil, err
	}

	slog.InfoContext(ctx, "decision committed",
		"from", ev.From,
		"to", ev.To,
	)

	s.notifier.Transitioned(ctx, req, ev)

	return &DecisionResult{
		Message:    decisionMessage(role, d.Action),
		RequestID:  req.ID,
		Status:     req.Status,
		FinalPrice: req.FinalApprovedPrice,
		Request:    req,
	}, nil
}

func decisionMessage(role model.Role, action model.Action) string {
	if role == model.RoleVP {
		return fmt.Sprintf("VP decision processed: %s", action)
	}
	return fmt.Sprintf("Product Line decision processed: %s", action)
}
