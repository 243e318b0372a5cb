package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jonboulle/clockwork"

	"pricingdesk.app/server/common/id"
	"pricingdesk.app/server/common/logger"
	"pricingdesk.app/server/internal/model"
	"pricingdesk.app/server/internal/store"
	"pricingdesk.app/server/internal/workflow"
)

const (
	DefaultListLimit = 100
	MaxListLimit     = 500
)

type PricingRequestService interface {
	Submit(ctx context.Context, s model.Submission) (*model.PricingRequest, error)
	Get(ctx context.Context, id int64) (*model.PricingRequest, error)
	List(ctx context.Context, filter model.RequestFilter, limit, offset int32) ([]model.PricingRequest, error)
	ListByRequester(ctx context.Context, email string) ([]model.PricingRequest, error)
	// PLInbox lists pending requests, or every request the PL already acted on
	// when archived is set. Newest first.
	PLInbox(ctx context.Context, plEmail string, archived bool) ([]model.PricingRequest, error)
	PLArchived(ctx context.Context, plEmail string) ([]model.PricingRequest, error)
	VPInbox(ctx context.Context, vpEmail string) ([]model.PricingRequest, error)
	VPArchived(ctx context.Context, vpEmail string) ([]model.PricingRequest, error)
}

// AttachmentChecker confirms an uploaded file is present before a request references it.
type AttachmentChecker interface {
	Exists(ctx context.Context, path string) (bool, error)
}

type pricingRequestService struct {
	requests    store.PricingRequestStore
	attachments AttachmentChecker
	notifier    Notifier
	clock       clockwork.Clock
	orgDomain   string
}

func NewPricingRequestService(requests store.PricingRequestStore, attachments AttachmentChecker, notifier Notifier, clock clockwork.Clock, orgDomain string) PricingRequestService {
	return &pricingRequestService{
		requests:    requests,
		attachments: attachments,
		notifier:    notifier,
		clock:       clock,
		orgDomain:   orgDomain,
	}
}

func (s *pricingRequestService) Submit(ctx context.Context, sub model.Submission) (*model.PricingRequest, error) {
	sub = normalizeSubmission(sub)
	if err := workflow.ValidateSubmission(sub, s.orgDomain); err != nil {
		return nil, err
	}

	if err := s.checkAttachment(ctx, sub.AttachmentPath); err != nil {
		return nil, err
	}

	if _, err := s.requests.GetByCostingNumber(ctx, sub.CostingNumber); err == nil {
		return nil, workflow.DuplicateCostingNumber(sub.CostingNumber)
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("checking costing number: %w", err)
	}

	now := s.clock.Now().UTC()
	req := &model.PricingRequest{
		ID:             id.New(),
		CostingNumber:  sub.CostingNumber,
		ProjectName:    sub.ProjectName,
		Customer:       sub.Customer,
		ProductLine:    sub.ProductLine,
		Plant:          sub.Plant,
		YearlySales:    sub.YearlySales,
		InitialPrice:   sub.InitialPrice,
		TargetPrice:    sub.TargetPrice,
		ProblemToSolve: sub.ProblemToSolve,
		AttachmentPath: sub.AttachmentPath,
		RequesterEmail: sub.RequesterEmail,
		RequesterName:  sub.RequesterName,
		PLEmail:        sub.PLEmail,
		PLName:         sub.PLName,
		VPEmail:        sub.VPEmail,
		VPName:         sub.VPName,
		Status:         model.RequestStatusUnderReviewPL,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.requests.Create(ctx, req); err != nil {
		// lost a race with a concurrent submission of the same costing number
		if errors.Is(err, store.ErrDuplicate) {
			return nil, workflow.DuplicateCostingNumber(sub.CostingNumber)
		}
		slog.ErrorContext(ctx, "failed to create pricing request",
			"error", err,
			"costing_number", sub.CostingNumber,
		)
		return nil, fmt.Errorf("creating pricing request: %w", err)
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{RequestID: logger.Ptr(req.ID)})
	slog.InfoContext(ctx, "pricing request submitted",
		"costing_number", req.CostingNumber,
		"pl_email", req.PLEmail,
	)

	s.notifier.Submitted(ctx, req)
	return req, nil
}

func (s *pricingRequestService) Get(ctx context.Context, id int64) (*model.PricingRequest, error) {
	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting pricing request: %w", err)
	}
	return req, nil
}

func (s *pricingRequestService) List(ctx context.Context, filter model.RequestFilter, limit, offset int32) ([]model.PricingRequest, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	limit = min(limit, MaxListLimit)
	offset = max(offset, 0)

	reqs, err := s.requests.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing pricing requests: %w", err)
	}
	return reqs, nil
}

func (s *pricingRequestService) ListByRequester(ctx context.Context, email string) ([]model.PricingRequest, error) {
	email = normalizeEmail(email)
	return s.List(ctx, model.RequestFilter{RequesterEmail: &email}, MaxListLimit, 0)
}

func (s *pricingRequestService) PLInbox(ctx context.Context, plEmail string, archived bool) ([]model.PricingRequest, error) {
	statuses := []model.RequestStatus{model.RequestStatusUnderReviewPL}
	if archived {
		statuses = model.PLDecidedStatuses
	}
	reqs, err := s.requests.ListByPL(ctx, normalizeEmail(plEmail), statuses)
	if err != nil {
		return nil, fmt.Errorf("listing PL inbox: %w", err)
	}
	return reqs, nil
}

func (s *pricingRequestService) PLArchived(ctx context.Context, plEmail string) ([]model.PricingRequest, error) {
	reqs, err := s.requests.ListDecidedByPL(ctx, normalizeEmail(plEmail))
	if err != nil {
		return nil, fmt.Errorf("listing PL archive: %w", err)
	}
	return reqs, nil
}

func (s *pricingRequestService) VPInbox(ctx context.Context, vpEmail string) ([]model.PricingRequest, error) {
	reqs, err := s.requests.ListByVP(ctx, normalizeEmail(vpEmail), []model.RequestStatus{model.RequestStatusEscalatedToVP})
	if err != nil {
		return nil, fmt.Errorf("listing VP inbox: %w", err)
	}
	return reqs, nil
}

func (s *pricingRequestService) VPArchived(ctx context.Context, vpEmail string) ([]model.PricingRequest, error) {
	reqs, err := s.requests.ListDecidedByVP(ctx, normalizeEmail(vpEmail))
	if err != nil {
		return nil, fmt.Errorf("listing VP archive: %w", err)
	}
	return reqs, nil
}

func (s *pricingRequestService) checkAttachment(ctx context.Context, path *string) error {
	if path == nil || s.attachments == nil {
		return nil
	}
	ok, err := s.attachments.Exists(ctx, *path)
	if err != nil && !errors.Is(err, store.ErrInvalidAttachmentPath) && !errors.Is(err, store.ErrAttachmentPathTraversal) {
		return fmt.Errorf("checking attachment: %w", err)
	}
	if err != nil || !ok {
		return &workflow.ValidationError{
			Field:   "attachment_path",
			Message: "attachment not found, upload it first",
			Err:     store.ErrAttachmentNotFound,
		}
	}
	return nil
}

func normalizeSubmission(s model.Submission) model.Submission {
	s.CostingNumber = strings.TrimSpace(s.CostingNumber)
	s.ProjectName = strings.TrimSpace(s.ProjectName)
	s.Customer = strings.TrimSpace(s.Customer)
	s.ProductLine = strings.TrimSpace(s.ProductLine)
	s.Plant = strings.TrimSpace(s.Plant)
	s.ProblemToSolve = strings.TrimSpace(s.ProblemToSolve)
	s.RequesterName = strings.TrimSpace(s.RequesterName)
	s.RequesterEmail = normalizeEmail(s.RequesterEmail)
	s.PLEmail = normalizeEmail(s.PLEmail)
	s.PLName = trimmedOrNil(s.PLName)
	s.VPName = trimmedOrNil(s.VPName)
	if s.VPEmail != nil {
		vp := normalizeEmail(*s.VPEmail)
		s.VPEmail = &vp
	}
	s.VPEmail = trimmedOrNil(s.VPEmail)
	s.AttachmentPath = trimmedOrNil(s.AttachmentPath)
	return s
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
