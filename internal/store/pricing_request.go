package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"pricingdesk.app/server/core/db/sqlc"
	"pricingdesk.app/server/internal/model"
)

type pricingRequestStore struct {
	queries *sqlc.Queries
}

func newPricingRequestStore(queries *sqlc.Queries) PricingRequestStore {
	return &pricingRequestStore{queries: queries}
}

func (s *pricingRequestStore) Create(ctx context.Context, req *model.PricingRequest) error {
	row, err := s.queries.CreatePricingRequest(ctx, sqlc.CreatePricingRequestParams{
		ID:             req.ID,
		CostingNumber:  req.CostingNumber,
		ProjectName:    req.ProjectName,
		Customer:       req.Customer,
		ProductLine:    req.ProductLine,
		Plant:          req.Plant,
		YearlySales:    toNumeric(req.YearlySales),
		InitialPrice:   toNumeric(req.InitialPrice),
		TargetPrice:    toNumeric(req.TargetPrice),
		ProblemToSolve: req.ProblemToSolve,
		AttachmentPath: req.AttachmentPath,
		RequesterEmail: req.RequesterEmail,
		RequesterName:  req.RequesterName,
		PlEmail:        req.PLEmail,
		PlName:         req.PLName,
		VpEmail:        req.VPEmail,
		VpName:         req.VPName,
		Status:         string(req.Status),
		CreatedAt:      toTimestamptz(req.CreatedAt),
	})
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	*req = *toPricingRequestModel(row)
	return nil
}

func (s *pricingRequestStore) GetByID(ctx context.Context, id int64) (*model.PricingRequest, error) {
	row, err := s.queries.GetPricingRequest(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toPricingRequestModel(row), nil
}

func (s *pricingRequestStore) GetForUpdate(ctx context.Context, id int64) (*model.PricingRequest, error) {
	row, err := s.queries.GetPricingRequestForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toPricingRequestModel(row), nil
}

func (s *pricingRequestStore) GetByCostingNumber(ctx context.Context, costingNumber string) (*model.PricingRequest, error) {
	row, err := s.queries.GetPricingRequestByCostingNumber(ctx, costingNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toPricingRequestModel(row), nil
}

// SaveDecision persists the decision columns and status written by the workflow.
func (s *pricingRequestStore) SaveDecision(ctx context.Context, req *model.PricingRequest) error {
	row, err := s.queries.UpdatePricingRequestDecision(ctx, sqlc.UpdatePricingRequestDecisionParams{
		ID:                 req.ID,
		Status:             string(req.Status),
		PlSuggestedPrice:   toNullNumeric(req.PLSuggestedPrice),
		PlComments:         req.PLComments,
		PlDecisionDate:     toNullTimestamptz(req.PLDecisionDate),
		VpSuggestedPrice:   toNullNumeric(req.VPSuggestedPrice),
		VpComments:         req.VPComments,
		VpDecisionDate:     toNullTimestamptz(req.VPDecisionDate),
		FinalApprovedPrice: toNullNumeric(req.FinalApprovedPrice),
		UpdatedAt:          toTimestamptz(req.UpdatedAt),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	*req = *toPricingRequestModel(row)
	return nil
}

func (s *pricingRequestStore) List(ctx context.Context, filter model.RequestFilter, limit, offset int32) ([]model.PricingRequest, error) {
	var status *string
	if filter.Status != nil {
		v := string(*filter.Status)
		status = &v
	}
	rows, err := s.queries.ListPricingRequests(ctx, sqlc.ListPricingRequestsParams{
		Status:         status,
		ProductLine:    filter.ProductLine,
		RequesterEmail: filter.RequesterEmail,
		RowLimit:       limit,
		RowOffset:      offset,
	})
	if err != nil {
		return nil, err
	}
	return toPricingRequestModels(rows), nil
}

func (s *pricingRequestStore) ListByPL(ctx context.Context, plEmail string, statuses []model.RequestStatus) ([]model.PricingRequest, error) {
	rows, err := s.queries.ListPricingRequestsByPL(ctx, sqlc.ListPricingRequestsByPLParams{
		PlEmail:  plEmail,
		Statuses: statusStrings(statuses),
	})
	if err != nil {
		return nil, err
	}
	return toPricingRequestModels(rows), nil
}

func (s *pricingRequestStore) ListByVP(ctx context.Context, vpEmail string, statuses []model.RequestStatus) ([]model.PricingRequest, error) {
	rows, err := s.queries.ListPricingRequestsByVP(ctx, sqlc.ListPricingRequestsByVPParams{
		VpEmail:  vpEmail,
		Statuses: statusStrings(statuses),
	})
	if err != nil {
		return nil, err
	}
	return toPricingRequestModels(rows), nil
}

func (s *pricingRequestStore) ListDecidedByPL(ctx context.Context, plEmail string) ([]model.PricingRequest, error) {
	rows, err := s.queries.ListPLDecidedPricingRequests(ctx, sqlc.ListPLDecidedPricingRequestsParams{
		PlEmail:  plEmail,
		Statuses: statusStrings(model.PLDecidedStatuses),
	})
	if err != nil {
		return nil, err
	}
	return toPricingRequestModels(rows), nil
}

func (s *pricingRequestStore) ListDecidedByVP(ctx context.Context, vpEmail string) ([]model.PricingRequest, error) {
	rows, err := s.queries.ListVPDecidedPricingRequests(ctx, sqlc.ListVPDecidedPricingRequestsParams{
		VpEmail:  vpEmail,
		Statuses: statusStrings(model.VPDecidedStatuses),
	})
	if err != nil {
		return nil, err
	}
	return toPricingRequestModels(rows), nil
}

func (s *pricingRequestStore) ListStale(ctx context.Context, status model.RequestStatus, createdBefore time.Time) ([]model.PricingRequest, error) {
	rows, err := s.queries.ListStalePricingRequests(ctx, sqlc.ListStalePricingRequestsParams{
		Status:    string(status),
		CreatedAt: toTimestamptz(createdBefore),
	})
	if err != nil {
		return nil, err
	}
	return toPricingRequestModels(rows), nil
}

func statusStrings(statuses []model.RequestStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func toPricingRequestModels(rows []sqlc.PricingRequest) []model.PricingRequest {
	result := make([]model.PricingRequest, len(rows))
	for i, row := range rows {
		result[i] = *toPricingRequestModel(row)
	}
	return result
}

func toPricingRequestModel(row sqlc.PricingRequest) *model.PricingRequest {
	return &model.PricingRequest{
		ID:                 row.ID,
		CostingNumber:      row.CostingNumber,
		ProjectName:        row.ProjectName,
		Customer:           row.Customer,
		ProductLine:        row.ProductLine,
		Plant:              row.Plant,
		YearlySales:        fromNumeric(row.YearlySales),
		InitialPrice:       fromNumeric(row.InitialPrice),
		TargetPrice:        fromNumeric(row.TargetPrice),
		ProblemToSolve:     row.ProblemToSolve,
		AttachmentPath:     row.AttachmentPath,
		RequesterEmail:     row.RequesterEmail,
		RequesterName:      row.RequesterName,
		PLEmail:            row.PlEmail,
		PLName:             row.PlName,
		VPEmail:            row.VpEmail,
		VPName:             row.VpName,
		PLSuggestedPrice:   fromNullNumeric(row.PlSuggestedPrice),
		PLComments:         row.PlComments,
		PLDecisionDate:     fromNullTimestamptz(row.PlDecisionDate),
		VPSuggestedPrice:   fromNullNumeric(row.VpSuggestedPrice),
		VPComments:         row.VpComments,
		VPDecisionDate:     fromNullTimestamptz(row.VpDecisionDate),
		FinalApprovedPrice: fromNullNumeric(row.FinalApprovedPrice),
		Status:             model.RequestStatus(row.Status),
		CreatedAt:          row.CreatedAt.Time,
		UpdatedAt:          row.UpdatedAt.Time,
	}
}
