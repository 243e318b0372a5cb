package store

import (
	"context"
	"errors"
	"time"

	"pricingdesk.app/server/internal/model"
)

var (
	// ErrNotFound is returned when a requested entity does not exist
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when a unique constraint rejects an insert
	ErrDuplicate = errors.New("duplicate")
)

// PricingRequestStore defines the contract for pricing request data access
type PricingRequestStore interface {
	Create(ctx context.Context, req *model.PricingRequest) error
	GetByID(ctx context.Context, id int64) (*model.PricingRequest, error)
	// GetForUpdate row-locks the request until the surrounding transaction ends.
	GetForUpdate(ctx context.Context, id int64) (*model.PricingRequest, error)
	GetByCostingNumber(ctx context.Context, costingNumber string) (*model.PricingRequest, error)
	SaveDecision(ctx context.Context, req *model.PricingRequest) error
	List(ctx context.Context, filter model.RequestFilter, limit, offset int32) ([]model.PricingRequest, error)
	ListByPL(ctx context.Context, plEmail string, statuses []model.RequestStatus) ([]model.PricingRequest, error)
	ListByVP(ctx context.Context, vpEmail string, statuses []model.RequestStatus) ([]model.PricingRequest, error)
	ListDecidedByPL(ctx context.Context, plEmail string) ([]model.PricingRequest, error)
	ListDecidedByVP(ctx context.Context, vpEmail string) ([]model.PricingRequest, error)
	ListStale(ctx context.Context, status model.RequestStatus, createdBefore time.Time) ([]model.PricingRequest, error)
}

// CommentStore defines the contract for comment data access
type CommentStore interface {
	Create(ctx context.Context, comment *model.Comment) error
	GetByID(ctx context.Context, id int64) (*model.Comment, error)
	ListByRequest(ctx context.Context, requestID int64, includeArchived bool) ([]model.Comment, error)
	SetArchived(ctx context.Context, id int64, archived bool) (*model.Comment, error)
	Delete(ctx context.Context, id int64) error
}

// NotificationStore defines the contract for in-app notification data access.
// Recipient-scoped operations report ErrNotFound for other users' rows.
type NotificationStore interface {
	Create(ctx context.Context, n *model.Notification) error
	ListByRecipient(ctx context.Context, email string, limit int32) ([]model.Notification, error)
	CountUnread(ctx context.Context, email string) (int64, error)
	SetRead(ctx context.Context, id int64, email string, read bool) (*model.Notification, error)
	MarkAllRead(ctx context.Context, email string) (int64, error)
	Delete(ctx context.Context, id int64, email string) error
}
