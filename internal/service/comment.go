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

var ErrNotCommentAuthor = errors.New("can only delete your own comments")

const maxCommentLength = 5000

type CommentService interface {
	List(ctx context.Context, requestID int64, includeArchived bool) ([]model.Comment, error)
	Create(ctx context.Context, requestID int64, author model.Party, content string) (*model.Comment, error)
	Delete(ctx context.Context, commentID int64, callerEmail string) error
	SetArchived(ctx context.Context, commentID int64, archived bool) (*model.Comment, error)
}

type commentService struct {
	requests store.PricingRequestStore
	comments store.CommentStore
	notifier Notifier
	clock    clockwork.Clock
}

func NewCommentService(requests store.PricingRequestStore, comments store.CommentStore, notifier Notifier, clock clockwork.Clock) CommentService {
	return &commentService{
		requests: requests,
		comments: comments,
		notifier: notifier,
		clock:    clock,
	}
}

func (s *commentService) List(ctx context.Context, requestID int64, includeArchived bool) ([]model.Comment, error) {
	if _, err := s.requests.GetByID(ctx, requestID); err != nil {
		return nil, fmt.Errorf("getting pricing request: %w", err)
	}
	comments, err := s.comments.ListByRequest(ctx, requestID, includeArchived)
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}
	return comments, nil
}

func (s *commentService) Create(ctx context.Context, requestID int64, author model.Party, content string) (*model.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, &workflow.ValidationError{Field: "content", Message: "content is required", Err: workflow.ErrRequiredField}
	}
	if len(content) > maxCommentLength {
		return nil, &workflow.ValidationError{
			Field:   "content",
			Message: fmt.Sprintf("content must be at most %d characters", maxCommentLength),
			Err:     workflow.ErrFieldTooLong,
		}
	}

	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("getting pricing request: %w", err)
	}

	now := s.clock.Now().UTC()
	email := normalizeEmail(author.Email)
	c := &model.Comment{
		ID:          id.New(),
		RequestID:   requestID,
		AuthorEmail: email,
		AuthorName:  author.DisplayName(),
		AuthorRole:  model.AuthorRole(req, email),
		Content:     content,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("creating comment: %w", err)
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		RequestID: logger.Ptr(requestID),
		CommentID: logger.Ptr(c.ID),
	})
	slog.InfoContext(ctx, "comment added", "author_role", c.AuthorRole)

	s.notifier.Commented(ctx, req, c)
	return c, nil
}

func (s *commentService) Delete(ctx context.Context, commentID int64, callerEmail string) error {
	c, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return fmt.Errorf("getting comment: %w", err)
	}
	if !strings.EqualFold(c.AuthorEmail, strings.TrimSpace(callerEmail)) {
		return ErrNotCommentAuthor
	}
	if err := s.comments.Delete(ctx, commentID); err != nil {
		return fmt.Errorf("deleting comment: %w", err)
	}
	return nil
}

func (s *commentService) SetArchived(ctx context.Context, commentID int64, archived bool) (*model.Comment, error) {
	c, err := s.comments.SetArchived(ctx, commentID, archived)
	if err != nil {
		return nil, fmt.Errorf("updating comment: %w", err)
	}
	return c, nil
}
