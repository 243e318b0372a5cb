package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"pricingdesk.app/server/core/db/sqlc"
	"pricingdesk.app/server/internal/model"
)

type commentStore struct {
	queries *sqlc.Queries
}

func newCommentStore(queries *sqlc.Queries) CommentStore {
	return &commentStore{queries: queries}
}

func (s *commentStore) Create(ctx context.Context, comment *model.Comment) error {
	row, err := s.queries.CreateComment(ctx, sqlc.CreateCommentParams{
		ID:          comment.ID,
		RequestID:   comment.RequestID,
		AuthorEmail: comment.AuthorEmail,
		AuthorName:  comment.AuthorName,
		AuthorRole:  string(comment.AuthorRole),
		Content:     comment.Content,
		CreatedAt:   toTimestamptz(comment.CreatedAt),
	})
	if err != nil {
		return err
	}
	*comment = *toCommentModel(row)
	return nil
}

func (s *commentStore) GetByID(ctx context.Context, id int64) (*model.Comment, error) {
	row, err := s.queries.GetComment(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toCommentModel(row), nil
}

func (s *commentStore) ListByRequest(ctx context.Context, requestID int64, includeArchived bool) ([]model.Comment, error) {
	rows, err := s.queries.ListCommentsByRequest(ctx, sqlc.ListCommentsByRequestParams{
		RequestID:       requestID,
		IncludeArchived: includeArchived,
	})
	if err != nil {
		return nil, err
	}
	result := make([]model.Comment, len(rows))
	for i, row := range rows {
		result[i] = *toCommentModel(row)
	}
	return result, nil
}

func (s *commentStore) SetArchived(ctx context.Context, id int64, archived bool) (*model.Comment, error) {
	row, err := s.queries.SetCommentArchived(ctx, sqlc.SetCommentArchivedParams{
		ID:       id,
		Archived: archived,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toCommentModel(row), nil
}

func (s *commentStore) Delete(ctx context.Context, id int64) error {
	n, err := s.queries.DeleteComment(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func toCommentModel(row sqlc.Comment) *model.Comment {
	return &model.Comment{
		ID:          row.ID,
		RequestID:   row.RequestID,
		AuthorEmail: row.AuthorEmail,
		AuthorName:  row.AuthorName,
		AuthorRole:  model.Role(row.AuthorRole),
		Content:     row.Content,
		Archived:    row.Archived,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}
