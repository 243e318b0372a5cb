package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"pricingdesk.app/server/core/db/sqlc"
	"pricingdesk.app/server/internal/model"
)

type notificationStore struct {
	queries *sqlc.Queries
}

func newNotificationStore(queries *sqlc.Queries) NotificationStore {
	return &notificationStore{queries: queries}
}

func (s *notificationStore) Create(ctx context.Context, n *model.Notification) error {
	row, err := s.queries.CreateNotification(ctx, sqlc.CreateNotificationParams{
		ID:               n.ID,
		RecipientEmail:   n.RecipientEmail,
		RecipientRole:    string(n.RecipientRole),
		RequestID:        n.RequestID,
		Type:             string(n.Type),
		Title:            n.Title,
		Message:          n.Message,
		TriggeredByEmail: n.TriggeredByEmail,
		TriggeredByName:  n.TriggeredByName,
		ActionUrl:        n.ActionURL,
		CreatedAt:        toTimestamptz(n.CreatedAt),
	})
	if err != nil {
		return err
	}
	*n = *toNotificationModel(row)
	return nil
}

func (s *notificationStore) ListByRecipient(ctx context.Context, email string, limit int32) ([]model.Notification, error) {
	rows, err := s.queries.ListNotificationsByRecipient(ctx, sqlc.ListNotificationsByRecipientParams{
		RecipientEmail: email,
		MaxRows:        limit,
	})
	if err != nil {
		return nil, err
	}
	result := make([]model.Notification, len(rows))
	for i, row := range rows {
		result[i] = *toNotificationModel(row)
	}
	return result, nil
}

func (s *notificationStore) CountUnread(ctx context.Context, email string) (int64, error) {
	return s.queries.CountUnreadNotifications(ctx, email)
}

func (s *notificationStore) SetRead(ctx context.Context, id int64, email string, read bool) (*model.Notification, error) {
	row, err := s.queries.SetNotificationRead(ctx, sqlc.SetNotificationReadParams{
		IsRead:         read,
		ID:             id,
		RecipientEmail: email,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toNotificationModel(row), nil
}

func (s *notificationStore) MarkAllRead(ctx context.Context, email string) (int64, error) {
	return s.queries.MarkAllNotificationsRead(ctx, email)
}

func (s *notificationStore) Delete(ctx context.Context, id int64, email string) error {
	n, err := s.queries.DeleteNotification(ctx, sqlc.DeleteNotificationParams{
		ID:             id,
		RecipientEmail: email,
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func toNotificationModel(row sqlc.Notification) *model.Notification {
	return &model.Notification{
		ID:               row.ID,
		RecipientEmail:   row.RecipientEmail,
		RecipientRole:    model.Role(row.RecipientRole),
		RequestID:        row.RequestID,
		Type:             model.NotificationType(row.Type),
		Title:            row.Title,
		Message:          row.Message,
		TriggeredByEmail: row.TriggeredByEmail,
		TriggeredByName:  row.TriggeredByName,
		IsRead:           row.IsRead,
		ActionURL:        row.ActionUrl,
		CreatedAt:        row.CreatedAt.Time,
		UpdatedAt:        row.UpdatedAt.Time,
	}
}
