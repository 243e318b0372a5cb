package service

import (
	"context"
	"fmt"

	"pricingdesk.app/server/internal/model"
	"pricingdesk.app/server/internal/store"
)

const notificationPageSize = 50

// NotificationService serves a recipient's own in-app notifications. Rows that
// belong to someone else are reported as store.ErrNotFound.
type NotificationService interface {
	List(ctx context.Context, email string) ([]model.Notification, error)
	UnreadCount(ctx context.Context, email string) (int64, error)
	MarkRead(ctx context.Context, id int64, email string) (*model.Notification, error)
	MarkUnread(ctx context.Context, id int64, email string) (*model.Notification, error)
	MarkAllRead(ctx context.Context, email string) (int64, error)
	Delete(ctx context.Context, id int64, email string) error
}

type notificationService struct {
	notifications store.NotificationStore
}

func NewNotificationService(notifications store.NotificationStore) NotificationService {
	return &notificationService{notifications: notifications}
}

func (s *notificationService) List(ctx context.Context, email string) ([]model.Notification, error) {
	ns, err := s.notifications.ListByRecipient(ctx, normalizeEmail(email), notificationPageSize)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	return ns, nil
}

func (s *notificationService) UnreadCount(ctx context.Context, email string) (int64, error) {
	n, err := s.notifications.CountUnread(ctx, normalizeEmail(email))
	if err != nil {
		return 0, fmt.Errorf("counting unread notifications: %w", err)
	}
	return n, nil
}

func (s *notificationService) MarkRead(ctx context.Context, id int64, email string) (*model.Notification, error) {
	return s.setRead(ctx, id, email, true)
}

func (s *notificationService) MarkUnread(ctx context.Context, id int64, email string) (*model.Notification, error) {
	return s.setRead(ctx, id, email, false)
}

func (s *notificationService) setRead(ctx context.Context, id int64, email string, read bool) (*model.Notification, error) {
	n, err := s.notifications.SetRead(ctx, id, normalizeEmail(email), read)
	if err != nil {
		return nil, fmt.Errorf("updating notification: %w", err)
	}
	return n, nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, email string) (int64, error) {
	n, err := s.notifications.MarkAllRead(ctx, normalizeEmail(email))
	if err != nil {
		return 0, fmt.Errorf("marking notifications read: %w", err)
	}
	return n, nil
}

func (s *notificationService) Delete(ctx context.Context, id int64, email string) error {
	if err := s.notifications.Delete(ctx, id, normalizeEmail(email)); err != nil {
		return fmt.Errorf("deleting notification: %w", err)
	}
	return nil
}
