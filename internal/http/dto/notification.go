package dto

import (
	"time"

	"pricingdesk.app/server/internal/model"
)

type NotificationResponse struct {
	ID               int64                  `json:"id,string"`
	RecipientEmail   string                 `json:"recipient_email"`
	RecipientRole    model.Role             `json:"recipient_role"`
	RequestID        int64                  `json:"request_id,string"`
	Type             model.NotificationType `json:"notification_type"`
	Title            string                 `json:"title"`
	Message          string                 `json:"message"`
	TriggeredByEmail string                 `json:"triggered_by_email"`
	TriggeredByName  *string                `json:"triggered_by_name"`
	IsRead           bool                   `json:"is_read"`
	ActionURL        *string                `json:"action_url"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
}

func ToNotificationResponse(n *model.Notification) NotificationResponse {
	return NotificationResponse{
		ID:               n.ID,
		RecipientEmail:   n.RecipientEmail,
		RecipientRole:    n.RecipientRole,
		RequestID:        n.RequestID,
		Type:             n.Type,
		Title:            n.Title,
		Message:          n.Message,
		TriggeredByEmail: n.TriggeredByEmail,
		TriggeredByName:  n.TriggeredByName,
		IsRead:           n.IsRead,
		ActionURL:        n.ActionURL,
		CreatedAt:        n.CreatedAt,
		UpdatedAt:        n.UpdatedAt,
	}
}

func ToNotificationResponses(ns []model.Notification) []NotificationResponse {
	out := make([]NotificationResponse, len(ns))
	for i := range ns {
		out[i] = ToNotificationResponse(&ns[i])
	}
	return out
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

type MarkAllReadResponse struct {
	Message string `json:"message"`
	Updated int64  `json:"updated"`
}
