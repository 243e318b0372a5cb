package model

import "time"

type NotificationType string

const (
	NotificationTypeRequestSubmitted NotificationType = "REQUEST_SUBMITTED"
	NotificationTypePLApproved       NotificationType = "PL_APPROVED"
	NotificationTypePLRejected       NotificationType = "PL_REJECTED"
	NotificationTypePLEscalated      NotificationType = "PL_ESCALATED"
	NotificationTypeVPApproved       NotificationType = "VP_APPROVED"
	NotificationTypeVPRejected       NotificationType = "VP_REJECTED"
	NotificationTypeNewComment       NotificationType = "NEW_COMMENT"
	NotificationTypeCommentReply     NotificationType = "COMMENT_REPLY"
	NotificationTypeRequestClosed    NotificationType = "REQUEST_CLOSED"
)

type Notification struct {
	ID               int64
	RecipientEmail   string
	RecipientRole    Role
	RequestID        int64
	Type             NotificationType
	Title            string
	Message          string
	TriggeredByEmail string
	TriggeredByName  *string
	IsRead           bool
	ActionURL        *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
