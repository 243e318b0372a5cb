package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields contains structured fields automatically added to all logs within a context.
// Handlers and workers enrich the context once; every slog call below picks the
// fields up through TraceHandler.
type LogFields struct {
	RequestID      *int64  // Pricing request ID
	CommentID      *int64  // Comment ID
	NotificationID *int64  // In-app notification ID
	MessageID      *string // Redis stream message ID
	Role           *string // Acting role (COMMERCIAL, PL, VP)
	Action         *string // Decision action (APPROVE, REJECT, ESCALATE)
	Component      string  // Component name, e.g. "pricingdesk.notify.dispatcher"
}

// WithLogFields enriches context with structured log fields.
// Multiple calls merge fields, with newer non-nil/non-empty values taking precedence.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	existing := GetLogFields(ctx)
	merged := mergeFields(existing, fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields retrieves log fields from context.
// Returns empty LogFields if none are set.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, next LogFields) LogFields {
	result := existing

	if next.RequestID != nil {
		result.RequestID = next.RequestID
	}
	if next.CommentID != nil {
		result.CommentID = next.CommentID
	}
	if next.NotificationID != nil {
		result.NotificationID = next.NotificationID
	}
	if next.MessageID != nil {
		result.MessageID = next.MessageID
	}
	if next.Role != nil {
		result.Role = next.Role
	}
	if next.Action != nil {
		result.Action = next.Action
	}
	if next.Component != "" {
		result.Component = next.Component
	}

	return result
}

// Ptr is a helper to create a pointer from a value.
// Useful for setting LogFields inline: logger.WithLogFields(ctx, logger.LogFields{RequestID: logger.Ptr(id)})
func Ptr[T any](v T) *T {
	return &v
}

// Truncate truncates a string to maxLen bytes, appending "..." if truncated.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
