package queue

import (
	"fmt"
	"strconv"
	"strings"

	"pricingdesk.app/server/internal/email"
)

// Stream field names of an outbox entry.
const (
	fieldKind      = "kind"
	fieldTo        = "to"
	fieldCc        = "cc"
	fieldSubject   = "subject"
	fieldHTML      = "html"
	fieldRequestID = "request_id"
	fieldAttempt   = "attempt"
	fieldTraceID   = "trace_id"
	fieldLastError = "last_error"
	fieldError     = "error"
)

func emailValues(msg email.Message, attempt int, traceID string) map[string]any {
	values := map[string]any{
		fieldKind:    string(msg.Kind),
		fieldTo:      msg.To,
		fieldSubject: msg.Subject,
		fieldHTML:    msg.HTML,
		fieldAttempt: attempt,
	}
	if len(msg.Cc) > 0 {
		values[fieldCc] = strings.Join(msg.Cc, ",")
	}
	if msg.RequestID != nil {
		values[fieldRequestID] = *msg.RequestID
	}
	if traceID != "" {
		values[fieldTraceID] = traceID
	}
	return values
}

func validateEmail(msg email.Message) error {
	switch {
	case msg.Kind == "":
		return fmt.Errorf("missing %s", fieldKind)
	case msg.To == "":
		return fmt.Errorf("missing %s", fieldTo)
	case msg.Subject == "":
		return fmt.Errorf("missing %s", fieldSubject)
	case msg.HTML == "":
		return fmt.Errorf("missing %s", fieldHTML)
	}
	return nil
}

func splitCc(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, addr := range strings.Split(raw, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			out = append(out, addr)
		}
	}
	return out
}

// fields reads stream values, which come back from Redis as strings but may
// be native types when built in-process.
type fields map[string]any

func (f fields) str(key string) string {
	v, ok := f[key]
	if !ok {
		return ""
	}
	return fmt.Sprint(v)
}

func (f fields) integer(key string) (int, error) {
	s := f.str(key)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("field %s: %w", key, err)
	}
	return n, nil
}

func (f fields) int64Ptr(key string) (*int64, error) {
	s := f.str(key)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("field %s: %w", key, err)
	}
	return &n, nil
}
