package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"pricingdesk.app/server/common/logger"
	"pricingdesk.app/server/internal/email"
)

type ConsumerConfig struct {
	Stream    string
	Group     string
	Consumer  string
	DLQStream string
	BatchSize int64
	// Block bounds each XREADGROUP call; zero blocks forever.
	Block       time.Duration
	MaxAttempts int
	// RequeueDelay is waited out before a failed email is appended again.
	RequeueDelay time.Duration
}

// Message is an outbox entry read back from the stream.
type Message struct {
	ID        string
	Email     email.Message
	Attempt   int
	TraceID   string
	LastError string
	Raw       redis.XMessage
}

// MessageProcessor handles one outbox entry end to end.
type MessageProcessor func(ctx context.Context, msg Message) error

// RedisConsumer reads the email outbox as a member of a consumer group.
type RedisConsumer struct {
	client *redis.Client
	cfg    ConsumerConfig
}

func NewRedisConsumer(client *redis.Client, cfg ConsumerConfig) (*RedisConsumer, error) {
	c := &RedisConsumer{client: client, cfg: cfg}
	if err := c.joinGroup(context.Background()); err != nil { //nolint:contextcheck
		return nil, err
	}
	return c, nil
}

// joinGroup creates the stream and group on first use. The group starts at
// "0" so emails enqueued before any mailer ran are still sent.
func (c *RedisConsumer) joinGroup(ctx context.Context) error {
	err := c.client.XGroupCreateMkStream(ctx, c.cfg.Stream, c.cfg.Group, "0").Err()
	if err == nil || strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return nil
	}
	return fmt.Errorf("creating group %s on %s: %w", c.cfg.Group, c.cfg.Stream, err)
}

// Read returns the next batch of never-delivered entries. Entries that do not
// decode are acked and skipped; stale pending ones are left to the reclaimer.
func (c *RedisConsumer) Read(ctx context.Context) ([]Message, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{Component: "pricingdesk.queue.consumer"})

	res, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    c.cfg.Group,
		Consumer: c.cfg.Consumer,
		Streams:  []string{c.cfg.Stream, ">"},
		Count:    c.cfg.BatchSize,
		Block:    c.cfg.Block,
	}).Result()
	switch {
	case errors.Is(err, redis.Nil):
		return []Message{}, nil
	case err != nil:
		return nil, fmt.Errorf("xreadgroup %s: %w", c.cfg.Stream, err)
	}

	out := make([]Message, 0, c.cfg.BatchSize)
	for _, s := range res {
		for _, raw := range s.Messages {
			msg, err := ParseMessage(raw)
			if err != nil {
				slog.ErrorContext(ctx, "skipping malformed outbox entry",
					"error", err, "entry_id", raw.ID)
				if ackErr := c.Ack(ctx, Message{ID: raw.ID, Raw: raw}); ackErr != nil {
					slog.WarnContext(ctx, "ack of malformed entry failed", "error", ackErr)
				}
				continue
			}
			out = append(out, msg)
		}
	}
	return out, nil
}

func (c *RedisConsumer) Ack(ctx context.Context, msg Message) error {
	if err := c.client.XAck(ctx, c.cfg.Stream, c.cfg.Group, msg.ID).Err(); err != nil {
		return fmt.Errorf("xack %s %s: %w", c.cfg.Stream, msg.ID, err)
	}
	return nil
}

// Requeue replaces msg with a fresh entry carrying the next attempt number.
// The ack and the append happen in one MULTI so the email is neither lost
// nor duplicated if the mailer dies in between.
func (c *RedisConsumer) Requeue(ctx context.Context, msg Message, errMsg string) error {
	if c.cfg.RequeueDelay > 0 {
		t := time.NewTimer(c.cfg.RequeueDelay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}

	next := msg.Attempt + 1
	values := emailValues(msg.Email, next, msg.TraceID)
	if errMsg != "" {
		values[fieldLastError] = errMsg
	}
	if err := c.moveTo(ctx, msg, c.cfg.Stream, values); err != nil {
		return fmt.Errorf("requeue: %w", err)
	}

	slog.InfoContext(ctx, "email scheduled for another attempt", "attempt", next, "reason", errMsg)
	return nil
}

// SendDLQ parks msg on the dead-letter stream with the error that ended it.
func (c *RedisConsumer) SendDLQ(ctx context.Context, msg Message, errMsg string) error {
	values := emailValues(msg.Email, msg.Attempt, msg.TraceID)
	values[fieldError] = errMsg
	if err := c.moveTo(ctx, msg, c.cfg.DLQStream, values); err != nil {
		return fmt.Errorf("dead-letter: %w", err)
	}

	slog.ErrorContext(ctx, "email given up", "dlq", c.cfg.DLQStream, "error", errMsg, "attempts", msg.Attempt)
	return nil
}

func (c *RedisConsumer) moveTo(ctx context.Context, msg Message, stream string, values map[string]any) error {
	_, err := c.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.XAck(ctx, c.cfg.Stream, c.cfg.Group, msg.ID)
		p.XAdd(ctx, &redis.XAddArgs{Stream: stream, Values: values})
		return nil
	})
	if err != nil {
		return fmt.Errorf("moving %s to %s: %w", msg.ID, stream, err)
	}
	return nil
}

// ParseMessage decodes a raw stream entry into a Message. A missing attempt
// counter means first delivery.
func ParseMessage(raw redis.XMessage) (Message, error) {
	f := fields(raw.Values)

	requestID, err := f.int64Ptr(fieldRequestID)
	if err != nil {
		return Message{}, err
	}
	attempt, err := f.integer(fieldAttempt)
	if err != nil {
		return Message{}, err
	}

	e := email.Message{
		Kind:      email.Kind(f.str(fieldKind)),
		To:        f.str(fieldTo),
		Cc:        splitCc(f.str(fieldCc)),
		Subject:   f.str(fieldSubject),
		HTML:      f.str(fieldHTML),
		RequestID: requestID,
	}
	if err := validateEmail(e); err != nil {
		return Message{}, err
	}

	return Message{
		ID:        raw.ID,
		Email:     e,
		Attempt:   max(attempt, 1),
		TraceID:   f.str(fieldTraceID),
		LastError: f.str(fieldLastError),
		Raw:       raw,
	}, nil
}
