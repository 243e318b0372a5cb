package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"pricingdesk.app/server/common/logger"
	"pricingdesk.app/server/internal/email"
)

// Producer appends rendered emails to the outbox stream.
type Producer interface {
	Enqueue(ctx context.Context, msg email.Message) error
	Close() error
}

type redisProducer struct {
	client *redis.Client
	stream string
	logger *slog.Logger
}

func NewRedisProducer(client *redis.Client, stream string, logger *slog.Logger) Producer {
	if logger == nil {
		logger = slog.Default()
	}
	return &redisProducer{
		client: client,
		stream: stream,
		logger: logger,
	}
}

func (p *redisProducer) Enqueue(ctx context.Context, msg email.Message) error {
	if err := validateEmail(msg); err != nil {
		return fmt.Errorf("enqueue email: %w", err)
	}

	if err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: emailValues(msg, 1, logger.TraceID(ctx)),
	}).Err(); err != nil {
		return fmt.Errorf("enqueue email: %w", err)
	}

	p.logger.InfoContext(ctx, "enqueued email", "kind", msg.Kind, "to", msg.To)
	return nil
}

func (p *redisProducer) Close() error {
	return p.client.Close()
}
