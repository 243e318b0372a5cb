package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"pricingdesk.app/server/common/logger"
	"pricingdesk.app/server/internal/queue"
)

type RedisReclaimerConfig struct {
	Stream   string
	Group    string
	Consumer string
	// MinIdle is how long an entry must sit unacked before it is taken over.
	MinIdle   time.Duration
	Interval  time.Duration
	BatchSize int64
}

// RedisReclaimer takes over outbox entries a mailer read but never acked,
// typically because the process died mid-send.
type RedisReclaimer struct {
	client    *redis.Client
	cfg       RedisReclaimerConfig
	consumer  Consumer
	processor queue.MessageProcessor

	quit chan struct{}
	done chan struct{}
}

func NewRedisReclaimer(client *redis.Client, cfg RedisReclaimerConfig, consumer Consumer, processor queue.MessageProcessor) *RedisReclaimer {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 10
	}
	if cfg.Interval <= 0 {
		cfg.Interval = 30 * time.Second
	}
	return &RedisReclaimer{
		client:    client,
		cfg:       cfg,
		consumer:  consumer,
		processor: processor,
		quit:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Run sweeps the pending list every Interval until Stop or ctx cancellation.
func (r *RedisReclaimer) Run(ctx context.Context) {
	defer close(r.done)
	ctx = logger.WithLogFields(ctx, logger.LogFields{Component: "pricingdesk.worker.reclaimer"})

	slog.InfoContext(ctx, "outbox reclaimer running",
		"stream", r.cfg.Stream,
		"every", r.cfg.Interval,
		"min_idle", r.cfg.MinIdle)

	tick := time.NewTicker(r.cfg.Interval)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.quit:
			slog.InfoContext(ctx, "outbox reclaimer stopped")
			return
		case <-tick.C:
			n, err := r.sweep(ctx)
			if err != nil {
				slog.ErrorContext(ctx, "outbox reclaim sweep failed", "error", err, "recovered", n)
				continue
			}
			if n > 0 {
				slog.InfoContext(ctx, "outbox entries recovered", "count", n)
			}
		}
	}
}

func (r *RedisReclaimer) Stop() {
	close(r.quit)
	<-r.done
}

// sweep walks the whole pending list once, page by page, and returns how
// many stale entries it took over.
func (r *RedisReclaimer) sweep(ctx context.Context) (int, error) {
	cursor := "0-0"
	total := 0
	for {
		entries, next, err := r.client.XAutoClaim(ctx, &redis.XAutoClaimArgs{
			Stream:   r.cfg.Stream,
			Group:    r.cfg.Group,
			Consumer: r.cfg.Consumer,
			MinIdle:  r.cfg.MinIdle,
			Start:    cursor,
			Count:    r.cfg.BatchSize,
		}).Result()
		if err != nil {
			return total, fmt.Errorf("xautoclaim %s: %w", r.cfg.Stream, err)
		}

		for _, entry := range entries {
			r.redeliver(ctx, entry)
		}
		total += len(entries)

		if next == "0-0" || next == "" {
			return total, nil
		}
		cursor = next
	}
}

// redeliver feeds a claimed entry back through the mailer's processor.
// Entries that no longer decode are acked so they stop coming back.
func (r *RedisReclaimer) redeliver(ctx context.Context, entry redis.XMessage) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{MessageID: logger.Ptr(entry.ID)})

	msg, err := queue.ParseMessage(entry)
	if err != nil {
		slog.ErrorContext(ctx, "dropping undecodable outbox entry", "error", err)
		if ackErr := r.consumer.Ack(ctx, queue.Message{ID: entry.ID, Raw: entry}); ackErr != nil {
			slog.WarnContext(ctx, "ack of undecodable entry failed", "error", ackErr)
		}
		return
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{RequestID: msg.Email.RequestID})
	started := time.Now()
	// On failure the processor has already requeued or dead-lettered msg.
	if err := r.processor(ctx, msg); err != nil {
		slog.WarnContext(ctx, "redelivery of stale outbox entry failed",
			"error", err, "kind", msg.Email.Kind)
		return
	}
	slog.InfoContext(ctx, "stale outbox entry delivered",
		"kind", msg.Email.Kind,
		"took_ms", time.Since(started).Milliseconds())
}
