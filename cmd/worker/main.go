package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"pricingdesk.app/server/common/id"
	"pricingdesk.app/server/common/logger"
	"pricingdesk.app/server/common/otel"
	"pricingdesk.app/server/core/config"
	"pricingdesk.app/server/core/db"
	"pricingdesk.app/server/internal/email"
	"pricingdesk.app/server/internal/queue"
	"pricingdesk.app/server/internal/reminder"
	"pricingdesk.app/server/internal/store"
	"pricingdesk.app/server/internal/worker"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(config.ServiceTypeWorker)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	fmt.Printf("%s\n", banner)

	telemetry, err := otel.Setup(ctx, cfg.OTel, cfg.Env)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger.Setup(cfg)

	slog.InfoContext(ctx, "pricing desk worker starting",
		"env", cfg.Env,
		"consumer_group", cfg.Mail.Group,
		"consumer_name", cfg.Mail.Consumer,
		"smtp_enabled", cfg.SMTP.Enabled())

	if err := id.Init(id.NodeWorker); err != nil {
		slog.ErrorContext(ctx, "failed to initialize id generator", "error", err)
		os.Exit(1)
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()
	slog.InfoContext(ctx, "database connected")

	redisOpts, err := redis.ParseURL(cfg.Mail.RedisURL)
	if err != nil {
		slog.ErrorContext(ctx, "failed to parse redis url", "error", err)
		os.Exit(1)
	}

	redisClient := redis.NewClient(redisOpts)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.ErrorContext(ctx, "failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	slog.InfoContext(ctx, "redis connected", "stream", cfg.Mail.Stream)

	consumer, err := queue.NewRedisConsumer(redisClient, queue.ConsumerConfig{
		Stream:       cfg.Mail.Stream,
		Group:        cfg.Mail.Group,
		Consumer:     cfg.Mail.Consumer,
		DLQStream:    cfg.Mail.DLQStream,
		BatchSize:    10,
		Block:        5 * time.Second,
		MaxAttempts:  cfg.Mail.MaxAttempts,
		RequeueDelay: 2 * time.Second,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to create consumer", "error", err)
		os.Exit(1)
	}

	sender, err := email.NewSender(cfg.SMTP)
	if err != nil {
		slog.ErrorContext(ctx, "failed to configure email sender", "error", err)
		os.Exit(1)
	}

	composer, err := email.NewComposer(cfg.FrontendURL)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load email templates", "error", err)
		os.Exit(1)
	}

	mailer := worker.New(consumer, sender, worker.Config{MaxAttempts: cfg.Mail.MaxAttempts})

	reclaimer := worker.NewRedisReclaimer(redisClient, worker.RedisReclaimerConfig{
		Stream:    cfg.Mail.Stream,
		Group:     cfg.Mail.Group,
		Consumer:  cfg.Mail.Consumer + "-reclaimer",
		MinIdle:   5 * time.Minute,
		Interval:  time.Minute,
		BatchSize: 10,
	}, consumer, mailer.Handle)

	// Reminders go through the same outbox the API writes to.
	outbox := queue.NewRedisProducer(redisClient, cfg.Mail.Stream, nil)
	stores := store.NewStores(database.Queries())
	sweeper := reminder.NewSweeper(stores.PricingRequests(), composer, outbox, clockwork.NewRealClock(), cfg.Reminders.Threshold)

	scheduler, err := reminder.NewScheduler(sweeper, cfg.Reminders)
	if err != nil {
		slog.ErrorContext(ctx, "failed to configure reminder scheduler", "error", err)
		os.Exit(1)
	}

	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(runCtx)
	g.Go(func() error {
		return mailer.Run(gctx)
	})
	g.Go(func() error {
		reclaimer.Run(gctx)
		return nil
	})
	g.Go(func() error {
		scheduler.Start(gctx)
		<-gctx.Done()

		stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return scheduler.Stop(stopCtx)
	})

	slog.InfoContext(ctx, "worker initialized and running",
		"pl_schedule", cfg.Reminders.PLSchedule,
		"vp_schedule", cfg.Reminders.VPSchedule)

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		slog.ErrorContext(ctx, "worker stopped with error", "error", err)
	}

	if telemetry != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(ctx, "worker shutdown complete")
}

const banner = `
 ___     _    _             ___         _     __      __       _
| _ \_ _(_)__(_)_ _  __ _  |   \ ___ __| |__  \ \    / /__ _ _| |_____ _ _
|  _/ '_| / _| | ' \/ _' | | |) / -_|_-< / /   \ \/\/ / _ \ '_| / / -_) '_|
|_| |_| |_\__|_|_||_\__, | |___/\___/__/_\_\    \_/\_/\___/_| |_\_\___|_|
                    |___/
`
