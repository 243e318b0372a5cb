package reminder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	"pricingdesk.app/server/core/config"
)

// Runner is the part of Sweeper the scheduler drives.
type Runner interface {
	RunPL(ctx context.Context) (Result, error)
	RunVP(ctx context.Context) (Result, error)
}

// Scheduler runs the PL and VP sweeps on their cron schedules.
type Scheduler struct {
	cron   *cron.Cron
	runner Runner
	ctx    context.Context
}

func NewScheduler(runner Runner, cfg config.ReminderConfig) (*Scheduler, error) {
	s := &Scheduler{
		cron: cron.New(
			cron.WithLocation(cfg.Location()),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		runner: runner,
		ctx:    context.Background(),
	}

	if _, err := s.cron.AddFunc(cfg.PLSchedule, s.run("pl", runner.RunPL)); err != nil {
		return nil, fmt.Errorf("invalid PL reminder schedule %q: %w", cfg.PLSchedule, err)
	}
	if _, err := s.cron.AddFunc(cfg.VPSchedule, s.run("vp", runner.RunVP)); err != nil {
		return nil, fmt.Errorf("invalid VP reminder schedule %q: %w", cfg.VPSchedule, err)
	}

	return s, nil
}

// Start schedules the sweeps in the background. ctx is handed to every sweep.
func (s *Scheduler) Start(ctx context.Context) {
	s.ctx = ctx
	s.cron.Start()
	slog.InfoContext(ctx, "reminder scheduler started", "jobs", len(s.cron.Entries()))
}

// Stop prevents new sweeps and waits for a running one to finish, or for ctx.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop().Done()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) run(name string, sweep func(context.Context) (Result, error)) func() {
	return func() {
		if _, err := sweep(s.ctx); err != nil {
			slog.ErrorContext(s.ctx, "reminder sweep failed", "sweep", name, "error", err)
		}
	}
}
