package main

import (
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"pricingdesk.app/server/internal/email"
	"pricingdesk.app/server/internal/queue"
	"pricingdesk.app/server/internal/reminder"
	"pricingdesk.app/server/internal/store"
)

var remindersCmd = &cobra.Command{
	Use:   "reminders",
	Short: "Pending-decision reminder emails",
}

var remindersRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Sweep stale requests once and enqueue reminder emails",
	Long: `Selects requests waiting on a Product Line (UNDER_REVIEW_PL) or a VP
(ESCALATED_TO_VP) for longer than the threshold and enqueues one reminder
email per request. Runs are not deduplicated: every run re-sends.`,
	RunE: runReminders,
}

func init() {
	remindersRunCmd.Flags().String("only", "", "restrict the sweep to one approver role (pl or vp)")
	remindersRunCmd.Flags().Duration("threshold", 0, "override REMINDER_THRESHOLD")
	remindersCmd.AddCommand(remindersRunCmd)
}

func runReminders(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	only, _ := cmd.Flags().GetString("only")
	if only != "" && only != "pl" && only != "vp" {
		return fmt.Errorf("--only must be pl or vp, got %q", only)
	}

	cfg, database, err := connect(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	threshold := cfg.Reminders.Threshold
	if override, _ := cmd.Flags().GetDuration("threshold"); override > 0 {
		threshold = override
	}

	redisOpts, err := redis.ParseURL(cfg.Mail.RedisURL)
	if err != nil {
		return fmt.Errorf("parsing redis url: %w", err)
	}
	outbox := queue.NewRedisProducer(redis.NewClient(redisOpts), cfg.Mail.Stream, nil)
	defer outbox.Close()

	composer, err := email.NewComposer(cfg.FrontendURL)
	if err != nil {
		return err
	}

	stores := store.NewStores(database.Queries())
	sweeper := reminder.NewSweeper(stores.PricingRequests(), composer, outbox, clockwork.NewRealClock(), threshold)

	report := func(name string, res reminder.Result) {
		slog.InfoContext(ctx, "reminder sweep finished", "sweep", name,
			"selected", res.Selected, "sent", res.Sent, "failed", res.Failed)
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d selected, %d sent, %d failed\n", name, res.Selected, res.Sent, res.Failed)
	}

	switch only {
	case "pl":
		res, err := sweeper.RunPL(ctx)
		if err != nil {
			return err
		}
		report("pl", res)
	case "vp":
		res, err := sweeper.RunVP(ctx)
		if err != nil {
			return err
		}
		report("vp", res)
	default:
		pl, vp, err := sweeper.RunAll(ctx)
		if err != nil {
			return err
		}
		report("pl", pl)
		report("vp", vp)
	}
	return nil
}
