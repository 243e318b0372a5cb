package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"pricingdesk.app/server/common/logger"
	"pricingdesk.app/server/core/config"
	"pricingdesk.app/server/core/db"
)

var rootCmd = &cobra.Command{
	Use:           "pricingctl",
	Short:         "Operate the pricing desk",
	Long:          "pricingctl runs database migrations and one-off reminder sweeps against the pricing desk database.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(remindersCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// connect loads CLI config, sets up logging and opens the database.
func connect(ctx context.Context) (config.Config, *db.DB, error) {
	cfg, err := config.Load(config.ServiceTypeCLI)
	if err != nil {
		return config.Config{}, nil, err
	}
	logger.Setup(cfg)

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("connecting to database: %w", err)
	}
	return cfg, database, nil
}
