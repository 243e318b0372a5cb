package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"pricingdesk.app/server/core/db"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down|status|version|reset]",
	Short:     "Run the embedded database migrations",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"up", "down", "status", "version", "reset"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		command := db.MigrateCommand("up")
		if len(args) == 1 {
			command = db.MigrateCommand(args[0])
		}

		_, database, err := connect(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		if err := database.Migrate(ctx, command); err != nil {
			return err
		}
		slog.InfoContext(ctx, "migrations finished", "command", command)
		return nil
	},
}
