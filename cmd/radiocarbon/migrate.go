package main

import (
	"github.com/radiocarbon-hq/radiocarbon/pkg/config"
	"github.com/radiocarbon-hq/radiocarbon/pkg/db"
	"github.com/radiocarbon-hq/radiocarbon/pkg/db/migrate"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		cfg := config.FromContext(ctx)

		dbx, err := db.Open(ctx, cfg.DB.Driver, cfg.DB.DataSource)
		if err != nil {
			return err
		}
		defer dbx.Close() // nolint: errcheck

		return migrate.Migrate(ctx, dbx)
	},
}

var migrateRollbackCmd = &cobra.Command{
	Use:   "rollback",
	Short: "Roll back the last migration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		cfg := config.FromContext(ctx)

		dbx, err := db.Open(ctx, cfg.DB.Driver, cfg.DB.DataSource)
		if err != nil {
			return err
		}
		defer dbx.Close() // nolint: errcheck

		return migrate.Rollback(ctx, dbx)
	},
}

func init() {
	migrateCmd.AddCommand(migrateRollbackCmd)
}
