package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/limbo/manifest/pkg/migrator"
)

var migrationsDir string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply, roll back or inspect database migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db := loadConfig()
		dir := migrationsDirOr(cfg.GetStringOr("MIGRATIONS_DIR", migrator.DefaultDir))
		if err := migrator.Up(db.ConnString(), dir); err != nil {
			return err
		}
		slog.Info("migrations applied", slog.String("dir", dir))
		return nil
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the latest migration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db := loadConfig()
		dir := migrationsDirOr(cfg.GetStringOr("MIGRATIONS_DIR", migrator.DefaultDir))
		if err := migrator.Down(db.ConnString(), dir); err != nil {
			return err
		}
		slog.Info("migration rolled back", slog.String("dir", dir))
		return nil
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the state of every migration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db := loadConfig()
		return migrator.Status(db.ConnString(), migrationsDirOr(cfg.GetStringOr("MIGRATIONS_DIR", migrator.DefaultDir)))
	},
}

func init() {
	migrateCmd.PersistentFlags().StringVar(&migrationsDir, "dir", "", "migrations directory (default MIGRATIONS_DIR or ./migrations)")
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateStatusCmd)
}

func migrationsDirOr(fallback string) string {
	if migrationsDir != "" {
		return migrationsDir
	}
	return fallback
}
