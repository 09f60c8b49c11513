// Command manifestctl runs maintenance tasks against the manifest database.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/limbo/manifest/internal/repository"
	"github.com/limbo/manifest/pkg/cleanup"
	"github.com/limbo/manifest/pkg/config"
	"github.com/limbo/manifest/pkg/logger"
)

var (
	envFile  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:           "manifestctl",
	Short:         "Maintenance commands for the manifest backend",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.InitTo(os.Stderr, logLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env", "./configs/.env", "env file with the POSTGRES_* keys")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
	rootCmd.AddCommand(migrateCmd, seedCmd)
}

func loadConfig() (*config.Config, *repository.PGCfg) {
	cfg := config.NewFromFile(envFile)
	return cfg, repository.NewPGCfg(cfg)
}

func main() {
	err := rootCmd.Execute()
	cleanup.CleanUp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
