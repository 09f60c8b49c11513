package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/limbo/manifest/internal/repository"
	"github.com/limbo/manifest/internal/service"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the development accounts that don't exist yet",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db := loadConfig()
		users := service.NewUserService(repository.NewUsersRepo(db))
		ctx, cancel := context.WithTimeout(cmd.Context(), time.Second*30)
		defer cancel()
		created, err := users.SeedDevAccounts(ctx)
		for _, acc := range created {
			fmt.Fprintf(cmd.OutOrStdout(), "created %s / %s (%s)\n", acc.Email, acc.Password, acc.Description)
		}
		if err != nil {
			return err
		}
		if len(created) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "all development accounts already exist")
		}
		return nil
	},
}
