package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitlab.com/nunet/opencompute-monitor/cmd/backend"
)

func NewLoginCmd(account backend.Account) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Check the configured W&B API key",
		Long:  `Verify that WANDB_API_KEY (or wandb.api_key) is accepted by W&B and print the account it belongs to.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			username, err := account.Viewer(cmd.Context())
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in to W&B as %s\n", username)
			return nil
		},
	}
}
