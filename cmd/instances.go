package cmd

import (
	"github.com/spf13/cobra"

	"gitlab.com/nunet/opencompute-monitor/cmd/backend"
)

func NewInstancesCmd(inv backend.Inventory) *cobra.Command {
	return &cobra.Command{
		Use:   "instances",
		Short: "Count nodes per GPU model and GPU count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := fetchSnapshot(cmd.Context(), inv)
			if err != nil {
				return err
			}

			renderInstances(cmd.OutOrStdout(), snapshot.Instances)
			return nil
		},
	}
}
