package cmd

import (
	"github.com/spf13/cobra"

	"gitlab.com/nunet/opencompute-monitor/cmd/backend"
)

func NewTotalsCmd(inv backend.Inventory) *cobra.Command {
	return &cobra.Command{
		Use:   "totals",
		Short: "Sum GPUs per model across all nodes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := fetchSnapshot(cmd.Context(), inv)
			if err != nil {
				return err
			}

			renderTotals(cmd.OutOrStdout(), snapshot)
			return nil
		},
	}
}
