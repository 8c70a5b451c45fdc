package cmd

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"gitlab.com/nunet/opencompute-monitor/cmd/backend"
	"gitlab.com/nunet/opencompute-monitor/inventory"
)

var validate = validator.New()

func NewHardwareCmd(inv backend.Inventory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hardware",
		Short: "Display the hardware reported by every miner",
		Long:  `Fetch the latest miner specs and print one row per node with its GPU, CPU, RAM, disk and allocation status.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, _ := cmd.Flags().GetString("status")
			if err := validate.Var(status, "omitempty,oneof=reserved available Reserved Available"); err != nil {
				return fmt.Errorf("invalid status %q: must be one of reserved, available", status)
			}

			snapshot, err := fetchSnapshot(cmd.Context(), inv)
			if err != nil {
				return err
			}

			renderHardware(cmd.OutOrStdout(), inventory.FilterByStatus(snapshot.Rows, status))
			return nil
		},
	}

	cmd.Flags().StringP("status", "s", "", "only show nodes with this status (reserved, available)")

	return cmd
}
