package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitlab.com/nunet/opencompute-monitor/cmd/backend"
)

func NewAllocatedCmd(inv backend.Inventory) *cobra.Command {
	return &cobra.Command{
		Use:   "allocated",
		Short: "List hotkeys validators have allocated",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := fetchSnapshot(cmd.Context(), inv)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Allocated hotkeys (%d)\n", len(snapshot.Allocated))
			for _, hotkey := range snapshot.Allocated {
				fmt.Fprintln(w, hotkey)
			}

			return nil
		},
	}
}
