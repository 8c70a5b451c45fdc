package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"gitlab.com/nunet/opencompute-monitor/cmd/backend"
	"gitlab.com/nunet/opencompute-monitor/models"
)

func NewDashboardCmd(inv backend.Inventory) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Display the hardware overview and both GPU summaries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := fetchSnapshot(cmd.Context(), inv)
			if err != nil {
				return err
			}

			renderDashboard(cmd.OutOrStdout(), snapshot)
			return nil
		},
	}
}

// renderDashboard prints the three views in tab order. Summaries with no
// entries are left out.
func renderDashboard(w io.Writer, snapshot *models.Snapshot) {
	fmt.Fprintln(w, "Hardware Overview")
	renderHardware(w, snapshot.Rows)

	if len(snapshot.Instances) > 0 {
		fmt.Fprintln(w, "\nInstances Summary")
		renderInstances(w, snapshot.Instances)
	}

	if len(snapshot.Totals) > 0 {
		fmt.Fprintln(w, "\nTotal GPU Counts")
		renderTotals(w, snapshot)
	}
}
