package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"gitlab.com/nunet/opencompute-monitor/cmd/backend"
	"gitlab.com/nunet/opencompute-monitor/models"
)

func setupTable(w io.Writer, headers []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)

	table.SetHeader(headers)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)

	return table
}

// fetchSnapshot runs a single refresh for the data commands
func fetchSnapshot(ctx context.Context, inv backend.Inventory) (*models.Snapshot, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	snapshot, err := inv.Refresh(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not refresh inventory: %w", err)
	}

	return snapshot, nil
}

func renderHardware(w io.Writer, rows []models.NormalizedRow) {
	table := setupTable(w, models.HardwareHeaders)
	for _, row := range rows {
		table.Append(row.Cells())
	}
	table.Render()
}

func renderInstances(w io.Writer, entries []models.InstanceEntry) {
	table := setupTable(w, models.InstanceHeaders)
	for _, e := range entries {
		table.Append(e.Cells())
	}
	table.Render()
}

// renderTotals adds a footer with the grand total across all GPU models
func renderTotals(w io.Writer, snapshot *models.Snapshot) {
	table := setupTable(w, models.TotalHeaders)
	for _, e := range snapshot.Totals {
		table.Append(e.Cells())
	}
	table.SetFooter([]string{"Total", humanize.Comma(snapshot.GrandTotal())})
	table.Render()
}
