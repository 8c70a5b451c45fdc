package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitlab.com/nunet/opencompute-monitor/docs"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the OpenCompute Monitor version",
	Long:  `This command prints the version of the OpenCompute Monitor.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "OpenCompute Monitor Version: %s\n", docs.SwaggerInfo.Version)
	},
}
