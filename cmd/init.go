package cmd

import (
	"gitlab.com/nunet/opencompute-monitor/cmd/backend"
)

var wandbService = &backend.WandB{}

func init() {
	rootCmd.AddCommand(NewHardwareCmd(wandbService))
	rootCmd.AddCommand(NewInstancesCmd(wandbService))
	rootCmd.AddCommand(NewTotalsCmd(wandbService))
	rootCmd.AddCommand(NewAllocatedCmd(wandbService))
	rootCmd.AddCommand(NewDashboardCmd(wandbService))
	rootCmd.AddCommand(NewLoginCmd(wandbService))
	rootCmd.AddCommand(NewServeCmd(wandbService))
	rootCmd.AddCommand(versionCmd)
}
