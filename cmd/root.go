package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"gitlab.com/nunet/opencompute-monitor/docs"
	"gitlab.com/nunet/opencompute-monitor/internal/config"
	"gitlab.com/nunet/opencompute-monitor/internal/tracing"
)

var flagEntity, flagProject string

// shutdownTracer flushes spans recorded by the running command.
var shutdownTracer = func(context.Context) error { return nil }

var rootCmd = &cobra.Command{
	Use:     "opencompute",
	Short:   "OpenCompute hardware inventory",
	Long:    `Normalize and aggregate the hardware inventory OpenCompute miners report to Weights & Biases`,
	Version: docs.SwaggerInfo.Version,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: false,
		HiddenDefaultCmd:  true,
	},
	SilenceErrors:      true,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagEntity, "entity", "e", "", "W&B entity owning the project")
	rootCmd.PersistentFlags().StringVarP(&flagProject, "project", "p", "", "W&B project the runs are read from")
}

// setup loads the config, applies flag overrides and starts tracing
func setup(cmd *cobra.Command, args []string) error {
	if err := config.LoadConfig(); err != nil {
		return err
	}

	if flagEntity != "" {
		config.SetConfig("wandb.entity", flagEntity)
	}
	if flagProject != "" {
		config.SetConfig("wandb.project", flagProject)
	}

	shutdown, err := tracing.InitTracer(cmd.Context(), config.GetConfig().Telemetry)
	if err != nil {
		return err
	}
	shutdownTracer = shutdown

	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	return shutdownTracer(context.Background())
}

func Execute() {
	// CheckErr prints formatted error message, if there is any, and exits
	cobra.CheckErr(rootCmd.Execute())
}
