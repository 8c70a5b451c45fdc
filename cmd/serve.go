package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gitlab.com/nunet/opencompute-monitor/api"
	"gitlab.com/nunet/opencompute-monitor/cmd/backend"
	"gitlab.com/nunet/opencompute-monitor/internal/background_tasks"
	"gitlab.com/nunet/opencompute-monitor/internal/config"
	"gitlab.com/nunet/opencompute-monitor/internal/logger"
)

const shutdownTimeout = 10 * time.Second

func NewServeCmd(inv backend.Inventory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the inventory over HTTP",
		Long:  `Start the REST API and keep the hardware inventory up to date in the background.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			port, _ := cmd.Flags().GetInt("port")
			if port != 0 {
				config.SetConfig("rest.port", port)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, inv, config.GetConfig().Rest)
		},
	}

	cmd.Flags().Int("port", 0, "port the REST API listens on (default rest.port)")

	return cmd
}

// refreshTask builds the background task keeping store up to date. It runs
// once at startup, on every periodic tick and whenever manual fires.
func refreshTask(inv backend.Inventory, store *api.SnapshotStore, cfg config.Rest, manual *background_tasks.EventTrigger) (*background_tasks.Task, error) {
	var periodic *background_tasks.PeriodicTrigger
	if cfg.RefreshCron != "" {
		trigger, err := background_tasks.NewCronTrigger(cfg.RefreshCron)
		if err != nil {
			return nil, fmt.Errorf("invalid rest.refresh_cron %q: %w", cfg.RefreshCron, err)
		}
		periodic = trigger
	} else {
		periodic = &background_tasks.PeriodicTrigger{Interval: cfg.RefreshInterval}
	}

	return &background_tasks.Task{
		Name:     "refresh-inventory",
		Triggers: []background_tasks.Trigger{&background_tasks.OneTimeTrigger{}, periodic, manual},
		Function: func(ctx context.Context) error {
			snapshot, err := inv.Refresh(ctx)
			store.Update(snapshot, err)
			return err
		},
	}, nil
}

func serve(ctx context.Context, inv backend.Inventory, cfg config.Rest) error {
	zlog := logger.New("cmd.serve")

	store := api.NewSnapshotStore()
	manual := background_tasks.NewEventTrigger()

	task, err := refreshTask(inv, store, cfg, manual)
	if err != nil {
		return err
	}

	scheduler := background_tasks.NewScheduler(time.Second)
	scheduler.AddTask(task)
	scheduler.Start(ctx)

	router := api.SetupRouter(api.NewHandler(store, manual), cfg.AllowOrigins)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		zlog.Info("starting REST API", zap.Int("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("REST API stopped: %w", err)
		}
	}

	zlog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("could not shut down REST API: %w", err)
	}
	scheduler.Wait()

	return nil
}
