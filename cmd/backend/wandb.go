package backend

import (
	"context"
	"fmt"

	"gitlab.com/nunet/opencompute-monitor/integrations/wandb"
	"gitlab.com/nunet/opencompute-monitor/internal/config"
	"gitlab.com/nunet/opencompute-monitor/inventory"
	"gitlab.com/nunet/opencompute-monitor/models"
)

// WandB reads the inventory from the configured W&B project. The client is
// built on every call so flag overrides applied after startup are honoured.
type WandB struct{}

func (w *WandB) client() (*wandb.Client, error) {
	client, err := wandb.NewClient(config.GetConfig().WandB)
	if err != nil {
		return nil, fmt.Errorf("could not create W&B client: %w", err)
	}
	return client, nil
}

func (w *WandB) Refresh(ctx context.Context) (*models.Snapshot, error) {
	client, err := w.client()
	if err != nil {
		return nil, err
	}

	cfg := config.GetConfig().WandB
	project := &wandb.Project{Client: client, Entity: cfg.Entity, Project: cfg.Project}

	return inventory.Refresh(ctx, inventory.NewFetcher(project))
}

func (w *WandB) Viewer(ctx context.Context) (string, error) {
	client, err := w.client()
	if err != nil {
		return "", err
	}
	return client.Viewer(ctx)
}
