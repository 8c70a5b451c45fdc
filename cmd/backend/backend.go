package backend

import (
	"context"

	"gitlab.com/nunet/opencompute-monitor/models"
)

// Inventory abstracts one full refresh of the hardware inventory.
type Inventory interface {
	Refresh(ctx context.Context) (*models.Snapshot, error)
}

// Account abstracts the W&B credential check.
type Account interface {
	Viewer(ctx context.Context) (string, error)
}
