package wandb

import (
	"context"

	"gitlab.com/nunet/opencompute-monitor/models"
)

// Project binds a client to one entity/project namespace.
type Project struct {
	Client  *Client
	Entity  string
	Project string
}

func (p *Project) ListRecords(ctx context.Context) ([]models.RawRecord, error) {
	return p.Client.Runs(ctx, p.Entity, p.Project)
}
