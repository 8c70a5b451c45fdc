package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"gitlab.com/nunet/opencompute-monitor/internal/tracing"
	"gitlab.com/nunet/opencompute-monitor/models"
)

// Refresh runs one full pass: fetch, normalize, classify, aggregate. Any
// ServiceUnavailableError aborts it without a snapshot.
func Refresh(ctx context.Context, f *Fetcher) (*models.Snapshot, error) {
	id := uuid.NewString()
	ctx, span := tracing.Tracer.Start(ctx, "inventory.Refresh")
	defer span.End()
	span.SetAttributes(attribute.String("snapshot.id", id))

	specs, err := f.FetchMinerSpecs(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	allocatedIDs, err := f.FetchAllocatedIDs(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	allocated := NewAllocatedSet(allocatedIDs)

	snapshot := Build(specs, allocated)
	snapshot.ID = id

	span.SetAttributes(
		attribute.Int("snapshot.rows", len(snapshot.Rows)),
		attribute.Int("snapshot.allocated", len(snapshot.Allocated)),
	)
	zlog.Ctx(ctx).Info("refreshed hardware snapshot",
		zap.String("snapshot_id", id),
		zap.Int("miners", len(snapshot.Rows)),
		zap.Int("allocated", len(snapshot.Allocated)),
		zap.Int64("gpus", snapshot.GrandTotal()))

	return snapshot, nil
}

// Build turns fetched data into a snapshot without touching the network.
func Build(specs *models.MinerSpecs, allocated AllocatedSet) *models.Snapshot {
	rows := NormalizeAll(specs)
	ClassifyRows(rows, allocated)
	instances, totals := Aggregate(rows)

	return &models.Snapshot{
		TakenAt:   time.Now().UTC(),
		Rows:      rows,
		Instances: instances,
		Totals:    totals,
		Allocated: allocated.Members(),
	}
}
