package cmd

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"gitlab.com/nunet/opencompute-monitor/inventory"
	"gitlab.com/nunet/opencompute-monitor/models"
)

type MockInventory struct {
	mock.Mock
}

func (m *MockInventory) Refresh(ctx context.Context) (*models.Snapshot, error) {
	args := m.Called(ctx)
	snapshot, _ := args.Get(0).(*models.Snapshot)
	return snapshot, args.Error(1)
}

type MockAccount struct {
	mock.Mock
}

func (m *MockAccount) Viewer(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

var (
	specsA100 = []byte(`{"gpu":{"capacity":81920,"count":2,"details":[{"name":"NVIDIA A100"}]},"cpu":{"count":32},"ram":{"available":137438953472},"hard_disk":{"free":1099511627776}}`)
	specsH100 = []byte(`{"gpu":{"capacity":81920,"count":8,"details":[{"name":"NVIDIA H100"}]},"cpu":{"count":64},"ram":{"available":549755813888},"hard_disk":{"free":2199023255552}}`)
)

// mockSnapshot builds a snapshot the same way a refresh does
func mockSnapshot() *models.Snapshot {
	specs := &models.MinerSpecs{}
	specs.Set("5FHneW46xGXgs5mUiveU4sbTyGBzmstUspZC92UhjJM694ty", specsA100)
	specs.Set("5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY", specsH100)
	specs.Set("5DAAnrj7VHTznn2AWBemMuyBwZWs6FNFjdyVXUeYum3PTXFy", specsA100)
	specs.Set("5HGjWAeFDfFCWPsjFQdVV2Msvz2XtMktvgocEZcCj68kUMaw", nil)

	snapshot := inventory.Build(specs, inventory.NewAllocatedSet([]string{"5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY"}))
	snapshot.ID = "6f1c2f2e-95b4-4d6e-9f0e-8b1d7d0c5a11"
	snapshot.TakenAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	return snapshot
}
