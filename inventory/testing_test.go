package inventory

import (
	"context"
	"fmt"

	"github.com/stretchr/testify/mock"

	"gitlab.com/nunet/opencompute-monitor/models"
)

type MockSource struct {
	mock.Mock
}

func (m *MockSource) ListRecords(ctx context.Context) ([]models.RawRecord, error) {
	args := m.Called(ctx)
	records, _ := args.Get(0).([]models.RawRecord)
	return records, args.Error(1)
}

func minerRecord(id, hotkey, specs string) models.RawRecord {
	config := fmt.Sprintf(`{"role": "miner", "hotkey": %q}`, hotkey)
	if specs != "" {
		config = fmt.Sprintf(`{"role": "miner", "hotkey": %q, "specs": %s}`, hotkey, specs)
	}
	return models.RawRecord{ID: id, Name: "miner-" + id, Config: []byte(config)}
}

func validatorRecord(id, allocated string) models.RawRecord {
	config := `{"role": "validator", "hotkey": "v` + id + `"}`
	if allocated != "" {
		config = `{"role": "validator", "hotkey": "v` + id + `", "allocated_hotkeys": ` + allocated + `}`
	}
	return models.RawRecord{ID: id, Name: "validator-" + id, Config: []byte(config)}
}

const (
	a100Specs = `{
		"gpu": {"capacity": 1024, "count": 1, "details": [{"name": "A100"}]},
		"cpu": {"count": 8},
		"ram": {"available": 8589934592},
		"hard_disk": {"free": 107374182400}
	}`
	twoA100Specs = `{
		"gpu": {"capacity": 81920, "count": 2, "details": [{"name": "NVIDIA A100"}, {"name": "NVIDIA A100"}]},
		"cpu": {"count": 32},
		"ram": {"available": 137438953472},
		"hard_disk": {"free": 1099511627776}
	}`
)
