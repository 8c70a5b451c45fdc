package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gitlab.com/nunet/opencompute-monitor/inventory"
	"gitlab.com/nunet/opencompute-monitor/models"
)

func Test_DashboardCmdOrder(t *testing.T) {
	assert := assert.New(t)

	snapshot := mockSnapshot()
	mockInv := &MockInventory{}
	mockInv.On("Refresh", mock.Anything).Return(snapshot, nil)

	buf := new(bytes.Buffer)
	cmd := NewDashboardCmd(mockInv)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	assert.NoError(err)

	out := buf.String()
	overview := strings.Index(out, "Hardware Overview")
	instances := strings.Index(out, "Instances Summary")
	totals := strings.Index(out, "Total GPU Counts")

	assert.Equal(0, overview)
	assert.Greater(instances, overview)
	assert.Greater(totals, instances)
	mockInv.AssertNumberOfCalls(t, "Refresh", 1)
}

func Test_DashboardSkipsEmptySummaries(t *testing.T) {
	assert := assert.New(t)

	specs := &models.MinerSpecs{}
	specs.Set("5HGjWAeFDfFCWPsjFQdVV2Msvz2XtMktvgocEZcCj68kUMaw", []byte(`{"gpu":{}}`))
	snapshot := inventory.Build(specs, inventory.NewAllocatedSet(nil))

	buf := new(bytes.Buffer)
	renderDashboard(buf, snapshot)

	assert.Contains(buf.String(), "Hardware Overview")
	assert.Contains(buf.String(), models.InvalidDetails)
	assert.NotContains(buf.String(), "Instances Summary")
	assert.NotContains(buf.String(), "Total GPU Counts")
}
