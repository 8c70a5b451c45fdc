package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/nunet/opencompute-monitor/models"
)

func TestNormalizeExtracted(t *testing.T) {
	row := Normalize("5FHneW46xGXgs5mUiveU4sbTyGBzmstUspZC92UhjJM694ty", []byte(a100Specs))

	assert.Equal(t, models.DetailExtracted, row.Detail)
	assert.Equal(t, "5FHneW...", row.NodeID)
	assert.Equal(t, []string{"5FHneW...", "a100", "1.00", "1", "8", "8.00", "100.00", ""}, row.Cells())
	require.NotNil(t, row.Hardware)
	assert.Equal(t, models.Hardware{
		GPUName:        "a100",
		GPUCapacityMiB: 1024,
		GPUCount:       1,
		CPUCount:       8,
		RAMBytes:       8 * bytesPerGiB,
		DiskBytes:      100 * bytesPerGiB,
	}, *row.Hardware)
}

func TestNormalizeMissingSpecs(t *testing.T) {
	row := Normalize("n2", nil)

	assert.Equal(t, models.DetailMissing, row.Detail)
	assert.Nil(t, row.Hardware)
	assert.Equal(t, []string{"n2...", "No details available", "N/A", "N/A", "N/A", "N/A", "N/A", ""}, row.Cells())
}

func TestNormalizeInvalidSpecs(t *testing.T) {
	invalid := map[string]string{
		"missing gpu":         `{"cpu": {"count": 8}, "ram": {"available": 1}, "hard_disk": {"free": 1}}`,
		"missing cpu":         `{"gpu": {"capacity": 1024, "count": 1, "details": [{"name": "A100"}]}, "ram": {"available": 1}, "hard_disk": {"free": 1}}`,
		"missing ram":         `{"gpu": {"capacity": 1024, "count": 1, "details": [{"name": "A100"}]}, "cpu": {"count": 8}, "hard_disk": {"free": 1}}`,
		"missing hard_disk":   `{"gpu": {"capacity": 1024, "count": 1, "details": [{"name": "A100"}]}, "cpu": {"count": 8}, "ram": {"available": 1}}`,
		"empty details":       `{"gpu": {"capacity": 1024, "count": 1, "details": []}, "cpu": {"count": 8}, "ram": {"available": 1}, "hard_disk": {"free": 1}}`,
		"details not list":    `{"gpu": {"capacity": 1024, "count": 1, "details": {"name": "A100"}}, "cpu": {"count": 8}, "ram": {"available": 1}, "hard_disk": {"free": 1}}`,
		"detail without name": `{"gpu": {"capacity": 1024, "count": 1, "details": [{"memory": 80}]}, "cpu": {"count": 8}, "ram": {"available": 1}, "hard_disk": {"free": 1}}`,
		"capacity string":     `{"gpu": {"capacity": "1024", "count": 1, "details": [{"name": "A100"}]}, "cpu": {"count": 8}, "ram": {"available": 1}, "hard_disk": {"free": 1}}`,
		"count not integer":   `{"gpu": {"capacity": 1024, "count": 1.5, "details": [{"name": "A100"}]}, "cpu": {"count": 8}, "ram": {"available": 1}, "hard_disk": {"free": 1}}`,
		"cpu wrong type":      `{"gpu": {"capacity": 1024, "count": 1, "details": [{"name": "A100"}]}, "cpu": [8], "ram": {"available": 1}, "hard_disk": {"free": 1}}`,
		"specs not object":    `"unknown"`,
		"specs empty":         `{}`,
	}

	for name, specs := range invalid {
		t.Run(name, func(t *testing.T) {
			row := Normalize("5Fabcdefgh", []byte(specs))

			assert.Equal(t, models.DetailInvalid, row.Detail)
			assert.Nil(t, row.Hardware)
			assert.Equal(t, []string{"5Fabcd...", "Invalid details", "N/A", "N/A", "N/A", "N/A", "N/A", ""}, row.Cells())
		})
	}
}

func TestExtractHardwareReportsPath(t *testing.T) {
	_, err := ExtractHardware([]byte(`{"gpu": {"capacity": 1024, "count": 1, "details": [{"name": "A100"}]}, "ram": {"available": 1}, "hard_disk": {"free": 1}}`))

	var extractErr *SpecExtractionError
	require.ErrorAs(t, err, &extractErr)
	assert.Equal(t, []string{"cpu", "count"}, extractErr.Path)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	specs := []byte(twoA100Specs)
	assert.Equal(t, Normalize("hotkey", specs), Normalize("hotkey", specs))
}

func TestNormalizeUnitConversion(t *testing.T) {
	specs := []byte(`{
		"gpu": {"capacity": 2048, "count": 1, "details": [{"name": "RTX 4090"}]},
		"cpu": {"count": 4},
		"ram": {"available": 3221225472},
		"hard_disk": {"free": 1610612736}
	}`)

	row := Normalize("hk", specs)
	assert.Equal(t, "2.00", row.GPUCapacity)
	assert.Equal(t, "3.00", row.RAM)
	assert.Equal(t, "1.50", row.Disk)
	assert.Equal(t, "rtx 4090", row.GPUName)
}

func TestNormalizeNonStringGPUName(t *testing.T) {
	specs := []byte(`{"gpu": {"capacity": 1024, "count": 1, "details": [{"name": 4090}]}, "cpu": {"count": 1}, "ram": {"available": 0}, "hard_disk": {"free": 0}}`)

	row := Normalize("hk", specs)
	assert.Equal(t, models.DetailExtracted, row.Detail)
	assert.Equal(t, "4090", row.GPUName)
}

func TestNormalizeNullGPUName(t *testing.T) {
	specs := []byte(`{"gpu": {"capacity": 1024, "count": 1, "details": [{"name": null}]}, "cpu": {"count": 1}, "ram": {"available": 0}, "hard_disk": {"free": 0}}`)

	row := Normalize("hk", specs)
	assert.Equal(t, models.DetailExtracted, row.Detail)
	assert.Equal(t, "none", row.GPUName)
}

func TestNormalizeDuplicateKeysFirstWins(t *testing.T) {
	specs := []byte(`{"gpu": {"capacity": 1024, "count": 1, "count": 4, "details": [{"name": "A100"}]}, "cpu": {"count": 8}, "ram": {"available": 0}, "hard_disk": {"free": 0}}`)

	row := Normalize("hk", specs)
	assert.Equal(t, models.DetailExtracted, row.Detail)
	assert.Equal(t, "1", row.GPUCount)
}

func TestShortNodeID(t *testing.T) {
	assert.Equal(t, "5FHneW...", ShortNodeID("5FHneW46xGXgs5mUiveU4sbTyGBzmstUspZC92UhjJM694ty"))
	assert.Equal(t, "abc...", ShortNodeID("abc"))
	assert.Equal(t, "...", ShortNodeID(""))
}

func TestNormalizeAllKeepsOrder(t *testing.T) {
	specs := &models.MinerSpecs{}
	specs.Set("first", []byte(a100Specs))
	specs.Set("second", nil)
	specs.Set("third", []byte(`{}`))

	rows := NormalizeAll(specs)
	require.Len(t, rows, 3)
	assert.Equal(t, "first", rows[0].Hotkey)
	assert.Equal(t, models.DetailMissing, rows[1].Detail)
	assert.Equal(t, models.DetailInvalid, rows[2].Detail)
}
