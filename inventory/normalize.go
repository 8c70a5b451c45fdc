package inventory

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/buger/jsonparser"

	"gitlab.com/nunet/opencompute-monitor/models"
)

const (
	mebibytesPerGiB = 1024.0
	bytesPerGiB     = 1024.0 * 1024.0 * 1024.0

	nodeIDLength = 6

	nullGPUName = "none"
)

var errEmptyDetails = errors.New("gpu details list is empty")

// Normalize builds the overview row for one miner. Extraction is all or
// nothing: a specs blob with any unreadable field yields an "Invalid details"
// row with no numbers. Status is left empty for Classify.
func Normalize(hotkey string, specs []byte) models.NormalizedRow {
	if specs == nil {
		return placeholderRow(hotkey, models.DetailMissing, models.NoDetailsAvailable)
	}

	hw, err := ExtractHardware(specs)
	if err != nil {
		return placeholderRow(hotkey, models.DetailInvalid, models.InvalidDetails)
	}

	return models.NormalizedRow{
		Hotkey:      hotkey,
		NodeID:      ShortNodeID(hotkey),
		GPUName:     hw.GPUName,
		GPUCapacity: formatGiB(hw.GPUCapacityMiB / mebibytesPerGiB),
		GPUCount:    strconv.FormatInt(hw.GPUCount, 10),
		CPUCount:    strconv.FormatInt(hw.CPUCount, 10),
		RAM:         formatGiB(hw.RAMBytes / bytesPerGiB),
		Disk:        formatGiB(hw.DiskBytes / bytesPerGiB),
		Detail:      models.DetailExtracted,
		Hardware:    &hw,
	}
}

// NormalizeAll normalizes every miner in first-seen order.
func NormalizeAll(specs *models.MinerSpecs) []models.NormalizedRow {
	rows := make([]models.NormalizedRow, 0, specs.Len())
	for _, entry := range specs.Entries() {
		rows = append(rows, Normalize(entry.Hotkey, entry.Specs))
	}
	return rows
}

// ExtractHardware reads the typed hardware fields out of a specs blob.
func ExtractHardware(specs []byte) (models.Hardware, error) {
	var (
		hw  models.Hardware
		err error
	)

	if hw.GPUCapacityMiB, err = getFloat(specs, "gpu", "capacity"); err != nil {
		return models.Hardware{}, err
	}
	if hw.GPUName, err = gpuName(specs); err != nil {
		return models.Hardware{}, err
	}
	if hw.GPUCount, err = getInt(specs, "gpu", "count"); err != nil {
		return models.Hardware{}, err
	}
	if hw.CPUCount, err = getInt(specs, "cpu", "count"); err != nil {
		return models.Hardware{}, err
	}
	if hw.RAMBytes, err = getFloat(specs, "ram", "available"); err != nil {
		return models.Hardware{}, err
	}
	if hw.DiskBytes, err = getFloat(specs, "hard_disk", "free"); err != nil {
		return models.Hardware{}, err
	}

	return hw, nil
}

// gpuName reads the name of the first GPU in gpu.details, lower-cased.
// Non-string names are rendered from their JSON text, null as "none".
func gpuName(specs []byte) (string, error) {
	details, dataType, _, err := jsonparser.Get(specs, "gpu", "details")
	if err != nil {
		return "", &SpecExtractionError{Path: []string{"gpu", "details"}, Err: err}
	}
	if dataType != jsonparser.Array {
		return "", &SpecExtractionError{Path: []string{"gpu", "details"}, Err: fmt.Errorf("expected array, got %s", dataType)}
	}

	first, firstType, _, err := jsonparser.Get(details, "[0]")
	if err != nil {
		return "", &SpecExtractionError{Path: []string{"gpu", "details", "[0]"}, Err: errEmptyDetails}
	}
	if firstType != jsonparser.Object {
		return "", &SpecExtractionError{Path: []string{"gpu", "details", "[0]"}, Err: fmt.Errorf("expected object, got %s", firstType)}
	}

	path := []string{"gpu", "details", "[0]", "name"}
	value, valueType, _, err := jsonparser.Get(first, "name")
	if err != nil {
		return "", &SpecExtractionError{Path: path, Err: err}
	}

	name := string(value)
	if valueType == jsonparser.Null {
		name = nullGPUName
	}
	if valueType == jsonparser.String {
		if name, err = jsonparser.ParseString(value); err != nil {
			return "", &SpecExtractionError{Path: path, Err: err}
		}
	}
	return strings.ToLower(name), nil
}

func getFloat(specs []byte, keys ...string) (float64, error) {
	v, err := jsonparser.GetFloat(specs, keys...)
	if err != nil {
		return 0, &SpecExtractionError{Path: keys, Err: err}
	}
	return v, nil
}

// getInt only accepts JSON integers; 2.0 or "2" are rejected. Like every
// lookup here, the first of duplicated keys wins.
func getInt(specs []byte, keys ...string) (int64, error) {
	v, err := jsonparser.GetInt(specs, keys...)
	if err != nil {
		return 0, &SpecExtractionError{Path: keys, Err: err}
	}
	return v, nil
}

func placeholderRow(hotkey string, detail models.DetailState, gpuName string) models.NormalizedRow {
	return models.NormalizedRow{
		Hotkey:      hotkey,
		NodeID:      ShortNodeID(hotkey),
		GPUName:     gpuName,
		GPUCapacity: models.NotAvailable,
		GPUCount:    models.NotAvailable,
		CPUCount:    models.NotAvailable,
		RAM:         models.NotAvailable,
		Disk:        models.NotAvailable,
		Detail:      detail,
	}
}

// ShortNodeID is the display form of a hotkey: its first six characters
// followed by "...".
func ShortNodeID(hotkey string) string {
	runes := []rune(hotkey)
	if len(runes) > nodeIDLength {
		runes = runes[:nodeIDLength]
	}
	return string(runes) + "..."
}

func formatGiB(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
