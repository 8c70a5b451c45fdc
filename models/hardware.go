package models

// Placeholders used in NormalizedRow when a node's hardware could not be read.
const (
	NotAvailable       = "N/A"
	InvalidDetails     = "Invalid details"
	NoDetailsAvailable = "No details available"
)

// Allocation status of a node.
const (
	StatusReserved  = "Reserved"
	StatusAvailable = "Available"
)

// DetailState tags the outcome of hardware extraction for a row.
type DetailState string

const (
	DetailExtracted DetailState = "extracted"
	DetailInvalid   DetailState = "invalid"
	DetailMissing   DetailState = "missing"
)

// Hardware is the typed content of a miner's specs blob.
type Hardware struct {
	GPUName        string  `json:"gpu_name"`
	GPUCapacityMiB float64 `json:"gpu_capacity_mib"`
	GPUCount       int64   `json:"gpu_count"`
	CPUCount       int64   `json:"cpu_count"`
	RAMBytes       float64 `json:"ram_bytes"`
	DiskBytes      float64 `json:"disk_bytes"`
}

// NormalizedRow is one line of the hardware overview.
type NormalizedRow struct {
	Hotkey      string      `json:"hotkey"`
	NodeID      string      `json:"node_id"`
	GPUName     string      `json:"gpu_name"`
	GPUCapacity string      `json:"gpu_capacity_gib"`
	GPUCount    string      `json:"gpu_count"`
	CPUCount    string      `json:"cpu_count"`
	RAM         string      `json:"ram_gib"`
	Disk        string      `json:"disk_gib"`
	Status      string      `json:"status"`
	Detail      DetailState `json:"detail"`
	Hardware    *Hardware   `json:"hardware,omitempty"`
}

// HardwareHeaders are the column titles of the hardware overview table.
var HardwareHeaders = []string{
	"Hotkey", "GPU Name", "GPU Capacity (GiB)", "GPU Count",
	"CPU Count", "RAM (GiB)", "Disk Space (GiB)", "Status",
}

// Cells returns the row in HardwareHeaders column order.
func (r NormalizedRow) Cells() []string {
	return []string{
		r.NodeID, r.GPUName, r.GPUCapacity, r.GPUCount,
		r.CPUCount, r.RAM, r.Disk, r.Status,
	}
}
