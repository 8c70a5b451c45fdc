package models

import "strconv"

// InstanceEntry counts nodes sharing the same GPU model and GPU count.
type InstanceEntry struct {
	GPUName   string `json:"gpu_name"`
	GPUCount  int64  `json:"gpu_count"`
	Instances int    `json:"instances"`
}

// TotalEntry sums the GPUs of one model across all nodes.
type TotalEntry struct {
	GPUName    string `json:"gpu_name"`
	TotalCount int64  `json:"total_count"`
}

var (
	InstanceHeaders = []string{"GPU Name", "GPU Count", "Instances Count"}
	TotalHeaders    = []string{"GPU Name", "Total GPU Count"}
)

func (e InstanceEntry) Cells() []string {
	return []string{e.GPUName, strconv.FormatInt(e.GPUCount, 10), strconv.Itoa(e.Instances)}
}

func (e TotalEntry) Cells() []string {
	return []string{e.GPUName, strconv.FormatInt(e.TotalCount, 10)}
}
