package inventory

import "gitlab.com/nunet/opencompute-monitor/models"

type instanceKey struct {
	name  string
	count int64
}

// Aggregate folds the rows with extracted hardware into the instance summary,
// keyed by (GPU name, GPU count), and the total summary, keyed by GPU name.
// Both keep first-seen key order.
func Aggregate(rows []models.NormalizedRow) ([]models.InstanceEntry, []models.TotalEntry) {
	instances := []models.InstanceEntry{}
	totals := []models.TotalEntry{}
	instanceIdx := make(map[instanceKey]int)
	totalIdx := make(map[string]int)

	for _, row := range rows {
		if row.Detail != models.DetailExtracted || row.Hardware == nil {
			continue
		}
		hw := row.Hardware

		key := instanceKey{name: hw.GPUName, count: hw.GPUCount}
		if i, ok := instanceIdx[key]; ok {
			instances[i].Instances++
		} else {
			instanceIdx[key] = len(instances)
			instances = append(instances, models.InstanceEntry{GPUName: hw.GPUName, GPUCount: hw.GPUCount, Instances: 1})
		}

		if i, ok := totalIdx[hw.GPUName]; ok {
			totals[i].TotalCount += hw.GPUCount
		} else {
			totalIdx[hw.GPUName] = len(totals)
			totals = append(totals, models.TotalEntry{GPUName: hw.GPUName, TotalCount: hw.GPUCount})
		}
	}

	return instances, totals
}
