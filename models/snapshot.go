package models

import "time"

// Snapshot is the outcome of one full refresh.
type Snapshot struct {
	ID        string          `json:"id"`
	TakenAt   time.Time       `json:"taken_at"`
	Rows      []NormalizedRow `json:"rows"`
	Instances []InstanceEntry `json:"instances"`
	Totals    []TotalEntry    `json:"totals"`
	Allocated []string        `json:"allocated"`
}

// GrandTotal returns the number of GPUs across all models.
func (s *Snapshot) GrandTotal() int64 {
	var sum int64
	for _, t := range s.Totals {
		sum += t.TotalCount
	}
	return sum
}
