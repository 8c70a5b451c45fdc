package background_tasks

import (
	"context"
	"time"
)

const (
	StatusSuccess = "SUCCESS"
	StatusFailed  = "FAILED"

	maxExecutionHist = 20
)

// RetryPolicy defines the policy for retrying tasks on failure.
type RetryPolicy struct {
	MaxRetries int           // Maximum number of retries.
	Delay      time.Duration // Delay between retries.
}

// Execution records one run of a task, retries included.
type Execution struct {
	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`
	Status    string    `json:"status"`
	Attempts  int       `json:"attempts"`
	Error     string    `json:"error,omitempty"`
}

// Task represents a schedulable task.
type Task struct {
	ID            int
	Name          string
	Triggers      []Trigger
	Function      func(ctx context.Context) error
	RetryPolicy   RetryPolicy
	Enabled       bool
	ExecutionHist []Execution // most recent last, bounded
}

func (t *Task) record(e Execution) {
	t.ExecutionHist = append(t.ExecutionHist, e)
	if n := len(t.ExecutionHist); n > maxExecutionHist {
		t.ExecutionHist = t.ExecutionHist[n-maxExecutionHist:]
	}
}
