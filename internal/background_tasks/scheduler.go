package background_tasks

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Scheduler runs tasks when one of their triggers is ready. A task never
// overlaps with itself.
type Scheduler struct {
	tasks        map[int]*Task
	runningTasks map[int]bool
	tick         time.Duration
	lastTaskID   int
	wg           sync.WaitGroup
	mu           sync.Mutex
}

// NewScheduler creates a scheduler that checks triggers every tick.
func NewScheduler(tick time.Duration) *Scheduler {
	if tick <= 0 {
		tick = time.Second
	}
	return &Scheduler{
		tasks:        make(map[int]*Task),
		runningTasks: make(map[int]bool),
		tick:         tick,
	}
}

// AddTask registers a task and arms its triggers.
func (s *Scheduler) AddTask(task *Task) *Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	task.ID = s.lastTaskID
	task.Enabled = true

	for _, trigger := range task.Triggers {
		trigger.Reset()
	}

	s.tasks[task.ID] = task
	s.lastTaskID++

	return task
}

// RemoveTask removes a task from the scheduler.
func (s *Scheduler) RemoveTask(taskID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tasks, taskID)
}

// History returns a copy of the task's recent executions.
func (s *Scheduler) History(taskID int) []Execution {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[taskID]
	if !ok {
		return nil
	}
	out := make([]Execution, len(task.ExecutionHist))
	copy(out, task.ExecutionHist)
	return out
}

// Start checks triggers until ctx is done, then waits for running tasks.
func (s *Scheduler) Start(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.tick)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.runTasks(ctx)
			}
		}
	}()
}

// Wait blocks until the loop started by Start and its tasks have returned.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

func (s *Scheduler) runTasks(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, task := range s.tasks {
		if !task.Enabled || s.runningTasks[id] {
			continue
		}

		for _, trigger := range task.Triggers {
			if trigger.IsReady() {
				s.runningTasks[id] = true
				trigger.Reset()
				s.wg.Add(1)
				go s.runTask(ctx, task)
				break
			}
		}
	}
}

// runTask executes a task, retrying per its policy, and records the outcome.
func (s *Scheduler) runTask(ctx context.Context, task *Task) {
	defer s.wg.Done()

	execution := Execution{StartedAt: time.Now()}
	for attempt := 0; attempt <= task.RetryPolicy.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				attempt = task.RetryPolicy.MaxRetries + 1
				continue
			case <-time.After(task.RetryPolicy.Delay):
			}
		}

		execution.Attempts++
		err := task.Function(ctx)
		if err == nil {
			execution.Status = StatusSuccess
			execution.Error = ""
			break
		}
		execution.Status = StatusFailed
		execution.Error = err.Error()
		zlog.Warn("task failed",
			zap.String("task", task.Name),
			zap.Int("attempt", execution.Attempts),
			zap.Error(err))
	}
	execution.EndedAt = time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	task.record(execution)
	s.runningTasks[task.ID] = false
}
