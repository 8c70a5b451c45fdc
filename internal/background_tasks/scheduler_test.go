package background_tasks

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulerAddAndRemoveTask(t *testing.T) {
	scheduler := NewScheduler(10 * time.Millisecond)

	task := &Task{
		Name: "refresh",
		Function: func(context.Context) error {
			return nil
		},
		Triggers: []Trigger{&OneTimeTrigger{Delay: time.Second}},
	}

	addedTask := scheduler.AddTask(task)
	assert.Equal(t, 0, addedTask.ID, "Task ID should be set correctly")
	assert.True(t, addedTask.Enabled)

	scheduler.RemoveTask(0)
	assert.Equal(t, 0, len(scheduler.tasks), "Task should be removed from scheduler")
}

func TestSchedulerTaskExecution(t *testing.T) {
	scheduler := NewScheduler(5 * time.Millisecond)

	triggered := make(chan bool, 1)
	task := scheduler.AddTask(&Task{
		Name: "refresh",
		Function: func(context.Context) error {
			triggered <- true
			return nil
		},
		Triggers: []Trigger{&OneTimeTrigger{Delay: time.Millisecond}},
	})

	ctx, cancel := context.WithCancel(context.Background())
	scheduler.Start(ctx)

	select {
	case <-triggered:
	case <-time.After(2 * time.Second):
		t.Fatal("Task was not executed within the expected time")
	}

	cancel()
	scheduler.Wait()

	hist := scheduler.History(task.ID)
	require.Len(t, hist, 1)
	assert.Equal(t, StatusSuccess, hist[0].Status)
	assert.Equal(t, 1, hist[0].Attempts)
}

func TestSchedulerRetriesFailedTask(t *testing.T) {
	scheduler := NewScheduler(5 * time.Millisecond)

	var calls int32
	done := make(chan struct{})
	task := scheduler.AddTask(&Task{
		Name: "flaky",
		Function: func(context.Context) error {
			if atomic.AddInt32(&calls, 1) < 3 {
				return errors.New("service unavailable")
			}
			close(done)
			return nil
		},
		RetryPolicy: RetryPolicy{MaxRetries: 2, Delay: time.Millisecond},
		Triggers:    []Trigger{&OneTimeTrigger{}},
	})

	ctx, cancel := context.WithCancel(context.Background())
	scheduler.Start(ctx)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Task did not succeed after retries")
	}
	cancel()
	scheduler.Wait()

	hist := scheduler.History(task.ID)
	require.Len(t, hist, 1)
	assert.Equal(t, StatusSuccess, hist[0].Status)
	assert.Equal(t, 3, hist[0].Attempts)
}

func TestSchedulerEventTrigger(t *testing.T) {
	scheduler := NewScheduler(5 * time.Millisecond)

	var calls int32
	event := NewEventTrigger()
	scheduler.AddTask(&Task{
		Name: "manual",
		Function: func(context.Context) error {
			atomic.AddInt32(&calls, 1)
			return nil
		},
		Triggers: []Trigger{event},
	})

	ctx, cancel := context.WithCancel(context.Background())
	scheduler.Start(ctx)
	defer func() {
		cancel()
		scheduler.Wait()
	}()

	time.Sleep(30 * time.Millisecond)
	assert.EqualValues(t, 0, atomic.LoadInt32(&calls))

	event.Fire()
	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&calls) == 1
	}, time.Second, 5*time.Millisecond)
}
