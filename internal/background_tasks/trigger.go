package background_tasks

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Trigger interface defines a method to check if a trigger condition is met.
type Trigger interface {
	IsReady() bool // Returns true if the trigger condition is met.
	Reset()        // Resets the trigger state.
}

// PeriodicTrigger fires on a cron expression when one is set, otherwise
// every Interval.
type PeriodicTrigger struct {
	Interval      time.Duration
	CronExpr      string
	schedule      cron.Schedule
	lastTriggered time.Time
}

// NewCronTrigger parses expr up front so a bad expression fails at startup
// rather than on every tick.
func NewCronTrigger(expr string) (*PeriodicTrigger, error) {
	schedule, err := cron.ParseStandard(expr)
	if err != nil {
		return nil, err
	}
	return &PeriodicTrigger{CronExpr: expr, schedule: schedule}, nil
}

func (t *PeriodicTrigger) IsReady() bool {
	now := time.Now()

	if t.CronExpr != "" {
		if t.schedule == nil {
			schedule, err := cron.ParseStandard(t.CronExpr)
			if err != nil {
				zlog.Error("error parsing cron expression", zap.String("expr", t.CronExpr), zap.Error(err))
				return false
			}
			t.schedule = schedule
		}
		return !t.schedule.Next(t.lastTriggered).After(now)
	}

	return t.Interval > 0 && !t.lastTriggered.Add(t.Interval).After(now)
}

func (t *PeriodicTrigger) Reset() {
	t.lastTriggered = time.Now()
}

// EventTrigger fires when something is sent on its channel.
type EventTrigger struct {
	Trigger chan bool
}

func NewEventTrigger() *EventTrigger {
	return &EventTrigger{Trigger: make(chan bool, 1)}
}

// Fire requests a run without blocking; a pending request absorbs repeats.
func (t *EventTrigger) Fire() {
	select {
	case t.Trigger <- true:
	default:
	}
}

func (t *EventTrigger) IsReady() bool {
	select {
	case <-t.Trigger:
		return true
	default:
		return false
	}
}

// Reset for EventTrigger does nothing as its state is managed externally.
func (t *EventTrigger) Reset() {}

// OneTimeTrigger fires once, Delay after the task is added.
type OneTimeTrigger struct {
	Delay        time.Duration
	registeredAt time.Time
	fired        bool
}

func (t *OneTimeTrigger) IsReady() bool {
	return !t.fired && !t.registeredAt.IsZero() && !t.registeredAt.Add(t.Delay).After(time.Now())
}

// Reset arms the trigger the first time and disarms it after it fired.
func (t *OneTimeTrigger) Reset() {
	if t.registeredAt.IsZero() {
		t.registeredAt = time.Now()
		return
	}
	t.fired = true
}
