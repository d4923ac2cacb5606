package executor

import (
	"sync"
	"time"
)

type systemClock struct{}

// SystemClock returns the wall clock.
func SystemClock() Clock { return systemClock{} }

func (systemClock) Now() time.Time { return time.Now() }

type timerAlarm struct {
	mu    sync.Mutex
	timer *time.Timer
}

// NewTimerAlarm returns an Alarm backed by time.AfterFunc.
func NewTimerAlarm() Alarm { return &timerAlarm{} }

func (a *timerAlarm) Schedule(d time.Duration, fn func()) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(d, fn)
}

func (a *timerAlarm) Cancel() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}
