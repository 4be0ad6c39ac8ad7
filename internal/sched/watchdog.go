package sched

import "time"

const kindIdle Kind = "watchdog.idle"

// Watchdog calls OnIdle after Idle elapses with no Touch.
type Watchdog struct {
	idle   time.Duration
	onIdle func()
	s      *Scheduler
}

func NewWatchdog(s *Scheduler, idle time.Duration, onIdle func()) *Watchdog {
	if idle <= 0 {
		idle = 2 * time.Minute
	}
	return &Watchdog{idle: idle, onIdle: onIdle, s: s}
}

// Touch restarts the idle countdown.
func (w *Watchdog) Touch() {
	if w == nil {
		return
	}
	w.s.Schedule(kindIdle, w.idle, w.onIdle)
}

func (w *Watchdog) Stop() {
	if w == nil {
		return
	}
	w.s.Cancel(kindIdle)
}

func (w *Watchdog) Armed() bool {
	if w == nil {
		return false
	}
	return w.s.Pending(kindIdle)
}
