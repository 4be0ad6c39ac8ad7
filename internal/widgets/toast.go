package widgets

import (
	"time"

	"savanna-cli/internal/sched"
)

const (
	ToastTTL  = 3 * time.Second
	kindToast = sched.Kind("toast.hide")
)

// Toast is a transient notification line.
type Toast struct {
	Message string
	Visible bool

	ttl      time.Duration
	s        *sched.Scheduler
	onChange func()
}

func NewToast(s *sched.Scheduler, ttl time.Duration) *Toast {
	if ttl <= 0 {
		ttl = ToastTTL
	}
	return &Toast{ttl: ttl, s: s}
}

func (t *Toast) OnChange(fn func()) { t.onChange = fn }

// Notify shows msg and restarts the hide countdown; a previously pending
// hide is cancelled so it cannot cut the new message short.
func (t *Toast) Notify(msg string) {
	t.Message = msg
	t.Visible = true
	t.s.Schedule(kindToast, t.ttl, func() {
		t.Visible = false
		if t.onChange != nil {
			t.onChange()
		}
	})
}
