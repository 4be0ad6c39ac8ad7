package widgets

import (
	"time"

	"savanna-cli/internal/sched"
)

// Menu columns that can be toggled on top of the default column.
const (
	ColumnItalian = "italian"
	ColumnAfrican = "african"
)

const (
	FulfilmentDelivery = "delivery"
	FulfilmentPickup   = "pickup"
)

// IdleReset is how long the menu may sit untouched before the optional
// columns collapse back to home.
const IdleReset = 2 * time.Minute

// Session is the transient, per-run UI state. Nothing in it is persisted.
type Session struct {
	Guests     *GuestStepper
	Calendar   *Calendar
	Columns    *ColumnSet
	Fulfilment *ToggleGroup
	Favorite   *Favorite
	Carousel   *Carousel
	Toast      *Toast
	Idle       *sched.Watchdog
}

type SessionOptions struct {
	SafariRate  float64
	Slides      int
	IdleTimeout time.Duration
	ToastTTL    time.Duration
}

func NewSession(s *sched.Scheduler, now time.Time, opts SessionOptions) *Session {
	slides := opts.Slides
	if slides <= 0 {
		slides = 3
	}
	idle := opts.IdleTimeout
	if idle <= 0 {
		idle = IdleReset
	}
	ss := &Session{
		Guests:     NewGuestStepper(opts.SafariRate),
		Calendar:   NewCalendar(now),
		Columns:    NewColumnSet(s, ColumnItalian, ColumnAfrican),
		Fulfilment: NewToggleGroup(FulfilmentDelivery, FulfilmentPickup),
		Favorite:   &Favorite{},
		Carousel:   &Carousel{Count: slides},
		Toast:      NewToast(s, opts.ToastTTL),
	}
	ss.Idle = sched.NewWatchdog(s, idle, func() {
		ss.Columns.Home()
		ss.Columns.changed()
	})
	return ss
}

// Activity records user input and restarts the idle watchdog.
func (ss *Session) Activity() {
	ss.Idle.Touch()
}
