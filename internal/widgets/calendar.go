package widgets

import "time"

// DaysVisible is the width of the calendar window.
const DaysVisible = 7

var weekdayAbbrev = [...]string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}

type DayState int

const (
	DayDefault DayState = iota
	DayToday
	DaySelected
)

func (s DayState) String() string {
	switch s {
	case DaySelected:
		return "selected"
	case DayToday:
		return "today"
	default:
		return "default"
	}
}

func (s DayState) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

type DayCell struct {
	Date    time.Time `json:"date"`
	Weekday string    `json:"weekday"`
	Day     int       `json:"day"`
	State   DayState  `json:"state"`
}

// Calendar is a 7-day date picker window anchored at ViewDate.
// Selected is independent of the window and survives navigation.
type Calendar struct {
	ViewDate time.Time
	Selected time.Time
}

func NewCalendar(now time.Time) *Calendar {
	d := dateOnly(now)
	return &Calendar{ViewDate: d, Selected: d}
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Days renders the window. now decides which cell is "today".
func (c *Calendar) Days(now time.Time) []DayCell {
	out := make([]DayCell, 0, DaysVisible)
	d := dateOnly(c.ViewDate)
	for i := 0; i < DaysVisible; i++ {
		st := DayDefault
		switch {
		case sameDay(d, c.Selected):
			st = DaySelected
		case sameDay(d, now):
			st = DayToday
		}
		out = append(out, DayCell{
			Date:    d,
			Weekday: weekdayAbbrev[d.Weekday()],
			Day:     d.Day(),
			State:   st,
		})
		d = d.AddDate(0, 0, 1)
	}
	return out
}

func (c *Calendar) Select(d time.Time) {
	c.Selected = dateOnly(d)
}

// SelectIndex selects the i-th cell of the current window.
func (c *Calendar) SelectIndex(i int) bool {
	if i < 0 || i >= DaysVisible {
		return false
	}
	c.Select(dateOnly(c.ViewDate).AddDate(0, 0, i))
	return true
}

func (c *Calendar) Next() { c.ViewDate = dateOnly(c.ViewDate).AddDate(0, 0, DaysVisible) }
func (c *Calendar) Prev() { c.ViewDate = dateOnly(c.ViewDate).AddDate(0, 0, -DaysVisible) }

// Header is the month/year caption of the window anchor, e.g. "October 2026".
func (c *Calendar) Header() string {
	return c.ViewDate.Format("January 2006")
}

// SelectedLabel is the short display form stored on bookings, e.g. "Oct 24".
func (c *Calendar) SelectedLabel() string {
	return c.Selected.Format("Jan 2")
}

// SelectedIndex is the position of the selection within the window, or -1.
func (c *Calendar) SelectedIndex() int {
	d := dateOnly(c.ViewDate)
	for i := 0; i < DaysVisible; i++ {
		if sameDay(d, c.Selected) {
			return i
		}
		d = d.AddDate(0, 0, 1)
	}
	return -1
}
