package widgets

import (
	"time"

	"savanna-cli/internal/sched"
)

// Fade timings for optional menu columns.
const (
	FadeInDelay  = 10 * time.Millisecond
	FadeDuration = 300 * time.Millisecond
)

// Visibility is the per-column state:
//
//	Hidden -> FadingIn -> Visible -> FadingOut -> Hidden
//
// FadingIn means laid out but still transparent; FadingOut means transparent
// but still laid out.
type Visibility int

const (
	Hidden Visibility = iota
	FadingIn
	Visible
	FadingOut
)

func (v Visibility) String() string {
	switch v {
	case FadingIn:
		return "fading-in"
	case Visible:
		return "visible"
	case FadingOut:
		return "fading-out"
	default:
		return "hidden"
	}
}

func (v Visibility) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// Shown reports whether the column is on its way in or fully in.
func (v Visibility) Shown() bool { return v == FadingIn || v == Visible }

// InLayout reports whether the column takes space.
func (v Visibility) InLayout() bool { return v != Hidden }

// ColumnSet tracks optional menu columns and the "home" chip.
type ColumnSet struct {
	ids   []string
	state map[string]Visibility
	home  bool

	s        *sched.Scheduler
	onChange func()
}

func NewColumnSet(s *sched.Scheduler, ids ...string) *ColumnSet {
	cs := &ColumnSet{
		ids:   append([]string(nil), ids...),
		state: map[string]Visibility{},
		home:  true,
		s:     s,
	}
	for _, id := range ids {
		cs.state[id] = Hidden
	}
	return cs
}

// OnChange is called after a deferred fade step lands.
func (cs *ColumnSet) OnChange(fn func()) { cs.onChange = fn }

func (cs *ColumnSet) IDs() []string { return append([]string(nil), cs.ids...) }

func (cs *ColumnSet) State(id string) Visibility { return cs.state[id] }

func (cs *ColumnSet) HomeActive() bool { return cs.home }

// ChipActive is the selector state for a column chip.
func (cs *ColumnSet) ChipActive(id string) bool { return cs.state[id].Shown() }

func fadeKind(id string) sched.Kind { return sched.Kind("fade:" + id) }

func (cs *ColumnSet) known(id string) bool {
	_, ok := cs.state[id]
	return ok
}

// Toggle shows a column that is hidden (or on its way out) and hides one
// that is shown. Showing a column deactivates the home chip.
func (cs *ColumnSet) Toggle(id string) {
	if !cs.known(id) {
		return
	}
	if cs.state[id].Shown() {
		cs.Hide(id)
		return
	}
	cs.Show(id)
	cs.home = false
}

func (cs *ColumnSet) Show(id string) {
	if !cs.known(id) || cs.state[id].Shown() {
		return
	}
	cs.state[id] = FadingIn
	cs.s.Schedule(fadeKind(id), FadeInDelay, func() {
		if cs.state[id] == FadingIn {
			cs.state[id] = Visible
			cs.changed()
		}
	})
}

func (cs *ColumnSet) Hide(id string) {
	if !cs.known(id) {
		return
	}
	switch cs.state[id] {
	case Hidden, FadingOut:
		return
	}
	cs.state[id] = FadingOut
	cs.s.Schedule(fadeKind(id), FadeDuration, func() {
		if cs.state[id] == FadingOut {
			cs.state[id] = Hidden
			cs.changed()
		}
	})
}

// Home hides every optional column and activates the home chip.
func (cs *ColumnSet) Home() {
	cs.home = true
	for _, id := range cs.ids {
		cs.Hide(id)
	}
}

func (cs *ColumnSet) changed() {
	if cs.onChange != nil {
		cs.onChange()
	}
}

type ColumnView struct {
	ID         string     `json:"id"`
	Visibility Visibility `json:"visibility"`
	ChipActive bool       `json:"chipActive"`
}

func (cs *ColumnSet) View() []ColumnView {
	out := make([]ColumnView, 0, len(cs.ids))
	for _, id := range cs.ids {
		out = append(out, ColumnView{ID: id, Visibility: cs.state[id], ChipActive: cs.ChipActive(id)})
	}
	return out
}
