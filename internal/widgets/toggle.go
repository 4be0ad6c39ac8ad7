package widgets

// ToggleGroup is a radio group: exactly one option is active.
type ToggleGroup struct {
	Options []string
	Active  int
}

func NewToggleGroup(options ...string) *ToggleGroup {
	return &ToggleGroup{Options: append([]string(nil), options...)}
}

func (g *ToggleGroup) Select(i int) bool {
	if i < 0 || i >= len(g.Options) {
		return false
	}
	g.Active = i
	return true
}

// SelectName selects by option label.
func (g *ToggleGroup) SelectName(name string) bool {
	for i, o := range g.Options {
		if o == name {
			g.Active = i
			return true
		}
	}
	return false
}

func (g *ToggleGroup) Next() {
	if len(g.Options) == 0 {
		return
	}
	g.Active = (g.Active + 1) % len(g.Options)
}

func (g *ToggleGroup) Current() string {
	if g.Active < 0 || g.Active >= len(g.Options) {
		return ""
	}
	return g.Options[g.Active]
}

func (g *ToggleGroup) IsActive(i int) bool { return i == g.Active }

// Favorite is an on/off flag with a matching notification.
type Favorite struct {
	On bool
}

func (f *Favorite) Toggle() string {
	f.On = !f.On
	if f.On {
		return "Added to favorites!"
	}
	return "Removed from favorites"
}
