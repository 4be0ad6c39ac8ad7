package widgets

import (
	"fmt"

	"savanna-cli/internal/model"
)

const (
	MinGuests         = 1
	MaxGuests         = 8
	DefaultGuests     = 2
	DefaultSafariRate = 85.0
)

// GuestStepper holds the guest count for a safari booking and its per-guest rate.
type GuestStepper struct {
	Count int
	Rate  float64
}

func NewGuestStepper(rate float64) *GuestStepper {
	if rate <= 0 {
		rate = DefaultSafariRate
	}
	return &GuestStepper{Count: DefaultGuests, Rate: rate}
}

// Adjust moves the count by delta, clamped to [MinGuests, MaxGuests].
// It reports whether the count changed.
func (g *GuestStepper) Adjust(delta int) bool {
	next := g.Count + delta
	if next < MinGuests {
		next = MinGuests
	}
	if next > MaxGuests {
		next = MaxGuests
	}
	if next == g.Count {
		return false
	}
	g.Count = next
	return true
}

func (g *GuestStepper) Subtotal() float64 {
	return g.Rate * float64(g.Count)
}

type GuestView struct {
	Count    int    `json:"count"`
	Subtotal string `json:"subtotal"`
	PaxLabel string `json:"paxLabel"`
}

func (g *GuestStepper) View() GuestView {
	return GuestView{
		Count:    g.Count,
		Subtotal: model.Money(g.Subtotal()),
		PaxLabel: fmt.Sprintf("/ %d pax", g.Count),
	}
}
