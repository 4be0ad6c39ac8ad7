package checkout

import (
	"fmt"
	"strings"
	"time"

	"savanna-cli/internal/model"
)

// Receipt is the record of a confirmed booking.
type Receipt struct {
	Ref         string                `json:"ref"`
	ConfirmedAt time.Time             `json:"confirmedAt"`
	Food        []model.FoodLineItem  `json:"food"`
	Safari      []model.SafariBooking `json:"safari"`
	Totals      model.CheckoutTotals  `json:"totals"`
}

func NewReceipt(ref string, at time.Time, c *model.Cart, p model.Pricing) Receipt {
	snap := c.Clone()
	return Receipt{
		Ref:         ref,
		ConfirmedAt: at.UTC(),
		Food:        snap.Food,
		Safari:      snap.Safari,
		Totals:      snap.Checkout(p),
	}
}

func (r Receipt) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Booking confirmed\n\nReference `%s`, %s\n\n", r.Ref, r.ConfirmedAt.Format("2 Jan 2006 15:04 MST"))
	for _, it := range r.Food {
		fmt.Fprintf(&b, "- %d × %s: %s\n", it.Quantity, it.Name, model.Money(it.LineTotal()))
	}
	for _, s := range r.Safari {
		fmt.Fprintf(&b, "- %s (%s, %d guests): %s\n", s.Name, s.Date, s.Guests, model.Money(s.Price))
	}
	fmt.Fprintf(&b, "\n**Total paid on arrival: %s**\n", model.Money(r.Totals.GrandTotal))
	return b.String()
}
