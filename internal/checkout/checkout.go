// Package checkout turns a cart into the checkout page view model.
package checkout

import (
	"fmt"
	"strings"

	"savanna-cli/internal/model"
)

// Pages a placeholder can link to.
const (
	PageMenu   = "menu"
	PageSafari = "safari"
)

type FoodRow struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	QtyLabel  string `json:"qtyLabel"`
	LinePrice string `json:"linePrice"`
}

type SafariRow struct {
	Name        string `json:"name"`
	Guests      int    `json:"guests"`
	Date        string `json:"date"`
	Detail      string `json:"detail"`
	GuestsLabel string `json:"guestsLabel"`
	Price       string `json:"price"`
}

// Placeholder stands in for an empty list.
type Placeholder struct {
	Message string `json:"message"`
	CTA     string `json:"cta"`
	Link    string `json:"link"`
}

type Totals struct {
	Subtotal    string `json:"subtotal"`
	Taxes       string `json:"taxes"`
	DeliveryFee string `json:"deliveryFee"`
	Total       string `json:"total"`
}

type View struct {
	Food        []FoodRow    `json:"food"`
	FoodEmpty   *Placeholder `json:"foodEmpty,omitempty"`
	Safari      []SafariRow  `json:"safari"`
	SafariEmpty *Placeholder `json:"safariEmpty,omitempty"`
	Totals      Totals       `json:"totals"`
}

// Badge is the header summary shown on every page.
type Badge struct {
	Count int    `json:"count"`
	Total string `json:"total"`
}

func BuildBadge(c *model.Cart) Badge {
	return Badge{Count: c.TotalItemCount(), Total: model.Money(c.Total())}
}

// Build is pure: the same cart and pricing always yield the same view.
func Build(c *model.Cart, p model.Pricing) View {
	if c == nil {
		c = model.NewCart()
	}
	v := View{Food: []FoodRow{}, Safari: []SafariRow{}}

	for _, it := range c.Food {
		v.Food = append(v.Food, FoodRow{
			Name:      it.Name,
			Quantity:  it.Quantity,
			QtyLabel:  fmt.Sprintf("QTY: %d", it.Quantity),
			LinePrice: model.Money(it.LineTotal()),
		})
	}
	if len(v.Food) == 0 {
		v.FoodEmpty = &Placeholder{Message: "No food items in cart", CTA: "Browse Menu", Link: PageMenu}
	}

	for _, b := range c.Safari {
		v.Safari = append(v.Safari, SafariRow{
			Name:        b.Name,
			Guests:      b.Guests,
			Date:        b.Date,
			Detail:      "Full day booking • " + b.Date,
			GuestsLabel: fmt.Sprintf("%d Guests", b.Guests),
			Price:       model.Money(b.Price),
		})
	}
	if len(v.Safari) == 0 {
		v.SafariEmpty = &Placeholder{Message: "No safari bookings", CTA: "Browse Safaris", Link: PageSafari}
	}

	t := c.Checkout(p)
	v.Totals = Totals{
		Subtotal:    model.Money(t.Subtotal),
		Taxes:       model.Money(t.Taxes),
		DeliveryFee: model.Money(t.DeliveryFee),
		Total:       model.Money(t.GrandTotal),
	}
	return v
}

// Markdown renders the view as a markdown document (rendered by glamour in the TUI).
func Markdown(v View) string {
	var b strings.Builder
	b.WriteString("# Checkout\n\n## Food\n\n")
	if v.FoodEmpty != nil {
		fmt.Fprintf(&b, "_%s_: %s\n\n", v.FoodEmpty.Message, v.FoodEmpty.CTA)
	} else {
		b.WriteString("| Item | Qty | Price |\n|---|---:|---:|\n")
		for _, r := range v.Food {
			fmt.Fprintf(&b, "| %s | %d | %s |\n", escapeCell(r.Name), r.Quantity, r.LinePrice)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Safari\n\n")
	if v.SafariEmpty != nil {
		fmt.Fprintf(&b, "_%s_: %s\n\n", v.SafariEmpty.Message, v.SafariEmpty.CTA)
	} else {
		b.WriteString("| Booking | Date | Guests | Price |\n|---|---|---:|---:|\n")
		for _, r := range v.Safari {
			fmt.Fprintf(&b, "| %s | %s | %d | %s |\n", escapeCell(r.Name), escapeCell(r.Date), r.Guests, r.Price)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Totals\n\n")
	fmt.Fprintf(&b, "- Subtotal: %s\n", v.Totals.Subtotal)
	fmt.Fprintf(&b, "- Taxes: %s\n", v.Totals.Taxes)
	fmt.Fprintf(&b, "- Delivery fee: %s\n", v.Totals.DeliveryFee)
	fmt.Fprintf(&b, "- **Total: %s**\n", v.Totals.Total)
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
