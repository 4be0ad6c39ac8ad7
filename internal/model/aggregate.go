package model

import "fmt"

// Pricing holds the checkout surcharges.
type Pricing struct {
	TaxRate     float64 `json:"taxRate"`
	DeliveryFee float64 `json:"deliveryFee"`
}

func DefaultPricing() Pricing {
	return Pricing{TaxRate: 0.045, DeliveryFee: 2}
}

// TotalItemCount is the badge count: food units plus one per booking.
func (c *Cart) TotalItemCount() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, it := range c.Food {
		n += it.Quantity
	}
	return n + len(c.Safari)
}

func (c *Cart) FoodSubtotal() float64 {
	if c == nil {
		return 0
	}
	sum := 0.0
	for _, it := range c.Food {
		sum += it.LineTotal()
	}
	return sum
}

func (c *Cart) SafariSubtotal() float64 {
	if c == nil {
		return 0
	}
	sum := 0.0
	for _, b := range c.Safari {
		sum += b.Price
	}
	return sum
}

func (c *Cart) Total() float64 {
	return c.FoodSubtotal() + c.SafariSubtotal()
}

func (it FoodLineItem) LineTotal() float64 {
	return it.Price * float64(it.Quantity)
}

type CheckoutTotals struct {
	Subtotal    float64 `json:"subtotal"`
	Taxes       float64 `json:"taxes"`
	DeliveryFee float64 `json:"deliveryFee"`
	GrandTotal  float64 `json:"grandTotal"`
}

// Checkout computes the payable totals. The delivery fee only applies when
// there is food in the cart.
func (c *Cart) Checkout(p Pricing) CheckoutTotals {
	sub := c.Total()
	fee := 0.0
	if c != nil && len(c.Food) > 0 {
		fee = p.DeliveryFee
	}
	taxes := sub * p.TaxRate
	return CheckoutTotals{
		Subtotal:    sub,
		Taxes:       taxes,
		DeliveryFee: fee,
		GrandTotal:  sub + taxes + fee,
	}
}

// Money formats an amount with a currency sign and exactly two decimals.
func Money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
