package model

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestAddFood_SameNameMergesQuantity(t *testing.T) {
	t.Parallel()

	c := NewCart()
	c.AddFood("Jollof Rice", 12.5)
	c.AddFood("Jollof Rice", 12.5)

	if len(c.Food) != 1 {
		t.Fatalf("expected 1 food line, got %d: %#v", len(c.Food), c.Food)
	}
	if got := c.Food[0].Quantity; got != 2 {
		t.Fatalf("expected quantity 2, got %d", got)
	}
}

func TestAddFood_KeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	c := NewCart()
	c.AddFood("b", 1)
	c.AddFood("a", 2)
	c.AddFood("b", 1)

	if c.Food[0].Name != "b" || c.Food[1].Name != "a" {
		t.Fatalf("unexpected order: %#v", c.Food)
	}
}

func TestSafari_ReplaceVsAppend(t *testing.T) {
	t.Parallel()

	replaced := NewCart()
	replaced.ReplaceSafari(SafariBooking{Name: "x", Price: 170, Guests: 2, Date: "Oct 24"})
	replaced.ReplaceSafari(SafariBooking{Name: "x", Price: 255, Guests: 3, Date: "Oct 24"})
	if len(replaced.Safari) != 1 {
		t.Fatalf("replace: expected 1 booking, got %d", len(replaced.Safari))
	}
	if replaced.Safari[0].Guests != 3 {
		t.Fatalf("replace: expected latest booking to win, got %#v", replaced.Safari[0])
	}

	appended := NewCart()
	appended.AppendSafari(SafariBooking{Name: "x", Price: 99})
	appended.AppendSafari(SafariBooking{Name: "x", Price: 99})
	if len(appended.Safari) != 2 {
		t.Fatalf("append: expected 2 bookings, got %d", len(appended.Safari))
	}
}

func TestAggregates_EmptyCart(t *testing.T) {
	t.Parallel()

	c := NewCart()
	if c.FoodSubtotal() != 0 || c.SafariSubtotal() != 0 || c.Total() != 0 {
		t.Fatalf("expected zero totals for empty cart")
	}
	if c.TotalItemCount() != 0 {
		t.Fatalf("expected zero count")
	}

	var nilCart *Cart
	if nilCart.Total() != 0 || nilCart.TotalItemCount() != 0 {
		t.Fatalf("nil cart should aggregate to zero")
	}
}

func TestAggregates_Sums(t *testing.T) {
	t.Parallel()

	c := &Cart{
		Food: []FoodLineItem{
			{Name: "a", Price: 4.5, Quantity: 2},
			{Name: "b", Price: 3, Quantity: 1},
		},
		Safari: []SafariBooking{
			{Name: "s1", Price: 170, Guests: 2},
			{Name: "s2", Price: 85, Guests: 1},
		},
	}

	if got := c.TotalItemCount(); got != 5 {
		t.Fatalf("count: got %d want 5", got)
	}
	if got := c.FoodSubtotal(); got != 12 {
		t.Fatalf("food subtotal: got %v want 12", got)
	}
	if got := c.SafariSubtotal(); got != 255 {
		t.Fatalf("safari subtotal: got %v want 255", got)
	}
	if got := c.Total(); got != c.FoodSubtotal()+c.SafariSubtotal() {
		t.Fatalf("total mismatch: %v", got)
	}
}

func TestCheckout_FoodOnly(t *testing.T) {
	t.Parallel()

	c := &Cart{Food: []FoodLineItem{{Name: "a", Price: 10, Quantity: 2}}}
	got := c.Checkout(DefaultPricing())

	if Money(got.Subtotal) != "$20.00" {
		t.Fatalf("subtotal: %s", Money(got.Subtotal))
	}
	if Money(got.Taxes) != "$0.90" {
		t.Fatalf("taxes: %s", Money(got.Taxes))
	}
	if got.DeliveryFee != 2 {
		t.Fatalf("delivery fee: %v", got.DeliveryFee)
	}
	if Money(got.GrandTotal) != "$22.90" {
		t.Fatalf("grand total: %s", Money(got.GrandTotal))
	}
}

func TestCheckout_SafariOnlyHasNoDeliveryFee(t *testing.T) {
	t.Parallel()

	c := &Cart{Safari: []SafariBooking{{Name: "s", Price: 100, Guests: 2}}}
	got := c.Checkout(DefaultPricing())
	if got.DeliveryFee != 0 {
		t.Fatalf("expected no delivery fee, got %v", got.DeliveryFee)
	}
	want := got.Subtotal + got.Subtotal*0.045
	if math.Abs(got.GrandTotal-want) > 1e-9 {
		t.Fatalf("grand total: got %v want %v", got.GrandTotal, want)
	}
}

func TestParsePrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{in: "12.50", want: 12.5},
		{in: " 3 ", want: 3},
		{in: "$4.25", want: 4.25},
		{in: "0", want: 0},
		{in: "", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "NaN", wantErr: true},
		{in: "Inf", wantErr: true},
		{in: "-1", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParsePrice(tt.in)
			if tt.wantErr {
				var pe InvalidPriceError
				if !errors.As(err, &pe) {
					t.Fatalf("expected InvalidPriceError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %v want %v", got, tt.want)
			}
		})
	}
}

func TestCart_JSONShape(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(NewCart())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"food":[],"safari":[]}` {
		t.Fatalf("unexpected json: %s", b)
	}
}
