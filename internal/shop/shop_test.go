package shop

import (
	"errors"
	"testing"
	"time"

	"savanna-cli/internal/checkout"
	"savanna-cli/internal/model"
	"savanna-cli/internal/sched"
	"savanna-cli/internal/store"

	"github.com/google/go-cmp/cmp"
)

type recorder struct {
	toasts []string
	pages  []string
	badges []checkout.Badge
	events []string
}

func (r *recorder) Notify(msg string) { r.toasts = append(r.toasts, msg) }

func (r *recorder) AppendEvent(typ string, _ any) error {
	r.events = append(r.events, typ)
	return nil
}

func (r *recorder) lastToast() string {
	if len(r.toasts) == 0 {
		return ""
	}
	return r.toasts[len(r.toasts)-1]
}

func newTestManager(t *testing.T) (*Manager, *recorder, *store.MemoryCartStore, *sched.FakeClock) {
	t.Helper()

	clk := &sched.FakeClock{}
	rec := &recorder{}
	cs := &store.MemoryCartStore{}
	m := &Manager{
		Store:     cs,
		Events:    rec,
		Notify:    rec,
		Sched:     sched.New(sched.WithClock(clk.AfterFunc)),
		Pricing:   model.DefaultPricing(),
		Navigate:  func(p string) { rec.pages = append(rec.pages, p) },
		OnRefresh: func(b checkout.Badge) { rec.badges = append(rec.badges, b) },
		Now:       func() time.Time { return time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC) },
	}
	return m, rec, cs, clk
}

func TestAddFoodItem_SameNameTwiceMerges(t *testing.T) {
	t.Parallel()

	m, rec, _, _ := newTestManager(t)
	if _, err := m.AddFoodItem("Jollof Rice", "10.00"); err != nil {
		t.Fatalf("add: %v", err)
	}
	line, err := m.AddFoodItem("Jollof Rice", "10.00")
	if err != nil {
		t.Fatalf("add again: %v", err)
	}
	if line.Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", line.Quantity)
	}

	want := []model.FoodLineItem{{Name: "Jollof Rice", Price: 10, Quantity: 2}}
	if diff := cmp.Diff(want, m.Cart().Food); diff != "" {
		t.Fatalf("food mismatch (-want +got):\n%s", diff)
	}
	if rec.lastToast() != "Jollof Rice added to cart!" {
		t.Fatalf("toast %q", rec.lastToast())
	}
	if got := rec.badges[len(rec.badges)-1]; got != (checkout.Badge{Count: 2, Total: "$20.00"}) {
		t.Fatalf("badge %#v", got)
	}
	if diff := cmp.Diff([]string{store.EventFoodAdd, store.EventFoodAdd}, rec.events); diff != "" {
		t.Fatalf("events mismatch:\n%s", diff)
	}
}

func TestAddFoodItem_InvalidPriceLeavesCart(t *testing.T) {
	t.Parallel()

	m, rec, cs, _ := newTestManager(t)
	if _, err := m.AddFoodItem("Suya", "8"); err != nil {
		t.Fatalf("add: %v", err)
	}
	before := string(cs.Raw())

	_, err := m.AddFoodItem("Mystery", "abc")
	var ipe model.InvalidPriceError
	if !errors.As(err, &ipe) {
		t.Fatalf("expected InvalidPriceError, got %v", err)
	}
	if string(cs.Raw()) != before {
		t.Fatalf("cart changed on invalid price")
	}
	if rec.lastToast() != "Invalid price for Mystery" {
		t.Fatalf("toast %q", rec.lastToast())
	}
}

func TestAddFoodItem_ExistingLineIgnoresPrice(t *testing.T) {
	t.Parallel()

	m, _, _, _ := newTestManager(t)
	if _, err := m.AddFoodItem("Ugali", "8"); err != nil {
		t.Fatalf("add: %v", err)
	}
	line, err := m.AddFoodItem("Ugali", "")
	if err != nil {
		t.Fatalf("re-add without price: %v", err)
	}
	if line.Quantity != 2 || line.Price != 8 {
		t.Fatalf("line %#v", line)
	}
	if _, err := m.AddFoodItem("Ugali", "abc"); err != nil {
		t.Fatalf("re-add with bad price: %v", err)
	}

	want := []model.FoodLineItem{{Name: "Ugali", Price: 8, Quantity: 3}}
	if diff := cmp.Diff(want, m.Cart().Food); diff != "" {
		t.Fatalf("food mismatch (-want +got):\n%s", diff)
	}
}

func TestSetSingleSafariBooking_ReplacesAndNavigates(t *testing.T) {
	t.Parallel()

	m, rec, _, clk := newTestManager(t)
	m.Guests = func() int { return 3 }

	if _, err := m.AppendSafariBooking("Dolphin Reef Snorkel", "120"); err != nil {
		t.Fatalf("append: %v", err)
	}
	b, err := m.SetSingleSafariBooking("Sunset Marine Safari", "Oct 24")
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if b.Price != 255 || b.Guests != 3 {
		t.Fatalf("booking %#v", b)
	}

	want := []model.SafariBooking{{Name: "Sunset Marine Safari", Price: 255, Guests: 3, Date: "Oct 24"}}
	if diff := cmp.Diff(want, m.Cart().Safari); diff != "" {
		t.Fatalf("safari mismatch (-want +got):\n%s", diff)
	}
	if rec.lastToast() != "Safari booking added to cart!" {
		t.Fatalf("toast %q", rec.lastToast())
	}

	clk.Advance(999 * time.Millisecond)
	if len(rec.pages) != 0 {
		t.Fatalf("navigated early: %v", rec.pages)
	}
	clk.Advance(time.Millisecond)
	if diff := cmp.Diff([]string{PageCheckout}, rec.pages); diff != "" {
		t.Fatalf("pages mismatch:\n%s", diff)
	}
}

func TestAppendSafariBooking_KeepsExisting(t *testing.T) {
	t.Parallel()

	m, rec, _, clk := newTestManager(t)
	for _, name := range []string{"Mangrove Kayak Tour", "Mangrove Kayak Tour"} {
		if _, err := m.AppendSafariBooking(name, "75"); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	got := m.Cart().Safari
	if len(got) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(got))
	}
	if got[0].Guests != model.DefaultSafariGuests || got[0].Date != model.DefaultSafariDate {
		t.Fatalf("defaults not applied: %#v", got[0])
	}
	if rec.lastToast() != "Mangrove Kayak Tour added to bookings!" {
		t.Fatalf("toast %q", rec.lastToast())
	}
	clk.Advance(time.Minute)
	if len(rec.pages) != 0 {
		t.Fatalf("append must not navigate: %v", rec.pages)
	}
}

func TestConfirmBooking_EmptyCart(t *testing.T) {
	t.Parallel()

	m, rec, cs, clk := newTestManager(t)
	_, err := m.ConfirmBooking()
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	if rec.lastToast() != "Your cart is empty!" {
		t.Fatalf("toast %q", rec.lastToast())
	}
	if cs.Raw() != nil {
		t.Fatalf("store written on empty confirm")
	}
	if m.NavigationPending() {
		t.Fatalf("navigation scheduled for empty cart")
	}
	clk.Advance(time.Minute)
	if len(rec.pages) != 0 || len(rec.events) != 0 {
		t.Fatalf("unexpected side effects: pages=%v events=%v", rec.pages, rec.events)
	}
}

func TestConfirmBooking_ClearsAndGoesHome(t *testing.T) {
	t.Parallel()

	m, rec, _, clk := newTestManager(t)
	if _, err := m.AddFoodItem("Suya", "20"); err != nil {
		t.Fatalf("add: %v", err)
	}

	r, err := m.ConfirmBooking()
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if r.Ref == "" {
		t.Fatalf("missing receipt ref")
	}
	if model.Money(r.Totals.GrandTotal) != "$22.90" {
		t.Fatalf("receipt total %v", r.Totals.GrandTotal)
	}
	if !m.Cart().IsEmpty() {
		t.Fatalf("cart not cleared")
	}
	if got := m.Refresh(); got != (checkout.Badge{Count: 0, Total: "$0.00"}) {
		t.Fatalf("badge %#v", got)
	}
	if rec.lastToast() != "Booking confirmed! Thank you!" {
		t.Fatalf("toast %q", rec.lastToast())
	}

	clk.Advance(1499 * time.Millisecond)
	if len(rec.pages) != 0 {
		t.Fatalf("navigated early")
	}
	clk.Advance(time.Millisecond)
	if diff := cmp.Diff([]string{PageHome}, rec.pages); diff != "" {
		t.Fatalf("pages mismatch:\n%s", diff)
	}
	if rec.events[len(rec.events)-1] != store.EventConfirm {
		t.Fatalf("events %v", rec.events)
	}
}

func TestNavigation_LatestWins(t *testing.T) {
	t.Parallel()

	m, rec, _, clk := newTestManager(t)
	if _, err := m.SetSingleSafariBooking("Sunset Marine Safari", "Oct 5"); err != nil {
		t.Fatalf("set: %v", err)
	}
	clk.Advance(500 * time.Millisecond)
	if _, err := m.ConfirmBooking(); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	clk.Advance(5 * time.Second)
	if diff := cmp.Diff([]string{PageHome}, rec.pages); diff != "" {
		t.Fatalf("pages mismatch:\n%s", diff)
	}
}

func TestManager_WithoutSchedulerNavigatesImmediately(t *testing.T) {
	t.Parallel()

	var pages []string
	m := &Manager{
		Store:    &store.MemoryCartStore{},
		Navigate: func(p string) { pages = append(pages, p) },
	}
	b, err := m.SetSingleSafariBooking("Sunset Marine Safari", "Oct 5")
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if b.Price != 170 || b.Guests != 2 {
		t.Fatalf("defaults not applied: %#v", b)
	}
	if diff := cmp.Diff([]string{PageCheckout}, pages); diff != "" {
		t.Fatalf("pages mismatch:\n%s", diff)
	}
}

func TestClearCart(t *testing.T) {
	t.Parallel()

	m, rec, _, _ := newTestManager(t)
	if _, err := m.AppendSafariBooking("Island Hopping Day Trip", "140"); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := m.ClearCart(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if !m.Cart().IsEmpty() {
		t.Fatalf("cart not empty")
	}
	if rec.events[len(rec.events)-1] != store.EventClear {
		t.Fatalf("events %v", rec.events)
	}
}
