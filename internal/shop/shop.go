// Package shop applies cart mutations and drives the side effects that
// follow them: persistence, the header badge, toasts and page navigation.
package shop

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"savanna-cli/internal/checkout"
	"savanna-cli/internal/model"
	"savanna-cli/internal/sched"
	"savanna-cli/internal/store"
	"savanna-cli/internal/widgets"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrEmptyCart = errors.New("cart is empty")

// Page names used for navigation.
const (
	PageHome     = "home"
	PageMenu     = "menu"
	PageSafari   = "safari"
	PageCheckout = "checkout"
)

const (
	CheckoutNavDelay = time.Second
	HomeNavDelay     = 1500 * time.Millisecond

	kindNavigate = sched.Kind("navigate")
)

// Notifier shows a transient message (the toast line).
type Notifier interface {
	Notify(msg string)
}

// EventSink records cart mutations.
type EventSink interface {
	AppendEvent(typ string, payload any) error
}

type Manager struct {
	Store   store.CartStore
	Events  EventSink
	Notify  Notifier
	Sched   *sched.Scheduler
	Log     *zap.Logger
	Pricing model.Pricing

	// SafariRate is the per-guest price of the featured safari.
	SafariRate float64
	// Guests reports the current guest stepper value.
	Guests func() int

	// Navigate switches page. Called from the scheduler.
	Navigate func(page string)
	// OnRefresh receives the recomputed header badge.
	OnRefresh func(checkout.Badge)

	Now func() time.Time
}

func (m *Manager) log() *zap.Logger {
	if m.Log == nil {
		return zap.NewNop()
	}
	return m.Log
}

func (m *Manager) now() time.Time {
	if m.Now == nil {
		return time.Now()
	}
	return m.Now()
}

func (m *Manager) pricing() model.Pricing {
	if m.Pricing == (model.Pricing{}) {
		return model.DefaultPricing()
	}
	return m.Pricing
}

func (m *Manager) toast(msg string) {
	if m.Notify != nil {
		m.Notify.Notify(msg)
	}
}

func (m *Manager) record(typ string, payload any) {
	if m.Events == nil {
		return
	}
	if err := m.Events.AppendEvent(typ, payload); err != nil {
		m.log().Warn("event log append failed", zap.String("type", typ), zap.Error(err))
	}
}

func (m *Manager) navigateAfter(page string, d time.Duration) {
	if m.Navigate == nil {
		return
	}
	nav := m.Navigate
	if m.Sched == nil {
		nav(page)
		return
	}
	m.Sched.Schedule(kindNavigate, d, func() { nav(page) })
}

// NavigationPending reports whether a scheduled page switch has not fired yet.
func (m *Manager) NavigationPending() bool {
	return m.Sched != nil && m.Sched.Pending(kindNavigate)
}

func (m *Manager) Cart() *model.Cart {
	return m.Store.Load()
}

func (m *Manager) save(c *model.Cart) error {
	if err := m.Store.Save(c); err != nil {
		m.log().Error("cart save failed", zap.Error(err))
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// Refresh recomputes the header badge from the stored cart.
func (m *Manager) Refresh() checkout.Badge {
	b := checkout.BuildBadge(m.Store.Load())
	if m.OnRefresh != nil {
		m.OnRefresh(b)
	}
	return b
}

// AddFoodItem adds one unit of name, merging with an existing line of the
// same name. The price is only read for a new line; an unparseable one
// leaves the cart untouched.
func (m *Manager) AddFoodItem(name, price string) (model.FoodLineItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.FoodLineItem{}, errors.New("food item: missing name")
	}

	c := m.Store.Load()
	var p float64
	if c.FindFood(name) < 0 {
		var err error
		p, err = model.ParsePrice(price)
		if err != nil {
			m.log().Warn("rejected food item", zap.String("name", name), zap.String("price", price))
			m.toast("Invalid price for " + name)
			return model.FoodLineItem{}, err
		}
	}
	line := c.AddFood(name, p)
	if err := m.save(c); err != nil {
		return model.FoodLineItem{}, err
	}
	m.record(store.EventFoodAdd, line)
	m.Refresh()
	m.toast(name + " added to cart!")
	m.log().Info("food added", zap.String("item", name), zap.Float64("price", line.Price), zap.Int("quantity", line.Quantity))
	return line, nil
}

func (m *Manager) guests() int {
	if m.Guests != nil {
		if g := m.Guests(); g > 0 {
			return g
		}
	}
	return model.DefaultSafariGuests
}

func (m *Manager) rate() float64 {
	if m.SafariRate > 0 {
		return m.SafariRate
	}
	return widgets.DefaultSafariRate
}

// SetSingleSafariBooking replaces every safari booking with one booking of
// name on date for the current guest count, then heads to checkout.
func (m *Manager) SetSingleSafariBooking(name, date string) (model.SafariBooking, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.SafariBooking{}, errors.New("safari booking: missing name")
	}
	g := m.guests()
	b := model.SafariBooking{Name: name, Price: m.rate() * float64(g), Guests: g, Date: date}

	c := m.Store.Load()
	c.ReplaceSafari(b)
	if err := m.save(c); err != nil {
		return model.SafariBooking{}, err
	}
	m.record(store.EventSafariSet, b)
	m.log().Info("safari booking set", zap.String("item", name), zap.Float64("price", b.Price), zap.Int("guests", g))
	m.Refresh()
	m.toast("Safari booking added to cart!")
	m.navigateAfter(PageCheckout, CheckoutNavDelay)
	return b, nil
}

// AppendSafariBooking adds a listing booking with the default guest count
// and date. Existing bookings are kept.
func (m *Manager) AppendSafariBooking(name, price string) (model.SafariBooking, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.SafariBooking{}, errors.New("safari booking: missing name")
	}
	p, err := model.ParsePrice(price)
	if err != nil {
		m.log().Warn("rejected safari booking", zap.String("name", name), zap.String("price", price))
		m.toast("Invalid price for " + name)
		return model.SafariBooking{}, err
	}
	b := model.SafariBooking{
		Name:   name,
		Price:  p,
		Guests: model.DefaultSafariGuests,
		Date:   model.DefaultSafariDate,
	}

	c := m.Store.Load()
	c.AppendSafari(b)
	if err := m.save(c); err != nil {
		return model.SafariBooking{}, err
	}
	m.record(store.EventSafariAppend, b)
	m.log().Info("safari booking appended", zap.String("item", name), zap.Float64("price", p))
	m.Refresh()
	m.toast(name + " added to bookings!")
	return b, nil
}

// ConfirmBooking finalizes the cart. An empty cart is reported to the user
// and nothing else happens.
func (m *Manager) ConfirmBooking() (checkout.Receipt, error) {
	c := m.Store.Load()
	if c.IsEmpty() {
		m.toast("Your cart is empty!")
		return checkout.Receipt{}, ErrEmptyCart
	}

	r := checkout.NewReceipt(uuid.NewString(), m.now(), c, m.pricing())
	if err := m.Store.Clear(); err != nil {
		m.log().Error("cart clear failed", zap.Error(err))
		return checkout.Receipt{}, fmt.Errorf("clear cart: %w", err)
	}
	m.record(store.EventConfirm, r)
	m.toast("Booking confirmed! Thank you!")
	m.Refresh()
	m.navigateAfter(PageHome, HomeNavDelay)
	m.log().Info("booking confirmed",
		zap.String("ref", r.Ref),
		zap.Int("items", c.TotalItemCount()),
		zap.String("total", model.Money(r.Totals.GrandTotal)),
	)
	return r, nil
}

// ClearCart empties the cart without confirming it.
func (m *Manager) ClearCart() error {
	if err := m.Store.Clear(); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	m.record(store.EventClear, nil)
	m.Refresh()
	return nil
}
