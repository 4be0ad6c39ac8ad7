package tui

import (
	"strings"
	"testing"
	"time"

	"savanna-cli/internal/catalog"
	"savanna-cli/internal/model"
	"savanna-cli/internal/sched"
	"savanna-cli/internal/store"
	"savanna-cli/internal/widgets"

	tea "github.com/charmbracelet/bubbletea"
)

var testNow = time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T) (*appModel, *sched.FakeClock, *store.MemoryCartStore) {
	t.Helper()
	setGlyphs(glyphSetASCII)

	clk := &sched.FakeClock{}
	carts := &store.MemoryCartStore{}
	m := newAppModel(Options{
		Carts:   carts,
		Catalog: catalog.Default(),
		Sched:   sched.New(sched.WithClock(clk.AfterFunc)),
		Now:     func() time.Time { return testNow },
	})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, clk, carts
}

func press(m *appModel, keys ...string) {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m.Update(msg)
	}
}

func TestPageKeys(t *testing.T) {
	m, _, _ := newTestApp(t)

	if m.page != pageHome {
		t.Fatalf("expected home, got %v", m.page)
	}
	press(m, "M")
	if m.page != pageMenu {
		t.Fatalf("expected menu, got %v", m.page)
	}
	press(m, "tab", "tab")
	if m.page != pageCheckout {
		t.Fatalf("expected checkout, got %v", m.page)
	}
	press(m, "tab")
	if m.page != pageHome {
		t.Fatalf("expected wrap to home, got %v", m.page)
	}
}

func TestMenu_AddFoodUpdatesBadgeAndToast(t *testing.T) {
	m, clk, _ := newTestApp(t)

	press(m, "M", "enter", "enter")
	first := m.cat.Column(catalog.ColumnDefault)[0]
	if m.badge.Count != 2 {
		t.Fatalf("badge count %d", m.badge.Count)
	}
	if got := m.cart.Food[0]; got.Name != first.Name || got.Quantity != 2 {
		t.Fatalf("cart line %#v", got)
	}
	if !m.sess.Toast.Visible || m.sess.Toast.Message != first.Name+" added to cart!" {
		t.Fatalf("toast %#v", m.sess.Toast)
	}
	if !strings.Contains(m.View(), first.Name+" added to cart!") {
		t.Fatalf("toast not rendered")
	}

	clk.Advance(widgets.ToastTTL)
	if m.sess.Toast.Visible {
		t.Fatalf("toast should hide after ttl")
	}
}

func TestMenu_ChipsRevealColumns(t *testing.T) {
	m, clk, _ := newTestApp(t)

	press(m, "M")
	base := len(m.visibleFood())
	press(m, "1")
	if m.sess.Columns.HomeActive() {
		t.Fatalf("home chip should deactivate")
	}
	clk.Advance(widgets.FadeInDelay)
	if m.sess.Columns.State(widgets.ColumnItalian) != widgets.Visible {
		t.Fatalf("italian column not visible")
	}
	if got := len(m.visibleFood()); got <= base {
		t.Fatalf("expected more rows, got %d (base %d)", got, base)
	}
	if !strings.Contains(m.View(), "Italian") {
		t.Fatalf("italian section missing")
	}

	press(m, "0")
	clk.Advance(widgets.FadeDuration)
	if got := len(m.visibleFood()); got != base {
		t.Fatalf("expected %d rows after home, got %d", base, got)
	}
}

func TestMenu_IdleResetsColumns(t *testing.T) {
	m, clk, _ := newTestApp(t)

	press(m, "M", "2")
	clk.Advance(widgets.FadeInDelay)
	clk.Advance(widgets.IdleReset - widgets.FadeInDelay - time.Second)
	if !m.sess.Columns.ChipActive(widgets.ColumnAfrican) {
		t.Fatalf("reset too early")
	}
	clk.Advance(time.Second + widgets.FadeDuration)
	if m.sess.Columns.ChipActive(widgets.ColumnAfrican) || !m.sess.Columns.HomeActive() {
		t.Fatalf("expected idle reset to home")
	}
}

func TestSafari_BookNavigatesToCheckout(t *testing.T) {
	m, clk, carts := newTestApp(t)

	press(m, "S", "+", "right", "enter")
	c := carts.Load()
	if len(c.Safari) != 1 {
		t.Fatalf("expected one booking, got %#v", c.Safari)
	}
	b := c.Safari[0]
	if b.Guests != 3 || b.Price != 255 || b.Date != "Oct 17" {
		t.Fatalf("booking %#v", b)
	}
	if m.page != pageSafari {
		t.Fatalf("navigated before delay")
	}
	clk.Advance(time.Second)
	if m.page != pageCheckout {
		t.Fatalf("expected checkout after 1s, got %v", m.page)
	}
}

func TestSafari_ViewShowsGuestSubtotal(t *testing.T) {
	m, _, _ := newTestApp(t)

	press(m, "S")
	v := stripANSI(m.View())
	if !strings.Contains(v, "$170.00") || !strings.Contains(v, "/ 2 pax") {
		t.Fatalf("expected default subtotal in view:\n%s", v)
	}
	press(m, "+")
	v = stripANSI(m.View())
	if !strings.Contains(v, "$255.00") || !strings.Contains(v, "/ 3 pax") {
		t.Fatalf("expected updated subtotal in view:\n%s", v)
	}
}

func TestSafari_CalendarPagesAtEdge(t *testing.T) {
	m, _, _ := newTestApp(t)

	press(m, "S")
	for i := 0; i < 7; i++ {
		press(m, "right")
	}
	if got := m.sess.Calendar.SelectedLabel(); got != "Oct 23" {
		t.Fatalf("selected %q", got)
	}
	if m.sess.Calendar.SelectedIndex() != 0 {
		t.Fatalf("expected window to page forward")
	}
}

func TestSafari_AppendListing(t *testing.T) {
	m, clk, carts := newTestApp(t)

	press(m, "S", "down", "enter", "enter")
	c := carts.Load()
	if len(c.Safari) != 2 {
		t.Fatalf("expected two appended bookings, got %d", len(c.Safari))
	}
	if c.Safari[0].Date != model.DefaultSafariDate {
		t.Fatalf("booking %#v", c.Safari[0])
	}
	clk.Advance(time.Minute)
	if m.page != pageSafari {
		t.Fatalf("append must not navigate")
	}
}

func TestCheckout_ConfirmEmptyAndFull(t *testing.T) {
	m, clk, carts := newTestApp(t)

	press(m, "C", "enter")
	if m.sess.Toast.Message != "Your cart is empty!" {
		t.Fatalf("toast %q", m.sess.Toast.Message)
	}
	clk.Advance(time.Minute)
	if m.page != pageCheckout {
		t.Fatalf("empty confirm must not navigate")
	}

	press(m, "M", "enter", "C")
	if !strings.Contains(m.View(), "$") {
		t.Fatalf("checkout view missing totals")
	}
	press(m, "enter")
	if m.lastReceipt == nil || m.lastReceipt.Ref == "" {
		t.Fatalf("missing receipt")
	}
	if !carts.Load().IsEmpty() || m.badge.Count != 0 {
		t.Fatalf("cart not cleared")
	}
	clk.Advance(1500 * time.Millisecond)
	if m.page != pageHome {
		t.Fatalf("expected home after confirm, got %v", m.page)
	}
}

func TestCheckout_ToggleAndFavorite(t *testing.T) {
	m, _, _ := newTestApp(t)

	press(m, "C", "d")
	if m.sess.Fulfilment.Current() != widgets.FulfilmentPickup {
		t.Fatalf("fulfilment %q", m.sess.Fulfilment.Current())
	}
	press(m, "f")
	if m.sess.Toast.Message != "Added to favorites!" {
		t.Fatalf("toast %q", m.sess.Toast.Message)
	}
	press(m, "f")
	if m.sess.Toast.Message != "Removed from favorites" {
		t.Fatalf("toast %q", m.sess.Toast.Message)
	}
}

func TestStoreChangedReloadsCart(t *testing.T) {
	m, _, carts := newTestApp(t)

	c := model.NewCart()
	c.AddFood("Suya", 8)
	if err := carts.Save(c); err != nil {
		t.Fatalf("save: %v", err)
	}
	m.Update(storeChangedMsg{})
	if m.badge.Count != 1 || m.badge.Total != "$8.00" {
		t.Fatalf("badge %#v", m.badge)
	}
}

func TestRunTaskMsgExecutes(t *testing.T) {
	m, _, _ := newTestApp(t)

	ran := false
	m.Update(runTaskMsg{fn: func() { ran = true }})
	if !ran {
		t.Fatalf("task not run")
	}
}

func TestCarouselAnimationSettles(t *testing.T) {
	m, _, _ := newTestApp(t)

	cmd := m.scrollCarouselTo(2)
	if cmd == nil {
		t.Fatalf("expected animation frame")
	}
	for i := 0; i < 600 && cmd != nil; i++ {
		cmd = m.stepCarousel()
	}
	if cmd != nil {
		t.Fatalf("animation did not settle")
	}
	if m.sess.Carousel.Active != 2 {
		t.Fatalf("active slide %d", m.sess.Carousel.Active)
	}

	stale := m.carouselSeq - 1
	if _, cmd := m.Update(carouselFrameMsg{seq: stale}); cmd != nil {
		t.Fatalf("stale frame should be ignored")
	}
}

func TestViewFitsWidth(t *testing.T) {
	m, _, _ := newTestApp(t)
	m.Update(tea.WindowSizeMsg{Width: 30, Height: 20})

	for _, p := range []string{"H", "M", "S", "C"} {
		press(m, p)
		for _, ln := range strings.Split(m.View(), "\n") {
			if w := len([]rune(stripANSI(ln))); w > 30 {
				t.Fatalf("page %s line too wide (%d): %q", p, w, ln)
			}
		}
	}
}
