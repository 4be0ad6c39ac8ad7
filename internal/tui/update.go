package tui

import (
	"errors"
	"math"
	"strconv"
	"time"

	"savanna-cli/internal/shop"
	"savanna-cli/internal/widgets"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

const carouselFPS = 60

// runTaskMsg carries a scheduler callback onto the event loop.
type runTaskMsg struct{ fn func() }

// storeChangedMsg reports that the cart changed on disk.
type storeChangedMsg struct{}

type carouselFrameMsg struct{ seq int }

func (m *appModel) Init() tea.Cmd {
	return tea.SetWindowTitle("Savanna Sea")
}

func (m *appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.vp.Width = msg.Width
		m.vp.Height = max(msg.Height-8, 3)
		m.snapCarousel()
		return m, nil

	case runTaskMsg:
		if msg.fn != nil {
			msg.fn()
		}
		return m, nil

	case storeChangedMsg:
		m.reloadCart()
		return m, nil

	case carouselFrameMsg:
		if msg.seq != m.carouselSeq {
			return m, nil
		}
		return m, m.stepCarousel()

	case tea.MouseMsg:
		m.sess.Activity()
		return m, nil

	case tea.KeyMsg:
		m.sess.Activity()
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Home):
		m.setPage(pageHome)
		return m, nil
	case key.Matches(msg, m.keys.Menu):
		m.setPage(pageMenu)
		return m, nil
	case key.Matches(msg, m.keys.Safari):
		m.setPage(pageSafari)
		return m, nil
	case key.Matches(msg, m.keys.Checkout):
		m.setPage(pageCheckout)
		return m, nil
	case key.Matches(msg, m.keys.NextPage):
		m.setPage((m.page + 1) % page(len(pageNames)))
		return m, nil
	}

	switch m.page {
	case pageHome:
		return m.updateHome(msg)
	case pageMenu:
		return m.updateMenu(msg)
	case pageSafari:
		return m.updateSafari(msg)
	case pageCheckout:
		return m.updateCheckout(msg)
	}
	return m, nil
}

func (m *appModel) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		return m, m.scrollCarouselTo(m.sess.Carousel.Active - 1)
	case key.Matches(msg, m.keys.Right):
		return m, m.scrollCarouselTo(m.sess.Carousel.Active + 1)
	case key.Matches(msg, m.keys.Enter):
		m.setPage(pageMenu)
	}
	return m, nil
}

func (m *appModel) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.visibleFood()
	switch {
	case key.Matches(msg, m.keys.ChipHome):
		m.sess.Columns.Home()
	case key.Matches(msg, m.keys.ChipItalian):
		m.sess.Columns.Toggle(widgets.ColumnItalian)
	case key.Matches(msg, m.keys.ChipAfrican):
		m.sess.Columns.Toggle(widgets.ColumnAfrican)
	case key.Matches(msg, m.keys.Up):
		m.menuCursor--
	case key.Matches(msg, m.keys.Down):
		m.menuCursor++
	case key.Matches(msg, m.keys.Enter):
		m.menuCursor = clampCursor(m.menuCursor, len(rows))
		if len(rows) == 0 {
			return m, nil
		}
		it := rows[m.menuCursor]
		if _, err := m.mgr.AddFoodItem(it.Name, formatPrice(it.Price)); err != nil {
			m.log.Warn("add food failed", zap.String("item", it.Name), zap.Error(err))
		}
	}
	m.menuCursor = clampCursor(m.menuCursor, len(m.visibleFood()))
	return m, nil
}

func (m *appModel) updateSafari(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cal := m.sess.Calendar
	switch {
	case key.Matches(msg, m.keys.GuestsUp):
		m.sess.Guests.Adjust(1)
	case key.Matches(msg, m.keys.GuestsDown):
		m.sess.Guests.Adjust(-1)
	case key.Matches(msg, m.keys.PrevWeek):
		cal.Prev()
	case key.Matches(msg, m.keys.NextWeek):
		cal.Next()
	case key.Matches(msg, m.keys.Left):
		m.moveSelectedDay(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveSelectedDay(1)
	case key.Matches(msg, m.keys.Up):
		m.safariCursor = clampCursor(m.safariCursor-1, m.safariRows())
	case key.Matches(msg, m.keys.Down):
		m.safariCursor = clampCursor(m.safariCursor+1, m.safariRows())
	case key.Matches(msg, m.keys.Enter):
		m.bookSafari()
	}
	return m, nil
}

// moveSelectedDay steps the selection and pages the window when it runs
// off either edge.
func (m *appModel) moveSelectedDay(delta int) {
	cal := m.sess.Calendar
	i := cal.SelectedIndex()
	if i < 0 {
		if delta > 0 {
			cal.SelectIndex(0)
		} else {
			cal.SelectIndex(6)
		}
		return
	}
	if cal.SelectIndex(i + delta) {
		return
	}
	if delta > 0 {
		cal.Next()
		cal.SelectIndex(0)
	} else {
		cal.Prev()
		cal.SelectIndex(6)
	}
}

func (m *appModel) bookSafari() {
	if m.safariCursor == 0 {
		f := m.cat.Safari.Featured
		if _, err := m.mgr.SetSingleSafariBooking(f.Name, m.sess.Calendar.SelectedLabel()); err != nil {
			m.log.Warn("book safari failed", zap.Error(err))
		}
		return
	}
	l := m.cat.Safari.Listings[m.safariCursor-1]
	if _, err := m.mgr.AppendSafariBooking(l.Name, formatPrice(l.Price)); err != nil {
		m.log.Warn("append safari failed", zap.Error(err))
	}
}

func (m *appModel) updateCheckout(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Enter):
		r, err := m.mgr.ConfirmBooking()
		if err != nil {
			if !errors.Is(err, shop.ErrEmptyCart) {
				m.sess.Toast.Notify("Could not confirm: " + err.Error())
			}
			return m, nil
		}
		m.lastReceipt = &r
		return m, nil
	case key.Matches(msg, m.keys.Fulfilment):
		m.sess.Fulfilment.Next()
		m.saveState()
		return m, nil
	case key.Matches(msg, m.keys.Favorite):
		m.sess.Toast.Notify(m.sess.Favorite.Toggle())
		return m, nil
	case key.Matches(msg, m.keys.CopyRef):
		if m.lastReceipt == nil {
			return m, nil
		}
		if err := clipboard.WriteAll(m.lastReceipt.Ref); err != nil {
			m.log.Debug("clipboard unavailable", zap.Error(err))
			m.sess.Toast.Notify("Clipboard unavailable")
			return m, nil
		}
		m.sess.Toast.Notify("Booking reference copied")
		return m, nil
	}
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Carousel scrolling: the spring animates a virtual scroll offset and the
// carousel derives its active slide from that offset on every frame.

func (m *appModel) slideWidth() float64 {
	if m.width > 8 {
		return float64(m.width - 4)
	}
	return 40
}

func (m *appModel) scrollCarouselTo(i int) tea.Cmd {
	n := m.sess.Carousel.Count
	if n == 0 {
		return nil
	}
	if i < 0 {
		i = 0
	}
	if i > n-1 {
		i = n - 1
	}
	m.carouselTo = float64(i) * m.slideWidth()
	m.carouselSeq++
	return m.nextCarouselFrame()
}

func (m *appModel) nextCarouselFrame() tea.Cmd {
	seq := m.carouselSeq
	return tea.Tick(time.Second/carouselFPS, func(time.Time) tea.Msg { return carouselFrameMsg{seq: seq} })
}

func (m *appModel) stepCarousel() tea.Cmd {
	m.carouselPos, m.carouselVel = m.spring.Update(m.carouselPos, m.carouselVel, m.carouselTo)
	if math.Abs(m.carouselPos-m.carouselTo) < 0.5 && math.Abs(m.carouselVel) < 0.5 {
		m.carouselPos = m.carouselTo
		m.carouselVel = 0
		m.sess.Carousel.Scroll(m.carouselPos, m.slideWidth())
		return nil
	}
	m.sess.Carousel.Scroll(m.carouselPos, m.slideWidth())
	return m.nextCarouselFrame()
}

// snapCarousel keeps the offset aligned with the active slide after a resize.
func (m *appModel) snapCarousel() {
	m.carouselSeq++
	m.carouselPos = float64(m.sess.Carousel.Active) * m.slideWidth()
	m.carouselTo = m.carouselPos
	m.carouselVel = 0
}
