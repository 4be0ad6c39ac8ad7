package tui

import (
	"time"

	"savanna-cli/internal/catalog"
	"savanna-cli/internal/checkout"
	"savanna-cli/internal/model"
	"savanna-cli/internal/sched"
	"savanna-cli/internal/shop"
	"savanna-cli/internal/store"
	"savanna-cli/internal/widgets"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/harmonica"
	"go.uber.org/zap"
)

type page int

const (
	pageHome page = iota
	pageMenu
	pageSafari
	pageCheckout
)

var pageNames = []string{shop.PageHome, shop.PageMenu, shop.PageSafari, shop.PageCheckout}

var pageTitles = []string{"Home", "Menu", "Safari", "Checkout"}

func (p page) String() string { return pageNames[p] }

func parsePage(name string) (page, bool) {
	for i, n := range pageNames {
		if n == name {
			return page(i), true
		}
	}
	return pageHome, false
}

// Options configures the interactive app.
type Options struct {
	Store      store.Store
	Carts      store.CartStore
	Catalog    *catalog.Catalog
	Pricing    model.Pricing
	SafariRate float64
	Glyphs     string
	Log        *zap.Logger

	// Sched drives toasts, fades, navigation and the idle watchdog.
	// Run installs one that delivers into the program's event loop.
	Sched *sched.Scheduler
	Now   func() time.Time
}

type appModel struct {
	opts  Options
	carts store.CartStore
	cat   *catalog.Catalog
	sched *sched.Scheduler
	log   *zap.Logger

	keys keyMap
	help help.Model
	vp   viewport.Model

	width  int
	height int

	page  page
	sess  *widgets.Session
	mgr   *shop.Manager
	cart  *model.Cart
	badge checkout.Badge

	menuCursor   int
	safariCursor int
	lastReceipt  *checkout.Receipt

	spring      harmonica.Spring
	carouselPos float64
	carouselVel float64
	carouselTo  float64
	carouselSeq int
}

func (m *appModel) now() time.Time {
	if m.opts.Now != nil {
		return m.opts.Now()
	}
	return time.Now()
}

func newAppModel(opts Options) *appModel {
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Pricing == (model.Pricing{}) {
		opts.Pricing = model.DefaultPricing()
	}
	if opts.SafariRate <= 0 {
		opts.SafariRate = opts.Catalog.Safari.Featured.Rate
	}
	if opts.Sched == nil {
		opts.Sched = sched.New()
	}
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	carts := opts.Carts
	if carts == nil {
		carts = opts.Store.Carts()
	}

	m := &appModel{
		opts:   opts,
		carts:  carts,
		cat:    opts.Catalog,
		sched:  opts.Sched,
		log:    opts.Log,
		keys:   defaultKeyMap(),
		help:   help.New(),
		vp:     viewport.New(80, 20),
		spring: harmonica.NewSpring(harmonica.FPS(carouselFPS), 6.0, 0.9),
	}

	m.sess = widgets.NewSession(m.sched, m.now(), widgets.SessionOptions{
		SafariRate: opts.SafariRate,
		Slides:     len(opts.Catalog.Slides),
	})

	m.mgr = &shop.Manager{
		Store:      carts,
		Notify:     m.sess.Toast,
		Sched:      m.sched,
		Log:        m.log,
		Pricing:    opts.Pricing,
		SafariRate: opts.SafariRate,
		Guests:     func() int { return m.sess.Guests.Count },
		Navigate:   m.navigate,
		OnRefresh:  m.onRefresh,
		Now:        opts.Now,
	}
	if opts.Store.Dir != "" {
		m.mgr.Events = opts.Store
	}

	m.restoreState()
	m.mgr.Refresh()
	m.sess.Activity()
	return m
}

// navigate is the scheduled page switch. Unknown pages are ignored.
func (m *appModel) navigate(name string) {
	if p, ok := parsePage(name); ok {
		m.setPage(p)
	}
}

func (m *appModel) setPage(p page) {
	if m.page == p {
		return
	}
	m.page = p
	if p == pageCheckout {
		m.vp.GotoTop()
	}
	m.saveState()
}

func (m *appModel) onRefresh(b checkout.Badge) {
	m.badge = b
	m.cart = m.carts.Load()
}

func (m *appModel) reloadCart() {
	m.mgr.Refresh()
}

func (m *appModel) restoreState() {
	if m.opts.Store.Dir == "" {
		return
	}
	st, err := m.opts.Store.LoadTUIState()
	if err != nil {
		m.log.Warn("tui state unreadable", zap.Error(err))
		return
	}
	if p, ok := parsePage(st.Page); ok {
		m.page = p
	}
	if st.Fulfilment != "" {
		m.sess.Fulfilment.SelectName(st.Fulfilment)
	}
}

func (m *appModel) saveState() {
	if m.opts.Store.Dir == "" {
		return
	}
	st := &store.TUIState{Page: m.page.String(), Fulfilment: m.sess.Fulfilment.Current()}
	if err := m.opts.Store.SaveTUIState(st); err != nil {
		m.log.Warn("tui state save failed", zap.Error(err))
	}
}

// visibleFood lists the menu rows in display order: the default column, then
// each optional column that currently occupies layout space.
func (m *appModel) visibleFood() []catalog.Food {
	out := append([]catalog.Food(nil), m.cat.Column(catalog.ColumnDefault)...)
	for _, id := range m.sess.Columns.IDs() {
		if m.sess.Columns.State(id).InLayout() {
			out = append(out, m.cat.Column(id)...)
		}
	}
	return out
}

func clampCursor(cur, n int) int {
	if n <= 0 || cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}

func (m *appModel) safariRows() int {
	return 1 + len(m.cat.Safari.Listings)
}
