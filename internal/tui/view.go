package tui

import (
	"fmt"
	"strings"

	"savanna-cli/internal/catalog"
	"savanna-cli/internal/checkout"
	"savanna-cli/internal/model"
	"savanna-cli/internal/widgets"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m *appModel) View() string {
	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")

	switch m.page {
	case pageHome:
		b.WriteString(m.viewHome())
	case pageMenu:
		b.WriteString(m.viewMenu())
	case pageSafari:
		b.WriteString(m.viewSafari())
	case pageCheckout:
		b.WriteString(m.viewCheckout())
	}

	b.WriteString("\n\n")
	if t := m.sess.Toast; t.Visible {
		b.WriteString(styleToast().Render(t.Message))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return m.fit(b.String())
}

// fit truncates every line to the terminal width.
func (m *appModel) fit(s string) string {
	if m.width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, ln := range lines {
		lines[i] = ansi.Truncate(ln, m.width, "…")
	}
	return strings.Join(lines, "\n")
}

func (m *appModel) viewHeader() string {
	tabs := make([]string, 0, len(pageTitles))
	for i, t := range pageTitles {
		tabs = append(tabs, styleChip(page(i) == m.page).Render(t))
	}
	badge := stylePrice().Render(fmt.Sprintf("Cart %d · %s", m.badge.Count, m.badge.Total))
	left := styleTitle().Render("Savanna Sea") + "  " + strings.Join(tabs, " ")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(badge)
	if gap < 2 {
		gap = 2
	}
	return left + strings.Repeat(" ", gap) + badge
}

func (m *appModel) viewHome() string {
	slides := m.cat.Slides
	if len(slides) == 0 {
		return styleMuted().Render("Nothing to show")
	}
	c := m.sess.Carousel
	active := clampCursor(c.Active, len(slides))

	card := styleCard().Width(int(m.slideWidth()) - 2).Render(
		styleTitle().Render(slides[active]),
	)
	dots := make([]string, 0, len(slides))
	for _, on := range c.Dots() {
		dots = append(dots, glyphDot(on))
	}
	nav := styleMuted().Render(glyphPrev()) + " " + strings.Join(dots, " ") + " " + styleMuted().Render(glyphNext())
	return card + "\n" + nav
}

func (m *appModel) viewMenu() string {
	var b strings.Builder

	cols := m.sess.Columns
	chips := []string{styleChip(cols.HomeActive()).Render("All")}
	for _, cv := range cols.View() {
		chips = append(chips, styleChip(cv.ChipActive).Render(columnTitle(cv.ID)))
	}
	b.WriteString(strings.Join(chips, " "))
	b.WriteString("\n\n")

	i := 0
	section := func(title string, items []foodRow, vis widgets.Visibility) {
		head := styleAccent().Render(title)
		if vis == widgets.FadingIn || vis == widgets.FadingOut {
			head = styleMuted().Render(title)
		}
		b.WriteString(head)
		b.WriteString("\n")
		for _, it := range items {
			cursor := "  "
			name := it.name
			if i == m.menuCursor {
				cursor = styleSelected().Render(glyphCursor()) + " "
				name = styleSelected().Render(name)
			}
			qty := ""
			if it.qty > 0 {
				qty = styleMuted().Render(fmt.Sprintf(" ×%d", it.qty))
			}
			b.WriteString(fmt.Sprintf("%s%s  %s%s\n", cursor, name, stylePrice().Render(model.Money(it.price)), qty))
			i++
		}
	}

	section("Chef's picks", m.foodRows(catalog.ColumnDefault), widgets.Visible)
	for _, id := range cols.IDs() {
		if vis := cols.State(id); vis.InLayout() {
			b.WriteString("\n")
			section(columnTitle(id), m.foodRows(id), vis)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

type foodRow struct {
	name  string
	price float64
	qty   int
}

func (m *appModel) foodRows(column string) []foodRow {
	var out []foodRow
	for _, f := range m.cat.Column(column) {
		r := foodRow{name: f.Name, price: f.Price}
		if m.cart != nil {
			if i := m.cart.FindFood(f.Name); i >= 0 {
				r.qty = m.cart.Food[i].Quantity
			}
		}
		out = append(out, r)
	}
	return out
}

func columnTitle(id string) string {
	switch id {
	case widgets.ColumnItalian:
		return "Italian"
	case widgets.ColumnAfrican:
		return "African"
	}
	return id
}

func (m *appModel) viewSafari() string {
	var b strings.Builder
	f := m.cat.Safari.Featured
	gv := m.sess.Guests.View()

	b.WriteString(styleTitle().Render(f.Name))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Guests  %s %d %s   %s %s\n",
		styleMuted().Render("-"), gv.Count, styleMuted().Render("+"),
		stylePrice().Render(gv.Subtotal), styleMuted().Render(gv.PaxLabel)))
	b.WriteString("\n")

	cal := m.sess.Calendar
	b.WriteString(fmt.Sprintf("%s  %s  %s\n", styleMuted().Render(glyphPrev()), styleAccent().Render(cal.Header()), styleMuted().Render(glyphNext())))
	cells := make([]string, 0, widgets.DaysVisible)
	for _, d := range cal.Days(m.now()) {
		label := fmt.Sprintf("%s\n%2d", d.Weekday, d.Day)
		st := lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Center)
		switch d.State {
		case widgets.DaySelected:
			st = styleChip(true).Align(lipgloss.Center)
		case widgets.DayToday:
			st = st.Underline(true).Foreground(colorAccent)
		}
		cells = append(cells, st.Render(label))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	b.WriteString("\n\n")

	rows := []string{fmt.Sprintf("Book %s for %s", f.Name, cal.SelectedLabel())}
	for _, l := range m.cat.Safari.Listings {
		rows = append(rows, fmt.Sprintf("%s  %s", l.Name, stylePrice().Render(model.Money(l.Price))))
	}
	for i, r := range rows {
		if i == m.safariCursor {
			b.WriteString(styleSelected().Render(glyphCursor()) + " " + r + "\n")
		} else {
			b.WriteString("  " + r + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *appModel) viewCheckout() string {
	v := checkout.Build(m.cart, m.opts.Pricing)
	md := checkout.Markdown(v)
	if m.lastReceipt != nil && m.cart.IsEmpty() {
		md = m.lastReceipt.Markdown()
	}
	m.vp.SetContent(renderMarkdown(md, m.vp.Width))

	var opts []string
	for i, o := range m.sess.Fulfilment.Options {
		opts = append(opts, glyphRadio(m.sess.Fulfilment.IsActive(i))+" "+o)
	}
	footer := strings.Join(opts, "   ") + "    " + glyphHeart(m.sess.Favorite.On) + " favorite"
	return m.vp.View() + "\n" + footer + "\n" + styleMuted().Render(glyphBullet()+" Payment due on arrival")
}
