package tui

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
)

var (
	mdRendererMu sync.Mutex
	// Renderers are cached by style and wrap width. Auto style detection can
	// block on terminal queries, so the style is always chosen explicitly.
	mdRenderers = map[string]*glamour.TermRenderer{}
)

func renderMarkdown(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 20 {
		width = 20
	}

	style := markdownStyle()
	key := style + ":" + strconv.Itoa(width)

	mdRendererMu.Lock()
	r := mdRenderers[key]
	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStyles(markdownStyleConfig(style)),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			mdRendererMu.Unlock()
			return md
		}
		mdRenderers[key] = rr
		r = rr
	}
	mdRendererMu.Unlock()

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

func markdownStyle() string {
	if dark, ok := themeDark(); ok {
		if dark {
			return "dark"
		}
		return "light"
	}
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

func markdownStyleConfig(style string) ansi.StyleConfig {
	cfg := styles.DarkStyleConfig
	if style == "light" {
		cfg = styles.LightStyleConfig
	}

	text := mdColor(colorSurfaceFg, style)
	accent := mdColor(colorAccent, style)
	cfg.Text.Color = text
	cfg.Heading.Color = accent
	cfg.H1.Color = accent
	cfg.H1.BackgroundColor = nil
	cfg.H2.Color = accent
	cfg.Strong.Color = mdColor(colorWarm, style)
	cfg.Code.Color = text
	cfg.Table.Color = text
	zero := uint(0)
	cfg.Document.Margin = &zero
	return cfg
}

func mdColor(c lipgloss.AdaptiveColor, style string) *string {
	v := c.Dark
	if style == "light" {
		v = c.Light
	}
	return &v
}
