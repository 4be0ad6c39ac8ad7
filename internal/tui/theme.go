package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// The TUI must stay readable on light and dark backgrounds, so colors are
// adaptive and "faint" is only applied on dark backgrounds.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted     = ac("240", "243")
	colorSurfaceFg = ac("235", "252")
	colorControlBg = ac("252", "235")
	colorAccent    = ac("#0f766e", "#2dd4bf") // sea green
	colorAccentFg  = ac("255", "235")
	colorWarm      = ac("#b45309", "#f59e0b") // savanna amber
	colorBorder    = ac("250", "240")
	colorToastBg   = ac("#1f2937", "#e5e7eb")
	colorToastFg   = ac("#f9fafb", "#111827")
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleTitle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg)
}

func styleAccent() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorAccent)
}

func stylePrice() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(colorWarm)
}

func styleChip(active bool) lipgloss.Style {
	st := lipgloss.NewStyle().Padding(0, 1)
	if active {
		return st.Background(colorAccent).Foreground(colorAccentFg).Bold(true)
	}
	return st.Background(colorControlBg).Foreground(colorSurfaceFg)
}

func styleSelected() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
}

func styleToast() lipgloss.Style {
	return lipgloss.NewStyle().Background(colorToastBg).Foreground(colorToastFg).Padding(0, 1)
}

func styleCard() lipgloss.Style {
	return lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder).Padding(0, 1)
}

// applyColorProfilePreference honors NO_COLOR and otherwise trusts the
// terminal, upgrading the profile when TERM/COLORTERM claim more than the
// detector found.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") && profile != termenv.TrueColor {
		profile = termenv.ANSI256
	}
	lipgloss.SetColorProfile(profile)
}

// themeDark resolves the background preference:
// SAVANNA_TUI_THEME=light|dark|auto, then COLORFGBG ("fg;bg").
// ok is false when nothing decided it.
func themeDark() (dark bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("SAVANNA_TUI_THEME"))) {
	case "light":
		return false, true
	case "dark":
		return true, true
	}
	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			return bg < 7, true
		}
	}
	return false, false
}

func applyThemePreference() {
	if dark, ok := themeDark(); ok {
		lipgloss.SetHasDarkBackground(dark)
	}
}
