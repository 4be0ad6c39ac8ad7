package tui

import (
	"os"
	"strings"
	"sync"
)

// Some fonts render box and dot glyphs poorly; an ASCII set is available via
// SAVANNA_TUI_GLYPHS=ascii or the tui.glyphs config preference.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetUnicode
)

func parseGlyphSet(v string) (glyphSet, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "unicode", "utf8":
		return glyphSetUnicode, true
	case "ascii":
		return glyphSetASCII, true
	}
	return glyphSetUnicode, false
}

// applyGlyphPreference: env wins over config; unknown values are ignored.
func applyGlyphPreference(configured string) {
	if gs, ok := parseGlyphSet(os.Getenv("SAVANNA_TUI_GLYPHS")); ok {
		setGlyphs(gs)
		return
	}
	if gs, ok := parseGlyphSet(configured); ok {
		setGlyphs(gs)
	}
}

func setGlyphs(gs glyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	defer glyphsMu.RUnlock()
	return currentGlyphs
}

func pick(unicode, ascii string) string {
	if glyphs() == glyphSetASCII {
		return ascii
	}
	return unicode
}

func glyphDot(active bool) string {
	if active {
		return pick("●", "*")
	}
	return pick("○", ".")
}

func glyphCursor() string { return pick("▸", ">") }
func glyphBullet() string { return pick("•", "*") }
func glyphPrev() string   { return pick("‹", "<") }
func glyphNext() string   { return pick("›", ">") }

func glyphHeart(on bool) string {
	if on {
		return pick("♥", "<3")
	}
	return pick("♡", "</3")
}

func glyphRadio(on bool) string {
	if on {
		return pick("◉", "(x)")
	}
	return pick("○", "( )")
}
