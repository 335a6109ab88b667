package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/cristianoliveira/notedeck/internal/settings"
)

// serifWrap is the reading width of the serif font theme.
const serifWrap = 72

// markdownRenderer renders note bodies for a font theme. Renderers are
// rebuilt only when the width or preferences change.
type markdownRenderer struct {
	renderer *glamour.TermRenderer
	width    int
	prefs    settings.Preferences
}

func (r *markdownRenderer) render(body string, width int, prefs settings.Preferences) string {
	body = strings.TrimSpace(body)
	if body == "" {
		return ""
	}
	if prefs.Font == settings.FontMono {
		return body
	}
	wrap := max(width, 10)
	if prefs.Font == settings.FontSerif {
		wrap = min(wrap, serifWrap)
	}
	if r.renderer == nil || r.width != wrap || r.prefs != prefs {
		renderer, err := glamour.NewTermRenderer(styleOption(prefs.Color), glamour.WithWordWrap(wrap))
		if err != nil {
			return body
		}
		r.renderer, r.width, r.prefs = renderer, wrap, prefs
	}
	out, err := r.renderer.Render(body)
	if err != nil {
		return body
	}
	return strings.Trim(out, "\n")
}

func styleOption(theme settings.ColorTheme) glamour.TermRendererOption {
	switch theme {
	case settings.ColorLight:
		return glamour.WithStandardStyle("light")
	case settings.ColorDark:
		return glamour.WithStandardStyle("dark")
	default:
		return glamour.WithAutoStyle()
	}
}
