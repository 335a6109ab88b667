package settings

import (
	"strings"

	"github.com/cristianoliveira/notedeck/internal/config"
)

// Preference keys.
const (
	KeyColorTheme = "color_theme"
	KeyFontTheme  = "font_theme"
)

// ColorTheme selects the UI palette.
type ColorTheme string

const (
	ColorLight  ColorTheme = "light"
	ColorDark   ColorTheme = "dark"
	ColorSystem ColorTheme = "system"
)

// ColorThemes lists the selectable color themes in display order.
var ColorThemes = []ColorTheme{ColorLight, ColorDark, ColorSystem}

// IsValid returns whether the theme is one of the supported values.
func (c ColorTheme) IsValid() bool {
	switch c {
	case ColorLight, ColorDark, ColorSystem:
		return true
	default:
		return false
	}
}

// NormalizeColorTheme converts persisted input to a valid theme.
// Missing or invalid values resolve to the configured default, then system.
func NormalizeColorTheme(raw string) ColorTheme {
	theme := ColorTheme(strings.ToLower(strings.TrimSpace(raw)))
	if theme.IsValid() {
		return theme
	}
	if def := ColorTheme(config.Get("color_theme", "")); def.IsValid() {
		return def
	}
	return ColorSystem
}

// FontTheme selects how note bodies are rendered.
type FontTheme string

const (
	FontSans  FontTheme = "sans"
	FontSerif FontTheme = "serif"
	FontMono  FontTheme = "mono"
)

// FontThemes lists the selectable font themes in display order.
var FontThemes = []FontTheme{FontSans, FontSerif, FontMono}

// IsValid returns whether the font is one of the supported values.
func (f FontTheme) IsValid() bool {
	switch f {
	case FontSans, FontSerif, FontMono:
		return true
	default:
		return false
	}
}

// NormalizeFontTheme converts persisted input to a valid font, defaulting to sans.
func NormalizeFontTheme(raw string) FontTheme {
	font := FontTheme(strings.ToLower(strings.TrimSpace(raw)))
	if font.IsValid() {
		return font
	}
	return FontSans
}

// Preferences is the typed view of the stored display preferences.
type Preferences struct {
	Color ColorTheme
	Font  FontTheme
}

// Read returns the preferences held by s, normalized.
func Read(s Store) Preferences {
	color, _ := s.Get(KeyColorTheme)
	font, _ := s.Get(KeyFontTheme)
	return Preferences{
		Color: NormalizeColorTheme(color),
		Font:  NormalizeFontTheme(font),
	}
}
