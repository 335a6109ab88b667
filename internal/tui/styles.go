package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/notedeck/internal/settings"
	"github.com/cristianoliveira/notedeck/internal/workspace"
)

type styles struct {
	title    lipgloss.Style
	pane     lipgloss.Style
	header   lipgloss.Style
	row      lipgloss.Style
	selected lipgloss.Style
	muted    lipgloss.Style
	tag      lipgloss.Style
	field    lipgloss.Style
	errText  lipgloss.Style
	toast    map[workspace.ToastKind]lipgloss.Style
	banner   lipgloss.Style
}

type palette struct {
	accent, text, muted, inverse lipgloss.TerminalColor
	success, warning, danger     lipgloss.TerminalColor
}

// tone is one palette entry as ANSI 256 codes for light and dark terminals.
type tone struct{ light, dark string }

var (
	toneAccent  = tone{"25", "39"}
	toneText    = tone{"235", "252"}
	toneMuted   = tone{"245", "241"}
	toneInverse = tone{"255", "0"}
	toneSuccess = tone{"28", "42"}
	toneWarning = tone{"130", "214"}
	toneDanger  = tone{"124", "203"}
)

func paletteFor(theme settings.ColorTheme) palette {
	pick := func(t tone) lipgloss.TerminalColor {
		switch theme {
		case settings.ColorLight:
			return lipgloss.Color(t.light)
		case settings.ColorDark:
			return lipgloss.Color(t.dark)
		default:
			return lipgloss.AdaptiveColor{Light: t.light, Dark: t.dark}
		}
	}
	return palette{
		accent:  pick(toneAccent),
		text:    pick(toneText),
		muted:   pick(toneMuted),
		inverse: pick(toneInverse),
		success: pick(toneSuccess),
		warning: pick(toneWarning),
		danger:  pick(toneDanger),
	}
}

func newStyles(theme settings.ColorTheme) styles {
	p := paletteFor(theme)
	toastBase := lipgloss.NewStyle().Padding(0, 1).Bold(true)
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		pane:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.muted).Padding(0, 1),
		header:   lipgloss.NewStyle().Bold(true).Foreground(p.accent).MarginBottom(1),
		row:      lipgloss.NewStyle().Foreground(p.text),
		selected: lipgloss.NewStyle().Bold(true).Background(p.accent).Foreground(p.inverse),
		muted:    lipgloss.NewStyle().Foreground(p.muted),
		tag:      lipgloss.NewStyle().Foreground(p.accent),
		field:    lipgloss.NewStyle().Foreground(p.muted).Bold(true),
		errText:  lipgloss.NewStyle().Foreground(p.danger),
		banner:   lipgloss.NewStyle().Bold(true).Foreground(p.warning),
		toast: map[workspace.ToastKind]lipgloss.Style{
			workspace.ToastSuccess:          toastBase.Background(p.success).Foreground(p.inverse),
			workspace.ToastInfo:             toastBase.Background(p.accent).Foreground(p.inverse),
			workspace.ToastPersistenceError: toastBase.Background(p.danger).Foreground(p.inverse),
			workspace.ToastValidationError:  toastBase.Background(p.warning).Foreground(p.inverse),
			workspace.ToastAuthError:        toastBase.Background(p.danger).Foreground(p.inverse),
		},
	}
}
