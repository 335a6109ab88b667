package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/notedeck/internal/domain"
	"github.com/cristianoliveira/notedeck/internal/settings"
	"github.com/cristianoliveira/notedeck/internal/workspace"
	"github.com/dustin/go-humanize"
)

// View renders the shell.
func (m *Model) View() string {
	st := m.currentStyles()
	var body string
	if m.compact() {
		body = m.viewCompact(st)
	} else {
		body = m.viewWide(st)
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.viewHeader(st), body, m.viewFooter(st))
}

func (m *Model) viewHeader(st styles) string {
	parts := []string{st.title.Render("notedeck"), routeLabel(m.ws.Route())}
	if tag := m.ws.TagFilter(); tag != "" {
		parts = append(parts, st.tag.Render("#"+tag))
	}
	if q := m.ws.SearchQuery(); q != "" {
		parts = append(parts, st.muted.Render(fmt.Sprintf("search: %q", q)))
	}
	if m.ws.Loading() {
		parts = append(parts, st.muted.Render("loading..."))
	}
	header := strings.Join(parts, "  ")
	if m.ws.SignInRequired() {
		header += "\n" + st.banner.Render("Not signed in. Run 'notedeck login' in another terminal.")
	}
	return header
}

func (m *Model) viewWide(st styles) string {
	height := max(m.height-headerFooterLines, 3)
	sidebar := st.pane.Width(sidebarWidth).Height(height).Render(m.viewSidebar(st))
	list := st.pane.Width(listWidth).Height(height).Render(m.viewList(st, m.ws.VisibleNotes(), listWidth-2))
	detail := st.pane.Width(m.detail.Width).Height(height).Render(m.viewDetail(st))
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, list, detail)
}

func (m *Model) viewCompact(st styles) string {
	if m.ws.Settings().Open {
		return m.viewSettings(st)
	}
	width := max(m.width-2, 10)
	switch m.ws.Screen() {
	case workspace.ScreenNote:
		return m.viewDetail(st)
	case workspace.ScreenSearch:
		return m.search.View() + "\n" + m.viewList(st, m.ws.VisibleNotes(), width)
	case workspace.ScreenTag:
		return st.header.Render("Tags") + "\n" + m.viewTags(st, m.tagCursor)
	case workspace.ScreenTaggedNotes:
		return st.header.Render("#"+m.ws.TagFilter()) + "\n" + m.viewList(st, m.ws.VisibleNotes(), width)
	default:
		return m.viewList(st, m.ws.VisibleNotes(), width)
	}
}

func (m *Model) viewSidebar(st styles) string {
	var b strings.Builder
	for _, r := range []domain.Route{domain.RouteActive, domain.RouteArchived} {
		line := routeLabel(r)
		if r == m.ws.Route() {
			line = st.selected.Render(line)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + st.header.Render("Tags") + "\n")
	cursor := -1
	for i, t := range m.ws.Tags() {
		if t == m.ws.TagFilter() {
			cursor = i
		}
	}
	b.WriteString(m.viewTags(st, cursor))
	return b.String()
}

func (m *Model) viewTags(st styles, cursor int) string {
	tags := m.ws.Tags()
	if len(tags) == 0 {
		return st.muted.Render("No tags")
	}
	lines := make([]string, 0, len(tags))
	for i, t := range tags {
		line := "#" + t
		if i == cursor {
			line = st.selected.Render(line)
		} else {
			line = st.tag.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) viewList(st styles, notes []domain.Note, width int) string {
	if len(notes) == 0 {
		return st.muted.Render("No notes")
	}
	currentID := ""
	if n, ok := m.ws.Current(); ok {
		currentID = n.ID
	}
	lines := make([]string, 0, len(notes))
	for _, n := range notes {
		age := humanize.Time(n.CreatedAt)
		title := truncate(n.Title, max(width-utf8.RuneCountInString(age)-2, 8))
		line := fmt.Sprintf("%-*s  %s", max(width-utf8.RuneCountInString(age)-2, 8), title, age)
		if n.ID == currentID {
			line = st.selected.Render(line)
		} else {
			line = st.row.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) viewDetail(st styles) string {
	if m.ws.Settings().Open && !m.compact() {
		return m.viewSettings(st)
	}
	if m.mode == modeEdit {
		return m.editor.view(st, m.ws.Creating(), m.ws.FieldError())
	}
	n, ok := m.ws.Current()
	if !ok {
		return st.muted.Render("Select a note or press n to write one.")
	}

	var b strings.Builder
	b.WriteString(st.header.Render(n.Title))
	b.WriteString("\n")
	if len(n.Tags) > 0 {
		tags := make([]string, 0, len(n.Tags))
		for _, t := range n.Tags {
			tags = append(tags, "#"+t)
		}
		b.WriteString(st.tag.Render(strings.Join(tags, " ")) + "\n")
	}
	meta := "created " + humanize.Time(n.CreatedAt)
	if n.Archived {
		meta += "  (archived)"
	}
	b.WriteString(st.muted.Render(meta) + "\n\n")
	b.WriteString(m.md.render(n.Details, m.detail.Width-4, m.ws.Preferences()))

	m.detail.SetContent(b.String())
	return m.detail.View()
}

func (m *Model) viewSettings(st styles) string {
	state := m.ws.Settings()
	var b strings.Builder
	b.WriteString(st.header.Render("Settings") + "\n")
	tabs := make([]string, 0, len(workspace.Panes))
	for _, p := range workspace.Panes {
		label := " " + p.String() + " "
		if p == state.Pane {
			label = st.selected.Render(label)
		}
		tabs = append(tabs, label)
	}
	b.WriteString(strings.Join(tabs, " ") + "\n\n")

	prefs := m.ws.Preferences()
	switch state.Pane {
	case workspace.PaneColorTheme:
		b.WriteString(optionList(st, settings.ColorThemes, prefs.Color))
	case workspace.PaneFontTheme:
		b.WriteString(optionList(st, settings.FontThemes, prefs.Font))
	case workspace.PaneChangePassword:
		b.WriteString(m.passwords.view(st, m.ws.FieldError()))
	}
	b.WriteString("\n\n" + st.muted.Render("tab: next pane  |  h/l: change  |  s: close"))
	return b.String()
}

func optionList[T ~string](st styles, options []T, current T) string {
	lines := make([]string, 0, len(options))
	for _, o := range options {
		line := "○ " + string(o)
		if o == current {
			line = st.selected.Render("● " + string(o))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) viewFooter(st styles) string {
	var lines []string
	if t := m.ws.Toast(); t.Visible {
		text := t.Message
		if t.ActionLabel != "" {
			text += fmt.Sprintf("  [f] %s", t.ActionLabel)
		}
		lines = append(lines, st.toast[t.Kind].Render(text))
	}
	switch m.mode {
	case modeConfirmDelete:
		title := m.pendingDelete
		if n, ok := m.ws.Current(); ok && n.ID == m.pendingDelete {
			title = n.Title
		}
		lines = append(lines, st.banner.Render(fmt.Sprintf("Delete %q permanently? (y/n)", title)))
	case modeBrowse:
		lines = append(lines, st.muted.Render(helpLine(m.keys.browseHelp())))
	}
	return strings.Join(lines, "\n")
}

func helpLine(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+": "+h.Desc)
	}
	return strings.Join(parts, "  |  ")
}

func routeLabel(r domain.Route) string {
	if r == domain.RouteArchived {
		return "Archived Notes"
	}
	return "All Notes"
}

func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	if width <= 3 {
		return string([]rune(s)[:width])
	}
	return string([]rune(s)[:width-3]) + "..."
}
