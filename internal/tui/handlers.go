package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/notedeck/internal/settings"
	"github.com/cristianoliveira/notedeck/internal/workspace"
)

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.forceQuit) {
		return tea.Quit
	}
	switch m.mode {
	case modeConfirmDelete:
		return m.handleConfirmation(msg)
	case modeEdit:
		return m.handleEditKey(msg)
	case modeSearch:
		return m.handleSearchKey(msg)
	case modePassword:
		return m.handlePasswordKey(msg)
	}
	if m.ws.Settings().Open {
		if handled, cmd := m.handleSettingsKey(msg); handled {
			return cmd
		}
	}
	return m.handleBrowseKey(msg)
}

func (m *Model) handleBrowseKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.quit):
		return tea.Quit
	case key.Matches(msg, m.keys.up):
		m.move(-1)
	case key.Matches(msg, m.keys.down):
		m.move(1)
	case key.Matches(msg, m.keys.open):
		return m.openSelected()
	case key.Matches(msg, m.keys.newNote):
		return m.startCreate()
	case key.Matches(msg, m.keys.edit):
		return m.startEdit()
	case key.Matches(msg, m.keys.remove):
		if n, ok := m.ws.Current(); ok {
			m.pendingDelete = n.ID
			m.mode = modeConfirmDelete
		}
	case key.Matches(msg, m.keys.archive):
		if n, ok := m.ws.Current(); ok {
			return m.ws.ToggleArchive(n.ID)
		}
	case key.Matches(msg, m.keys.search):
		return m.startSearch()
	case key.Matches(msg, m.keys.tags):
		m.showTags()
	case key.Matches(msg, m.keys.clear):
		m.ws.ClearFilters()
	case key.Matches(msg, m.keys.settings):
		m.ws.ToggleSettings()
	case key.Matches(msg, m.keys.route):
		return m.ws.SetRoute(m.ws.Route().Other())
	case key.Matches(msg, m.keys.follow):
		return m.ws.FollowAction()
	case key.Matches(msg, m.keys.dismiss):
		m.ws.DismissToast()
	case key.Matches(msg, m.keys.back):
		m.back()
	default:
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return cmd
	}
	return nil
}

// move steps through the list on screen. On the compact tag screen that is
// the tag list.
func (m *Model) move(delta int) {
	if m.compact() && m.ws.Screen() == workspace.ScreenTag {
		tags := m.ws.Tags()
		m.tagCursor = clamp(m.tagCursor+delta, 0, len(tags)-1)
		return
	}
	notes := m.ws.VisibleNotes()
	if len(notes) == 0 {
		return
	}
	m.cursor = clamp(m.cursor+delta, 0, len(notes)-1)
	m.ws.Select(notes[m.cursor].ID)
	m.detail.GotoTop()
}

func (m *Model) openSelected() tea.Cmd {
	if !m.compact() {
		return m.startEdit()
	}
	if m.ws.Screen() == workspace.ScreenTag {
		tags := m.ws.Tags()
		if len(tags) == 0 {
			return nil
		}
		m.ws.SetTagFilter(tags[clamp(m.tagCursor, 0, len(tags)-1)])
		m.ws.ShowTaggedNotes()
		if notes := m.ws.VisibleNotes(); len(notes) > 0 {
			m.ws.Select(notes[0].ID)
		}
		return nil
	}
	if _, ok := m.ws.Current(); ok {
		m.ws.ShowNote()
		m.detail.GotoTop()
	}
	return nil
}

func (m *Model) startCreate() tea.Cmd {
	m.ws.BeginCreate()
	m.ws.ShowNote()
	m.editingID = ""
	m.mode = modeEdit
	return m.editor.reset()
}

func (m *Model) startEdit() tea.Cmd {
	n, ok := m.ws.Current()
	if !ok {
		return nil
	}
	m.ws.ShowNote()
	m.editingID = n.ID
	m.mode = modeEdit
	return m.editor.load(n)
}

func (m *Model) startSearch() tea.Cmd {
	m.ws.ShowSearch()
	m.mode = modeSearch
	m.search.SetValue(m.ws.SearchQuery())
	m.search.CursorEnd()
	return m.search.Focus()
}

// showTags opens the tag screen on compact layouts. Wide layouts show tags in
// the sidebar, so the key steps the tag filter through them instead.
func (m *Model) showTags() {
	if m.compact() {
		m.ws.ShowTag()
		m.tagCursor = 0
		return
	}
	tags := m.ws.Tags()
	if len(tags) == 0 {
		return
	}
	next := 0
	for i, t := range tags {
		if t == m.ws.TagFilter() {
			next = i + 1
		}
	}
	if next >= len(tags) {
		m.ws.SetTagFilter("")
		return
	}
	m.ws.SetTagFilter(tags[next])
}

func (m *Model) back() {
	switch {
	case m.compact() && m.ws.Back():
		if m.ws.Screen() == workspace.ScreenHome {
			m.ws.ClearFilters()
		}
	case m.ws.Settings().Open:
		m.ws.CloseSettings()
	case m.ws.TagFilter() != "" || m.ws.SearchQuery() != "":
		m.ws.ClearFilters()
	}
}

func (m *Model) handleConfirmation(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.confirmYes):
		id := m.pendingDelete
		m.pendingDelete = ""
		m.mode = modeBrowse
		return m.ws.Remove(id)
	case key.Matches(msg, m.keys.confirmNo):
		m.pendingDelete = ""
		m.mode = modeBrowse
	}
	return nil
}

func (m *Model) handleEditKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.save):
		if m.editingID == "" {
			return m.ws.Create(m.editor.fields())
		}
		return m.ws.Update(m.editingID, m.editor.fields())
	case key.Matches(msg, m.keys.back):
		if m.ws.Creating() {
			m.ws.CancelCreate()
		}
		m.ws.HideNote()
		m.leaveEditor()
		return nil
	case key.Matches(msg, m.keys.nextField):
		return m.editor.next()
	}
	return m.editor.update(msg)
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.back):
		m.search.Blur()
		m.search.Reset()
		m.ws.SetSearchQuery("")
		m.ws.HideSearch()
		m.mode = modeBrowse
		return nil
	case key.Matches(msg, m.keys.open):
		m.search.Blur()
		m.mode = modeBrowse
		return nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.ws.SearchQuery() {
		m.ws.SetSearchQuery(m.search.Value())
		if notes := m.ws.VisibleNotes(); len(notes) > 0 {
			m.ws.Select(notes[0].ID)
		}
	}
	return cmd
}

func (m *Model) handleSettingsKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	state := m.ws.Settings()
	switch {
	case key.Matches(msg, m.keys.nextField):
		m.ws.SelectPane(nextPane(state.Pane))
		return true, nil
	case key.Matches(msg, m.keys.prevOption), key.Matches(msg, m.keys.nextOption):
		step := 1
		if key.Matches(msg, m.keys.prevOption) {
			step = -1
		}
		return true, m.cyclePreference(state.Pane, step)
	case key.Matches(msg, m.keys.open) && state.Pane == workspace.PaneChangePassword:
		m.mode = modePassword
		return true, m.passwords.start()
	}
	return false, nil
}

func (m *Model) cyclePreference(pane workspace.Pane, step int) tea.Cmd {
	prefs := m.ws.Preferences()
	switch pane {
	case workspace.PaneColorTheme:
		i := indexOf(settings.ColorThemes, prefs.Color)
		return m.ws.SetColorTheme(settings.ColorThemes[wrap(i+step, len(settings.ColorThemes))])
	case workspace.PaneFontTheme:
		i := indexOf(settings.FontThemes, prefs.Font)
		return m.ws.SetFontTheme(settings.FontThemes[wrap(i+step, len(settings.FontThemes))])
	}
	return nil
}

func (m *Model) handlePasswordKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.back):
		m.passwords.stop()
		m.mode = modeBrowse
		return nil
	case key.Matches(msg, m.keys.nextField):
		return m.passwords.next()
	case key.Matches(msg, m.keys.open):
		return m.ws.ChangePassword(m.passwords.values())
	}
	return m.passwords.update(msg)
}

func nextPane(p workspace.Pane) workspace.Pane {
	i := indexOf(workspace.Panes, p)
	return workspace.Panes[wrap(i+1, len(workspace.Panes))]
}

func indexOf[T comparable](items []T, v T) int {
	for i, item := range items {
		if item == v {
			return i
		}
	}
	return 0
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
