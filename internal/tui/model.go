// Package tui is the terminal shell of the workspace. It renders the
// workspace state and turns key presses into workspace transitions.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/notedeck/internal/auth"
	"github.com/cristianoliveira/notedeck/internal/settings"
	"github.com/cristianoliveira/notedeck/internal/workspace"
)

const (
	defaultWidth        = 100
	defaultHeight       = 30
	defaultCompactWidth = 100
	sidebarWidth        = 24
	listWidth           = 40
	headerFooterLines   = 4
)

type mode int

const (
	modeBrowse mode = iota
	modeEdit
	modeSearch
	modeConfirmDelete
	modePassword
)

// Options configures the shell.
type Options struct {
	// CompactWidth is the narrowest terminal that gets the three pane layout.
	CompactWidth int
	// SessionEvents receives a value whenever the session file changes.
	SessionEvents <-chan struct{}
}

// Model is the bubbletea model of the shell.
type Model struct {
	ws   *workspace.Workspace
	keys keyMap
	opts Options

	width  int
	height int
	mode   mode

	cursor        int
	tagCursor     int
	editingID     string
	pendingDelete string

	editor    editor
	search    textinput.Model
	passwords passwordForm
	detail    viewport.Model
	md        markdownRenderer

	theme  settings.ColorTheme
	styles styles
}

// New returns a shell over ws.
func New(ws *workspace.Workspace, opts Options) *Model {
	if opts.CompactWidth <= 0 {
		opts.CompactWidth = defaultCompactWidth
	}
	search := textinput.New()
	search.Placeholder = "Search notes"
	search.Prompt = "/ "

	m := &Model{
		ws:        ws,
		keys:      defaultKeyMap(),
		opts:      opts,
		width:     defaultWidth,
		height:    defaultHeight,
		editor:    newEditor(),
		search:    search,
		passwords: newPasswordForm(),
		detail:    viewport.New(defaultWidth, defaultHeight),
	}
	m.resize()
	return m
}

// Init resolves the session and starts listening for session changes.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.ws.Init(), m.waitForSession())
}

// Update handles key presses and window changes; everything else is a
// workspace message.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil
	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		m.syncCursor()
		return m, cmd
	case auth.SessionChangedMsg:
		return m, tea.Batch(m.ws.ResolveSession(), m.waitForSession())
	}

	cmd := m.ws.Apply(msg)
	m.afterApply(msg)
	m.syncCursor()
	return m, cmd
}

func (m *Model) waitForSession() tea.Cmd {
	if m.opts.SessionEvents == nil {
		return nil
	}
	return auth.WaitForSessionChange(m.opts.SessionEvents)
}

// afterApply leaves the forms once their submission succeeded.
func (m *Model) afterApply(msg tea.Msg) {
	switch msg := msg.(type) {
	case workspace.NoteCreatedMsg:
		if msg.Err == nil && m.mode == modeEdit {
			m.leaveEditor()
		}
	case workspace.NoteUpdatedMsg:
		if msg.Err == nil && m.mode == modeEdit {
			m.leaveEditor()
		}
	case workspace.PasswordChangedMsg:
		if msg.Err == nil && m.mode == modePassword {
			m.passwords.stop()
			m.mode = modeBrowse
		}
	}
}

func (m *Model) leaveEditor() {
	m.editor.blur()
	m.editingID = ""
	m.mode = modeBrowse
}

func (m *Model) compact() bool {
	return m.width < m.opts.CompactWidth
}

func (m *Model) resize() {
	bodyHeight := max(m.height-headerFooterLines, 3)
	detailWidth := m.width
	if !m.compact() {
		detailWidth = max(m.width-sidebarWidth-listWidth-6, 20)
	}
	m.detail.Width = detailWidth
	m.detail.Height = bodyHeight
	m.editor.resize(detailWidth-4, bodyHeight)
	m.search.Width = max(m.width-4, 10)
}

// syncCursor points the cursor at the selected note of the visible list.
func (m *Model) syncCursor() {
	notes := m.ws.VisibleNotes()
	if current, ok := m.ws.Current(); ok {
		for i, n := range notes {
			if n.ID == current.ID {
				m.cursor = i
				return
			}
		}
	}
	m.cursor = min(m.cursor, max(len(notes)-1, 0))
	if tags := m.ws.Tags(); m.tagCursor >= len(tags) {
		m.tagCursor = max(len(tags)-1, 0)
	}
}

func (m *Model) currentStyles() styles {
	theme := m.ws.Preferences().Color
	if m.styles.toast == nil || theme != m.theme {
		m.theme = theme
		m.styles = newStyles(theme)
	}
	return m.styles
}

// Run starts the shell and blocks until it exits or ctx is done.
func Run(ctx context.Context, ws *workspace.Workspace, opts Options) error {
	p := tea.NewProgram(New(ws, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
