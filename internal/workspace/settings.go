package workspace

// Pane is a page of the settings overlay.
type Pane int

const (
	PaneNone Pane = iota
	PaneColorTheme
	PaneFontTheme
	PaneChangePassword
)

// Panes lists the selectable panes in display order.
var Panes = []Pane{PaneColorTheme, PaneFontTheme, PaneChangePassword}

// String returns the pane title.
func (p Pane) String() string {
	switch p {
	case PaneColorTheme:
		return "Color Theme"
	case PaneFontTheme:
		return "Font Theme"
	case PaneChangePassword:
		return "Change Password"
	default:
		return ""
	}
}

// SettingsState is the read-only view of the settings overlay.
type SettingsState struct {
	Open bool
	Pane Pane
}

// SettingsCoordinator owns the overlay visibility and the active pane.
type SettingsCoordinator struct {
	open bool
	pane Pane
}

// State returns a snapshot.
func (s *SettingsCoordinator) State() SettingsState {
	return SettingsState{Open: s.open, Pane: s.pane}
}

// Open shows the overlay on the last pane, or the color theme pane.
func (s *SettingsCoordinator) Open() {
	s.open = true
	if s.pane == PaneNone {
		s.pane = PaneColorTheme
	}
}

// Close hides the overlay. The pane is kept for the next Open.
func (s *SettingsCoordinator) Close() { s.open = false }

// Toggle flips the overlay.
func (s *SettingsCoordinator) Toggle() {
	if s.open {
		s.Close()
		return
	}
	s.Open()
}

// SelectPane opens the overlay on p.
func (s *SettingsCoordinator) SelectPane(p Pane) {
	if p == PaneNone {
		s.Open()
		return
	}
	s.pane = p
	s.open = true
}
