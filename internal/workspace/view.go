package workspace

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/notedeck/internal/auth"
	"github.com/cristianoliveira/notedeck/internal/domain"
	apperrors "github.com/cristianoliveira/notedeck/internal/errors"
	"github.com/cristianoliveira/notedeck/internal/settings"
)

// SetTagFilter restricts the view to tag and closes settings. The search
// query is kept.
func (w *Workspace) SetTagFilter(tag string) {
	w.filter.SetTag(tag)
	w.settings.Close()
	w.reconcile()
}

// SetSearchQuery sets the search query, clears the tag filter and closes
// settings.
func (w *Workspace) SetSearchQuery(query string) {
	w.filter.SetQuery(query)
	w.settings.Close()
	w.reconcile()
}

// ClearFilters drops the tag filter and the search query.
func (w *Workspace) ClearFilters() {
	w.filter.Clear()
	w.reconcile()
}

// Select makes note id the current note and leaves create mode. It reports
// false when no such note is held.
func (w *Workspace) Select(id string) bool {
	n, ok := w.store.Find(id)
	if !ok {
		return false
	}
	w.selection.EndCreate()
	w.selection.Set(n)
	return true
}

// BeginCreate enters create mode and clears the tag filter and search query.
func (w *Workspace) BeginCreate() {
	w.selection.BeginCreate()
	w.filter.Clear()
	w.fieldErr = nil
}

// CancelCreate leaves create mode and selects the first note of the route.
func (w *Workspace) CancelCreate() {
	if !w.selection.Creating() {
		return
	}
	w.selection.EndCreate()
	w.selection.selectFirst(w.store.Base(w.route))
	w.fieldErr = nil
}

// SetRoute switches between active and archived notes. The selection is
// cleared and the notes are fetched again.
func (w *Workspace) SetRoute(route domain.Route) tea.Cmd {
	if !route.IsValid() || route == w.route {
		return nil
	}
	w.log.Debug("route changed", "from", w.route, "to", route)
	w.route = route
	w.selection.Clear()
	w.reconcile()
	if w.owner == "" {
		return nil
	}
	return w.startLoad(loadRoute)
}

// ShowNote opens the note screen.
func (w *Workspace) ShowNote() { w.nav.ShowNote() }

// HideNote leaves the note screen.
func (w *Workspace) HideNote() { w.nav.HideNote() }

// ShowSearch opens the search screen.
func (w *Workspace) ShowSearch() { w.nav.ShowSearch() }

// HideSearch leaves the search screen.
func (w *Workspace) HideSearch() { w.nav.HideSearch() }

// ShowTag opens the tag list screen.
func (w *Workspace) ShowTag() { w.nav.ShowTag() }

// HideTag leaves the tag list screen.
func (w *Workspace) HideTag() { w.nav.HideTag() }

// ShowTaggedNotes opens the notes of the filtered tag.
func (w *Workspace) ShowTaggedNotes() { w.nav.ShowTaggedNotes() }

// HideTaggedNotes leaves the tagged notes screen.
func (w *Workspace) HideTaggedNotes() { w.nav.HideTaggedNotes() }

// Back leaves the current screen. It reports false on Home.
func (w *Workspace) Back() bool { return w.nav.Back() }

// OpenSettings shows the settings overlay.
func (w *Workspace) OpenSettings() { w.settings.Open() }

// CloseSettings hides the settings overlay.
func (w *Workspace) CloseSettings() {
	w.settings.Close()
	w.reconcile()
}

// ToggleSettings flips the settings overlay.
func (w *Workspace) ToggleSettings() {
	w.settings.Toggle()
	w.reconcile()
}

// SelectPane opens the settings overlay on p.
func (w *Workspace) SelectPane(p Pane) { w.settings.SelectPane(p) }

// SetColorTheme stores the color theme preference.
func (w *Workspace) SetColorTheme(theme settings.ColorTheme) tea.Cmd {
	if !theme.IsValid() {
		return w.fail("preferences", MsgPreferencesFailed, apperrors.Validation("preferences", settings.KeyColorTheme, "Unknown color theme"))
	}
	return w.setPreference(settings.KeyColorTheme, string(theme))
}

// SetFontTheme stores the font theme preference.
func (w *Workspace) SetFontTheme(font settings.FontTheme) tea.Cmd {
	if !font.IsValid() {
		return w.fail("preferences", MsgPreferencesFailed, apperrors.Validation("preferences", settings.KeyFontTheme, "Unknown font theme"))
	}
	return w.setPreference(settings.KeyFontTheme, string(font))
}

func (w *Workspace) setPreference(key, value string) tea.Cmd {
	if err := w.prefs.Set(key, value); err != nil {
		return w.fail("preferences", MsgPreferencesFailed, err)
	}
	w.log.Debug("preference saved", "name", key, "value", value)
	return nil
}

// ChangePassword validates the form and changes the password. Invalid input
// never reaches the auth provider.
func (w *Workspace) ChangePassword(current, next, confirm string) tea.Cmd {
	if err := auth.ValidatePasswordChange(current, next, confirm); err != nil {
		return w.fail("change_password", MsgPasswordFailed, err)
	}
	if w.passwords == nil {
		return w.fail("change_password", MsgPasswordFailed, apperrors.Auth("change_password", errNoSession))
	}
	w.fieldErr = nil
	ctx, pc := w.ctx, w.passwords
	return func() tea.Msg {
		return PasswordChangedMsg{Err: pc.ChangePassword(ctx, current, next, confirm)}
	}
}

func (w *Workspace) applyPasswordChange(msg PasswordChangedMsg) tea.Cmd {
	if msg.Err != nil {
		return w.fail("change_password", MsgPasswordFailed, msg.Err)
	}
	w.fieldErr = nil
	return w.notify(Toast{Message: MsgPasswordChanged, Kind: ToastSuccess})
}

// ShowToast shows an informational toast.
func (w *Workspace) ShowToast(message, actionLabel string) tea.Cmd {
	return w.toast.Show(message, actionLabel)
}

// DismissToast hides the toast.
func (w *Workspace) DismissToast() { w.toast.Dismiss() }

// FollowAction navigates to the route of the toast action and dismisses it.
func (w *Workspace) FollowAction() tea.Cmd {
	t := w.toast.Current()
	w.toast.Dismiss()
	if !t.Visible || !t.HasAction() {
		return nil
	}
	return w.SetRoute(t.Action)
}

func (w *Workspace) notify(t Toast) tea.Cmd {
	return w.toast.show(t)
}

// ResolveSession asks the auth provider for the current owner.
func (w *Workspace) ResolveSession() tea.Cmd {
	if w.sessions == nil {
		return nil
	}
	ctx, sessions := w.ctx, w.sessions
	return func() tea.Msg {
		owner, err := sessions.OwnerID(ctx)
		return SessionResolvedMsg{Owner: owner, Err: err}
	}
}

func (w *Workspace) applySession(msg SessionResolvedMsg) tea.Cmd {
	if msg.Err != nil {
		w.SessionChanged("")
		return w.fail("session", MsgLoadFailed, msg.Err)
	}
	return w.SessionChanged(msg.Owner)
}

// SessionChanged drops all notes and state of the previous owner and loads
// the notes of owner. An empty owner signs out.
func (w *Workspace) SessionChanged(owner string) tea.Cmd {
	if w.cancelLoad != nil {
		w.cancelLoad()
		w.cancelLoad = nil
	}
	w.loading = false
	w.store.Reset()
	w.selection = Selection{}
	w.filter.Clear()
	w.fieldErr = nil
	w.owner = owner
	w.signInRequired = owner == ""
	w.log.Debug("session changed", "owner", owner)
	if owner == "" {
		return nil
	}
	return w.startLoad(loadInitial)
}
