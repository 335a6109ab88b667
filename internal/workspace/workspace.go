// Package workspace owns the state of a note-taking session: the note
// collections, filters, selection, screen navigation, the settings overlay
// and the toast slot.
//
// State changes only through named transitions. Transitions that talk to a
// repository return a tea.Cmd; its message is applied with Apply. A
// Workspace is not safe for concurrent use.
package workspace

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/notedeck/internal/auth"
	"github.com/cristianoliveira/notedeck/internal/domain"
	"github.com/cristianoliveira/notedeck/internal/logging"
	"github.com/cristianoliveira/notedeck/internal/search"
	"github.com/cristianoliveira/notedeck/internal/settings"
)

// PasswordChanger changes the password of the signed in user.
type PasswordChanger interface {
	ChangePassword(ctx context.Context, current, next, confirm string) error
}

// Hooks runs user scripts after a note change is stored.
type Hooks interface {
	Run(ctx context.Context, point string, env map[string]string) error
}

// Option configures a Workspace.
type Option func(*Workspace)

// WithSearchProvider replaces the title/details matcher used by search.
func WithSearchProvider(p search.Provider) Option {
	return func(w *Workspace) { w.provider = p }
}

// WithPreferences sets where display preferences are stored.
func WithPreferences(s settings.Store) Option {
	return func(w *Workspace) { w.prefs = s }
}

// WithPasswordChanger sets the target of the change password pane.
func WithPasswordChanger(pc PasswordChanger) Option {
	return func(w *Workspace) { w.passwords = pc }
}

// WithHooks runs hk after every stored note change. Hook failures are
// logged and never fail the change.
func WithHooks(hk Hooks) Option {
	return func(w *Workspace) { w.hooks = hk }
}

// WithToastDuration sets how long toasts stay visible.
func WithToastDuration(d time.Duration) Option {
	return func(w *Workspace) { w.toast = NewNotifier(d) }
}

// WithHeadless disables toast timers.
func WithHeadless() Option {
	return func(w *Workspace) { w.headless = true }
}

// WithRoute sets the initial route.
func WithRoute(r domain.Route) Option {
	return func(w *Workspace) {
		if r.IsValid() {
			w.route = r
		}
	}
}

// WithLogger sets the logger. The global logger is used otherwise.
func WithLogger(l logging.Logger) Option {
	return func(w *Workspace) { w.log = l }
}

// WithContext sets the parent context of repository calls.
func WithContext(ctx context.Context) Option {
	return func(w *Workspace) { w.ctx = ctx }
}

// Workspace is the single owner of session state.
type Workspace struct {
	repo      domain.NoteRepository
	sessions  auth.Provider
	passwords PasswordChanger
	hooks     Hooks
	prefs     settings.Store
	provider  search.Provider
	log       logging.Logger
	ctx       context.Context
	headless  bool

	owner          string
	signInRequired bool
	route          domain.Route

	store     Store
	filter    FilterState
	selection Selection
	nav       Navigator
	settings  SettingsCoordinator
	toast     *Notifier

	loadSeq    uint64
	appliedSeq uint64
	cancelLoad context.CancelFunc
	loading    bool
	loadReason loadReason
	fieldErr   error
	lastErr    error
}

// New returns a workspace over repo. sessions resolves the owner; it may be
// nil when the owner is set with SessionChanged.
func New(repo domain.NoteRepository, sessions auth.Provider, opts ...Option) *Workspace {
	w := &Workspace{
		repo:     repo,
		sessions: sessions,
		route:    domain.RouteActive,
		ctx:      context.Background(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.toast == nil {
		w.toast = NewNotifier(DefaultToastDuration)
	}
	w.toast.SetHeadless(w.headless)
	if w.provider == nil {
		w.provider = DefaultSearchProvider()
	}
	if w.log == nil {
		w.log = logging.GetGlobal()
	}
	if w.prefs == nil {
		w.prefs = settings.NewMemoryStore()
	}
	return w
}

// Init resolves the current session and loads its notes.
func (w *Workspace) Init() tea.Cmd {
	return w.ResolveSession()
}

// Apply applies a message produced by one of the workspace commands.
// Unknown messages are ignored.
func (w *Workspace) Apply(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NotesLoadedMsg:
		return w.applyLoad(msg)
	case NoteCreatedMsg:
		return w.applyCreate(msg)
	case NoteUpdatedMsg:
		return w.applyUpdate(msg)
	case NoteDeletedMsg:
		return w.applyDelete(msg)
	case ArchiveToggledMsg:
		return w.applyToggle(msg)
	case PasswordChangedMsg:
		return w.applyPasswordChange(msg)
	case SessionResolvedMsg:
		return w.applySession(msg)
	case ToastExpiredMsg:
		w.toast.Expire(msg)
	}
	return nil
}

// VisibleNotes returns the derived list. With settings open, filters and
// search are suppressed and the base list is shown.
func (w *Workspace) VisibleNotes() []domain.Note {
	if w.settings.open {
		return w.store.Base(w.route)
	}
	return Visible(&w.store, w.filter, w.route, w.provider)
}

// BaseNotes returns the collection of the current route.
func (w *Workspace) BaseNotes() []domain.Note { return w.store.Base(w.route) }

// Current returns the selected note.
func (w *Workspace) Current() (domain.Note, bool) { return w.selection.Current() }

// Creating reports whether a new note is being written.
func (w *Workspace) Creating() bool { return w.selection.Creating() }

// Screen returns the constrained-viewport screen.
func (w *Workspace) Screen() Screen { return w.nav.Screen() }

// Settings returns the settings overlay state.
func (w *Workspace) Settings() SettingsState { return w.settings.State() }

// Toast returns the notification slot.
func (w *Workspace) Toast() Toast { return w.toast.Current() }

// Route returns the current route.
func (w *Workspace) Route() domain.Route { return w.route }

// Tags returns the distinct tags of all notes.
func (w *Workspace) Tags() []string { return w.store.Tags() }

// TagFilter returns the active tag filter, or "".
func (w *Workspace) TagFilter() string { return w.filter.Tag }

// SearchQuery returns the active search query, or "".
func (w *Workspace) SearchQuery() string { return w.filter.Query }

// Owner returns the user ID the notes belong to.
func (w *Workspace) Owner() string { return w.owner }

// SignInRequired reports whether the last call failed for lack of a session.
func (w *Workspace) SignInRequired() bool { return w.signInRequired }

// Loading reports whether a load is in flight.
func (w *Workspace) Loading() bool { return w.loading }

// FieldError returns the last validation error, or nil. It is cleared by
// the next successful submit.
func (w *Workspace) FieldError() error { return w.fieldErr }

// LastError returns the most recent failure, or nil.
func (w *Workspace) LastError() error { return w.lastErr }

// Preferences returns the stored display preferences.
func (w *Workspace) Preferences() settings.Preferences { return settings.Read(w.prefs) }

// Active returns a copy of the active collection.
func (w *Workspace) Active() []domain.Note { return w.store.Active() }

// Archived returns a copy of the archived collection.
func (w *Workspace) Archived() []domain.Note { return w.store.Archived() }

// reconcile reapplies the selection rules to the visible list.
func (w *Workspace) reconcile() {
	w.selection.Reconcile(w.VisibleNotes())
}
