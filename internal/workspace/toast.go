package workspace

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/notedeck/internal/domain"
)

// DefaultToastDuration is how long a toast stays visible.
const DefaultToastDuration = 5 * time.Second

// ToastKind tells success and the error kinds apart.
type ToastKind int

const (
	ToastSuccess ToastKind = iota
	ToastInfo
	ToastPersistenceError
	ToastValidationError
	ToastAuthError
)

// String returns the kind name.
func (k ToastKind) String() string {
	switch k {
	case ToastInfo:
		return "info"
	case ToastPersistenceError:
		return "persistence_error"
	case ToastValidationError:
		return "validation_error"
	case ToastAuthError:
		return "auth_error"
	default:
		return "success"
	}
}

// IsError reports whether the toast reports a failure.
func (k ToastKind) IsError() bool {
	return k >= ToastPersistenceError
}

// Toast is the read-only view of the notification slot.
type Toast struct {
	Visible     bool
	Message     string
	ActionLabel string
	Kind        ToastKind
	// Action is the route the action label leads to. Empty means none.
	Action domain.Route
}

// HasAction reports whether following the toast navigates somewhere.
func (t Toast) HasAction() bool { return t.Action != "" }

// ToastExpiredMsg is the timer tick of the toast with generation Gen.
type ToastExpiredMsg struct {
	Gen uint64
}

// Notifier holds a single auto-expiring toast. A newer toast replaces the
// visible one and restarts the timer; ticks of replaced toasts are ignored.
type Notifier struct {
	toast    Toast
	gen      uint64
	duration time.Duration
	headless bool
}

// NewNotifier returns a notifier whose toasts expire after d.
func NewNotifier(d time.Duration) *Notifier {
	if d <= 0 {
		d = DefaultToastDuration
	}
	return &Notifier{duration: d}
}

// SetHeadless disables expiry timers. Toasts stay until replaced or dismissed.
func (n *Notifier) SetHeadless(headless bool) { n.headless = headless }

// Duration returns the auto-hide delay.
func (n *Notifier) Duration() time.Duration { return n.duration }

// Current returns the toast slot.
func (n *Notifier) Current() Toast { return n.toast }

// Show replaces the toast and returns the command that expires it.
func (n *Notifier) Show(message, actionLabel string) tea.Cmd {
	return n.show(Toast{Message: message, ActionLabel: actionLabel, Kind: ToastInfo})
}

func (n *Notifier) show(t Toast) tea.Cmd {
	n.gen++
	t.Visible = true
	n.toast = t
	if n.headless {
		return nil
	}
	gen := n.gen
	return tea.Tick(n.duration, func(time.Time) tea.Msg {
		return ToastExpiredMsg{Gen: gen}
	})
}

// Dismiss hides the toast and invalidates its pending timer.
func (n *Notifier) Dismiss() {
	n.gen++
	n.toast = Toast{}
}

// Expire hides the toast when msg belongs to it. It reports whether it did.
func (n *Notifier) Expire(msg ToastExpiredMsg) bool {
	if msg.Gen != n.gen || !n.toast.Visible {
		return false
	}
	n.toast = Toast{}
	return true
}
