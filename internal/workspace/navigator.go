package workspace

// Screen is the full-screen view shown on a constrained viewport.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenNote
	ScreenSearch
	ScreenTag
	ScreenTaggedNotes
)

// String returns the screen name.
func (s Screen) String() string {
	switch s {
	case ScreenNote:
		return "note"
	case ScreenSearch:
		return "search"
	case ScreenTag:
		return "tag"
	case ScreenTaggedNotes:
		return "tagged_notes"
	default:
		return "home"
	}
}

// Navigator tracks the current screen and where the note screen returns to.
// Wide layouts never consult it.
type Navigator struct {
	screen    Screen
	returnTo  Screen
	hasReturn bool
}

// Screen returns the current screen.
func (n *Navigator) Screen() Screen { return n.screen }

// ReturnTo returns the screen HideNote goes back to, if one is recorded.
func (n *Navigator) ReturnTo() (Screen, bool) { return n.returnTo, n.hasReturn }

// ShowNote opens the note screen, remembering list screens to return to.
// Entered from anywhere else, it returns to Home.
func (n *Navigator) ShowNote() {
	switch n.screen {
	case ScreenTaggedNotes, ScreenTag, ScreenSearch:
		n.returnTo = n.screen
		n.hasReturn = true
	default:
		n.clearReturn()
	}
	n.screen = ScreenNote
}

// HideNote goes back to the recorded screen, or Home.
func (n *Navigator) HideNote() {
	n.screen = ScreenHome
	if n.hasReturn {
		n.screen = n.returnTo
	}
	n.clearReturn()
}

// ShowSearch opens the search screen. Screens do not stack.
func (n *Navigator) ShowSearch() {
	n.clearReturn()
	n.screen = ScreenSearch
}

// ShowTag opens the tag list.
func (n *Navigator) ShowTag() {
	n.clearReturn()
	n.screen = ScreenTag
}

// ShowTaggedNotes opens the notes of one tag.
//
// FIXME: returnTo is always Tag. Entering this screen from anywhere but the
// tag list breaks back navigation.
func (n *Navigator) ShowTaggedNotes() {
	n.returnTo = ScreenTag
	n.hasReturn = true
	n.screen = ScreenTaggedNotes
}

// HideSearch returns to Home.
func (n *Navigator) HideSearch() { n.screen = ScreenHome }

// HideTag returns to Home.
func (n *Navigator) HideTag() { n.screen = ScreenHome }

// HideTaggedNotes returns to Home.
func (n *Navigator) HideTaggedNotes() { n.screen = ScreenHome }

// Back hides the current screen. It reports false on Home.
func (n *Navigator) Back() bool {
	switch n.screen {
	case ScreenNote:
		n.HideNote()
	case ScreenSearch:
		n.HideSearch()
	case ScreenTag:
		n.HideTag()
	case ScreenTaggedNotes:
		n.HideTaggedNotes()
	default:
		return false
	}
	return true
}

func (n *Navigator) clearReturn() {
	n.returnTo = ScreenHome
	n.hasReturn = false
}
