package workspace

import "github.com/cristianoliveira/notedeck/internal/domain"

// Selection is the current note and the create mode flag. While creating,
// the current note is an empty placeholder.
type Selection struct {
	current  *domain.Note
	creating bool
}

// Current returns the selected note.
func (s *Selection) Current() (domain.Note, bool) {
	if s.creating || s.current == nil {
		return domain.Note{}, false
	}
	return *s.current, true
}

// CurrentID returns the selected note's ID, or "".
func (s *Selection) CurrentID() string {
	if n, ok := s.Current(); ok {
		return n.ID
	}
	return ""
}

// Creating reports whether a new note is being written.
func (s *Selection) Creating() bool { return s.creating }

// Set selects n.
func (s *Selection) Set(n domain.Note) {
	s.current = &n
}

// Clear drops the selection.
func (s *Selection) Clear() { s.current = nil }

// BeginCreate switches to create mode with an empty placeholder.
func (s *Selection) BeginCreate() {
	s.creating = true
	s.current = nil
}

// EndCreate leaves create mode.
func (s *Selection) EndCreate() { s.creating = false }

// selectFirst selects the first of notes, or nothing.
func (s *Selection) selectFirst(notes []domain.Note) {
	if len(notes) == 0 {
		s.current = nil
		return
	}
	s.Set(notes[0])
}

// Reconcile applies the standing selection rules after a change of the
// visible list: create mode keeps the placeholder, and an empty selection
// takes the first visible note. Otherwise the selection is kept.
func (s *Selection) Reconcile(visible []domain.Note) {
	if s.creating {
		s.current = nil
		return
	}
	if s.current == nil && len(visible) > 0 {
		s.Set(visible[0])
	}
}

// Refresh swaps the selected note for its reloaded record, or clears the
// selection when the note is gone.
func (s *Selection) Refresh(store *Store) {
	if s.current == nil {
		return
	}
	if n, ok := store.Find(s.current.ID); ok {
		s.Set(n)
		return
	}
	s.current = nil
}
