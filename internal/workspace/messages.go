package workspace

import "github.com/cristianoliveira/notedeck/internal/domain"

// loadReason tells what to do with the selection once a load is applied.
type loadReason int

const (
	loadInitial loadReason = iota
	loadRoute
	loadRefetch
)

// NotesLoadedMsg carries the result of a List call issued with sequence Seq.
type NotesLoadedMsg struct {
	Seq    uint64
	Owner  string
	Notes  []domain.Note
	Err    error
	reason loadReason
}

// NoteCreatedMsg carries the result of a Create call.
type NoteCreatedMsg struct {
	Note domain.Note
	Err  error
}

// NoteUpdatedMsg carries the result of an Update call.
type NoteUpdatedMsg struct {
	Note domain.Note
	Err  error
}

// NoteDeletedMsg carries the result of a Delete call.
type NoteDeletedMsg struct {
	ID   string
	Note domain.Note
	Err  error
}

// ArchiveToggledMsg carries the result of a SetArchived call.
type ArchiveToggledMsg struct {
	ID   string
	Note domain.Note
	Err  error
}

// PasswordChangedMsg carries the result of a password change.
type PasswordChangedMsg struct {
	Err error
}

// SessionResolvedMsg carries the owner of the current session.
type SessionResolvedMsg struct {
	Owner string
	Err   error
}
