package workspace

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/notedeck/internal/domain"
	apperrors "github.com/cristianoliveira/notedeck/internal/errors"
	"github.com/cristianoliveira/notedeck/internal/hooks"
)

// Toast texts.
const (
	MsgNoteCreated     = "New note added successfully"
	MsgNoteUpdated     = "Note updated successfully"
	MsgNoteDeleted     = "Note permanently deleted."
	MsgNoteArchived    = "Note archived."
	MsgNoteRestored    = "Note restored to active notes."
	MsgPasswordChanged = "Password changed successfully!"
	MsgSignIn          = "Please sign in to continue"

	MsgCreateFailed      = "Error saving note"
	MsgUpdateFailed      = "Error updating note"
	MsgDeleteFailed      = "Error deleting note"
	MsgArchiveFailed     = "Error archiving note"
	MsgLoadFailed        = "Error loading notes"
	MsgPasswordFailed    = "Error changing password"
	MsgPreferencesFailed = "Error saving preferences"

	LabelArchivedNotes = "Archived Notes"
	LabelAllNotes      = "All Notes"
)

var errNoSession = errors.New("no active session")

// Load fetches every note of the owner. It supersedes any load in flight.
func (w *Workspace) Load() tea.Cmd {
	return w.startLoad(loadInitial)
}

func (w *Workspace) startLoad(reason loadReason) tea.Cmd {
	if w.owner == "" {
		return w.fail("load", MsgLoadFailed, apperrors.Auth("load", errNoSession))
	}
	if w.cancelLoad != nil {
		w.cancelLoad()
	}
	ctx, cancel := context.WithCancel(w.ctx)
	w.cancelLoad = cancel
	w.loadSeq++
	w.loading = true
	w.loadReason = reason
	seq, owner, repo := w.loadSeq, w.owner, w.repo
	w.log.Debug("load issued", "seq", seq, "owner", owner)

	return func() tea.Msg {
		notes, err := repo.List(ctx, owner)
		if err == nil && ctx.Err() != nil {
			err = ctx.Err()
		}
		return NotesLoadedMsg{Seq: seq, Owner: owner, Notes: notes, Err: err, reason: reason}
	}
}

func (w *Workspace) applyLoad(msg NotesLoadedMsg) tea.Cmd {
	if msg.Seq <= w.appliedSeq || msg.Owner != w.owner {
		w.log.Debug("stale load dropped", "seq", msg.Seq, "applied", w.appliedSeq)
		return nil
	}
	if msg.Seq == w.loadSeq {
		w.loading = false
		if w.cancelLoad != nil {
			w.cancelLoad()
			w.cancelLoad = nil
		}
	}
	if msg.Err != nil {
		return w.fail("load", MsgLoadFailed, msg.Err)
	}

	w.appliedSeq = msg.Seq
	w.signInRequired = false
	w.store.Replace(msg.Notes)
	if msg.reason == loadRefetch && !w.selection.Creating() {
		w.selection.selectFirst(w.store.Base(w.route))
	} else {
		w.selection.Refresh(&w.store)
	}
	w.reconcile()
	w.log.Debug("load applied", "seq", msg.Seq, "active", len(w.store.active), "archived", len(w.store.archived))
	return nil
}

// Create validates fields and stores a new note. Invalid fields never reach
// the repository.
func (w *Workspace) Create(fields domain.NoteFields) tea.Cmd {
	fields = fields.Normalize()
	if err := fields.Validate("create"); err != nil {
		return w.fail("create", MsgCreateFailed, err)
	}
	if w.owner == "" {
		return w.fail("create", MsgCreateFailed, apperrors.Auth("create", errNoSession))
	}
	w.fieldErr = nil
	ctx, owner, repo, after := w.ctx, w.owner, w.repo, w.afterChange()
	return func() tea.Msg {
		n, err := repo.Create(ctx, owner, fields)
		if err == nil {
			after(ctx, hooks.PostCreate, n)
		}
		return NoteCreatedMsg{Note: n, Err: err}
	}
}

func (w *Workspace) applyCreate(msg NoteCreatedMsg) tea.Cmd {
	if msg.Err != nil {
		return w.fail("create", MsgCreateFailed, msg.Err)
	}
	w.store.Prepend(msg.Note)
	w.selection.EndCreate()
	w.selection.Set(msg.Note)
	w.fieldErr = nil
	w.leaveNoteScreen()
	w.reconcile()
	w.log.Info("note created", "note_id", msg.Note.ID)
	return tea.Batch(w.notify(Toast{Message: MsgNoteCreated, Kind: ToastSuccess}), w.invalidateLoads())
}

// Update validates fields and replaces the editable part of note id.
func (w *Workspace) Update(id string, fields domain.NoteFields) tea.Cmd {
	fields = fields.Normalize()
	if err := fields.Validate("update"); err != nil {
		return w.fail("update", MsgUpdateFailed, err)
	}
	if id == "" {
		return w.fail("update", MsgUpdateFailed, apperrors.Persistence("update", domain.ErrInvalidNoteID))
	}
	if w.owner == "" {
		return w.fail("update", MsgUpdateFailed, apperrors.Auth("update", errNoSession))
	}
	w.fieldErr = nil
	ctx, owner, repo, after := w.ctx, w.owner, w.repo, w.afterChange()
	return func() tea.Msg {
		n, err := repo.Update(ctx, owner, id, fields)
		if err == nil {
			after(ctx, hooks.PostUpdate, n)
		}
		return NoteUpdatedMsg{Note: n, Err: err}
	}
}

func (w *Workspace) applyUpdate(msg NoteUpdatedMsg) tea.Cmd {
	if msg.Err != nil {
		return w.fail("update", MsgUpdateFailed, msg.Err)
	}
	w.store.ReplaceByID(msg.Note)
	w.selection.Set(msg.Note)
	w.fieldErr = nil
	w.leaveNoteScreen()
	w.reconcile()
	w.log.Info("note updated", "note_id", msg.Note.ID)
	return tea.Batch(w.notify(Toast{Message: MsgNoteUpdated, Kind: ToastSuccess}), w.invalidateLoads())
}

// Remove deletes note id. If it was selected, the first note of the base
// list is selected next, even under a filter.
func (w *Workspace) Remove(id string) tea.Cmd {
	if w.owner == "" {
		return w.fail("delete", MsgDeleteFailed, apperrors.Auth("delete", errNoSession))
	}
	ctx, owner, repo, after := w.ctx, w.owner, w.repo, w.afterChange()
	return func() tea.Msg {
		n, err := repo.Delete(ctx, owner, id)
		if err == nil {
			after(ctx, hooks.PostDelete, n)
		}
		return NoteDeletedMsg{ID: id, Note: n, Err: err}
	}
}

func (w *Workspace) applyDelete(msg NoteDeletedMsg) tea.Cmd {
	if msg.Err != nil {
		return w.fail("delete", MsgDeleteFailed, msg.Err)
	}
	wasCurrent := w.selection.CurrentID() == msg.ID
	w.store.Remove(msg.ID)
	if wasCurrent {
		w.selection.selectFirst(w.store.Base(w.route))
	}
	w.reconcile()
	w.log.Info("note deleted", "note_id", msg.ID)
	return tea.Batch(w.notify(Toast{Message: MsgNoteDeleted, Kind: ToastSuccess}), w.invalidateLoads())
}

// ToggleArchive flips the archived flag of note id, then reloads all notes
// and selects the first note of the current route.
func (w *Workspace) ToggleArchive(id string) tea.Cmd {
	n, ok := w.store.Find(id)
	if !ok {
		return w.fail("archive", MsgArchiveFailed, apperrors.Persistence("archive", fmt.Errorf("%s: %w", id, domain.ErrNoteNotFound)))
	}
	if w.owner == "" {
		return w.fail("archive", MsgArchiveFailed, apperrors.Auth("archive", errNoSession))
	}
	ctx, owner, repo, after, archived := w.ctx, w.owner, w.repo, w.afterChange(), !n.Archived
	return func() tea.Msg {
		updated, err := repo.SetArchived(ctx, owner, id, archived)
		if err == nil {
			point := hooks.PostRestore
			if updated.Archived {
				point = hooks.PostArchive
			}
			after(ctx, point, updated)
		}
		return ArchiveToggledMsg{ID: id, Note: updated, Err: err}
	}
}

func (w *Workspace) applyToggle(msg ArchiveToggledMsg) tea.Cmd {
	if msg.Err != nil {
		return w.fail("archive", MsgArchiveFailed, msg.Err)
	}
	w.store.ReplaceByID(msg.Note)
	w.dropPendingLoads()
	w.leaveNoteScreen()
	w.log.Info("note archive toggled", "note_id", msg.ID, "archived", msg.Note.Archived)

	t := Toast{Message: MsgNoteRestored, ActionLabel: LabelAllNotes, Kind: ToastSuccess, Action: domain.RouteActive}
	if msg.Note.Archived {
		t = Toast{Message: MsgNoteArchived, ActionLabel: LabelArchivedNotes, Kind: ToastSuccess, Action: domain.RouteArchived}
	}
	return tea.Batch(w.notify(t), w.startLoad(loadRefetch))
}

// dropPendingLoads discards every load issued before a stored change, so a
// listing taken before the change can never replace the collections after
// it. It reports whether a load was in flight.
func (w *Workspace) dropPendingLoads() bool {
	inFlight := w.loading
	if w.cancelLoad != nil {
		w.cancelLoad()
		w.cancelLoad = nil
	}
	w.appliedSeq = w.loadSeq
	w.loading = false
	if inFlight {
		w.log.Debug("pending load dropped", "seq", w.loadSeq)
	}
	return inFlight
}

// invalidateLoads drops pending loads and reissues the one in flight, if
// any, since its result may be the first listing of the session.
func (w *Workspace) invalidateLoads() tea.Cmd {
	if !w.dropPendingLoads() {
		return nil
	}
	return w.startLoad(w.loadReason)
}

// afterChange returns the hook call made inside commands, off the update
// loop. It never touches workspace state.
func (w *Workspace) afterChange() func(ctx context.Context, point string, n domain.Note) {
	hk, log := w.hooks, w.log
	return func(ctx context.Context, point string, n domain.Note) {
		if hk == nil {
			return
		}
		if err := hk.Run(ctx, point, hooks.NoteEnv(n)); err != nil {
			log.Warn("note hook failed", "point", point, "note_id", n.ID, "error", err)
		}
	}
}

func (w *Workspace) leaveNoteScreen() {
	if w.nav.Screen() == ScreenNote {
		w.nav.HideNote()
	}
}

// fail records err and shows the toast for its kind. Cancelled calls are
// dropped.
func (w *Workspace) fail(op, text string, err error) tea.Cmd {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	switch apperrors.KindOf(err) {
	case apperrors.KindAuth:
		w.lastErr = err
		w.signInRequired = true
		w.log.Warn("sign in required", "op", op, "error", err)
		return w.notify(Toast{Message: MsgSignIn, Kind: ToastAuthError})
	case apperrors.KindValidation:
		w.lastErr = err
		w.fieldErr = err
		return w.notify(Toast{Message: apperrors.MessageOf(err), Kind: ToastValidationError})
	case apperrors.KindUnknown:
		err = apperrors.Persistence(op, err)
	}
	w.lastErr = err
	w.log.Warn("repository call failed", "op", op, "owner", w.owner, "error", err)
	return w.notify(Toast{Message: text, Kind: ToastPersistenceError})
}
