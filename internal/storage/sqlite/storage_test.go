package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/cristianoliveira/notedeck/internal/domain"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "notes.db")
	s, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	return s
}

func TestNewSQLiteStorageRejectsEmptyPath(t *testing.T) {
	_, err := NewSQLiteStorage("  ")
	require.Error(t, err)
}

func TestCreateThenListRoundTrip(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	fields := domain.NoteFields{Title: "Weekly meeting notes", Tags: domain.Tags{"work", "x"}, Details: "agenda"}
	created, err := s.Create(ctx, "u1", fields)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.False(t, created.Archived)

	notes, err := s.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	require.Equal(t, fields.Title, notes[0].Title)
	require.Equal(t, fields.Tags, notes[0].Tags)
	require.Equal(t, fields.Details, notes[0].Details)
	require.Equal(t, "u1", notes[0].OwnerID)
	require.WithinDuration(t, created.CreatedAt, notes[0].CreatedAt, time.Microsecond)
}

func TestListNewestFirstAndScopedByOwner(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		_, err := s.Create(ctx, "u1", domain.NoteFields{Title: title})
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}
	_, err := s.Create(ctx, "u2", domain.NoteFields{Title: "other"})
	require.NoError(t, err)

	notes, err := s.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, notes, 3)
	require.Equal(t, "third", notes[0].Title)
	require.Equal(t, "first", notes[2].Title)
}

func TestUpdate(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	created, err := s.Create(ctx, "u1", domain.NoteFields{Title: "A"})
	require.NoError(t, err)

	updated, err := s.Update(ctx, "u1", created.ID, domain.NoteFields{Title: " B ", Tags: domain.Tags{"y"}, Details: "d"})
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, "B", updated.Title)
	require.Equal(t, domain.Tags{"y"}, updated.Tags)

	_, err = s.Update(ctx, "u2", created.ID, domain.NoteFields{Title: "stolen"})
	require.ErrorIs(t, err, domain.ErrNoteNotFound)

	_, err = s.Update(ctx, "u1", "", domain.NoteFields{Title: "x"})
	require.ErrorIs(t, err, domain.ErrInvalidNoteID)
}

func TestDelete(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	created, err := s.Create(ctx, "u1", domain.NoteFields{Title: "A"})
	require.NoError(t, err)

	_, err = s.Delete(ctx, "u2", created.ID)
	require.ErrorIs(t, err, domain.ErrNoteNotFound)

	deleted, err := s.Delete(ctx, "u1", created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, deleted.ID)

	notes, err := s.List(ctx, "u1")
	require.NoError(t, err)
	require.Empty(t, notes)

	_, err = s.Delete(ctx, "u1", created.ID)
	require.ErrorIs(t, err, domain.ErrNoteNotFound)
}

func TestSetArchivedToggleIsIdempotent(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	created, err := s.Create(ctx, "u1", domain.NoteFields{Title: "A"})
	require.NoError(t, err)

	archived, err := s.SetArchived(ctx, "u1", created.ID, !created.Archived)
	require.NoError(t, err)
	require.True(t, archived.Archived)

	restored, err := s.SetArchived(ctx, "u1", created.ID, !archived.Archived)
	require.NoError(t, err)
	require.Equal(t, created.Archived, restored.Archived)

	_, err = s.SetArchived(ctx, "u1", "missing", true)
	require.ErrorIs(t, err, domain.ErrNoteNotFound)
}

func TestUsers(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	user, err := s.CreateUser(ctx, domain.User{Email: " Me@Example.com ", PasswordHash: []byte("h"), Salt: []byte("s")})
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, "me@example.com", user.Email)

	_, err = s.CreateUser(ctx, domain.User{Email: "me@example.com", PasswordHash: []byte("h"), Salt: []byte("s")})
	require.ErrorIs(t, err, domain.ErrUserExists)

	byEmail, err := s.UserByEmail(ctx, "ME@example.com")
	require.NoError(t, err)
	require.Equal(t, user.ID, byEmail.ID)
	require.Equal(t, []byte("h"), byEmail.PasswordHash)

	require.NoError(t, s.UpdatePassword(ctx, user.ID, []byte("h2"), []byte("s2")))
	byID, err := s.UserByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, []byte("h2"), byID.PasswordHash)
	require.Equal(t, []byte("s2"), byID.Salt)

	_, err = s.UserByID(ctx, "nope")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
	require.ErrorIs(t, s.UpdatePassword(ctx, "nope", nil, nil), domain.ErrUserNotFound)
}

func TestListHonorsCancelledContext(t *testing.T) {
	s := newTestStorage(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.List(ctx, "u1")
	require.ErrorIs(t, err, context.Canceled)
}
