package memory

import (
	"context"
	"testing"
	"time"

	"github.com/cristianoliveira/notedeck/internal/domain"
	"github.com/stretchr/testify/require"
)

func steppingClock() func() time.Time {
	t := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Minute)
		return t
	}
}

func TestCreateListRoundTrip(t *testing.T) {
	s := New(WithClock(steppingClock()))
	ctx := context.Background()

	fields := domain.NoteFields{Title: "A", Tags: domain.Tags{"x", "y"}, Details: "body"}
	_, err := s.Create(ctx, "u1", fields)
	require.NoError(t, err)
	_, err = s.Create(ctx, "u1", domain.NoteFields{Title: "B"})
	require.NoError(t, err)
	_, err = s.Create(ctx, "u2", domain.NoteFields{Title: "C"})
	require.NoError(t, err)

	notes, err := s.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, notes, 2)
	require.Equal(t, "B", notes[0].Title)
	require.Equal(t, fields.Tags, notes[1].Tags)
	require.Equal(t, fields.Details, notes[1].Details)
}

func TestReturnedNotesAreCopies(t *testing.T) {
	s := New()
	ctx := context.Background()
	created, err := s.Create(ctx, "u1", domain.NoteFields{Title: "A", Tags: domain.Tags{"x"}})
	require.NoError(t, err)

	created.Tags[0] = "mutated"
	notes, err := s.List(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, domain.Tags{"x"}, notes[0].Tags)
}

func TestOwnerScoping(t *testing.T) {
	s := New()
	ctx := context.Background()
	n, err := s.Create(ctx, "u1", domain.NoteFields{Title: "A"})
	require.NoError(t, err)

	_, err = s.Update(ctx, "u2", n.ID, domain.NoteFields{Title: "B"})
	require.ErrorIs(t, err, domain.ErrNoteNotFound)
	_, err = s.SetArchived(ctx, "u2", n.ID, true)
	require.ErrorIs(t, err, domain.ErrNoteNotFound)
	_, err = s.Delete(ctx, "u2", n.ID)
	require.ErrorIs(t, err, domain.ErrNoteNotFound)
	_, err = s.Delete(ctx, "u1", "")
	require.ErrorIs(t, err, domain.ErrInvalidNoteID)
}

func TestCancelledContext(t *testing.T) {
	s := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.List(ctx, "u1")
	require.ErrorIs(t, err, context.Canceled)
	_, err = s.Create(ctx, "u1", domain.NoteFields{Title: "A"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestUsers(t *testing.T) {
	s := New()
	ctx := context.Background()
	u, err := s.CreateUser(ctx, domain.User{Email: "A@b.c"})
	require.NoError(t, err)

	_, err = s.CreateUser(ctx, domain.User{Email: "a@B.c"})
	require.ErrorIs(t, err, domain.ErrUserExists)

	got, err := s.UserByEmail(ctx, "a@b.c")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)

	require.NoError(t, s.UpdatePassword(ctx, u.ID, []byte("h"), []byte("s")))
	got, err = s.UserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, []byte("h"), got.PasswordHash)
}
