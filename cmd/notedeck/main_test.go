package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/cristianoliveira/notedeck/internal/auth"
	"github.com/cristianoliveira/notedeck/internal/colors"
	"github.com/cristianoliveira/notedeck/internal/domain"
	apperrors "github.com/cristianoliveira/notedeck/internal/errors"
	"github.com/cristianoliveira/notedeck/internal/hooks"
	"github.com/cristianoliveira/notedeck/internal/logging"
	"github.com/cristianoliveira/notedeck/internal/storage/memory"
	"github.com/cristianoliveira/notedeck/internal/tui"
	"github.com/cristianoliveira/notedeck/internal/workspace"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPassword = "correct horse"

type harness struct {
	store *memory.Storage
	auth  *auth.Service
	out   *bytes.Buffer

	hooksDir string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	store := memory.New()
	tokens := auth.NewTokenIssuer([]byte("0123456789abcdef0123456789abcdef"), time.Hour)
	session := auth.NewSessionFile(filepath.Join(t.TempDir(), "session.jwt"))
	h := &harness{store: store, auth: auth.NewService(store, tokens, session), out: &bytes.Buffer{}}

	colors.SetOutput(h.out, h.out)
	t.Cleanup(func() { colors.SetOutput(os.Stdout, os.Stderr) })
	return h
}

func (h *harness) open(ctx context.Context) (*app, error) {
	a := &app{store: h.store, auth: h.auth}
	if h.hooksDir != "" {
		a.hooks = hooks.New(h.hooksDir, hooks.WithLogger(logging.Nop()))
	}
	return a, nil
}

// passwords makes the password prompt return pws in order.
func passwords(t *testing.T, pws ...string) {
	t.Helper()
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })
	readPassword = func(fd int) ([]byte, error) {
		require.NotEmpty(t, pws, "unexpected password prompt")
		pw := pws[0]
		pws = pws[1:]
		return []byte(pw), nil
	}
}

func run(t *testing.T, c *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&bytes.Buffer{})
	c.SetIn(strings.NewReader(""))
	c.SetArgs(args)
	err := c.Execute()
	return out.String(), err
}

func (h *harness) signup(t *testing.T) {
	t.Helper()
	passwords(t, testPassword, testPassword)
	_, err := run(t, NewSignupCmd(h.open), "--email", "ada@example.com")
	require.NoError(t, err)
}

func (h *harness) add(t *testing.T, args ...string) {
	t.Helper()
	_, err := run(t, NewAddCmd(h.open), args...)
	require.NoError(t, err)
}

func (h *harness) notes(t *testing.T) []domain.Note {
	t.Helper()
	sess, err := h.auth.Current()
	require.NoError(t, err)
	notes, err := h.store.List(context.Background(), sess.UserID)
	require.NoError(t, err)
	return notes
}

func TestAddAndList(t *testing.T) {
	h := newHarness(t)
	h.signup(t)

	h.add(t, "--title", "Standup", "--tags", "work, daily", "--body", "Talk about the release")
	h.add(t, "--title", "Groceries", "--tags", "home")
	assert.Contains(t, h.out.String(), workspace.MsgNoteCreated)

	out, err := run(t, NewListCmd(h.open))
	require.NoError(t, err)
	assert.Contains(t, out, "Standup")
	assert.Contains(t, out, "Groceries")
	assert.Contains(t, out, "work, daily")

	out, err = run(t, NewListCmd(h.open), "--tag", "home")
	require.NoError(t, err)
	assert.Contains(t, out, "Groceries")
	assert.NotContains(t, out, "Standup")

	out, err = run(t, NewListCmd(h.open), "--search", "RELEASE")
	require.NoError(t, err)
	assert.Contains(t, out, "Standup")
	assert.NotContains(t, out, "Groceries")
}

func TestListSearchMatchingATagListsEverything(t *testing.T) {
	h := newHarness(t)
	h.signup(t)
	h.add(t, "--title", "Standup", "--tags", "work")
	h.add(t, "--title", "Groceries")

	out, err := run(t, NewListCmd(h.open), "--search", "wor")
	require.NoError(t, err)
	assert.Contains(t, out, "Standup")
	assert.Contains(t, out, "Groceries")
}

func TestListRejectsUnknownMatcher(t *testing.T) {
	h := newHarness(t)
	h.signup(t)
	_, err := run(t, NewListCmd(h.open), "--search", "x", "--match", "fuzzy")
	assert.Error(t, err)
}

func TestListEmpty(t *testing.T) {
	h := newHarness(t)
	h.signup(t)
	out, err := run(t, NewListCmd(h.open))
	require.NoError(t, err)
	assert.Equal(t, "No notes found\n", out)
}

func TestCommandsRequireSession(t *testing.T) {
	h := newHarness(t)
	_, err := run(t, NewListCmd(h.open))
	require.Error(t, err)
	assert.True(t, apperrors.IsAuth(err))
}

func TestAddRequiresTitle(t *testing.T) {
	h := newHarness(t)
	h.signup(t)
	_, err := run(t, NewAddCmd(h.open), "--title", "   ")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "title", apperrors.FieldOf(err))
	assert.Empty(t, h.notes(t))
}

func TestEditByPrefixKeepsOtherFields(t *testing.T) {
	h := newHarness(t)
	h.signup(t)
	h.add(t, "--title", "Draft", "--tags", "ideas", "--body", "keep me")
	id := h.notes(t)[0].ID

	_, err := run(t, NewEditCmd(h.open), id[:6], "--title", "Final")
	require.NoError(t, err)

	n := h.notes(t)[0]
	assert.Equal(t, "Final", n.Title)
	assert.Equal(t, domain.Tags{"ideas"}, n.Tags)
	assert.Equal(t, "keep me", n.Details)
}

func TestEditUnknownNote(t *testing.T) {
	h := newHarness(t)
	h.signup(t)
	_, err := run(t, NewEditCmd(h.open), "nope", "--title", "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoteNotFound)
}

func TestArchiveToggles(t *testing.T) {
	h := newHarness(t)
	h.signup(t)
	h.add(t, "--title", "Old")
	id := h.notes(t)[0].ID

	_, err := run(t, NewArchiveCmd(h.open), id)
	require.NoError(t, err)
	assert.Contains(t, h.out.String(), workspace.MsgNoteArchived)

	out, err := run(t, NewListCmd(h.open), "--archived")
	require.NoError(t, err)
	assert.Contains(t, out, "Old")
	out, err = run(t, NewListCmd(h.open))
	require.NoError(t, err)
	assert.NotContains(t, out, "Old")

	_, err = run(t, NewArchiveCmd(h.open), id)
	require.NoError(t, err)
	assert.Contains(t, h.out.String(), workspace.MsgNoteRestored)
	assert.False(t, h.notes(t)[0].Archived)
}

func TestRemove(t *testing.T) {
	h := newHarness(t)
	h.signup(t)
	h.add(t, "--title", "Gone")
	id := h.notes(t)[0].ID

	_, err := run(t, NewRemoveCmd(h.open), id)
	require.NoError(t, err)
	assert.Empty(t, h.notes(t))
	assert.Contains(t, h.out.String(), workspace.MsgNoteDeleted)
}

func TestTagsCountsAllNotes(t *testing.T) {
	h := newHarness(t)
	h.signup(t)
	h.add(t, "--title", "A", "--tags", "work")
	h.add(t, "--title", "B", "--tags", "work,home")
	_, err := run(t, NewArchiveCmd(h.open), h.notes(t)[0].ID)
	require.NoError(t, err)

	out, err := run(t, NewTagsCmd(h.open))
	require.NoError(t, err)
	assert.Regexp(t, `work\s+2`, out)
	assert.Regexp(t, `home\s+1`, out)
}

func TestLoginLogout(t *testing.T) {
	h := newHarness(t)
	h.signup(t)

	_, err := run(t, NewLogoutCmd(h.open))
	require.NoError(t, err)
	_, err = h.auth.Current()
	assert.True(t, apperrors.IsAuth(err))

	passwords(t, "wrong password")
	_, err = run(t, NewLoginCmd(h.open), "--email", "ada@example.com")
	require.Error(t, err)
	assert.True(t, apperrors.IsAuth(err))

	passwords(t, testPassword)
	_, err = run(t, NewLoginCmd(h.open), "--email", "ADA@example.com")
	require.NoError(t, err)
	assert.Contains(t, h.out.String(), "Signed in as ada@example.com")
}

func TestSignupPromptsForEmail(t *testing.T) {
	h := newHarness(t)
	passwords(t, testPassword, testPassword)
	c := NewSignupCmd(h.open)
	c.SetIn(strings.NewReader("grace@example.com\n"))
	c.SetOut(&bytes.Buffer{})
	c.SetErr(&bytes.Buffer{})
	c.SetArgs(nil)
	require.NoError(t, c.Execute())

	sess, err := h.auth.Current()
	require.NoError(t, err)
	assert.Equal(t, "grace@example.com", sess.Email)
}

func TestPasswd(t *testing.T) {
	h := newHarness(t)
	h.signup(t)

	passwords(t, testPassword, "new password", "other password")
	_, err := run(t, NewPasswdCmd(h.open))
	require.Error(t, err)
	assert.Equal(t, "confirm_password", apperrors.FieldOf(err))

	passwords(t, testPassword, "new password", "new password")
	_, err = run(t, NewPasswdCmd(h.open))
	require.NoError(t, err)
	assert.Contains(t, h.out.String(), workspace.MsgPasswordChanged)

	passwords(t, "new password")
	_, err = run(t, NewLoginCmd(h.open), "--email", "ada@example.com")
	assert.NoError(t, err)
}

func TestTUICommandWiring(t *testing.T) {
	h := newHarness(t)
	h.signup(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	orig := runTUI
	t.Cleanup(func() { runTUI = orig })
	var route domain.Route
	var opts tui.Options
	runTUI = func(ctx context.Context, ws *workspace.Workspace, o tui.Options) error {
		route, opts = ws.Route(), o
		return nil
	}

	_, err := run(t, NewTUICmd(h.open), "--archived")
	require.NoError(t, err)
	assert.Equal(t, domain.RouteArchived, route)
	assert.Positive(t, opts.CompactWidth)
	assert.NotNil(t, opts.SessionEvents)
}

func TestAddRunsPostCreateHook(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("hooks are shell scripts")
	}
	h := newHarness(t)
	h.signup(t)
	h.hooksDir = t.TempDir()
	out := filepath.Join(t.TempDir(), "created")
	require.NoError(t, os.MkdirAll(filepath.Join(h.hooksDir, hooks.PostCreate), 0755))
	script := "#!/bin/sh\necho \"$NOTEDECK_NOTE_TITLE\" > \"" + out + "\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(h.hooksDir, hooks.PostCreate, "record.sh"), []byte(script), 0755))

	h.add(t, "--title", "Hooked")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "Hooked\n", string(data))
}

func TestVersion(t *testing.T) {
	out, err := run(t, NewVersionCmd())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "notedeck version "))

	out, err = run(t, NewVersionCmd(), "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "go: go")
}
