package auth

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	apperrors "github.com/cristianoliveira/notedeck/internal/errors"
	"github.com/cristianoliveira/notedeck/internal/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func newTestService(t *testing.T) (*Service, *memory.Storage) {
	t.Helper()
	store := memory.New()
	session := NewSessionFile(filepath.Join(t.TempDir(), "session.jwt"))
	return NewService(store, NewTokenIssuer(testSecret, time.Hour), session), store
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, salt, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.Len(t, salt, saltLength)
	assert.True(t, VerifyPassword("correct horse", hash, salt))
	assert.False(t, VerifyPassword("wrong horse", hash, salt))

	again, otherSalt, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again, "salts are random")
	assert.NotEqual(t, salt, otherSalt)
}

func TestValidatePasswordChange(t *testing.T) {
	tests := []struct {
		name                   string
		current, next, confirm string
		field                  string
	}{
		{"missing current", "", "newpassword", "newpassword", "current_password"},
		{"missing new", "oldpassword", "", "", "new_password"},
		{"too short", "oldpassword", "short", "short", "new_password"},
		{"mismatch", "oldpassword", "newpassword", "newpassw0rd", "confirm_password"},
		{"valid", "oldpassword", "newpassword", "newpassword", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePasswordChange(tt.current, tt.next, tt.confirm)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
			assert.Equal(t, tt.field, apperrors.FieldOf(err))
		})
	}
}

func TestTokenRoundTripAndExpiry(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, time.Minute)
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return now }

	token, err := issuer.Issue("user-1", "a@example.com")
	require.NoError(t, err)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "a@example.com", claims.Email)

	now = now.Add(2 * time.Minute)
	_, err = issuer.Parse(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenRejectsOtherSecret(t *testing.T) {
	token, err := NewTokenIssuer(testSecret, time.Hour).Issue("user-1", "")
	require.NoError(t, err)

	_, err = NewTokenIssuer([]byte("another-secret-another-secret-xx"), time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = NewTokenIssuer(testSecret, time.Hour).Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRegisterLoginLogout(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.OwnerID(ctx)
	assert.True(t, apperrors.IsAuth(err), "no session yet")

	sess, err := svc.Register(ctx, " Ada@Example.com ", "password1", "password1")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", sess.Email)

	owner, err := svc.OwnerID(ctx)
	require.NoError(t, err)
	assert.Equal(t, sess.UserID, owner)

	_, err = svc.Register(ctx, "ada@example.com", "password1", "password1")
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "email", apperrors.FieldOf(err))

	require.NoError(t, svc.Logout())
	_, err = svc.OwnerID(ctx)
	assert.True(t, apperrors.IsAuth(err))
	require.NoError(t, svc.Logout(), "logging out twice is fine")

	_, err = svc.Login(ctx, "ada@example.com", "wrong-password")
	assert.True(t, apperrors.IsAuth(err))
	_, err = svc.Login(ctx, "nobody@example.com", "password1")
	assert.True(t, apperrors.IsAuth(err))

	again, err := svc.Login(ctx, "ADA@example.com", "password1")
	require.NoError(t, err)
	assert.Equal(t, sess.UserID, again.UserID)
}

func TestRegisterValidation(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "not-an-email", "password1", "password1")
	assert.Equal(t, "email", apperrors.FieldOf(err))

	_, err = svc.Register(ctx, "a@example.com", "short", "short")
	assert.Equal(t, "new_password", apperrors.FieldOf(err))

	_, err = store.UserByEmail(ctx, "a@example.com")
	assert.Error(t, err, "nothing stored after a rejected sign up")
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	_, err := svc.Register(ctx, "a@example.com", "password1", "password1")
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, "password9", "password2", "password2")
	assert.Equal(t, "current_password", apperrors.FieldOf(err))

	require.NoError(t, svc.ChangePassword(ctx, "password1", "password2", "password2"))

	_, err = svc.Login(ctx, "a@example.com", "password1")
	assert.True(t, apperrors.IsAuth(err))
	_, err = svc.Login(ctx, "a@example.com", "password2")
	assert.NoError(t, err)
}

func TestChangePasswordRequiresSession(t *testing.T) {
	svc, _ := newTestService(t)
	err := svc.ChangePassword(context.Background(), "password1", "password2", "password2")
	assert.True(t, apperrors.IsAuth(err))
}

func TestSessionFilePermissions(t *testing.T) {
	f := NewSessionFile(filepath.Join(t.TempDir(), "nested", "session.jwt"))
	_, err := f.Read()
	assert.ErrorIs(t, err, ErrNoSession)

	require.NoError(t, f.Write("token"))
	info, err := os.Stat(f.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	token, err := f.Read()
	require.NoError(t, err)
	assert.Equal(t, "token", token)
}

func TestLoadOrCreateSecretIsStable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.key")
	first, err := loadOrCreateSecret(path)
	require.NoError(t, err)
	assert.Len(t, first, 32)

	second, err := loadOrCreateSecret(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestWatcherReportsSessionChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.jwt")
	w, events, err := WatchSession(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("a"), 0o600))
	require.NoError(t, os.WriteFile(path, []byte("b"), 0o600))

	select {
	case <-events:
	case <-time.After(3 * time.Second):
		t.Fatal("expected a session change event")
	}

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
	_, open := <-events
	for open {
		_, open = <-events
	}
}
