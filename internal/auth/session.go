package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cristianoliveira/notedeck/internal/config"
)

// ErrNoSession is returned when no session token is stored.
var ErrNoSession = errors.New("no session")

const (
	sessionFilename = "session.jwt"
	secretFilename  = "session.key"
)

// SessionFile stores the current session token on disk.
type SessionFile struct {
	path string
}

// NewSessionFile returns a session file at path.
func NewSessionFile(path string) *SessionFile {
	return &SessionFile{path: path}
}

// DefaultSessionPath returns state_dir/session.jwt.
func DefaultSessionPath() string {
	return filepath.Join(config.Get("state_dir", os.TempDir()), sessionFilename)
}

// Path returns the file location.
func (f *SessionFile) Path() string { return f.path }

// Read returns the stored token or ErrNoSession.
func (f *SessionFile) Read() (string, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return "", ErrNoSession
	}
	if err != nil {
		return "", fmt.Errorf("auth: read session: %w", err)
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNoSession
	}
	return token, nil
}

// Write replaces the stored token.
func (f *SessionFile) Write(token string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("auth: create session dir: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(token+"\n"), config.FileModePrivate); err != nil {
		return fmt.Errorf("auth: write session: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("auth: write session: %w", err)
	}
	return nil
}

// Remove deletes the stored token. A missing file is not an error.
func (f *SessionFile) Remove() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("auth: remove session: %w", err)
	}
	return nil
}

// LoadSecret returns the signing secret. session_secret wins; otherwise a
// random key is created once under state_dir and reused.
func LoadSecret() ([]byte, error) {
	if secret := config.Get("session_secret", ""); secret != "" {
		return []byte(secret), nil
	}
	path := filepath.Join(config.Get("state_dir", os.TempDir()), secretFilename)
	return loadOrCreateSecret(path)
}

func loadOrCreateSecret(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		key, decodeErr := hex.DecodeString(strings.TrimSpace(string(data)))
		if decodeErr == nil && len(key) >= 32 {
			return key, nil
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("auth: read secret: %w", err)
	}

	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("auth: generate secret: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("auth: create secret dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(hex.EncodeToString(key)), config.FileModePrivate); err != nil {
		return nil, fmt.Errorf("auth: write secret: %w", err)
	}
	return key, nil
}
