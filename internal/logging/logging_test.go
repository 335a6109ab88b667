package logging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cristianoliveira/notedeck/internal/config"
	"github.com/stretchr/testify/require"
)

func setupTest(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_STATE_HOME", tmp)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("NOTEDECK_ENV_FILE", filepath.Join(tmp, "none.env"))
	config.Load()
	return tmp
}

func lastEntry(t *testing.T, data []byte) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.NotEmpty(t, lines)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	return entry
}

func TestConfigFromGlobal(t *testing.T) {
	setupTest(t)
	t.Setenv("NOTEDECK_LOGGING_ENABLED", "true")
	t.Setenv("NOTEDECK_LOGGING_LEVEL", "warn")
	t.Setenv("NOTEDECK_LOGGING_MAX_FILES", "5")
	config.Load()

	cfg := FromGlobalConfig()
	require.True(t, cfg.Enabled)
	require.Equal(t, "warn", cfg.Level)
	require.Equal(t, 5, cfg.MaxFiles)
	require.Equal(t, filepath.Base(os.Args[0]), cfg.Command)
	require.Equal(t, os.Getpid(), cfg.PID)
}

func TestLogLevelMapping(t *testing.T) {
	setupTest(t)

	t.Setenv("NOTEDECK_DEBUG", "true")
	t.Setenv("NOTEDECK_QUIET", "true")
	t.Setenv("NOTEDECK_LOGGING_LEVEL", "info")
	config.Load()
	require.Equal(t, "debug", FromGlobalConfig().Level, "debug wins over quiet")

	t.Setenv("NOTEDECK_DEBUG", "false")
	config.Load()
	require.Equal(t, "error", FromGlobalConfig().Level)

	t.Setenv("NOTEDECK_QUIET", "false")
	config.Load()
	require.Equal(t, "info", FromGlobalConfig().Level)
}

func TestLogDir(t *testing.T) {
	tmp := setupTest(t)

	logDir, err := LogDir()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(tmp, "notedeck", "logs"), logDir)
	info, err := os.Stat(logDir)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0700), info.Mode().Perm())
}

func TestInitDisabled(t *testing.T) {
	logger, err := Init(Config{Enabled: false})
	require.NoError(t, err)
	require.IsType(t, noopLogger{}, logger)
	logger.Info("ignored")
	require.NoError(t, logger.Shutdown())
}

func TestInitEnabledCreatesFile(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Command = "list notes"
	cfg.Dir = dir

	logger, err := Init(cfg)
	require.NoError(t, err)
	logger.Info("hello", "note_id", "n1")
	require.NoError(t, logger.Shutdown())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	name := entries[0].Name()
	require.True(t, strings.HasPrefix(name, "notedeck_"))
	require.Contains(t, name, fmt.Sprintf("_PID%d_", os.Getpid()))
	require.True(t, strings.HasSuffix(name, "_list_notes.log"))

	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	entry := lastEntry(t, data)
	require.Equal(t, "hello", entry["msg"])
	require.Equal(t, "n1", entry["note_id"])
	require.Equal(t, "list notes", entry["command"])
}

func TestLevelsAndFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn")

	logger.Info("dropped")
	require.Empty(t, buf.String())

	logger.With("op", "load").Warn("slow", "owner", "u1")
	entry := lastEntry(t, buf.Bytes())
	require.Equal(t, "warn", entry["level"])
	require.Equal(t, "load", entry["op"])
	require.Equal(t, "u1", entry["owner"])
}

func TestRedaction(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "debug")

	logger.With("session_token", "abc").Info("login", "password", "hunter22", "user_email", "a@b.c")
	line := buf.String()
	require.Contains(t, line, `"password":"[REDACTED]"`)
	require.Contains(t, line, `"session_token":"[REDACTED]"`)
	require.Contains(t, line, `"user_email":"a@b.c"`)
	require.NotContains(t, line, "hunter22")
}

func TestRedactorSegments(t *testing.T) {
	r := newRedactor()
	tests := map[string]bool{
		"password":      true,
		"new-password":  true,
		"API_KEY":       true,
		"jwt":           true,
		"keyboard":      false,
		"note_id":       false,
		"authorization": false,
		"auth":          true,
	}
	for key, want := range tests {
		t.Run(key, func(t *testing.T) {
			require.Equal(t, want, r.isSensitive(key))
		})
	}
}

func TestRotationKeepsNewest(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 4; i++ {
		p := filepath.Join(dir, fmt.Sprintf("notedeck_%d.log", i))
		require.NoError(t, os.WriteFile(p, []byte("x"), 0600))
		mod := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(p, mod, mod))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.log"), []byte("x"), 0600))

	require.NoError(t, rotate(dir, 2))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	require.ElementsMatch(t, []string{"notedeck_2.log", "notedeck_3.log", "other.log"}, names)
}

func TestGlobalLogger(t *testing.T) {
	var buf bytes.Buffer
	SetGlobal(New(&buf, "info"))
	t.Cleanup(func() { require.NoError(t, ShutdownGlobal()) })

	Info("global", "k", 1)
	require.Contains(t, buf.String(), `"msg":"global"`)
	require.Empty(t, CurrentLogFile())
}
