package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cristianoliveira/notedeck/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupConfig(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmp, "state"))
	t.Setenv("NOTEDECK_ENV_FILE", filepath.Join(tmp, "none.env"))
	config.Load()
	return tmp
}

func TestFileStoreRoundTrip(t *testing.T) {
	tmp := setupConfig(t)

	s, err := OpenDefault()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(tmp, "notedeck", "preferences.toml"), s.Path())

	_, ok := s.Get(KeyColorTheme)
	require.False(t, ok)

	require.NoError(t, s.Set(KeyColorTheme, "dark"))
	require.NoError(t, s.Set(KeyFontTheme, "mono"))

	reopened, err := Open(s.Path())
	require.NoError(t, err)
	got, ok := reopened.Get(KeyColorTheme)
	require.True(t, ok)
	require.Equal(t, "dark", got)
	require.Equal(t, []string{KeyColorTheme, KeyFontTheme}, reopened.Keys())

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	require.Contains(t, string(data), "font_theme = 'mono'")
}

func TestOpenRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	require.NoError(t, os.WriteFile(path, []byte("not = [valid"), 0644))

	_, err := Open(path)
	require.Error(t, err)
}

func TestSetRollsBackOnWriteFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	s, err := Open(filepath.Join(blocker, "prefs.toml"))
	require.NoError(t, err)
	require.Error(t, s.Set(KeyColorTheme, "dark"))
	_, ok := s.Get(KeyColorTheme)
	require.False(t, ok)
}

func TestPreferencesPathOverride(t *testing.T) {
	setupConfig(t)
	custom := filepath.Join(t.TempDir(), "p.toml")
	t.Setenv("NOTEDECK_PREFERENCES_PATH", custom)
	config.Load()

	require.Equal(t, custom, PreferencesPath())
}

func TestNormalize(t *testing.T) {
	setupConfig(t)

	assert.Equal(t, ColorDark, NormalizeColorTheme(" Dark "))
	assert.Equal(t, ColorSystem, NormalizeColorTheme("neon"))
	assert.Equal(t, FontSerif, NormalizeFontTheme("SERIF"))
	assert.Equal(t, FontSans, NormalizeFontTheme(""))
}

func TestNormalizeColorThemeUsesConfiguredDefault(t *testing.T) {
	setupConfig(t)
	t.Setenv("NOTEDECK_COLOR_THEME", "light")
	config.Load()

	assert.Equal(t, ColorLight, NormalizeColorTheme(""))
}

func TestRead(t *testing.T) {
	setupConfig(t)
	m := NewMemoryStore()
	require.NoError(t, m.Set(KeyFontTheme, "mono"))

	assert.Equal(t, Preferences{Color: ColorSystem, Font: FontMono}, Read(m))
}
