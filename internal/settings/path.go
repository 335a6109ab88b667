package settings

import (
	"os"
	"path/filepath"

	"github.com/cristianoliveira/notedeck/internal/config"
)

const preferencesFilename = "preferences" + config.FileExtTOML

// PreferencesPath returns the preferences file location. The
// preferences_path key overrides the default under config_dir.
func PreferencesPath() string {
	if override := config.Get("preferences_path", ""); override != "" {
		return override
	}
	return filepath.Join(resolveConfigDir(), preferencesFilename)
}

// resolveConfigDir returns the configured config directory,
// falling back to the XDG default if needed.
func resolveConfigDir() string {
	if configDir := config.Get("config_dir", ""); configDir != "" {
		return configDir
	}
	home, _ := os.UserHomeDir()
	xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfigHome == "" {
		xdgConfigHome = filepath.Join(home, ".config")
	}
	return filepath.Join(xdgConfigHome, "notedeck")
}
