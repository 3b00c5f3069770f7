package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"go.uber.org/zap"

	"github.com/kmorris/wifitester/internal/logging"
)

const (
	appName      = "wifitester"
	settingsFile = "settings.json"
)

// Mutex for thread-safe file operations
var fileMutex sync.Mutex

// LogLevel is the persisted logging verbosity. The spelling follows the
// settings file schema, not zap's.
type LogLevel string

const (
	LogDebug   LogLevel = "DEBUG"
	LogInfo    LogLevel = "INFO"
	LogWarning LogLevel = "WARNING"
	LogError   LogLevel = "ERROR"
)

// Valid reports whether l is one of the recognized levels.
func (l LogLevel) Valid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarning, LogError:
		return true
	}
	return false
}

// Theme selects the color palette for the terminal UI.
type Theme string

const (
	ThemeDark   Theme = "dark"
	ThemeLight  Theme = "light"
	ThemeSystem Theme = "system"
)

// Valid reports whether t is one of the recognized themes.
func (t Theme) Valid() bool {
	switch t {
	case ThemeDark, ThemeLight, ThemeSystem:
		return true
	}
	return false
}

// Settings holds all user preferences. Field names and JSON keys are fixed
// by the on-disk schema; renaming a key orphans existing settings files.
type Settings struct {
	ScanTimeout        int      `json:"scan_timeout"`       // seconds
	AutoRefresh        bool     `json:"auto_refresh"`
	RefreshInterval    int      `json:"refresh_interval"`   // seconds
	ShowHiddenNetworks bool     `json:"show_hidden_networks"`
	SoundEnabled       bool     `json:"sound_enabled"`
	LogLevel           LogLevel `json:"log_level"`
	Theme              Theme    `json:"theme"`
	DefaultInterface   string   `json:"default_interface"` // "" selects automatically
}

// Defaults returns the factory settings.
func Defaults() Settings {
	return Settings{
		ScanTimeout:        15,
		AutoRefresh:        true,
		RefreshInterval:    30,
		ShowHiddenNetworks: true,
		SoundEnabled:       false,
		LogLevel:           LogInfo,
		Theme:              ThemeDark,
		DefaultInterface:   "",
	}
}

// ConfigDir returns the OS-appropriate configuration directory for the tool.
// This follows platform conventions:
//   - Linux: $XDG_CONFIG_HOME/wifitester or $HOME/.config/wifitester
//   - macOS: $HOME/.config/wifitester (following XDG convention on macOS)
//   - Windows: %LOCALAPPDATA%\wifitester
func ConfigDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			// Fallback to USERPROFILE\AppData\Local if LOCALAPPDATA not set
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", errors.New("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			baseDir = filepath.Join(userProfile, "AppData", "Local", appName)
		} else {
			baseDir = filepath.Join(localAppData, appName)
		}

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, ".config", appName)

	default:
		// Linux and other Unix-like systems: XDG_CONFIG_HOME or $HOME/.config
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome != "" {
			baseDir = filepath.Join(xdgConfigHome, appName)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("cannot determine home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".config", appName)
		}
	}

	return baseDir, nil
}

// Path returns the full path to the settings file.
func Path() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, settingsFile), nil
}

// Load reads settings from disk. It never returns an error: a missing file
// yields the defaults, and a malformed file is logged and replaced by the
// defaults in memory. Valid files are merged key by key over the defaults.
func Load() Settings {
	path, err := Path()
	if err != nil {
		logging.Warn("cannot resolve settings path, using defaults", zap.Error(err))
		return Defaults()
	}
	return loadFrom(path)
}

// loadFrom performs the actual load and merge. Split out so tests can point
// it at a fixture file instead of the real config directory.
func loadFrom(path string) Settings {
	s := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Warn("cannot read settings file, using defaults",
				zap.String("path", path),
				zap.Error(err),
			)
		}
		return s
	}

	// Decoding into a defaults-initialized value gives key-by-key merge:
	// keys absent from the file keep their default values.
	if err := json.Unmarshal(data, &s); err != nil {
		logging.Warn("settings file is malformed, using defaults",
			zap.String("path", path),
			zap.Error(err),
		)
		return Defaults()
	}

	s.normalize()
	return s
}

// normalize replaces unrecognized enum values with their defaults so the
// rest of the program never sees an out-of-range level or theme.
func (s *Settings) normalize() {
	def := Defaults()
	if !s.LogLevel.Valid() {
		logging.Warn("unknown log_level in settings, using default",
			zap.String("log_level", string(s.LogLevel)),
		)
		s.LogLevel = def.LogLevel
	}
	if !s.Theme.Valid() {
		logging.Warn("unknown theme in settings, using default",
			zap.String("theme", string(s.Theme)),
		)
		s.Theme = def.Theme
	}
}

// Validate checks ranges and enums before a save. The returned error names
// the offending setting so the dialog can point the user at it.
func (s Settings) Validate() error {
	if s.ScanTimeout < 1 {
		return fmt.Errorf("scan_timeout must be a positive number of seconds, got %d", s.ScanTimeout)
	}
	if s.RefreshInterval < 1 {
		return fmt.Errorf("refresh_interval must be a positive number of seconds, got %d", s.RefreshInterval)
	}
	if !s.LogLevel.Valid() {
		return fmt.Errorf("log_level must be one of DEBUG, INFO, WARNING, ERROR, got %q", s.LogLevel)
	}
	if !s.Theme.Valid() {
		return fmt.Errorf("theme must be one of dark, light, system, got %q", s.Theme)
	}
	return nil
}

// Save persists the settings to disk.
// Performs an atomic write to prevent corruption on crash.
func (s Settings) Save() error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	if err := s.Validate(); err != nil {
		return err
	}

	path, err := Path()
	if err != nil {
		return fmt.Errorf("failed to get settings path: %w", err)
	}
	return s.saveTo(path)
}

// saveTo writes the settings to the given path. Split out for tests.
func (s Settings) saveTo(path string) error {
	// Create directory with user-only permissions (0700)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	data = append(data, '\n')

	// Write to temporary file first (atomic write)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary settings file: %w", err)
	}

	// Atomic rename (this is atomic on all platforms)
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save settings file: %w", err)
	}

	return nil
}
