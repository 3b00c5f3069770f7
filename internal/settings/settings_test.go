package settings

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestConfigDir(t *testing.T) {
	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() error = %v", err)
	}

	if dir == "" {
		t.Error("ConfigDir() returned empty string")
	}

	if !strings.Contains(dir, "wifitester") {
		t.Errorf("ConfigDir() = %v, should contain 'wifitester'", dir)
	}

	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(dir, "AppData") && !strings.Contains(dir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", dir)
		}
	case "darwin", "linux":
		if !strings.Contains(dir, ".config") {
			t.Errorf("Unix config dir should contain '.config', got: %v", dir)
		}
	}
}

func TestPath(t *testing.T) {
	path, err := Path()
	if err != nil {
		t.Fatalf("Path() error = %v", err)
	}

	if filepath.Base(path) != "settings.json" {
		t.Errorf("Path() should end with 'settings.json', got: %v", path)
	}
}

func TestDefaults(t *testing.T) {
	def := Defaults()

	if def.ScanTimeout != 15 {
		t.Errorf("Defaults().ScanTimeout = %v, want 15", def.ScanTimeout)
	}
	if !def.AutoRefresh {
		t.Error("Defaults().AutoRefresh should be true")
	}
	if def.RefreshInterval != 30 {
		t.Errorf("Defaults().RefreshInterval = %v, want 30", def.RefreshInterval)
	}
	if !def.ShowHiddenNetworks {
		t.Error("Defaults().ShowHiddenNetworks should be true")
	}
	if def.SoundEnabled {
		t.Error("Defaults().SoundEnabled should be false")
	}
	if def.LogLevel != LogInfo {
		t.Errorf("Defaults().LogLevel = %v, want INFO", def.LogLevel)
	}
	if def.Theme != ThemeDark {
		t.Errorf("Defaults().Theme = %v, want dark", def.Theme)
	}
	if def.DefaultInterface != "" {
		t.Errorf("Defaults().DefaultInterface = %q, want empty (auto)", def.DefaultInterface)
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	got := loadFrom(path)
	if got != Defaults() {
		t.Errorf("loadFrom(missing) = %+v, want defaults %+v", got, Defaults())
	}
}

func TestLoadFromMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	got := loadFrom(path)
	if got != Defaults() {
		t.Errorf("loadFrom(malformed) = %+v, want defaults %+v", got, Defaults())
	}
}

func TestLoadFromMergesPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	partial := `{"scan_timeout": 45, "theme": "light"}`
	if err := os.WriteFile(path, []byte(partial), 0600); err != nil {
		t.Fatal(err)
	}

	got := loadFrom(path)

	if got.ScanTimeout != 45 {
		t.Errorf("ScanTimeout = %v, want 45", got.ScanTimeout)
	}
	if got.Theme != ThemeLight {
		t.Errorf("Theme = %v, want light", got.Theme)
	}
	// Keys absent from the file keep their defaults
	if got.RefreshInterval != 30 {
		t.Errorf("RefreshInterval = %v, want default 30", got.RefreshInterval)
	}
	if got.LogLevel != LogInfo {
		t.Errorf("LogLevel = %v, want default INFO", got.LogLevel)
	}
}

func TestLoadFromNormalizesUnknownEnums(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	bad := `{"log_level": "LOUD", "theme": "neon"}`
	if err := os.WriteFile(path, []byte(bad), 0600); err != nil {
		t.Fatal(err)
	}

	got := loadFrom(path)

	if got.LogLevel != LogInfo {
		t.Errorf("LogLevel = %v, want default INFO", got.LogLevel)
	}
	if got.Theme != ThemeDark {
		t.Errorf("Theme = %v, want default dark", got.Theme)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "settings.json")

	want := Defaults()
	want.ScanTimeout = 20
	want.AutoRefresh = false
	want.Theme = ThemeSystem
	want.DefaultInterface = "wlan0"

	if err := want.saveTo(path); err != nil {
		t.Fatalf("saveTo() error = %v", err)
	}

	// No temp file left behind
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should be renamed away after save")
	}

	got := loadFrom(path)
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr string // substring the error must contain, "" for no error
	}{
		{"defaults are valid", func(s *Settings) {}, ""},
		{"zero scan timeout", func(s *Settings) { s.ScanTimeout = 0 }, "scan_timeout"},
		{"negative refresh interval", func(s *Settings) { s.RefreshInterval = -5 }, "refresh_interval"},
		{"bad log level", func(s *Settings) { s.LogLevel = "VERBOSE" }, "log_level"},
		{"bad theme", func(s *Settings) { s.Theme = "solarized" }, "theme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Defaults()
			tt.mutate(&s)
			err := s.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error naming %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, should name %q", err, tt.wantErr)
			}
		})
	}
}
