// Package settings provides user preference management for the wifitester tool.
//
// Preferences are stored as a flat JSON document in the platform-appropriate
// configuration directory:
//   - Linux: $XDG_CONFIG_HOME/wifitester/settings.json or $HOME/.config/wifitester/settings.json
//   - macOS: $HOME/.config/wifitester/settings.json
//   - Windows: %LOCALAPPDATA%\wifitester\settings.json
//
// # Load Semantics
//
// Load never fails: a missing file yields the defaults, and a malformed file
// is logged and replaced by the defaults in memory (the file on disk is left
// untouched until the next save). A valid file is merged key by key over the
// defaults, so settings written by an older release that lacks newer keys
// still load with sensible values for the missing keys.
//
// # Security
//
// The settings file never contains credentials. Saved WiFi passwords are read
// from the operating system on demand and are not persisted by this tool.
//
// # Atomic Writes
//
// Save writes to a temporary file in the same directory and renames it into
// place, so a crash mid-write cannot corrupt the previous settings.
package settings
