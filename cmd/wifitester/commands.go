package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/kmorris/wifitester/internal/credentials"
	"github.com/kmorris/wifitester/internal/driver"
	"github.com/kmorris/wifitester/internal/logging"
	"github.com/kmorris/wifitester/internal/session"
	"github.com/kmorris/wifitester/internal/settings"
	"github.com/kmorris/wifitester/internal/tui"
	"github.com/kmorris/wifitester/internal/ui"
)

var exportPath string

func init() {
	rootCmd.AddCommand(passwordsCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportPath, "out", "wifi-passwords.txt", "Destination file for the export")
}

// setup initializes logging from the persisted settings, applies the theme,
// and returns the loaded settings. Every command starts here.
func setup() settings.Settings {
	cfg := settings.Load()
	if err := logging.InitializeFromSettings(string(cfg.LogLevel)); err != nil {
		fmt.Println("Warning: logging disabled:", err)
	}
	tui.ApplyTheme(cfg.Theme)
	return cfg
}

// passwordsCmd opens the saved-passwords dialog
var passwordsCmd = &cobra.Command{
	Use:   "passwords",
	Short: "Browse saved WiFi networks and passwords",
	Long: `Open the saved-passwords dialog.

Lists every saved WiFi profile with its password where the operating system
exposes it (Windows with administrator rights). Passwords can be revealed,
copied to the clipboard, and each network can be connection-tested.`,
	Example: `  # Open the dialog (also the default with no subcommand)
  wifitester passwords`,
	RunE: runPasswords,
}

func runPasswords(cmd *cobra.Command, args []string) error {
	setup()

	model := tui.NewPasswordsModel(driver.Detect(), session.Current())
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("passwords dialog failed: %w", err)
	}
	return nil
}

// settingsCmd opens the settings dialog
var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Edit persistent preferences",
	Long: `Open the settings dialog.

Edits scan and refresh behavior, logging verbosity, theme, and the default
network interface. Changes are validated and written atomically; the theme
and log level apply immediately on save.`,
	RunE: runSettings,
}

func runSettings(cmd *cobra.Command, args []string) error {
	cfg := setup()

	onSave := func(saved settings.Settings) {
		// Re-level the logger so the new verbosity applies to this process too.
		_ = logging.InitializeFromSettings(string(saved.LogLevel))
	}

	model := tui.NewSettingsModel(cfg, session.Current(), onSave)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("settings dialog failed: %w", err)
	}
	return nil
}

// exportCmd writes saved credentials to a file without opening the dialog
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export saved credentials to a text file",
	Long: `Export every saved WiFi profile to a plain text file.

Uses the same serialization as the dialog's export action. The file contains
cleartext passwords where the operating system exposes them, so it is
created user-readable only.`,
	Example: `  # Export to the default file
  wifitester export

  # Export to a chosen path
  wifitester export --out /tmp/networks.txt`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := setup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ScanTimeout)*time.Second)
	defer cancel()

	entries, err := credentials.Fetch(ctx, driver.Detect())
	if err != nil {
		fmt.Println(ui.RenderFailure("Export failed", err, []string{
			"Check that the system WiFi tool (netsh or nmcli) is installed",
			"On Windows, run from an elevated prompt to include passwords",
		}))
		return fmt.Errorf("loading credentials: %w", err)
	}

	if err := credentials.ExportFile(exportPath, entries); err != nil {
		fmt.Println(ui.RenderFailure("Export failed", err, []string{
			"Check the destination directory exists and is writable",
		}))
		return err
	}

	withPasswords := 0
	for _, e := range entries {
		if e.HasPassword() {
			withPasswords++
		}
	}
	fmt.Println(ui.RenderSuccess("Export complete", map[string]string{
		"File":      exportPath,
		"Networks":  strconv.Itoa(len(entries)),
		"Passwords": strconv.Itoa(withPasswords),
	}))
	return nil
}
