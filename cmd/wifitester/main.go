// Wifitester is a terminal companion for inspecting a machine's saved WiFi
// credentials and the tool's own preferences.
//
// It can list saved network profiles with their passwords (where the
// operating system allows), test connections to saved networks, export the
// credentials to a text file, and edit persistent settings.
//
// Usage:
//
//	wifitester [command] [flags]
//
// Running without arguments opens the saved-passwords dialog.
// See 'wifitester --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kmorris/wifitester/internal/logging"
	"github.com/kmorris/wifitester/internal/version"
)

func main() {
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wifitester",
	Short: "WiFi credential and diagnostics tool",
	Long: `A terminal tool for working with saved WiFi credentials.

Shows saved network profiles and passwords (where the operating system
allows), tests connections to saved networks, exports credentials to a
text file, and manages persistent preferences.

If no command is specified, the saved-passwords dialog opens.`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: open the passwords dialog
		return runPasswords(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("wifitester %s (commit: %s)\n", version.Version, version.Commit)
	},
}
