package credentials

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// exportHeader is the first line of every export file. The format is shared
// with older releases of the tool, so changes here break diff-based
// workflows users may have.
const exportHeader = "WiFi Tester Pro - Saved Passwords Export"

// Export writes entries to w in the standard text format: a header, a
// separator, then one block per entry sorted by profile name.
func Export(w io.Writer, entries []Entry) error {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	Sort(sorted)

	var b strings.Builder
	b.WriteString(exportHeader + "\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	for _, e := range sorted {
		b.WriteString("Network: " + e.Name + "\n")
		if e.HasPassword() {
			b.WriteString("Password: " + *e.Password + "\n")
		} else {
			b.WriteString("Password: (no password)\n")
		}
		b.WriteString(strings.Repeat("-", 30) + "\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}

// ExportFile writes entries to the named file, creating or truncating it.
// The file is user-readable only; it contains cleartext passwords.
func ExportFile(path string, entries []Entry) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if err := Export(f, entries); err != nil {
		return err
	}
	return f.Close()
}
