package tui

import (
	"fmt"

	"github.com/kmorris/wifitester/internal/credentials"
)

// TestStatus is the per-row connection test lifecycle. The transition into
// TestRunning happens synchronously on the keypress, before the background
// command starts, so the UI can never fire two tests for one row.
type TestStatus int

const (
	TestIdle TestStatus = iota
	TestRunning
	TestSucceeded
	TestFailed
)

// RowModel is one credential entry plus its transient UI state. Rows are
// rebuilt from scratch on every load, so none of this state survives a
// refresh.
type RowModel struct {
	Entry credentials.Entry

	PasswordVisible bool
	CopyFeedback    bool // copy control shows a checkmark
	TestStatus      TestStatus
	TestMessage     string
}

func newRows(entries []credentials.Entry) []RowModel {
	rows := make([]RowModel, len(entries))
	for i, e := range entries {
		rows[i] = RowModel{Entry: e}
	}
	return rows
}

// toggleControl returns the visibility control glyph.
func (r RowModel) toggleControl() string {
	if r.PasswordVisible {
		return "🔒"
	}
	return "👁"
}

// copyControl returns the copy control glyph, with transient feedback.
func (r RowModel) copyControl() string {
	if r.CopyFeedback {
		return "✓"
	}
	return "📋"
}

// testControl returns the test control glyph for the current status.
func (r RowModel) testControl() string {
	switch r.TestStatus {
	case TestRunning:
		return "⏳"
	case TestSucceeded:
		return "✅"
	case TestFailed:
		return "❌"
	default:
		return "🔗"
	}
}

// View renders the row. The selected row gets the cursor marker and the
// highlight style.
func (r RowModel) View(selected bool) string {
	line := fmt.Sprintf("%-28s  %-28s  %s %s %s",
		truncate(r.Entry.Name, 28),
		truncate(r.Entry.Display(r.PasswordVisible), 28),
		r.toggleControl(),
		r.copyControl(),
		r.testControl(),
	)

	if selected {
		return selectedRowStyle().Render("→ " + line)
	}
	return rowStyle().Render(line)
}

// truncate shortens s to max runes, ellipsizing when cut.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
